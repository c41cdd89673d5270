package particle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileAoS(t *testing.T) {
	pt := NewTile(layout1121)
	p1, p2, p3 := Layout{1, 1}.New(), Layout{1, 1}.New(), Layout{1, 1}.New()
	p1.Pos[0] = 3.0
	p2.Pos[0] = 4.0
	p2.Pos[1] = 8
	p3.Pos[2] = 20
	require.NoError(t, pt.PushBack(p1))
	require.NoError(t, pt.PushBack(p2))
	require.NoError(t, pt.PushBack(p3))
	require.NoError(t, pt.Resize(3))

	aos := pt.ArrayOfStructs()
	assert.Equal(t, 3, aos.Len())

	x, err := aos.Value(0, "x")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, x, 1e-12)
	y, err := aos.Value(0, "y")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, y, 1e-12)

	assert.InDelta(t, 0.0, aos.Row(2)[0], 1e-12)
	assert.InDelta(t, 20.0, aos.Row(2)[2], 1e-12)

	_, err = aos.Value(0, "rdata_1")
	assert.ErrorIs(t, err, ErrBadComponent)
}

func TestAoSColumns(t *testing.T) {
	pt := NewTile(TileLayout{NStructReal: 2, NStructInt: 1})
	p := NewParticle(1, 2, 3, []float64{4, 5}, []int32{6})
	p.ID, p.CPU = 7, 8
	require.NoError(t, pt.PushBack(p))

	aos := pt.ArrayOfStructs()
	assert.Equal(t, Layout{2, 1}, aos.Layout())
	cols := []string{"x", "y", "z", "rdata_0", "rdata_1", "id", "cpu", "idata_0"}
	assert.Equal(t, cols, aos.Columns())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 7, 8, 6}, aos.Row(0))

	// Named access agrees with positional access.
	for col, name := range cols {
		v, err := aos.Value(0, name)
		require.NoError(t, err)
		assert.Equal(t, aos.Row(0)[col], v, name)
	}

	got := aos.At(0)
	assert.Equal(t, p.Pos, got.Pos)
	assert.Equal(t, p.RData, got.RData)
	assert.Equal(t, p.IData, got.IData)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, p.CPU, got.CPU)
}

func TestAoSDense(t *testing.T) {
	pt := NewTile(TileLayout{NStructReal: 1, NStructInt: 1})
	assert.Nil(t, pt.ArrayOfStructs().Dense())

	for i := 0; i < 4; i++ {
		p := NewParticle(float64(i), 0, -float64(i), []float64{0.5}, []int32{int32(i)})
		require.NoError(t, pt.PushBack(p))
	}

	m := pt.ArrayOfStructs().Dense()
	require.NotNil(t, m)
	rows, cols := m.Dims()
	assert.Equal(t, 4, rows)
	assert.Equal(t, 7, cols)
	assert.Equal(t, 3.0, m.At(3, 0))
	assert.Equal(t, -2.0, m.At(2, 2))
	assert.Equal(t, 0.5, m.At(1, 3))
	assert.Equal(t, 1.0, m.At(1, 6))

	// Dense is a copy.
	m.Set(0, 0, 100)
	assert.Equal(t, 0.0, pt.ArrayOfStructs().Pos(0)[0])
}

func TestParticleClone(t *testing.T) {
	p := NewParticle(1, 2, 3, []float64{4}, []int32{5})
	q := p.Clone()
	q.RData[0] = 40
	q.IData[0] = 50
	assert.Equal(t, 4.0, p.RData[0])
	assert.Equal(t, int32(5), p.IData[0])
	assert.Equal(t, Layout{1, 1}, q.Layout())

	rdata := []float64{1}
	r := NewParticle(0, 0, 0, rdata, nil)
	rdata[0] = 2
	assert.Equal(t, 1.0, r.RData[0])
}

func TestAoSUncheckedAccess(t *testing.T) {
	pt := NewTile(layout1121)
	require.NoError(t, pt.Resize(2))
	aos := pt.ArrayOfStructs()
	short := NewParticle(1, 2, 3, nil, nil)

	assert.Panics(t, func() { aos.At(2) })
	assert.Panics(t, func() { aos.Set(2, Layout{1, 1}.New()) })
	assert.Panics(t, func() { aos.Set(0, short) })

	// Tile reports the same mistakes as errors and leaves storage alone.
	_, err := pt.Get(2)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.ErrorIs(t, pt.Set(0, short), ErrLayoutMismatch)
	assert.Equal(t, [SpaceDim]float64{}, aos.At(0).Pos)
}

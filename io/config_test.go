package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/amrtile/geom"
	"github.com/phil-mansfield/amrtile/particle"
)

const testConfig = `[Geometry]
NCell = 128 128 128
ProbLo = 0 0 0
ProbHi = 1 2 5
CoordSys = 1
IsPeriodic = 0 0 1

[Tile "dm"]
Catalog = dm.txt
NStructReal = 1
NStructInt = 1
NArrayReal = 2
NArrayInt = 1
RuntimeReal = 1
`

func TestReadConfigString(t *testing.T) {
	wrap, err := ReadConfigString(testConfig)
	require.NoError(t, err)

	g, err := wrap.Geometry.Geometry()
	require.NoError(t, err)
	assert.True(t, g.Ok())
	assert.Equal(t, geom.NewBox(geom.UniformIntVect(0), geom.UniformIntVect(127)),
		g.Domain())
	assert.InDelta(t, 10.0, g.ProbSize(), 1e-12)
	assert.Equal(t, geom.RZ, g.Coord())
	assert.Equal(t, [geom.D]bool{false, false, true}, g.PeriodicFlags())
	assert.Equal(t, geom.DefaultRoundOffCells, wrap.Geometry.RoundOffCells)

	require.Contains(t, wrap.Tile, "dm")
	con := wrap.Tile["dm"]
	assert.Equal(t, "dm", con.Name)
	assert.Equal(t, "dm.txt", con.Catalog)
	assert.Equal(t, particle.TileLayout{
		NStructReal: 1, NStructInt: 1, NArrayReal: 2, NArrayInt: 1,
	}, con.Layout())

	tile, err := con.NewTile()
	require.NoError(t, err)
	assert.Equal(t, 1, tile.NumRuntimeReal())
	assert.Equal(t, 0, tile.NumRuntimeInt())
}

func TestReadConfigFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(fname, []byte(testConfig), 0644))

	wrap, err := ReadConfig(fname)
	require.NoError(t, err)
	assert.Equal(t, "128 128 128", wrap.Geometry.NCell)

	_, err = ReadConfig(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}

func TestExampleConfig(t *testing.T) {
	wrap, err := ReadConfigString(ExampleConfigFile)
	require.NoError(t, err)
	_, err = wrap.Geometry.Geometry()
	require.NoError(t, err)
	assert.Contains(t, wrap.Tile, "dark_matter")
}

func TestGeometryConfigDomainLo(t *testing.T) {
	wrap, err := ReadConfigString(`[Geometry]
NCell = 6 8 10
DomainLo = -1 -2 -3
ProbLo = 0 1.0002 0.00105
ProbHi = 2 4.2 5
`)
	require.NoError(t, err)
	g, err := wrap.Geometry.Geometry()
	require.NoError(t, err)
	assert.Equal(t, geom.NewIntVect(-1, -2, -3), g.Domain().SmallEnd())
	assert.Equal(t, geom.NewIntVect(4, 5, 6), g.Domain().BigEnd())

	domain, err := wrap.Geometry.Domain()
	require.NoError(t, err)
	assert.Equal(t, g.Domain(), domain)
	assert.False(t, g.IsAnyPeriodic())
	assert.Equal(t, geom.Cartesian, g.Coord())
}

func TestGeometryConfigErrors(t *testing.T) {
	table := []string{
		"[Geometry]\nProbLo = 0 0 0\nProbHi = 1 1 1\n",
		"[Geometry]\nNCell = 8 8\nProbLo = 0 0 0\nProbHi = 1 1 1\n",
		"[Geometry]\nNCell = 8 0 8\nProbLo = 0 0 0\nProbHi = 1 1 1\n",
		"[Geometry]\nNCell = 8 8 8\nProbHi = 1 1 1\n",
		"[Geometry]\nNCell = 8 8 8\nProbLo = 0 0 0\nProbHi = 1 -1 1\n",
		"[Geometry]\nNCell = 8 8 8\nProbLo = 0 0 x\nProbHi = 1 1 1\n",
		"[Geometry]\nNCell = 8 8 8\nProbLo = 0 0 0\nProbHi = 1 1 1\nCoordSys = 4\n",
		"[Geometry]\nNCell = 8 8 8\nProbLo = 0 0 0\nProbHi = 1 1 1\nIsPeriodic = 0 2 0\n",
		"[Geometry]\nNCell = 8 8 8\nProbLo = 0 0 0\nProbHi = 1 1 1\nRoundOffCells = -1\n",
		"[Geometry]\nNCell = 8 8 8\nProbLo = 0 0 0\nProbHi = 1 1 1\n[Tile \"a\"]\nNArrayReal = 1\n",
		"[Geometry]\nNCell = 8 8 8\nProbLo = 0 0 0\nProbHi = 1 1 1\n[Tile \"a\"]\nCatalog = a\nNArrayInt = -1\n",
	}

	for i, text := range table {
		if _, err := ReadConfigString(text); err == nil {
			t.Errorf("%d) expected an error from config:\n%s", i+1, text)
		}
	}
}

func TestDefaultsFromConfig(t *testing.T) {
	wrap, err := ReadConfigString(testConfig)
	require.NoError(t, err)

	d, err := wrap.Geometry.Defaults()
	require.NoError(t, err)
	assert.Equal(t, geom.RealBoxFromBounds(0, 0, 0, 1, 2, 5), d.ProbDomain)
	assert.Equal(t, [geom.D]bool{false, false, true}, d.IsPeriodic)
	assert.Equal(t, geom.RZ, d.Coord)

	saved := geom.CurrentDefaults()
	defer geom.RestoreDefaults(saved)
	geom.RestoreDefaults(d)
	g := geom.New()
	assert.InDelta(t, 5.0, g.ProbLength(2), 1e-12)
	assert.Equal(t, geom.RZ, g.Coord())
}

func TestApplyEnv(t *testing.T) {
	wrap, err := ReadConfigString(testConfig)
	require.NoError(t, err)

	con := wrap.Geometry
	require.NoError(t, con.ApplyEnv(map[string]string{
		"AMRTILE_COORD_SYS":   "2",
		"AMRTILE_IS_PERIODIC": "1 1 1",
		"AMRTILE_PROB_HI":     "4 4 4",
		"UNRELATED":           "x",
	}))
	assert.Equal(t, int(geom.Spherical), con.CoordSys)

	g, err := con.Geometry()
	require.NoError(t, err)
	assert.True(t, g.IsAllPeriodic())
	assert.InDelta(t, 64.0, g.ProbSize(), 1e-12)
	assert.Equal(t, "0 0 0", con.ProbLo)

	// An empty environment changes nothing.
	before := con
	require.NoError(t, con.ApplyEnv(map[string]string{}))
	assert.Equal(t, before, con)

	err = con.ApplyEnv(map[string]string{"AMRTILE_COORD_SYS": "seven"})
	assert.Error(t, err)
	err = con.ApplyEnv(map[string]string{"AMRTILE_IS_PERIODIC": "1 1"})
	assert.Error(t, err)
}

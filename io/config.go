package io

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/amrtile/geom"
	"github.com/phil-mansfield/amrtile/particle"
)

// EnvPrefix is prepended to the names of every environment variable which
// can override a [Geometry] value.
const EnvPrefix = "AMRTILE_"

const (
	ExampleConfigFile = `[Geometry]

#######################
# Required Parameters #
#######################

# Number of cells along each dimension of the index-space domain.
NCell = 128 128 128

# Lower and upper corners of the physical domain.
ProbLo = 0 0 0
ProbHi = 1 2 5

#######################
# Optional Parameters #
#######################

# Index of the first cell along each dimension. Default is 0 0 0.
# DomainLo = 0 0 0

# Coordinate system: 0 is Cartesian, 1 is RZ, and 2 is spherical.
# CoordSys = 0

# 1 for periodic dimensions, 0 otherwise. Default is 0 0 0.
# IsPeriodic = 0 0 1

# Width, in cells, of the tolerance band used when deciding whether a
# particle has left the domain.
# RoundOffCells = 1e-6

# Every [Tile] section describes one particle tile and the text catalog it is
# loaded from. The catalog has one particle per line: x y z, then every real
# component, then every integer component.
[Tile "dark_matter"]

Catalog = path/to/catalog.txt

# NStructReal = 1
# NStructInt = 1
# NArrayReal = 2
# NArrayInt = 1
# RuntimeReal = 0
# RuntimeInt = 0`
)

// GeometryConfig describes a geom.Geometry. Vector values are written as
// whitespace-separated lists.
type GeometryConfig struct {
	// Required
	NCell          string
	ProbLo, ProbHi string

	// Optional
	DomainLo      string
	CoordSys      int
	IsPeriodic    string
	RoundOffCells float64
}

// TileConfig describes a particle.Tile and the catalog that fills it.
type TileConfig struct {
	// Required
	Catalog string

	// Optional
	NStructReal, NStructInt int
	NArrayReal, NArrayInt   int
	RuntimeReal, RuntimeInt int

	// Optional, "undocumented"
	Name string
}

// Wrapper is the top level of a configuration file.
type Wrapper struct {
	Geometry GeometryConfig
	Tile     map[string]*TileConfig
}

// DefaultWrapper returns a Wrapper with every optional value set to its
// default.
func DefaultWrapper() *Wrapper {
	con := GeometryConfig{}
	con.DomainLo = "0 0 0"
	con.IsPeriodic = "0 0 0"
	con.CoordSys = int(geom.Cartesian)
	con.RoundOffCells = geom.DefaultRoundOffCells
	return &Wrapper{Geometry: con}
}

// ReadConfig reads and checks the configuration file fname.
func ReadConfig(fname string) (*Wrapper, error) {
	wrap := DefaultWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return wrap, wrap.CheckInit()
}

// ReadConfigString reads and checks a configuration held in memory.
func ReadConfigString(text string) (*Wrapper, error) {
	wrap := DefaultWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil {
		return nil, err
	}
	return wrap, wrap.CheckInit()
}

// CheckInit checks every section of the configuration.
func (wrap *Wrapper) CheckInit() error {
	if err := wrap.Geometry.CheckInit(); err != nil {
		return err
	}
	for name, tile := range wrap.Tile {
		if err := tile.CheckInit(name); err != nil {
			return err
		}
	}
	return nil
}

func (con *GeometryConfig) ValidNCell() bool {
	n, err := parseInts(con.NCell)
	return err == nil && n.AllGT(geom.UniformIntVect(0))
}
func (con *GeometryConfig) ValidCoordSys() bool {
	return geom.CoordType(con.CoordSys).Valid()
}
func (con *GeometryConfig) ValidRoundOffCells() bool {
	return con.RoundOffCells >= 0
}

// CheckInit returns an error describing the first invalid value in the
// [Geometry] section.
func (con *GeometryConfig) CheckInit() error {
	if con.NCell == "" {
		return fmt.Errorf("Need to specify NCell in [Geometry].")
	} else if !con.ValidNCell() {
		return fmt.Errorf(
			"NCell in [Geometry] must be three positive integers, but is '%s'.",
			con.NCell,
		)
	} else if con.ProbLo == "" || con.ProbHi == "" {
		return fmt.Errorf("Need to specify ProbLo and ProbHi in [Geometry].")
	} else if !con.ValidCoordSys() {
		return fmt.Errorf(
			"CoordSys in [Geometry] must be 0, 1, or 2, but is %d.",
			con.CoordSys,
		)
	} else if !con.ValidRoundOffCells() {
		return fmt.Errorf(
			"RoundOffCells in [Geometry] must be non-negative, but is %g.",
			con.RoundOffCells,
		)
	}

	rb, err := con.probDomain()
	if err != nil {
		return err
	} else if !rb.Ok() {
		return fmt.Errorf(
			"ProbHi in [Geometry] must be larger than ProbLo, but the "+
				"domain is %v.", rb,
		)
	}

	if _, err := parseInts(con.DomainLo); err != nil {
		return fmt.Errorf("Could not parse DomainLo in [Geometry]: %s", err)
	} else if _, err := con.periodicFlags(); err != nil {
		return err
	}

	return nil
}

// Geometry returns the Geometry described by the configuration.
func (con *GeometryConfig) Geometry() (*geom.Geometry, error) {
	if err := con.CheckInit(); err != nil {
		return nil, err
	}

	domain, _ := con.Domain()
	rb, _ := con.probDomain()
	isPeriodic, _ := con.periodicFlags()

	return geom.NewGeometry(
		domain, rb, geom.CoordType(con.CoordSys), isPeriodic,
	)
}

// Domain returns the index-space domain described by NCell and DomainLo.
func (con *GeometryConfig) Domain() (geom.Box, error) {
	if err := con.CheckInit(); err != nil {
		return geom.Box{}, err
	}
	nCell, _ := parseInts(con.NCell)
	lo, _ := parseInts(con.DomainLo)
	return geom.NewBox(lo, lo.Add(nCell).Sub(geom.UniformIntVect(1))), nil
}

// Defaults returns the process-wide Geometry defaults described by the
// configuration.
func (con *GeometryConfig) Defaults() (geom.Defaults, error) {
	if err := con.CheckInit(); err != nil {
		return geom.Defaults{}, err
	}
	rb, _ := con.probDomain()
	isPeriodic, _ := con.periodicFlags()
	return geom.Defaults{
		ProbDomain: rb,
		IsPeriodic: isPeriodic,
		Coord:      geom.CoordType(con.CoordSys),
	}, nil
}

type envOverrides struct {
	CoordSys   *int   `env:"COORD_SYS"`
	IsPeriodic string `env:"IS_PERIODIC"`
	ProbLo     string `env:"PROB_LO"`
	ProbHi     string `env:"PROB_HI"`
}

// ApplyEnv overwrites values with any AMRTILE_COORD_SYS,
// AMRTILE_IS_PERIODIC, AMRTILE_PROB_LO, or AMRTILE_PROB_HI variables found
// in environ. A nil environ reads the process environment.
func (con *GeometryConfig) ApplyEnv(environ map[string]string) error {
	ov := envOverrides{}
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(&ov, opts); err != nil {
		return err
	}

	if ov.CoordSys != nil { con.CoordSys = *ov.CoordSys }
	if ov.IsPeriodic != "" { con.IsPeriodic = ov.IsPeriodic }
	if ov.ProbLo != "" { con.ProbLo = ov.ProbLo }
	if ov.ProbHi != "" { con.ProbHi = ov.ProbHi }

	return con.CheckInit()
}

func (con *GeometryConfig) probDomain() (geom.RealBox, error) {
	lo, err := parseFloats(con.ProbLo)
	if err != nil {
		return geom.RealBox{}, fmt.Errorf(
			"Could not parse ProbLo in [Geometry]: %s", err,
		)
	}
	hi, err := parseFloats(con.ProbHi)
	if err != nil {
		return geom.RealBox{}, fmt.Errorf(
			"Could not parse ProbHi in [Geometry]: %s", err,
		)
	}
	return geom.NewRealBox(lo, hi), nil
}

func (con *GeometryConfig) periodicFlags() ([geom.D]bool, error) {
	flags := [geom.D]bool{}
	iv, err := parseInts(con.IsPeriodic)
	if err != nil {
		return flags, fmt.Errorf(
			"Could not parse IsPeriodic in [Geometry]: %s", err,
		)
	}
	for i := range iv {
		if iv[i] != 0 && iv[i] != 1 {
			return flags, fmt.Errorf(
				"IsPeriodic in [Geometry] must only contain 0 and 1, but "+
					"is '%s'.", con.IsPeriodic,
			)
		}
		flags[i] = iv[i] == 1
	}
	return flags, nil
}

func (con *TileConfig) ValidCatalog() bool { return con.Catalog != "" }

func (con *TileConfig) ValidCounts() bool {
	return con.NStructReal >= 0 && con.NStructInt >= 0 &&
		con.NArrayReal >= 0 && con.NArrayInt >= 0 &&
		con.RuntimeReal >= 0 && con.RuntimeInt >= 0
}

// CheckInit checks a [Tile] section and records its name.
func (con *TileConfig) CheckInit(name string) error {
	if !con.ValidCatalog() {
		return fmt.Errorf("Need to specify a Catalog for Tile '%s'.", name)
	} else if !con.ValidCounts() {
		return fmt.Errorf(
			"Tile '%s' has a negative component count.", name,
		)
	}
	con.Name = name
	return nil
}

func (con *TileConfig) Layout() particle.TileLayout {
	return particle.TileLayout{
		NStructReal: con.NStructReal, NStructInt: con.NStructInt,
		NArrayReal: con.NArrayReal, NArrayInt: con.NArrayInt,
	}
}

// NewTile returns an empty Tile with the configured layout and runtime
// components.
func (con *TileConfig) NewTile() (*particle.Tile, error) {
	tile := particle.NewTile(con.Layout())
	if err := tile.DefineRuntime(con.RuntimeReal, con.RuntimeInt); err != nil {
		return nil, err
	}
	return tile, nil
}

func parseFloats(s string) ([geom.D]float64, error) {
	out := [geom.D]float64{}
	tok := strings.Fields(s)
	if len(tok) != geom.D {
		return out, fmt.Errorf("expected %d values, got '%s'", geom.D, s)
	}
	for i := range tok {
		x, err := strconv.ParseFloat(tok[i], 64)
		if err != nil { return out, err }
		out[i] = x
	}
	return out, nil
}

func parseInts(s string) (geom.IntVect, error) {
	out := geom.IntVect{}
	tok := strings.Fields(s)
	if len(tok) != geom.D {
		return out, fmt.Errorf("expected %d values, got '%s'", geom.D, s)
	}
	for i := range tok {
		x, err := strconv.Atoi(tok[i])
		if err != nil { return out, err }
		out[i] = x
	}
	return out, nil
}

package main

import (
	"github.com/phil-mansfield/amrtile/geom"
	"github.com/phil-mansfield/amrtile/io"
)

// BuildGeometry returns the Geometry described by con. If setDefaults is
// true, con's physical domain, periodicity, and coordinate system first
// become the process-wide defaults, and the Geometry is built from them with
// geom.New, so every later call to geom.New agrees with it.
func BuildGeometry(
	con *io.GeometryConfig, setDefaults bool,
) (*geom.Geometry, error) {
	if !setDefaults {
		return con.Geometry()
	}

	d, err := con.Defaults()
	if err != nil { return nil, err }
	domain, err := con.Domain()
	if err != nil { return nil, err }

	geom.RestoreDefaults(d)
	g := geom.New()
	g.SetDomain(domain)
	return g, nil
}

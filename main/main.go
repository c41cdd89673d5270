package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/phil-mansfield/amrtile/io"
)

func main() {
	var (
		config        string
		exampleConfig bool
		setDefaults   bool
	)

	flag.StringVar(
		&config, "Config", "",
		"Configuration file with a [Geometry] section and any number of "+
			"[Tile] sections.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout.",
	)
	flag.BoolVar(
		&setDefaults, "SetDefaults", false,
		"Also installs the [Geometry] section as the process-wide default "+
			"geometry before loading tiles.",
	)
	flag.Parse()

	if exampleConfig {
		fmt.Println(io.ExampleConfigFile)
		return
	} else if config == "" {
		log.Fatal("Must supply a configuration file with -Config.")
	}

	wrap, err := io.ReadConfig(config)
	if err != nil { log.Fatal(err.Error()) }
	if err := wrap.Geometry.ApplyEnv(nil); err != nil {
		log.Fatal(err.Error())
	}

	g, err := BuildGeometry(&wrap.Geometry, setDefaults)
	if err != nil { log.Fatal(err.Error()) }
	log.Println(g)

	names := []string{}
	for name := range wrap.Tile {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("# %12s %10s %10s %10s %10s\n",
		"Tile", "Particles", "Wrapped", "Outside", "Cells")
	for _, name := range names {
		con := wrap.Tile[name]
		tile, err := con.NewTile()
		if err != nil { log.Fatal(err.Error()) }

		n, err := io.ReadCatalog(con.Catalog, tile)
		if err != nil { log.Fatal(err.Error()) }
		log.Printf("Read %d particles into tile '%s'.", n, name)

		s, err := Summarize(g, tile, wrap.Geometry.RoundOffCells)
		if err != nil { log.Fatal(err.Error()) }
		fmt.Printf("  %12s %10d %10d %10d %10d\n",
			name, s.Particles, s.Wrapped, s.Outside, s.Cells)
	}
}

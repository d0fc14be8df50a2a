package main

import (
	"fmt"
	"math"

	"neoncity/internal/scene"
)

func printCityReport(st *scene.State) {
	c := st.City
	fmt.Printf("CITY (seed %d, theme %q, noise %s)\n", st.Seed, st.Theme().Name, st.Settings.Noise)
	fmt.Printf("  requested:   %d\n", c.Requested)
	fmt.Printf("  placed:      %d\n", len(c.Buildings))
	fmt.Printf("  attempts:    %d\n", c.Attempts)
	fmt.Printf("  half extent: %.2f\n", c.HalfExtent)
	if c.Short() {
		fmt.Printf("  note: attempt cap reached before the requested count\n")
	}
	if len(c.Buildings) == 0 {
		return
	}

	minH, maxH, sumH := math.Inf(1), math.Inf(-1), 0.0
	windows, lit, quads := 0, 0, 0
	for _, b := range c.Buildings {
		minH = min(minH, b.Height)
		maxH = max(maxH, b.Height)
		sumH += b.Height
		windows += len(b.Windows)
		lit += b.LitCount()
		quads += b.EmitGeometry().QuadCount()
	}
	fmt.Println()
	fmt.Printf("HEIGHTS:\n")
	fmt.Printf("  min %.2f  max %.2f  avg %.2f\n", minH, maxH, sumH/float64(len(c.Buildings)))
	fmt.Println()
	fmt.Printf("WINDOWS:\n")
	fmt.Printf("  total %d  lit %d (%.1f%%)\n", windows, lit, 100*float64(lit)/float64(max(1, windows)))
	fmt.Printf("  quads %d\n", quads)
}

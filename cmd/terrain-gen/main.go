// Command terrain-gen writes synthetic fractal terrain as a raw 16-bit
// heightmap.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/twpayne/go-terrain"
)

func run() error {
	width := flag.Int("width", 512, "grid width in samples")
	height := flag.Int("height", 512, "grid height in samples")
	seed := flag.Int64("seed", 0, "noise seed")
	frequency := flag.Float64("frequency", 1.0/64, "base noise frequency")
	detail := flag.Int("detail", 4, "noise octaves")
	maxElevationKM := flag.Float64("max-elevation", 5, "maximum elevation in km")
	output := flag.String("o", "terrain.r16", "output path")
	flag.Parse()

	grid, err := terrain.Generate(*width, *height, *seed,
		terrain.WithFrequency(*frequency),
		terrain.WithDetail(*detail),
	)
	if err != nil {
		return err
	}

	if err := os.WriteFile(*output, terrain.EncodeR16(grid), 0o666); err != nil {
		return err
	}

	stats := terrain.ComputeStats(grid, terrain.Scale{
		MaxElevationKM: *maxElevationKM,
	})
	fmt.Printf("%s: %dx%d, elevation %.1fm to %.1fm\n",
		*output, grid.Width(), grid.Height(), stats.MinElevation, stats.MaxElevation)

	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

package terrain

import (
	"github.com/aquilax/go-perlin"
)

type generator struct {
	frequency float64
	detail    int32
}

// A GeneratorOption sets an option on synthetic terrain generation.
type GeneratorOption func(*generator)

// WithFrequency sets the base noise frequency in cycles per sample.
func WithFrequency(frequency float64) GeneratorOption {
	return func(g *generator) {
		g.frequency = frequency
	}
}

// WithDetail sets the number of noise octaves.
func WithDetail(detail int) GeneratorOption {
	return func(g *generator) {
		g.detail = int32(detail)
	}
}

// Generate returns a width x height grid of synthetic fractal terrain.
// Output is deterministic per seed. Large-scale relief comes from a
// low-frequency noise layer modulating a higher-frequency detail layer;
// the sum is rescaled to span [0, 1] exactly.
func Generate(width, height int, seed int64, options ...GeneratorOption) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrInsufficientResolution
	}

	g := &generator{
		frequency: 1.0 / 64,
		detail:    4,
	}
	for _, option := range options {
		option(g)
	}

	detailNoise := perlin.NewPerlin(2, 2, g.detail, seed)
	reliefNoise := perlin.NewPerlin(2, 2, g.detail, seed+1)

	values := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fx := float64(x) * g.frequency
			fy := float64(y) * g.frequency
			detail := detailNoise.Noise2D(fx, fy)
			relief := reliefNoise.Noise2D(fx/8, fy/8)
			values[x+y*width] = detail*0.5 + relief
		}
	}

	// Rescale to [0, 1]. A constant field (possible only for degenerate
	// sizes) maps to all zeros.
	minValue, maxValue := values[0], values[0]
	for _, v := range values[1:] {
		if v < minValue {
			minValue = v
		}
		if v > maxValue {
			maxValue = v
		}
	}
	if maxValue > minValue {
		valueRange := maxValue - minValue
		for i, v := range values {
			values[i] = (v - minValue) / valueRange
		}
	} else {
		for i := range values {
			values[i] = 0
		}
	}

	return NewGrid(width, height, values)
}

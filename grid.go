package terrain

import "fmt"

// A Grid is an immutable heightmap: width*height elevation samples in
// row-major order, each normalized to [0, 1]. Values must be finite; that
// is the loader's responsibility, not checked here.
type Grid struct {
	width  int
	height int
	values []float64
}

// NewGrid returns a new Grid. The values slice is retained, not copied;
// callers must not mutate it afterwards.
func NewGrid(width, height int, values []float64) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%dx%d grid: %w", width, height, ErrInsufficientResolution)
	}
	if len(values) != width*height {
		return nil, fmt.Errorf("%d values for %dx%d grid, expected %d", len(values), width, height, width*height)
	}
	return &Grid{
		width:  width,
		height: height,
		values: values,
	}, nil
}

// Width returns the number of samples per row.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// At returns the sample at (x, y). It panics if the coordinate is out of
// range, like a slice index.
func (g *Grid) At(x, y int) float64 {
	if x < 0 || g.width <= x || y < 0 || g.height <= y {
		panic(fmt.Sprintf("terrain: grid index (%d, %d) out of range %dx%d", x, y, g.width, g.height))
	}
	return g.values[x+y*g.width]
}

// Values returns the underlying samples in row-major order. Callers must
// not mutate the returned slice.
func (g *Grid) Values() []float64 {
	return g.values
}

// MinMax returns the smallest and largest sample values.
func (g *Grid) MinMax() (float64, float64) {
	minValue, maxValue := g.values[0], g.values[0]
	for _, v := range g.values[1:] {
		if v < minValue {
			minValue = v
		}
		if v > maxValue {
			maxValue = v
		}
	}
	return minValue, maxValue
}

package terrain

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	contourExtractions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "terrain_contour_extractions_total",
		Help: "The total number of contour extractions",
	})
	contourPoints = promauto.NewCounter(prometheus.CounterOpts{
		Name: "terrain_contour_points_total",
		Help: "The total number of contour crossing points emitted",
	})
)

type extractor struct {
	concurrency int
}

// An ExtractorOption sets an option on a contour extraction.
type ExtractorOption func(*extractor)

// WithConcurrency extracts up to n levels in parallel. The output is
// identical to the serial scan: each level reads only the shared grid and
// writes only its own slot.
func WithConcurrency(n int) ExtractorOption {
	return func(e *extractor) {
		e.concurrency = n
	}
}

// ExtractContours returns the crossing points of grid with each of the
// given elevation levels. Levels outside the grid's value range yield
// empty contours, not errors. The result is a pure function of the
// arguments: identical input yields identical output.
func ExtractContours(grid *Grid, levels []float64, options ...ExtractorOption) (ContourSet, error) {
	if grid.Width() < 2 || grid.Height() < 2 {
		return nil, ErrInsufficientResolution
	}

	e := &extractor{
		concurrency: 1,
	}
	for _, option := range options {
		option(e)
	}

	contourSet := make(ContourSet, len(levels))
	if e.concurrency > 1 {
		var wg sync.WaitGroup
		sem := make(chan struct{}, e.concurrency)
		for i, level := range levels {
			wg.Add(1)
			sem <- struct{}{}
			go func() {
				defer wg.Done()
				contourSet[i] = extractLevel(grid, level)
				<-sem
			}()
		}
		wg.Wait()
	} else {
		for i, level := range levels {
			contourSet[i] = extractLevel(grid, level)
		}
	}

	contourExtractions.Inc()
	for _, contour := range contourSet {
		contourPoints.Add(float64(len(contour.Points)))
	}
	return contourSet, nil
}

// extractLevel scans all cells in row-major order and tests the two
// forward edges of each cell's origin sample: horizontal to (x+1, y) and
// vertical to (x, y+1). Shared edges of adjacent cells are therefore
// tested exactly once. The last row's horizontal edges and the last
// column's vertical edges belong to no cell and are never tested.
func extractLevel(grid *Grid, level float64) Contour {
	width, height := grid.Width(), grid.Height()
	values := grid.Values()
	var points []Point
	for y := 0; y < height-1; y++ {
		row := y * width
		for x := 0; x < width-1; x++ {
			v0 := values[row+x]
			below0 := v0 <= level
			if v1 := values[row+x+1]; below0 != (v1 <= level) {
				t := (level - v0) / (v1 - v0)
				points = append(points, Point{X: float64(x) + t, Y: float64(y)})
			}
			if v1 := values[row+width+x]; below0 != (v1 <= level) {
				t := (level - v0) / (v1 - v0)
				points = append(points, Point{X: float64(x), Y: float64(y) + t})
			}
		}
	}
	return Contour{
		Level:  level,
		Points: points,
	}
}

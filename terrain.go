// Package terrain extracts iso-elevation contours and display statistics
// from normalized heightmap grids.
package terrain

import "context"

// A Point is a position in fractional grid coordinates. X is in
// [0, width-1] and Y is in [0, height-1]; crossings are interpolated
// between adjacent samples, so coordinates are rarely integral.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// A Contour is the set of crossing points for a single elevation level.
// Points are emitted in row-major cell scan order and are not joined into
// polylines; path topology is the renderer's concern.
type Contour struct {
	Level  float64 `json:"level"`
	Points []Point `json:"points"`
}

// A ContourSet holds one Contour per requested level, in request order.
type ContourSet []Contour

// A HeightmapSource supplies validated normalized grids by name.
type HeightmapSource interface {
	Grid(ctx context.Context, name string) (*Grid, error)
}

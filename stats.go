package terrain

// A Scale maps normalized grid coordinates and values to physical units.
type Scale struct {
	WidthKM        float64 `json:"widthKm" yaml:"width_km"`
	HeightKM       float64 `json:"heightKm" yaml:"height_km"`
	MaxElevationKM float64 `json:"maxElevationKm" yaml:"max_elevation_km"`
}

// Stats are display-ready elevation statistics. Elevations are in meters,
// unrounded; rounding for display is the consumer's concern.
type Stats struct {
	MinElevation   float64 `json:"minElevation"`
	MaxElevation   float64 `json:"maxElevation"`
	ElevationRange float64 `json:"elevationRange"`
	MapWidthKM     float64 `json:"mapWidthKm"`
	MapHeightKM    float64 `json:"mapHeightKm"`
}

// ComputeStats returns grid's elevation statistics scaled by scale. A
// normalized value v corresponds to v * MaxElevationKM * 1000 meters.
func ComputeStats(grid *Grid, scale Scale) Stats {
	minValue, maxValue := grid.MinMax()
	metersPerUnit := scale.MaxElevationKM * 1000
	return Stats{
		MinElevation:   minValue * metersPerUnit,
		MaxElevation:   maxValue * metersPerUnit,
		ElevationRange: (maxValue - minValue) * metersPerUnit,
		MapWidthKM:     scale.WidthKM,
		MapHeightKM:    scale.HeightKM,
	}
}

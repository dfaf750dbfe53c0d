package terrain_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/twpayne/go-terrain"
)

func TestComputeStats(t *testing.T) {
	for _, tc := range []struct {
		name     string
		values   []float64
		scale    terrain.Scale
		expected terrain.Stats
	}{
		{
			name:   "five_km_ceiling",
			values: []float64{0.1, 0.9, 0.5, 0.3},
			scale: terrain.Scale{
				WidthKM:        10,
				HeightKM:       12,
				MaxElevationKM: 5,
			},
			expected: terrain.Stats{
				MinElevation:   500,
				MaxElevation:   4500,
				ElevationRange: 4000,
				MapWidthKM:     10,
				MapHeightKM:    12,
			},
		},
		{
			name:   "full_range",
			values: []float64{0, 1, 0.5, 0.25},
			scale: terrain.Scale{
				WidthKM:        1,
				HeightKM:       1,
				MaxElevationKM: 2,
			},
			expected: terrain.Stats{
				MinElevation:   0,
				MaxElevation:   2000,
				ElevationRange: 2000,
				MapWidthKM:     1,
				MapHeightKM:    1,
			},
		},
		{
			name:   "flat_grid_has_zero_range",
			values: []float64{0.5, 0.5, 0.5, 0.5},
			scale: terrain.Scale{
				WidthKM:        3,
				HeightKM:       4,
				MaxElevationKM: 1,
			},
			expected: terrain.Stats{
				MinElevation:   500,
				MaxElevation:   500,
				ElevationRange: 0,
				MapWidthKM:     3,
				MapHeightKM:    4,
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			grid := mustNewGrid(t, 2, 2, tc.values)
			assert.Equal(t, tc.expected, terrain.ComputeStats(grid, tc.scale))
		})
	}
}

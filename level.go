package terrain

import "fmt"

// PlanLevels returns levelCount elevation thresholds evenly spaced over
// the grid's observed value range, inclusive of both endpoints, in
// ascending order. A flat grid yields the single level min regardless of
// levelCount, as spacing is undefined when the range is zero.
func PlanLevels(grid *Grid, levelCount int) ([]float64, error) {
	if levelCount < 1 {
		return nil, fmt.Errorf("%d: %w", levelCount, ErrInvalidLevelCount)
	}
	minValue, maxValue := grid.MinMax()
	if minValue == maxValue || levelCount == 1 {
		return []float64{minValue}, nil
	}
	levels := make([]float64, levelCount)
	step := (maxValue - minValue) / float64(levelCount-1)
	for i := range levels {
		levels[i] = minValue + float64(i)*step
	}
	levels[levelCount-1] = maxValue
	return levels, nil
}

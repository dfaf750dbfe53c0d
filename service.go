package terrain

import (
	"context"

	"github.com/maypok86/otter/v2"
)

// A contourKey identifies one cached extraction.
type contourKey struct {
	name       string
	levelCount int
}

// A Service composes a heightmap source, a physical scale and a contour
// cache. Contour sets are recomputed in full on a cache miss; extraction
// is cheap relative to decoding, so nothing is updated incrementally.
type Service struct {
	source           HeightmapSource
	scale            Scale
	contourCacheSize int
	extractorOptions []ExtractorOption
	contourCache     *otter.Cache[contourKey, ContourSet]
}

// A ServiceOption sets an option on a Service.
type ServiceOption func(*Service)

// NewService returns a new Service reading grids from source and scaling
// statistics by scale.
func NewService(source HeightmapSource, scale Scale, options ...ServiceOption) (*Service, error) {
	s := &Service{
		source:           source,
		scale:            scale,
		contourCacheSize: 128,
	}
	for _, option := range options {
		option(s)
	}

	var err error
	s.contourCache, err = otter.New(&otter.Options[contourKey, ContourSet]{
		MaximumSize: s.contourCacheSize,
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func WithContourCacheSize(contourCacheSize int) ServiceOption {
	return func(s *Service) {
		s.contourCacheSize = contourCacheSize
	}
}

// WithExtractorOptions sets the options passed to every extraction.
func WithExtractorOptions(extractorOptions ...ExtractorOption) ServiceOption {
	return func(s *Service) {
		s.extractorOptions = extractorOptions
	}
}

// Grid returns the named grid.
func (s *Service) Grid(ctx context.Context, name string) (*Grid, error) {
	return s.source.Grid(ctx, name)
}

// Stats returns the named grid's elevation statistics in physical units.
func (s *Service) Stats(ctx context.Context, name string) (Stats, error) {
	grid, err := s.source.Grid(ctx, name)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(grid, s.scale), nil
}

// Contours returns the named grid's contour set for levelCount evenly
// spaced levels, using the cache if possible.
func (s *Service) Contours(ctx context.Context, name string, levelCount int) (ContourSet, error) {
	key := contourKey{
		name:       name,
		levelCount: levelCount,
	}
	return s.contourCache.Get(ctx, key, otter.LoaderFunc[contourKey, ContourSet](s.extractContours))
}

// extractContours computes the contour set for key.
func (s *Service) extractContours(ctx context.Context, key contourKey) (ContourSet, error) {
	grid, err := s.source.Grid(ctx, key.name)
	if err != nil {
		return nil, err
	}
	levels, err := PlanLevels(grid, key.levelCount)
	if err != nil {
		return nil, err
	}
	return ExtractContours(grid, levels, s.extractorOptions...)
}

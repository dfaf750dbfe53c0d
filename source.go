package terrain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gridCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "terrain_grid_cache_hits_total",
		Help: "The total number of hits on the grid cache",
	})
	gridCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "terrain_grid_cache_misses_total",
		Help: "The total number of misses on the grid cache",
	})
	gridCacheEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "terrain_grid_cache_evictions_total",
		Help: "The total number of evictions from the grid cache",
	})
	missingHeightmapHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "terrain_missing_heightmap_cache_hits_total",
		Help: "The total number of hits on the missing heightmap cache",
	})
)

// A Source loads heightmap grids from a filesystem, dispatching on file
// extension, with an LRU cache of decoded grids.
type Source struct {
	mutex        sync.Mutex
	fsys         fs.FS
	cacheSize    int
	missingFiles sync.Map
	gridCache    *lru.Cache[string, *Grid]
}

// A SourceOption sets an option on a Source.
type SourceOption func(*Source)

// NewSource returns a new Source with the given options.
func NewSource(options ...SourceOption) (*Source, error) {
	s := &Source{
		cacheSize: 32,
	}
	for _, option := range options {
		option(s)
	}

	var err error
	s.gridCache, err = lru.NewWithEvict(s.cacheSize, func(string, *Grid) {
		gridCacheEvictions.Inc()
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func WithFS(fsys fs.FS) SourceOption {
	return func(s *Source) {
		s.fsys = fsys
	}
}

func WithCacheSize(cacheSize int) SourceOption {
	return func(s *Source) {
		s.cacheSize = cacheSize
	}
}

// Grid returns the grid stored in the named file, using the cache if
// possible. Missing files return fs.ErrNotExist and are remembered so
// repeated lookups never touch the filesystem again.
func (s *Source) Grid(ctx context.Context, name string) (*Grid, error) {
	if _, ok := s.missingFiles.Load(name); ok {
		missingHeightmapHits.Inc()
		return nil, fmt.Errorf("%s: %w", name, fs.ErrNotExist)
	}

	if grid, ok := s.gridCache.Get(name); ok {
		gridCacheHits.Inc()
		return grid, nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if grid, ok := s.gridCache.Get(name); ok {
		gridCacheHits.Inc()
		return grid, nil
	}

	gridCacheMisses.Inc()

	grid, err := s.loadGrid(name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.missingFiles.Store(name, struct{}{})
		return nil, err
	case err != nil:
		return nil, err
	}

	s.gridCache.Add(name, grid)
	return grid, nil
}

// loadGrid reads and decodes the named file.
func (s *Source) loadGrid(name string) (*Grid, error) {
	file, err := s.fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	switch strings.ToLower(path.Ext(name)) {
	case ".r16":
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, err
		}
		return DecodeR16(data)
	case ".tif", ".tiff":
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, err
		}
		grid, err := DecodeTIFF(data)
		if errors.Is(err, errors.ErrUnsupported) {
			// Not a raw 16-bit grayscale TIFF. Retry as a plain image.
			return DecodeImage(bytes.NewReader(data))
		}
		return grid, err
	case ".png", ".bmp":
		return DecodeImage(file)
	default:
		return nil, &DecodeError{Format: path.Ext(name), Err: errors.ErrUnsupported}
	}
}

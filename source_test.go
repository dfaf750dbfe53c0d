package terrain_test

import (
	"encoding/binary"
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/alecthomas/assert/v2"

	"github.com/twpayne/go-terrain"
)

func TestSource_Grid(t *testing.T) {
	fsys := fstest.MapFS{
		"flat.r16": &fstest.MapFile{
			Data: encodeR16Bytes(2, 2, []uint16{0, 65535, 13107, 65535}),
		},
		"flat.tif": &fstest.MapFile{
			Data: encodeTIFF(binary.LittleEndian, 2, 2, []uint16{0, 65535, 13107, 65535}, 16),
		},
	}
	source, err := terrain.NewSource(terrain.WithFS(fsys))
	assert.NoError(t, err)

	expected := []float64{0, 1, 0.2, 1}
	for _, name := range []string{"flat.r16", "flat.tif"} {
		grid, err := source.Grid(t.Context(), name)
		assert.NoError(t, err)
		assert.Equal(t, expected, grid.Values())
	}

	// Cached lookups return the same decoded grid.
	grid1, err := source.Grid(t.Context(), "flat.r16")
	assert.NoError(t, err)
	grid2, err := source.Grid(t.Context(), "flat.r16")
	assert.NoError(t, err)
	assert.True(t, grid1 == grid2)
}

func TestSource_MissingFile(t *testing.T) {
	source, err := terrain.NewSource(terrain.WithFS(fstest.MapFS{}))
	assert.NoError(t, err)

	// Twice: the second lookup hits the missing-file cache.
	for range 2 {
		_, err := source.Grid(t.Context(), "nope.r16")
		assert.IsError(t, err, fs.ErrNotExist)
	}
}

func TestSource_UnsupportedExtension(t *testing.T) {
	fsys := fstest.MapFS{
		"notes.txt": &fstest.MapFile{Data: []byte("hello")},
	}
	source, err := terrain.NewSource(terrain.WithFS(fsys))
	assert.NoError(t, err)

	_, err = source.Grid(t.Context(), "notes.txt")
	var decodeError *terrain.DecodeError
	assert.True(t, errors.As(err, &decodeError))
}

func TestSource_MalformedFile(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.r16": &fstest.MapFile{Data: []byte("too short")},
	}
	source, err := terrain.NewSource(terrain.WithFS(fsys))
	assert.NoError(t, err)

	_, err = source.Grid(t.Context(), "broken.r16")
	var decodeError *terrain.DecodeError
	assert.True(t, errors.As(err, &decodeError))
}

package terrain

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// The raw 16-bit heightmap format is an 8-byte header of width and height
// as little-endian uint32s, followed by width*height little-endian uint16
// samples in row-major order.

const r16HeaderLen = 8

var errTruncated = errors.New("truncated data")

// DecodeR16 decodes a raw 16-bit heightmap. Samples are normalized by
// 65535. Any size mismatch is a decode failure, never silently tolerated.
func DecodeR16(data []byte) (*Grid, error) {
	if len(data) < r16HeaderLen {
		return nil, &DecodeError{Format: "r16", Err: errTruncated}
	}
	width := binary.LittleEndian.Uint32(data[0:4])
	height := binary.LittleEndian.Uint32(data[4:8])
	if width == 0 || height == 0 {
		return nil, &DecodeError{Format: "r16", Err: fmt.Errorf("%dx%d image", width, height)}
	}
	sampleCount := uint64(width) * uint64(height)
	expectedLen := r16HeaderLen + 2*sampleCount
	if uint64(len(data)) != expectedLen {
		return nil, &DecodeError{Format: "r16", Err: fmt.Errorf("%d bytes, expected %d", len(data), expectedLen)}
	}

	values := make([]float64, sampleCount)
	for i := range values {
		sample := binary.LittleEndian.Uint16(data[r16HeaderLen+2*i : r16HeaderLen+2*i+2])
		values[i] = float64(sample) / 65535
	}
	return NewGrid(int(width), int(height), values)
}

// EncodeR16 encodes grid as a raw 16-bit heightmap, quantizing each
// sample to the nearest of 65536 steps.
func EncodeR16(grid *Grid) []byte {
	values := grid.Values()
	data := make([]byte, r16HeaderLen+2*len(values))
	binary.LittleEndian.PutUint32(data[0:4], uint32(grid.Width()))
	binary.LittleEndian.PutUint32(data[4:8], uint32(grid.Height()))
	for i, v := range values {
		sample := uint16(math.Round(min(max(v, 0), 1) * 65535))
		binary.LittleEndian.PutUint16(data[r16HeaderLen+2*i:r16HeaderLen+2*i+2], sample)
	}
	return data
}

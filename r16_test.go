package terrain_test

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/twpayne/go-terrain"
)

func encodeR16Bytes(width, height uint32, samples []uint16) []byte {
	data := make([]byte, 8+2*len(samples))
	binary.LittleEndian.PutUint32(data[0:4], width)
	binary.LittleEndian.PutUint32(data[4:8], height)
	for i, sample := range samples {
		binary.LittleEndian.PutUint16(data[8+2*i:8+2*i+2], sample)
	}
	return data
}

func TestDecodeR16(t *testing.T) {
	data := encodeR16Bytes(2, 2, []uint16{0, 65535, 13107, 65535})
	grid, err := terrain.DecodeR16(data)
	assert.NoError(t, err)
	assert.Equal(t, 2, grid.Width())
	assert.Equal(t, 2, grid.Height())
	assert.Equal(t, []float64{0, 1, 0.2, 1}, grid.Values())
}

func TestDecodeR16_Malformed(t *testing.T) {
	for _, tc := range []struct {
		name string
		data []byte
	}{
		{
			name: "empty",
			data: nil,
		},
		{
			name: "header_only",
			data: encodeR16Bytes(2, 2, nil),
		},
		{
			name: "truncated_samples",
			data: encodeR16Bytes(2, 2, []uint16{0, 1, 2}),
		},
		{
			name: "trailing_bytes",
			data: append(encodeR16Bytes(2, 2, []uint16{0, 1, 2, 3}), 0),
		},
		{
			name: "zero_width",
			data: encodeR16Bytes(0, 2, nil),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := terrain.DecodeR16(tc.data)
			var decodeError *terrain.DecodeError
			assert.True(t, errors.As(err, &decodeError))
		})
	}
}

func TestEncodeR16_RoundTrip(t *testing.T) {
	grid := mustNewGrid(t, 3, 2, []float64{0, 1, 0.2, 0.4, 0.6, 0.8})
	decoded, err := terrain.DecodeR16(terrain.EncodeR16(grid))
	assert.NoError(t, err)
	assert.Equal(t, grid.Width(), decoded.Width())
	assert.Equal(t, grid.Height(), decoded.Height())
	for i, v := range grid.Values() {
		diff := decoded.Values()[i] - v
		assert.True(t, -1.0/65535 < diff && diff < 1.0/65535)
	}
}

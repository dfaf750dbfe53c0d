package terrain_test

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/twpayne/go-terrain"
)

const (
	tiffTypeShort = 3
	tiffTypeLong  = 4
)

type tiffByteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// encodeTIFF assembles a minimal single-strip uncompressed 16-bit
// grayscale TIFF: an 8-byte header, the pixel data, then one IFD.
func encodeTIFF(order tiffByteOrder, width, height uint16, samples []uint16, bitsPerSample uint16) []byte {
	stripOffset := uint32(8)
	stripByteCount := uint32(2 * len(samples))
	ifdOffset := stripOffset + stripByteCount

	data := make([]byte, 8, ifdOffset)
	if order.String() == binary.LittleEndian.String() {
		data[0], data[1] = 'I', 'I'
	} else {
		data[0], data[1] = 'M', 'M'
	}
	order.PutUint16(data[2:4], 42)
	order.PutUint32(data[4:8], ifdOffset)
	for _, sample := range samples {
		data = order.AppendUint16(data, sample)
	}

	// Entries must be sorted by tag.
	entries := []struct {
		tag       uint16
		fieldType uint16
		value     uint32
	}{
		{256, tiffTypeShort, uint32(width)},          // ImageWidth
		{257, tiffTypeShort, uint32(height)},         // ImageLength
		{258, tiffTypeShort, uint32(bitsPerSample)},  // BitsPerSample
		{259, tiffTypeShort, 1},                      // Compression: none
		{262, tiffTypeShort, 1},                      // PhotometricInterpretation: BlackIsZero
		{273, tiffTypeLong, stripOffset},             // StripOffsets
		{277, tiffTypeShort, 1},                      // SamplesPerPixel
		{278, tiffTypeShort, uint32(height)},         // RowsPerStrip
		{279, tiffTypeLong, stripByteCount},          // StripByteCounts
		{339, tiffTypeShort, 1},                      // SampleFormat: unsigned integer
	}

	data = order.AppendUint16(data, uint16(len(entries)))
	for _, entry := range entries {
		data = order.AppendUint16(data, entry.tag)
		data = order.AppendUint16(data, entry.fieldType)
		data = order.AppendUint32(data, 1)
		if entry.fieldType == tiffTypeShort {
			data = order.AppendUint16(data, uint16(entry.value))
			data = order.AppendUint16(data, 0)
		} else {
			data = order.AppendUint32(data, entry.value)
		}
	}
	data = order.AppendUint32(data, 0) // No next IFD.
	return data
}

func TestDecodeTIFF(t *testing.T) {
	for _, tc := range []struct {
		name  string
		order tiffByteOrder
	}{
		{name: "little_endian", order: binary.LittleEndian},
		{name: "big_endian", order: binary.BigEndian},
	} {
		t.Run(tc.name, func(t *testing.T) {
			data := encodeTIFF(tc.order, 2, 2, []uint16{0, 65535, 13107, 52428}, 16)
			grid, err := terrain.DecodeTIFF(data)
			assert.NoError(t, err)
			assert.Equal(t, 2, grid.Width())
			assert.Equal(t, 2, grid.Height())
			assert.Equal(t, []float64{0, 1, 0.2, 0.8}, grid.Values())
		})
	}
}

func TestDecodeTIFF_Unsupported(t *testing.T) {
	// 8-bit samples are the plain image decoder's job, not this one's.
	data := encodeTIFF(binary.LittleEndian, 2, 2, []uint16{0, 1, 2, 3}, 8)
	_, err := terrain.DecodeTIFF(data)
	assert.IsError(t, err, errors.ErrUnsupported)
}

func TestDecodeTIFF_Malformed(t *testing.T) {
	for _, tc := range []struct {
		name string
		data []byte
	}{
		{
			name: "empty",
			data: nil,
		},
		{
			name: "bad_magic",
			data: []byte("not a tiff"),
		},
		{
			name: "truncated",
			data: encodeTIFF(binary.LittleEndian, 2, 2, []uint16{0, 65535, 13107, 52428}, 16)[:16],
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := terrain.DecodeTIFF(tc.data)
			var decodeError *terrain.DecodeError
			assert.True(t, errors.As(err, &decodeError))
		})
	}
}

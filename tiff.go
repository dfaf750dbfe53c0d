package terrain

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/google/tiff"
	"golang.org/x/image/tiff/lzw"
)

const (
	tiffCompressionNone = 1
	tiffCompressionLZW  = 5
)

// A tiffIFD is a struct into which github.com/google/tiff can unmarshal
// an IFD.
type tiffIFD struct {
	ImageWidth                uint16   `tiff:"field,tag=256"`
	ImageLength               uint16   `tiff:"field,tag=257"`
	BitsPerSample             uint16   `tiff:"field,tag=258"`
	Compression               uint16   `tiff:"field,tag=259"`
	PhotometricInterpretation uint16   `tiff:"field,tag=262"`
	StripOffsets              []uint64 `tiff:"field,tag=273"`
	SamplesPerPixel           uint16   `tiff:"field,tag=277"`
	RowsPerStrip              uint16   `tiff:"field,tag=278"`
	StripByteCounts           []uint64 `tiff:"field,tag=279"`
	SampleFormat              uint16   `tiff:"field,tag=339"`
}

// DecodeTIFF decodes a heightmap from a 16-bit single-channel grayscale
// TIFF, normalizing each sample by 65535. Only strip layout with no
// compression or LZW compression is supported; anything else returns
// errors.ErrUnsupported wrapped in a DecodeError.
func DecodeTIFF(data []byte) (*Grid, error) {
	grid, err := decodeTIFF(data)
	if err != nil {
		return nil, &DecodeError{Format: "tiff", Err: err}
	}
	return grid, nil
}

func decodeTIFF(data []byte) (*Grid, error) {
	var order binary.ByteOrder
	switch {
	case len(data) >= 2 && data[0] == 'I' && data[1] == 'I':
		order = binary.LittleEndian
	case len(data) >= 2 && data[0] == 'M' && data[1] == 'M':
		order = binary.BigEndian
	default:
		return nil, errTruncated
	}

	tiffTIFF, err := tiff.Parse(bytes.NewReader(data), nil, nil)
	if err != nil {
		return nil, err
	}
	if len(tiffTIFF.IFDs()) != 1 {
		return nil, fmt.Errorf("found %d IFDs, expected 1", len(tiffTIFF.IFDs()))
	}

	var ifd tiffIFD
	if err := tiff.UnmarshalIFD(tiffTIFF.IFDs()[0], &ifd); err != nil {
		return nil, err
	}

	if ifd.BitsPerSample != 16 ||
		(ifd.SamplesPerPixel != 0 && ifd.SamplesPerPixel != 1) ||
		ifd.PhotometricInterpretation != 1 ||
		(ifd.Compression != tiffCompressionNone && ifd.Compression != tiffCompressionLZW) ||
		(ifd.SampleFormat != 0 && ifd.SampleFormat != 1) {
		return nil, errors.ErrUnsupported
	}

	width := int(ifd.ImageWidth)
	height := int(ifd.ImageLength)
	if width < 1 || height < 1 {
		return nil, ErrInsufficientResolution
	}

	rowsPerStrip := int(ifd.RowsPerStrip)
	if rowsPerStrip == 0 {
		rowsPerStrip = height
	}
	stripsPerImage := (height + rowsPerStrip - 1) / rowsPerStrip
	if len(ifd.StripOffsets) != stripsPerImage || len(ifd.StripByteCounts) != stripsPerImage {
		return nil, errors.New("incorrect number of strip byte counts or offsets")
	}

	values := make([]float64, width*height)
	for strip := range stripsPerImage {
		rows := min(rowsPerStrip, height-strip*rowsPerStrip)
		stripLen := 2 * width * rows
		stripData, err := stripBytes(data, ifd.StripOffsets[strip], ifd.StripByteCounts[strip])
		if err != nil {
			return nil, err
		}
		if ifd.Compression == tiffCompressionLZW {
			stripData, err = decompressStrip(stripData, stripLen)
			if err != nil {
				return nil, err
			}
		} else if len(stripData) < stripLen {
			return nil, errTruncated
		}
		base := strip * rowsPerStrip * width
		for i := range width * rows {
			values[base+i] = float64(order.Uint16(stripData[2*i:2*i+2])) / 65535
		}
	}

	return NewGrid(width, height, values)
}

// stripBytes bounds-checks and returns a strip's raw bytes.
func stripBytes(data []byte, offset, byteCount uint64) ([]byte, error) {
	end := offset + byteCount
	if end < offset || end > uint64(len(data)) {
		return nil, errTruncated
	}
	return data[offset:end], nil
}

// decompressStrip decompresses an LZW strip to exactly length bytes.
func decompressStrip(compressedData []byte, length int) ([]byte, error) {
	stripData := make([]byte, length)
	r := lzw.NewReader(bytes.NewReader(compressedData), lzw.MSB, 8)
	for bytesRead := 0; bytesRead < length; {
		n, err := r.Read(stripData[bytesRead:])
		if err != nil {
			return nil, err
		}
		bytesRead += n
	}
	return stripData, nil
}

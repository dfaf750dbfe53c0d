package terrain

import (
	"image"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// DecodeImage decodes a heightmap from a grayscale image. The normalized
// value of each pixel is its red-channel byte divided by 255. 16-bit
// grayscale images keep their full precision, normalized by 65535.
func DecodeImage(r io.Reader) (*Grid, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, &DecodeError{Format: "image", Err: err}
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width < 1 || height < 1 {
		return nil, &DecodeError{Format: format, Err: ErrInsufficientResolution}
	}
	values := make([]float64, width*height)

	if gray16, ok := img.(*image.Gray16); ok {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				pix := gray16.Gray16At(bounds.Min.X+x, bounds.Min.Y+y)
				values[x+y*width] = float64(pix.Y) / 65535
			}
		}
	} else {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				r32, _, _, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				values[x+y*width] = float64(r32>>8) / 255
			}
		}
	}

	return NewGrid(width, height, values)
}

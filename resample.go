package terrain

// Resample returns grid bilinearly resampled to width x height. Corner
// samples map to corner samples, so resampling to the same size returns
// an equal grid.
func Resample(grid *Grid, width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrInsufficientResolution
	}

	srcWidth, srcHeight := grid.Width(), grid.Height()
	values := make([]float64, width*height)

	scaleX := 0.0
	if width > 1 {
		scaleX = float64(srcWidth-1) / float64(width-1)
	}
	scaleY := 0.0
	if height > 1 {
		scaleY = float64(srcHeight-1) / float64(height-1)
	}

	for y := 0; y < height; y++ {
		srcY := float64(y) * scaleY
		y0 := int(srcY)
		y1 := y0 + 1
		if y1 > srcHeight-1 {
			y1 = srcHeight - 1
		}
		dy := srcY - float64(y0)
		for x := 0; x < width; x++ {
			srcX := float64(x) * scaleX
			x0 := int(srcX)
			x1 := x0 + 1
			if x1 > srcWidth-1 {
				x1 = srcWidth - 1
			}
			dx := srcX - float64(x0)
			values[x+y*width] = 0 +
				grid.At(x0, y0)*(1-dx)*(1-dy) +
				grid.At(x1, y0)*dx*(1-dy) +
				grid.At(x0, y1)*(1-dx)*dy +
				grid.At(x1, y1)*dx*dy
		}
	}

	return NewGrid(width, height, values)
}

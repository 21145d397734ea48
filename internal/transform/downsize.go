package transform

import (
	"fmt"
	"math"

	"github.com/ironsheep/image-edit-mcp/internal/raster"
)

// Downsize shrinks img to newWidth columns and newHeight rows.
//
// Destination (i, j) maps to source (j*cols/newWidth, i*rows/newHeight) with
// integer division. The four pixels at the floor/ceil combinations of that
// coordinate are summed and the sum is divided by 4 even when a sample
// falls outside the source and is skipped. The result pixel takes the
// ceiling of the last sample read.
//
// Both dimensions must be at least 1 and no larger than the source; this
// function never enlarges an image.
func Downsize(img *raster.Image, newWidth, newHeight int) (*raster.Image, error) {
	if newWidth < 1 || newHeight < 1 {
		return nil, fmt.Errorf("%w: dimensions must be greater than 0, got %dx%d",
			raster.ErrInvalidArgument, newWidth, newHeight)
	}
	rows, cols := img.Rows(), img.Cols()
	if newWidth > cols || newHeight > rows {
		return nil, fmt.Errorf("%w: cannot downsize %dx%d image to larger size %dx%d",
			raster.ErrInvalidArgument, cols, rows, newWidth, newHeight)
	}

	out, err := raster.New(newHeight, newWidth, img.MaxValue())
	if err != nil {
		return nil, err
	}

	for i := 0; i < newHeight; i++ {
		for j := 0; j < newWidth; j++ {
			oldX := float64(j * cols / newWidth)
			oldY := float64(i * rows / newHeight)
			top, bottom := int(math.Floor(oldY)), int(math.Ceil(oldY))
			left, right := int(math.Floor(oldX)), int(math.Ceil(oldX))

			var r, g, b, ceiling int
			for _, rc := range [4][2]int{{top, left}, {top, right}, {bottom, left}, {bottom, right}} {
				p, err := img.At(rc[0], rc[1])
				if err != nil {
					continue
				}
				r += p.R()
				g += p.G()
				b += p.B()
				ceiling = p.Max()
			}

			p, err := raster.NewPixel(r/4, g/4, b/4, ceiling)
			if err != nil {
				return nil, fmt.Errorf("downsample (%d,%d): %w", i, j, err)
			}
			if err := out.Set(i, j, p); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// FromImage converts any decoded image to an Image with 8-bit ceilings.
//
// The source is first normalised to non-premultiplied NRGBA, so translucent
// pixels keep their straight color values. Alpha is discarded.
func FromImage(src image.Image) (*Image, error) {
	bounds := src.Bounds()
	if bounds.Dx() < 1 || bounds.Dy() < 1 {
		return nil, fmt.Errorf("%w: decoded image is empty", ErrInvalidArgument)
	}

	nrgba := imaging.Clone(src)
	rows, cols := nrgba.Bounds().Dy(), nrgba.Bounds().Dx()
	pix := make([]Pixel, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := nrgba.NRGBAAt(x, y)
			pix[y*cols+x] = Pixel{r: int(c.R), g: int(c.G), b: int(c.B), max: 255}
		}
	}
	return &Image{rows: rows, cols: cols, pix: pix}, nil
}

// ToNRGBA renders m as an opaque 8-bit image. Channels of pixels whose
// ceiling is not 255 are rescaled to 0-255 with truncation.
func (m *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, m.cols, m.rows))
	for i, p := range m.pix {
		out.SetNRGBA(i%m.cols, i/m.cols, color.NRGBA{
			R: scale8(p.r, p.max),
			G: scale8(p.g, p.max),
			B: scale8(p.b, p.max),
			A: 255,
		})
	}
	return out
}

func scale8(v, ceiling int) uint8 {
	switch {
	case ceiling == 255:
		return uint8(v)
	case ceiling <= 0:
		return 0
	default:
		return uint8(v * 255 / ceiling)
	}
}

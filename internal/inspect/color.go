package inspect

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/image-edit-mcp/internal/raster"
)

// RGBColor holds raw channel values together with their ceiling.
type RGBColor struct {
	R   int `json:"r"`
	G   int `json:"g"`
	B   int `json:"b"`
	Max int `json:"max"`
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains one pixel's color in multiple representations.
type ColorResult struct {
	Row       int      `json:"row"`
	Col       int      `json:"col"`
	Hex       string   `json:"hex"`
	RGB       RGBColor `json:"rgb"`
	HSL       HSLColor `json:"hsl"`
	Intensity int      `json:"intensity"`
}

// SampleColor reports the color of the pixel at (row, col).
//
// Returns an error wrapping raster.ErrOutOfRange if the coordinates are
// outside the image.
func SampleColor(img *raster.Image, row, col int) (*ColorResult, error) {
	p, err := img.At(row, col)
	if err != nil {
		return nil, err
	}

	c := toColorful(p)
	h, s, l := c.Hsl()
	return &ColorResult{
		Row: row,
		Col: col,
		Hex: c.Clamped().Hex(),
		RGB: RGBColor{R: p.R(), G: p.G(), B: p.B(), Max: p.Max()},
		HSL: HSLColor{
			H: int(h),
			S: int(s * 100),
			L: int(l * 100),
		},
		Intensity: p.Intensity(),
	}, nil
}

// toColorful normalizes a pixel to the [0,1] channel range.
func toColorful(p raster.Pixel) colorful.Color {
	if p.Max() == 0 {
		return colorful.Color{}
	}
	ceiling := float64(p.Max())
	return colorful.Color{
		R: float64(p.R()) / ceiling,
		G: float64(p.G()) / ceiling,
		B: float64(p.B()) / ceiling,
	}
}

package transform

import (
	"fmt"
	"strings"

	"github.com/ironsheep/image-edit-mcp/internal/raster"
)

// Brighten adds delta to every channel of every pixel, clamping at the
// pixel's ceiling and at zero. A negative delta darkens.
func Brighten(img *raster.Image, delta int) *raster.Image {
	out := img.Copy()
	if delta == 0 {
		return out
	}
	out.Map(func(_, _ int, p raster.Pixel) raster.Pixel {
		p.Add(delta)
		return p
	})
	return out
}

// Component names the scalar that Greyscale copies into every channel.
type Component int

const (
	Red Component = iota
	Green
	Blue
	Intensity // truncated mean of r, g, b
	Value     // max(r, g, b)
)

var componentNames = map[string]Component{
	"red":       Red,
	"green":     Green,
	"blue":      Blue,
	"intensity": Intensity,
	"value":     Value,
}

// Valid reports whether c is one of the defined components.
func (c Component) Valid() bool {
	return c >= Red && c <= Value
}

func (c Component) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Intensity:
		return "intensity"
	case Value:
		return "value"
	default:
		return fmt.Sprintf("Component(%d)", int(c))
	}
}

// ParseComponent resolves a component tag such as "red" or "intensity".
func ParseComponent(s string) (Component, error) {
	c, ok := componentNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: unknown greyscale component %q", raster.ErrInvalidArgument, s)
	}
	return c, nil
}

// Greyscale replaces each pixel with a grey whose level is the selected
// component of the original pixel.
func Greyscale(img *raster.Image, c Component) (*raster.Image, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: invalid component type %v", raster.ErrInvalidArgument, c)
	}
	var pick func(raster.Pixel) int
	switch c {
	case Red:
		pick = raster.Pixel.R
	case Green:
		pick = raster.Pixel.G
	case Blue:
		pick = raster.Pixel.B
	case Intensity:
		pick = raster.Pixel.Intensity
	default:
		pick = raster.Pixel.Value
	}

	out := img.Copy()
	out.Map(func(_, _ int, p raster.Pixel) raster.Pixel {
		p.SetRGB(pick(p))
		return p
	})
	return out, nil
}

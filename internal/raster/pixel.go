package raster

import "fmt"

// Pixel is an RGB triple with its own channel ceiling.
//
// The zero value is a black pixel with a ceiling of 0; use NewPixel or
// MustPixel to build a usable one.
type Pixel struct {
	r, g, b int
	max     int
}

// NewPixel returns a pixel with the given channels and ceiling.
//
// Returns an error wrapping ErrOutOfRange if any channel or the ceiling is
// negative, or if any channel exceeds max.
func NewPixel(r, g, b, max int) (Pixel, error) {
	if r < 0 || g < 0 || b < 0 || max < 0 {
		return Pixel{}, fmt.Errorf("%w: pixel values cannot be negative (%d,%d,%d max %d)",
			ErrOutOfRange, r, g, b, max)
	}
	if r > max || g > max || b > max {
		return Pixel{}, fmt.Errorf("%w: pixel values (%d,%d,%d) exceed maximum %d",
			ErrOutOfRange, r, g, b, max)
	}
	return Pixel{r: r, g: g, b: b, max: max}, nil
}

// MustPixel is like NewPixel but panics on invalid input.
// Intended for constants and tests.
func MustPixel(r, g, b, max int) Pixel {
	p, err := NewPixel(r, g, b, max)
	if err != nil {
		panic(err)
	}
	return p
}

// Black is the stencil value that selects "keep the edit" in a mask.
var Black = MustPixel(0, 0, 0, 255)

// R returns the red channel.
func (p Pixel) R() int { return p.r }

// G returns the green channel.
func (p Pixel) G() int { return p.g }

// B returns the blue channel.
func (p Pixel) B() int { return p.b }

// Max returns the channel ceiling.
func (p Pixel) Max() int { return p.max }

// Intensity is the truncated average of the three channels.
func (p Pixel) Intensity() int {
	return (p.r + p.g + p.b) / 3
}

// Value is the largest of the three channels.
func (p Pixel) Value() int {
	v := p.r
	if p.g > v {
		v = p.g
	}
	if p.b > v {
		v = p.b
	}
	return v
}

// Constrain clamps v to [0, Max]. All channel arithmetic goes through here.
func (p Pixel) Constrain(v int) int {
	if v < 0 {
		return 0
	}
	if v > p.max {
		return p.max
	}
	return v
}

// Add shifts every channel by delta, clamping the results.
func (p *Pixel) Add(delta int) {
	p.r = p.Constrain(p.r + delta)
	p.g = p.Constrain(p.g + delta)
	p.b = p.Constrain(p.b + delta)
}

// SetRGB assigns v (clamped) to all three channels.
func (p *Pixel) SetRGB(v int) {
	v = p.Constrain(v)
	p.r, p.g, p.b = v, v, v
}

// SetR assigns v (clamped) to the red channel.
func (p *Pixel) SetR(v int) { p.r = p.Constrain(v) }

// SetG assigns v (clamped) to the green channel.
func (p *Pixel) SetG(v int) { p.g = p.Constrain(v) }

// SetB assigns v (clamped) to the blue channel.
func (p *Pixel) SetB(v int) { p.b = p.Constrain(v) }

// Copy returns an independent pixel equal to p.
func (p Pixel) Copy() Pixel {
	return p
}

// Equal reports whether both pixels have the same channels and ceiling.
func (p Pixel) Equal(o Pixel) bool {
	return p == o
}

func (p Pixel) String() string {
	return fmt.Sprintf("%d %d %d", p.r, p.g, p.b)
}

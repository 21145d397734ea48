package transform

import (
	"fmt"
	"strings"

	"github.com/ironsheep/image-edit-mcp/internal/raster"
)

// Axis selects the mirror line of Flip.
type Axis int

const (
	// Vertical mirrors across the vertical center line (left-right swap).
	Vertical Axis = iota
	// Horizontal mirrors across the horizontal center line (top-bottom swap).
	Horizontal
)

func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis resolves "vertical" or "horizontal" (case-insensitive).
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	default:
		return 0, fmt.Errorf("%w: unknown flip axis %q", raster.ErrInvalidArgument, s)
	}
}

// Flip mirrors img along axis.
//
// Only half of the swapped index range is visited, so each pair is
// exchanged exactly once; the middle row or column of an odd dimension
// stays in place.
func Flip(img *raster.Image, axis Axis) (*raster.Image, error) {
	out := img.Copy()
	rows, cols := out.Rows(), out.Cols()

	switch axis {
	case Vertical:
		for i := 0; i < rows; i++ {
			for j := 0; j < cols/2; j++ {
				if err := swap(out, i, j, i, cols-1-j); err != nil {
					return nil, err
				}
			}
		}
	case Horizontal:
		for i := 0; i < rows/2; i++ {
			for j := 0; j < cols; j++ {
				if err := swap(out, i, j, rows-1-i, j); err != nil {
					return nil, err
				}
			}
		}
	default:
		return nil, fmt.Errorf("%w: unknown flip axis %v", raster.ErrInvalidArgument, axis)
	}
	return out, nil
}

func swap(img *raster.Image, r1, c1, r2, c2 int) error {
	a, err := img.At(r1, c1)
	if err != nil {
		return err
	}
	b, err := img.At(r2, c2)
	if err != nil {
		return err
	}
	if err := img.Set(r1, c1, b); err != nil {
		return err
	}
	return img.Set(r2, c2, a)
}

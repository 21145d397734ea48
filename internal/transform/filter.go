package transform

import (
	"fmt"

	"github.com/ironsheep/image-edit-mcp/internal/raster"
)

// Kernel is a convolution weight matrix indexed [row][col]. Both dimensions
// are odd so the kernel has a center cell.
type Kernel [][]float64

// BlurKernel is a 3×3 Gaussian approximation whose weights sum to 1.
var BlurKernel = Kernel{
	{0.0625, 0.125, 0.0625},
	{0.125, 0.25, 0.125},
	{0.0625, 0.125, 0.0625},
}

// SharpenKernel is a 5×5 kernel with a negative outer ring and a 1.0 center.
var SharpenKernel = Kernel{
	{-0.125, -0.125, -0.125, -0.125, -0.125},
	{-0.125, 0.25, 0.25, 0.25, -0.125},
	{-0.125, 0.25, 1.0, 0.25, -0.125},
	{-0.125, 0.25, 0.25, 0.25, -0.125},
	{-0.125, -0.125, -0.125, -0.125, -0.125},
}

var kernels = map[string]Kernel{
	"Blur":    BlurKernel,
	"Sharpen": SharpenKernel,
}

// KernelByName resolves "Blur" or "Sharpen".
func KernelByName(name string) (Kernel, error) {
	k, ok := kernels[name]
	if !ok {
		return nil, fmt.Errorf("%w: filter %q not found", raster.ErrInvalidArgument, name)
	}
	return k, nil
}

// Validate checks that k is non-empty, rectangular and odd in both
// dimensions.
func (k Kernel) Validate() error {
	if len(k) == 0 || len(k[0]) == 0 {
		return fmt.Errorf("%w: kernel cannot be empty", raster.ErrInvalidArgument)
	}
	h, w := len(k), len(k[0])
	if h%2 == 0 || w%2 == 0 {
		return fmt.Errorf("%w: kernel dimensions must be odd, got %dx%d", raster.ErrInvalidArgument, w, h)
	}
	for i, row := range k {
		if len(row) != w {
			return fmt.Errorf("%w: kernel row %d has %d weights, want %d", raster.ErrInvalidArgument, i, len(row), w)
		}
	}
	return nil
}

// Filter convolves img with k.
//
// Kernel cells that fall outside the image are left out of the sum
// entirely: there is no padding and no renormalization, so border pixels
// sum over fewer terms. Sums are computed from the unmodified input, then
// truncated and clamped per channel.
func Filter(img *raster.Image, k Kernel) (*raster.Image, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}

	out := img.Copy()
	kh, kw := len(k), len(k[0])
	for i := 0; i < img.Rows(); i++ {
		for j := 0; j < img.Cols(); j++ {
			var r, g, b float64
			for x := 0; x < kh; x++ {
				for y := 0; y < kw; y++ {
					si := i - (kh/2 - x)
					sj := j - (kw/2 - y)
					if !img.InBounds(si, sj) {
						continue
					}
					src, err := img.At(si, sj)
					if err != nil {
						return nil, err
					}
					w := k[x][y]
					r += float64(src.R()) * w
					g += float64(src.G()) * w
					b += float64(src.B()) * w
				}
			}

			p, err := img.At(i, j)
			if err != nil {
				return nil, err
			}
			p.SetR(int(r))
			p.SetG(int(g))
			p.SetB(int(b))
			if err := out.Set(i, j, p); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

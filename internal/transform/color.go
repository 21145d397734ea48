package transform

import (
	"fmt"

	"github.com/ironsheep/image-edit-mcp/internal/raster"
)

// Matrix is a 3×3 linear color transform; row k produces output channel k
// from the input vector [r, g, b].
type Matrix [3][3]float64

// LumaMatrix maps every channel to the Rec. 709 luma of the pixel.
var LumaMatrix = Matrix{
	{0.2126, 0.7152, 0.0722},
	{0.2126, 0.7152, 0.0722},
	{0.2126, 0.7152, 0.0722},
}

// SepiaMatrix produces a warm brown tone.
var SepiaMatrix = Matrix{
	{0.393, 0.769, 0.189},
	{0.349, 0.686, 0.168},
	{0.272, 0.534, 0.131},
}

var matrices = map[string]Matrix{
	"Greyscale": LumaMatrix,
	"Sepia":     SepiaMatrix,
}

// MatrixByName resolves "Greyscale" or "Sepia".
func MatrixByName(name string) (Matrix, error) {
	m, ok := matrices[name]
	if !ok {
		return Matrix{}, fmt.Errorf("%w: matrix %q not found", raster.ErrInvalidArgument, name)
	}
	return m, nil
}

// ColorTransform applies m to every pixel. Each output channel is truncated
// to an integer and then clamped to the pixel's ceiling.
func ColorTransform(img *raster.Image, m Matrix) *raster.Image {
	out := img.Copy()
	out.Map(func(_, _ int, p raster.Pixel) raster.Pixel {
		in := [3]float64{float64(p.R()), float64(p.G()), float64(p.B())}
		var res [3]float64
		for x := 0; x < 3; x++ {
			for y := 0; y < 3; y++ {
				res[x] += in[y] * m[x][y]
			}
		}
		p.SetR(int(res[0]))
		p.SetG(int(res[1]))
		p.SetB(int(res[2]))
		return p
	})
	return out
}

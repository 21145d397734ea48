package raster

import (
	"fmt"
)

// Image is a rows×cols grid of pixels.
//
// Image is not safe for concurrent mutation. Callers that share an Image
// across goroutines should hand out copies (see collection.Collection).
type Image struct {
	rows, cols int
	pix        []Pixel // row-major
}

// New creates a rows×cols image filled with black pixels of the given ceiling.
func New(rows, cols, max int) (*Image, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: image dimensions must be positive, got %dx%d",
			ErrInvalidArgument, cols, rows)
	}
	black, err := NewPixel(0, 0, 0, max)
	if err != nil {
		return nil, err
	}
	pix := make([]Pixel, rows*cols)
	for i := range pix {
		pix[i] = black
	}
	return &Image{rows: rows, cols: cols, pix: pix}, nil
}

// FromPixels builds an image from a grid indexed [row][col]. The grid is
// copied; later changes to it do not affect the image.
func FromPixels(grid [][]Pixel) (*Image, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("%w: pixel grid cannot be empty", ErrInvalidArgument)
	}
	rows, cols := len(grid), len(grid[0])
	pix := make([]Pixel, 0, rows*cols)
	for i, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d pixels, want %d",
				ErrInvalidArgument, i, len(row), cols)
		}
		pix = append(pix, row...)
	}
	return &Image{rows: rows, cols: cols, pix: pix}, nil
}

// Rows returns the image height in pixels.
func (m *Image) Rows() int { return m.rows }

// Cols returns the image width in pixels.
func (m *Image) Cols() int { return m.cols }

// MaxValue returns the largest pixel ceiling in m. It is the image-wide
// ceiling written to a PPM header, so no channel can exceed it.
func (m *Image) MaxValue() int {
	most := 0
	for _, p := range m.pix {
		if p.max > most {
			most = p.max
		}
	}
	return most
}

// InBounds reports whether (row, col) addresses a pixel of m.
func (m *Image) InBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// At returns a copy of the pixel at (row, col).
func (m *Image) At(row, col int) (Pixel, error) {
	if !m.InBounds(row, col) {
		return Pixel{}, fmt.Errorf("%w: pixel (%d,%d) outside %dx%d image",
			ErrOutOfRange, row, col, m.rows, m.cols)
	}
	return m.pix[row*m.cols+col], nil
}

// Set stores a copy of p at (row, col).
func (m *Image) Set(row, col int, p Pixel) error {
	if !m.InBounds(row, col) {
		return fmt.Errorf("%w: pixel (%d,%d) outside %dx%d image",
			ErrOutOfRange, row, col, m.rows, m.cols)
	}
	m.pix[row*m.cols+col] = p
	return nil
}

// Copy returns a deep copy of m.
func (m *Image) Copy() *Image {
	pix := make([]Pixel, len(m.pix))
	copy(pix, m.pix)
	return &Image{rows: m.rows, cols: m.cols, pix: pix}
}

// Equal reports whether both images have the same size and equal pixels.
func (m *Image) Equal(o *Image) bool {
	if m == o {
		return true
	}
	if m == nil || o == nil || m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.pix {
		if m.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

// SameSize reports whether m and o have identical dimensions.
func (m *Image) SameSize(o *Image) bool {
	return m.rows == o.rows && m.cols == o.cols
}

// Each calls fn for every pixel in row-major order.
func (m *Image) Each(fn func(row, col int, p Pixel)) {
	for i, p := range m.pix {
		fn(i/m.cols, i%m.cols, p)
	}
}

// Map replaces every pixel with fn's result, in row-major order.
func (m *Image) Map(fn func(row, col int, p Pixel) Pixel) {
	for i, p := range m.pix {
		m.pix[i] = fn(i/m.cols, i%m.cols, p)
	}
}

package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ironsheep/image-edit-mcp/internal/raster"
)

// ppmMagic is the header token of the plain (ASCII) PPM format.
const ppmMagic = "P3"

// ppmComment is written as the second line of every encoded file.
const ppmComment = "# Image created by image-edit-mcp."

// DecodePPM reads a plain PPM raster from r.
//
// The format is the token "P3", then width, height and the maximum channel
// value, then one integer per channel in row-major r,g,b order. Lines whose
// first character is '#' are comments and are skipped.
//
// Returns an error wrapping raster.ErrInvalidArgument on malformed input and
// raster.ErrOutOfRange if a channel exceeds the declared maximum.
func DecodePPM(r io.Reader) (*raster.Image, error) {
	var tokens []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		tokens = append(tokens, strings.Fields(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read PPM data: %v", raster.ErrInvalidArgument, err)
	}

	if len(tokens) == 0 || tokens[0] != ppmMagic {
		return nil, fmt.Errorf("%w: not a plain PPM file (missing %s header)", raster.ErrInvalidArgument, ppmMagic)
	}
	pos := 1
	next := func(what string) (int, error) {
		if pos >= len(tokens) {
			return 0, fmt.Errorf("%w: unexpected end of PPM data reading %s", raster.ErrInvalidArgument, what)
		}
		v, err := strconv.Atoi(tokens[pos])
		if err != nil {
			return 0, fmt.Errorf("%w: invalid %s %q in PPM data", raster.ErrInvalidArgument, what, tokens[pos])
		}
		pos++
		return v, nil
	}

	cols, err := next("width")
	if err != nil {
		return nil, err
	}
	rows, err := next("height")
	if err != nil {
		return nil, err
	}
	maxValue, err := next("maximum value")
	if err != nil {
		return nil, err
	}

	// The header alone can claim any size; check the body holds every
	// channel before allocating.
	if rows >= 1 && cols >= 1 && (len(tokens)-pos)/3/rows < cols {
		return nil, fmt.Errorf("%w: PPM header declares %dx%d pixels but only %d channel values follow",
			raster.ErrInvalidArgument, cols, rows, len(tokens)-pos)
	}

	img, err := raster.New(rows, cols, maxValue)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var ch [3]int
			for k := range ch {
				if ch[k], err = next("channel value"); err != nil {
					return nil, err
				}
			}
			p, err := raster.NewPixel(ch[0], ch[1], ch[2], maxValue)
			if err != nil {
				return nil, fmt.Errorf("pixel (%d,%d): %w", i, j, err)
			}
			if err := img.Set(i, j, p); err != nil {
				return nil, err
			}
		}
	}
	return img, nil
}

// EncodePPM writes img to w as plain PPM: the header lines "P3", a comment,
// "cols rows" and the maximum value, then one channel value per line.
func EncodePPM(w io.Writer, img *raster.Image) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, ppmMagic)
	fmt.Fprintln(bw, ppmComment)
	fmt.Fprintf(bw, "%d %d\n", img.Cols(), img.Rows())
	fmt.Fprintln(bw, img.MaxValue())

	img.Each(func(_, _ int, p raster.Pixel) {
		fmt.Fprintln(bw, p.R())
		fmt.Fprintln(bw, p.G())
		fmt.Fprintln(bw, p.B())
	})
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PPM data: %w", err)
	}
	return nil
}

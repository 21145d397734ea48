package transform

import (
	"fmt"

	"github.com/ironsheep/image-edit-mcp/internal/raster"
)

// HistogramBins is the number of buckets in each histogram table.
const HistogramBins = 256

// Histogram holds per-value pixel counts for each channel and for
// intensity.
type Histogram struct {
	Red       [HistogramBins]int `json:"red"`
	Green     [HistogramBins]int `json:"green"`
	Blue      [HistogramBins]int `json:"blue"`
	Intensity [HistogramBins]int `json:"intensity"`
}

// ComputeHistogram counts how often each channel value occurs in img.
//
// Returns an error wrapping raster.ErrOutOfRange if any channel exceeds
// 255, since such values have no bucket.
func ComputeHistogram(img *raster.Image) (*Histogram, error) {
	h := &Histogram{}
	var bad error
	img.Each(func(row, col int, p raster.Pixel) {
		if bad != nil {
			return
		}
		if p.R() >= HistogramBins || p.G() >= HistogramBins || p.B() >= HistogramBins {
			bad = fmt.Errorf("%w: pixel (%d,%d) value %v exceeds histogram range",
				raster.ErrOutOfRange, row, col, p)
			return
		}
		h.Red[p.R()]++
		h.Green[p.G()]++
		h.Blue[p.B()]++
		h.Intensity[p.Intensity()]++
	})
	if bad != nil {
		return nil, bad
	}
	return h, nil
}

// MaxFrequency returns the largest count across all four tables, which is
// the natural vertical scale when plotting the histogram.
func (h *Histogram) MaxFrequency() int {
	most := 0
	for _, table := range [][HistogramBins]int{h.Red, h.Green, h.Blue, h.Intensity} {
		for _, n := range table {
			if n > most {
				most = n
			}
		}
	}
	return most
}

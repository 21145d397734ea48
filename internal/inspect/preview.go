package inspect

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/anthonynsimon/bild/transform"

	"github.com/ironsheep/image-edit-mcp/internal/raster"
	edit "github.com/ironsheep/image-edit-mcp/internal/transform"
)

// PreviewResult contains a rendered variant encoded as base64 PNG.
type PreviewResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// MaxPreviewSide is the largest width or height a scaled preview may have.
const MaxPreviewSide = 4096

// Preview renders img to PNG, rescaled by scale when it is positive and not
// 1.0. The scaled size never drops below one pixel per side.
//
// Returns an error wrapping raster.ErrInvalidArgument if scaling would make
// either side larger than MaxPreviewSide.
func Preview(img *raster.Image, scale float64) (*PreviewResult, error) {
	var out image.Image = img.ToNRGBA()

	if scale > 0 && scale != 1.0 {
		fw := float64(img.Cols()) * scale
		fh := float64(img.Rows()) * scale
		if fw > MaxPreviewSide || fh > MaxPreviewSide {
			return nil, fmt.Errorf("%w: preview of %dx%d at scale %g would exceed %d pixels per side",
				raster.ErrInvalidArgument, img.Cols(), img.Rows(), scale, MaxPreviewSide)
		}
		w, h := int(fw), int(fh)
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		out = transform.Resize(out, w, h, transform.Linear)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	return &PreviewResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// HistogramResult wraps the four frequency tables with their peak count.
type HistogramResult struct {
	*edit.Histogram
	MaxFrequency int `json:"max_frequency"`
}

// Histogram computes the channel and intensity histograms of img.
func Histogram(img *raster.Image) (*HistogramResult, error) {
	h, err := edit.ComputeHistogram(img)
	if err != nil {
		return nil, err
	}
	return &HistogramResult{Histogram: h, MaxFrequency: h.MaxFrequency()}, nil
}

// Package codec reads and writes image files for the collection.
//
// Files whose path ends in ".ppm" use the plain-text PPM (P3) format and
// keep their declared channel ceiling. Every other extension goes through
// the generic decoders and encoders (PNG, JPEG, GIF, BMP, TIFF, plus WebP
// for reading) and is treated as 8-bit.
package codec

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/ironsheep/image-edit-mcp/internal/raster"
)

const ppmExt = ".ppm"

// Read loads the image file at path.
//
// Returns an error wrapping raster.ErrNotFound if the file does not exist,
// or raster.ErrInvalidArgument if it cannot be decoded.
func Read(path string) (*raster.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path cannot be empty", raster.ErrInvalidArgument)
	}
	if strings.HasSuffix(path, ppmExt) {
		return readPPM(path)
	}

	src, err := imaging.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: file %s", raster.ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: failed to decode image %s: %v", raster.ErrInvalidArgument, path, err)
	}
	return raster.FromImage(src)
}

func readPPM(path string) (*raster.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: file %s", raster.ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: failed to open image: %v", raster.ErrInvalidArgument, err)
	}
	defer f.Close()

	img, err := DecodePPM(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Write saves img to path, choosing the format from the file extension.
//
// Returns an error wrapping raster.ErrInvalidArgument if the path has no
// extension or the extension names an unsupported format.
func Write(path string, img *raster.Image) error {
	if img == nil {
		return fmt.Errorf("%w: cannot save a nil image", raster.ErrInvalidArgument)
	}
	if filepath.Ext(path) == "" {
		return fmt.Errorf("%w: pathname %q has no file extension", raster.ErrInvalidArgument, path)
	}
	if strings.HasSuffix(path, ppmExt) {
		return writePPM(path, img)
	}

	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("%w: unsupported file extension %q", raster.ErrInvalidArgument, filepath.Ext(path))
	}
	if err := imaging.Save(img.ToNRGBA(), path); err != nil {
		return fmt.Errorf("%w: file writing failed: %v", raster.ErrInvalidArgument, err)
	}
	return nil
}

func writePPM(path string, img *raster.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: file creation failed: %v", raster.ErrInvalidArgument, err)
	}
	if err := EncodePPM(f, img); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", raster.ErrInvalidArgument, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: file writing failed: %v", raster.ErrInvalidArgument, err)
	}
	return nil
}

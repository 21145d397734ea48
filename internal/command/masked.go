package command

import (
	"fmt"

	"github.com/ironsheep/image-edit-mcp/internal/collection"
	"github.com/ironsheep/image-edit-mcp/internal/raster"
)

// Masked limits another command's effect to the pixels a stencil selects.
//
// The inner command runs unmodified against a staging layer over the store.
// Its full result is then merged with the pre-edit source: wherever the
// stencil pixel is not pure black, the source pixel is restored. Only the
// merged image is written to the store, under the target name; any other
// writes the inner command made are discarded.
type Masked struct {
	inner  collection.Command
	source string
	target string
	mask   string
}

// NewMasked wraps inner. source must name the variant inner reads and
// target the variant it writes.
func NewMasked(inner collection.Command, source, target, mask string) (*Masked, error) {
	if inner == nil {
		return nil, fmt.Errorf("%w: masked command requires an inner command", raster.ErrInvalidArgument)
	}
	if source == "" || target == "" || mask == "" {
		return nil, fmt.Errorf("%w: source, target and mask image names are required", raster.ErrInvalidArgument)
	}
	return &Masked{inner: inner, source: source, target: target, mask: mask}, nil
}

// Execute runs the inner command on a staging copy of the store, merges
// the edit through the mask and stores only the merged target. The store is
// unchanged if any step fails.
func (c *Masked) Execute(store collection.Store) error {
	original, err := store.Image(c.source)
	if err != nil {
		return err
	}

	stage := newOverlay(store)
	if err := c.inner.Execute(stage); err != nil {
		return err
	}

	edited, err := stage.Image(c.target)
	if err != nil {
		return err
	}
	mask, err := stage.Image(c.mask)
	if err != nil {
		return err
	}

	if !mask.SameSize(edited) {
		return fmt.Errorf("%w: image %q is %dx%d but its mask %q is %dx%d",
			raster.ErrSizeMismatch, c.target, edited.Cols(), edited.Rows(),
			c.mask, mask.Cols(), mask.Rows())
	}

	var mergeErr error
	edited.Map(func(row, col int, p raster.Pixel) raster.Pixel {
		m, err := mask.At(row, col)
		if err != nil {
			mergeErr = err
			return p
		}
		if m.Equal(raster.Black) {
			return p
		}
		orig, err := original.At(row, col)
		if err != nil {
			mergeErr = err
			return p
		}
		return orig
	})
	if mergeErr != nil {
		return mergeErr
	}

	return store.Put(c.target, edited)
}

// String describes the command for logs.
func (c *Masked) String() string {
	return fmt.Sprintf("masked(%v) with %s", c.inner, c.mask)
}

// overlay is a write-buffering Store. Reads see staged writes first and
// fall through to the base store; nothing reaches the base until the caller
// copies it there.
type overlay struct {
	base   collection.Store
	staged map[string]*raster.Image
}

func newOverlay(base collection.Store) *overlay {
	return &overlay{base: base, staged: make(map[string]*raster.Image)}
}

func (o *overlay) Image(name string) (*raster.Image, error) {
	if img, ok := o.staged[name]; ok {
		return img.Copy(), nil
	}
	return o.base.Image(name)
}

func (o *overlay) Put(name string, img *raster.Image) error {
	if name == "" {
		return fmt.Errorf("%w: image name cannot be empty", raster.ErrInvalidArgument)
	}
	if img == nil {
		return fmt.Errorf("%w: cannot add a nil image", raster.ErrInvalidArgument)
	}
	o.staged[name] = img.Copy()
	return nil
}

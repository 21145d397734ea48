package command

import (
	"fmt"

	"github.com/ironsheep/image-edit-mcp/internal/collection"
	"github.com/ironsheep/image-edit-mcp/internal/raster"
	"github.com/ironsheep/image-edit-mcp/internal/transform"
)

// edit holds the source and target names shared by every editing command.
type edit struct {
	source string
	target string
}

func newEdit(source, target string) (edit, error) {
	if source == "" || target == "" {
		return edit{}, fmt.Errorf("%w: source and target image names are required", raster.ErrInvalidArgument)
	}
	return edit{source: source, target: target}, nil
}

// Source returns the name of the variant the command reads.
func (e edit) Source() string { return e.source }

// Target returns the name of the variant the command writes.
func (e edit) Target() string { return e.target }

// apply reads the source, runs fn on the private copy and writes the result
// under the target name.
func (e edit) apply(store collection.Store, fn func(*raster.Image) (*raster.Image, error)) error {
	img, err := store.Image(e.source)
	if err != nil {
		return err
	}
	out, err := fn(img)
	if err != nil {
		return err
	}
	return store.Put(e.target, out)
}

// Brighten shifts every channel of the source by a constant.
type Brighten struct {
	edit
	delta int
}

// NewBrighten creates a command that adds delta to every channel.
func NewBrighten(source, target string, delta int) (*Brighten, error) {
	e, err := newEdit(source, target)
	if err != nil {
		return nil, err
	}
	return &Brighten{edit: e, delta: delta}, nil
}

// NewDarken creates a command that subtracts amount from every channel.
func NewDarken(source, target string, amount int) (*Brighten, error) {
	return NewBrighten(source, target, -amount)
}

// Execute shifts the source and stores the result under the target.
func (c *Brighten) Execute(store collection.Store) error {
	return c.apply(store, func(img *raster.Image) (*raster.Image, error) {
		return transform.Brighten(img, c.delta), nil
	})
}

// String describes the command for logs.
func (c *Brighten) String() string {
	return fmt.Sprintf("brighten %s -> %s by %d", c.source, c.target, c.delta)
}

// Flip mirrors the source along an axis.
type Flip struct {
	edit
	axis transform.Axis
}

// NewFlip creates a flip command.
func NewFlip(source, target string, axis transform.Axis) (*Flip, error) {
	e, err := newEdit(source, target)
	if err != nil {
		return nil, err
	}
	if axis != transform.Vertical && axis != transform.Horizontal {
		return nil, fmt.Errorf("%w: unknown flip axis %v", raster.ErrInvalidArgument, axis)
	}
	return &Flip{edit: e, axis: axis}, nil
}

// Execute mirrors the source and stores the result under the target.
func (c *Flip) Execute(store collection.Store) error {
	return c.apply(store, func(img *raster.Image) (*raster.Image, error) {
		return transform.Flip(img, c.axis)
	})
}

// String describes the command for logs.
func (c *Flip) String() string {
	return fmt.Sprintf("flip-%s %s -> %s", c.axis, c.source, c.target)
}

// Greyscale reduces the source to one of its scalar components.
type Greyscale struct {
	edit
	component transform.Component
}

// NewGreyscale creates a greyscale command for component c.
func NewGreyscale(source, target string, c transform.Component) (*Greyscale, error) {
	e, err := newEdit(source, target)
	if err != nil {
		return nil, err
	}
	if !c.Valid() {
		return nil, fmt.Errorf("%w: invalid greyscale component %v", raster.ErrInvalidArgument, c)
	}
	return &Greyscale{edit: e, component: c}, nil
}

// Execute reduces the source to one component and stores the result.
func (c *Greyscale) Execute(store collection.Store) error {
	return c.apply(store, func(img *raster.Image) (*raster.Image, error) {
		return transform.Greyscale(img, c.component)
	})
}

// String describes the command for logs.
func (c *Greyscale) String() string {
	return fmt.Sprintf("%s-component %s -> %s", c.component, c.source, c.target)
}

// ColorTransform applies a named 3×3 color matrix.
type ColorTransform struct {
	edit
	name   string
	matrix transform.Matrix
}

// NewColorTransform creates a color transform for the matrix called name
// ("Greyscale" or "Sepia").
func NewColorTransform(source, target, name string) (*ColorTransform, error) {
	e, err := newEdit(source, target)
	if err != nil {
		return nil, err
	}
	m, err := transform.MatrixByName(name)
	if err != nil {
		return nil, err
	}
	return &ColorTransform{edit: e, name: name, matrix: m}, nil
}

// Execute applies the matrix to the source and stores the result.
func (c *ColorTransform) Execute(store collection.Store) error {
	return c.apply(store, func(img *raster.Image) (*raster.Image, error) {
		return transform.ColorTransform(img, c.matrix), nil
	})
}

// String describes the command for logs.
func (c *ColorTransform) String() string {
	return fmt.Sprintf("color %s %s -> %s", c.name, c.source, c.target)
}

// Filter convolves the source with a named kernel.
type Filter struct {
	edit
	name   string
	kernel transform.Kernel
}

// NewFilter creates a filter command for the kernel called name ("Blur" or
// "Sharpen").
func NewFilter(source, target, name string) (*Filter, error) {
	e, err := newEdit(source, target)
	if err != nil {
		return nil, err
	}
	k, err := transform.KernelByName(name)
	if err != nil {
		return nil, err
	}
	return &Filter{edit: e, name: name, kernel: k}, nil
}

// Execute convolves the source and stores the result.
func (c *Filter) Execute(store collection.Store) error {
	return c.apply(store, func(img *raster.Image) (*raster.Image, error) {
		return transform.Filter(img, c.kernel)
	})
}

// String describes the command for logs.
func (c *Filter) String() string {
	return fmt.Sprintf("filter %s %s -> %s", c.name, c.source, c.target)
}

// Downsize shrinks the source to a smaller width and height.
type Downsize struct {
	edit
	width, height int
}

// NewDownsize creates a downsize command. The upper bound (the source size)
// is checked when the command runs.
func NewDownsize(source, target string, width, height int) (*Downsize, error) {
	e, err := newEdit(source, target)
	if err != nil {
		return nil, err
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: dimensions must be greater than 0, got %dx%d",
			raster.ErrInvalidArgument, width, height)
	}
	return &Downsize{edit: e, width: width, height: height}, nil
}

// Execute shrinks the source and stores the result. It fails if the
// requested size is larger than the source.
func (c *Downsize) Execute(store collection.Store) error {
	return c.apply(store, func(img *raster.Image) (*raster.Image, error) {
		return transform.Downsize(img, c.width, c.height)
	})
}

// String describes the command for logs.
func (c *Downsize) String() string {
	return fmt.Sprintf("downsize %s -> %s to %dx%d", c.source, c.target, c.width, c.height)
}

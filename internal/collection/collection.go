// Package collection holds the named image variants that commands read
// from and write back to.
package collection

import (
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/ironsheep/image-edit-mcp/internal/raster"
)

// Command is a unit of work run against a Collection.
type Command interface {
	Execute(store Store) error
}

// Store is the name→image mapping a Command operates on.
//
// Implementations must copy on both sides of the boundary: Image returns a
// private copy and Put stores its own copy, so no two variants ever share a
// pixel buffer.
type Store interface {
	Image(name string) (*raster.Image, error)
	Put(name string, img *raster.Image) error
}

// Collection is an in-memory Store of named image variants.
//
// Collection is safe for concurrent use. Reads and writes of individual
// variants are guarded by mu; Execute additionally serializes whole
// commands so that at most one command runs at a time.
//
// # Example Usage
//
//	c := collection.New()
//	load, err := command.NewLoad("photo.ppm", "photo")
//	if err != nil {
//	    return err
//	}
//	if err := c.Execute(load); err != nil {
//	    return err
//	}
//	img, err := c.Image("photo")
type Collection struct {
	exec sync.Mutex // held for the duration of one command

	mu     sync.RWMutex
	images map[string]*raster.Image
}

// New creates an empty collection.
func New() *Collection {
	return &Collection{
		images: make(map[string]*raster.Image),
	}
}

// Image returns a deep copy of the variant stored under name.
//
// Returns an error wrapping raster.ErrNotFound if no such variant exists.
func (c *Collection) Image(name string) (*raster.Image, error) {
	c.mu.RLock()
	img, ok := c.images[name]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: image %q not found; load an image or check that the name is correct",
			raster.ErrNotFound, name)
	}
	return img.Copy(), nil
}

// Put stores a deep copy of img under name, replacing any existing variant.
func (c *Collection) Put(name string, img *raster.Image) error {
	if name == "" {
		return fmt.Errorf("%w: image name cannot be empty", raster.ErrInvalidArgument)
	}
	if img == nil {
		return fmt.Errorf("%w: cannot add a nil image", raster.ErrInvalidArgument)
	}
	cp := img.Copy()

	c.mu.Lock()
	c.images[name] = cp
	c.mu.Unlock()
	return nil
}

// Execute runs cmd against the collection. Commands are run one at a time;
// a second caller blocks until the first command returns.
func (c *Collection) Execute(cmd Command) error {
	if cmd == nil {
		return fmt.Errorf("%w: command cannot be nil", raster.ErrInvalidArgument)
	}
	c.exec.Lock()
	defer c.exec.Unlock()
	return cmd.Execute(c)
}

// Len returns the number of stored variants.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// Names returns the stored variant names in sorted order.
func (c *Collection) Names() []string {
	c.mu.RLock()
	names := lo.Keys(c.images)
	c.mu.RUnlock()
	sort.Strings(names)
	return names
}

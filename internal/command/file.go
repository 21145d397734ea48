package command

import (
	"fmt"

	"github.com/ironsheep/image-edit-mcp/internal/codec"
	"github.com/ironsheep/image-edit-mcp/internal/collection"
	"github.com/ironsheep/image-edit-mcp/internal/raster"
)

// Load reads an image file into the store.
type Load struct {
	path string
	name string
}

// NewLoad creates a command that reads path and stores it as name.
func NewLoad(path, name string) (*Load, error) {
	if path == "" || name == "" {
		return nil, fmt.Errorf("%w: path and image name are required", raster.ErrInvalidArgument)
	}
	return &Load{path: path, name: name}, nil
}

// Execute reads the file and stores it under the command's name.
func (c *Load) Execute(store collection.Store) error {
	img, err := codec.Read(c.path)
	if err != nil {
		return err
	}
	return store.Put(c.name, img)
}

// String describes the command for logs.
func (c *Load) String() string {
	return fmt.Sprintf("load %s as %s", c.path, c.name)
}

// Save writes a stored variant to a file.
type Save struct {
	path string
	name string
}

// NewSave creates a command that writes variant name to path.
func NewSave(path, name string) (*Save, error) {
	if path == "" || name == "" {
		return nil, fmt.Errorf("%w: path and image name are required", raster.ErrInvalidArgument)
	}
	return &Save{path: path, name: name}, nil
}

// Execute writes the named variant to the file.
func (c *Save) Execute(store collection.Store) error {
	img, err := store.Image(c.name)
	if err != nil {
		return err
	}
	return codec.Write(c.path, img)
}

// String describes the command for logs.
func (c *Save) String() string {
	return fmt.Sprintf("save %s to %s", c.name, c.path)
}

package collection

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ironsheep/image-edit-mcp/internal/raster"
)

func testImage(t *testing.T, v int) *raster.Image {
	t.Helper()
	img, err := raster.FromPixels([][]raster.Pixel{
		{raster.MustPixel(v, v, v, 255), raster.MustPixel(0, v, 0, 255)},
	})
	if err != nil {
		t.Fatalf("FromPixels failed: %v", err)
	}
	return img
}

// commandFunc adapts a function to the Command interface.
type commandFunc func(Store) error

func (f commandFunc) Execute(s Store) error { return f(s) }

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Fatal("New returned nil")
	}
	if c.images == nil {
		t.Fatal("New did not initialize images map")
	}
	if c.Len() != 0 {
		t.Errorf("new collection has %d images", c.Len())
	}
}

func TestCollection_Image_NotFound(t *testing.T) {
	c := New()
	_, err := c.Image("missing")
	if !errors.Is(err, raster.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
	if !errors.Is(err, raster.ErrInvalidOperation) {
		t.Errorf("error %v should wrap ErrInvalidOperation", err)
	}
}

func TestCollection_PutThenImage(t *testing.T) {
	c := New()
	img := testImage(t, 10)
	if err := c.Put("a", img); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := c.Image("a")
	if err != nil {
		t.Fatalf("Image failed: %v", err)
	}
	if !got.Equal(img) {
		t.Error("stored image not value-equal to input")
	}
	if got == img {
		t.Error("Image returned the same reference that was stored")
	}

	again, _ := c.Image("a")
	if got == again {
		t.Error("two reads returned the same reference")
	}
}

func TestCollection_NoAliasing(t *testing.T) {
	c := New()
	img := testImage(t, 10)
	_ = c.Put("a", img)

	// Mutating the caller's image after Put must not reach the store.
	_ = img.Set(0, 0, raster.MustPixel(99, 99, 99, 255))
	stored, _ := c.Image("a")
	if p, _ := stored.At(0, 0); p != raster.MustPixel(10, 10, 10, 255) {
		t.Errorf("store aliased caller image: %v", p)
	}

	// Mutating a read copy must not reach the store either.
	_ = stored.Set(0, 0, raster.MustPixel(1, 1, 1, 255))
	fresh, _ := c.Image("a")
	if p, _ := fresh.At(0, 0); p != raster.MustPixel(10, 10, 10, 255) {
		t.Errorf("store aliased read copy: %v", p)
	}
}

func TestCollection_PutOverwrites(t *testing.T) {
	c := New()
	_ = c.Put("a", testImage(t, 1))
	_ = c.Put("a", testImage(t, 2))
	got, _ := c.Image("a")
	if !got.Equal(testImage(t, 2)) {
		t.Error("Put did not overwrite existing variant")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestCollection_PutInvalid(t *testing.T) {
	c := New()
	if err := c.Put("", testImage(t, 1)); !errors.Is(err, raster.ErrInvalidArgument) {
		t.Errorf("empty name error = %v", err)
	}
	if err := c.Put("a", nil); !errors.Is(err, raster.ErrInvalidArgument) {
		t.Errorf("nil image error = %v", err)
	}
}

func TestCollection_Names(t *testing.T) {
	c := New()
	for _, n := range []string{"zeta", "alpha", "mid"} {
		_ = c.Put(n, testImage(t, 1))
	}
	if diff := cmp.Diff([]string{"alpha", "mid", "zeta"}, c.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
}

func TestCollection_Execute(t *testing.T) {
	c := New()
	_ = c.Put("src", testImage(t, 5))

	err := c.Execute(commandFunc(func(s Store) error {
		img, err := s.Image("src")
		if err != nil {
			return err
		}
		return s.Put("dst", img)
	}))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}

	if err := c.Execute(nil); !errors.Is(err, raster.ErrInvalidArgument) {
		t.Errorf("nil command error = %v", err)
	}

	boom := errors.New("boom")
	if err := c.Execute(commandFunc(func(Store) error { return boom })); !errors.Is(err, boom) {
		t.Errorf("command error not propagated: %v", err)
	}
}

func TestCollection_ExecuteSerializes(t *testing.T) {
	c := New()
	var (
		mu      sync.Mutex
		running int
		peak    int
	)
	cmd := commandFunc(func(s Store) error {
		mu.Lock()
		running++
		if running > peak {
			peak = running
		}
		mu.Unlock()

		_ = s.Put("x", testImage(t, 1))

		mu.Lock()
		running--
		mu.Unlock()
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Execute(cmd)
		}()
	}
	wg.Wait()

	if peak != 1 {
		t.Errorf("peak concurrent commands = %d, want 1", peak)
	}
}

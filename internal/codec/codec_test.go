package codec

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/image-edit-mcp/internal/raster"
)

const samplePPM = `P3
# a 3x2 test image
3 2
255
255 0 0   0 255 0   0 0 255
# comment between rows
10 20 30  40 50 60  70 80 90
`

func TestDecodePPM(t *testing.T) {
	img, err := DecodePPM(strings.NewReader(samplePPM))
	if err != nil {
		t.Fatalf("DecodePPM failed: %v", err)
	}
	if img.Cols() != 3 || img.Rows() != 2 {
		t.Fatalf("got %dx%d, want 3x2", img.Cols(), img.Rows())
	}

	tests := []struct {
		row, col int
		want     raster.Pixel
	}{
		{0, 0, raster.MustPixel(255, 0, 0, 255)},
		{0, 2, raster.MustPixel(0, 0, 255, 255)},
		{1, 0, raster.MustPixel(10, 20, 30, 255)},
		{1, 2, raster.MustPixel(70, 80, 90, 255)},
	}
	for _, tt := range tests {
		got, _ := img.At(tt.row, tt.col)
		if got != tt.want {
			t.Errorf("(%d,%d): got %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestDecodePPM_CustomCeiling(t *testing.T) {
	img, err := DecodePPM(strings.NewReader("P3\n1 1\n15\n15 7 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if p, _ := img.At(0, 0); p != raster.MustPixel(15, 7, 0, 15) {
		t.Errorf("got %v", p)
	}
}

func TestDecodePPM_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"empty", "", raster.ErrInvalidArgument},
		{"wrong magic", "P6\n1 1\n255\n0 0 0\n", raster.ErrInvalidArgument},
		{"missing height", "P3\n1\n", raster.ErrInvalidArgument},
		{"non-numeric width", "P3\nx 1\n255\n", raster.ErrInvalidArgument},
		{"truncated pixels", "P3\n2 1\n255\n1 2 3 4\n", raster.ErrInvalidArgument},
		{"header larger than int", "P3\n4000000000 4000000000 255\n0 0 0\n", raster.ErrInvalidArgument},
		{"header larger than data", "P3\n100000 100000 255\n0 0 0\n", raster.ErrInvalidArgument},
		{"header near max int", "P3\n9223372036854775807 9223372036854775807 255\n0 0 0\n", raster.ErrInvalidArgument},
		{"zero size", "P3\n0 1\n255\n", raster.ErrInvalidArgument},
		{"channel over max", "P3\n1 1\n10\n11 0 0\n", raster.ErrOutOfRange},
		{"negative channel", "P3\n1 1\n10\n-1 0 0\n", raster.ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePPM(strings.NewReader(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, raster.ErrInvalidOperation) {
				t.Errorf("error %v should wrap ErrInvalidOperation", err)
			}
		})
	}
}

func TestEncodePPM(t *testing.T) {
	img, _ := raster.FromPixels([][]raster.Pixel{
		{raster.MustPixel(1, 2, 3, 255), raster.MustPixel(4, 5, 6, 255)},
	})
	var buf bytes.Buffer
	if err := EncodePPM(&buf, img); err != nil {
		t.Fatalf("EncodePPM failed: %v", err)
	}

	want := strings.Join([]string{
		"P3", ppmComment, "2 1", "255",
		"1", "2", "3", "4", "5", "6",
	}, "\n") + "\n"
	if buf.String() != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPPM_RoundTrip(t *testing.T) {
	orig, err := DecodePPM(strings.NewReader(samplePPM))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := EncodePPM(&buf, orig); err != nil {
		t.Fatal(err)
	}
	back, err := DecodePPM(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(orig) {
		t.Error("round trip changed the image")
	}
}

func TestReadWrite_PPMFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.ppm")
	if err := os.WriteFile(path, []byte(samplePPM), 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	out := filepath.Join(dir, "out.ppm")
	if err := Write(out, img); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	back, err := Read(out)
	if err != nil {
		t.Fatalf("re-Read failed: %v", err)
	}
	if !back.Equal(img) {
		t.Error("file round trip changed the image")
	}
}

func TestReadWrite_PNGFile(t *testing.T) {
	dir := t.TempDir()
	src := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.RGBA{uint8(x * 50), uint8(y * 60), 7, 255})
		}
	}
	path := filepath.Join(dir, "in.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if img.Cols() != 4 || img.Rows() != 3 {
		t.Fatalf("got %dx%d, want 4x3", img.Cols(), img.Rows())
	}
	if p, _ := img.At(2, 3); p != raster.MustPixel(150, 120, 7, 255) {
		t.Errorf("(2,3) = %v", p)
	}

	out := filepath.Join(dir, "out.png")
	if err := Write(out, img); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	back, err := Read(out)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(img) {
		t.Error("PNG round trip changed the image")
	}
}

func TestRead_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Read(filepath.Join(dir, "missing.ppm")); !errors.Is(err, raster.ErrNotFound) {
		t.Errorf("missing ppm error = %v", err)
	}
	if _, err := Read(filepath.Join(dir, "missing.png")); !errors.Is(err, raster.ErrNotFound) {
		t.Errorf("missing png error = %v", err)
	}
	if _, err := Read(""); !errors.Is(err, raster.ErrInvalidArgument) {
		t.Errorf("empty path error = %v", err)
	}

	garbage := filepath.Join(dir, "garbage.png")
	_ = os.WriteFile(garbage, []byte("not an image"), 0o644)
	if _, err := Read(garbage); !errors.Is(err, raster.ErrInvalidArgument) {
		t.Errorf("garbage png error = %v", err)
	}
}

func TestWrite_Errors(t *testing.T) {
	dir := t.TempDir()
	img, _ := raster.New(1, 1, 255)

	if err := Write(filepath.Join(dir, "noext"), img); !errors.Is(err, raster.ErrInvalidArgument) {
		t.Errorf("no extension error = %v", err)
	}
	if err := Write(filepath.Join(dir, "x.xyz"), img); !errors.Is(err, raster.ErrInvalidArgument) {
		t.Errorf("unknown extension error = %v", err)
	}
	if err := Write(filepath.Join(dir, "x.png"), nil); !errors.Is(err, raster.ErrInvalidArgument) {
		t.Errorf("nil image error = %v", err)
	}
	if err := Write(filepath.Join(dir, "no-such-dir", "x.ppm"), img); !errors.Is(err, raster.ErrInvalidArgument) {
		t.Errorf("bad directory error = %v", err)
	}
}

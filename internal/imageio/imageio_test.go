package imageio

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gofrac/mandel"
)

// gradient fills a grayscale buffer with a position-dependent pattern so
// decoded pixels can be checked against their coordinates.
func gradient(b mandel.Bounds) []byte {
	buf := make([]byte, b.Pixels())
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			buf[y*b.Width+x] = byte(x + y*b.Width)
		}
	}
	return buf
}

func TestImage_GraySharesMemory(t *testing.T) {
	b := mandel.Bounds{Width: 4, Height: 4}
	buf := make([]byte, b.Pixels())

	img, err := Image(buf, b, Grayscale)
	if err != nil {
		t.Fatalf("Image() = %v", err)
	}

	// Writing through the buffer must be visible through the image.
	buf[5] = 200
	gray, ok := img.(*image.Gray)
	if !ok {
		t.Fatalf("Image() returned %T, want *image.Gray", img)
	}
	if gray.Pix[5] != 200 {
		t.Error("grayscale image does not share memory with the buffer")
	}
}

func TestImage_RGBExpansion(t *testing.T) {
	b := mandel.Bounds{Width: 2, Height: 1}
	buf := []byte{10, 20, 30, 40, 50, 60}

	img, err := Image(buf, b, RGB)
	if err != nil {
		t.Fatalf("Image() = %v", err)
	}
	rgba, ok := img.(*image.RGBA)
	if !ok {
		t.Fatalf("Image() returned %T, want *image.RGBA", img)
	}

	want := []byte{10, 20, 30, 255, 40, 50, 60, 255}
	if !bytes.Equal(rgba.Pix, want) {
		t.Errorf("expanded pixels = %v, want %v", rgba.Pix, want)
	}
}

func TestImage_LengthMismatch(t *testing.T) {
	b := mandel.Bounds{Width: 4, Height: 4}

	if _, err := Image(make([]byte, 15), b, Grayscale); err == nil {
		t.Error("short grayscale buffer should be rejected")
	}
	// A grayscale-sized buffer is too short for RGB.
	if _, err := Image(make([]byte, 16), b, RGB); err == nil {
		t.Error("grayscale-sized buffer should be rejected for RGB")
	}
}

func TestEncode_Formats(t *testing.T) {
	b := mandel.Bounds{Width: 16, Height: 8}
	buf := gradient(b)

	decoders := map[string]func(*bytes.Reader) (image.Image, error){
		"png":  func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
		"bmp":  func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) },
		"tiff": func(r *bytes.Reader) (image.Image, error) { return tiff.Decode(r) },
	}

	for format, decode := range decoders {
		t.Run(format, func(t *testing.T) {
			var out bytes.Buffer
			if err := Encode(&out, format, buf, b, Grayscale); err != nil {
				t.Fatalf("Encode(%s) = %v", format, err)
			}

			img, err := decode(bytes.NewReader(out.Bytes()))
			if err != nil {
				t.Fatalf("decode(%s) = %v", format, err)
			}
			if got := img.Bounds(); got.Dx() != b.Width || got.Dy() != b.Height {
				t.Fatalf("decoded bounds = %v, want %dx%d", got, b.Width, b.Height)
			}

			// Spot-check a pixel: all three formats are lossless.
			r, _, _, _ := img.At(3, 2).RGBA()
			want := uint32(buf[2*b.Width+3])
			if r>>8 != want {
				t.Errorf("pixel (3,2) = %d, want %d", r>>8, want)
			}
		})
	}
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	b := mandel.Bounds{Width: 2, Height: 2}
	var out bytes.Buffer
	if err := Encode(&out, "gif", make([]byte, 4), b, Grayscale); err == nil {
		t.Error("unsupported format should be rejected")
	}
}

func TestSave_FormatFromExtension(t *testing.T) {
	b := mandel.Bounds{Width: 8, Height: 8}
	buf := gradient(b)
	dir := t.TempDir()

	for _, name := range []string{"out.png", "out.bmp", "out.tif", "out.tiff"} {
		path := filepath.Join(dir, name)
		if err := Save(path, buf, b, Grayscale); err != nil {
			t.Errorf("Save(%s) = %v", name, err)
			continue
		}
		info, err := os.Stat(path)
		if err != nil || info.Size() == 0 {
			t.Errorf("Save(%s) wrote no data", name)
		}
	}
}

func TestSave_NoExtension(t *testing.T) {
	b := mandel.Bounds{Width: 2, Height: 2}
	if err := Save(filepath.Join(t.TempDir(), "out"), make([]byte, 4), b, Grayscale); err == nil {
		t.Error("missing extension should be rejected")
	}
}

// Package imageio serializes rendered pixel buffers to image files.
//
// The renderer core works on flat byte buffers; this package wraps them
// in the image.Image interface and encodes them as PNG, BMP or TIFF.
package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gofrac/mandel"
)

// Mode identifies the pixel layout of a buffer.
type Mode int

const (
	// Grayscale is one byte per pixel.
	Grayscale Mode = iota
	// RGB is three bytes per pixel, red then green then blue.
	RGB
)

// bytesPerPixel returns the buffer bytes each pixel occupies in m.
func (m Mode) bytesPerPixel() int {
	if m == RGB {
		return 3
	}
	return 1
}

// String returns the mode name for error messages.
func (m Mode) String() string {
	switch m {
	case Grayscale:
		return "grayscale"
	case RGB:
		return "rgb"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Image wraps buf in an image.Image. Grayscale buffers share memory with
// the returned image; RGB buffers are expanded into a fresh RGBA image
// because the stdlib encoders have no packed 3-byte representation.
func Image(buf []byte, b mandel.Bounds, mode Mode) (image.Image, error) {
	if want := b.Pixels() * mode.bytesPerPixel(); len(buf) != want {
		return nil, fmt.Errorf("imageio: buffer length %d does not match %dx%d %s image (want %d)",
			len(buf), b.Width, b.Height, mode, want)
	}
	switch mode {
	case Grayscale:
		return &image.Gray{
			Pix:    buf,
			Stride: b.Width,
			Rect:   image.Rect(0, 0, b.Width, b.Height),
		}, nil
	case RGB:
		img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
		for i := 0; i < b.Pixels(); i++ {
			img.Pix[i*4+0] = buf[i*3+0]
			img.Pix[i*4+1] = buf[i*3+1]
			img.Pix[i*4+2] = buf[i*3+2]
			img.Pix[i*4+3] = 0xFF
		}
		return img, nil
	default:
		return nil, fmt.Errorf("imageio: unknown mode %s", mode)
	}
}

// Encode writes buf to w in the named format: "png", "bmp", "tiff" (or
// "tif").
func Encode(w io.Writer, format string, buf []byte, b mandel.Bounds, mode Mode) error {
	img, err := Image(buf, b, mode)
	if err != nil {
		return err
	}
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff", "tif":
		return tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("imageio: unsupported format %q", format)
	}
}

// Save writes buf to path, choosing the format from the file extension.
func Save(path string, buf []byte, b mandel.Bounds, mode Mode) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return fmt.Errorf("imageio: cannot infer image format from %q", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, ext, buf, b, mode); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

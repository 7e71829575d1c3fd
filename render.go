package mandel

import "fmt"

// Render fills buf with the escape-time rendering of the viewport,
// walking all pixels row-major on the calling goroutine.
//
// buf must hold exactly b.Pixels() bytes; a mismatch is a contract
// violation and panics. Degenerate geometry is rejected with
// [ErrInvalidBounds] before the buffer is touched.
func Render(buf []byte, b Bounds, vp Viewport, opts ...RenderOption) error {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(b, o); err != nil {
		return err
	}
	checkBuffer(buf, b)

	renderInto(buf, b, vp, o.limit)
	return nil
}

// validate rejects degenerate geometry and limits before any mapping
// occurs, so zero dimensions never reach the division in PixelToPoint.
func validate(b Bounds, o renderOptions) error {
	if !b.valid() {
		return ErrInvalidBounds
	}
	if o.limit < 1 {
		return ErrInvalidLimit
	}
	return nil
}

// checkBuffer panics when the buffer does not match the bounds. The size
// invariant is the caller's responsibility; there is no way to recover a
// render call that would write out of bounds or leave pixels unwritten.
func checkBuffer(buf []byte, b Bounds) {
	if len(buf) != b.Pixels() {
		panic(fmt.Sprintf("mandel: buffer length %d does not match %dx%d bounds",
			len(buf), b.Width, b.Height))
	}
}

// renderInto is the sequential core shared by all three entry points.
// Arguments are already validated.
func renderInto(buf []byte, b Bounds, vp Viewport, limit int) {
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			c := PixelToPoint(b, col, row, vp)
			var v byte
			if n, escaped := EscapeTime(c, limit); escaped {
				v = shade(n)
			}
			buf[row*b.Width+col] = v
		}
	}
}

// shade maps an escape count to an 8-bit intensity: early escapes render
// bright, late escapes dark. Counts of 255 and above (reachable only with
// a raised iteration limit) clamp to black.
func shade(n int) byte {
	if n >= 255 {
		return 0
	}
	return byte(255 - n)
}

package mandel

// Bounds describes the pixel dimensions of a render target.
type Bounds struct {
	Width  int
	Height int
}

// Pixels returns the number of pixels a grayscale buffer for b must hold.
func (b Bounds) Pixels() int {
	return b.Width * b.Height
}

// valid reports whether both dimensions are positive.
func (b Bounds) valid() bool {
	return b.Width > 0 && b.Height > 0
}

// Viewport is the rectangular region of the complex plane mapped onto a
// buffer's bounds. UpperLeft corresponds to pixel (0,0). The imaginary
// part decreases downward, so imag(UpperLeft) >= imag(LowerRight).
type Viewport struct {
	UpperLeft  complex128
	LowerRight complex128
}

// PixelToPoint maps the pixel at column px, row py to its point on the
// complex plane, interpolating linearly across the viewport.
//
// px may equal b.Width and py may equal b.Height: the schedulers use the
// one-past-the-end coordinates to derive the corners of a row band.
// Bounds with a zero dimension produce NaN or Inf; callers validate
// bounds before mapping.
func PixelToPoint(b Bounds, px, py int, vp Viewport) complex128 {
	w := real(vp.LowerRight) - real(vp.UpperLeft)
	h := imag(vp.UpperLeft) - imag(vp.LowerRight)
	return complex(
		real(vp.UpperLeft)+float64(px)*(w/float64(b.Width)),
		imag(vp.UpperLeft)-float64(py)*(h/float64(b.Height)),
	)
}

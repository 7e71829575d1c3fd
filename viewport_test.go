package mandel

import "testing"

func TestPixelToPoint_OriginMapsToUpperLeft(t *testing.T) {
	b := Bounds{Width: 100, Height: 200}
	vp := Viewport{UpperLeft: complex(-1.0, 1.0), LowerRight: complex(1.0, -1.0)}

	got := PixelToPoint(b, 0, 0, vp)
	if got != vp.UpperLeft {
		t.Errorf("PixelToPoint(0,0) = %v, want %v", got, vp.UpperLeft)
	}
}

func TestPixelToPoint_KnownPoint(t *testing.T) {
	b := Bounds{Width: 100, Height: 200}
	vp := Viewport{UpperLeft: complex(-1.0, 1.0), LowerRight: complex(1.0, -1.0)}

	got := PixelToPoint(b, 25, 175, vp)
	want := complex(-0.5, -0.75)
	if got != want {
		t.Errorf("PixelToPoint(25,175) = %v, want %v", got, want)
	}
}

func TestPixelToPoint_PastTheEndCorner(t *testing.T) {
	// The schedulers map one-past-the-end coordinates when deriving band
	// corners; the bottom-right corner must land on LowerRight.
	b := Bounds{Width: 64, Height: 32}
	vp := Viewport{UpperLeft: complex(-2.0, 1.0), LowerRight: complex(2.0, -1.0)}

	got := PixelToPoint(b, b.Width, b.Height, vp)
	if got != vp.LowerRight {
		t.Errorf("PixelToPoint(W,H) = %v, want %v", got, vp.LowerRight)
	}
}

func TestPixelToPoint_ScreenAxisInverted(t *testing.T) {
	b := Bounds{Width: 10, Height: 10}
	vp := Viewport{UpperLeft: complex(-1.0, 1.0), LowerRight: complex(1.0, -1.0)}

	top := PixelToPoint(b, 5, 1, vp)
	bottom := PixelToPoint(b, 5, 8, vp)
	if imag(top) <= imag(bottom) {
		t.Errorf("imag at row 1 (%v) should exceed imag at row 8 (%v)", imag(top), imag(bottom))
	}
}

func TestBoundsPixels(t *testing.T) {
	tests := []struct {
		b    Bounds
		want int
	}{
		{Bounds{Width: 100, Height: 200}, 20000},
		{Bounds{Width: 1, Height: 1}, 1},
		{Bounds{Width: 1920, Height: 1080}, 2073600},
	}
	for _, tc := range tests {
		if got := tc.b.Pixels(); got != tc.want {
			t.Errorf("Pixels(%dx%d) = %d, want %d", tc.b.Width, tc.b.Height, got, tc.want)
		}
	}
}

package parse

import (
	"testing"

	"github.com/gofrac/mandel"
)

func TestSize(t *testing.T) {
	tests := []struct {
		in   string
		want mandel.Bounds
		ok   bool
	}{
		{"10x20", mandel.Bounds{Width: 10, Height: 20}, true},
		{"1000x750", mandel.Bounds{Width: 1000, Height: 750}, true},
		{"", mandel.Bounds{}, false},
		{"10x", mandel.Bounds{}, false},
		{"x10", mandel.Bounds{}, false},
		{"10x20xy", mandel.Bounds{}, false},
		{"10,20", mandel.Bounds{}, false},
		{"0x10", mandel.Bounds{}, false},
		{"-5x10", mandel.Bounds{}, false},
		{" 10x20", mandel.Bounds{}, false},
	}
	for _, tc := range tests {
		got, err := Size(tc.in)
		if tc.ok != (err == nil) {
			t.Errorf("Size(%q) error = %v, want ok=%v", tc.in, err, tc.ok)
			continue
		}
		if tc.ok && got != tc.want {
			t.Errorf("Size(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestPoint(t *testing.T) {
	tests := []struct {
		in   string
		want complex128
		ok   bool
	}{
		{"0.5,1.5", complex(0.5, 1.5), true},
		{"-1.20,0.35", complex(-1.20, 0.35), true},
		{"1.0,-0.5", complex(1.0, -0.5), true},
		{"0,0", complex(0, 0), true},
		{"", 0, false},
		{"0.5", 0, false},
		{"0.5x1.5", 0, false},
		{",10", 0, false},
		{"10,", 0, false},
		{"10,20xy", 0, false},
	}
	for _, tc := range tests {
		got, err := Point(tc.in)
		if tc.ok != (err == nil) {
			t.Errorf("Point(%q) error = %v, want ok=%v", tc.in, err, tc.ok)
			continue
		}
		if tc.ok && got != tc.want {
			t.Errorf("Point(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

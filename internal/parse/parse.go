// Package parse converts the textual pair forms used on the command line
// into numeric values: "400x600" image sizes and "-0.5,0.75" points on
// the complex plane.
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofrac/mandel"
)

// Size parses a "WIDTHxHEIGHT" string into bounds. Both dimensions must
// be positive integers.
func Size(s string) (mandel.Bounds, error) {
	l, r, ok := strings.Cut(s, "x")
	if !ok {
		return mandel.Bounds{}, fmt.Errorf("parse: %q is not a WIDTHxHEIGHT size", s)
	}
	w, err := strconv.Atoi(l)
	if err != nil {
		return mandel.Bounds{}, fmt.Errorf("parse: bad width in %q: %w", s, err)
	}
	h, err := strconv.Atoi(r)
	if err != nil {
		return mandel.Bounds{}, fmt.Errorf("parse: bad height in %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return mandel.Bounds{}, fmt.Errorf("parse: size %q must have positive dimensions", s)
	}
	return mandel.Bounds{Width: w, Height: h}, nil
}

// Point parses a "RE,IM" string into a complex coordinate.
func Point(s string) (complex128, error) {
	l, r, ok := strings.Cut(s, ",")
	if !ok {
		return 0, fmt.Errorf("parse: %q is not an RE,IM coordinate", s)
	}
	re, err := strconv.ParseFloat(l, 64)
	if err != nil {
		return 0, fmt.Errorf("parse: bad real part in %q: %w", s, err)
	}
	im, err := strconv.ParseFloat(r, 64)
	if err != nil {
		return 0, fmt.Errorf("parse: bad imaginary part in %q: %w", s, err)
	}
	return complex(re, im), nil
}

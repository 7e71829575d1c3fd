// Package mandel renders the Mandelbrot escape-time fractal into a
// grayscale pixel buffer.
//
// # Overview
//
// The package exposes one sequential renderer and two parallel schedulers
// that produce byte-identical output for identical inputs:
//
//   - [Render] walks the buffer row by row on the calling goroutine.
//   - [RenderStatic] partitions the buffer into fixed row bands up front
//     and renders each band on its own goroutine.
//   - [RenderDynamic] uses the same partition but hands bands to a fixed
//     set of workers on demand, so workers that finish cheap bands early
//     pull more work. Per-pixel cost varies wildly across the set, which
//     makes this the best default for large images.
//
// # Quick Start
//
//	b := mandel.Bounds{Width: 1000, Height: 750}
//	vp := mandel.Viewport{
//	    UpperLeft:  complex(-1.20, 0.35),
//	    LowerRight: complex(-1.0, 0.20),
//	}
//
//	buf := make([]byte, b.Pixels())
//	if err := mandel.RenderDynamic(buf, b, vp, runtime.GOMAXPROCS(0)); err != nil {
//	    log.Fatal(err)
//	}
//
// # Coordinate System
//
// Pixel (0,0) is the top-left corner and maps to Viewport.UpperLeft.
// Columns increase rightward along the real axis; rows increase downward
// while the imaginary part decreases, so the screen y-axis is inverted
// relative to the complex plane.
//
// # Output
//
// One byte per pixel, row-major. Points that escape early render bright
// (intensity 255 minus the escape count); points presumed inside the set
// render black. See internal/imageio for serializing a buffer to a file.
package mandel

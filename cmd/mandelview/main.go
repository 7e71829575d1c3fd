// Command mandelview renders the Mandelbrot set once and displays it in
// a desktop window. Press Escape to close.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gofrac/mandel"
	"github.com/gofrac/mandel/internal/parse"
)

type viewer struct {
	fb     *ebiten.Image
	width  int
	height int
}

func (v *viewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.DrawImage(v.fb, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}

func main() {
	size := flag.String("size", "800x600", "window size as WIDTHxHEIGHT")
	ulFlag := flag.String("upper-left", "-2.5,1.25", "upper-left viewport corner as RE,IM")
	lrFlag := flag.String("lower-right", "1.0,-1.25", "lower-right viewport corner as RE,IM")
	workers := flag.Int("workers", 0, "render workers (0 = GOMAXPROCS)")
	limit := flag.Int("limit", mandel.DefaultIterLimit, "escape iteration limit")
	flag.Parse()

	b, err := parse.Size(*size)
	if err != nil {
		fatal(err)
	}
	ul, err := parse.Point(*ulFlag)
	if err != nil {
		fatal(err)
	}
	lr, err := parse.Point(*lrFlag)
	if err != nil {
		fatal(err)
	}
	if *workers <= 0 {
		*workers = runtime.GOMAXPROCS(0)
	}
	vp := mandel.Viewport{UpperLeft: ul, LowerRight: lr}

	buf := make([]byte, b.Pixels())
	if err := mandel.RenderDynamic(buf, b, vp, *workers, mandel.WithIterationLimit(*limit)); err != nil {
		fatal(err)
	}

	// Expand grayscale to the RGBA layout the GPU texture expects.
	pix := make([]byte, b.Pixels()*4)
	for i, g := range buf {
		pix[i*4+0] = g
		pix[i*4+1] = g
		pix[i*4+2] = g
		pix[i*4+3] = 0xFF
	}
	fb := ebiten.NewImage(b.Width, b.Height)
	fb.WritePixels(pix)

	ebiten.SetWindowTitle("mandelview " + *size)
	ebiten.SetWindowSize(b.Width, b.Height)
	if err := ebiten.RunGame(&viewer{fb: fb, width: b.Width, height: b.Height}); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "mandelview: %v\n", err)
	os.Exit(1)
}

// Command mandel renders the Mandelbrot set to an image file.
//
// The output format is chosen by the file extension (.png, .bmp, .tif).
// Defaults can be collected in a YAML preset file; explicit flags always
// win over preset values.
//
//	mandel -size 1920x1080 -upper-left=-2.0,1.0 -lower-right=1.0,-1.0 -out set.png
//	mandel -preset seahorse.yaml -workers 16
//	mandel -noise -seed 42 -out noise.png
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gofrac/mandel"
	"github.com/gofrac/mandel/internal/imageio"
	"github.com/gofrac/mandel/internal/noise"
	"github.com/gofrac/mandel/internal/parse"
)

// config holds render settings. The textual fields use the same forms as
// the flags, so a preset file reads the way the command line does:
//
//	size: 1920x1080
//	upper_left: "-0.75,0.25"
//	lower_right: "-0.25,-0.25"
//	mode: dynamic
//	workers: 8
//	limit: 255
//	out: seahorse.png
type config struct {
	Size       string `yaml:"size"`
	UpperLeft  string `yaml:"upper_left"`
	LowerRight string `yaml:"lower_right"`
	Mode       string `yaml:"mode"`
	Workers    int    `yaml:"workers"`
	Limit      int    `yaml:"limit"`
	Out        string `yaml:"out"`
}

func defaultConfig() config {
	return config{
		Size:       "1000x750",
		UpperLeft:  "-1.20,0.35",
		LowerRight: "-1.0,0.20",
		Mode:       "dynamic",
		Workers:    runtime.GOMAXPROCS(0),
		Limit:      mandel.DefaultIterLimit,
		Out:        "mandel.png",
	}
}

func main() {
	cfg := defaultConfig()

	flag.StringVar(&cfg.Size, "size", cfg.Size, "output image size as WIDTHxHEIGHT")
	flag.StringVar(&cfg.UpperLeft, "upper-left", cfg.UpperLeft, "upper-left viewport corner as RE,IM")
	flag.StringVar(&cfg.LowerRight, "lower-right", cfg.LowerRight, "lower-right viewport corner as RE,IM")
	flag.StringVar(&cfg.Mode, "mode", cfg.Mode, "work distribution: sequential, static or dynamic")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of render workers")
	flag.IntVar(&cfg.Limit, "limit", cfg.Limit, "escape iteration limit")
	flag.StringVar(&cfg.Out, "out", cfg.Out, "output file; format chosen by extension")
	preset := flag.String("preset", "", "YAML preset file with render settings")
	noiseImg := flag.Bool("noise", false, "write a pseudo-random noise image instead of the fractal")
	seed := flag.Int64("seed", 1, "seed for -noise")
	rgb := flag.Bool("rgb", false, "with -noise, write 3-byte RGB pixels")
	verbose := flag.Bool("v", false, "enable debug logging to stderr")
	flag.Parse()

	if *verbose {
		mandel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *preset != "" {
		explicit := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		if err := loadPreset(*preset, &cfg, explicit); err != nil {
			fatal(err)
		}
	}

	b, err := parse.Size(cfg.Size)
	if err != nil {
		usageError(err)
	}

	if *noiseImg {
		mode := imageio.Grayscale
		if *rgb {
			mode = imageio.RGB
		}
		buf := noise.Buffer(b.Pixels()*bytesPerPixel(mode), *seed)
		if err := imageio.Save(cfg.Out, buf, b, mode); err != nil {
			fatal(err)
		}
		return
	}

	ul, err := parse.Point(cfg.UpperLeft)
	if err != nil {
		usageError(err)
	}
	lr, err := parse.Point(cfg.LowerRight)
	if err != nil {
		usageError(err)
	}
	vp := mandel.Viewport{UpperLeft: ul, LowerRight: lr}

	buf := make([]byte, b.Pixels())
	start := time.Now()
	switch cfg.Mode {
	case "sequential":
		err = mandel.Render(buf, b, vp, mandel.WithIterationLimit(cfg.Limit))
	case "static":
		err = mandel.RenderStatic(buf, b, vp, cfg.Workers, mandel.WithIterationLimit(cfg.Limit))
	case "dynamic":
		err = mandel.RenderDynamic(buf, b, vp, cfg.Workers, mandel.WithIterationLimit(cfg.Limit))
	default:
		usageError(fmt.Errorf("unknown mode %q", cfg.Mode))
	}
	if err != nil {
		fatal(err)
	}
	fmt.Fprintf(os.Stderr, "rendered %s (%s, %d workers) in %s\n",
		cfg.Size, cfg.Mode, cfg.Workers, time.Since(start).Round(time.Millisecond))

	if err := imageio.Save(cfg.Out, buf, b, imageio.Grayscale); err != nil {
		fatal(err)
	}
}

// loadPreset merges settings from a YAML file into cfg. Fields the user
// set explicitly on the command line are left alone; zero-value preset
// fields fall through to the defaults.
func loadPreset(path string, cfg *config, explicit map[string]bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var p config
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("preset %s: %w", path, err)
	}

	if p.Size != "" && !explicit["size"] {
		cfg.Size = p.Size
	}
	if p.UpperLeft != "" && !explicit["upper-left"] {
		cfg.UpperLeft = p.UpperLeft
	}
	if p.LowerRight != "" && !explicit["lower-right"] {
		cfg.LowerRight = p.LowerRight
	}
	if p.Mode != "" && !explicit["mode"] {
		cfg.Mode = p.Mode
	}
	if p.Workers != 0 && !explicit["workers"] {
		cfg.Workers = p.Workers
	}
	if p.Limit != 0 && !explicit["limit"] {
		cfg.Limit = p.Limit
	}
	if p.Out != "" && !explicit["out"] {
		cfg.Out = p.Out
	}
	return nil
}

func bytesPerPixel(mode imageio.Mode) int {
	if mode == imageio.RGB {
		return 3
	}
	return 1
}

func usageError(err error) {
	fmt.Fprintf(os.Stderr, "mandel: %v\n\n", err)
	flag.Usage()
	os.Exit(2)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "mandel: %v\n", err)
	os.Exit(1)
}

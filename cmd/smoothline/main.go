// Command smoothline smooths a polyline described in a TOML file.
//
// The input lists the anchors and the smoothing parameters:
//
//	smoothing_length = 2.0
//	subdivisions = 10
//	anchors = [[0.0, 0.0, 0.0], [1.0, 0.0, 0.0], [1.0, 1.0, 0.0]]
//
//	[preview]
//	file = "preview.png"
//	plane = "xy"
//
// The smoothed path is written in the same format, with the parameters reset
// so that feeding the output back in doesn't smooth it again. If a preview is
// requested, the curves and their handles are drawn into a PNG image before
// baking.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"

	"honnef.co/go/smoothline/linerenderer"
	"honnef.co/go/smoothline/preview"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "smoothline:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	fs := flag.NewFlagSet("smoothline", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath  = fs.String("config", "-", "input file, - for stdin")
		outPath     = fs.String("out", "-", "output file, - for stdout")
		previewPath = fs.String("preview", "", "write a PNG preview to this file, overriding the config")
		verbose     = fs.Bool("v", false, "log debug output")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	linerenderer.SetLogger(log)
	defer linerenderer.SetLogger(nil)

	in := stdin
	if *configPath != "-" {
		f, err := os.Open(*configPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	cfg, err := decodeConfig(in)
	if err != nil {
		return err
	}
	if *previewPath != "" {
		if cfg.Preview == nil {
			cfg.Preview = &PreviewConfig{}
		}
		cfg.Preview.File = *previewPath
	}

	s := cfg.smoother()
	e := linerenderer.NewEditor(s)
	e.CaptureInitialState()
	log.Debug("loaded config",
		"anchors", s.Line.PositionCount(),
		"length", s.SmoothingLength,
		"sections", s.SmoothingSections)

	if !e.CanSmooth() {
		return linerenderer.ErrTooFewPositions
	}

	if cfg.Preview != nil && cfg.Preview.File != "" {
		if err := writePreview(e, cfg.Preview); err != nil {
			return err
		}
		log.Debug("wrote preview", "file", cfg.Preview.File)
	}

	if err := e.SmoothPath(); err != nil {
		return err
	}

	out := stdout
	if *outPath != "-" {
		f, cerr := os.Create(*outPath)
		if cerr != nil {
			return cerr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		out = f
	}
	return encodeOutput(out, s)
}

func writePreview(e *linerenderer.Editor, pc *PreviewConfig) error {
	opts, err := pc.options()
	if err != nil {
		return err
	}
	img := preview.Render(e, opts)
	f, err := os.Create(pc.File)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding preview: %w", err)
	}
	return f.Close()
}

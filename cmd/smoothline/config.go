package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"honnef.co/go/smoothline"
	"honnef.co/go/smoothline/linerenderer"
	"honnef.co/go/smoothline/preview"
)

var errNoAnchors = errors.New("no anchors")

// Config is the input document.
type Config struct {
	SmoothingLength *float64       `toml:"smoothing_length"`
	Subdivisions    *int           `toml:"subdivisions"`
	Anchors         [][]float64    `toml:"anchors"`
	Preview         *PreviewConfig `toml:"preview"`
}

type PreviewConfig struct {
	File   string `toml:"file"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Plane  string `toml:"plane"`
	Margin int    `toml:"margin"`
}

// Output is the baked path, in the same format as the input.
type Output struct {
	SmoothingLength float64      `toml:"smoothing_length"`
	Subdivisions    int          `toml:"subdivisions"`
	Anchors         [][3]float64 `toml:"anchors"`
}

func decodeConfig(r io.Reader) (*Config, error) {
	var cfg Config
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			var keys []string
			for _, e := range serr.Errors {
				keys = append(keys, strings.Join(e.Key(), "."))
			}
			return nil, fmt.Errorf("unknown keys in config: %s: %w", strings.Join(keys, ", "), err)
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("decoding config at line %d, column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if len(cfg.Anchors) == 0 {
		return nil, errNoAnchors
	}
	for i, a := range cfg.Anchors {
		if len(a) != 3 {
			return nil, fmt.Errorf("anchor %d has %d coordinates, want 3", i, len(a))
		}
	}
	if cfg.Subdivisions != nil && *cfg.Subdivisions <= 0 {
		return nil, fmt.Errorf("subdivisions must be positive, got %d", *cfg.Subdivisions)
	}
	return &cfg, nil
}

// smoother builds the component described by the config, falling back to the
// component's defaults for unset parameters.
func (cfg *Config) smoother() *linerenderer.Smoother {
	s := linerenderer.NewSmoother(linerenderer.NewLine(toPoints(cfg.Anchors)...))
	if cfg.SmoothingLength != nil {
		s.SmoothingLength = *cfg.SmoothingLength
	}
	if cfg.Subdivisions != nil {
		s.SmoothingSections = *cfg.Subdivisions
	}
	return s
}

func (pc *PreviewConfig) options() (preview.Options, error) {
	plane, err := preview.ParsePlane(pc.Plane)
	if err != nil {
		return preview.Options{}, err
	}
	opts := preview.Options{
		Width:  pc.Width,
		Height: pc.Height,
		Plane:  plane,
		Margin: pc.Margin,
	}
	if opts.Width <= 0 {
		opts.Width = 512
	}
	if opts.Height <= 0 {
		opts.Height = 512
	}
	if opts.Margin <= 0 {
		opts.Margin = 16
	}
	return opts, nil
}

func encodeOutput(w io.Writer, s *linerenderer.Smoother) error {
	out := Output{
		SmoothingLength: s.SmoothingLength,
		Subdivisions:    s.SmoothingSections,
		Anchors:         fromPoints(linerenderer.PositionsOf(s.Line)),
	}
	enc := toml.NewEncoder(w).SetArraysMultiline(true)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

func toPoints(vs [][]float64) []smoothline.Point {
	out := make([]smoothline.Point, len(vs))
	for i, v := range vs {
		out[i] = smoothline.Pt(v[0], v[1], v[2])
	}
	return out
}

func fromPoints(pts []smoothline.Point) [][3]float64 {
	out := make([][3]float64, len(pts))
	for i, pt := range pts {
		out[i] = [3]float64{pt.X, pt.Y, pt.Z}
	}
	return out
}

package linerenderer

import "honnef.co/go/smoothline"

const (
	DefaultSmoothingLength   = 2.0
	DefaultSmoothingSections = 10
)

// Smoother is the state attached to a line that is being smoothed.
type Smoother struct {
	Line Positions
	// InitialState is the baseline that RestoreDefault returns to.
	InitialState []smoothline.Point
	// SmoothingLength scales the tangent handles of the fitted curves.
	SmoothingLength float64
	// SmoothingSections is the number of points each curve is sampled into.
	SmoothingSections int
}

// NewSmoother returns a component for line with the default tunables and a
// baseline of a single point at the origin.
func NewSmoother(line Positions) *Smoother {
	return &Smoother{
		Line:              line,
		InitialState:      make([]smoothline.Point, 1),
		SmoothingLength:   DefaultSmoothingLength,
		SmoothingSections: DefaultSmoothingSections,
	}
}

// Params returns the component's tunables.
func (s *Smoother) Params() smoothline.Params {
	return smoothline.Params{
		SmoothingLength: s.SmoothingLength,
		Subdivisions:    s.SmoothingSections,
	}
}

package linerenderer

import (
	"errors"
	"slices"

	"honnef.co/go/smoothline"
)

var (
	// ErrTooFewPositions is returned when smoothing a line with fewer than
	// three positions.
	ErrTooFewPositions = errors.New("line needs at least 3 positions to be smoothed")
	// ErrNoSections is returned when smoothing with a non-positive number of
	// sections, which would leave the line empty.
	ErrNoSections = errors.New("smoothing sections must be positive")
)

// Editor edits the line of a [Smoother] component.
type Editor struct {
	target *Smoother
	cache  smoothline.Smoother
}

// NewEditor returns an editor for s. s.Line must not be nil.
func NewEditor(s *Smoother) *Editor {
	if s.Line == nil {
		panic("linerenderer: Smoother has no line")
	}
	e := &Editor{target: s}
	e.Curves()
	return e
}

// Target returns the component being edited.
func (e *Editor) Target() *Smoother { return e.target }

// Curves fits curves to the line's current positions and returns them. The
// returned slice is reused until the number of positions changes.
func (e *Editor) Curves() []smoothline.CubicBez {
	return e.cache.Update(PositionsOf(e.target.Line), e.target.SmoothingLength)
}

// CaptureInitialState stores the line's current positions as the baseline.
func (e *Editor) CaptureInitialState() {
	e.target.InitialState = PositionsOf(e.target.Line)
	Logger().Debug("captured initial state", "positions", len(e.target.InitialState))
}

// CanSmooth reports whether the line has enough positions to be smoothed.
func (e *Editor) CanSmooth() bool {
	return e.target.Line.PositionCount() >= 3
}

// SmoothPath replaces the line's positions with the smoothed path and resets
// the tunables, to 1 section and a smoothing length of 0, so that repeated
// invocations don't grow the line without bound.
func (e *Editor) SmoothPath() error {
	t := e.target
	if !e.CanSmooth() {
		Logger().Warn("not smoothing line", "positions", t.Line.PositionCount(), "err", ErrTooFewPositions)
		return ErrTooFewPositions
	}
	if t.SmoothingSections <= 0 {
		Logger().Warn("not smoothing line", "sections", t.SmoothingSections, "err", ErrNoSections)
		return ErrNoSections
	}

	before := t.Line.PositionCount()
	pts := e.cache.Smooth(PositionsOf(t.Line), t.Params())
	t.Line.SetPositions(pts)
	Logger().Debug("smoothed line",
		"before", before,
		"after", len(pts),
		"length", t.SmoothingLength,
		"sections", t.SmoothingSections)

	t.SmoothingSections = 1
	t.SmoothingLength = 0
	return nil
}

// CanRestore reports whether the line differs from the baseline.
func (e *Editor) CanRestore() bool {
	return !slices.Equal(PositionsOf(e.target.Line), e.target.InitialState)
}

// RestoreDefault replaces the line's positions with the baseline if they
// differ. It reports whether the line was changed.
func (e *Editor) RestoreDefault() bool {
	if !e.CanRestore() {
		return false
	}
	t := e.target
	t.Line.SetPositions(slices.Clone(t.InitialState))
	e.Curves()
	Logger().Debug("restored initial state", "positions", len(t.InitialState))
	return true
}

package linerenderer

import (
	"slices"

	"honnef.co/go/smoothline"
)

// Positions is an ordered, mutable list of positions, such as the vertices of
// a rendered line.
type Positions interface {
	PositionCount() int
	Position(i int) smoothline.Point
	// SetPositions replaces all positions. The count becomes len(pts).
	SetPositions(pts []smoothline.Point)
}

// Line is a [Positions] backed by a slice.
type Line struct {
	points []smoothline.Point
}

var _ Positions = (*Line)(nil)

// NewLine returns a line with the given positions. The slice is copied.
func NewLine(pts ...smoothline.Point) *Line {
	return &Line{points: slices.Clone(pts)}
}

func (l *Line) PositionCount() int { return len(l.points) }

func (l *Line) Position(i int) smoothline.Point { return l.points[i] }

func (l *Line) SetPosition(i int, pt smoothline.Point) { l.points[i] = pt }

func (l *Line) SetPositions(pts []smoothline.Point) {
	l.points = append(l.points[:0:0], pts...)
}

// Points returns a copy of the line's positions.
func (l *Line) Points() []smoothline.Point {
	return slices.Clone(l.points)
}

// PositionsOf copies all positions of p into a new slice.
func PositionsOf(p Positions) []smoothline.Point {
	if l, ok := p.(*Line); ok {
		return l.Points()
	}
	out := make([]smoothline.Point, p.PositionCount())
	for i := range out {
		out[i] = p.Position(i)
	}
	return out
}

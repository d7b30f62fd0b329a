package smoothline

import (
	"fmt"
	"math"
)

// Box is an axis-aligned bounding box.
//
// A box whose Min is greater than its Max on any axis is empty. The zero value
// is the degenerate box containing only the origin, not an empty box. Use
// [EmptyBox] as the starting point for accumulating points.
type Box struct {
	Min Point
	Max Point
}

// EmptyBox returns a box that contains no points. Its union with any point is
// the box containing just that point.
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{
		Min: Pt(inf, inf, inf),
		Max: Pt(-inf, -inf, -inf),
	}
}

// NewBoxFromPoints returns the box with the extents of p0 and p1, ensuring that
// all sides are non-negative.
func NewBoxFromPoints(p0, p1 Point) Box {
	return Box{p0, p1}.Abs()
}

// BoundingBoxOf returns the smallest box containing all points. It returns
// [EmptyBox] if there are none.
func BoundingBoxOf(pts []Point) Box {
	b := EmptyBox()
	for _, pt := range pts {
		b = b.UnionPoint(pt)
	}
	return b
}

func (b Box) String() string {
	return fmt.Sprintf("[%s, %s]", b.Min, b.Max)
}

// Abs returns a new box with the same extents as b, but ensuring that all sides
// are non-negative.
func (b Box) Abs() Box {
	return Box{
		Min: Pt(min(b.Min.X, b.Max.X), min(b.Min.Y, b.Max.Y), min(b.Min.Z, b.Max.Z)),
		Max: Pt(max(b.Min.X, b.Max.X), max(b.Min.Y, b.Max.Y), max(b.Min.Z, b.Max.Z)),
	}
}

// IsEmpty reports whether the box contains no points.
func (b Box) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Size returns the extent of the box along each axis.
func (b Box) Size() Vec3 {
	if b.IsEmpty() {
		return Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the box.
func (b Box) Center() Point {
	return b.Min.Midpoint(b.Max)
}

// Contains reports whether pt is inside the box. The boundary is considered
// inside.
func (b Box) Contains(pt Point) bool {
	return pt.X >= b.Min.X && pt.X <= b.Max.X &&
		pt.Y >= b.Min.Y && pt.Y <= b.Max.Y &&
		pt.Z >= b.Min.Z && pt.Z <= b.Max.Z
}

// Union returns the smallest box enclosing both boxes.
func (b Box) Union(o Box) Box {
	return Box{
		Min: Pt(min(b.Min.X, o.Min.X), min(b.Min.Y, o.Min.Y), min(b.Min.Z, o.Min.Z)),
		Max: Pt(max(b.Max.X, o.Max.X), max(b.Max.Y, o.Max.Y), max(b.Max.Z, o.Max.Z)),
	}
}

// UnionPoint computes the union of a box with a point.
func (b Box) UnionPoint(pt Point) Box {
	return b.Union(Box{pt, pt})
}

// Inflate returns a new box with each side moved outwards by d.
func (b Box) Inflate(d float64) Box {
	v := Vec(d, d, d)
	return Box{
		Min: b.Min.Translate(v.Negate()),
		Max: b.Max.Translate(v),
	}
}

func (b Box) Translate(v Vec3) Box {
	return Box{
		Min: b.Min.Translate(v),
		Max: b.Max.Translate(v),
	}
}

func (b Box) IsInf() bool {
	return b.Min.IsInf() || b.Max.IsInf()
}

func (b Box) IsNaN() bool {
	return b.Min.IsNaN() || b.Max.IsNaN()
}

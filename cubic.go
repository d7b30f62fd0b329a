package smoothline

import (
	"iter"
	"math"
	"sort"
)

// MaxExtrema is the maximum number of extrema a cubic Bézier can have, two per
// axis.
const MaxExtrema = 6

// CubicBez is a cubic Bézier segment. P0 and P3 are the end points, P1 and P2
// are the control points shaping the tangents at P0 and P3.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// Eval evaluates the curve at t, which is clamped to [0, 1].
//
// Eval(0) returns exactly P0 and Eval(1) returns exactly P3.
func (c CubicBez) Eval(t float64) Point {
	t = min(max(t, 0), 1)
	mt := 1.0 - t
	a := Vec3(c.P0).Mul(mt * mt * mt)
	b := Vec3(c.P1).Mul(mt * mt * 3.0)
	cc := Vec3(c.P2).Mul(mt * 3.0)
	d := Vec3(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Sample returns n points evenly spaced in parameter space, at t = i/n for i in
// [0, n). The end point P3 is not included. Sample returns nil for n <= 0.
func (c CubicBez) Sample(n int) []Point {
	if n <= 0 {
		return nil
	}
	out := make([]Point, 0, n)
	for pt := range c.Samples(n) {
		out = append(out, pt)
	}
	return out
}

// Samples is like [CubicBez.Sample] but returns an iterator instead of
// allocating a slice.
func (c CubicBez) Samples(n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := range max(n, 0) {
			if !yield(c.Eval(float64(i) / float64(n))) {
				return
			}
		}
	}
}

// Deriv returns the first derivative of the curve at t.
func (c CubicBez) Deriv(t float64) Vec3 {
	mt := 1.0 - t
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	return d0.Mul(mt * mt).Add(d1.Mul(2 * mt * t)).Add(d2.Mul(t * t)).Mul(3)
}

// Tangents returns the tangent directions at the start and end of the curve.
// Coincident control points are skipped, so that the tangents are only zero
// if the whole curve is a single point.
func (c CubicBez) Tangents() (Vec3, Vec3) {
	const epsilon = 1e-12
	d0 := c.P1.Sub(c.P0)
	if d0.Hypot2() <= epsilon {
		d0 = c.P2.Sub(c.P0)
		if d0.Hypot2() <= epsilon {
			d0 = c.P3.Sub(c.P0)
		}
	}
	d1 := c.P3.Sub(c.P2)
	if d1.Hypot2() <= epsilon {
		d1 = c.P3.Sub(c.P1)
		if d1.Hypot2() <= epsilon {
			d1 = c.P3.Sub(c.P0)
		}
	}
	return d0, d1
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec3(c.P0).Add(Vec3(c.P1).Mul(2.0)).Add(Vec3(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec3(c.P1).Add(Vec3(c.P2).Mul(2.0)).Add(Vec3(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// Subsegment returns the portion of the curve between t0 and t1.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(c.Deriv(t0).Mul(scale))
	p2 := p3.Translate(c.Deriv(t1).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

// Arclen returns the arclength of the curve.
//
// This is an adaptive subdivision approach using Legendre-Gauss quadrature.
func (c CubicBez) Arclen(accuracy float64) float64 {
	return c.arclen(accuracy, 0)
}

func (c CubicBez) arclen(accuracy float64, depth int) float64 {
	d03 := c.P3.Sub(c.P0)
	d01 := c.P1.Sub(c.P0)
	d12 := c.P2.Sub(c.P1)
	d23 := c.P3.Sub(c.P2)
	lplc := d01.Hypot() + d12.Hypot() + d23.Hypot() - d03.Hypot()
	dd1 := d12.Sub(d01)
	dd2 := d23.Sub(d12)
	// These lack the factor of 3 of the first derivative.
	dm := d01.Add(d23).Mul(0.25).Add(d12.Mul(0.5)) // first derivative at midpoint
	dm1 := dd2.Add(dd1).Mul(0.5)                   // second derivative at midpoint
	dm2 := dd2.Sub(dd1).Mul(0.25)                  // 0.5 * (third derivative at midpoint)

	var est float64
	for _, coeff := range gaussLegendreCoeffs8Half {
		wi := coeff[0]
		for _, xi := range [2]float64{-coeff[1], coeff[1]} {
			dNorm2 := dm.Add(dm1.Mul(xi)).Add(dm2.Mul(xi * xi)).Hypot2()
			ddNorm2 := dm1.Add(dm2.Mul(2.0 * xi)).Hypot2()
			est += wi * ddNorm2 / dNorm2
		}
	}
	if math.IsNaN(est) {
		// dNorm2 will be 0 as c approaches a singularity
		est = 0
	}

	estGauss8Error := min(math.Pow(est, 3)*2.5e-6, 3e-2) * lplc
	if estGauss8Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs8Half[:], dm, dm1, dm2)
	}
	estGauss16Error := min(math.Pow(est, 6)*1.5e-11, 9e-3) * lplc
	if estGauss16Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs16Half[:], dm, dm1, dm2)
	}
	estGauss24Error := min(math.Pow(est, 9)*3.5e-16, 3.5e-3) * lplc
	if estGauss24Error < accuracy || depth >= 20 {
		return arclenQuadratureCore(gaussLegendreCoeffs24Half[:], dm, dm1, dm2)
	}
	c0, c1 := c.Subdivide()
	return c0.arclen(accuracy*0.5, depth+1) + c1.arclen(accuracy*0.5, depth+1)
}

func arclenQuadratureCore(coeffs [][2]float64, dm Vec3, dm1 Vec3, dm2 Vec3) float64 {
	var sum float64
	for _, coeff := range coeffs {
		wi, xi := coeff[0], coeff[1]
		d := dm.Add(dm2.Mul(xi * xi))
		dpx := d.Add(dm1.Mul(xi)).Hypot()
		dmx := d.Sub(dm1.Mul(xi)).Hypot()
		sum += 1.5 * wi * (dpx + dmx)
	}
	return sum
}

// Extrema returns the parameter values in (0, 1) at which the curve has an
// extremum along any axis, in ascending order.
func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	oneCoord(d0.Z, d1.Z, d2.Z)
	sort.Float64s(out[:outN])
	return out, outN
}

// BoundingBox returns the tight bounding box of the curve.
func (c CubicBez) BoundingBox() Box {
	bbox := NewBoxFromPoints(c.P0, c.P3)
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

// Chord returns the straight line between the curve's end points.
func (c CubicBez) Chord() Line {
	return Line{c.P0, c.P3}
}

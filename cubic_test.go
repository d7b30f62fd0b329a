package smoothline

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

var testCubic = CubicBez{
	Pt(0.1, -2.0, 0.5),
	Pt(1.3, 4.7, -1.1),
	Pt(5.5, 0.25, 2.0),
	Pt(7.0, 3.0, -0.75),
}

func TestCubicBezEvalEndpoints(t *testing.T) {
	c := testCubic
	if got := c.Eval(0); got != c.P0 {
		t.Errorf("Eval(0) = %s, want %s", got, c.P0)
	}
	if got := c.Eval(1); got != c.P3 {
		t.Errorf("Eval(1) = %s, want %s", got, c.P3)
	}
	if got := c.Eval(-3); got != c.P0 {
		t.Errorf("Eval(-3) = %s, want %s", got, c.P0)
	}
	if got := c.Eval(1.5); got != c.P3 {
		t.Errorf("Eval(1.5) = %s, want %s", got, c.P3)
	}
}

func TestCubicBezEvalBernstein(t *testing.T) {
	c := testCubic
	for i := range 11 {
		ts := float64(i) / 10
		mt := 1 - ts
		want := Point(Vec3(c.P0).Mul(mt * mt * mt).
			Add(Vec3(c.P1).Mul(3 * mt * mt * ts)).
			Add(Vec3(c.P2).Mul(3 * mt * ts * ts)).
			Add(Vec3(c.P3).Mul(ts * ts * ts)))
		assertNear(t, c.Eval(ts), want, 1e-12)
	}
}

func TestCubicBezSample(t *testing.T) {
	c := testCubic
	for _, n := range []int{1, 2, 3, 10} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			got := c.Sample(n)
			if len(got) != n {
				t.Fatalf("got %d samples, want %d", len(got), n)
			}
			if got[0] != c.P0 {
				t.Errorf("first sample is %s, want %s", got[0], c.P0)
			}
			for i, pt := range got {
				if want := c.Eval(float64(i) / float64(n)); pt != want {
					t.Errorf("sample %d is %s, want %s", i, pt, want)
				}
				if pt == c.P3 {
					t.Errorf("sample %d is the end point", i)
				}
			}
		})
	}

	for _, n := range []int{0, -1, -10} {
		if got := c.Sample(n); len(got) != 0 {
			t.Errorf("Sample(%d) returned %d points, want 0", n, len(got))
		}
		for range c.Samples(n) {
			t.Errorf("Samples(%d) yielded a point", n)
		}
	}
}

func TestCubicBezSamplesStop(t *testing.T) {
	var n int
	for range testCubic.Samples(10) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("got %d iterations, want 3", n)
	}
}

func TestCubicBezDeriv(t *testing.T) {
	// y = x², z = x
	c := CubicBez{
		Pt(0.0, 0.0, 0.0),
		Pt(1.0/3.0, 0.0, 1.0/3.0),
		Pt(2.0/3.0, 1.0/3.0, 2.0/3.0),
		Pt(1.0, 1.0, 1.0),
	}

	const n = 10
	const delta = 1e-6
	for i := range n {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := c.Deriv(ts)
		if l := d.Sub(dApprox).Hypot(); l >= delta*4 {
			t.Errorf("got difference of %g, want at most %g", l, delta*4)
		}
	}
}

func TestCubicBezSubdivide(t *testing.T) {
	c := testCubic
	c0, c1 := c.Subdivide()
	for i := range 5 {
		ts := float64(i) / 4
		assertNear(t, c0.Eval(ts), c.Eval(ts/2), 1e-12)
		assertNear(t, c1.Eval(ts), c.Eval(0.5+ts/2), 1e-12)
	}

	sub := c.Subsegment(0.25, 0.75)
	for i := range 5 {
		ts := float64(i) / 4
		assertNear(t, sub.Eval(ts), c.Eval(0.25+ts/2), 1e-12)
	}
	diff(t, c, c.Subsegment(0, 1), approx)
}

func TestCubicBezArclen(t *testing.T) {
	l := Line{Pt(0, 0, 0), Pt(3, 4, 12)}
	if got := l.CubicBez().Arclen(1e-9); math.Abs(got-13) > 1e-9 {
		t.Errorf("got arclength %v, want 13", got)
	}

	// Compare against a fine polyline approximation.
	c := testCubic
	const n = 100000
	var want float64
	prev := c.Eval(0)
	for i := 1; i <= n; i++ {
		pt := c.Eval(float64(i) / n)
		want += pt.Distance(prev)
		prev = pt
	}
	if got := c.Arclen(1e-9); math.Abs(got-want) > 1e-5 {
		t.Errorf("got arclength %v, want %v", got, want)
	}
}

func TestCubicBezExtrema(t *testing.T) {
	// y = 3t(1-t), maximum at t = 0.5
	c := CubicBez{Pt(0, 0, 0), Pt(0, 1, 0), Pt(1, 1, 0), Pt(1, 0, 0)}
	ex, n := c.Extrema()
	diff(t, []float64{0.5}, ex[:n], cmpopts.EquateApprox(0, 1e-12))
	diff(t, Box{Pt(0, 0, 0), Pt(1, 0.75, 0)}, c.BoundingBox(), approx)
}

func TestCubicBezBoundingBoxContainsSamples(t *testing.T) {
	c := testCubic
	bbox := c.BoundingBox().Inflate(1e-9)
	for pt := range c.Samples(1000) {
		if !bbox.Contains(pt) {
			t.Fatalf("%s is not inside %s", pt, bbox)
		}
	}
}

func TestCubicBezTransform(t *testing.T) {
	c := testCubic
	aff := Translate(Vec(1, 2, 3)).Mul(RotateY(0.3))
	tc := c.Transform(aff)
	for i := range 5 {
		ts := float64(i) / 4
		assertNear(t, tc.Eval(ts), c.Eval(ts).Transform(aff), 1e-12)
	}
}

func TestCubicBezTangents(t *testing.T) {
	c := CubicBez{Pt(0, 0, 0), Pt(0, 0, 0), Pt(1, 1, 0), Pt(2, 0, 0)}
	d0, d1 := c.Tangents()
	diff(t, Vec(1, 1, 0), d0)
	diff(t, Vec(1, -1, 0), d1)
}

func BenchmarkCubicBezSample(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			for range b.N {
				_ = testCubic.Sample(n)
			}
		})
	}
}

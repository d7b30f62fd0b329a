package smoothline

import (
	"math"
	"slices"
	"testing"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4, 5)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2, 2)), Pt(6, 8, 10), epsilon)
	assertNear(t, p.Transform(RotateZ(0)), p, epsilon)
	assertNear(t, p.Transform(RotateZ(math.Pi/2)), Pt(-4, 3, 5), epsilon)
	assertNear(t, p.Transform(RotateX(math.Pi/2)), Pt(3, -5, 4), epsilon)
	assertNear(t, p.Transform(RotateY(math.Pi/2)), Pt(5, 4, -3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6, 7))), Pt(8, 10, 12), epsilon)
	assertNear(t, p.Transform(FlipY), Pt(3, -4, 5), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6, 7, 8, 10, 11, 12, 13}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6, 6.7, 7.8, 8.9, 9.0, 1.1, 2.2}

	for _, p := range []Point{Pt(1, 0, 0), Pt(0, 1, 0), Pt(0, 0, 1), Pt(1, 1, 1)} {
		assertNear(t, p.Transform(a2).Transform(a1), p.Transform(a1.Mul(a2)), epsilon)
	}
	assertNear(t,
		Pt(1, 2, 3).Transform(Identity.ThenScale(2, 2, 2).ThenTranslate(Vec(1, 0, 0))),
		Pt(3, 4, 6), epsilon)
	assertNear(t,
		Pt(1, 2, 3).Transform(Identity.PreScale(2, 2, 2).PreTranslate(Vec(1, 0, 0))),
		Pt(4, 4, 6), epsilon)
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	a := Affine{2, 0.5, 0, 0, 1, 0.25, 1, 0, 3, 4, 5, 6}
	aInv := a.Invert()

	for _, p := range []Point{Pt(1, 0, 0), Pt(0, 1, 0), Pt(0, 0, 1), Pt(1, 2, 3)} {
		assertNear(t, p.Transform(aInv).Transform(a), p, epsilon)
		assertNear(t, p.Transform(a).Transform(aInv), p, epsilon)
	}

	if !Scale(0, 1, 1).Invert().IsNaN() && !Scale(0, 1, 1).Invert().IsInf() {
		t.Error("inverting a singular transform should produce non-finite coefficients")
	}
}

func TestTransformBoxBoundingBox(t *testing.T) {
	b := Box{Pt(0, 0, 0), Pt(1, 2, 3)}
	got := RotateZ(math.Pi / 2).TransformBoxBoundingBox(b)
	want := Box{Pt(-2, 0, 0), Pt(0, 1, 3)}
	diff(t, want, got, approx)
}

func TestTransformSeq(t *testing.T) {
	pts := []Point{Pt(0, 0, 0), Pt(1, 2, 3), Pt(-1, 0, 1)}
	aff := Translate(Vec(1, 1, 1))
	got := slices.Collect(Transform(slices.Values(pts), aff))
	diff(t, []Point{Pt(1, 1, 1), Pt(2, 3, 4), Pt(0, 1, 2)}, got)

	var n int
	for range Transform(slices.Values(pts), aff) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d times, want 2", n)
	}
}

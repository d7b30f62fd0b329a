package smoothline

import (
	"iter"
	"math"
)

// Affine describes a 3D affine transform via coefficients.
//
// The coefficients are stored column by column, resulting in this augmented
// matrix:
//
//	| N0 N3 N6 N9  |
//	| N1 N4 N7 N10 |
//	| N2 N5 N8 N11 |
//	| 0  0  0  1   |
//
// The convention matches the [Wikipedia] formulation of affine transformation
// as augmented matrix. The idea is that (A * B) * v == A * (B * v).
//
// [Wikipedia]: https://en.wikipedia.org/wiki/Affine_transformation
type Affine struct {
	// Struct instead of array so that the compiler can keep the coefficients in
	// registers.

	N0, N1, N2, N3, N4, N5, N6, N7, N8, N9, N10, N11 float64
}

// Identity is the identity transform.
var Identity = Affine{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
	0, 0, 0,
}

// FlipY is a transform that is flipped on the y-axis. Useful for converting
// between y-up and y-down spaces.
var FlipY = Scale(1, -1, 1)

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x, y and z.
func Scale(x, y, z float64) Affine {
	return Affine{
		x, 0, 0,
		0, y, 0,
		0, 0, z,
		0, 0, 0,
	}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec3) Affine {
	aff := Identity
	aff.N9, aff.N10, aff.N11 = v.X, v.Y, v.Z
	return aff
}

// RotateX creates an affine transform representing a rotation of th radians
// about the x axis. A positive angle rotates positive y into positive z.
func RotateX(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{
		1, 0, 0,
		0, cos, sin,
		0, -sin, cos,
		0, 0, 0,
	}
}

// RotateY creates an affine transform representing a rotation of th radians
// about the y axis. A positive angle rotates positive z into positive x.
func RotateY(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{
		cos, 0, -sin,
		0, 1, 0,
		sin, 0, cos,
		0, 0, 0,
	}
}

// RotateZ creates an affine transform representing a rotation of th radians
// about the z axis. A positive angle rotates positive x into positive y.
func RotateZ(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{
		cos, sin, 0,
		-sin, cos, 0,
		0, 0, 1,
		0, 0, 0,
	}
}

// Coefficients returns the the coefficients of the transform.
func (aff Affine) Coefficients() [12]float64 {
	return [12]float64{
		aff.N0, aff.N1, aff.N2,
		aff.N3, aff.N4, aff.N5,
		aff.N6, aff.N7, aff.N8,
		aff.N9, aff.N10, aff.N11,
	}
}

// NewAffine creates a new affine transformation from an array of coefficients.
// Alternatively, you can initialize the fields of [Affine] manually.
func NewAffine(n [12]float64) Affine {
	return Affine{n[0], n[1], n[2], n[3], n[4], n[5], n[6], n[7], n[8], n[9], n[10], n[11]}
}

func (aff Affine) Mul(o Affine) Affine {
	a := aff.Coefficients()
	b := o.Coefficients()
	var out [12]float64
	for col := range 4 {
		for row := range 3 {
			v := a[row]*b[col*3] + a[3+row]*b[col*3+1] + a[6+row]*b[col*3+2]
			if col == 3 {
				v += a[9+row]
			}
			out[col*3+row] = v
		}
	}
	return NewAffine(out)
}

// PreScale creates a scale by (x, y, z) followed by aff.
//
// Equivalent to "aff * Scale(x, y, z)"
func (aff Affine) PreScale(x, y, z float64) Affine {
	return aff.Mul(Scale(x, y, z))
}

// ThenScale creates aff followed by a scale of (x, y, z).
//
// Equivalent to "Scale(x, y, z) * aff"
func (aff Affine) ThenScale(x, y, z float64) Affine {
	return Scale(x, y, z).Mul(aff)
}

// PreTranslate creates a translation of v followed by aff.
//
// Equivalent to "aff * Translate(v)"
func (aff Affine) PreTranslate(v Vec3) Affine {
	return aff.Mul(Translate(v))
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec3) Affine {
	aff.N9 += v.X
	aff.N10 += v.Y
	aff.N11 += v.Z
	return aff
}

// Determinant computes the determinant of the linear part.
func (aff Affine) Determinant() float64 {
	return aff.N0*(aff.N4*aff.N8-aff.N7*aff.N5) -
		aff.N3*(aff.N1*aff.N8-aff.N7*aff.N2) +
		aff.N6*(aff.N1*aff.N5-aff.N4*aff.N2)
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	inv := Affine{
		N0: invDet * (aff.N4*aff.N8 - aff.N7*aff.N5),
		N1: invDet * (aff.N7*aff.N2 - aff.N1*aff.N8),
		N2: invDet * (aff.N1*aff.N5 - aff.N4*aff.N2),
		N3: invDet * (aff.N6*aff.N5 - aff.N3*aff.N8),
		N4: invDet * (aff.N0*aff.N8 - aff.N6*aff.N2),
		N5: invDet * (aff.N3*aff.N2 - aff.N0*aff.N5),
		N6: invDet * (aff.N3*aff.N7 - aff.N6*aff.N4),
		N7: invDet * (aff.N6*aff.N1 - aff.N0*aff.N7),
		N8: invDet * (aff.N0*aff.N4 - aff.N3*aff.N1),
	}
	t := Point(aff.Translation().Negate()).Transform(inv)
	return inv.WithTranslation(Vec3(t))
}

func (aff Affine) IsInf() bool {
	for _, n := range aff.Coefficients() {
		if math.IsInf(n, 0) {
			return true
		}
	}
	return false
}

func (aff Affine) IsNaN() bool {
	for _, n := range aff.Coefficients() {
		if math.IsNaN(n) {
			return true
		}
	}
	return false
}

// Translation returns the translation component of this affine transformation.
func (aff Affine) Translation() Vec3 {
	return Vec3{
		X: aff.N9,
		Y: aff.N10,
		Z: aff.N11,
	}
}

// WithTranslation replaces the translation portion of this affine
// transformation.
func (aff Affine) WithTranslation(v Vec3) Affine {
	aff.N9 = v.X
	aff.N10 = v.Y
	aff.N11 = v.Z
	return aff
}

// TransformBoxBoundingBox computes the bounding box of a transformed box.
//
// If the transform is axis-aligned, then the bounding box is tight.
func (aff Affine) TransformBoxBoundingBox(b Box) Box {
	out := EmptyBox()
	for _, x := range [2]float64{b.Min.X, b.Max.X} {
		for _, y := range [2]float64{b.Min.Y, b.Max.Y} {
			for _, z := range [2]float64{b.Min.Z, b.Max.Z} {
				out = out.UnionPoint(Pt(x, y, z).Transform(aff))
			}
		}
	}
	return out
}

func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				break
			}
		}
	}
}

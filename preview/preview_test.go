package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"honnef.co/go/smoothline"
	"honnef.co/go/smoothline/linerenderer"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func TestParsePlane(t *testing.T) {
	for _, p := range []Plane{PlaneXY, PlaneXZ, PlaneZY} {
		got, err := ParsePlane(p.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != p {
			t.Errorf("got %v, want %v", got, p)
		}
	}
	if got, err := ParsePlane("XZ"); err != nil || got != PlaneXZ {
		t.Errorf("got (%v, %v), want (%v, nil)", got, err, PlaneXZ)
	}
	if _, err := ParsePlane("yx"); err == nil {
		t.Error("expected an error for an unknown plane")
	}
}

func TestProject(t *testing.T) {
	unit := smoothline.Box{Min: smoothline.Pt(0, 0, 0), Max: smoothline.Pt(1, 1, 1)}
	approx := cmpopts.EquateApprox(0, 1e-9)
	project := func(c *Canvas, pt smoothline.Point) []float64 {
		x, y := c.Project(pt)
		return []float64{x, y}
	}

	c := NewCanvas(100, 100, unit, PlaneXY, 0)
	diff(t, []float64{0, 100}, project(c, smoothline.Pt(0, 0, 5)), approx)
	diff(t, []float64{100, 0}, project(c, smoothline.Pt(1, 1, 0)), approx)

	c = NewCanvas(100, 100, unit, PlaneXZ, 0)
	diff(t, []float64{0, 0}, project(c, smoothline.Pt(0, 7, 1)), approx)

	c = NewCanvas(100, 100, unit, PlaneZY, 0)
	diff(t, []float64{100, 100}, project(c, smoothline.Pt(3, 0, 1)), approx)

	// The shorter side is centered.
	wide := smoothline.Box{Min: smoothline.Pt(0, 0, 0), Max: smoothline.Pt(2, 1, 0)}
	c = NewCanvas(100, 100, wide, PlaneXY, 0)
	diff(t, []float64{0, 75}, project(c, smoothline.Pt(0, 0, 0)), approx)

	// A single point ends up in the middle.
	c = NewCanvas(100, 100, smoothline.Box{}, PlaneXY, 0)
	diff(t, []float64{50, 50}, project(c, smoothline.Pt(0, 0, 0)), approx)
}

func TestRender(t *testing.T) {
	s := linerenderer.NewSmoother(linerenderer.NewLine(
		smoothline.Pt(0, 0, 0),
		smoothline.Pt(1, 0, 0),
		smoothline.Pt(1, 1, 0),
	))
	s.SmoothingLength = 0.5
	s.SmoothingSections = 2
	e := linerenderer.NewEditor(s)

	img := Render(e, Options{Width: 200, Height: 200, Margin: 10})
	if got := img.Bounds(); got != image.Rect(0, 0, 200, 200) {
		t.Fatalf("got bounds %v", got)
	}

	if got := img.RGBAAt(0, 0); got != Background {
		t.Errorf("corner pixel is %v, want background %v", got, Background)
	}

	// The end handle of the first curve sits at (0.5, -0.5, 0), away from
	// everything else.
	c := NewCanvas(200, 200, Bounds(e), PlaneXY, 10)
	x, y := c.Project(smoothline.Pt(0.5, -0.5, 0))
	px := img.RGBAAt(int(math.Floor(x)), int(math.Floor(y)))
	if px.B < 200 || px.R > 50 || px.G > 50 {
		t.Errorf("pixel at end handle is %v, want blue", px)
	}

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	dec, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if dec.Bounds() != c.Image().Bounds() {
		t.Errorf("decoded image has bounds %v, want %v", dec.Bounds(), c.Image().Bounds())
	}
}

func TestDrawLine(t *testing.T) {
	b := smoothline.Box{Min: smoothline.Pt(0, 0, 0), Max: smoothline.Pt(10, 10, 0)}
	c := NewCanvas(10, 10, b, PlaneXY, 0)
	red := color.RGBA{255, 0, 0, 255}
	// A horizontal line through the middle of the pixel row y = 4.
	c.DrawLine(smoothline.Pt(0, 5.5, 0), smoothline.Pt(10, 5.5, 0), red)
	if got := c.Image().RGBAAt(5, 4); !near(got, red) {
		t.Errorf("got %v, want %v", got, red)
	}
	if got := c.Image().RGBAAt(5, 7); got != Background {
		t.Errorf("got %v, want %v", got, Background)
	}

	// Degenerate lines draw nothing.
	c.DrawLine(smoothline.Pt(2, 2, 0), smoothline.Pt(2, 2, 0), red)
	if got := c.Image().RGBAAt(2, 8); got != Background {
		t.Errorf("got %v, want %v", got, Background)
	}
}

func near(c1, c2 color.RGBA) bool {
	d := func(a, b uint8) bool { return max(a, b)-min(a, b) <= 2 }
	return d(c1.R, c2.R) && d(c1.G, c2.G) && d(c1.B, c2.B) && d(c1.A, c2.A)
}

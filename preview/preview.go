// Package preview rasterises the debug drawing of a [linerenderer.Editor] into
// an image, using an orthographic projection onto one of the coordinate
// planes.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"honnef.co/go/smoothline"
	"honnef.co/go/smoothline/linerenderer"
)

// Plane selects the two world axes that are mapped to the image's x and y
// axes.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneZY
)

func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "xy"
	case PlaneXZ:
		return "xz"
	case PlaneZY:
		return "zy"
	default:
		return fmt.Sprintf("Plane(%d)", int(p))
	}
}

// ParsePlane parses the names returned by [Plane.String], ignoring case.
func ParsePlane(s string) (Plane, error) {
	switch strings.ToLower(s) {
	case "xy", "":
		return PlaneXY, nil
	case "xz":
		return PlaneXZ, nil
	case "zy":
		return PlaneZY, nil
	default:
		return 0, fmt.Errorf("unknown plane %q", s)
	}
}

// projection maps the plane's axes to x and y, and the remaining axis to z.
func (p Plane) projection() smoothline.Affine {
	switch p {
	case PlaneXZ:
		return smoothline.NewAffine([12]float64{
			1, 0, 0,
			0, 0, 1,
			0, 1, 0,
			0, 0, 0,
		})
	case PlaneZY:
		return smoothline.NewAffine([12]float64{
			0, 0, 1,
			0, 1, 0,
			1, 0, 0,
			0, 0, 0,
		})
	default:
		return smoothline.Identity
	}
}

var Background color.Color = color.RGBA{0x30, 0x30, 0x30, 0xff}

const (
	lineWidth    = 1.0
	minDotRadius = 1.5
	dotSides     = 16
)

// Canvas is a [linerenderer.Handles] that draws into an image.
type Canvas struct {
	img   *image.RGBA
	view  smoothline.Affine
	scale float64
	ras   vector.Rasterizer
}

var _ linerenderer.Handles = (*Canvas)(nil)

// NewCanvas returns a canvas of the given size, cleared to [Background]. The
// view is fitted so that bounds, projected onto plane, fills the image minus a
// margin of margin pixels on each side, with y pointing up.
func NewCanvas(width, height int, bounds smoothline.Box, plane Plane, margin int) *Canvas {
	if width <= 0 || height <= 0 {
		panic("preview: image size must be positive")
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	proj := plane.projection()
	if bounds.IsEmpty() {
		bounds = smoothline.Box{}
	}
	pb := proj.TransformBoxBoundingBox(bounds)
	size := pb.Size()
	availW := float64(max(width-2*margin, 1))
	availH := float64(max(height-2*margin, 1))
	scale := math.Inf(1)
	if size.X > 0 {
		scale = availW / size.X
	}
	if size.Y > 0 {
		scale = min(scale, availH/size.Y)
	}
	if math.IsInf(scale, 0) {
		scale = 1
	}

	center := pb.Center()
	view := proj.
		ThenTranslate(smoothline.Vec3(center).Negate()).
		ThenScale(scale, -scale, 1).
		ThenTranslate(smoothline.Vec(float64(width)/2, float64(height)/2, 0))

	c := &Canvas{
		img:   img,
		view:  view,
		scale: scale,
	}
	c.ras.Reset(width, height)
	return c
}

// Image returns the image drawn into.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Project returns the pixel coordinates of a world position.
func (c *Canvas) Project(pos smoothline.Point) (x, y float64) {
	p := pos.Transform(c.view)
	return p.X, p.Y
}

func (c *Canvas) fill(col color.Color) {
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
}

// DrawDot implements [linerenderer.Handles]. size is the dot's diameter in
// world units.
func (c *Canvas) DrawDot(pos smoothline.Point, size float64, col color.Color) {
	x, y := c.Project(pos)
	r := max(size*c.scale/2, minDotRadius)
	for i := range dotSides {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / dotSides)
		px, py := float32(x+r*cos), float32(y+r*sin)
		if i == 0 {
			c.ras.MoveTo(px, py)
		} else {
			c.ras.LineTo(px, py)
		}
	}
	c.ras.ClosePath()
	c.fill(col)
}

// DrawLine implements [linerenderer.Handles].
func (c *Canvas) DrawLine(p0, p1 smoothline.Point, col color.Color) {
	x0, y0 := c.Project(p0)
	x1, y1 := c.Project(p1)
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	// Offset perpendicular to the line by half the line width.
	nx, ny := -dy/l*lineWidth/2, dx/l*lineWidth/2
	c.ras.MoveTo(float32(x0+nx), float32(y0+ny))
	c.ras.LineTo(float32(x1+nx), float32(y1+ny))
	c.ras.LineTo(float32(x1-nx), float32(y1-ny))
	c.ras.LineTo(float32(x0-nx), float32(y0-ny))
	c.ras.ClosePath()
	c.fill(col)
}

// Label implements [linerenderer.Handles]. The text is drawn to the upper
// right of pos.
func (c *Canvas) Label(pos smoothline.Point, text string, col color.Color) {
	x, y := c.Project(pos)
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(math.Round(x))+4, int(math.Round(y))-4),
	}
	d.DrawString(text)
}

// EncodePNG writes the image as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// Options configures [Render].
type Options struct {
	Width  int
	Height int
	Plane  Plane
	// Margin is the minimum distance in pixels between the drawing and the
	// image's edges.
	Margin int
}

// Bounds returns the box containing everything [linerenderer.Editor.DrawPreview]
// draws for e.
func Bounds(e *linerenderer.Editor) smoothline.Box {
	b := smoothline.EmptyBox()
	for _, c := range e.Curves() {
		b = b.Union(c.BoundingBox()).UnionPoint(c.P1).UnionPoint(c.P2)
	}
	if b.IsEmpty() {
		return b
	}
	return b.Inflate(linerenderer.HandleDotSize / 2)
}

// Render draws the preview of e into a new image.
func Render(e *linerenderer.Editor, opts Options) *image.RGBA {
	c := NewCanvas(opts.Width, opts.Height, Bounds(e), opts.Plane, opts.Margin)
	e.DrawPreview(c)
	linerenderer.Logger().Debug("rendered preview",
		"width", opts.Width,
		"height", opts.Height,
		"plane", opts.Plane,
		"scale", c.scale)
	return c.Image()
}

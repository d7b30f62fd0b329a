package linerenderer

import (
	"fmt"
	"image/color"

	"honnef.co/go/smoothline"
)

// Handles draws debug geometry for a preview of the smoothed line.
type Handles interface {
	DrawDot(pos smoothline.Point, size float64, c color.Color)
	DrawLine(p0, p1 smoothline.Point, c color.Color)
	Label(pos smoothline.Point, text string, c color.Color)
}

// Sizes of the dots drawn by DrawPreview, in world units.
const (
	HandleDotSize = 0.25
	SampleDotSize = 0.05
)

var (
	StartHandleColor color.Color = color.RGBA{0, 255, 0, 255}
	EndHandleColor   color.Color = color.RGBA{0, 0, 255, 255}
	SampleLineColor  color.Color = color.White
)

// DrawPreview draws the fitted curves: their tangent handles, the points
// they'll be sampled into, labelled C<curve> S<sample>, and the lines
// connecting those points. It does nothing if the line can't be smoothed.
func (e *Editor) DrawPreview(h Handles) {
	if !e.CanSmooth() {
		return
	}
	curves := e.Curves()
	for _, hd := range e.cache.Handles() {
		c := StartHandleColor
		if hd.Kind == smoothline.EndHandle {
			c = EndHandleColor
		}
		h.DrawDot(hd.Pos, HandleDotSize, c)
	}

	for i, c := range curves {
		samples := c.Sample(e.target.SmoothingSections)
		if len(samples) == 0 {
			continue
		}
		last := len(samples) - 1
		for j := range last {
			h.DrawLine(samples[j], samples[j+1], SampleLineColor)
			g := uint8(255 * j / len(samples))
			grey := color.RGBA{g, g, g, 255}
			h.Label(samples[j], sampleLabel(i, j), grey)
			h.DrawDot(samples[j], SampleDotSize, grey)
		}
		h.Label(samples[last], sampleLabel(i, last), SampleLineColor)
		h.DrawDot(samples[last], SampleDotSize, SampleLineColor)
		h.DrawLine(samples[last], c.End(), SampleLineColor)
	}
}

func sampleLabel(curve, sample int) string {
	return fmt.Sprintf("C%d S%d", curve, sample)
}

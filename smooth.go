package smoothline

// Params controls how a polyline is smoothed.
type Params struct {
	// SmoothingLength scales the tangent handles. Zero produces straight
	// chords between the anchors.
	SmoothingLength float64
	// Subdivisions is the number of samples taken from each curve.
	Subdivisions int
}

// direction returns the unit vector from p0 to p1, or the zero vector if the
// two points coincide.
func direction(p0, p1 Point) Vec3 {
	return p1.Sub(p0).NormalizeOrZero()
}

// FitCurves fits one cubic Bézier to each pair of adjacent anchors, so that
// consecutive curves share their end points and join smoothly.
//
// The handles of curve i are derived from the directions of the segments
// entering and leaving anchors[i], scaled by smoothingLength. The first curve
// has no incoming segment; its end handle is instead derived from its own
// direction and that of the second curve.
//
// FitCurves returns len(anchors)-1 curves, or none if there are fewer than two
// anchors.
func FitCurves(anchors []Point, smoothingLength float64) []CubicBez {
	if len(anchors) < 2 {
		return nil
	}
	curves := make([]CubicBez, len(anchors)-1)
	fitCurves(curves, anchors, smoothingLength)
	return curves
}

// fitCurves computes the control points of curves in place. len(curves) must
// be len(anchors)-1.
func fitCurves(curves []CubicBez, anchors []Point, smoothingLength float64) {
	for i := range curves {
		pos := anchors[i]
		next := anchors[i+1]
		last := pos
		if i > 0 {
			last = anchors[i-1]
		}

		lastDir := direction(last, pos)
		nextDir := direction(pos, next)
		startTangent := lastDir.Add(nextDir).Mul(smoothingLength)
		endTangent := nextDir.Add(lastDir).Mul(-smoothingLength)

		curves[i] = CubicBez{
			P0: pos,
			P1: pos.Translate(startTangent),
			P2: next.Translate(endTangent),
			P3: next,
		}
	}

	if len(curves) >= 2 {
		// Look ahead to the second curve for the end handle of the first one.
		nextDir := direction(curves[1].P0, curves[1].P3)
		lastDir := direction(curves[0].P0, curves[0].P3)
		curves[0].P2 = curves[0].P3.Translate(nextDir.Add(lastDir).Mul(-smoothingLength))
	}
}

// Smooth fits curves to anchors and returns the concatenation of each curve's
// samples. The result has (len(anchors)-1) * p.Subdivisions points.
//
// The final anchor is not part of the result; the last point is the sample at
// t = 1 - 1/p.Subdivisions of the last curve. Smooth returns nil if there are
// fewer than two anchors or p.Subdivisions isn't positive.
func Smooth(anchors []Point, p Params) []Point {
	var s Smoother
	return s.Smooth(anchors, p)
}

// Sample concatenates the samples of each curve in order.
func Sample(curves []CubicBez, subdivisions int) []Point {
	if subdivisions <= 0 || len(curves) == 0 {
		return nil
	}
	out := make([]Point, 0, len(curves)*subdivisions)
	for _, c := range curves {
		for pt := range c.Samples(subdivisions) {
			out = append(out, pt)
		}
	}
	return out
}

// Smoother caches the curves fitted to a path, for callers that smooth the same
// path repeatedly, such as an interactive preview.
//
// The cache is replaced by a fresh slice whenever the number of anchors
// changes. The zero value is ready to use.
type Smoother struct {
	curves []CubicBez
}

// Update fits the cached curves to anchors and returns them.
//
// The returned slice is owned by s and stays valid until the number of
// anchors changes.
func (s *Smoother) Update(anchors []Point, smoothingLength float64) []CubicBez {
	if s.Stale(len(anchors)) {
		s.curves = make([]CubicBez, max(len(anchors)-1, 0))
	}
	if len(s.curves) > 0 {
		fitCurves(s.curves, anchors, smoothingLength)
	}
	return s.curves
}

// Stale reports whether the cache doesn't match a path of n anchors.
func (s *Smoother) Stale(n int) bool {
	return s.curves == nil || len(s.curves) != max(n-1, 0)
}

// Curves returns the curves computed by the last call to [Smoother.Update].
func (s *Smoother) Curves() []CubicBez {
	return s.curves
}

// Smooth updates the cache and samples it. See [Smooth].
func (s *Smoother) Smooth(anchors []Point, p Params) []Point {
	return Sample(s.Update(anchors, p.SmoothingLength), p.Subdivisions)
}

// HandleKind identifies the control point a [Handle] stands for.
type HandleKind int

const (
	// StartHandle is P1 of a curve.
	StartHandle HandleKind = iota + 1
	// EndHandle is P2 of a curve.
	EndHandle
)

// Handle is a tangent handle of a cached curve.
type Handle struct {
	Curve int
	Kind  HandleKind
	Pos   Point
}

// Handles returns the tangent handles of the cached curves: the start handle
// of every curve and the end handle of every curve but the first, followed by
// the end handle of the first curve, which is only known once the second curve
// has been fitted.
func (s *Smoother) Handles() []Handle {
	if len(s.curves) == 0 {
		return nil
	}
	out := make([]Handle, 0, 2*len(s.curves))
	for i, c := range s.curves {
		out = append(out, Handle{Curve: i, Kind: StartHandle, Pos: c.P1})
		if i != 0 {
			out = append(out, Handle{Curve: i, Kind: EndHandle, Pos: c.P2})
		}
	}
	return append(out, Handle{Curve: 0, Kind: EndHandle, Pos: s.curves[0].P2})
}

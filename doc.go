// Package smoothline turns polylines into smooth paths made of cubic Béziers.
//
// A polyline is a sequence of 3D anchor points, such as the positions driving
// a line renderer. [FitCurves] fits one [CubicBez] to each pair of adjacent
// anchors, deriving the tangent handles from the directions of the
// neighbouring segments, and [Smooth] samples those curves back into a flat
// list of points that can replace the original anchors.
//
// # Tangents
//
// For the curve between anchors[i] and anchors[i+1], let last be the unit
// direction of the segment entering anchors[i] and next the unit direction of
// the segment leaving it. Both handles are offset by (last + next) scaled by
// the smoothing length, the start handle forwards from anchors[i] and the end
// handle backwards from anchors[i+1]. The first curve has no incoming segment,
// so its end handle looks ahead and uses the directions of the first and
// second curve instead.
//
// Zero-length segments have no direction and contribute the zero vector.
//
// # Sampling
//
// [CubicBez.Sample] evaluates a curve at t = i/n for i in [0, n) and thus never
// includes the curve's end point. Consecutive curves share end points, so
// concatenating their samples yields every anchor but the last one exactly
// once. The final anchor is not appended.
//
// # Caching
//
// [Smoother] keeps the fitted curves around between calls, for interactive
// use where the same path is smoothed on every frame. Its cache is rebuilt
// whenever the number of anchors changes.
//
// The companion package linerenderer models the editing workflow on top of
// this package: capturing a baseline, previewing handles, baking the smoothed
// path and restoring the baseline.
package smoothline

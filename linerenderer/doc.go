// Package linerenderer models the workflow of smoothing a line renderer's path
// by hand.
//
// A [Smoother] component owns the line's positions, a baseline snapshot and
// the two tunables, smoothing length and number of sections per curve. An
// [Editor] operates on a component: it captures the baseline, bakes the
// smoothed path into the line, restores the baseline and draws a preview of
// the curves through a caller-provided [Handles] implementation.
package linerenderer

// Package splinesample adaptively flattens animation-curve splines
// into piecewise-linear polylines.
//
// # Overview
//
// A spline is an ordered sequence of Knots, each carrying a value and
// (for curved segments) Bezier tangent handles, plus Extrapolation
// describing what happens before the first and after the last knot
// and an optional LoopParams describing an inner region that echoes a
// prototype range of knots. Sample walks a requested Interval of this
// spline and emits line segments to a Sink, recursively subdividing
// curved segments until the piecewise-linear approximation is within
// tolerance of the true curve, in the caller's chosen time/value
// units.
//
// # Quick Start
//
//	data := splinesample.NewSplineData(knots, pre, post, loop)
//	sink := splinesample.NewPolylineSink()
//	ok, err := splinesample.Sample(data, splinesample.Interval{Min: 0, Max: 10}, 1, 1, 0.01, sink)
//
// # Scope
//
// This package samples Bezier-interpolated spline segments. Hermite
// segments are recognized but not sampled (skipped with a warning log,
// see SetLogger); fitting, smoothing, and rasterization are out of
// scope entirely — Sample produces abstract (time, value) vertices,
// never pixels.
//
// # Concurrency
//
// A single Sample call is synchronous. Concurrent Sample calls against
// the same, read-only *SplineData and different Sinks are safe. For
// sampling many independent requests at once, see BatchSample; for
// memoizing repeated requests against the same spline, see
// CachingSampler.
package splinesample

package splinesample

// preventRegression rescales a Bezier segment's two tangent widths, by
// the same factor, so their sum no longer exceeds the segment's time
// span — otherwise the two tangent control points would cross each
// other in time, folding the curve back on itself (a "regressive"
// segment — not a function of time over part of its span). Slopes are
// left untouched, so only each tangent's reach shrinks, not its
// direction.
//
// This implements only the KeepRatio anti-regression mode. Full
// multi-mode anti-regression (Contain, KeepStart) lives in the
// authoring-time regression preventer and is out of scope for sampling
// (spec.md Non-goals); this is the narrower, segment-local variant
// original_source/sample.cpp applies just before curve sampling via
// Ts_RegressionPreventerBatchAccess::ProcessSegment(..., KeepRatio).
func preventRegression(prev, next *Knot) {
	span := next.Time - prev.Time
	if span <= 0 {
		return
	}

	sum := prev.PostTanWidth + next.PreTanWidth
	if sum > span {
		f := span / sum
		prev.PostTanWidth *= f
		next.PreTanWidth *= f
	}
}

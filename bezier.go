package splinesample

// bezierCP is the four control points of a cubic Bezier curve, in the
// spline's own (time, value) space — not yet mapped to sample space.
type bezierCP [4]vec2

// subdivideBezier splits a cubic Bezier at parameter u into two cubic
// Beziers covering [0, u] and [u, 1] of the original curve, using the
// standard de Casteljau construction.
//
// Grounded on original_source/sample.cpp's _Sampler::_SubdivideBezier.
func subdivideBezier(cp bezierCP, u float64) (left, right bezierCP) {
	cp01 := cp[0].lerp(cp[1], u)
	cp12 := cp[1].lerp(cp[2], u)
	cp23 := cp[2].lerp(cp[3], u)

	cp012 := cp01.lerp(cp12, u)
	cp123 := cp12.lerp(cp23, u)

	cp0123 := cp012.lerp(cp123, u)

	left = bezierCP{cp[0], cp01, cp012, cp0123}
	right = bezierCP{cp0123, cp123, cp23, cp[3]}
	return left, right
}

// sampleBezier adaptively flattens a cubic Bezier into line segments
// sent to sink, recursing until each segment's deviation from the
// control polygon's baseline is within tolerance (in sample space).
//
// segmentInterval clips the output to the portion of the curve that
// actually falls within the requested sample interval; cp[0].t and
// cp[3].t outside that interval are linearly clipped to its edge.
//
// timeScale/valueScale map curve-space height to sample-space height
// for the tolerance comparison; toSampleTime maps a curve-space time to
// the time value emitted to the sink (which may reverse and/or offset
// it — see _ToSampleTime in original_source/sample.cpp).
//
// Grounded on original_source/sample.cpp's _Sampler::_SampleBezier.
func sampleBezier(
	cp bezierCP,
	segmentInterval Interval,
	source SampleSource,
	timeScale, valueScale, tolerance float64,
	knotToSampleTimeScale, knotToSampleTimeOffset, valueOffset float64,
	toSampleTime func(t, scale, offset float64) float64,
	sink Sink,
) {
	scaleVec := vec2{t: timeScale, v: valueScale}
	baseVec := componentMul(scaleVec, cp[3].sub(cp[0]))
	vec1 := componentMul(scaleVec, cp[1].sub(cp[0]))
	vec2v := componentMul(scaleVec, cp[2].sub(cp[0]))

	lenSquared := baseVec.lengthSquared()
	if lenSquared == 0 {
		// Degenerate baseline (cp[0] == cp[3] in sample space): treat both
		// handles as fully perpendicular, so the flatness test uses their
		// full lengths instead of dividing by zero.
		h1Squared := vec1.lengthSquared()
		h2Squared := vec2v.lengthSquared()
		if maxFloat(h1Squared, h2Squared) <= tolerance*tolerance {
			emitFlatSegment(cp, segmentInterval, source, knotToSampleTimeScale, knotToSampleTimeOffset, valueOffset, toSampleTime, sink)
			return
		}
		splitAndRecurse(cp, segmentInterval, source, timeScale, valueScale, tolerance, knotToSampleTimeScale, knotToSampleTimeOffset, valueOffset, toSampleTime, sink)
		return
	}

	t1 := vec1.dot(baseVec) / lenSquared
	t2 := vec2v.dot(baseVec) / lenSquared

	h1Squared := vec1.sub(baseVec.scale(t1)).lengthSquared()
	h2Squared := vec2v.sub(baseVec.scale(t2)).lengthSquared()

	if maxFloat(h1Squared, h2Squared) <= tolerance*tolerance {
		emitFlatSegment(cp, segmentInterval, source, knotToSampleTimeScale, knotToSampleTimeOffset, valueOffset, toSampleTime, sink)
		return
	}

	splitAndRecurse(cp, segmentInterval, source, timeScale, valueScale, tolerance, knotToSampleTimeScale, knotToSampleTimeOffset, valueOffset, toSampleTime, sink)
}

func componentMul(a, b vec2) vec2 {
	return vec2{t: a.t * b.t, v: a.v * b.v}
}

func emitFlatSegment(
	cp bezierCP,
	segmentInterval Interval,
	source SampleSource,
	knotToSampleTimeScale, knotToSampleTimeOffset, valueOffset float64,
	toSampleTime func(t, scale, offset float64) float64,
	sink Sink,
) {
	t1, v1 := cp[0].t, cp[0].v
	t2, v2 := cp[3].t, cp[3].v

	if t1 < segmentInterval.Min {
		u := (segmentInterval.Min - t1) / (t2 - t1)
		t1, v1 = lerpScalar(u, t1, t2), lerpScalar(u, v1, v2)
	}
	if t2 > segmentInterval.Max {
		u := (segmentInterval.Max - t1) / (t2 - t1)
		t2, v2 = lerpScalar(u, t1, t2), lerpScalar(u, v1, v2)
	}

	sink.AddSegment(
		Vertex{Time: toSampleTime(t1, knotToSampleTimeScale, knotToSampleTimeOffset), Value: v1 + valueOffset},
		Vertex{Time: toSampleTime(t2, knotToSampleTimeScale, knotToSampleTimeOffset), Value: v2 + valueOffset},
		source,
	)
}

func lerpScalar(u, a, b float64) float64 {
	return a + (b-a)*u
}

func splitAndRecurse(
	cp bezierCP,
	segmentInterval Interval,
	source SampleSource,
	timeScale, valueScale, tolerance float64,
	knotToSampleTimeScale, knotToSampleTimeOffset, valueOffset float64,
	toSampleTime func(t, scale, offset float64) float64,
	sink Sink,
) {
	left, right := subdivideBezier(cp, 0.5)
	doLeft := left[0].t <= segmentInterval.Max && left[3].t >= segmentInterval.Min
	doRight := right[0].t <= segmentInterval.Max && right[3].t >= segmentInterval.Min

	recurse := func(half bezierCP) {
		sampleBezier(half, segmentInterval, source, timeScale, valueScale, tolerance, knotToSampleTimeScale, knotToSampleTimeOffset, valueOffset, toSampleTime, sink)
	}

	if knotToSampleTimeScale < 0 {
		// Negative time scale means this curve is being sampled in
		// reverse (oscillating loop echo); recurse right-before-left so
		// emitted segments still arrive in increasing sample-time order.
		if doRight {
			recurse(right)
		}
		if doLeft {
			recurse(left)
		}
	} else {
		if doLeft {
			recurse(left)
		}
		if doRight {
			recurse(right)
		}
	}
}

package splinesample

// sampleSegment samples the single spline segment running from prev to
// next, clipped to segmentInterval, emitting 0 or more line segments to
// sink. knotToSampleTimeScale/Offset and valueOffset map the segment's
// own (knot-space) time/value into the caller's requested sample space
// — see toSampleTime.
//
// Grounded on original_source/sample.cpp's _Sampler::_SampleSegment and
// _SampleCurveSegment.
func sampleSegment(
	prev, next *Knot,
	segmentInterval Interval,
	source SampleSource,
	timeScale, valueScale, tolerance float64,
	knotToSampleTimeScale, knotToSampleTimeOffset, valueOffset float64,
	sink Sink,
) {
	switch prev.NextInterp {
	case InterpValueBlock:
		return

	case InterpCurve:
		switch prev.CurveType {
		case CurveTypeBezier:
			p := *prev
			n := *next
			preventRegression(&p, &n)
			sampleCurveSegment(&p, &n, segmentInterval, source, timeScale, valueScale, tolerance, knotToSampleTimeScale, knotToSampleTimeOffset, valueOffset, sink)
		case CurveTypeHermite:
			Logger().Warn("skipping unsupported Hermite segment",
				"time", prev.Time, "nextTime", next.Time)
		}
		return

	default:
		// InterpHeld or InterpLinear: a single straight line.
		sampleLinearSegment(prev, next, segmentInterval, source, knotToSampleTimeScale, knotToSampleTimeOffset, valueOffset, sink)
	}
}

func sampleLinearSegment(
	prev, next *Knot,
	segmentInterval Interval,
	source SampleSource,
	knotToSampleTimeScale, knotToSampleTimeOffset, valueOffset float64,
	sink Sink,
) {
	t1, v1 := prev.Time, prev.Value
	t2 := next.Time
	var v2 float64
	if prev.NextInterp == InterpHeld {
		v2 = prev.Value
	} else {
		v2 = next.GetPreValue()
	}

	if t := segmentInterval.Min; t > t1 {
		u := (t - t1) / (t2 - t1)
		t1 = t
		if v1 != v2 {
			v1 = lerpScalar(u, v1, v2)
		}
	}
	if t := segmentInterval.Max; t < t2 {
		u := (t - t1) / (t2 - t1)
		t2 = t
		if v1 != v2 {
			v2 = lerpScalar(u, v1, v2)
		}
	}

	sink.AddSegment(
		Vertex{Time: toSampleTime(t1, knotToSampleTimeScale, knotToSampleTimeOffset), Value: v1 + valueOffset},
		Vertex{Time: toSampleTime(t2, knotToSampleTimeScale, knotToSampleTimeOffset), Value: v2 + valueOffset},
		source,
	)
}

func sampleCurveSegment(
	prev, next *Knot,
	segmentInterval Interval,
	source SampleSource,
	timeScale, valueScale, tolerance float64,
	knotToSampleTimeScale, knotToSampleTimeOffset, valueOffset float64,
	sink Sink,
) {
	// PostTanWidth/PreTanWidth are always non-negative; GetPostTanHeight
	// and GetPreTanHeight carry the sign of the tangent slope.
	cp0 := vec2{t: prev.Time, v: prev.Value}
	cp3 := vec2{t: next.Time, v: next.Value}
	cp1 := cp0.add(vec2{t: prev.PostTanWidth, v: prev.GetPostTanHeight()})
	cp2 := cp3.add(vec2{t: -next.PreTanWidth, v: next.GetPreTanHeight()})

	cp := bezierCP{cp0, cp1, cp2, cp3}
	sampleBezier(cp, segmentInterval, source, timeScale, valueScale, tolerance, knotToSampleTimeScale, knotToSampleTimeOffset, valueOffset, toSampleTime, sink)
}

// toSampleTime converts a time in knot space to a time in the caller's
// requested sample space.
func toSampleTime(kTime, scale, offset float64) float64 {
	return kTime*scale + offset
}

// toKnotTime converts a time in the caller's requested sample space to
// a time in knot space — the inverse of toSampleTime.
func toKnotTime(sTime, scale, offset float64) float64 {
	return (sTime - offset) / scale
}

package splinesample

import "math"

// sourceInterval pairs a provenance tag with the time range it covers.
// A spline can have up to seven such intervals (pre-extrap or its looped
// variant, knot interpolation before the inner loop, inner-loop
// pre-echo, inner-loop prototype, inner-loop post-echo, knot
// interpolation after the inner loop, post-extrap or its looped
// variant), tagged with the eight SampleSource values.
//
// Grounded on original_source/sample.cpp's anonymous-namespace
// _SourceInterval.
type sourceInterval struct {
	source   SampleSource
	interval Interval
}

// sampler characterizes a SplineData once (inner-loop status, edge
// times, source-interval list, unrolled knot array) for one requested
// interval and then samples sub-intervals of it through sampleInterval.
//
// Grounded on original_source/sample.cpp's _Sampler class.
type sampler struct {
	data       *SplineData
	timeScale  float64
	valueScale float64
	tolerance  float64

	haveInnerLoops       bool
	haveMultipleKnots    bool
	firstInnerProtoIndex int
	havePreExtrapLoops   bool
	havePostExtrapLoops  bool
	firstTime, lastTime  float64
	firstInnerLoop       float64
	lastInnerLoop        float64

	sourceIntervals []sourceInterval

	unrolled unrolledSpline
}

// newSampler characterizes data for repeated sampling over timeInterval
// at the given scales and tolerance. Callers must have already
// validated the arguments (see Sample).
func newSampler(data *SplineData, timeInterval Interval, timeScale, valueScale, tolerance float64) *sampler {
	s := &sampler{
		data:       data,
		timeScale:  timeScale,
		valueScale: valueScale,
		tolerance:  tolerance,
	}

	if idx, ok := data.HasInnerLoops(); ok {
		s.haveInnerLoops = true
		s.firstInnerProtoIndex = idx
	}

	s.haveMultipleKnots = s.haveInnerLoops || len(data.Times) > 1

	s.havePreExtrapLoops = s.haveMultipleKnots && data.PreExtrapolation.IsLooping()
	s.havePostExtrapLoops = s.haveMultipleKnots && data.PostExtrapolation.IsLooping()

	rawFirstTime := data.Times[0]
	rawLastTime := data.Times[len(data.Times)-1]
	s.firstTime = rawFirstTime
	s.lastTime = rawLastTime

	if s.haveInnerLoops {
		loopedInterval := data.LoopParams.GetLoopedInterval()
		s.firstInnerLoop = loopedInterval.Min
		s.lastInnerLoop = loopedInterval.Max

		if loopedInterval.Min < rawFirstTime {
			s.firstTime = loopedInterval.Min
		}
		if loopedInterval.Max > rawLastTime {
			s.lastTime = loopedInterval.Max
		}
	}

	if data.PreExtrapolation.Mode != ExtrapValueBlock {
		src := SourcePreExtrap
		if s.havePreExtrapLoops {
			src = SourcePreExtrapLoop
		}
		s.sourceIntervals = append(s.sourceIntervals, sourceInterval{
			source:   src,
			interval: Interval{Min: math.Inf(-1), Max: s.firstTime},
		})
	}

	if s.haveInnerLoops {
		if s.firstTime < s.firstInnerLoop {
			s.sourceIntervals = append(s.sourceIntervals, sourceInterval{SourceKnotInterp, Interval{Min: s.firstTime, Max: s.firstInnerLoop}})
		}
		if s.firstInnerLoop < data.LoopParams.ProtoStart {
			s.sourceIntervals = append(s.sourceIntervals, sourceInterval{SourceInnerLoopPreEcho, Interval{Min: s.firstInnerLoop, Max: data.LoopParams.ProtoStart}})
		}
		s.sourceIntervals = append(s.sourceIntervals, sourceInterval{SourceInnerLoopProto, Interval{Min: data.LoopParams.ProtoStart, Max: data.LoopParams.ProtoEnd}})
		if data.LoopParams.ProtoEnd < s.lastInnerLoop {
			s.sourceIntervals = append(s.sourceIntervals, sourceInterval{SourceInnerLoopPostEcho, Interval{Min: data.LoopParams.ProtoEnd, Max: s.lastInnerLoop}})
		}
		if s.lastInnerLoop < s.lastTime {
			s.sourceIntervals = append(s.sourceIntervals, sourceInterval{SourceKnotInterp, Interval{Min: s.lastInnerLoop, Max: s.lastTime}})
		}
	} else if s.firstTime < s.lastTime {
		s.sourceIntervals = append(s.sourceIntervals, sourceInterval{SourceKnotInterp, Interval{Min: s.firstTime, Max: s.lastTime}})
	}

	if data.PostExtrapolation.Mode != ExtrapValueBlock {
		src := SourcePostExtrap
		if s.havePostExtrapLoops {
			src = SourcePostExtrapLoop
		}
		s.sourceIntervals = append(s.sourceIntervals, sourceInterval{
			source:   src,
			interval: Interval{Min: s.lastTime, Max: math.Inf(1)},
		})
	}

	s.unrolled = unrollInnerLoops(data, timeInterval, s.haveInnerLoops, s.firstInnerProtoIndex, s.havePreExtrapLoops, s.havePostExtrapLoops, s.firstInnerLoop, s.lastInnerLoop)

	Logger().Debug("characterized spline for sampling",
		"haveInnerLoops", s.haveInnerLoops,
		"havePreExtrapLoops", s.havePreExtrapLoops,
		"havePostExtrapLoops", s.havePostExtrapLoops,
		"sourceIntervals", len(s.sourceIntervals),
		"firstTime", s.firstTime,
		"lastTime", s.lastTime,
	)

	return s
}

// sampleInterval samples the portion of the spline that overlaps
// subInterval, dispatching each overlapping source region to the
// appropriate component (extrapolation engine, or the knot-range
// sampler for ordinary/inner-loop interpolation).
//
// Grounded on original_source/sample.cpp's _Sampler::SampleInterval.
func (s *sampler) sampleInterval(subInterval Interval, sink Sink) bool {
	if len(s.unrolled.knots) == 0 {
		return false
	}

	for _, si := range s.sourceIntervals {
		region := subInterval.Intersect(si.interval)
		if region.IsEmpty() || region.Min == region.Max {
			continue
		}

		switch si.source {
		case SourcePreExtrap, SourcePostExtrap:
			extrapolateLinear(s.unrolled.knots, s.haveMultipleKnots, s.data.PreExtrapolation, s.data.PostExtrapolation, region, si.source, sink)

		case SourcePreExtrapLoop, SourcePostExtrapLoop:
			extrapolateLoop(s.unrolled.knots, s.unrolled.times, s.firstTime, s.lastTime, s.data.PreExtrapolation, s.data.PostExtrapolation, region, si.source, s.timeScale, s.valueScale, s.tolerance, sink)

		case SourceInnerLoopPreEcho, SourceInnerLoopProto, SourceInnerLoopPostEcho, SourceKnotInterp:
			sampleKnots(s.unrolled.knots, s.unrolled.times, s.firstTime, s.lastTime, region, si.source, s.timeScale, s.valueScale, s.tolerance, 1.0, 0.0, 0.0, sink)
		}
	}

	return true
}

// Sample adaptively flattens the portion of spline described by data
// that falls within interval into line segments sent to sink, which
// accumulates them into one or more Polylines.
//
// timeScale and valueScale convert spline time/value units into the
// units tolerance is measured in (for example, pixels per second and
// pixels per unit value in a screen-space viewer); tolerance is the
// maximum allowed deviation, in those units, between the true curve
// and its piecewise-linear approximation.
//
// Sample returns (false, err) if data, interval, timeScale, valueScale,
// or tolerance are invalid — see InvalidArgument. An empty spline (no
// knots) is not an error: Sample returns (true, nil) having emitted
// nothing, since there is no ambiguity about what "no knots" should
// render as. A Hermite-interpolated segment is skipped (logged at
// [slog.LevelWarn] via Logger) rather than treated as an error, since
// Hermite sampling is explicitly out of scope.
//
// Sample does not mutate data. It appends to sink, except that it
// clears sink before returning (false, err) when characterization
// leaves no knots to walk. It is safe to call concurrently for
// different sinks against the same SplineData.
func Sample(data *SplineData, interval Interval, timeScale, valueScale, tolerance float64, sink Sink) (bool, error) {
	if data == nil {
		return false, newInvalidArgument("spline data must not be nil")
	}
	if interval.IsEmpty() {
		return false, newInvalidArgument("sample interval must not be empty: %+v", interval)
	}
	if timeScale <= 0 {
		return false, newInvalidArgument("time scale must be positive, got %g", timeScale)
	}
	if valueScale <= 0 {
		return false, newInvalidArgument("value scale must be positive, got %g", valueScale)
	}
	if tolerance <= 0 {
		return false, newInvalidArgument("tolerance must be positive, got %g", tolerance)
	}
	if sink == nil {
		return false, newInvalidArgument("sink must not be nil")
	}

	if len(data.Times) == 0 {
		return true, nil
	}

	s := newSampler(data, interval, timeScale, valueScale, tolerance)
	ok := s.sampleInterval(interval, sink)
	if !ok {
		sink.Clear()
		return false, newInvalidArgument("cannot sample an empty spline")
	}
	return true, nil
}

package splinesample

import "math"

// unrolledSpline holds the flattened view of a spline's knots that the
// sampler actually walks: if inner looping is active, the prototype
// knots are physically copied (with time/value offsets) for every
// pre/post loop iteration that could matter to the requested sample
// interval, so the rest of sampling can use plain binary search and
// forward/backward array walks with no special-case loop logic.
//
// Grounded on original_source/sample.cpp's _Sampler::_UnrollInnerLoops.
type unrolledSpline struct {
	knots []Knot
	times []float64
}

// unrollInnerLoops builds the unrolledSpline for data, restricted to
// the portion relevant to timeInterval. firstInnerProtoIndex is the
// index (in data.Knots) of the knot at LoopParams.ProtoStart, as
// returned by SplineData.HasInnerLoops.
func unrollInnerLoops(data *SplineData, timeInterval Interval, haveInnerLoops bool, firstInnerProtoIndex int, havePreExtrapLoops, havePostExtrapLoops bool, firstInnerLoop, lastInnerLoop float64) unrolledSpline {
	if !haveInnerLoops {
		return unrolledSpline{knots: data.Knots, times: data.Times}
	}

	loopedInterval := Interval{Min: firstInnerLoop, Max: lastInnerLoop}
	if havePreExtrapLoops || havePostExtrapLoops {
		if intervalContains(loopedInterval, timeInterval) {
			loopedInterval = timeInterval
		}
	} else {
		loopedInterval = loopedInterval.Intersect(timeInterval)
	}

	times := data.Times
	preBegin := lowerBound(times, timeInterval.Min)
	if (preBegin == len(times) || times[preBegin] > timeInterval.Min) && preBegin != 0 {
		preBegin--
	}
	postEnd := upperBoundFrom(times, preBegin, timeInterval.Max)
	if (postEnd == 0 || times[postEnd-1] < timeInterval.Max) && postEnd != len(times) {
		postEnd++
	}

	if loopedInterval.IsEmpty() {
		out := unrolledSpline{
			knots: append([]Knot(nil), data.Knots[preBegin:postEnd]...),
			times: append([]float64(nil), times[preBegin:postEnd]...),
		}
		return out
	}

	lp := data.LoopParams
	protoSpan := lp.protoSpan()

	preEnd := lowerBoundFrom(times, preBegin, firstInnerLoop)
	protoBegin := firstInnerProtoIndex
	protoEnd := lowerBoundFrom(times, protoBegin, lp.ProtoEnd)
	postBegin := upperBoundFrom(times, protoEnd, lastInnerLoop)

	preOffset := lp.ProtoStart - loopedInterval.Min
	preLoops := int(math.Ceil(preOffset / protoSpan))
	if preLoops < 0 {
		preLoops = 0
	}
	postOffset := loopedInterval.Max - lp.ProtoEnd
	postLoops := int(math.Ceil(postOffset / protoSpan))
	if postLoops < 0 {
		postLoops = 0
	}

	count := (preEnd - preBegin) +
		(protoEnd-protoBegin)*(preLoops+1+postLoops) + 1 +
		(postEnd - postBegin)

	out := unrolledSpline{
		knots: make([]Knot, 0, count),
		times: make([]float64, 0, count),
	}

	for i := preBegin; i < preEnd; i++ {
		out.times = append(out.times, times[i])
		out.knots = append(out.knots, data.Knots[i])
	}

	for loopIndex := -preLoops; loopIndex <= postLoops; loopIndex++ {
		timeOffset := protoSpan * float64(loopIndex)
		valueOffset := lp.ValueOffset * float64(loopIndex)
		for i := protoBegin; i < protoEnd; i++ {
			k := data.Knots[i]
			k.Time += timeOffset
			k.Value += valueOffset
			k.PreValue += valueOffset
			out.times = append(out.times, times[i]+timeOffset)
			out.knots = append(out.knots, k)
		}
	}

	// One last copy of the first prototype knot, closing the looped
	// interval at the end.
	finalOffset := protoSpan * float64(postLoops+1)
	finalValueOffset := lp.ValueOffset * float64(postLoops+1)
	k := data.Knots[firstInnerProtoIndex]
	k.Time += finalOffset
	k.Value += finalValueOffset
	k.PreValue += finalValueOffset
	out.times = append(out.times, times[firstInnerProtoIndex]+finalOffset)
	out.knots = append(out.knots, k)

	for i := postBegin; i < postEnd; i++ {
		out.times = append(out.times, times[i])
		out.knots = append(out.knots, data.Knots[i])
	}

	return out
}

func intervalContains(outer, inner Interval) bool {
	return outer.Min <= inner.Min && inner.Max <= outer.Max
}

// lowerBoundFrom is lowerBound restricted to times[from:].
func lowerBoundFrom(times []float64, from int, t float64) int {
	return from + lowerBound(times[from:], t)
}

// upperBoundFrom is upperBound restricted to times[from:].
func upperBoundFrom(times []float64, from int, t float64) int {
	return from + upperBound(times[from:], t)
}

package splinesample

import "math"

// extrapolateLinear handles the four non-looping extrapolation modes
// (ValueBlock, Held, Sloped, Linear) for the region before the first
// knot or after the last knot.
//
// Grounded on original_source/sample.cpp's _Sampler::_ExtrapLinear.
func extrapolateLinear(
	knots []Knot,
	haveMultipleKnots bool,
	pre Extrapolation, post Extrapolation,
	regionInterval Interval,
	source SampleSource,
	sink Sink,
) {
	isPre := source == SourcePreExtrap

	var extrap Extrapolation
	var knot1, knot2 *Knot
	if isPre {
		extrap = pre
		knot1 = &knots[0]
		if len(knots) > 1 {
			knot2 = &knots[1]
		}
	} else {
		extrap = post
		knot2 = &knots[len(knots)-1]
		if len(knots) > 1 {
			knot1 = &knots[len(knots)-2]
		}
	}

	var slope float64
	switch extrap.Mode {
	case ExtrapValueBlock:
		return

	case ExtrapHeld:
		slope = 0.0

	case ExtrapSloped:
		slope = extrap.Slope

	case ExtrapLoopRepeat, ExtrapLoopReset, ExtrapLoopOscillate:
		// Callers must dispatch looping modes to extrapolateLoop instead.
		return

	case ExtrapLinear:
		slope = 0.0
		if haveMultipleKnots &&
			((isPre && !knot1.DualValued) || (!isPre && !knot2.DualValued)) {
			switch knot1.NextInterp {
			case InterpLinear:
				if knot1.Time != knot2.Time {
					slope = (knot2.GetPreValue() - knot1.Value) / (knot2.Time - knot1.Time)
				}
			case InterpCurve:
				if isPre {
					slope = knot1.PostTanSlope
				} else {
					slope = knot2.PreTanSlope
				}
			}
		}
	}

	t1, t2 := regionInterval.Min, regionInterval.Max

	var v1, v2 float64
	if isPre {
		v2 = knot1.GetPreValue()
		v1 = v2 - slope*(t2-t1)
	} else {
		v1 = knot2.Value
		v2 = v1 + slope*(t2-t1)
	}

	sink.AddSegment(Vertex{Time: t1, Value: v1}, Vertex{Time: t2, Value: v2}, source)
}

// extrapolateLoop handles the three looping extrapolation modes by
// mapping the requested region onto repeated (and, for Oscillate,
// alternately reversed) iterations of the knot-time span and
// delegating to sampleKnots/sampleKnotsReversed with a per-iteration
// time/value shift.
//
// Grounded on original_source/sample.cpp's _Sampler::_ExtrapLoop.
func extrapolateLoop(
	knots []Knot, times []float64,
	firstTime, lastTime float64,
	pre, post Extrapolation,
	regionInterval Interval,
	source SampleSource,
	timeScale, valueScale, tolerance float64,
	sink Sink,
) {
	isPre := source == SourcePreExtrapLoop

	extrap := post
	if isPre {
		extrap = pre
	}

	first := knots[0]
	last := knots[len(knots)-1]

	knotSpan := lastTime - firstTime

	var valueOffsetPerIter float64
	if extrap.Mode == ExtrapLoopRepeat {
		valueOffsetPerIter = last.Value - first.Value
	}
	oscillate := extrap.Mode == ExtrapLoopOscillate

	minTime, maxTime := regionInterval.Min, regionInterval.Max
	timeTolerance := tolerance / timeScale

	minIter := (minTime - firstTime) / knotSpan
	maxIter := (maxTime - firstTime) / knotSpan
	iterTolerance := timeTolerance / knotSpan

	minIterNum := int64(math.Floor(minIter + iterTolerance))
	maxIterNum := int64(math.Ceil(maxIter - iterTolerance))

	for iterNum := minIterNum; iterNum < maxIterNum; iterNum++ {
		if iterNum == 0 {
			continue
		}

		reversed := oscillate && iterNum%2 != 0

		var knotToSampleTimeScale, knotToSampleTimeOffset float64
		firstIterTime := firstTime + float64(iterNum)*knotSpan
		lastIterTime := firstTime + float64(iterNum+1)*knotSpan

		if reversed {
			knotToSampleTimeScale = -1.0
			knotToSampleTimeOffset = lastTime + firstIterTime
		} else {
			knotToSampleTimeScale = 1.0
			knotToSampleTimeOffset = float64(iterNum) * knotSpan
		}
		iterValueOffset := float64(iterNum) * valueOffsetPerIter

		iterInterval := Interval{Min: firstIterTime, Max: lastIterTime}
		sampleInterval := regionInterval.Intersect(iterInterval)
		if sampleInterval.IsEmpty() {
			continue
		}

		if reversed {
			sampleKnotsReversed(knots, times, firstTime, lastTime, sampleInterval, source, timeScale, valueScale, tolerance, knotToSampleTimeScale, knotToSampleTimeOffset, iterValueOffset, sink)
		} else {
			sampleKnots(knots, times, firstTime, lastTime, sampleInterval, source, timeScale, valueScale, tolerance, knotToSampleTimeScale, knotToSampleTimeOffset, iterValueOffset, sink)
		}
	}
}

package splinesample

// sampleKnots samples every segment of the (possibly loop-unrolled)
// knot array that overlaps sampleInterval, in forward time order.
// knotToSampleTimeScale/Offset and valueOffset map each emitted vertex
// from knot space into the caller's sample space.
//
// Grounded on original_source/sample.cpp's _Sampler::_SampleKnots.
func sampleKnots(
	knots []Knot, times []float64,
	firstTime, lastTime float64,
	sampleInterval Interval,
	source SampleSource,
	timeScale, valueScale, tolerance float64,
	knotToSampleTimeScale, knotToSampleTimeOffset, valueOffset float64,
	sink Sink,
) {
	knotInterval := Interval{
		Min: toKnotTime(sampleInterval.Min, knotToSampleTimeScale, knotToSampleTimeOffset),
		Max: toKnotTime(sampleInterval.Max, knotToSampleTimeScale, knotToSampleTimeOffset),
	}.Intersect(Interval{Min: firstTime, Max: lastTime})
	if knotInterval.IsEmpty() {
		return
	}

	knotTime := knotInterval.Min
	knotEndTime := knotInterval.Max

	nextIndex := upperBound(times, knotTime)
	endIndex := lowerBound(times, knotEndTime)

	for prevIndex := nextIndex - 1; prevIndex < endIndex; prevIndex, nextIndex = prevIndex+1, nextIndex+1 {
		segInterval := Interval{Min: knots[prevIndex].Time, Max: knots[nextIndex].Time}.Intersect(knotInterval)
		sampleSegment(&knots[prevIndex], &knots[nextIndex], segInterval, source, timeScale, valueScale, tolerance, knotToSampleTimeScale, knotToSampleTimeOffset, valueOffset, sink)
	}
}

// sampleKnotsReversed samples the same knot range as sampleKnots but
// walks it backward in knot-time, used only by oscillating
// extrapolation-loop iterations that run backward through time.
// sampleInterval is guaranteed to fit within a single loop iteration.
//
// Grounded on original_source/sample.cpp's
// _Sampler::_SampleKnotsReversed.
func sampleKnotsReversed(
	knots []Knot, times []float64,
	firstTime, lastTime float64,
	sampleInterval Interval,
	source SampleSource,
	timeScale, valueScale, tolerance float64,
	knotToSampleTimeScale, knotToSampleTimeOffset, valueOffset float64,
	sink Sink,
) {
	knotInterval := Interval{
		Min: toKnotTime(sampleInterval.Max, knotToSampleTimeScale, knotToSampleTimeOffset),
		Max: toKnotTime(sampleInterval.Min, knotToSampleTimeScale, knotToSampleTimeOffset),
	}.Intersect(Interval{Min: firstTime, Max: lastTime})
	if knotInterval.IsEmpty() {
		return
	}

	// Walking knotInterval backward visits exactly the same set of
	// segments as sampleKnots would walking it forward — only the
	// order differs — so reuse the same index bounds and iterate them
	// from high to low.
	firstSegmentIndex := upperBound(times, knotInterval.Min) - 1
	lastSegmentIndex := lowerBound(times, knotInterval.Max) - 1

	for prevIndex := lastSegmentIndex; prevIndex >= firstSegmentIndex; prevIndex-- {
		nextIndex := prevIndex + 1
		segInterval := Interval{Min: knots[prevIndex].Time, Max: knots[nextIndex].Time}.Intersect(knotInterval)
		sampleSegment(&knots[prevIndex], &knots[nextIndex], segInterval, source, timeScale, valueScale, tolerance, knotToSampleTimeScale, knotToSampleTimeOffset, valueOffset, sink)
	}
}

package splinesample

// Sink receives the line segments produced by Sample, coalescing
// consecutive, touching segments into Polylines. Implementations are
// not required to be safe for concurrent use; Sample drives a single
// sink sequentially.
//
// Grounded on original_source/sample.h's Ts_SampleData partial
// specializations: AddSegment(v0, v1, source) and Clear().
type Sink interface {
	// AddSegment appends one line segment, (v0 -> v1), tagged with the
	// region of the spline that produced it. Segments may arrive with
	// v0/v1 in either time order; Sample always calls AddSegment in the
	// caller-requested time direction (which may be reversed, see
	// spec.md §4.1/§9).
	AddSegment(v0, v1 Vertex, source SampleSource)

	// Clear discards any accumulated output, restoring the sink to its
	// initial empty state. Sample calls Clear before the InvalidArgument
	// return it makes when characterization leaves no knots to walk; its
	// argument-validation returns leave the sink untouched.
	Clear()
}

// PolylineSink accumulates segments into polylines, dropping source
// provenance. This is the sink to use when only the sampled curve
// shape matters.
//
// Grounded on original_source/sample.h's
// Ts_SampleData<TsSplineSamples<Vertex>>.
type PolylineSink struct {
	Polylines []Polyline
}

// NewPolylineSink returns an empty PolylineSink.
func NewPolylineSink() *PolylineSink {
	return &PolylineSink{}
}

func (s *PolylineSink) AddSegment(v0, v1 Vertex, _ SampleSource) {
	if v0.Time > v1.Time {
		v0, v1 = v1, v0
	}
	if len(s.Polylines) == 0 {
		s.Polylines = append(s.Polylines, Polyline{v0, v1})
		return
	}
	last := &s.Polylines[len(s.Polylines)-1]
	if len(*last) > 0 && (*last)[len(*last)-1] == v0 {
		*last = append(*last, v1)
		return
	}
	s.Polylines = append(s.Polylines, Polyline{v0, v1})
}

func (s *PolylineSink) Clear() {
	s.Polylines = s.Polylines[:0]
}

// SourceTrackingSink accumulates segments into polylines the same way
// PolylineSink does, but additionally starts a new polyline whenever
// the SampleSource changes, and records each polyline's source
// alongside it. Useful for diagnostics and for visualizing which
// region of the spline (extrapolation, inner loop, ordinary
// interpolation) produced which part of the output.
//
// Grounded on original_source/sample.h's
// Ts_SampleData<TsSplineSamplesWithSources<Vertex>>.
type SourceTrackingSink struct {
	Polylines []Polyline
	Sources   []SampleSource
}

// NewSourceTrackingSink returns an empty SourceTrackingSink.
func NewSourceTrackingSink() *SourceTrackingSink {
	return &SourceTrackingSink{}
}

func (s *SourceTrackingSink) AddSegment(v0, v1 Vertex, source SampleSource) {
	if v0.Time > v1.Time {
		v0, v1 = v1, v0
	}
	if len(s.Polylines) == 0 {
		s.Polylines = append(s.Polylines, Polyline{v0, v1})
		s.Sources = append(s.Sources, source)
		return
	}
	lastIdx := len(s.Polylines) - 1
	last := &s.Polylines[lastIdx]
	if len(*last) > 0 && (*last)[len(*last)-1] == v0 && s.Sources[lastIdx] == source {
		*last = append(*last, v1)
		return
	}
	s.Polylines = append(s.Polylines, Polyline{v0, v1})
	s.Sources = append(s.Sources, source)
}

func (s *SourceTrackingSink) Clear() {
	s.Polylines = s.Polylines[:0]
	s.Sources = s.Sources[:0]
}

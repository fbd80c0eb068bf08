package splinesample

// InterpMode selects how a knot interpolates to the next knot.
//
// These ordinals are part of an external binary file format and must
// not be renumbered.
type InterpMode int

const (
	InterpValueBlock InterpMode = 0 // No value in this segment.
	InterpHeld       InterpMode = 1 // Constant value in this segment.
	InterpLinear     InterpMode = 2 // Linear interpolation.
	InterpCurve      InterpMode = 3 // Bezier or Hermite, depending on CurveType.
)

// CurveType selects the mathematical form of a Curve-interpolated segment.
//
// These ordinals are part of an external binary file format and must
// not be renumbered.
type CurveType int

const (
	CurveTypeBezier  CurveType = 0 // Free tangent widths.
	CurveTypeHermite CurveType = 1 // Reserved: not sampled.
)

// ExtrapMode selects the behavior of a spline beyond its first/last knot.
//
// These ordinals are part of an external binary file format and must
// not be renumbered.
type ExtrapMode int

const (
	ExtrapValueBlock    ExtrapMode = 0 // No value in this region.
	ExtrapHeld          ExtrapMode = 1 // Constant value in this region.
	ExtrapLinear        ExtrapMode = 2 // Linear interpolation based on edge knots.
	ExtrapSloped        ExtrapMode = 3 // Linear interpolation with specified slope.
	ExtrapLoopRepeat    ExtrapMode = 4 // Knot curve repeated, offset so ends meet.
	ExtrapLoopReset     ExtrapMode = 5 // Curve repeated exactly, discontinuous joins.
	ExtrapLoopOscillate ExtrapMode = 6 // Like Reset, but every other copy reversed.
)

// SampleSource tags the provenance of an emitted polyline.
//
// These ordinals are stable for external diagnostics and must not be
// renumbered.
type SampleSource int

const (
	SourcePreExtrap         SampleSource = iota // Extrapolation before the first knot.
	SourcePreExtrapLoop                         // Looped extrapolation before the first knot.
	SourceInnerLoopPreEcho                      // Echoed copy of an inner-loop prototype.
	SourceInnerLoopProto                        // The inner-loop prototype itself.
	SourceInnerLoopPostEcho                     // Echoed copy of an inner-loop prototype.
	SourceKnotInterp                            // Ordinary knot interpolation.
	SourcePostExtrap                            // Extrapolation after the last knot.
	SourcePostExtrapLoop                        // Looped extrapolation after the last knot.
)

func (s SampleSource) String() string {
	switch s {
	case SourcePreExtrap:
		return "PreExtrap"
	case SourcePreExtrapLoop:
		return "PreExtrapLoop"
	case SourceInnerLoopPreEcho:
		return "InnerLoopPreEcho"
	case SourceInnerLoopProto:
		return "InnerLoopProto"
	case SourceInnerLoopPostEcho:
		return "InnerLoopPostEcho"
	case SourceKnotInterp:
		return "KnotInterp"
	case SourcePostExtrap:
		return "PostExtrap"
	case SourcePostExtrapLoop:
		return "PostExtrapLoop"
	default:
		return "Unknown"
	}
}

// Knot is a keyframe. It is immutable during sampling.
type Knot struct {
	Time       float64
	Value      float64
	PreValue   float64 // Equals Value unless DualValued.
	DualValued bool

	PreTanWidth  float64 // Non-negative.
	PostTanWidth float64 // Non-negative.
	PreTanSlope  float64
	PostTanSlope float64

	NextInterp InterpMode // Interpolation to the *next* knot.
	CurveType  CurveType
}

// GetPreValue returns the value on the pre-side of the knot.
func (k *Knot) GetPreValue() float64 {
	if k.DualValued {
		return k.PreValue
	}
	return k.Value
}

// GetPostTanHeight returns the signed vertical extent of the post-tangent handle.
func (k *Knot) GetPostTanHeight() float64 {
	return k.PostTanWidth * k.PostTanSlope
}

// GetPreTanHeight returns the signed vertical extent of the pre-tangent handle.
func (k *Knot) GetPreTanHeight() float64 {
	return k.PreTanWidth * k.PreTanSlope
}

// Extrapolation describes behavior beyond the first or last knot.
type Extrapolation struct {
	Mode  ExtrapMode
	Slope float64 // Only used when Mode == ExtrapSloped.
}

// IsLooping reports whether Mode is one of the three looping extrapolation modes.
func (e Extrapolation) IsLooping() bool {
	switch e.Mode {
	case ExtrapLoopRepeat, ExtrapLoopReset, ExtrapLoopOscillate:
		return true
	default:
		return false
	}
}

// LoopParams describes an inner-loop region that echoes a prototype
// sub-range of knots forward and/or backward.
//
// Inner looping is active iff ProtoEnd > ProtoStart and a knot exists
// exactly at ProtoStart (validated by SplineData.HasInnerLoops).
type LoopParams struct {
	ProtoStart   float64
	ProtoEnd     float64
	NumPreLoops  int32
	NumPostLoops int32
	ValueOffset  float64
}

// protoSpan returns ProtoEnd - ProtoStart.
func (lp LoopParams) protoSpan() float64 {
	return lp.ProtoEnd - lp.ProtoStart
}

// valid reports whether the loop parameters describe an active inner loop.
func (lp LoopParams) valid() bool {
	return lp.ProtoEnd > lp.ProtoStart
}

// GetPrototypeInterval returns the prototype region, [ProtoStart, ProtoEnd).
func (lp LoopParams) GetPrototypeInterval() Interval {
	return Interval{Min: lp.ProtoStart, Max: lp.ProtoEnd}
}

// GetLoopedInterval returns the union of the prototype region and the
// echoed pre/post regions, clamped to non-negative loop counts.
func (lp LoopParams) GetLoopedInterval() Interval {
	pre := lp.NumPreLoops
	if pre < 0 {
		pre = 0
	}
	post := lp.NumPostLoops
	if post < 0 {
		post = 0
	}
	span := lp.protoSpan()
	return Interval{
		Min: lp.ProtoStart - float64(pre)*span,
		Max: lp.ProtoEnd + float64(post)*span,
	}
}

// SplineData is the immutable input to Sample: an ordered, strictly
// increasing sequence of knots plus the extrapolation and inner-loop
// parameters that extend the sampled region beyond the authored knots.
type SplineData struct {
	Knots []Knot
	// Times mirrors Knots[i].Time for every i, kept as a tightly packed
	// slice so binary search over knot times touches minimal cache lines
	// (see spec §9, "Flat knot storage").
	Times []float64

	PreExtrapolation  Extrapolation
	PostExtrapolation Extrapolation
	LoopParams        LoopParams
}

// NewSplineData builds a SplineData from knots, deriving the parallel
// Times slice. Knots must already be sorted by Time; this is not
// re-validated here (sampling assumes the spec.md §3 invariant holds).
func NewSplineData(knots []Knot, pre, post Extrapolation, loop LoopParams) *SplineData {
	times := make([]float64, len(knots))
	for i, k := range knots {
		times[i] = k.Time
	}
	return &SplineData{
		Knots:             knots,
		Times:             times,
		PreExtrapolation:  pre,
		PostExtrapolation: post,
		LoopParams:        loop,
	}
}

// HasInnerLoops reports whether the spline has a valid inner-loop
// configuration, and if so returns the index of the first prototype
// knot (the knot exactly at LoopParams.ProtoStart).
func (d *SplineData) HasInnerLoops() (int, bool) {
	if !d.LoopParams.valid() {
		return 0, false
	}
	idx, found := d.knotIndexAtTime(d.LoopParams.ProtoStart)
	if !found {
		return 0, false
	}
	return idx, true
}

// knotIndexAtTime returns the index of the knot exactly at t, if any.
func (d *SplineData) knotIndexAtTime(t float64) (int, bool) {
	lo, hi := 0, len(d.Times)
	for lo < hi {
		mid := (lo + hi) / 2
		if d.Times[mid] < t {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(d.Times) && d.Times[lo] == t {
		return lo, true
	}
	return 0, false
}

// lowerBound returns the index of the first knot time >= t.
func lowerBound(times []float64, t float64) int {
	lo, hi := 0, len(times)
	for lo < hi {
		mid := (lo + hi) / 2
		if times[mid] < t {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// upperBound returns the index of the first knot time > t.
func upperBound(times []float64, t float64) int {
	lo, hi := 0, len(times)
	for lo < hi {
		mid := (lo + hi) / 2
		if times[mid] <= t {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

package splinesample

// SampleOption configures a CachingSampler or BatchSample call.
// Use functional options to customize sampling behavior beyond the
// mandatory (interval, scale, tolerance) arguments.
//
// Example:
//
//	cs := splinesample.NewCachingSampler(256)
//	result, err := cs.Sample("spline-1", data, interval, 1, 1, 0.5,
//	    splinesample.WithSourceTracking())
type SampleOption func(*sampleOptions)

// sampleOptions holds optional configuration for a cached or batched
// sample request.
type sampleOptions struct {
	sourceTracking bool
}

// defaultSampleOptions returns the default sample options.
func defaultSampleOptions() sampleOptions {
	return sampleOptions{
		sourceTracking: false,
	}
}

// WithSourceTracking requests a SourceTrackingSink instead of a plain
// PolylineSink, so each returned polyline is paired with the
// SampleSource region that produced it.
//
// Example:
//
//	cs := splinesample.NewCachingSampler(64)
//	result, err := cs.Sample("spline-1", data, interval, 1, 1, 0.5, splinesample.WithSourceTracking())
func WithSourceTracking() SampleOption {
	return func(o *sampleOptions) {
		o.sourceTracking = true
	}
}

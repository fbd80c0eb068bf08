// Package cache provides a generic, thread-safe LRU cache used to memoize
// sampled polylines for repeated requests against the same spline, time
// interval, and tolerance — the common case in an interactive curve editor
// redrawing the same view on every frame.
//
//	c := cache.New[string, []splinesample.Polyline](256)
//	c.Set("key", polylines)
//	value, ok := c.Get("key")
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache

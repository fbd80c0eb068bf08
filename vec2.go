package splinesample

import "math"

// vec2 is an internal (time, value) vector used by the Bezier
// subdivider and curve-segment setup. It is deliberately unexported:
// callers of this package work in terms of Vertex, not vec2.
//
// Based on gogpu-gg's Point arithmetic helpers, adapted to the
// time/value axes used by spline sampling instead of screen-space x/y.
type vec2 struct {
	t float64
	v float64
}

func vertexToVec2(vx Vertex) vec2 {
	return vec2{t: vx.Time, v: vx.Value}
}

func (p vec2) add(q vec2) vec2 {
	return vec2{t: p.t + q.t, v: p.v + q.v}
}

func (p vec2) sub(q vec2) vec2 {
	return vec2{t: p.t - q.t, v: p.v - q.v}
}

func (p vec2) scale(s float64) vec2 {
	return vec2{t: p.t * s, v: p.v * s}
}

func (p vec2) dot(q vec2) float64 {
	return p.t*q.t + p.v*q.v
}

func (p vec2) lengthSquared() float64 {
	return p.t*p.t + p.v*p.v
}

func (p vec2) length() float64 {
	return math.Sqrt(p.lengthSquared())
}

// lerp returns the point a fraction t of the way from p to q.
func (p vec2) lerp(q vec2, t float64) vec2 {
	return vec2{
		t: p.t + (q.t-p.t)*t,
		v: p.v + (q.v-p.v)*t,
	}
}

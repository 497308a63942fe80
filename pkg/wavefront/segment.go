package wavefront

import (
	"github.com/scatterlab/go-wavefront-tracer/pkg/core"
)

// PathSegment is one active light transport path. The harness owns the
// slice of segments; Scatter mutates a segment in place once per bounce.
type PathSegment struct {
	Ray              core.Ray
	Throughput       core.Vec3 // non-negative RGB multiplier accumulated along the path
	RemainingBounces int
	PixelIndex       int
	Terminated       bool
}

// NewPathSegment creates a fresh segment for a camera ray.
func NewPathSegment(ray core.Ray, pixelIndex, maxBounces int) PathSegment {
	return PathSegment{
		Ray:              ray,
		Throughput:       core.NewVec3(1, 1, 1),
		RemainingBounces: maxBounces,
		PixelIndex:       pixelIndex,
	}
}

// Active reports whether the segment should be scattered again.
func (s *PathSegment) Active() bool {
	return !s.Terminated && s.RemainingBounces > 0
}

// Terminate ends the path.
func (s *PathSegment) Terminate() {
	s.Terminated = true
}

// Compact removes terminated and exhausted segments in place, preserving the
// order of the survivors. This is the stream compaction step between bounces.
func Compact(segs []PathSegment) []PathSegment {
	out := segs[:0]
	for i := range segs {
		if segs[i].Active() {
			out = append(out, segs[i])
		}
	}
	return out
}

package wavefront

import (
	"github.com/scatterlab/go-wavefront-tracer/pkg/core"
	"github.com/scatterlab/go-wavefront-tracer/pkg/material"
)

// RayEpsilon biases scattered origins off the surface so the next bounce
// does not immediately re-intersect it.
const RayEpsilon = 1e-4

// Scatter advances a segment through one material interaction at hitPoint
// with unit outward normal. Emissive surfaces terminate the segment without
// touching its ray; the caller applies the emitted radiance. All other
// materials update the ray and throughput and consume one bounce. A
// terminated segment is never scattered again.
func Scatter(seg *PathSegment, hitPoint, normal core.Vec3, mat material.Material, sampler core.Sampler) {
	if seg.Terminated {
		return
	}

	wo := seg.Ray.Direction.Normalize()
	result := mat.Scatter(wo, normal, sampler)
	if result.Terminated {
		seg.Terminated = true
		return
	}

	seg.Throughput = seg.Throughput.MultiplyVec(result.Throughput)
	seg.Ray.Direction = result.Direction.Normalize()
	seg.Ray.Origin = hitPoint.Add(result.Direction.Multiply(RayEpsilon))
	seg.RemainingBounces--
}

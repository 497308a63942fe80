package material

import (
	"github.com/scatterlab/go-wavefront-tracer/pkg/core"
)

// Material describes how a surface redirects an incoming ray. The four
// implementations (Diffuse, Mirror, Dielectric, Emissive) are mutually
// exclusive variants; there is no flag-priority dispatch.
type Material interface {
	// Scatter chooses an outgoing direction for a ray arriving along the
	// unit direction wo at a surface with unit outward normal. It returns an
	// explicit result rather than mutating the path, so the caller decides
	// how to apply it.
	Scatter(wo, normal core.Vec3, sampler core.Sampler) ScatterResult
}

// Emitter is implemented by materials that emit light. The scatter stage
// only terminates paths at emitters; the harness applies the emitted
// radiance to the path throughput when it observes the termination.
type Emitter interface {
	Emit() core.Vec3
}

// ScatterResult is the outcome of one scatter decision.
type ScatterResult struct {
	Direction  core.Vec3 // outgoing direction; meaningless when Terminated
	Throughput core.Vec3 // multiplier to apply to the path throughput
	Terminated bool      // the path ends at this surface
}

// white is the identity throughput multiplier.
var white = core.NewVec3(1, 1, 1)

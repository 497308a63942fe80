package material

import (
	"github.com/scatterlab/go-wavefront-tracer/pkg/core"
)

// Mirror represents an ideal specular reflector.
type Mirror struct {
	Specular core.Vec3 // reflection tint
}

// NewMirror creates a mirror material
func NewMirror(specular core.Vec3) *Mirror {
	return &Mirror{Specular: specular}
}

// Scatter reflects wo about the normal and tints the throughput by the
// specular color. Deterministic; consumes no random draws.
func (m *Mirror) Scatter(wo, normal core.Vec3, sampler core.Sampler) ScatterResult {
	return ScatterResult{
		Direction:  wo.Reflect(normal),
		Throughput: m.Specular,
	}
}

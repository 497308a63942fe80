package material

import (
	"github.com/scatterlab/go-wavefront-tracer/pkg/core"
)

// Diffuse represents an ideal Lambertian surface.
type Diffuse struct {
	Albedo core.Vec3 // base color; consumed by the direct-lighting pass, not here
}

// NewDiffuse creates a diffuse material
func NewDiffuse(albedo core.Vec3) *Diffuse {
	return &Diffuse{Albedo: albedo}
}

// Scatter picks a cosine-weighted direction in the hemisphere around the
// normal. The throughput multiplier is identity: the albedo is deliberately
// not applied here, matching the renderer this reproduces, which defers
// diffuse shading to a separate pass.
func (d *Diffuse) Scatter(wo, normal core.Vec3, sampler core.Sampler) ScatterResult {
	return ScatterResult{
		Direction:  core.SampleCosineHemisphere(normal, sampler.Get2D()),
		Throughput: white,
	}
}

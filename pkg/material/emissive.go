package material

import (
	"github.com/scatterlab/go-wavefront-tracer/pkg/core"
)

// Emissive represents a light source. Paths terminate here; they are never
// scattered onward.
type Emissive struct {
	Color     core.Vec3
	Emittance float64 // > 0 marks a light source
}

// NewEmissive creates an emissive material
func NewEmissive(color core.Vec3, emittance float64) *Emissive {
	return &Emissive{Color: color, Emittance: emittance}
}

// Scatter terminates the path. The emitted radiance is not applied here;
// the harness multiplies the path throughput by Emit when it sees the flag.
func (e *Emissive) Scatter(wo, normal core.Vec3, sampler core.Sampler) ScatterResult {
	return ScatterResult{
		Throughput: white,
		Terminated: true,
	}
}

// Emit returns the radiance this surface emits.
func (e *Emissive) Emit() core.Vec3 {
	return e.Color.Multiply(e.Emittance)
}

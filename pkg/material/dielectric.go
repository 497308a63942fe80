package material

import (
	"math"

	"github.com/scatterlab/go-wavefront-tracer/pkg/core"
)

// cosEpsilon floors the |cosθ| denominator in the dielectric throughput
// weight so grazing hits cannot divide by zero.
const cosEpsilon = 1e-6

// Dielectric represents a smooth transparent material like glass that both
// reflects and refracts.
type Dielectric struct {
	Specular        core.Vec3 // tint applied to both reflected and refracted rays
	RefractiveIndex float64   // e.g. 1.5 for glass; must be > 0
}

// NewDielectric creates a dielectric material
func NewDielectric(specular core.Vec3, refractiveIndex float64) *Dielectric {
	return &Dielectric{Specular: specular, RefractiveIndex: refractiveIndex}
}

// Scatter refracts wo through the boundary, falling back to reflection under
// total internal reflection. The throughput weight reproduces the original
// renderer's max(1, f/|cosθ|) form, which is not a classically
// energy-conserving estimator; see DESIGN.md before changing it.
func (d *Dielectric) Scatter(wo, normal core.Vec3, sampler core.Sampler) ScatterResult {
	cosThetaI := normal.Dot(wo)

	var wi core.Vec3
	var ok bool
	var f float64
	if cosThetaI < 0 {
		// Entering the medium.
		wi, ok = wo.Refract(normal, 1.0/d.RefractiveIndex)
		f = Reflectance(-cosThetaI, 1.0, d.RefractiveIndex)
	} else {
		// Exiting the medium.
		wi, ok = wo.Refract(normal.Negate(), d.RefractiveIndex)
		f = Reflectance(cosThetaI, d.RefractiveIndex, 1.0)
	}

	denom := math.Max(math.Abs(cosThetaI), cosEpsilon)
	if f > 1 || !ok {
		// Total internal reflection, or refraction degenerated at the
		// critical angle: reflect instead.
		return ScatterResult{
			Direction:  wo.Reflect(normal),
			Throughput: d.Specular.Multiply(math.Max(1, f/denom)),
		}
	}
	return ScatterResult{
		Direction:  wi,
		Throughput: d.Specular.Multiply(math.Max(1, (1-f)/denom)),
	}
}

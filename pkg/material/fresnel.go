package material

import "math"

// Reflectance computes the exact unpolarized Fresnel reflectance at a
// dielectric boundary. cosThetaI is the cosine of the angle between the
// incident direction and the normal on the incidence side; etaI and etaT are
// the refractive indices of the incident and transmitted media. Returns a
// value in [0,1], exactly 1 under total internal reflection.
func Reflectance(cosThetaI, etaI, etaT float64) float64 {
	// Guard against floating-point overshoot at grazing angles.
	cosThetaI = math.Max(-1, math.Min(1, cosThetaI))
	sinThetaI := math.Sqrt(math.Max(0, 1-cosThetaI*cosThetaI))

	// Snell's law; sinThetaT >= 1 means refraction is impossible.
	sinThetaT := etaI / etaT * sinThetaI
	if sinThetaT >= 1 {
		return 1
	}
	cosThetaT := math.Sqrt(math.Max(0, 1-sinThetaT*sinThetaT))

	rParl := (etaT*cosThetaI - etaI*cosThetaT) / (etaT*cosThetaI + etaI*cosThetaT)
	rPerp := (etaI*cosThetaI - etaT*cosThetaT) / (etaI*cosThetaI + etaT*cosThetaT)
	return (rParl*rParl + rPerp*rPerp) / 2
}

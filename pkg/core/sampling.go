package core

import (
	"math"
	"math/rand"
)

// SqrtOneThird is the threshold used to pick a reference axis that is never
// near-parallel to a unit normal when building an orthonormal basis.
const SqrtOneThird = 0.5773502691896258

// Sampler provides uniform random values in [0,1) for scattering decisions.
// Each invocation owns its sampler exclusively; samplers are never shared
// across paths or bounces.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// NewPathSampler creates the sampler owned by one scatter invocation. The
// underlying seed is a pure function of (frame seed, pixel index, bounce),
// so a rerun with the same seed replays bit-identical paths no matter how
// invocations are scheduled across workers.
func NewPathSampler(seed int64, pixelIndex, bounce int) *RandomSampler {
	h := mix64(uint64(seed))
	h = mix64(h ^ uint64(pixelIndex))
	h = mix64(h ^ uint64(bounce))
	return NewRandomSampler(rand.New(rand.NewSource(int64(h))))
}

// mix64 is the splitmix64 finalizer, used to decorrelate nearby seeds.
func mix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// SampleCosineHemisphere generates a cosine-weighted random direction in the
// hemisphere around a unit normal, with density cos(θ)/π. Consumes exactly
// one 2D sample.
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	cosTheta := math.Sqrt(sample.X)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)
	phi := 2.0 * math.Pi * sample.Y

	// Pick a reference axis that cannot be near-parallel to the normal: a
	// unit vector has at most two components with |c| >= sqrt(1/3).
	var axis Vec3
	if math.Abs(normal.X) < SqrtOneThird {
		axis = NewVec3(1, 0, 0)
	} else if math.Abs(normal.Y) < SqrtOneThird {
		axis = NewVec3(0, 1, 0)
	} else {
		axis = NewVec3(0, 0, 1)
	}

	tangent := normal.Cross(axis).Normalize()
	bitangent := normal.Cross(tangent).Normalize()

	return normal.Multiply(cosTheta).
		Add(tangent.Multiply(math.Cos(phi) * sinTheta)).
		Add(bitangent.Multiply(math.Sin(phi) * sinTheta))
}

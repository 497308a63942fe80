package core

import (
	"math"
	"testing"
)

func TestVec3BasicOperations(t *testing.T) {
	v := NewVec3(1, 2, 3)
	w := NewVec3(4, 5, 6)

	if got := v.Add(w); got != NewVec3(5, 7, 9) {
		t.Errorf("Add: got %v", got)
	}
	if got := v.Subtract(w); got != NewVec3(-3, -3, -3) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := v.Dot(w); got != 32 {
		t.Errorf("Dot: got %f", got)
	}
	if got := v.Cross(w); got != NewVec3(-3, 6, -3) {
		t.Errorf("Cross: got %v", got)
	}
	if got := v.MultiplyVec(w); got != NewVec3(4, 10, 18) {
		t.Errorf("MultiplyVec: got %v", got)
	}
}

func TestNormalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	// Normalizing the zero vector must not produce NaN
	zero := NewVec3(0, 0, 0).Normalize()
	if zero != NewVec3(0, 0, 0) {
		t.Errorf("Expected zero vector, got %v", zero)
	}
}

func TestReflect(t *testing.T) {
	// 45-degree ray off a horizontal surface
	v := NewVec3(1, -1, 0).Normalize()
	n := NewVec3(0, 1, 0)
	r := v.Reflect(n)

	expected := NewVec3(1, 1, 0).Normalize()
	if r.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, r)
	}

	// Reflection preserves length and flips the normal component
	if math.Abs(r.Length()-1) > 1e-12 {
		t.Errorf("Reflection changed length: %f", r.Length())
	}
	if math.Abs(r.Dot(n)+v.Dot(n)) > 1e-12 {
		t.Errorf("Normal component not flipped: %f vs %f", r.Dot(n), v.Dot(n))
	}
}

func TestRefractSnellsLaw(t *testing.T) {
	// Air to glass at 45 degrees
	v := NewVec3(1, -1, 0).Normalize()
	n := NewVec3(0, 1, 0)
	eta := 1.0 / 1.5

	refracted, ok := v.Refract(n, eta)
	if !ok {
		t.Fatal("Expected refraction to succeed")
	}
	if math.Abs(refracted.Length()-1) > 1e-12 {
		t.Errorf("Refracted direction not unit length: %f", refracted.Length())
	}
	if refracted.Y >= 0 {
		t.Errorf("Refracted ray should continue into the surface, got %v", refracted)
	}

	// sin(thetaT) = eta * sin(thetaI)
	sinThetaI := v.Cross(n).Length()
	sinThetaT := refracted.Cross(n).Length()
	if math.Abs(sinThetaT-eta*sinThetaI) > 1e-12 {
		t.Errorf("Snell's law violated: sinT=%f, eta*sinI=%f", sinThetaT, eta*sinThetaI)
	}
}

func TestRefractTotalInternalReflection(t *testing.T) {
	// Glass to air at a shallow angle: no refracted direction exists
	v := NewVec3(0.95, -0.3122498999199199, 0)
	n := NewVec3(0, 1, 0)

	if _, ok := v.Refract(n, 1.5); ok {
		t.Error("Expected refraction to fail beyond the critical angle")
	}
}

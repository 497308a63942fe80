package geometry

import (
	"math"
	"testing"

	"github.com/scatterlab/go-wavefront-tracer/pkg/core"
	"github.com/scatterlab/go-wavefront-tracer/pkg/material"
)

func TestSphereHitFromOutside(t *testing.T) {
	mat := material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))
	sphere := NewSphere(core.NewVec3(0, 0, -2), 0.5, mat)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	isect, ok := sphere.Hit(ray, 1e-3, 1e4)
	if !ok {
		t.Fatal("Expected hit")
	}
	if math.Abs(isect.T-1.5) > 1e-12 {
		t.Errorf("Expected t=1.5, got %f", isect.T)
	}
	if want := core.NewVec3(0, 0, -1.5); isect.Point.Subtract(want).Length() > 1e-12 {
		t.Errorf("Expected point %v, got %v", want, isect.Point)
	}
	// Outward normal faces the ray origin
	if want := core.NewVec3(0, 0, 1); isect.Normal.Subtract(want).Length() > 1e-12 {
		t.Errorf("Expected normal %v, got %v", want, isect.Normal)
	}
	if isect.Material != mat {
		t.Error("Intersection does not carry the sphere's material")
	}
}

func TestSphereHitFromInsideKeepsOutwardNormal(t *testing.T) {
	mat := material.NewDielectric(core.NewVec3(1, 1, 1), 1.5)
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, mat)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	isect, ok := sphere.Hit(ray, 1e-3, 1e4)
	if !ok {
		t.Fatal("Expected hit from inside")
	}
	// The normal stays outward-facing; the material stage reads its sign
	// against the ray to detect the exit crossing.
	if want := core.NewVec3(0, 0, -1); isect.Normal.Subtract(want).Length() > 1e-12 {
		t.Errorf("Expected outward normal %v, got %v", want, isect.Normal)
	}
	if isect.Normal.Dot(ray.Direction) <= 0 {
		t.Error("Exit crossing should have normal and direction on the same side")
	}
}

func TestSphereMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 5, -2), 0.5, material.NewDiffuse(core.NewVec3(1, 1, 1)))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, ok := sphere.Hit(ray, 1e-3, 1e4); ok {
		t.Error("Expected miss")
	}
}

func TestSphereRespectsTRange(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -2), 0.5, material.NewDiffuse(core.NewVec3(1, 1, 1)))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, ok := sphere.Hit(ray, 1e-3, 1.0); ok {
		t.Error("Hit reported beyond tMax")
	}
	if isect, ok := sphere.Hit(ray, 1.6, 1e4); !ok || math.Abs(isect.T-2.5) > 1e-12 {
		t.Errorf("Expected far intersection at t=2.5, got %+v ok=%v", isect, ok)
	}
}

func TestHitClosestPicksNearest(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, material.NewDiffuse(core.NewVec3(1, 0, 0)))
	far := NewSphere(core.NewVec3(0, 0, -5), 0.5, material.NewDiffuse(core.NewVec3(0, 1, 0)))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	isect, ok := HitClosest([]Shape{far, near}, ray, 1e-3, 1e4)
	if !ok {
		t.Fatal("Expected hit")
	}
	if math.Abs(isect.T-1.5) > 1e-12 {
		t.Errorf("Expected nearest hit at t=1.5, got %f", isect.T)
	}
	if isect.Material != near.Material {
		t.Error("Expected the near sphere's material")
	}
}

package geometry

import (
	"github.com/scatterlab/go-wavefront-tracer/pkg/core"
	"github.com/scatterlab/go-wavefront-tracer/pkg/material"
)

// Intersection is the transient result of a geometry query, consumed once
// per bounce. Normal is unit length and always outward-facing; the material
// stage uses its sign against the ray direction to tell entering from
// exiting.
type Intersection struct {
	Point    core.Vec3
	Normal   core.Vec3
	T        float64
	Material material.Material
}

// Shape is anything a ray can hit.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (Intersection, bool)
}

// HitClosest returns the nearest intersection along the ray among shapes.
func HitClosest(shapes []Shape, ray core.Ray, tMin, tMax float64) (Intersection, bool) {
	var closest Intersection
	found := false
	for _, s := range shapes {
		if isect, ok := s.Hit(ray, tMin, tMax); ok {
			closest = isect
			tMax = isect.T
			found = true
		}
	}
	return closest, found
}

package scene

import (
	"github.com/scatterlab/go-wavefront-tracer/pkg/core"
	"github.com/scatterlab/go-wavefront-tracer/pkg/geometry"
	"github.com/scatterlab/go-wavefront-tracer/pkg/material"
)

// Scene holds the shapes a wavefront render bounces against.
type Scene struct {
	Shapes []geometry.Shape
}

// NewDefaultScene creates the default scene: a diffuse, a glass and a mirror
// sphere on a sphere ground, lit by an overhead sphere light.
func NewDefaultScene() *Scene {
	ground := material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))
	matte := material.NewDiffuse(core.NewVec3(0.7, 0.3, 0.3))
	glass := material.NewDielectric(core.NewVec3(1.0, 1.0, 1.0), 1.5)
	mirror := material.NewMirror(core.NewVec3(0.8, 0.8, 0.8))
	light := material.NewEmissive(core.NewVec3(1.0, 0.95, 0.9), 5.0)

	return &Scene{
		Shapes: []geometry.Shape{
			geometry.NewSphere(core.NewVec3(0, -100.5, -1.2), 100, ground),
			geometry.NewSphere(core.NewVec3(-1.05, 0, -1.2), 0.5, matte),
			geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, glass),
			geometry.NewSphere(core.NewVec3(1.05, 0, -1.2), 0.5, mirror),
			geometry.NewSphere(core.NewVec3(0, 2.7, -1.2), 1.2, light),
		},
	}
}

package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

func init() {
	Register(Definition{
		Name:        "basic",
		Description: "A diffuse sphere resting on a large ground sphere",
		Camera: renderer.CameraConfig{
			SamplesPerPixel: 100,
			MaxDepth:        50,
			VFov:            90,
			ImageWidth:      400,
			AspectRatio:     16.0 / 9.0,
			LookFrom:        core.NewVec3(0, 0, 0),
			LookAt:          core.NewVec3(0, 0, -1),
			Up:              core.NewVec3(0, 1, 0),
			FocusDist:       1,
		},
		Populate: populateBasic,
	})
}

// NewBasicScene creates the single-sphere scene
func NewBasicScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	return mustBuild("basic", 0, cameraOverrides)
}

func populateBasic(world *geometry.HittableList, _ core.Sampler) {
	world.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5,
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))
	world.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100,
		material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))))
}

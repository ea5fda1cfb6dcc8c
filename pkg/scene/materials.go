package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

func init() {
	Register(Definition{
		Name:        "materials",
		Description: "Hollow glass, diffuse and fuzzy metal spheres seen through a defocused lens",
		Camera: renderer.CameraConfig{
			SamplesPerPixel: 100,
			MaxDepth:        50,
			VFov:            20,
			ImageWidth:      400,
			AspectRatio:     16.0 / 9.0,
			LookFrom:        core.NewVec3(-2, 2, 1),
			LookAt:          core.NewVec3(0, 0, -1),
			Up:              core.NewVec3(0, 1, 0),
			DefocusAngle:    10,
			FocusDist:       3.4,
		},
		Populate: populateMaterials,
	})
}

// NewMaterialsScene creates the three-material showcase scene
func NewMaterialsScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	return mustBuild("materials", 0, cameraOverrides)
}

func populateMaterials(world *geometry.HittableList, _ core.Sampler) {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	// Air inside glass: the index relative to the enclosing medium
	bubble := material.NewDielectric(1.0 / 1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	world.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground))
	world.Add(geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, center))
	world.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass))
	world.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4, bubble))
	world.Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold))
}

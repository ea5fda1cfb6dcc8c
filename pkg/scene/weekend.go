package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

func init() {
	Register(Definition{
		Name:        "weekend",
		Description: "A field of small random spheres around three large ones",
		Camera: renderer.CameraConfig{
			SamplesPerPixel: 100,
			MaxDepth:        50,
			VFov:            20,
			ImageWidth:      400,
			AspectRatio:     16.0 / 9.0,
			LookFrom:        core.NewVec3(13, 2, 3),
			LookAt:          core.NewVec3(0, 0, 0),
			Up:              core.NewVec3(0, 1, 0),
			DefocusAngle:    0.6,
			FocusDist:       10,
		},
		Populate: populateWeekend,
	})
}

// NewWeekendScene creates the random-spheres scene. The same seed always
// produces the same arrangement.
func NewWeekendScene(seed int64, cameraOverrides ...renderer.CameraConfig) *Scene {
	return mustBuild("weekend", seed, cameraOverrides)
}

func populateWeekend(world *geometry.HittableList, sampler core.Sampler) {
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000,
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	// One glass material shared by every glass sphere
	glass := material.NewDielectric(1.5)
	keepClear := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			offset := sampler.Get2D()
			center := core.NewVec3(float64(a)+0.9*offset.X, 0.2, float64(b)+0.9*offset.Y)

			if center.Subtract(keepClear).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				albedo := sampler.Get3D().MultiplyVec(sampler.Get3D())
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := randomRange(sampler, 0.5, 1)
				fuzz := 0.5 * sampler.Get1D()
				mat = material.NewMetal(albedo, fuzz)
			default:
				mat = glass
			}
			world.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0,
		material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0,
		material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))
}

// randomRange returns a vector with each component uniform in [min, max)
func randomRange(sampler core.Sampler, min, max float64) core.Vec3 {
	s := sampler.Get3D()
	span := max - min
	return core.NewVec3(min+span*s.X, min+span*s.Y, min+span*s.Z)
}

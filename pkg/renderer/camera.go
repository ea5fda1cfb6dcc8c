package renderer

import (
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
)

// CameraConfig contains the caller-settable camera parameters
type CameraConfig struct {
	SamplesPerPixel int       // Random samples averaged per pixel
	MaxDepth        int       // Maximum ray bounces
	VFov            float64   // Vertical field of view in degrees
	ImageWidth      int       // Output width in pixels
	AspectRatio     float64   // Width over height
	LookFrom        core.Vec3 // Camera position
	LookAt          core.Vec3 // Point the camera looks at
	Up              core.Vec3 // Camera-relative up direction
	DefocusAngle    float64   // Lens cone angle in degrees; 0 gives a pinhole camera
	FocusDist       float64   // Distance from LookFrom to the plane of perfect focus
}

// DefaultCameraConfig returns a small pinhole camera looking down +Z from (0,0,-1)
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		SamplesPerPixel: 10,
		MaxDepth:        10,
		VFov:            90,
		ImageWidth:      100,
		AspectRatio:     1.0,
		LookFrom:        core.NewVec3(0, 0, -1),
		LookAt:          core.NewVec3(0, 0, 0),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDist:       10,
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	zero := core.Vec3{}

	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.ImageWidth != 0 {
		result.ImageWidth = override.ImageWidth
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.LookFrom != zero {
		result.LookFrom = override.LookFrom
	}
	if override.LookAt != zero {
		result.LookAt = override.LookAt
	}
	if override.Up != zero {
		result.Up = override.Up
	}
	if override.DefocusAngle != 0 {
		result.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDist != 0 {
		result.FocusDist = override.FocusDist
	}

	return result
}

// Validate reports the first parameter that would make rendering meaningless
func (c CameraConfig) Validate() error {
	switch {
	case c.SamplesPerPixel < 1:
		return errors.Errorf("samples per pixel must be at least 1, got %d", c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return errors.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	case !(c.VFov > 0 && c.VFov < 180):
		return errors.Errorf("vertical field of view must be in (0, 180) degrees, got %g", c.VFov)
	case c.ImageWidth < 1:
		return errors.Errorf("image width must be at least 1, got %d", c.ImageWidth)
	case !(c.AspectRatio > 0):
		return errors.Errorf("aspect ratio must be positive, got %g", c.AspectRatio)
	case !(c.DefocusAngle >= 0):
		return errors.Errorf("defocus angle must not be negative, got %g", c.DefocusAngle)
	case !(c.FocusDist > 0):
		return errors.Errorf("focus distance must be positive, got %g", c.FocusDist)
	case c.LookFrom == c.LookAt:
		return errors.New("look-from and look-at must differ")
	case c.Up.Cross(c.LookFrom.Subtract(c.LookAt)).NearZero():
		return errors.New("up vector must not be parallel to the view direction")
	}
	return nil
}

// Camera generates rays for rendering and drives the render loop.
// Configuration fields may be changed between renders; derived state is
// recomputed by Initialize at the start of every render.
type Camera struct {
	CameraConfig

	imageHeight  int
	center       core.Vec3 // Camera center
	pixel00Loc   core.Vec3 // Location of pixel (0, 0) center
	pixelDeltaU  core.Vec3 // Offset to the pixel to the right
	pixelDeltaV  core.Vec3 // Offset to the pixel below
	u, v, w      core.Vec3 // Camera frame basis vectors
	defocusDiskU core.Vec3 // Defocus disk horizontal radius
	defocusDiskV core.Vec3 // Defocus disk vertical radius
}

// NewCamera creates a camera from config and computes its derived state.
// It panics if config is invalid.
func NewCamera(config CameraConfig) *Camera {
	camera := &Camera{CameraConfig: config}
	camera.Initialize()
	return camera
}

// Initialize derives the viewport and lens geometry from the configuration.
// It panics if the configuration is invalid.
func (c *Camera) Initialize() {
	if err := c.Validate(); err != nil {
		panic(errors.Wrap(err, "invalid camera configuration"))
	}

	c.imageHeight = max(1, int(float64(c.ImageWidth)/c.AspectRatio))
	c.center = c.LookFrom

	theta := degreesToRadians(c.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * c.FocusDist
	viewportWidth := viewportHeight * (float64(c.ImageWidth) / float64(c.imageHeight))

	// Orthonormal camera frame
	c.w = c.LookFrom.Subtract(c.LookAt).Normalize()
	c.u = c.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float64(c.ImageWidth))
	c.pixelDeltaV = viewportV.Divide(float64(c.imageHeight))

	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(c.FocusDist)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	c.pixel00Loc = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := c.FocusDist * math.Tan(degreesToRadians(c.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)
}

// ImageHeight returns the height derived by the last Initialize
func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

// GetRay returns a ray through a random point in pixel (i, j), where i is the
// column and j the row counted from the top. The origin lies on the defocus
// disk when DefocusAngle is positive.
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := sampleSquare(sampler)
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	rayOrigin := c.center
	if c.DefocusAngle > 0 {
		rayOrigin = c.defocusDiskSample(sampler)
	}

	return core.NewRay(rayOrigin, pixelSample.Subtract(rayOrigin))
}

// Render traces every pixel of the image in raster order, top row first, and
// streams the averaged linear colors into sink. Scanline progress is reported
// to logger when it is non-nil.
func (c *Camera) Render(world geometry.Hittable, sampler core.Sampler, sink PixelSink, logger core.Logger) (RenderStats, error) {
	c.Initialize()
	startTime := time.Now()

	integratorInst := integrator.NewPathTracingIntegrator(c.MaxDepth)
	stats := RenderStats{
		Width:           c.ImageWidth,
		Height:          c.imageHeight,
		SamplesPerPixel: c.SamplesPerPixel,
	}

	if err := sink.Begin(c.ImageWidth, c.imageHeight); err != nil {
		return stats, errors.Wrap(err, "failed to start image output")
	}

	for j := 0; j < c.imageHeight; j++ {
		if logger != nil {
			logger.Printf("Scanlines remaining: %d", c.imageHeight-j)
		}
		for i := 0; i < c.ImageWidth; i++ {
			var ps PixelStats
			for sample := 0; sample < c.SamplesPerPixel; sample++ {
				ray := c.GetRay(i, j, sampler)
				ps.AddSample(integratorInst.RayColor(ray, world, sampler))
			}
			stats.update(ps)

			if err := sink.WritePixel(ps.GetColor()); err != nil {
				return stats, errors.Wrapf(err, "failed to write pixel (%d, %d)", i, j)
			}
		}
	}

	if err := sink.End(); err != nil {
		return stats, errors.Wrap(err, "failed to finish image output")
	}

	stats.Duration = time.Since(startTime)
	if logger != nil {
		logger.Printf("Done: %dx%d, %d samples in %v", stats.Width, stats.Height, stats.TotalSamples, stats.Duration)
	}
	return stats, nil
}

// sampleSquare returns a random offset in the [-0.5, 0.5) unit square
func sampleSquare(sampler core.Sampler) core.Vec2 {
	sample := sampler.Get2D()
	return core.NewVec2(sample.X-0.5, sample.Y-0.5)
}

// defocusDiskSample returns a random point on the camera's defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

package renderer

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// channelIntensity keeps channel values below 1 so they never quantize to 256
var channelIntensity = core.NewInterval(0.0, 0.999)

// linearToGamma applies gamma 2 correction
func linearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// quantize maps a linear channel value to an 8-bit gamma-corrected value
func quantize(linear float64) uint8 {
	if math.IsNaN(linear) {
		return 0
	}
	return uint8(255.99 * channelIntensity.Clamp(linearToGamma(linear)))
}

// ToRGB8 converts a linear color to gamma-corrected 8-bit channels
func ToRGB8(linear core.Vec3) [3]uint8 {
	return [3]uint8{quantize(linear.X), quantize(linear.Y), quantize(linear.Z)}
}

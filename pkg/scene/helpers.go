package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
)

// The helpers below build literal preset geometry and panic on invalid input

var (
	blue  = core.NewColor(0, 0, 255)
	red   = core.NewColor(255, 0, 0)
	green = core.NewColor(0, 255, 0)
	white = core.NewColor(255, 255, 255)
)

func surface(emission core.Color, material core.Material) geometry.Surface {
	return geometry.Surface{Material: material, Emission: emission}
}

func sphere(radius float64, center core.Point, s geometry.Surface) *geometry.Sphere {
	sp, err := geometry.NewSphere(center, radius, s)
	if err != nil {
		panic(err)
	}
	return sp
}

func plane(q core.Point, normal core.Vector, s geometry.Surface) *geometry.Plane {
	p, err := geometry.NewPlane(q, normal, s)
	if err != nil {
		panic(err)
	}
	return p
}

func spot(intensity core.Color, position core.Point, direction core.Vector) *lights.SpotLight {
	sl, err := lights.NewSpotLight(intensity, position, direction)
	if err != nil {
		panic(err)
	}
	return sl
}

// frontCamera looks down -z from location with +y up
func frontCamera(location core.Point, distance, size float64) geometry.CameraConfig {
	return geometry.CameraConfig{
		Location:   location,
		To:         core.MustVector(0, 0, -1),
		Up:         core.MustVector(0, 1, 0),
		VpWidth:    size,
		VpHeight:   size,
		VpDistance: distance,
	}
}

func square(size int) SamplingConfig {
	return SamplingConfig{Width: size, Height: size, SamplesPerPixel: 1}
}

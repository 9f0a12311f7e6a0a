package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// SpotLight is a point light whose intensity falls off with the cosine between its
// direction and the direction to the lit point. Points behind the spot get no light.
type SpotLight struct {
	PointLight
	direction  core.Vector
	narrowBeam float64
}

// NewSpotLight creates a spot light pointing along direction. A zero direction is rejected.
func NewSpotLight(intensity core.Color, position core.Point, direction core.Vector) (*SpotLight, error) {
	if direction.IsZero() {
		return nil, fmt.Errorf("spot light: %w", core.ErrZeroVector)
	}
	return &SpotLight{
		PointLight: *NewPointLight(intensity, position),
		direction:  direction.Normalize(),
		narrowBeam: 1,
	}, nil
}

// WithAttenuation sets the constant, linear and quadratic attenuation coefficients
func (sl *SpotLight) WithAttenuation(kC, kL, kQ float64) *SpotLight {
	sl.PointLight.WithAttenuation(kC, kL, kQ)
	return sl
}

// WithNarrowBeam sets the exponent applied to the cosine falloff. Larger values give a tighter beam.
func (sl *SpotLight) WithNarrowBeam(exponent float64) *SpotLight {
	sl.narrowBeam = exponent
	return sl
}

func (sl *SpotLight) Type() LightType {
	return LightTypeSpot
}

// Direction returns the unit direction of the spot
func (sl *SpotLight) Direction() core.Vector {
	return sl.direction
}

// IntensityAt returns the point light intensity scaled by max(0, dir·l)^narrowBeam
func (sl *SpotLight) IntensityAt(p core.Point) core.Color {
	cos := core.AlignZero(sl.direction.Dot(sl.DirectionAt(p)))
	if cos <= 0 {
		return core.Black
	}
	if sl.narrowBeam != 1 {
		cos = math.Pow(cos, sl.narrowBeam)
	}
	return sl.PointLight.IntensityAt(p).Scale(cos)
}

package lights

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// PointLight radiates from a position with distance attenuation 1/(kC + kL*d + kQ*d^2)
type PointLight struct {
	intensity core.Color
	position  core.Point
	kC        float64
	kL        float64
	kQ        float64
}

// NewPointLight creates a point light with no distance attenuation (kC=1, kL=0, kQ=0)
func NewPointLight(intensity core.Color, position core.Point) *PointLight {
	return &PointLight{
		intensity: intensity,
		position:  position,
		kC:        1,
	}
}

// WithAttenuation sets the constant, linear and quadratic attenuation coefficients
func (pl *PointLight) WithAttenuation(kC, kL, kQ float64) *PointLight {
	pl.kC, pl.kL, pl.kQ = kC, kL, kQ
	return pl
}

func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Position returns the light position
func (pl *PointLight) Position() core.Point {
	return pl.position
}

// IntensityAt returns the attenuated intensity at p
func (pl *PointLight) IntensityAt(p core.Point) core.Color {
	d2 := pl.position.DistanceSquared(p)
	d := pl.position.Distance(p)
	return pl.intensity.Scale(1 / (pl.kC + pl.kL*d + pl.kQ*d2))
}

// DirectionAt returns the unit direction from the light position to p
func (pl *PointLight) DirectionAt(p core.Point) core.Vector {
	return p.Subtract(pl.position).Normalize()
}

// DistanceTo returns the distance from the light position to p
func (pl *PointLight) DistanceTo(p core.Point) float64 {
	return pl.position.Distance(p)
}

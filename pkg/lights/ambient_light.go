package lights

import "github.com/df07/go-recursive-raytracer/pkg/core"

// AmbientLight is a constant intensity independent of position
type AmbientLight struct {
	intensity core.Color
}

// AmbientNone is the absence of ambient light
var AmbientNone = AmbientLight{}

// NewAmbientLight creates an ambient light of intensity ia attenuated by the scalar ka
func NewAmbientLight(ia core.Color, ka float64) AmbientLight {
	return AmbientLight{intensity: ia.Scale(ka)}
}

// NewAmbientLightFactor creates an ambient light of intensity ia attenuated per channel by ka
func NewAmbientLightFactor(ia core.Color, ka core.Factor) AmbientLight {
	return AmbientLight{intensity: ia.ScaleBy(ka)}
}

// Type returns LightTypeAmbient
func (a AmbientLight) Type() LightType {
	return LightTypeAmbient
}

// Intensity returns the ambient intensity
func (a AmbientLight) Intensity() core.Color {
	return a.intensity
}

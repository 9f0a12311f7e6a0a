package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// DirectionalLight is a light at infinity shining along a constant direction
type DirectionalLight struct {
	intensity core.Color
	direction core.Vector
}

// NewDirectionalLight creates a directional light. A zero direction is rejected.
func NewDirectionalLight(intensity core.Color, direction core.Vector) (*DirectionalLight, error) {
	if direction.IsZero() {
		return nil, fmt.Errorf("directional light: %w", core.ErrZeroVector)
	}
	return &DirectionalLight{intensity: intensity, direction: direction.Normalize()}, nil
}

func (d *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// IntensityAt returns the same intensity everywhere
func (d *DirectionalLight) IntensityAt(core.Point) core.Color {
	return d.intensity
}

// DirectionAt returns the light direction, which is the same everywhere
func (d *DirectionalLight) DirectionAt(core.Point) core.Vector {
	return d.direction
}

// DistanceTo returns +Inf
func (d *DirectionalLight) DistanceTo(core.Point) float64 {
	return math.Inf(1)
}

package lights

import "github.com/df07/go-recursive-raytracer/pkg/core"

// LightType names a light variant for scene descriptions and logging
type LightType string

const (
	LightTypeAmbient     LightType = "ambient"
	LightTypeDirectional LightType = "directional"
	LightTypePoint       LightType = "point"
	LightTypeSpot        LightType = "spot"
)

// LightSource is a non-ambient light that illuminates individual points
type LightSource interface {
	Type() LightType

	// IntensityAt returns the light intensity arriving at p
	IntensityAt(p core.Point) core.Color

	// DirectionAt returns the unit direction FROM the light TO p
	DirectionAt(p core.Point) core.Vector

	// DistanceTo returns the distance from the light to p, +Inf for lights at infinity
	DistanceTo(p core.Point) float64
}

package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Intersectable is anything a ray can be tested against
type Intersectable interface {
	// FindGeoIntersections returns the hits strictly in front of the ray head, or nil
	FindGeoIntersections(ray core.Ray) []GeoPoint
}

// Geometry is a single surface with a normal, a material and an emission color
type Geometry interface {
	Intersectable
	GetNormal(point core.Point) core.Vector
	GetMaterial() core.Material
	GetEmission() core.Color
}

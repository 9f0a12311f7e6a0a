package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Surface
	Center core.Point
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Point, radius float64, surface Surface) (*Sphere, error) {
	if core.AlignZero(radius) <= 0 {
		return nil, fmt.Errorf("%w: sphere radius %g must be positive", ErrInvalidShape, radius)
	}
	return &Sphere{
		Surface: surface,
		Center:  center,
		Radius:  radius,
	}, nil
}

// GetNormal returns the outward unit normal at a point on the sphere
func (s *Sphere) GetNormal(point core.Point) core.Vector {
	return point.Subtract(s.Center).Normalize()
}

// FindGeoIntersections returns up to two hits ordered by distance
func (s *Sphere) FindGeoIntersections(ray core.Ray) []GeoPoint {
	p0 := ray.Head()
	v := ray.Direction()

	// Ray starts at the center: exactly one hit at distance radius
	if p0.Equals(s.Center) {
		return []GeoPoint{{Geometry: s, Point: ray.PointAt(s.Radius)}}
	}

	u := s.Center.Subtract(p0)
	tm := core.AlignZero(v.Dot(u))
	d2 := core.AlignZero(u.LengthSquared() - tm*tm)
	d := math.Sqrt(math.Max(d2, 0))

	// Tangent rays do not count as hits
	if core.AlignZero(d-s.Radius) >= 0 {
		return nil
	}

	th := core.AlignZero(math.Sqrt(s.Radius*s.Radius - d*d))
	return hitsAt(s, ray, tm-th, tm+th)
}

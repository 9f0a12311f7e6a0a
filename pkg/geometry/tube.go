package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Tube is an infinite circular cylinder around an axis ray
type Tube struct {
	Surface
	Radius float64
	Axis   core.Ray
}

// NewTube creates a new tube
func NewTube(radius float64, axis core.Ray, surface Surface) (*Tube, error) {
	if core.AlignZero(radius) <= 0 {
		return nil, fmt.Errorf("%w: tube radius %g must be positive", ErrInvalidShape, radius)
	}
	return &Tube{Surface: surface, Radius: radius, Axis: axis}, nil
}

// axisParameter returns the signed distance along the axis of the projection of point
func (tb *Tube) axisParameter(point core.Point) float64 {
	return core.AlignZero(point.Subtract(tb.Axis.Head()).Dot(tb.Axis.Direction()))
}

// GetNormal returns the radial unit vector from the nearest axis point to point
func (tb *Tube) GetNormal(point core.Point) core.Vector {
	return tb.radialNormal(point, tb.axisParameter(point))
}

// radialNormal falls back to the direction from the axis head when point lies on the axis
func (tb *Tube) radialNormal(point core.Point, t float64) core.Vector {
	head := tb.Axis.Head()
	if t != 0 {
		if radial := point.Subtract(tb.Axis.PointAt(t)); !radial.IsZero() {
			return radial.Normalize()
		}
	}
	return point.Subtract(head).Normalize()
}

// roots solves |(P0 + tV - A) x axis|^2 = r^2 for the ray and returns the strictly positive
// roots in ascending order. Rays parallel to the axis and tangent rays have no roots.
func (tb *Tube) roots(ray core.Ray) []float64 {
	va := tb.Axis.Direction()
	v := ray.Direction()

	// Component of the direction orthogonal to the axis
	vOrth := v.Subtract(va.Scale(v.Dot(va)))
	a := core.AlignZero(vOrth.LengthSquared())
	if a == 0 {
		return nil
	}

	// Component of (P0 - A) orthogonal to the axis
	dp := ray.Head().Subtract(tb.Axis.Head())
	dpOrth := dp.Subtract(va.Scale(dp.Dot(va)))

	b := 2 * vOrth.Dot(dpOrth)
	c := dpOrth.LengthSquared() - tb.Radius*tb.Radius
	discriminant := core.AlignZero(b*b - 4*a*c)
	if discriminant <= 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	var ts []float64
	for _, t := range []float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)} {
		if core.AlignZero(t) > 0 {
			ts = append(ts, t)
		}
	}
	return ts
}

// FindGeoIntersections returns up to two hits with the infinite tube
func (tb *Tube) FindGeoIntersections(ray core.Ray) []GeoPoint {
	return hitsAt(tb, ray, tb.roots(ray)...)
}

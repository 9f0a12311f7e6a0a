package geometry

import (
	"fmt"
	"sort"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Cylinder is a closed finite cylinder: the tube between the axis head and height along
// the axis, plus the two cap discs
type Cylinder struct {
	Tube
	Height float64
}

// NewCylinder creates a new cylinder
func NewCylinder(radius float64, axis core.Ray, height float64, surface Surface) (*Cylinder, error) {
	if core.AlignZero(height) <= 0 {
		return nil, fmt.Errorf("%w: cylinder height %g must be positive", ErrInvalidShape, height)
	}
	tube, err := NewTube(radius, axis, surface)
	if err != nil {
		return nil, err
	}
	return &Cylinder{Tube: *tube, Height: height}, nil
}

// GetNormal returns the cap normal for points at or beyond a cap and the radial normal otherwise
func (c *Cylinder) GetNormal(point core.Point) core.Vector {
	t := c.axisParameter(point)
	if t <= 0 {
		return c.Axis.Direction().Negate()
	}
	if core.AlignZero(t-c.Height) >= 0 {
		return c.Axis.Direction()
	}
	return c.radialNormal(point, t)
}

// FindGeoIntersections returns the hits with the side and the caps ordered by distance
func (c *Cylinder) FindGeoIntersections(ray core.Ray) []GeoPoint {
	var ts []float64

	// Side: tube roots strictly between the caps
	for _, t := range c.roots(ray) {
		h := c.axisParameter(ray.PointAt(t))
		if h > 0 && core.AlignZero(h-c.Height) < 0 {
			ts = append(ts, t)
		}
	}

	// Caps: plane hits strictly inside the radius
	va := c.Axis.Direction()
	nv := core.AlignZero(va.Dot(ray.Direction()))
	if nv != 0 {
		for _, center := range []core.Point{c.Axis.Head(), c.Axis.PointAt(c.Height)} {
			t := core.AlignZero(va.Dot(center.Subtract(ray.Head())) / nv)
			if t <= 0 {
				continue
			}
			if core.AlignZero(ray.PointAt(t).DistanceSquared(center)-c.Radius*c.Radius) < 0 {
				ts = append(ts, t)
			}
		}
	}

	if len(ts) == 0 {
		return nil
	}
	sort.Float64s(ts)
	return hitsAt(c, ray, ts...)
}

package geometry

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Surface
	Q      core.Point  // A point on the plane
	Normal core.Vector // Unit normal
}

// NewPlane creates a plane from a reference point and a normal
func NewPlane(q core.Point, normal core.Vector, surface Surface) (*Plane, error) {
	if normal.IsZero() {
		return nil, fmt.Errorf("%w: plane normal: %w", ErrInvalidShape, core.ErrZeroVector)
	}
	return &Plane{
		Surface: surface,
		Q:       q,
		Normal:  normal.Normalize(),
	}, nil
}

// NewPlaneFromPoints creates the plane through three points. The normal follows (p2-p1)x(p3-p1).
func NewPlaneFromPoints(p1, p2, p3 core.Point, surface Surface) (*Plane, error) {
	v1 := p2.Subtract(p1)
	v2 := p3.Subtract(p1)
	if v1.IsZero() || v2.IsZero() {
		return nil, fmt.Errorf("%w: plane points must be distinct", ErrInvalidShape)
	}
	normal := v1.Cross(v2)
	if normal.IsZero() {
		return nil, fmt.Errorf("%w: plane points must not be collinear", ErrInvalidShape)
	}
	return NewPlane(p1, normal, surface)
}

// GetNormal returns the plane normal, which is the same everywhere
func (p *Plane) GetNormal(core.Point) core.Vector {
	return p.Normal
}

// FindGeoIntersections returns the single hit of a ray crossing the plane
func (p *Plane) FindGeoIntersections(ray core.Ray) []GeoPoint {
	return p.intersect(ray, p)
}

// intersect reports hits as belonging to owner, so polygons can reuse the plane test
func (p *Plane) intersect(ray core.Ray, owner Geometry) []GeoPoint {
	// Ray starting at the reference point
	qp0 := p.Q.Subtract(ray.Head())
	if qp0.IsZero() {
		return nil
	}

	// Parallel ray
	nv := core.AlignZero(p.Normal.Dot(ray.Direction()))
	if nv == 0 {
		return nil
	}

	t := core.AlignZero(p.Normal.Dot(qp0) / nv)
	return hitsAt(owner, ray, t)
}

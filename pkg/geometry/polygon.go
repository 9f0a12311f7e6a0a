package geometry

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Polygon is a convex planar polygon. Vertices are ordered along the edge path.
type Polygon struct {
	Surface
	vertices []core.Point
	plane    *Plane
}

// NewPolygon creates a convex polygon from its vertices in edge order.
// Fewer than three vertices, co-located or collinear consecutive vertices, vertices off
// the plane of the first three, and concave or mis-ordered vertex lists are rejected.
func NewPolygon(surface Surface, vertices ...core.Point) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("%w: a polygon needs at least 3 vertices, got %d", ErrInvalidPolygon, len(vertices))
	}

	plane, err := NewPlaneFromPoints(vertices[0], vertices[1], vertices[2], Surface{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPolygon, err)
	}

	p := &Polygon{
		Surface:  surface,
		vertices: append([]core.Point(nil), vertices...),
		plane:    plane,
	}
	if len(vertices) == 3 {
		return p, nil
	}

	n := plane.Normal
	last := len(vertices) - 1
	edge1 := vertices[last].Subtract(vertices[last-1])
	edge2 := vertices[0].Subtract(vertices[last])
	if edge1.IsZero() || edge2.IsZero() {
		return nil, fmt.Errorf("%w: consecutive vertices coincide", ErrInvalidPolygon)
	}
	turn := edge1.Cross(edge2)
	if turn.IsZero() {
		return nil, fmt.Errorf("%w: three consecutive vertices are collinear", ErrInvalidPolygon)
	}

	// The winding is fixed by the turn between the last and first edges; every other
	// turn must agree with it for the polygon to be convex
	positive := turn.Dot(n) > 0
	for i := 1; i < len(vertices); i++ {
		if !core.IsZero(vertices[i].Subtract(vertices[0]).Dot(n)) {
			return nil, fmt.Errorf("%w: all vertices must lie in the same plane", ErrInvalidPolygon)
		}
		edge1 = edge2
		edge2 = vertices[i].Subtract(vertices[i-1])
		if edge2.IsZero() {
			return nil, fmt.Errorf("%w: consecutive vertices coincide", ErrInvalidPolygon)
		}
		turn = edge1.Cross(edge2)
		if turn.IsZero() {
			return nil, fmt.Errorf("%w: three consecutive vertices are collinear", ErrInvalidPolygon)
		}
		if positive != (turn.Dot(n) > 0) {
			return nil, fmt.Errorf("%w: vertices must be ordered and the polygon convex", ErrInvalidPolygon)
		}
	}
	return p, nil
}

// MustPolygon is like NewPolygon but panics on invalid input
func MustPolygon(surface Surface, vertices ...core.Point) *Polygon {
	p, err := NewPolygon(surface, vertices...)
	if err != nil {
		panic(err)
	}
	return p
}

// Vertices returns a copy of the polygon vertices
func (p *Polygon) Vertices() []core.Point {
	return append([]core.Point(nil), p.vertices...)
}

// GetNormal returns the normal of the polygon plane
func (p *Polygon) GetNormal(core.Point) core.Vector {
	return p.plane.Normal
}

// FindGeoIntersections returns the plane hit when it lies strictly inside the polygon.
// Hits on an edge or a vertex are not reported.
func (p *Polygon) FindGeoIntersections(ray core.Ray) []GeoPoint {
	hits := p.plane.intersect(ray, p)
	if hits == nil {
		return nil
	}
	point := hits[0].Point
	n := p.plane.Normal

	var side float64
	for i, vi := range p.vertices {
		vj := p.vertices[(i+1)%len(p.vertices)]
		outward := vj.Subtract(vi).Cross(n).Normalize()
		s := core.AlignZero(point.Subtract(vi).Dot(outward))
		if s == 0 {
			return nil
		}
		if i == 0 {
			side = s
		} else if s*side < 0 {
			return nil
		}
	}
	return hits
}

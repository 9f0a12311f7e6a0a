package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Triangle is a three-vertex polygon with its own inside test
type Triangle struct {
	Polygon
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Point, surface Surface) (*Triangle, error) {
	p, err := NewPolygon(surface, v0, v1, v2)
	if err != nil {
		return nil, err
	}
	return &Triangle{Polygon: *p}, nil
}

// MustTriangle is like NewTriangle but panics on degenerate vertices
func MustTriangle(v0, v1, v2 core.Point, surface Surface) *Triangle {
	t, err := NewTriangle(v0, v1, v2, surface)
	if err != nil {
		panic(err)
	}
	return t
}

// FindGeoIntersections intersects the triangle plane, then keeps the hit only when the ray
// passes on the same side of all three planes spanned by the ray head and an edge
func (t *Triangle) FindGeoIntersections(ray core.Ray) []GeoPoint {
	hits := t.plane.intersect(ray, t)
	if hits == nil {
		return nil
	}

	p0 := ray.Head()
	dir := ray.Direction()
	var signs [3]float64
	for i := range 3 {
		vi := t.vertices[i].Subtract(p0)
		vj := t.vertices[(i+1)%3].Subtract(p0)
		signs[i] = core.AlignZero(dir.Dot(vi.Cross(vj).Normalize()))
		// On an edge, a vertex or an edge extension
		if signs[i] == 0 {
			return nil
		}
	}

	if (signs[0] > 0 && signs[1] > 0 && signs[2] > 0) || (signs[0] < 0 && signs[1] < 0 && signs[2] < 0) {
		return hits
	}
	return nil
}

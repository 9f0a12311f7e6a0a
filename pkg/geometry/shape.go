package geometry

import (
	"errors"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

var (
	// ErrInvalidShape is returned for degenerate shape parameters
	ErrInvalidShape = errors.New("invalid shape")
	// ErrInvalidPolygon is returned for polygons that are not planar, convex and consistently ordered
	ErrInvalidPolygon = errors.New("invalid polygon")
)

// GeoPoint pairs an intersection point with the geometry it lies on
type GeoPoint struct {
	Geometry Geometry
	Point    core.Point
}

// Surface holds the appearance shared by every shape
type Surface struct {
	Material core.Material
	Emission core.Color
}

// GetMaterial returns the surface material
func (s Surface) GetMaterial() core.Material {
	return s.Material
}

// GetEmission returns the self-emitted color of the surface
func (s Surface) GetEmission() core.Color {
	return s.Emission
}

// FindIntersections returns only the points of the hits of ray against i
func FindIntersections(i Intersectable, ray core.Ray) []core.Point {
	hits := i.FindGeoIntersections(ray)
	if hits == nil {
		return nil
	}
	points := make([]core.Point, len(hits))
	for idx, gp := range hits {
		points[idx] = gp.Point
	}
	return points
}

// FindGeoIntersectionsWithin returns the hits of ray against i that are closer than maxDistance to the ray head
func FindGeoIntersectionsWithin(i Intersectable, ray core.Ray, maxDistance float64) []GeoPoint {
	hits := i.FindGeoIntersections(ray)
	if math.IsInf(maxDistance, 1) {
		return hits
	}
	var within []GeoPoint
	for _, gp := range hits {
		if core.AlignZero(gp.Point.Distance(ray.Head())-maxDistance) < 0 {
			within = append(within, gp)
		}
	}
	return within
}

// FindClosestGeoPoint returns the hit nearest to the ray head
func FindClosestGeoPoint(ray core.Ray, hits []GeoPoint) (GeoPoint, bool) {
	if len(hits) == 0 {
		return GeoPoint{}, false
	}
	closest := hits[0]
	closestDistance := math.Inf(1)
	for _, gp := range hits {
		if d := ray.Head().DistanceSquared(gp.Point); d < closestDistance {
			closestDistance = d
			closest = gp
		}
	}
	return closest, true
}

// hitsAt builds the ordered hit list for the given ray parameters, skipping any t that is not strictly positive
func hitsAt(g Geometry, ray core.Ray, ts ...float64) []GeoPoint {
	var hits []GeoPoint
	for _, t := range ts {
		if core.AlignZero(t) > 0 {
			hits = append(hits, GeoPoint{Geometry: g, Point: ray.PointAt(t)})
		}
	}
	return hits
}

package geometry

import "github.com/df07/go-recursive-raytracer/pkg/core"

// Geometries aggregates intersectable members into a single intersectable.
// Members may themselves be aggregates.
type Geometries struct {
	members []Intersectable
}

// NewGeometries creates an aggregate holding the given members in order
func NewGeometries(members ...Intersectable) *Geometries {
	g := &Geometries{}
	g.Add(members...)
	return g
}

// Add appends members to the aggregate
func (g *Geometries) Add(members ...Intersectable) {
	g.members = append(g.members, members...)
}

// Len returns the number of direct members
func (g *Geometries) Len() int {
	return len(g.members)
}

// Members returns the direct members in insertion order
func (g *Geometries) Members() []Intersectable {
	return g.members
}

// FindGeoIntersections concatenates the hits of every member in insertion order.
// The result is nil only when no member is hit.
func (g *Geometries) FindGeoIntersections(ray core.Ray) []GeoPoint {
	var hits []GeoPoint
	for _, member := range g.members {
		hits = append(hits, member.FindGeoIntersections(ray)...)
	}
	return hits
}

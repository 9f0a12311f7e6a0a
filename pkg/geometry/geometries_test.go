package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestGeometries_FindGeoIntersections(t *testing.T) {
	sphere, _ := NewSphere(core.NewPoint(0, 0, -5), 1, Surface{})
	plane, _ := NewPlane(core.NewPoint(0, 0, -10), core.MustVector(0, 0, 1), Surface{})
	triangle := MustTriangle(core.NewPoint(-1, -1, -3), core.NewPoint(1, -1, -3), core.NewPoint(0, 1, -3), Surface{})

	down := core.MustRay(core.Origin, core.MustVector(0, 0, -1))
	sideways := core.MustRay(core.Origin, core.MustVector(1, 0, 0))
	offset := core.MustRay(core.NewPoint(5, 0, 0), core.MustVector(0, 0, -1))

	tests := []struct {
		name   string
		geos   *Geometries
		ray    core.Ray
		owners []Geometry // Geometry of each hit, in member order
	}{
		{"empty aggregate", NewGeometries(), down, nil},
		{"no member hit", NewGeometries(sphere, plane, triangle), sideways, nil},
		{"one member hit", NewGeometries(sphere, plane, triangle), offset, []Geometry{plane}},
		{"all members hit", NewGeometries(sphere, plane, triangle), down, []Geometry{sphere, sphere, plane, triangle}},
		{"nested aggregate", NewGeometries(NewGeometries(sphere), NewGeometries(plane, NewGeometries(triangle))), down,
			[]Geometry{sphere, sphere, plane, triangle}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := tt.geos.FindGeoIntersections(tt.ray)
			if len(tt.owners) == 0 {
				if hits != nil {
					t.Errorf("Expected nil for no hits, got %v", hits)
				}
				return
			}

			// The aggregate is the concatenation of its members' own results
			var expected []GeoPoint
			for _, member := range tt.geos.Members() {
				expected = append(expected, member.FindGeoIntersections(tt.ray)...)
			}
			if len(hits) != len(expected) || len(hits) != len(tt.owners) {
				t.Fatalf("Expected %d hits, got %d (members found %d)", len(tt.owners), len(hits), len(expected))
			}
			for i, hit := range hits {
				if hit.Geometry != tt.owners[i] {
					t.Errorf("hit %d: expected geometry %v, got %v", i, tt.owners[i], hit.Geometry)
				}
				if hit.Geometry != expected[i].Geometry || !hit.Point.Equals(expected[i].Point) {
					t.Errorf("hit %d: expected %v, got %v", i, expected[i], hit)
				}
			}
		})
	}
}

func TestGeometries_Add(t *testing.T) {
	g := NewGeometries()
	sphere, _ := NewSphere(core.Origin, 1, Surface{})
	g.Add(sphere, sphere)
	if g.Len() != 2 {
		t.Errorf("Expected 2 members, got %d", g.Len())
	}
}

func TestFindGeoIntersectionsWithin(t *testing.T) {
	near, _ := NewSphere(core.NewPoint(0, 0, -5), 1, Surface{})
	far, _ := NewSphere(core.NewPoint(0, 0, -20), 1, Surface{})
	geos := NewGeometries(near, far)
	ray := core.MustRay(core.Origin, core.MustVector(0, 0, -1))

	tests := []struct {
		name     string
		max      float64
		expected int
	}{
		{"unbounded", math.Inf(1), 4},
		{"only the near sphere", 10, 2},
		{"boundary excluded", 4, 0},
		{"between near hits", 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindGeoIntersectionsWithin(geos, ray, tt.max); len(got) != tt.expected {
				t.Errorf("Expected %d hits within %g, got %d", tt.expected, tt.max, len(got))
			}
		})
	}
}

func TestFindClosestGeoPoint(t *testing.T) {
	near, _ := NewSphere(core.NewPoint(0, 0, -5), 1, Surface{})
	far, _ := NewSphere(core.NewPoint(0, 0, -20), 1, Surface{})
	ray := core.MustRay(core.Origin, core.MustVector(0, 0, -1))

	hits := NewGeometries(far, near).FindGeoIntersections(ray)
	closest, ok := FindClosestGeoPoint(ray, hits)
	if !ok {
		t.Fatal("Expected a closest point")
	}
	if !closest.Point.Equals(core.NewPoint(0, 0, -4)) {
		t.Errorf("Expected (0,0,-4), got %v", closest.Point)
	}
	if closest.Geometry != Geometry(near) {
		t.Errorf("Expected the near sphere, got %v", closest.Geometry)
	}

	if _, ok := FindClosestGeoPoint(ray, nil); ok {
		t.Error("Expected no closest point for an empty list")
	}
}

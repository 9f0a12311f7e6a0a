package geometry

import (
	"errors"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestNewPolygon(t *testing.T) {
	tests := []struct {
		name     string
		vertices []core.Point
		valid    bool
	}{
		{
			name:     "convex quad",
			vertices: []core.Point{core.NewPoint(0, 0, 1), core.NewPoint(1, 0, 0), core.NewPoint(0, 1, 0), core.NewPoint(-1, 1, 1)},
			valid:    true,
		},
		{
			name:     "triangle",
			vertices: []core.Point{core.NewPoint(0, 0, 1), core.NewPoint(1, 0, 0), core.NewPoint(0, 1, 0)},
			valid:    true,
		},
		{
			name:     "too few vertices",
			vertices: []core.Point{core.NewPoint(0, 0, 1), core.NewPoint(1, 0, 0)},
		},
		{
			name:     "wrong vertex order",
			vertices: []core.Point{core.NewPoint(0, 0, 1), core.NewPoint(0, 1, 0), core.NewPoint(1, 0, 0), core.NewPoint(-1, 1, 1)},
		},
		{
			name:     "vertex off the plane",
			vertices: []core.Point{core.NewPoint(0, 0, 1), core.NewPoint(1, 0, 0), core.NewPoint(0, 1, 0), core.NewPoint(0, 2, 2)},
		},
		{
			name:     "concave",
			vertices: []core.Point{core.NewPoint(0, 0, 0), core.NewPoint(2, 0, 0), core.NewPoint(1, 0.5, 0), core.NewPoint(1, 2, 0)},
		},
		{
			name:     "vertex on a side",
			vertices: []core.Point{core.NewPoint(0, 0, 1), core.NewPoint(1, 0, 0), core.NewPoint(0, 1, 0), core.NewPoint(0, 0.5, 0.5)},
		},
		{
			name:     "last vertex equals first",
			vertices: []core.Point{core.NewPoint(0, 0, 1), core.NewPoint(1, 0, 0), core.NewPoint(0, 1, 0), core.NewPoint(0, 0, 1)},
		},
		{
			name:     "co-located vertices",
			vertices: []core.Point{core.NewPoint(0, 0, 1), core.NewPoint(1, 0, 0), core.NewPoint(0, 1, 0), core.NewPoint(0, 1, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPolygon(Surface{}, tt.vertices...)
			if tt.valid {
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				if len(p.Vertices()) != len(tt.vertices) {
					t.Errorf("Expected %d vertices, got %d", len(tt.vertices), len(p.Vertices()))
				}
				return
			}
			if !errors.Is(err, ErrInvalidPolygon) {
				t.Errorf("Expected ErrInvalidPolygon, got %v", err)
			}
		})
	}
}

func TestPolygon_GetNormal(t *testing.T) {
	p := MustPolygon(Surface{}, core.NewPoint(0, 0, 0), core.NewPoint(1, 0, 0), core.NewPoint(1, 1, 0), core.NewPoint(0, 1, 0))
	if !p.GetNormal(core.NewPoint(0.5, 0.5, 0)).Equals(core.Vector{Z: 1}) {
		t.Errorf("Expected normal (0,0,1), got %v", p.GetNormal(core.Origin))
	}
}

func TestPolygon_FindIntersections(t *testing.T) {
	square := MustPolygon(Surface{}, core.NewPoint(0, 0, 0), core.NewPoint(1, 0, 0), core.NewPoint(1, 1, 0), core.NewPoint(0, 1, 0))
	down := core.MustVector(0, 0, -1)

	tests := []struct {
		name     string
		head     core.Point
		expected []core.Point
	}{
		{"inside", core.NewPoint(0.5, 0.5, 1), []core.Point{core.NewPoint(0.5, 0.5, 0)}},
		{"outside", core.NewPoint(2, 0.5, 1), nil},
		{"on an edge", core.NewPoint(1, 0.5, 1), nil},
		{"on a vertex", core.NewPoint(1, 1, 1), nil},
		{"on an edge extension", core.NewPoint(2, 0, 1), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindIntersections(square, core.MustRay(tt.head, down))
			if !pointsEqual(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestNewPlaneFromPoints(t *testing.T) {
	plane, err := NewPlaneFromPoints(core.NewPoint(0, 0, 1), core.NewPoint(1, 0, 0), core.NewPoint(0, 1, 0), Surface{})
	if err != nil {
		t.Fatalf("NewPlaneFromPoints: %v", err)
	}
	s := 1 / math.Sqrt(3)
	if !plane.GetNormal(core.Origin).Equals(core.Vector{X: s, Y: s, Z: s}) {
		t.Errorf("Expected normal %v, got %v", core.Vector{X: s, Y: s, Z: s}, plane.GetNormal(core.Origin))
	}

	tests := []struct {
		name       string
		p1, p2, p3 core.Point
	}{
		{"first two coincide", core.NewPoint(1, 1, 1), core.NewPoint(1, 1, 1), core.NewPoint(0, 1, 0)},
		{"first and last coincide", core.NewPoint(1, 1, 1), core.NewPoint(0, 1, 0), core.NewPoint(1, 1, 1)},
		{"collinear", core.NewPoint(0, 0, 1), core.NewPoint(0, 0, 2), core.NewPoint(0, 0, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPlaneFromPoints(tt.p1, tt.p2, tt.p3, Surface{}); !errors.Is(err, ErrInvalidShape) {
				t.Errorf("Expected ErrInvalidShape, got %v", err)
			}
		})
	}
}

func TestNewPlane_RejectsZeroNormal(t *testing.T) {
	if _, err := NewPlane(core.Origin, core.Vector{}, Surface{}); !errors.Is(err, core.ErrZeroVector) {
		t.Errorf("Expected ErrZeroVector, got %v", err)
	}
}

func TestPlane_FindIntersections(t *testing.T) {
	plane, err := NewPlane(core.NewPoint(0, 0, 1), core.MustVector(0, 0, 1), Surface{})
	if err != nil {
		t.Fatalf("NewPlane: %v", err)
	}

	tests := []struct {
		name     string
		head     core.Point
		dir      core.Vector
		expected []core.Point
	}{
		{"oblique crossing", core.Origin, core.MustVector(1, 1, 1), []core.Point{core.NewPoint(1, 1, 1)}},
		{"oblique away", core.NewPoint(0, 0, 2), core.MustVector(1, 1, 1), nil},
		{"parallel outside", core.Origin, core.MustVector(1, 0, 0), nil},
		{"parallel inside", core.NewPoint(1, 0, 1), core.MustVector(1, 0, 0), nil},
		{"orthogonal before", core.NewPoint(1, 1, 0), core.MustVector(0, 0, 1), []core.Point{core.NewPoint(1, 1, 1)}},
		{"orthogonal in plane", core.NewPoint(1, 1, 1), core.MustVector(0, 0, 1), nil},
		{"orthogonal after", core.NewPoint(1, 1, 2), core.MustVector(0, 0, 1), nil},
		{"starts at reference point", core.NewPoint(0, 0, 1), core.MustVector(1, 1, 1), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindIntersections(plane, core.MustRay(tt.head, tt.dir))
			if !pointsEqual(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

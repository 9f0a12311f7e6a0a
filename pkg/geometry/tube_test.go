package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func zAxis() core.Ray {
	return core.MustRay(core.Origin, core.MustVector(0, 0, 1))
}

func TestNewTube_RejectsNonPositiveRadius(t *testing.T) {
	if _, err := NewTube(0, zAxis(), Surface{}); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("Expected ErrInvalidShape, got %v", err)
	}
}

func TestTube_GetNormal(t *testing.T) {
	tube, err := NewTube(1, zAxis(), Surface{})
	if err != nil {
		t.Fatalf("NewTube: %v", err)
	}

	tests := []struct {
		name     string
		point    core.Point
		expected core.Vector
	}{
		{"along the axis", core.NewPoint(1, 0, 5), core.Vector{X: 1}},
		{"level with the axis head", core.NewPoint(0, 1, 0), core.Vector{Y: 1}},
		{"behind the axis head", core.NewPoint(-1, 0, -2), core.Vector{X: -1}},
		{"on the axis", core.NewPoint(0, 0, 3), core.Vector{Z: 1}},
		{"on the axis behind the head", core.NewPoint(0, 0, -2), core.Vector{Z: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tube.GetNormal(tt.point)
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
			if math.Abs(got.Length()-1) > 1e-9 {
				t.Errorf("Expected a unit normal, got length %g", got.Length())
			}
		})
	}
}

func TestTube_FindIntersections(t *testing.T) {
	tube, err := NewTube(1, zAxis(), Surface{})
	if err != nil {
		t.Fatalf("NewTube: %v", err)
	}
	x := core.MustVector(1, 0, 0)

	tests := []struct {
		name     string
		head     core.Point
		dir      core.Vector
		expected []core.Point
	}{
		{"crosses twice", core.NewPoint(-2, 0, 2), x, []core.Point{core.NewPoint(-1, 0, 2), core.NewPoint(1, 0, 2)}},
		{"crosses behind axis head", core.NewPoint(-2, 0, -3), x, []core.Point{core.NewPoint(-1, 0, -3), core.NewPoint(1, 0, -3)}},
		{"starts inside", core.NewPoint(0, 0, 5), x, []core.Point{core.NewPoint(1, 0, 5)}},
		{"starts after", core.NewPoint(2, 0, 0), x, nil},
		{"starts on surface outward", core.NewPoint(1, 0, 0), x, nil},
		{"starts on surface inward", core.NewPoint(1, 0, 0), x.Negate(), []core.Point{core.NewPoint(-1, 0, 0)}},
		{"misses", core.NewPoint(-2, 2, 0), x, nil},
		{"tangent", core.NewPoint(-2, 1, 0), x, nil},
		{"parallel to axis", core.NewPoint(0.5, 0, 0), core.MustVector(0, 0, 1), nil},
		{"on the axis", core.Origin, core.MustVector(0, 0, -1), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindIntersections(tube, core.MustRay(tt.head, tt.dir))
			if !pointsEqual(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

package core

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Point represents a location in 3D space
type Point r3.Vector

// Vector represents a direction or displacement in 3D space.
// Vectors built with NewVector are never zero.
type Vector r3.Vector

// Origin is the point (0, 0, 0)
var Origin = Point{}

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// NewVector creates a new Vector, rejecting the zero vector
func NewVector(x, y, z float64) (Vector, error) {
	v := Vector{X: x, Y: y, Z: z}
	if v.IsZero() {
		return Vector{}, ErrZeroVector
	}
	return v, nil
}

// MustVector is like NewVector but panics on the zero vector.
// Intended for literal scene descriptions and tests.
func MustVector(x, y, z float64) Vector {
	v, err := NewVector(x, y, z)
	if err != nil {
		panic(err)
	}
	return v
}

// Add returns the point moved by the given vector
func (p Point) Add(v Vector) Point {
	return Point(r3.Vector(p).Add(r3.Vector(v)))
}

// Subtract returns the vector from other to p. The result is zero when the points coincide.
func (p Point) Subtract(other Point) Vector {
	return Vector(r3.Vector(p).Sub(r3.Vector(other)))
}

// DistanceSquared returns the squared distance between two points
func (p Point) DistanceSquared(other Point) float64 {
	return r3.Vector(p).Sub(r3.Vector(other)).Norm2()
}

// Distance returns the distance between two points
func (p Point) Distance(other Point) float64 {
	return r3.Vector(p).Distance(r3.Vector(other))
}

// Equals reports whether two points coincide within tolerance
func (p Point) Equals(other Point) bool {
	return IsZero(p.X-other.X) && IsZero(p.Y-other.Y) && IsZero(p.Z-other.Z)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) Vector {
	return Vector(r3.Vector(v).Add(r3.Vector(other)))
}

// Subtract returns the difference of two vectors
func (v Vector) Subtract(other Vector) Vector {
	return Vector(r3.Vector(v).Sub(r3.Vector(other)))
}

// Scale returns the vector multiplied by a scalar
func (v Vector) Scale(scalar float64) Vector {
	return Vector(r3.Vector(v).Mul(scalar))
}

// Negate returns the opposite vector
func (v Vector) Negate() Vector {
	return v.Scale(-1)
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(other Vector) float64 {
	return r3.Vector(v).Dot(r3.Vector(other))
}

// Cross returns the cross product of two vectors
func (v Vector) Cross(other Vector) Vector {
	return Vector(r3.Vector(v).Cross(r3.Vector(other)))
}

// LengthSquared returns the squared magnitude of the vector
func (v Vector) LengthSquared() float64 {
	return r3.Vector(v).Norm2()
}

// Length returns the magnitude of the vector
func (v Vector) Length() float64 {
	return r3.Vector(v).Norm()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vector) Normalize() Vector {
	return Vector(r3.Vector(v).Normalize())
}

// IsZero reports whether every component is within tolerance of zero
func (v Vector) IsZero() bool {
	return IsZero(v.X) && IsZero(v.Y) && IsZero(v.Z)
}

// Equals reports whether two vectors are equal within tolerance
func (v Vector) Equals(other Vector) bool {
	return v.Subtract(other).IsZero()
}

// CreateNormal returns a unit vector orthogonal to v
func (v Vector) CreateNormal() Vector {
	// Cross with the axis least aligned with v
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	var axis Vector
	switch {
	case ax <= ay && ax <= az:
		axis = Vector{X: 1}
	case ay <= az:
		axis = Vector{Y: 1}
	default:
		axis = Vector{Z: 1}
	}
	return v.Cross(axis).Normalize()
}

func (v Vector) String() string {
	return fmt.Sprintf("<%g, %g, %g>", v.X, v.Y, v.Z)
}

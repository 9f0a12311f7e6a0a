package core

import (
	"fmt"
	"math"
)

// DefaultRayBias is the distance a spawned ray's head is moved along the surface normal
const DefaultRayBias = 0.1

// Ray represents a half line with a head point and a unit direction
type Ray struct {
	head      Point
	direction Vector
}

// NewRay creates a ray, normalizing the direction. A zero direction is rejected.
func NewRay(head Point, direction Vector) (Ray, error) {
	if direction.IsZero() {
		return Ray{}, fmt.Errorf("ray direction: %w", ErrZeroVector)
	}
	return Ray{head: head, direction: direction.Normalize()}, nil
}

// MustRay is like NewRay but panics on a zero direction
func MustRay(head Point, direction Vector) Ray {
	r, err := NewRay(head, direction)
	if err != nil {
		panic(err)
	}
	return r
}

// NewBiasedRay creates a ray whose head is moved by bias along the normal, toward the side
// the direction points to. Directions tangent to the surface keep the original head.
func NewBiasedRay(head Point, direction, normal Vector, bias float64) (Ray, error) {
	r, err := NewRay(head, direction)
	if err != nil {
		return Ray{}, err
	}
	nd := AlignZero(r.direction.Dot(normal))
	switch {
	case nd > 0:
		r.head = head.Add(normal.Scale(bias))
	case nd < 0:
		r.head = head.Add(normal.Scale(-bias))
	}
	return r, nil
}

// Head returns the ray origin
func (r Ray) Head() Point {
	return r.head
}

// Direction returns the unit direction of the ray
func (r Ray) Direction() Vector {
	return r.direction
}

// PointAt returns the point at parameter t along the ray
func (r Ray) PointAt(t float64) Point {
	if IsZero(t) {
		return r.head
	}
	return r.head.Add(r.direction.Scale(t))
}

// FindClosestPoint returns the point nearest to the ray head
func (r Ray) FindClosestPoint(points []Point) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	closest := points[0]
	closestDistance := math.Inf(1)
	for _, p := range points {
		if d := r.head.DistanceSquared(p); d < closestDistance {
			closestDistance = d
			closest = p
		}
	}
	return closest, true
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray{head=%v, direction=%v}", r.head, r.direction)
}

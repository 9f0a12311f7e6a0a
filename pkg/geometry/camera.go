package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// ErrInvalidCamera is returned when a camera configuration cannot produce a view
var ErrInvalidCamera = errors.New("invalid camera")

// CameraConfig describes a pinhole camera and its view plane
type CameraConfig struct {
	Location   core.Point  // Eye position
	To         core.Vector // Viewing direction
	Up         core.Vector // Up direction, orthogonal to To
	VpWidth    float64     // View plane width in scene units
	VpHeight   float64     // View plane height in scene units
	VpDistance float64     // Distance from the eye to the view plane
}

// Camera generates rays through the pixels of a view plane. It is immutable once built.
type Camera struct {
	p0       core.Point
	vTo      core.Vector
	vUp      core.Vector
	vRight   core.Vector
	width    float64
	height   float64
	distance float64
}

// NewCamera validates the configuration and builds a camera
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.To.IsZero() || config.Up.IsZero() {
		return nil, fmt.Errorf("%w: direction vectors: %w", ErrInvalidCamera, core.ErrZeroVector)
	}
	vTo := config.To.Normalize()
	vUp := config.Up.Normalize()
	if !core.IsZero(vTo.Dot(vUp)) {
		return nil, fmt.Errorf("%w: to %v and up %v are not orthogonal", ErrInvalidCamera, config.To, config.Up)
	}
	if config.VpWidth <= 0 || config.VpHeight <= 0 {
		return nil, fmt.Errorf("%w: view plane size %gx%g must be positive", ErrInvalidCamera, config.VpWidth, config.VpHeight)
	}
	if config.VpDistance <= 0 {
		return nil, fmt.Errorf("%w: view plane distance %g must be positive", ErrInvalidCamera, config.VpDistance)
	}

	return &Camera{
		p0:       config.Location,
		vTo:      vTo,
		vUp:      vUp,
		vRight:   vTo.Cross(vUp).Normalize(),
		width:    config.VpWidth,
		height:   config.VpHeight,
		distance: config.VpDistance,
	}, nil
}

// ConstructRay returns the ray from the eye through the center of pixel (column, row)
// of an nX by nY pixel grid. Row 0 is the top of the image.
func (c *Camera) ConstructRay(nX, nY, column, row int) core.Ray {
	return c.rayThrough(nX, nY, float64(column), float64(row))
}

// ConstructRays returns a stratified k by k grid of rays inside pixel (column, row), with
// k = floor(sqrt(samples)). A single sample is the ray through the pixel center.
func (c *Camera) ConstructRays(nX, nY, column, row, samples int) []core.Ray {
	k := max(1, int(math.Sqrt(float64(samples))))
	if k == 1 {
		return []core.Ray{c.ConstructRay(nX, nY, column, row)}
	}
	rays := make([]core.Ray, 0, k*k)
	for a := range k {
		for b := range k {
			dx := (float64(b)+0.5)/float64(k) - 0.5
			dy := (float64(a)+0.5)/float64(k) - 0.5
			rays = append(rays, c.rayThrough(nX, nY, float64(column)+dx, float64(row)+dy))
		}
	}
	return rays
}

// rayThrough builds the ray through the fractional pixel position (x, y)
func (c *Camera) rayThrough(nX, nY int, x, y float64) core.Ray {
	pc := c.p0.Add(c.vTo.Scale(c.distance))
	rY := c.height / float64(nY)
	rX := c.width / float64(nX)
	yi := -(y - float64(nY-1)/2) * rY
	xj := (x - float64(nX-1)/2) * rX

	pij := pc
	if !core.IsZero(xj) {
		pij = pij.Add(c.vRight.Scale(xj))
	}
	if !core.IsZero(yi) {
		pij = pij.Add(c.vUp.Scale(yi))
	}
	// The view plane lies at a positive distance, so the direction is never zero
	return core.MustRay(c.p0, pij.Subtract(c.p0))
}

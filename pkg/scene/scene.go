package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
)

// ErrInvalidSampling is returned for non-positive image sizes or sample counts
var ErrInvalidSampling = errors.New("invalid sampling configuration")

// Scene contains all the elements needed for rendering. It is read-only while a render runs.
type Scene struct {
	Name           string
	Background     core.Color
	Ambient        lights.AmbientLight
	Geometries     *geometry.Geometries
	Lights         []lights.LightSource
	CameraConfig   geometry.CameraConfig
	SamplingConfig SamplingConfig
}

// SamplingConfig contains the image size and the number of rays per pixel
type SamplingConfig struct {
	Width           int // Image width in pixels
	Height          int // Image height in pixels
	SamplesPerPixel int // Rays per pixel, laid out as a k x k grid with k = floor(sqrt(n))
}

// DefaultSamplingConfig returns a 500x500 image with one ray per pixel
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           500,
		Height:          500,
		SamplesPerPixel: 1,
	}
}

// Validate checks that the sampling configuration describes a non-empty image
func (c SamplingConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image size %dx%d must be positive", ErrInvalidSampling, c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: samples per pixel %d must be positive", ErrInvalidSampling, c.SamplesPerPixel)
	}
	return nil
}

// MergeSamplingConfig returns base with every positive field of override applied
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	if override.Width > 0 {
		base.Width = override.Width
	}
	if override.Height > 0 {
		base.Height = override.Height
	}
	if override.SamplesPerPixel > 0 {
		base.SamplesPerPixel = override.SamplesPerPixel
	}
	return base
}

// New creates an empty scene with a black background and no ambient light
func New(name string) *Scene {
	return &Scene{
		Name:           name,
		Background:     core.Black,
		Ambient:        lights.AmbientNone,
		Geometries:     geometry.NewGeometries(),
		SamplingConfig: DefaultSamplingConfig(),
	}
}

// Add appends geometries to the scene
func (s *Scene) Add(geometries ...geometry.Intersectable) *Scene {
	s.Geometries.Add(geometries...)
	return s
}

// AddLights appends light sources to the scene
func (s *Scene) AddLights(sources ...lights.LightSource) *Scene {
	s.Lights = append(s.Lights, sources...)
	return s
}

// Camera builds the scene camera from its configuration
func (s *Scene) Camera() (*geometry.Camera, error) {
	return geometry.NewCamera(s.CameraConfig)
}

// Validate checks the camera and sampling configuration
func (s *Scene) Validate() error {
	if s.Geometries == nil {
		return fmt.Errorf("scene %q has no geometry aggregate", s.Name)
	}
	if _, err := s.Camera(); err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	if err := s.SamplingConfig.Validate(); err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	return nil
}

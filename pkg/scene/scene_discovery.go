package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned when a preset name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier used on the command line and in the API
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // Short description
	Width       int    `json:"width"`       // Default image width
	Height      int    `json:"height"`      // Default image height
}

type preset struct {
	name        string
	description string
	create      func() *Scene
}

var presets = map[string]preset{
	"sphere":                       {"Sphere", "Single opaque sphere under a point light", NewSphereScene},
	"two-spheres":                  {"Two Spheres", "Transparent sphere around an opaque one", NewTwoSpheresScene},
	"two-spheres-mirrored":         {"Two Spheres Mirrored", "Nested spheres reflected in two mirrors", NewTwoSpheresMirroredScene},
	"triangles-transparent-sphere": {"Triangles and Transparent Sphere", "Partial shadow cast through a transparent sphere", NewTrianglesTransparentSphereScene},
	"multiple-objects":             {"Multiple Objects", "Spheres and triangles on a reflective plane", NewMultipleObjectsScene},
	"complex":                      {"Complex Scene", "Reflective and transparent spheres over a mirror floor", NewComplexScene},
	"tube-cylinder":                {"Tube and Cylinder", "Closed cylinder, infinite tube and a polygon mirror", NewTubeCylinderScene},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	infos := make([]SceneInfo, 0, len(presets))
	for id, p := range presets {
		sampling := p.create().SamplingConfig
		infos = append(infos, SceneInfo{
			ID:          id,
			Name:        p.name,
			Description: p.description,
			Width:       sampling.Width,
			Height:      sampling.Height,
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ID < infos[j].ID
	})
	return infos
}

// CreateScene builds the built-in scene with the given ID
func CreateScene(id string) (*Scene, error) {
	p, ok := presets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}
	return p.create(), nil
}

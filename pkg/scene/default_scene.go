package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
)

// NewSphereScene creates a single opaque sphere lit by a point light from above.
// Every visible pixel is a closed-form Lambert/Phong term.
func NewSphereScene() *Scene {
	s := New("sphere")
	s.Ambient = lights.NewAmbientLight(white, 0.1)
	s.Add(sphere(50, core.NewPoint(0, 0, -100), surface(core.NewColor(0, 0, 100),
		core.NewMaterial().WithDiffuse(0.5).WithSpecular(0.5).WithShininess(100))))
	s.AddLights(lights.NewPointLight(core.NewColor(300, 200, 100), core.NewPoint(0, 150, 0)))
	s.CameraConfig = frontCamera(core.NewPoint(0, 0, 100), 100, 150)
	s.SamplingConfig = square(500)
	return s
}

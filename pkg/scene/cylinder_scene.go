package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
)

// NewTubeCylinderScene creates a closed cylinder and an infinite tube in front of a polygon mirror
func NewTubeCylinderScene() *Scene {
	s := New("tube-cylinder")
	s.Background = core.NewColor(20, 20, 40)
	s.Ambient = lights.NewAmbientLight(white, 0.05)

	floor := plane(core.NewPoint(0, -60, 0), core.MustVector(0, 1, 0), surface(core.NewColor(30, 30, 30),
		core.NewMaterial().WithDiffuse(0.5).WithSpecular(0.3).WithShininess(20).WithReflection(core.Uniform(0.2))))

	cylinder, err := geometry.NewCylinder(25, core.MustRay(core.NewPoint(-60, -60, -100), core.MustVector(0, 1, 0)), 80,
		surface(core.NewColor(120, 20, 20), core.NewMaterial().WithDiffuse(0.6).WithSpecular(0.4).WithShininess(80)))
	if err != nil {
		panic(err)
	}

	tube, err := geometry.NewTube(10, core.MustRay(core.NewPoint(0, 40, -250), core.MustVector(1, 0.3, 0)),
		surface(core.NewColor(20, 120, 20), core.NewMaterial().WithDiffuse(0.5).WithSpecular(0.5).WithShininess(60).
			WithTransparency(core.Uniform(0.4))))
	if err != nil {
		panic(err)
	}

	mirror := geometry.MustPolygon(surface(core.NewColor(10, 10, 10), core.NewMaterial().WithReflection(core.Uniform(0.5))),
		core.NewPoint(-150, -60, -300), core.NewPoint(150, -60, -300), core.NewPoint(150, 140, -300), core.NewPoint(-150, 140, -300))

	ball := sphere(30, core.NewPoint(60, -30, -120), surface(core.NewColor(20, 20, 120),
		core.NewMaterial().WithDiffuse(0.4).WithSpecular(0.6).WithShininess(100).WithReflection(core.Uniform(0.3))))

	s.Add(floor, cylinder, tube, mirror, ball)

	sun, err := lights.NewDirectionalLight(core.NewColor(120, 120, 120), core.MustVector(1, -1, -1))
	if err != nil {
		panic(err)
	}
	s.AddLights(
		sun,
		spot(core.NewColor(800, 600, 400), core.NewPoint(100, 100, 100), core.MustVector(-1, -1, -2)).
			WithAttenuation(1, 0.0004, 0.0000006),
	)
	s.CameraConfig = frontCamera(core.NewPoint(0, 0, 400), 400, 300)
	s.SamplingConfig = square(500)
	return s
}

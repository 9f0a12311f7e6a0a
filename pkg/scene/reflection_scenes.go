package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
)

// NewTwoSpheresScene creates a transparent blue sphere around a red one
func NewTwoSpheresScene() *Scene {
	s := New("two-spheres")
	s.Add(
		sphere(50, core.NewPoint(0, 0, -50), surface(blue,
			core.NewMaterial().WithDiffuse(0.4).WithSpecular(0.3).WithShininess(100).WithTransparency(core.Uniform(0.3)))),
		sphere(25, core.NewPoint(0, 0, -50), surface(red,
			core.NewMaterial().WithDiffuse(0.5).WithSpecular(0.5).WithShininess(100))),
	)
	s.AddLights(spot(core.NewColor(1000, 600, 0), core.NewPoint(-100, -100, 500), core.MustVector(-1, -1, -2)).
		WithAttenuation(1, 0.0004, 0.0000006))
	s.CameraConfig = frontCamera(core.NewPoint(0, 0, 1000), 1000, 150)
	s.SamplingConfig = square(500)
	return s
}

// NewTwoSpheresMirroredScene creates nested spheres reflected in two triangular mirrors
func NewTwoSpheresMirroredScene() *Scene {
	s := New("two-spheres-mirrored")
	mirrorEmission := core.NewColor(20, 20, 20)
	s.Add(
		sphere(400, core.NewPoint(-950, -900, -1000), surface(core.NewColor(0, 50, 100),
			core.NewMaterial().WithDiffuse(0.25).WithSpecular(0.25).WithShininess(20).WithTransparency(core.NewFactor(0.5, 0, 0)))),
		sphere(200, core.NewPoint(-950, -900, -1000), surface(core.NewColor(100, 50, 20),
			core.NewMaterial().WithDiffuse(0.25).WithSpecular(0.25).WithShininess(20))),
		geometry.MustTriangle(core.NewPoint(1500, -1500, -1500), core.NewPoint(-1500, 1500, -1500), core.NewPoint(670, 670, 3000),
			surface(mirrorEmission, core.NewMaterial().WithReflection(core.FactorOne))),
		geometry.MustTriangle(core.NewPoint(1500, -1500, -1500), core.NewPoint(-1500, 1500, -1500), core.NewPoint(-1500, -1500, -2000),
			surface(mirrorEmission, core.NewMaterial().WithReflection(core.NewFactor(0.5, 0, 0.4)))),
	)
	s.Ambient = lights.NewAmbientLight(white, 0.1)
	s.AddLights(spot(core.NewColor(1020, 400, 400), core.NewPoint(-750, -750, -150), core.MustVector(-1, -1, -4)).
		WithAttenuation(1, 0.00001, 0.000005))
	s.CameraConfig = frontCamera(core.NewPoint(0, 0, 10000), 10000, 2500)
	s.SamplingConfig = square(500)
	return s
}

// NewTrianglesTransparentSphereScene creates two triangles shadowed through a transparent sphere
func NewTrianglesTransparentSphereScene() *Scene {
	s := New("triangles-transparent-sphere")
	matte := core.NewMaterial().WithDiffuse(0.5).WithSpecular(0.5).WithShininess(60)
	s.Add(
		geometry.MustTriangle(core.NewPoint(-150, -150, -115), core.NewPoint(150, -150, -135), core.NewPoint(75, 75, -150),
			surface(core.Black, matte)),
		geometry.MustTriangle(core.NewPoint(-150, -150, -115), core.NewPoint(-70, 70, -140), core.NewPoint(75, 75, -150),
			surface(core.Black, matte)),
		sphere(30, core.NewPoint(60, 50, -50), surface(blue,
			core.NewMaterial().WithDiffuse(0.2).WithSpecular(0.2).WithShininess(30).WithTransparency(core.Uniform(0.6)))),
	)
	s.Ambient = lights.NewAmbientLight(white, 0.15)
	s.AddLights(spot(core.NewColor(700, 400, 400), core.NewPoint(60, 50, 0), core.MustVector(0, 0, -1)).
		WithAttenuation(1, 4e-5, 2e-7))
	s.CameraConfig = frontCamera(core.NewPoint(0, 0, 1000), 1000, 200)
	s.SamplingConfig = square(600)
	return s
}

// NewMultipleObjectsScene creates spheres and triangles standing on a slightly reflective plane
func NewMultipleObjectsScene() *Scene {
	s := New("multiple-objects")
	s.Add(
		plane(core.Origin, core.MustVector(0, 0, 1), surface(core.NewColor(0, 20, 20),
			core.NewMaterial().WithDiffuse(0.5).WithSpecular(0.5).WithShininess(60).WithReflection(core.Uniform(0.02)))),
		sphere(40, core.NewPoint(0, -50, 50), surface(blue,
			core.NewMaterial().WithDiffuse(0.6).WithSpecular(0.4).WithShininess(100).WithReflection(core.Uniform(0.3)))),
		sphere(30, core.NewPoint(70, 70, 30), surface(red,
			core.NewMaterial().WithDiffuse(0.7).WithSpecular(0.5).WithShininess(80).
				WithTransparency(core.Uniform(0.35)).WithReflection(core.Uniform(0.1)))),
		sphere(20, core.NewPoint(-70, 50, 50), surface(green,
			core.NewMaterial().WithDiffuse(0.6).WithSpecular(0.4).WithShininess(100).WithReflection(core.Uniform(0.3)))),
		geometry.MustTriangle(core.NewPoint(-100, -100, 0), core.NewPoint(100, -100, 0), core.NewPoint(0, 100, 0),
			surface(green, core.NewMaterial().WithDiffuse(0.6).WithSpecular(0.4).WithShininess(50).WithReflection(core.Uniform(0.2)))),
		geometry.MustTriangle(core.NewPoint(-120, -50, 30), core.NewPoint(-120, 50, 30), core.NewPoint(0, 0, 100),
			surface(white, core.NewMaterial().WithDiffuse(0.8).WithSpecular(0.6).WithShininess(70).WithReflection(core.Uniform(0.2)))),
	)
	s.Ambient = lights.NewAmbientLight(core.NewColor(30, 30, 30), 0.1)
	s.AddLights(spot(core.NewColor(1000, 1000, 1000), core.NewPoint(-100, 100, 100), core.MustVector(1, -1, -1)).
		WithAttenuation(1, 0.0004, 0.0001))
	s.CameraConfig = frontCamera(core.NewPoint(0, 0, 1000), 850, 200)
	s.SamplingConfig = square(600)
	return s
}

// NewComplexScene creates reflective and transparent spheres over a mirror floor on a light blue background
func NewComplexScene() *Scene {
	s := New("complex")
	s.Background = core.NewColor(173, 216, 230)
	s.Add(
		plane(core.NewPoint(0, -50, 0), core.MustVector(0, 1, 0), surface(core.NewColor(200, 200, 200),
			core.NewMaterial().WithReflection(core.Uniform(0.6)))),
		sphere(30, core.NewPoint(-60, 20, -100), surface(blue,
			core.NewMaterial().WithTransparency(core.Uniform(0.5)).WithSpecular(0.5).WithShininess(100))),
		sphere(30, core.NewPoint(60, 20, -100), surface(red,
			core.NewMaterial().WithReflection(core.Uniform(0.8)).WithSpecular(0.5).WithShininess(100))),
		sphere(40, core.NewPoint(0, 40, -150), surface(green,
			core.NewMaterial().WithTransparency(core.Uniform(0.3)).WithSpecular(0.5).WithShininess(100))),
		geometry.MustTriangle(core.NewPoint(-50, 0, -50), core.NewPoint(50, 0, -50), core.NewPoint(0, 100, -50),
			surface(core.NewColor(50, 50, 50), core.NewMaterial().WithDiffuse(0.5).WithSpecular(0.5).WithShininess(100))),
	)
	s.AddLights(spot(core.NewColor(1000, 600, 400), core.NewPoint(100, 100, 200), core.MustVector(-1, -1, -3)).
		WithAttenuation(1, 0.0004, 0.0000006))
	s.CameraConfig = frontCamera(core.NewPoint(0, 200, 200), 300, 200)
	s.SamplingConfig = square(600)
	return s
}

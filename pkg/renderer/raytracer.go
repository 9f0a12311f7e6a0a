package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// ErrInvalidConfig is returned for tracer or renderer settings out of range
var ErrInvalidConfig = errors.New("invalid renderer configuration")

// RayTracer computes the color seen along a ray
type RayTracer interface {
	TraceRay(ray core.Ray) core.Color
}

// TracerConfig holds the constants of the shading recursion
type TracerConfig struct {
	MaxLevel     int     // Maximum recursion depth, 1 disables reflection and refraction
	MinK         float64 // Attenuation floor below which a branch contributes nothing
	RayBias      float64 // Offset of spawned rays along the surface normal
	BeamRays     int     // Rays per reflected/refracted beam, 1 traces only the ideal ray
	BeamRadius   float64 // Radius of the beam target disc
	BeamDistance float64 // Distance from the hit point to the beam target disc
}

// DefaultTracerConfig returns the classic single-ray settings
func DefaultTracerConfig() TracerConfig {
	return TracerConfig{
		MaxLevel:   10,
		MinK:       0.001,
		RayBias:    core.DefaultRayBias,
		BeamRays:   1,
		BeamRadius: 0,
	}
}

// Validate checks that the configuration can drive the recursion
func (c TracerConfig) Validate() error {
	switch {
	case c.MaxLevel < 1:
		return fmt.Errorf("%w: max level %d must be at least 1", ErrInvalidConfig, c.MaxLevel)
	case c.MinK <= 0 || c.MinK >= 1:
		return fmt.Errorf("%w: attenuation floor %g must be in (0, 1)", ErrInvalidConfig, c.MinK)
	case c.RayBias < 0:
		return fmt.Errorf("%w: ray bias %g must not be negative", ErrInvalidConfig, c.RayBias)
	case c.BeamRays < 1:
		return fmt.Errorf("%w: beam rays %d must be at least 1", ErrInvalidConfig, c.BeamRays)
	case c.BeamRays > 1 && (c.BeamRadius <= 0 || c.BeamDistance <= 0):
		return fmt.Errorf("%w: a beam of %d rays needs a positive radius and distance", ErrInvalidConfig, c.BeamRays)
	}
	return nil
}

// SimpleRayTracer is a recursive Whitted-style ray tracer with Phong local lighting,
// shadows attenuated by transparent occluders, mirror reflection and undeviated refraction
type SimpleRayTracer struct {
	scene  *scene.Scene
	config TracerConfig
}

// NewSimpleRayTracer creates a tracer over a scene that must not change while tracing
func NewSimpleRayTracer(scn *scene.Scene, config TracerConfig) (*SimpleRayTracer, error) {
	if scn == nil || scn.Geometries == nil {
		return nil, fmt.Errorf("%w: scene has no geometry", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &SimpleRayTracer{scene: scn, config: config}, nil
}

// Config returns the tracer configuration
func (rt *SimpleRayTracer) Config() TracerConfig {
	return rt.config
}

// TraceRay returns the background when the ray hits nothing, otherwise the ambient light
// plus the local and global effects at the closest hit
func (rt *SimpleRayTracer) TraceRay(ray core.Ray) core.Color {
	gp, ok := rt.findClosestIntersection(ray)
	if !ok {
		return rt.scene.Background
	}
	return rt.calcColor(gp, ray, rt.config.MaxLevel, core.FactorOne).Add(rt.scene.Ambient.Intensity())
}

func (rt *SimpleRayTracer) findClosestIntersection(ray core.Ray) (geometry.GeoPoint, bool) {
	return geometry.FindClosestGeoPoint(ray, rt.scene.Geometries.FindGeoIntersections(ray))
}

// calcColor returns the local effects plus, above level 1, the global effects
func (rt *SimpleRayTracer) calcColor(gp geometry.GeoPoint, ray core.Ray, level int, k core.Factor) core.Color {
	color := rt.local(gp, ray, k)
	if level <= 1 {
		return color
	}
	return color.Add(rt.global(gp, ray, level, k))
}

// local returns the emission plus the diffuse and specular terms of every light that
// reaches the point from the viewer's side of the surface
func (rt *SimpleRayTracer) local(gp geometry.GeoPoint, ray core.Ray, k core.Factor) core.Color {
	color := gp.Geometry.GetEmission()
	v := ray.Direction()
	n := gp.Geometry.GetNormal(gp.Point)

	// Grazing view
	nv := core.AlignZero(n.Dot(v))
	if nv == 0 {
		return color
	}

	material := gp.Geometry.GetMaterial()
	for _, light := range rt.scene.Lights {
		l := light.DirectionAt(gp.Point)
		nl := core.AlignZero(n.Dot(l))
		if nl*nv <= 0 {
			continue
		}

		ktr := rt.transparency(gp, light, l, n)
		if ktr.Mul(k).LowerThan(rt.config.MinK) {
			continue
		}

		iL := light.IntensityAt(gp.Point).ScaleBy(ktr)
		color = color.Add(
			diffuse(material.KD, nl, iL),
			specular(material.KS, n, l, nl, v, iL, material.Shininess),
		)
	}
	return color
}

func diffuse(kd core.Factor, nl float64, iL core.Color) core.Color {
	return iL.ScaleBy(kd.Scale(math.Abs(nl)))
}

func specular(ks core.Factor, n, l core.Vector, nl float64, v core.Vector, iL core.Color, shininess int) core.Color {
	r := l.Subtract(n.Scale(2 * nl))
	minusVR := -core.AlignZero(v.Dot(r))
	if minusVR <= 0 {
		return core.Black
	}
	return iL.ScaleBy(ks.Scale(math.Pow(minusVR, float64(shininess))))
}

// transparency returns the product of the transparency coefficients of every occluder between
// the point and the light. One means fully lit, zero means an opaque occluder.
func (rt *SimpleRayTracer) transparency(gp geometry.GeoPoint, light lights.LightSource, l, n core.Vector) core.Factor {
	lightRay, err := core.NewBiasedRay(gp.Point, l.Negate(), n, rt.config.RayBias)
	if err != nil {
		return core.FactorOne
	}

	hits := geometry.FindGeoIntersectionsWithin(rt.scene.Geometries, lightRay, light.DistanceTo(lightRay.Head()))
	ktr := core.FactorOne
	for _, hit := range hits {
		ktr = ktr.Mul(hit.Geometry.GetMaterial().KT)
		if ktr.IsZero() {
			return core.FactorZero
		}
	}
	return ktr
}

// global returns the reflected and refracted contributions
func (rt *SimpleRayTracer) global(gp geometry.GeoPoint, ray core.Ray, level int, k core.Factor) core.Color {
	material := gp.Geometry.GetMaterial()
	n := gp.Geometry.GetNormal(gp.Point)
	v := ray.Direction()

	color := core.Black
	if !material.KR.IsZero() {
		if reflected, err := rt.reflectedRay(gp.Point, v, n); err == nil {
			color = color.Add(rt.globalEffect(reflected, n, level, k, material.KR))
		}
	}
	if !material.KT.IsZero() {
		if refracted, err := rt.refractedRay(gp.Point, v, n); err == nil {
			color = color.Add(rt.globalEffect(refracted, n, level, k, material.KT))
		}
	}
	return color
}

// globalEffect traces the ray, or a beam around it, one level down with attenuation k*kx.
// Misses contribute the background. The result is scaled by kx.
func (rt *SimpleRayTracer) globalEffect(ray core.Ray, n core.Vector, level int, k, kx core.Factor) core.Color {
	kkx := k.Mul(kx)
	if kkx.LowerThan(rt.config.MinK) {
		return core.Black
	}

	rays := []core.Ray{ray}
	if rt.config.BeamRays > 1 {
		rays = GenerateBeam(n, ray, rt.config.BeamDistance, rt.config.BeamRadius, rt.config.BeamRays)
	}

	sum := core.Black
	for _, r := range rays {
		gp, ok := rt.findClosestIntersection(r)
		if !ok {
			sum = sum.Add(rt.scene.Background)
			continue
		}
		sum = sum.Add(rt.calcColor(gp, r, level-1, kkx))
	}
	return sum.Reduce(len(rays)).ScaleBy(kx)
}

// reflectedRay mirrors v about n: v - 2(v·n)n
func (rt *SimpleRayTracer) reflectedRay(p core.Point, v, n core.Vector) (core.Ray, error) {
	r := v.Subtract(n.Scale(2 * v.Dot(n)))
	return core.NewBiasedRay(p, r, n, rt.config.RayBias)
}

// refractedRay continues along v without bending
func (rt *SimpleRayTracer) refractedRay(p core.Point, v, n core.Vector) (core.Ray, error) {
	return core.NewBiasedRay(p, v, n, rt.config.RayBias)
}

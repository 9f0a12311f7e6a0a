package loaders

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

var (
	// ErrUnknownShape is returned for a shape type the loader does not know
	ErrUnknownShape = errors.New("unknown shape type")
	// ErrUnknownLight is returned for a light type the loader does not know
	ErrUnknownLight = errors.New("unknown light type")
	// ErrInvalidSceneFile is returned for malformed values in a scene description
	ErrInvalidSceneFile = errors.New("invalid scene file")
)

// SceneFile is the YAML layout of a scene description
type SceneFile struct {
	Name       string       `yaml:"name"`
	Background Triple       `yaml:"background"`
	Ambient    *AmbientSpec `yaml:"ambient"`
	Camera     CameraSpec   `yaml:"camera"`
	Sampling   SamplingSpec `yaml:"sampling"`
	Tracer     TracerSpec   `yaml:"tracer"`
	Shapes     []ShapeSpec  `yaml:"shapes"`
	Lights     []LightSpec  `yaml:"lights"`
}

// Triple is an x, y, z point or vector, or an r, g, b color
type Triple []float64

// AmbientSpec describes the ambient light as a color times a coefficient
type AmbientSpec struct {
	Color Triple      `yaml:"color"`
	KA    Coefficient `yaml:"ka"`
}

// CameraSpec describes the camera
type CameraSpec struct {
	Location Triple  `yaml:"location"`
	To       Triple  `yaml:"to"`
	Up       Triple  `yaml:"up"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Distance float64 `yaml:"distance"`
}

// SamplingSpec describes the output image
type SamplingSpec struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Samples int `yaml:"samples"`
}

// TracerSpec describes the shading recursion. Omitted fields keep their defaults.
type TracerSpec struct {
	MaxLevel     int     `yaml:"max_level"`
	MinK         float64 `yaml:"min_k"`
	RayBias      float64 `yaml:"ray_bias"`
	BeamRays     int     `yaml:"beam_rays"`
	BeamRadius   float64 `yaml:"beam_radius"`
	BeamDistance float64 `yaml:"beam_distance"`
}

// MaterialSpec describes Phong coefficients. Each coefficient accepts a scalar or an r, g, b list.
type MaterialSpec struct {
	KD        Coefficient `yaml:"kd"`
	KS        Coefficient `yaml:"ks"`
	KT        Coefficient `yaml:"kt"`
	KR        Coefficient `yaml:"kr"`
	Shininess int         `yaml:"shininess"`
}

// ShapeSpec describes one geometry. Which fields apply depends on Type.
type ShapeSpec struct {
	Type     string       `yaml:"type"`
	Center   Triple       `yaml:"center"`   // sphere
	Radius   float64      `yaml:"radius"`   // sphere, tube, cylinder
	Point    Triple       `yaml:"point"`    // plane
	Normal   Triple       `yaml:"normal"`   // plane
	Vertices []Triple     `yaml:"vertices"` // triangle, polygon, plane from three points
	Axis     *AxisSpec    `yaml:"axis"`     // tube, cylinder
	Height   float64      `yaml:"height"`   // cylinder
	Emission Triple       `yaml:"emission"`
	Material MaterialSpec `yaml:"material"`
}

// AxisSpec is the axis ray of a tube or cylinder
type AxisSpec struct {
	Head      Triple `yaml:"head"`
	Direction Triple `yaml:"direction"`
}

// LightSpec describes one light source. Which fields apply depends on Type.
type LightSpec struct {
	Type        string  `yaml:"type"`
	Color       Triple  `yaml:"color"`
	Position    Triple  `yaml:"position"`    // point, spot
	Direction   Triple  `yaml:"direction"`   // directional, spot
	Attenuation Triple  `yaml:"attenuation"` // point, spot: kC, kL, kQ
	NarrowBeam  float64 `yaml:"narrow_beam"` // spot
}

// Coefficient is a per-channel factor written either as a scalar or as an r, g, b list
type Coefficient struct {
	core.Factor
}

// UnmarshalYAML accepts `0.5` as well as `[0.5, 0.2, 0.1]`
func (c *Coefficient) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var scalar float64
	if err := unmarshal(&scalar); err == nil {
		c.Factor = core.Uniform(scalar)
		return nil
	}
	var channels []float64
	if err := unmarshal(&channels); err != nil {
		return fmt.Errorf("%w: coefficient must be a number or a list of three numbers", ErrInvalidSceneFile)
	}
	if len(channels) != 3 {
		return fmt.Errorf("%w: coefficient has %d channels, want 3", ErrInvalidSceneFile, len(channels))
	}
	c.Factor = core.NewFactor(channels[0], channels[1], channels[2])
	return nil
}

// LoadScene reads a YAML scene description from disk
func LoadScene(filename string) (*scene.Scene, renderer.TracerConfig, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, renderer.TracerConfig{}, err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, renderer.TracerConfig{}, fmt.Errorf("failed to read scene file: %w", err)
	}

	scn, config, err := ParseScene(data)
	if err != nil {
		return nil, renderer.TracerConfig{}, fmt.Errorf("%s: %w", filename, err)
	}
	if scn.Name == "" {
		scn.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return scn, config, nil
}

// ParseScene builds a scene and its tracer configuration from YAML. Unknown keys are rejected.
func ParseScene(data []byte) (*scene.Scene, renderer.TracerConfig, error) {
	file := SceneFile{Tracer: defaultTracerSpec()}
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, renderer.TracerConfig{}, fmt.Errorf("error parsing scene: %w", err)
	}
	return file.Build()
}

func defaultTracerSpec() TracerSpec {
	d := renderer.DefaultTracerConfig()
	return TracerSpec{
		MaxLevel:     d.MaxLevel,
		MinK:         d.MinK,
		RayBias:      d.RayBias,
		BeamRays:     d.BeamRays,
		BeamRadius:   d.BeamRadius,
		BeamDistance: d.BeamDistance,
	}
}

// Build converts the parsed description into a validated scene and tracer configuration
func (f *SceneFile) Build() (*scene.Scene, renderer.TracerConfig, error) {
	scn := scene.New(f.Name)

	if f.Background != nil {
		background, err := f.Background.color("background")
		if err != nil {
			return nil, renderer.TracerConfig{}, err
		}
		scn.Background = background
	}

	if f.Ambient != nil {
		ia, err := f.Ambient.Color.color("ambient color")
		if err != nil {
			return nil, renderer.TracerConfig{}, err
		}
		scn.Ambient = lights.NewAmbientLightFactor(ia, f.Ambient.KA.Factor)
	}

	camera, err := f.Camera.build()
	if err != nil {
		return nil, renderer.TracerConfig{}, err
	}
	scn.CameraConfig = camera
	scn.SamplingConfig = scene.MergeSamplingConfig(scn.SamplingConfig, scene.SamplingConfig{
		Width:           f.Sampling.Width,
		Height:          f.Sampling.Height,
		SamplesPerPixel: f.Sampling.Samples,
	})

	for i, spec := range f.Shapes {
		shape, err := spec.build()
		if err != nil {
			return nil, renderer.TracerConfig{}, fmt.Errorf("shape %d: %w", i, err)
		}
		scn.Add(shape)
	}

	for i, spec := range f.Lights {
		light, err := spec.build()
		if err != nil {
			return nil, renderer.TracerConfig{}, fmt.Errorf("light %d: %w", i, err)
		}
		scn.AddLights(light)
	}

	if err := scn.Validate(); err != nil {
		return nil, renderer.TracerConfig{}, err
	}

	config := renderer.TracerConfig{
		MaxLevel:     f.Tracer.MaxLevel,
		MinK:         f.Tracer.MinK,
		RayBias:      f.Tracer.RayBias,
		BeamRays:     f.Tracer.BeamRays,
		BeamRadius:   f.Tracer.BeamRadius,
		BeamDistance: f.Tracer.BeamDistance,
	}
	if err := config.Validate(); err != nil {
		return nil, renderer.TracerConfig{}, err
	}
	return scn, config, nil
}

func (c CameraSpec) build() (geometry.CameraConfig, error) {
	location, err := c.Location.point("camera location")
	if err != nil {
		return geometry.CameraConfig{}, err
	}
	to, err := c.To.vector("camera to")
	if err != nil {
		return geometry.CameraConfig{}, err
	}
	up, err := c.Up.vector("camera up")
	if err != nil {
		return geometry.CameraConfig{}, err
	}
	return geometry.CameraConfig{
		Location:   location,
		To:         to,
		Up:         up,
		VpWidth:    c.Width,
		VpHeight:   c.Height,
		VpDistance: c.Distance,
	}, nil
}

func (m MaterialSpec) build() core.Material {
	return core.NewMaterial().
		WithDiffuseFactor(m.KD.Factor).
		WithSpecularFactor(m.KS.Factor).
		WithShininess(m.Shininess).
		WithTransparency(m.KT.Factor).
		WithReflection(m.KR.Factor)
}

func (s ShapeSpec) build() (geometry.Intersectable, error) {
	surface := geometry.Surface{Material: s.Material.build()}
	if s.Emission != nil {
		emission, err := s.Emission.color("emission")
		if err != nil {
			return nil, err
		}
		surface.Emission = emission
	}

	switch s.Type {
	case "sphere":
		center, err := s.Center.point("center")
		if err != nil {
			return nil, err
		}
		return geometry.NewSphere(center, s.Radius, surface)

	case "plane":
		if len(s.Vertices) > 0 {
			vertices, err := toPoints(s.Vertices)
			if err != nil {
				return nil, err
			}
			if len(vertices) != 3 {
				return nil, fmt.Errorf("%w: plane needs 3 points, got %d", ErrInvalidSceneFile, len(vertices))
			}
			return geometry.NewPlaneFromPoints(vertices[0], vertices[1], vertices[2], surface)
		}
		q, err := s.Point.point("point")
		if err != nil {
			return nil, err
		}
		normal, err := s.Normal.vector("normal")
		if err != nil {
			return nil, err
		}
		return geometry.NewPlane(q, normal, surface)

	case "triangle":
		vertices, err := toPoints(s.Vertices)
		if err != nil {
			return nil, err
		}
		if len(vertices) != 3 {
			return nil, fmt.Errorf("%w: triangle needs 3 vertices, got %d", ErrInvalidSceneFile, len(vertices))
		}
		return geometry.NewTriangle(vertices[0], vertices[1], vertices[2], surface)

	case "polygon":
		vertices, err := toPoints(s.Vertices)
		if err != nil {
			return nil, err
		}
		return geometry.NewPolygon(surface, vertices...)

	case "tube", "cylinder":
		if s.Axis == nil {
			return nil, fmt.Errorf("%w: %s needs an axis", ErrInvalidSceneFile, s.Type)
		}
		head, err := s.Axis.Head.point("axis head")
		if err != nil {
			return nil, err
		}
		direction, err := s.Axis.Direction.vector("axis direction")
		if err != nil {
			return nil, err
		}
		axis, err := core.NewRay(head, direction)
		if err != nil {
			return nil, err
		}
		if s.Type == "tube" {
			return geometry.NewTube(s.Radius, axis, surface)
		}
		return geometry.NewCylinder(s.Radius, axis, s.Height, surface)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShape, s.Type)
}

func (l LightSpec) build() (lights.LightSource, error) {
	intensity, err := l.Color.color("light color")
	if err != nil {
		return nil, err
	}

	switch l.Type {
	case "directional":
		direction, err := l.Direction.vector("direction")
		if err != nil {
			return nil, err
		}
		return lights.NewDirectionalLight(intensity, direction)

	case "point":
		position, err := l.Position.point("position")
		if err != nil {
			return nil, err
		}
		light := lights.NewPointLight(intensity, position)
		if l.Attenuation != nil {
			kC, kL, kQ, err := l.attenuation()
			if err != nil {
				return nil, err
			}
			light.WithAttenuation(kC, kL, kQ)
		}
		return light, nil

	case "spot":
		position, err := l.Position.point("position")
		if err != nil {
			return nil, err
		}
		direction, err := l.Direction.vector("direction")
		if err != nil {
			return nil, err
		}
		light, err := lights.NewSpotLight(intensity, position, direction)
		if err != nil {
			return nil, err
		}
		if l.Attenuation != nil {
			kC, kL, kQ, err := l.attenuation()
			if err != nil {
				return nil, err
			}
			light.WithAttenuation(kC, kL, kQ)
		}
		if l.NarrowBeam != 0 {
			light.WithNarrowBeam(l.NarrowBeam)
		}
		return light, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLight, l.Type)
}

func (l LightSpec) attenuation() (float64, float64, float64, error) {
	if err := l.Attenuation.check("attenuation"); err != nil {
		return 0, 0, 0, err
	}
	return l.Attenuation[0], l.Attenuation[1], l.Attenuation[2], nil
}

func (t Triple) check(field string) error {
	if len(t) != 3 {
		return fmt.Errorf("%w: %s has %d components, want 3", ErrInvalidSceneFile, field, len(t))
	}
	return nil
}

func (t Triple) point(field string) (core.Point, error) {
	if err := t.check(field); err != nil {
		return core.Point{}, err
	}
	return core.NewPoint(t[0], t[1], t[2]), nil
}

func (t Triple) vector(field string) (core.Vector, error) {
	if err := t.check(field); err != nil {
		return core.Vector{}, err
	}
	v, err := core.NewVector(t[0], t[1], t[2])
	if err != nil {
		return core.Vector{}, fmt.Errorf("%s: %w", field, err)
	}
	return v, nil
}

func (t Triple) color(field string) (core.Color, error) {
	if err := t.check(field); err != nil {
		return core.Color{}, err
	}
	return core.NewColor(t[0], t[1], t[2]), nil
}

func toPoints(triples []Triple) ([]core.Point, error) {
	result := make([]core.Point, len(triples))
	for i, t := range triples {
		p, err := t.point(fmt.Sprintf("vertex %d", i))
		if err != nil {
			return nil, err
		}
		result[i] = p
	}
	return result, nil
}

// validateFilePath rejects paths that cannot name a scene description
func validateFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}

	cleanPath := filepath.Clean(filename)
	if len(cleanPath) > 512 {
		return fmt.Errorf("file path too long: maximum 512 characters allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("invalid file type: only .yaml and .yml files are allowed")
	}
	return nil
}

package server

import (
	"net/http"
	"strconv"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Color        [3]float64             `json:"color"` // Traced color, unclamped
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// InspectResult describes the closest surface along an inspection ray
type InspectResult struct {
	Hit      bool
	GeoPoint geometry.GeoPoint
	Ray      core.Ray
}

// inspectPixel casts the ray through the center of a pixel and returns the closest hit
func inspectPixel(sceneObj *scene.Scene, width, height, pixelX, pixelY int) (InspectResult, error) {
	camera, err := sceneObj.Camera()
	if err != nil {
		return InspectResult{}, err
	}
	ray := camera.ConstructRay(width, height, pixelX, pixelY)

	gp, ok := geometry.FindClosestGeoPoint(ray, sceneObj.Geometries.FindGeoIntersections(ray))
	return InspectResult{Hit: ok, GeoPoint: gp, Ray: ray}, nil
}

func pointTriple(p core.Point) [3]float64 {
	return [3]float64{p.X, p.Y, p.Z}
}

func vectorTriple(v core.Vector) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// extractMaterialInfo lists the Phong coefficients and the emission of a surface
func extractMaterialInfo(g geometry.Geometry) map[string]interface{} {
	m := g.GetMaterial()
	emission := g.GetEmission()
	return map[string]interface{}{
		"kd":        [3]float64{m.KD.R, m.KD.G, m.KD.B},
		"ks":        [3]float64{m.KS.R, m.KS.G, m.KS.B},
		"kt":        [3]float64{m.KT.R, m.KT.G, m.KT.B},
		"kr":        [3]float64{m.KR.R, m.KR.G, m.KR.B},
		"shininess": m.Shininess,
		"emission":  [3]float64{emission.R, emission.G, emission.B},
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(g geometry.Geometry) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := g.(type) {
	case *geometry.Sphere:
		properties["center"] = pointTriple(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["point"] = pointTriple(geom.Q)
		properties["normal"] = vectorTriple(geom.Normal)
		return "plane", properties

	case *geometry.Triangle:
		properties["vertices"] = vertexList(geom.Vertices())
		return "triangle", properties

	case *geometry.Polygon:
		properties["vertices"] = vertexList(geom.Vertices())
		return "polygon", properties

	case *geometry.Cylinder:
		properties["axisHead"] = pointTriple(geom.Axis.Head())
		properties["axisDirection"] = vectorTriple(geom.Axis.Direction())
		properties["radius"] = geom.Radius
		properties["height"] = geom.Height
		return "cylinder", properties

	case *geometry.Tube:
		properties["axisHead"] = pointTriple(geom.Axis.Head())
		properties["axisDirection"] = vectorTriple(geom.Axis.Direction())
		properties["radius"] = geom.Radius
		return "tube", properties

	default:
		return "unknown", properties
	}
}

// extractLightInfo describes where a light source sits and where it points
func extractLightInfo(light lights.LightSource) map[string]interface{} {
	info := map[string]interface{}{"type": string(light.Type())}
	switch l := light.(type) {
	case *lights.SpotLight:
		info["position"] = pointTriple(l.Position())
		info["direction"] = vectorTriple(l.Direction())
	case *lights.PointLight:
		info["position"] = pointTriple(l.Position())
	case *lights.DirectionalLight:
		info["direction"] = vectorTriple(l.DirectionAt(core.Origin))
	}
	return info
}

func lightList(sources []lights.LightSource) []map[string]interface{} {
	list := make([]map[string]interface{}, len(sources))
	for i, light := range sources {
		list[i] = extractLightInfo(light)
	}
	return list
}

func vertexList(vertices []core.Point) [][3]float64 {
	list := make([][3]float64, len(vertices))
	for i, v := range vertices {
		list[i] = pointTriple(v)
	}
	return list
}

// handleInspect reports the surface seen through one pixel of a preset
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	width, height := sceneObj.SamplingConfig.Width, sceneObj.SamplingConfig.Height
	if pixelX < 0 || pixelX >= width || pixelY < 0 || pixelY >= height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	result, err := inspectPixel(sceneObj, width, height, pixelX, pixelY)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	tracer, err := s.newTracer(sceneObj, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	gp := result.GeoPoint
	normal := gp.Geometry.GetNormal(gp.Point)
	color := tracer.TraceRay(result.Ray)
	geometryType, geometryProps := extractGeometryInfo(gp.Geometry)

	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		Point:        pointTriple(gp.Point),
		Normal:       vectorTriple(normal),
		Distance:     result.Ray.Head().Distance(gp.Point),
		FrontFace:    normal.Dot(result.Ray.Direction()) < 0,
		Color:        [3]float64{color.R, color.G, color.B},
		Properties: map[string]interface{}{
			"material": extractMaterialInfo(gp.Geometry),
			"geometry": geometryProps,
		},
	})
}

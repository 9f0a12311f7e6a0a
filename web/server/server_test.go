package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s := NewServer(0)
	t.Cleanup(s.Close)
	return s
}

func get(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := get(t, newTestServer(t).Handler(), "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", body["status"])
	}
}

func TestHandleScenes(t *testing.T) {
	rec := get(t, newTestServer(t).Handler(), "/api/scenes")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var scenes []scene.SceneInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &scenes); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(scenes) != len(scene.ListScenes()) {
		t.Errorf("Expected %d scenes, got %d", len(scene.ListScenes()), len(scenes))
	}
}

func TestHandleSceneConfig(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec := get(t, handler, "/api/scene-config?scene=two-spheres")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body struct {
		Scene    string         `json:"scene"`
		Defaults map[string]int `json:"defaults"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body.Scene != "two-spheres" {
		t.Errorf("Expected scene two-spheres, got %q", body.Scene)
	}
	if body.Defaults["width"] <= 0 || body.Defaults["maxLevel"] != 10 {
		t.Errorf("Unexpected defaults %v", body.Defaults)
	}

	rec = get(t, handler, "/api/scene-config?scene=sphere")
	var lightsBody struct {
		Lights []struct {
			Type      string     `json:"type"`
			Position  [3]float64 `json:"position"`
			Direction []float64  `json:"direction"`
		} `json:"lights"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &lightsBody); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(lightsBody.Lights) != 1 {
		t.Fatalf("Expected one light, got %d", len(lightsBody.Lights))
	}
	if light := lightsBody.Lights[0]; light.Type != "point" || light.Position != [3]float64{0, 150, 0} || light.Direction != nil {
		t.Errorf("Expected a point light at (0,150,0), got %+v", light)
	}

	if rec := get(t, handler, "/api/scene-config?scene=nope"); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for an unknown scene, got %d", rec.Code)
	}
}

func TestParseRenderRequest(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		name    string
		query   string
		want    RenderRequest
		wantErr bool
	}{
		{
			name:  "defaults",
			query: "",
			want:  RenderRequest{Scene: "sphere", MaxLevel: 10, TileSize: 32},
		},
		{
			name:  "overrides",
			query: "scene=complex&width=64&height=48&samples=4&maxLevel=3&tileSize=16",
			want:  RenderRequest{Scene: "complex", Width: 64, Height: 48, Samples: 4, MaxLevel: 3, TileSize: 16},
		},
		{name: "width too small", query: "width=2", wantErr: true},
		{name: "height not a number", query: "height=tall", wantErr: true},
		{name: "too many samples", query: "samples=100000", wantErr: true},
		{name: "zero level", query: "maxLevel=0", wantErr: true},
		{name: "tile too large", query: "tileSize=1024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/render?"+tt.query, nil)
			got, err := s.parseRenderRequest(r)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected an error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, *got)
			}
		})
	}
}

func TestParseIntParam(t *testing.T) {
	values := url.Values{"n": {"7"}}
	if got, err := parseIntParam(values, "n", 1, 0, 10); err != nil || got != 7 {
		t.Errorf("Expected 7, got %d (%v)", got, err)
	}
	if got, err := parseIntParam(values, "missing", 3, 0, 10); err != nil || got != 3 {
		t.Errorf("Expected the default 3, got %d (%v)", got, err)
	}
	if _, err := parseIntParam(values, "n", 1, 8, 10); err == nil {
		t.Error("Expected an out of range error")
	}
}

func TestCreateScene_Overrides(t *testing.T) {
	s := newTestServer(t)
	sceneObj, err := s.createScene(&RenderRequest{Scene: "sphere", Width: 40, Samples: 9})
	if err != nil {
		t.Fatalf("createScene: %v", err)
	}
	want := scene.SamplingConfig{Width: 40, Height: 500, SamplesPerPixel: 9}
	if sceneObj.SamplingConfig != want {
		t.Errorf("Expected %+v, got %+v", want, sceneObj.SamplingConfig)
	}

	if _, err := s.createScene(&RenderRequest{Scene: "nope"}); err == nil {
		t.Error("Expected an error for an unknown scene")
	}
}

package server

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestHandleInspect(t *testing.T) {
	handler := newTestServer(t).Handler()

	tests := []struct {
		name         string
		query        string
		status       int
		hit          bool
		geometryType string
	}{
		{"sphere center", "scene=sphere&width=50&height=50&x=25&y=25", http.StatusOK, true, "sphere"},
		{"background corner", "scene=sphere&width=50&height=50&x=0&y=0", http.StatusOK, false, ""},
		{"out of bounds", "scene=sphere&width=50&height=50&x=50&y=0", http.StatusBadRequest, false, ""},
		{"missing coordinate", "scene=sphere&x=1", http.StatusBadRequest, false, ""},
		{"unknown scene", "scene=nope&x=1&y=1", http.StatusBadRequest, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, handler, "/api/inspect?"+tt.query)
			if rec.Code != tt.status {
				t.Fatalf("Expected status %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
			if tt.status != http.StatusOK {
				return
			}

			var resp InspectResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Invalid JSON: %v", err)
			}
			if resp.Hit != tt.hit {
				t.Fatalf("Expected hit=%v, got %v", tt.hit, resp.Hit)
			}
			if !tt.hit {
				return
			}
			if resp.GeometryType != tt.geometryType {
				t.Errorf("Expected geometry %q, got %q", tt.geometryType, resp.GeometryType)
			}
			if !resp.FrontFace {
				t.Error("Expected the front face of the sphere")
			}
			// Camera at z=100, sphere front at z=-50
			if resp.Distance < 149 || resp.Distance > 151 {
				t.Errorf("Expected a distance near 150, got %f", resp.Distance)
			}
			if resp.Color[2] <= 0 {
				t.Errorf("Expected a blue-emitting surface, got %v", resp.Color)
			}
		})
	}
}

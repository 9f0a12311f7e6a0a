package scene

import (
	"errors"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
)

func TestPresets_Valid(t *testing.T) {
	for _, info := range ListScenes() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := CreateScene(info.ID)
			if err != nil {
				t.Fatalf("CreateScene(%q): %v", info.ID, err)
			}
			if s.Name != info.ID {
				t.Errorf("Expected scene name %q, got %q", info.ID, s.Name)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Validate: %v", err)
			}
			if s.Geometries.Len() == 0 {
				t.Error("Expected the scene to contain geometry")
			}
			if len(s.Lights) == 0 {
				t.Error("Expected the scene to contain lights")
			}
		})
	}
}

func TestListScenes(t *testing.T) {
	infos := ListScenes()
	if len(infos) != 7 {
		t.Fatalf("Expected 7 built-in scenes, got %d", len(infos))
	}
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID >= infos[i].ID {
			t.Errorf("Expected scenes sorted by ID, got %q before %q", infos[i-1].ID, infos[i].ID)
		}
	}
	for _, info := range infos {
		if info.Width <= 0 || info.Height <= 0 {
			t.Errorf("%s: expected a default image size, got %dx%d", info.ID, info.Width, info.Height)
		}
	}
}

func TestCreateScene_Unknown(t *testing.T) {
	if _, err := CreateScene("nonexistent"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestSamplingConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		config SamplingConfig
		valid  bool
	}{
		{"default", DefaultSamplingConfig(), true},
		{"zero width", SamplingConfig{Width: 0, Height: 10, SamplesPerPixel: 1}, false},
		{"negative height", SamplingConfig{Width: 10, Height: -1, SamplesPerPixel: 1}, false},
		{"zero samples", SamplingConfig{Width: 10, Height: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.valid && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidSampling) {
				t.Errorf("Expected ErrInvalidSampling, got %v", err)
			}
		})
	}
}

func TestMergeSamplingConfig(t *testing.T) {
	merged := MergeSamplingConfig(DefaultSamplingConfig(), SamplingConfig{Width: 64, SamplesPerPixel: 9})
	expected := SamplingConfig{Width: 64, Height: 500, SamplesPerPixel: 9}
	if merged != expected {
		t.Errorf("Expected %+v, got %+v", expected, merged)
	}
}

func TestScene_ValidateCamera(t *testing.T) {
	s := New("broken")
	s.CameraConfig = geometry.CameraConfig{
		Location:   core.Origin,
		To:         core.MustVector(0, 0, -1),
		Up:         core.MustVector(0, 1, -1),
		VpWidth:    1,
		VpHeight:   1,
		VpDistance: 1,
	}
	if err := s.Validate(); !errors.Is(err, geometry.ErrInvalidCamera) {
		t.Errorf("Expected ErrInvalidCamera, got %v", err)
	}
}

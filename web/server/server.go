package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// Parameter limits shared by the render and inspect endpoints
const (
	minImageSize   = 8
	maxImageSize   = 2000
	maxSamples     = 256
	maxTracerLevel = 50
	minTileSize    = 8
	maxTileSize    = 256
)

// Server handles web requests for the ray tracer
type Server struct {
	port    int
	pool    *renderer.WorkerPool // shared by every render request
	renders sync.WaitGroup
}

// NewServer creates a new web server with a worker per CPU
func NewServer(port int) *Server {
	return &Server{
		port: port,
		pool: renderer.NewWorkerPool(0),
	}
}

// Close waits for running renders and stops the render workers
func (s *Server) Close() {
	s.renders.Wait()
	s.pool.Close()
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene    string `json:"scene"`    // Preset ID (e.g., "two-spheres")
	Width    int    `json:"width"`    // Image width, 0 keeps the preset's width
	Height   int    `json:"height"`   // Image height, 0 keeps the preset's height
	Samples  int    `json:"samples"`  // Camera rays per pixel, 0 keeps the preset's value
	MaxLevel int    `json:"maxLevel"` // Recursion depth of the tracer
	TileSize int    `json:"tileSize"` // Size of the streamed tiles
}

// Stats represents render statistics
type Stats struct {
	TotalPixels    int     `json:"totalPixels"`
	TotalSamples   int     `json:"totalSamples"`
	AverageSamples float64 `json:"averageSamples"`
	MinSamples     int     `json:"minSamples"`
	MaxSamples     int     `json:"maxSamples"`
	ElapsedMs      int64   `json:"elapsedMs"`
}

func newStats(stats renderer.RenderStats) Stats {
	return Stats{
		TotalPixels:    stats.TotalPixels,
		TotalSamples:   stats.TotalSamples,
		AverageSamples: stats.AverageSamples,
		MinSamples:     stats.MinSamples,
		MaxSamples:     stats.MaxSamples,
		ElapsedMs:      stats.Elapsed.Milliseconds(),
	}
}

// Handler returns the routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/render", s.handleRender)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.ListScenes())
}

// handleSceneConfig returns the default configuration of a scene with the parameter limits
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "sphere"
	}

	sceneObj, err := scene.CreateScene(sceneName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	config := sceneObj.SamplingConfig
	response := map[string]interface{}{
		"scene":  sceneName,
		"lights": lightList(sceneObj.Lights),
		"defaults": map[string]interface{}{
			"width":    config.Width,
			"height":   config.Height,
			"samples":  config.SamplesPerPixel,
			"maxLevel": renderer.DefaultTracerConfig().MaxLevel,
			"tileSize": renderer.DefaultRenderConfig().TileSize,
		},
		"limits": map[string]interface{}{
			"width":    map[string]int{"min": minImageSize, "max": maxImageSize},
			"height":   map[string]int{"min": minImageSize, "max": maxImageSize},
			"samples":  map[string]int{"min": 1, "max": maxSamples},
			"maxLevel": map[string]int{"min": 1, "max": maxTracerLevel},
			"tileSize": map[string]int{"min": minTileSize, "max": maxTileSize},
		},
	}
	writeJSON(w, http.StatusOK, response)
}

// parseRenderRequest parses and validates the query parameters of a render or inspect request
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "sphere"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(query, "samples", 0, 1, maxSamples); err != nil {
		return nil, err
	}
	if req.MaxLevel, err = parseIntParam(query, "maxLevel", renderer.DefaultTracerConfig().MaxLevel, 1, maxTracerLevel); err != nil {
		return nil, err
	}
	if req.TileSize, err = parseIntParam(query, "tileSize", renderer.DefaultRenderConfig().TileSize, minTileSize, maxTileSize); err != nil {
		return nil, err
	}
	return req, nil
}

// createScene builds the requested preset with the request's sampling overrides
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := scene.CreateScene(req.Scene)
	if err != nil {
		return nil, err
	}
	sceneObj.SamplingConfig = scene.MergeSamplingConfig(sceneObj.SamplingConfig, scene.SamplingConfig{
		Width:           req.Width,
		Height:          req.Height,
		SamplesPerPixel: req.Samples,
	})
	return sceneObj, nil
}

// newTracer creates the tracer for a request
func (s *Server) newTracer(sceneObj *scene.Scene, req *RenderRequest) (*renderer.SimpleRayTracer, error) {
	config := renderer.DefaultTracerConfig()
	config.MaxLevel = req.MaxLevel
	return renderer.NewSimpleRayTracer(sceneObj, config)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

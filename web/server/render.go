package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"log"
	"net/http"
	"time"

	"github.com/fogleman/gg"
	"github.com/gorilla/websocket"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// Event types sent over the render websocket
const (
	EventConsole  = "console"
	EventTile     = "tile"
	EventError    = "error"
	EventComplete = "complete"
)

const (
	writeWait    = 10 * time.Second
	pingInterval = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Event is one JSON message of the render stream. Exactly one payload is set, matching Type.
type Event struct {
	Type    string          `json:"type"`
	Tile    *TileUpdate     `json:"tile,omitempty"`
	Console *ConsoleMessage `json:"console,omitempty"`
	Stats   *Stats          `json:"stats,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// TileUpdate carries one finished tile
type TileUpdate struct {
	TileX      int    `json:"tileX"`
	TileY      int    `json:"tileY"`
	X          int    `json:"x"` // Pixel offset of the tile in the image
	Y          int    `json:"y"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	ImageData  string `json:"imageData"`  // Base64 encoded PNG of just this tile
	TileNumber int    `json:"tileNumber"` // Tiles finished so far (1-based)
	TotalTiles int    `json:"totalTiles"` // Total number of tiles in the image
}

// handleRender renders a preset and streams each finished tile over a websocket.
// The render is cancelled when the client goes away.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}
	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	tracer, err := s.newTracer(sceneObj, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.renders.Add(1)
	defer s.renders.Done()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// reader: the client sends nothing, a read error means it hung up
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	events := make(chan Event, 100)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeEvents(conn, events, cancel)
	}()

	renderID := fmt.Sprintf("%s-%d", req.Scene, time.Now().UnixNano())
	logger := NewWebLogger(renderID, events)
	s.runRender(ctx, req, sceneObj, tracer, logger, events)

	close(events)
	<-writerDone
}

// runRender renders the scene and queues tile, error and completion events
func (s *Server) runRender(ctx context.Context, req *RenderRequest, sceneObj *scene.Scene, tracer renderer.RayTracer, logger core.Logger, events chan<- Event) {
	config := renderer.DefaultRenderConfig()
	config.TileSize = req.TileSize

	rt, err := renderer.NewRenderer(sceneObj, tracer, s.pool, config, logger)
	if err != nil {
		send(ctx, events, Event{Type: EventError, Error: err.Error()})
		return
	}

	_, stats, err := rt.Render(ctx, func(result renderer.TileCompletionResult) {
		imageData, err := imageToBase64PNG(result.TileImage)
		if err != nil {
			logger.Printf("Error encoding tile %d,%d: %v\n", result.TileX, result.TileY, err)
			return
		}
		send(ctx, events, Event{Type: EventTile, Tile: &TileUpdate{
			TileX:      result.TileX,
			TileY:      result.TileY,
			X:          result.Bounds.Min.X,
			Y:          result.Bounds.Min.Y,
			Width:      result.Bounds.Dx(),
			Height:     result.Bounds.Dy(),
			ImageData:  imageData,
			TileNumber: result.TileNumber,
			TotalTiles: result.TotalTiles,
		}})
	})
	if err != nil {
		send(ctx, events, Event{Type: EventError, Error: fmt.Sprintf("Render error: %v", err)})
		return
	}

	final := newStats(stats)
	send(ctx, events, Event{Type: EventComplete, Stats: &final})
}

// send queues an event unless the render was cancelled
func send(ctx context.Context, events chan<- Event, event Event) {
	select {
	case events <- event:
	case <-ctx.Done():
	}
}

// writeEvents is the only writer of conn. It drains events until the channel is closed,
// then sends a normal close frame. A failed write cancels the render.
func (s *Server) writeEvents(conn *websocket.Conn, events <-chan Event, cancel context.CancelFunc) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-events:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "render finished"))
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				log.Println("write error:", err)
				cancel()
				// drain until the render closes the channel
				for range events {
				}
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				cancel()
			}
		}
	}
}

// imageToBase64PNG converts a tile image to base64-encoded PNG
func imageToBase64PNG(img *image.RGBA) (string, error) {
	var buf bytes.Buffer
	if err := gg.NewContextForRGBA(img).EncodePNG(&buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

package server

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialRender(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/render?" + query
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		t.Fatalf("Dial: %v (status %d)", err, status)
	}
	return conn
}

func TestHandleRender_StreamsTiles(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t).Handler())
	defer srv.Close()

	conn := dialRender(t, srv, "scene=sphere&width=32&height=24&samples=1&tileSize=16")
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(30 * time.Second))

	var tiles []*TileUpdate
	var complete *Event
	consoleMessages := 0
	for complete == nil {
		var event Event
		if err := conn.ReadJSON(&event); err != nil {
			t.Fatalf("ReadJSON: %v", err)
		}
		switch event.Type {
		case EventTile:
			tiles = append(tiles, event.Tile)
		case EventConsole:
			consoleMessages++
		case EventComplete:
			complete = &event
		case EventError:
			t.Fatalf("Render error: %s", event.Error)
		}
	}

	if len(tiles) != 4 {
		t.Fatalf("Expected 4 tiles, got %d", len(tiles))
	}
	covered := 0
	for i, tile := range tiles {
		if tile.TileNumber != i+1 || tile.TotalTiles != 4 {
			t.Errorf("Expected progress %d/4, got %d/%d", i+1, tile.TileNumber, tile.TotalTiles)
		}
		data, err := base64.StdEncoding.DecodeString(tile.ImageData)
		if err != nil {
			t.Fatalf("Invalid base64: %v", err)
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("Invalid PNG: %v", err)
		}
		if img.Bounds().Dx() != tile.Width || img.Bounds().Dy() != tile.Height {
			t.Errorf("Tile image %v does not match %dx%d", img.Bounds(), tile.Width, tile.Height)
		}
		covered += tile.Width * tile.Height
	}
	if covered != 32*24 {
		t.Errorf("Expected tiles to cover %d pixels, got %d", 32*24, covered)
	}

	if complete.Stats == nil || complete.Stats.TotalPixels != 32*24 || complete.Stats.TotalSamples != 32*24 {
		t.Errorf("Unexpected completion stats %+v", complete.Stats)
	}
	if consoleMessages == 0 {
		t.Error("Expected console messages from the renderer")
	}

	// The server closes the stream once the render is done
	_, _, err := conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Errorf("Expected a normal close, got %v", err)
	}
}

func TestHandleRender_RejectsBadRequests(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t).Handler())
	defer srv.Close()

	for _, query := range []string{"scene=nope", "width=1", "maxLevel=0"} {
		resp, err := http.Get(srv.URL + "/api/render?" + query)
		if err != nil {
			t.Fatalf("GET: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", query, resp.StatusCode)
		}
	}
}

func TestHandleRender_ClientHangUp(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t).Handler())
	defer srv.Close()

	// A large render the client abandons after the first message
	conn := dialRender(t, srv, "scene=complex&width=800&height=800&samples=16&tileSize=8")
	_ = conn.SetReadDeadline(time.Now().Add(30 * time.Second))
	var event Event
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	conn.Close()

	// The server must stay responsive once the render is cancelled
	resp, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}
}

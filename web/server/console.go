package server

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements core.Logger by forwarding messages to a render's event stream
type WebLogger struct {
	renderID string
	events   chan<- Event
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, events chan<- Event) core.Logger {
	return &WebLogger{
		renderID: renderID,
		events:   events,
	}
}

// Printf implements core.Logger. Messages are dropped rather than block the render
// when the stream is backed up.
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	log.Printf("[%s] %s", wl.renderID, strings.TrimRight(message, "\n"))

	if wl.events == nil {
		return
	}
	select {
	case wl.events <- Event{Type: EventConsole, Console: &ConsoleMessage{
		Message:   message,
		Timestamp: time.Now(),
		Level:     levelOf(message),
	}}:
	default:
	}
}

func levelOf(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "error"), strings.Contains(lower, "stopped"):
		return "error"
	case strings.Contains(lower, "warning"):
		return "warning"
	}
	return "info"
}

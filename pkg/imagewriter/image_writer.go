package imagewriter

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/fogleman/gg"
)

// ImageWriter is a named pixel canvas that clamps radiance to displayable 8-bit colors
type ImageWriter struct {
	name string
	nX   int
	nY   int
	dc   *gg.Context
}

// New creates an nX by nY canvas. The name becomes the PNG file name.
func New(name string, nX, nY int) *ImageWriter {
	return &ImageWriter{
		name: name,
		nX:   nX,
		nY:   nY,
		dc:   gg.NewContext(nX, nY),
	}
}

// FromRadiance creates a canvas holding the clamped radiance buffer
func FromRadiance(name string, r *Radiance) *ImageWriter {
	w := New(name, r.Width, r.Height)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			w.WritePixel(x, y, r.At(x, y))
		}
	}
	return w
}

// Nx returns the canvas width
func (w *ImageWriter) Nx() int {
	return w.nX
}

// Ny returns the canvas height
func (w *ImageWriter) Ny() int {
	return w.nY
}

// WritePixel sets pixel (x, y), clamping every channel to [0, 255]
func (w *ImageWriter) WritePixel(x, y int, c core.Color) {
	r, g, b := clamp(c)
	w.dc.SetRGB255(r, g, b)
	w.dc.SetPixel(x, y)
}

// PrintGrid overwrites every interval-th row and column with c
func (w *ImageWriter) PrintGrid(interval int, c core.Color) {
	if interval <= 0 {
		return
	}
	for y := 0; y < w.nY; y++ {
		for x := 0; x < w.nX; x++ {
			if x%interval == 0 || y%interval == 0 {
				w.WritePixel(x, y, c)
			}
		}
	}
}

// Image returns the underlying image
func (w *ImageWriter) Image() image.Image {
	return w.dc.Image()
}

// WriteToImage saves the canvas as dir/<name>.png and returns the file path
func (w *ImageWriter) WriteToImage(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, w.name+".png")
	if err := w.dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", path, err)
	}
	return path, nil
}

// EncodePNG writes the canvas as PNG to out
func (w *ImageWriter) EncodePNG(out io.Writer) error {
	return w.dc.EncodePNG(out)
}

// ToRGBA clamps a radiance color to an opaque 8-bit color
func ToRGBA(c core.Color) color.RGBA {
	r, g, b := clamp(c)
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

func clamp(c core.Color) (int, int, int) {
	return clampChannel(c.R), clampChannel(c.G), clampChannel(c.B)
}

func clampChannel(v float64) int {
	return int(min(255, max(0, v)))
}

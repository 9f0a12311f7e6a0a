package renderer

import (
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of camera rays traced
	AverageSamples float64       // Average samples per pixel
	MinSamples     int           // Minimum samples taken by any pixel
	MaxSamples     int           // Maximum samples taken by any pixel
	Elapsed        time.Duration // Wall time of the render
}

// Merge folds the statistics of another tile into s
func (s *RenderStats) Merge(other RenderStats) {
	if s.TotalPixels == 0 {
		s.MinSamples = other.MinSamples
	} else if other.TotalPixels > 0 {
		s.MinSamples = min(s.MinSamples, other.MinSamples)
	}
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.MaxSamples = max(s.MaxSamples, other.MaxSamples)
	if s.TotalPixels > 0 {
		s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
	}
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Color // RGB accumulator for the final result
	SampleCount int        // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Color) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the average color for this pixel
func (ps *PixelStats) GetColor() core.Color {
	if ps.SampleCount == 0 {
		return core.Black
	}
	return ps.ColorAccum.Reduce(ps.SampleCount)
}

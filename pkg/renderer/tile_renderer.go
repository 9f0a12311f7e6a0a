package renderer

import (
	"context"
	"image"

	"github.com/df07/go-recursive-raytracer/pkg/geometry"
)

// TileRenderer traces the pixels of image regions
type TileRenderer struct {
	camera  *geometry.Camera
	tracer  RayTracer
	width   int
	height  int
	samples int
}

// NewTileRenderer creates a tile renderer for a width x height image
func NewTileRenderer(camera *geometry.Camera, tracer RayTracer, width, height, samples int) *TileRenderer {
	return &TileRenderer{
		camera:  camera,
		tracer:  tracer,
		width:   width,
		height:  height,
		samples: samples,
	}
}

// RenderTileBounds traces every pixel inside bounds into pixelStats, indexed in global image
// coordinates. The context is checked between pixels.
func (tr *TileRenderer) RenderTileBounds(ctx context.Context, bounds image.Rectangle, pixelStats [][]PixelStats) (RenderStats, error) {
	stats := RenderStats{}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			if err := ctx.Err(); err != nil {
				return stats, err
			}

			ps := &pixelStats[j][i]
			for _, ray := range tr.camera.ConstructRays(tr.width, tr.height, i, j, tr.samples) {
				ps.AddSample(tr.tracer.TraceRay(ray))
			}
			stats.Merge(RenderStats{
				TotalPixels:  1,
				TotalSamples: ps.SampleCount,
				MinSamples:   ps.SampleCount,
				MaxSamples:   ps.SampleCount,
			})
		}
	}
	return stats, nil
}

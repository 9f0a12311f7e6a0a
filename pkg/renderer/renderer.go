package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/imagewriter"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderConfig contains configuration for tiled parallel rendering
type RenderConfig struct {
	TileSize int // Size of each square tile in pixels
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize: 32,
	}
}

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}

// TileCompletionResult contains information about a completed tile for callbacks
type TileCompletionResult struct {
	TileX     int // Tile coordinates (not pixel coordinates)
	TileY     int
	Bounds    image.Rectangle // Pixel bounds of the tile in the image
	TileImage *image.RGBA     // Clamped image data for just this tile

	// Progress information
	TileNumber int // Number of tiles finished so far, including this one
	TotalTiles int // Total number of tiles in the image
}

// Renderer renders a scene by fanning its tiles out over a shared worker pool
type Renderer struct {
	scene    *scene.Scene
	tracer   RayTracer
	pool     *WorkerPool
	config   RenderConfig
	sampling scene.SamplingConfig
	tiles    []*Tile
	tiler    *TileRenderer
	logger   core.Logger
}

// NewRenderer validates the scene and prepares the tile grid. The pool is not closed by the renderer.
func NewRenderer(scn *scene.Scene, tracer RayTracer, pool *WorkerPool, config RenderConfig, logger core.Logger) (*Renderer, error) {
	if pool == nil {
		return nil, fmt.Errorf("%w: missing worker pool", ErrInvalidConfig)
	}
	if config.TileSize <= 0 {
		return nil, fmt.Errorf("%w: tile size %d must be positive", ErrInvalidConfig, config.TileSize)
	}
	if err := scn.Validate(); err != nil {
		return nil, err
	}
	camera, err := scn.Camera()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	sampling := scn.SamplingConfig
	return &Renderer{
		scene:    scn,
		tracer:   tracer,
		pool:     pool,
		config:   config,
		sampling: sampling,
		tiles:    NewTileGrid(sampling.Width, sampling.Height, config.TileSize),
		tiler:    NewTileRenderer(camera, tracer, sampling.Width, sampling.Height, sampling.SamplesPerPixel),
		logger:   logger,
	}, nil
}

// TileCount returns the number of tiles in the grid
func (r *Renderer) TileCount() int {
	return len(r.tiles)
}

// Render traces every pixel and returns the unclamped radiance buffer. onTile, when not nil,
// is called from the calling goroutine as tiles finish. Cancelling ctx stops the workers
// between pixels and returns the context error.
func (r *Renderer) Render(ctx context.Context, onTile func(TileCompletionResult)) (*imagewriter.Radiance, RenderStats, error) {
	startTime := time.Now()
	width, height := r.sampling.Width, r.sampling.Height

	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}

	batch := r.pool.newBatch(r.tiler, len(r.tiles))
	r.logger.Printf("Rendering %s at %dx%d, %d samples per pixel (%d tiles, %d workers)...\n",
		r.scene.Name, width, height, r.sampling.SamplesPerPixel, len(r.tiles), r.pool.GetNumWorkers())

	// Tiles are submitted in the background so finished tiles stream while later ones queue
	go func() {
		for i, tile := range r.tiles {
			if ctx.Err() != nil {
				break
			}
			batch.SubmitTask(ctx, TileTask{Tile: tile, TaskID: i, PixelStats: pixelStats})
		}
		batch.Finish()
	}()

	stats := RenderStats{}
	var renderErr error
	finished := 0
	for {
		result, ok := batch.GetResult()
		if !ok {
			break
		}
		finished++
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		stats.Merge(result.Stats)

		if onTile != nil && renderErr == nil {
			tile := r.tiles[result.TaskID]
			onTile(TileCompletionResult{
				TileX:      tile.Bounds.Min.X / r.config.TileSize,
				TileY:      tile.Bounds.Min.Y / r.config.TileSize,
				Bounds:     tile.Bounds,
				TileImage:  extractTileImage(tile.Bounds, pixelStats),
				TileNumber: finished,
				TotalTiles: len(r.tiles),
			})
		}
	}
	// Submission stops early only on cancellation
	if renderErr == nil && finished < len(r.tiles) {
		renderErr = ctx.Err()
	}

	stats.Elapsed = time.Since(startTime)
	if renderErr != nil {
		r.logger.Printf("Rendering %s stopped after %v: %v\n", r.scene.Name, stats.Elapsed, renderErr)
		return nil, stats, renderErr
	}

	radiance := imagewriter.NewRadiance(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			radiance.Set(x, y, pixelStats[y][x].GetColor())
		}
	}

	r.logger.Printf("Rendered %s in %v (%d rays, %.1f per pixel)\n",
		r.scene.Name, stats.Elapsed, stats.TotalSamples, stats.AverageSamples)
	return radiance, stats, nil
}

// extractTileImage copies a finished tile out of the shared pixel stats array
func extractTileImage(bounds image.Rectangle, pixelStats [][]PixelStats) *image.RGBA {
	tileImage := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			tileImage.SetRGBA(x-bounds.Min.X, y-bounds.Min.Y, imagewriter.ToRGBA(pixelStats[y][x].GetColor()))
		}
	}
	return tileImage
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/imagewriter"
	"github.com/df07/go-recursive-raytracer/pkg/loaders"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	Scene    string // Preset ID or path to a YAML scene file
	OutDir   string // Root output directory
	Workers  int    // 0 uses the CPU count
	Width    int    // 0 keeps the scene's value
	Height   int    // 0 keeps the scene's value
	Samples  int    // 0 keeps the scene's value
	TileSize int
	Grid     int    // Grid overlay interval in pixels, 0 disables it
	Radiance string // Radiance dump codec, empty disables the dump
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "sphere", "Built-in scene ID (see -list)")
	sceneFile := flag.String("scene-file", "", "YAML scene description, overrides -scene")
	outDir := flag.String("out", "output", "Output directory")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	width := flag.Int("width", 0, "Image width (0 = scene default)")
	height := flag.Int("height", 0, "Image height (0 = scene default)")
	samples := flag.Int("samples", 0, "Camera rays per pixel (0 = scene default)")
	tileSize := flag.Int("tile", renderer.DefaultRenderConfig().TileSize, "Tile size in pixels")
	grid := flag.Int("grid", 0, "Draw a grid every N pixels over the image (0 = off)")
	radiance := flag.String("radiance", "", "Also dump unclamped radiance: none, zstd or snappy")
	list := flag.Bool("list", false, "List the built-in scenes")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Recursive Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		printScenes()
		fmt.Println()
		fmt.Println("Output will be saved to <out>/<scene>/render_<timestamp>.png")
		return
	}
	if *list {
		printScenes()
		return
	}

	opts := options{
		Scene:    *sceneType,
		OutDir:   *outDir,
		Workers:  *workers,
		Width:    *width,
		Height:   *height,
		Samples:  *samples,
		TileSize: *tileSize,
		Grid:     *grid,
		Radiance: *radiance,
	}
	if *sceneFile != "" {
		opts.Scene = *sceneFile
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := run(ctx, opts, renderer.NewDefaultLogger()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func printScenes() {
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-30s %s\n", info.ID, info.Description)
	}
	fmt.Println("  <file>.yaml                    YAML scene description")
}

// createScene returns a built-in scene with the default tracer settings, or loads a YAML file
// when sceneType names one
func createScene(sceneType string) (*scene.Scene, renderer.TracerConfig, error) {
	lower := strings.ToLower(sceneType)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return loaders.LoadScene(sceneType)
	}

	s, err := scene.CreateScene(sceneType)
	if err != nil {
		return nil, renderer.TracerConfig{}, err
	}
	return s, renderer.DefaultTracerConfig(), nil
}

// run renders one scene and writes the PNG, plus the radiance dump when requested.
// It returns the paths of the written files.
func run(ctx context.Context, opts options, logger core.Logger) ([]string, error) {
	var codec imagewriter.Codec
	if opts.Radiance != "" {
		c, err := imagewriter.ParseCodec(opts.Radiance)
		if err != nil {
			return nil, err
		}
		codec = c
	}

	selectedScene, tracerConfig, err := createScene(opts.Scene)
	if err != nil {
		return nil, err
	}
	selectedScene.SamplingConfig = scene.MergeSamplingConfig(selectedScene.SamplingConfig,
		scene.SamplingConfig{Width: opts.Width, Height: opts.Height, SamplesPerPixel: opts.Samples})

	tracer, err := renderer.NewSimpleRayTracer(selectedScene, tracerConfig)
	if err != nil {
		return nil, err
	}
	if beam := tracer.Config().BeamRays; beam > 1 {
		logger.Printf("Tracing %d levels deep with %d-ray beams\n", tracer.Config().MaxLevel, beam)
	} else {
		logger.Printf("Tracing %d levels deep\n", tracer.Config().MaxLevel)
	}
	pool := renderer.NewWorkerPool(opts.Workers)
	defer pool.Close()

	r, err := renderer.NewRenderer(selectedScene, tracer, pool, renderer.RenderConfig{
		TileSize: opts.TileSize,
	}, logger)
	if err != nil {
		return nil, err
	}

	radiance, stats, err := r.Render(ctx, nil)
	if err != nil {
		return nil, err
	}
	logger.Printf("Samples per pixel: %.1f (range %d - %d)\n", stats.AverageSamples, stats.MinSamples, stats.MaxSamples)

	// Create output directory for this scene
	outputDir := filepath.Join(opts.OutDir, selectedScene.Name)
	name := fmt.Sprintf("render_%s", time.Now().Format("20060102_150405"))

	writer := imagewriter.FromRadiance(name, radiance)
	if opts.Grid > 0 {
		writer.PrintGrid(opts.Grid, core.NewColor(255, 255, 255))
	}
	imagePath, err := writer.WriteToImage(outputDir)
	if err != nil {
		return nil, err
	}
	logger.Printf("Render saved as %s\n", imagePath)
	written := []string{imagePath}

	if codec != "" {
		radiancePath := filepath.Join(outputDir, name+".rgbf")
		if err := writeRadianceFile(radiancePath, radiance, codec); err != nil {
			return written, err
		}
		logger.Printf("Radiance saved as %s (%s)\n", radiancePath, codec)
		written = append(written, radiancePath)
	}
	return written, nil
}

func writeRadianceFile(path string, radiance *imagewriter.Radiance, codec imagewriter.Codec) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	if err := imagewriter.WriteRadiance(file, radiance, codec); err != nil {
		file.Close()
		return fmt.Errorf("error writing radiance: %w", err)
	}
	return file.Close()
}

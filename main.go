package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/scatterlab/go-wavefront-tracer/pkg/renderer"
	"github.com/scatterlab/go-wavefront-tracer/pkg/scene"
)

func main() {
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 225, "Image height in pixels")
	samples := flag.Int("samples", 64, "Samples per pixel (passes)")
	bounces := flag.Int("bounces", 8, "Maximum bounces per path")
	seed := flag.Int64("seed", 42, "Frame seed (renders are reproducible per seed)")
	workers := flag.Int("workers", 0, "Worker goroutines (0 = NumCPU)")
	output := flag.String("output", "output/render.png", "Output PNG path")
	flag.Parse()

	cfg := renderer.Config{
		Width:           *width,
		Height:          *height,
		SamplesPerPixel: *samples,
		MaxBounces:      *bounces,
		Seed:            *seed,
		Workers:         *workers,
	}

	log.Printf("Rendering %dx%d, %d samples, %d bounces",
		cfg.Width, cfg.Height, cfg.SamplesPerPixel, cfg.MaxBounces)

	r := renderer.NewRenderer(scene.NewDefaultScene(), cfg)
	img := r.RenderProgressive(func(_ *image.RGBA, stats renderer.PassStats) {
		log.Printf("Pass %d/%d: %d rays in %dms",
			stats.Pass, stats.TotalPasses, stats.Rays, stats.ElapsedMs)
	})

	if err := saveImage(*output, img); err != nil {
		log.Fatalf("Failed to save image: %v", err)
	}
	log.Printf("Saved %s", *output)
}

func saveImage(path string, img *image.RGBA) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

package renderer

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/scatterlab/go-wavefront-tracer/pkg/core"
	"github.com/scatterlab/go-wavefront-tracer/pkg/geometry"
	"github.com/scatterlab/go-wavefront-tracer/pkg/material"
	"github.com/scatterlab/go-wavefront-tracer/pkg/scene"
	"github.com/scatterlab/go-wavefront-tracer/pkg/wavefront"
)

// Intersection range for secondary rays. The lower bound works together with
// the scatter origin bias to keep paths off the surface they just left.
const (
	hitTMin = 1e-3
	hitTMax = 1e4
)

// Config controls a render.
type Config struct {
	Width           int
	Height          int
	SamplesPerPixel int   // passes; one path per pixel per pass
	MaxBounces      int   // bounce budget per path
	Seed            int64 // frame seed; fixing it makes renders bit-reproducible
	Workers         int   // goroutines for per-segment work; 0 means NumCPU
}

// PassStats summarizes one completed pass.
type PassStats struct {
	Pass        int // 1-based
	TotalPasses int
	Rays        int64 // scatter invocations this pass
	ElapsedMs   int64
}

// Renderer drives the wavefront loop: spawn one segment per pixel, then
// repeatedly intersect, scatter and compact until every path has terminated
// or run out of bounces.
type Renderer struct {
	scene  *scene.Scene
	camera *Camera
	config Config
	pool   *wavefront.Pool
}

// NewRenderer creates a renderer for the given scene and config.
func NewRenderer(s *scene.Scene, config Config) *Renderer {
	return &Renderer{
		scene:  s,
		camera: NewCamera(config.Width, config.Height),
		config: config,
		pool:   wavefront.NewPool(config.Workers),
	}
}

// Render runs all passes and returns the final image.
func (r *Renderer) Render() *image.RGBA {
	return r.RenderProgressive(nil)
}

// RenderProgressive runs all passes, invoking onPass with a snapshot image
// after each one. The result is independent of the worker count and
// bit-reproducible for a fixed seed.
func (r *Renderer) RenderProgressive(onPass func(img *image.RGBA, stats PassStats)) *image.RGBA {
	width, height := r.config.Width, r.config.Height
	frame := make([]core.Vec3, width*height)

	var img *image.RGBA
	for pass := 0; pass < r.config.SamplesPerPixel; pass++ {
		start := time.Now()
		rays := r.renderPass(frame, pass)

		img = r.toImage(frame, pass+1)
		if onPass != nil {
			onPass(img, PassStats{
				Pass:        pass + 1,
				TotalPasses: r.config.SamplesPerPixel,
				Rays:        rays,
				ElapsedMs:   time.Since(start).Milliseconds(),
			})
		}
	}
	if img == nil {
		img = r.toImage(frame, 1)
	}
	return img
}

// renderPass traces one path per pixel and accumulates radiance into frame.
func (r *Renderer) renderPass(frame []core.Vec3, pass int) int64 {
	width, height := r.config.Width, r.config.Height
	passSeed := r.config.Seed + int64(pass)

	// Spawn one segment per pixel with a jittered camera ray. Bounce index 0
	// is reserved for the camera sample; scatter at bounce b draws from b+1.
	segs := make([]wavefront.PathSegment, width*height)
	r.pool.Each(len(segs), func(i int) {
		sampler := core.NewPathSampler(passSeed, i, 0)
		u := sampler.Get2D()
		x, y := i%width, i/width
		s := (float64(x) + u.X) / float64(width)
		t := (float64(height-1-y) + u.Y) / float64(height)
		segs[i] = wavefront.NewPathSegment(r.camera.GetRay(s, t), i, r.config.MaxBounces)
	})

	var rays int64
	for bounce := 0; len(segs) > 0 && bounce < r.config.MaxBounces; bounce++ {
		rays += int64(len(segs))

		// One invocation per segment. Every segment maps to a distinct
		// pixel, so the frame writes below cannot race.
		r.pool.Each(len(segs), func(i int) {
			seg := &segs[i]
			isect, ok := geometry.HitClosest(r.scene.Shapes, seg.Ray, hitTMin, hitTMax)
			if !ok {
				// Escaped the scene: no background contribution.
				seg.Terminate()
				return
			}

			sampler := core.NewPathSampler(passSeed, seg.PixelIndex, bounce+1)
			wavefront.Scatter(seg, isect.Point, isect.Normal, isect.Material, sampler)

			// Segments in the slice were active at the top of the bounce,
			// so a terminated one hit an emitter just now.
			if seg.Terminated {
				if emitter, ok := isect.Material.(material.Emitter); ok {
					frame[seg.PixelIndex] = frame[seg.PixelIndex].
						Add(seg.Throughput.MultiplyVec(emitter.Emit()))
				}
			}
		})

		segs = wavefront.Compact(segs)
	}
	return rays
}

// toImage averages the accumulated frame over the passes so far and encodes
// it with gamma 2.0.
func (r *Renderer) toImage(frame []core.Vec3, passes int) *image.RGBA {
	width, height := r.config.Width, r.config.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scale := 1.0 / float64(passes)
	for i, c := range frame {
		avg := c.Multiply(scale).Clamp(0, 1)
		img.SetRGBA(i%width, i/width, color.RGBA{
			R: uint8(255.99 * math.Sqrt(avg.X)),
			G: uint8(255.99 * math.Sqrt(avg.Y)),
			B: uint8(255.99 * math.Sqrt(avg.Z)),
			A: 255,
		})
	}
	return img
}

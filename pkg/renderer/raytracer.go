package renderer

import (
	"fmt"
	"math"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// reflectionEpsilon is the minimum t for reflection rays, keeping them
// from re-intersecting the surface they leave
const reflectionEpsilon = 1e-7

// RenderConfig contains rendering configuration
type RenderConfig struct {
	MaxDepth   int // Maximum mirror recursion depth
	NumWorkers int // Scanline workers: 1 = sequential, 0 = use CPU count
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		MaxDepth:   4,
		NumWorkers: 1,
	}
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Raytracer renders a scene through a camera with Whitted-style
// recursive shading: direct Blinn-Phong lighting with shadows plus
// depth-bounded mirror reflection
type Raytracer struct {
	scene  *scene.Scene
	camera *Camera
	width  int
	height int
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer for the given scene and camera
func NewRaytracer(s *scene.Scene, camera *Camera, width, height int, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}
	if config.MaxDepth < 0 {
		return nil, fmt.Errorf("invalid max depth %d", config.MaxDepth)
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		scene:  s,
		camera: camera,
		width:  width,
		height: height,
		config: config,
		logger: logger,
	}, nil
}

// Shade computes the color seen along a ray. hit is the ray's scene
// intersection, or nil when the ray missed and the background shows.
// Mirror recursion proceeds only while depth < MaxDepth; at the bound
// the reflection term is zero and no further rays are cast.
func (rt *Raytracer) Shade(ray core.Ray, hit *material.HitRecord, depth int) core.Vec3 {
	if hit == nil {
		return rt.scene.Background
	}

	var color core.Vec3

	if depth < rt.config.MaxDepth {
		d := ray.Direction
		n := hit.Normal
		mirrorDir := d.Subtract(n.Multiply(2 * d.Dot(n)))
		mirrorRay := core.NewBoundedRay(hit.Point, mirrorDir, reflectionEpsilon, math.Inf(1))

		if mirrorHit, ok := rt.scene.Intersect(mirrorRay); ok {
			color = color.Add(hit.Material.Mirror.MultiplyVec(rt.Shade(mirrorRay, mirrorHit, depth+1)))
		} else {
			color = color.Add(hit.Material.Mirror.MultiplyVec(rt.scene.Background))
		}
	}

	for _, light := range rt.scene.Lights {
		color = color.Add(light.Illuminate(ray, hit, rt.scene))
	}

	return color
}

// RenderImage renders the full frame, one sample per pixel center, and
// returns the unclamped float framebuffer with row 0 at the bottom
func (rt *Raytracer) RenderImage() *Image {
	img := NewImage(rt.width, rt.height)

	start := time.Now()
	if rt.config.NumWorkers == 1 {
		rt.renderRows(img, 0, rt.height)
	} else {
		rt.renderParallel(img)
	}
	rt.logger.Printf("Rendered %dx%d in %v\n", rt.width, rt.height, time.Since(start))

	return img
}

// renderRows renders scanlines y in [yMin, yMax) into the shared image.
// Rows are disjoint between callers, so concurrent use needs no locking.
func (rt *Raytracer) renderRows(img *Image, yMin, yMax int) {
	for y := yMin; y < yMax; y++ {
		for x := 0; x < rt.width; x++ {
			u := (float64(x) + 0.5) / float64(rt.width)
			v := (float64(y) + 0.5) / float64(rt.height)

			ray := rt.camera.GenerateRay(u, v)
			hit, _ := rt.scene.Intersect(ray)
			img.Set(x, y, rt.Shade(ray, hit, 0))
		}
	}
}

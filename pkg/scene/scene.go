package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Scene contains the surfaces and lights to render plus the background
// color seen where no surface appears. Surface order does not affect
// correctness, only which surface wins an exact t tie.
type Scene struct {
	Surfaces   []geometry.Surface
	Lights     []lights.Light
	Background core.Vec3
}

// DefaultBackground is the background color used when none is specified
var DefaultBackground = core.NewVec3(0.2, 0.3, 0.5)

// NewScene creates an empty scene with the given background color
func NewScene(background core.Vec3) *Scene {
	return &Scene{
		Surfaces:   make([]geometry.Surface, 0),
		Lights:     make([]lights.Light, 0),
		Background: background,
	}
}

// Add appends surfaces to the scene
func (s *Scene) Add(surfaces ...geometry.Surface) {
	s.Surfaces = append(s.Surfaces, surfaces...)
}

// AddLight appends lights to the scene
func (s *Scene) AddLight(ls ...lights.Light) {
	s.Lights = append(s.Lights, ls...)
}

// Intersect computes the first (smallest t) intersection between the ray
// and the scene by linear scan over all surfaces. The closest hit is
// selected by strict t comparison, so ties keep the earlier surface.
func (s *Scene) Intersect(ray core.Ray) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestT := math.Inf(1)

	for _, surface := range s.Surfaces {
		if hit, ok := surface.Intersect(ray); ok && hit.T < closestT {
			closestT = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}

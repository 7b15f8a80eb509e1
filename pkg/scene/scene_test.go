package scene

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestScene_Intersect_ClosestHit(t *testing.T) {
	matNear := material.NewMaterial(core.NewVec3(1, 0, 0))
	matFar := material.NewMaterial(core.NewVec3(0, 1, 0))

	// Two overlapping spheres along the ray; the near one is hit first
	near := geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, matNear)
	far := geometry.NewSphere(core.NewVec3(0, 0, -1), 1.0, matFar)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	orderings := [][]geometry.Surface{
		{near, far},
		{far, near},
	}

	for _, surfaces := range orderings {
		s := NewScene(DefaultBackground)
		s.Add(surfaces...)

		hit, ok := s.Intersect(ray)
		if !ok {
			t.Fatal("Expected hit, got miss")
		}
		if math.Abs(hit.T-4.0) > 1e-9 {
			t.Errorf("Expected closest hit at t=4, got t=%f", hit.T)
		}
		if hit.Material != matNear {
			t.Error("Expected the nearer sphere's material regardless of list order")
		}
	}
}

func TestScene_Intersect_TieKeepsFirst(t *testing.T) {
	matFirst := material.NewMaterial(core.NewVec3(1, 0, 0))
	matSecond := material.NewMaterial(core.NewVec3(0, 1, 0))

	// Identical geometry: equal t values tie-break to list order
	s := NewScene(DefaultBackground)
	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, matFirst),
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, matSecond),
	)

	hit, ok := s.Intersect(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)))
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	if hit.Material != matFirst {
		t.Error("Expected equal-t tie to keep the first surface in list order")
	}
}

func TestScene_Intersect_Miss(t *testing.T) {
	s := NewScene(DefaultBackground)
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, material.NewMaterial(core.NewVec3(1, 1, 1))))

	if hit, ok := s.Intersect(core.NewRay(core.NewVec3(0, 5, 5), core.NewVec3(0, 0, -1))); ok {
		t.Errorf("Expected miss, got hit at t=%f", hit.T)
	}

	// Empty scene always misses
	empty := NewScene(DefaultBackground)
	if _, ok := empty.Intersect(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))); ok {
		t.Error("Expected miss in empty scene")
	}
}

func TestScene_Intersect_RespectsRayInterval(t *testing.T) {
	s := NewScene(DefaultBackground)
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, material.NewMaterial(core.NewVec3(1, 1, 1))))

	// Sphere is at t in [4, 6]; a shadow-style interval excludes it
	ray := core.NewBoundedRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 1e-6, 1)
	if _, ok := s.Intersect(ray); ok {
		t.Error("Expected bounded ray to miss the sphere beyond tMax")
	}
}

func TestNewSnowmanScene(t *testing.T) {
	s := NewSnowmanScene()

	if len(s.Surfaces) != 8 {
		t.Errorf("Expected 8 spheres, got %d", len(s.Surfaces))
	}
	if len(s.Lights) != 2 {
		t.Errorf("Expected 2 lights, got %d", len(s.Lights))
	}
	if s.Background != DefaultBackground {
		t.Errorf("Expected default background, got %v", s.Background)
	}

	// A ray aimed at the snowman's torso hits something
	ray := core.NewRay(core.NewVec3(3, 1, 5), core.NewVec3(0, -0.32, 0).Subtract(core.NewVec3(3, 1, 5)))
	if _, ok := s.Intersect(ray); !ok {
		t.Error("Expected ray toward the torso to hit")
	}
}

func TestNewMirrorBoxScene(t *testing.T) {
	s := NewMirrorBoxScene()

	// Two walls of two triangles each, plus two spheres
	if len(s.Surfaces) != 6 {
		t.Errorf("Expected 6 surfaces, got %d", len(s.Surfaces))
	}

	// A ray straight down the box axis hits the center sphere first
	ray := core.NewRay(core.NewVec3(0, 0, 1.5), core.NewVec3(0, 0, -1))
	hit, ok := s.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit along the box axis")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected the sphere at t=1, got t=%f", hit.T)
	}
}

func TestNewMirrorWall_Normals(t *testing.T) {
	mat := material.NewMaterial(core.NewVec3(1, 1, 1))
	wall := NewMirrorWall(core.NewVec3(0, 0, -2), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), 4, mat)

	if len(wall) != 2 {
		t.Fatalf("Expected 2 triangles, got %d", len(wall))
	}

	expected := core.NewVec3(0, 0, 1) // right × up
	for i, surf := range wall {
		tri := surf.(*geometry.Triangle)
		if tri.Normal().Subtract(expected).Length() > 1e-12 {
			t.Errorf("Triangle %d: expected normal %v, got %v", i, expected, tri.Normal())
		}
	}
}

package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func testCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 1),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 2.0,
	}
}

func TestCamera_GenerateRay_Center(t *testing.T) {
	camera := NewCamera(testCameraConfig())

	ray := camera.GenerateRay(0.5, 0.5)

	if ray.Origin != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected ray origin at the eye, got %v", ray.Origin)
	}

	// The center ray points at the look-at target with magnitude projDist
	expected := core.NewVec3(0, 0, -1)
	if ray.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected center direction %v, got %v", expected, ray.Direction)
	}
}

func TestCamera_GenerateRay_Corners(t *testing.T) {
	camera := NewCamera(testCameraConfig())

	// vfov 90° and projDist 1 give an image plane of height 2, width 4
	tests := []struct {
		name     string
		i, j     float64
		expected core.Vec3
	}{
		{"lower left", 0, 0, core.NewVec3(-2, -1, -1)},
		{"lower right", 1, 0, core.NewVec3(2, -1, -1)},
		{"upper left", 0, 1, core.NewVec3(-2, 1, -1)},
		{"upper right", 1, 1, core.NewVec3(2, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GenerateRay(tt.i, tt.j)
			if ray.Direction.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
		})
	}
}

func TestCamera_GenerateRay_UnnormalizedMagnitude(t *testing.T) {
	// Directions carry the projection distance; downstream t values
	// depend on this magnitude being preserved
	config := testCameraConfig()
	config.Center = core.NewVec3(0, 0, 5)
	camera := NewCamera(config)

	ray := camera.GenerateRay(0.5, 0.5)
	if math.Abs(ray.Direction.Length()-5) > 1e-9 {
		t.Errorf("Expected direction magnitude 5, got %f", ray.Direction.Length())
	}

	expected := config.LookAt.Subtract(config.Center)
	if ray.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected center ray toward look-at point, got %v", ray.Direction)
	}
}

func TestCamera_GenerateRay_DefaultInterval(t *testing.T) {
	camera := NewCamera(testCameraConfig())

	ray := camera.GenerateRay(0.25, 0.75)
	if ray.TMin != 0 || !math.IsInf(ray.TMax, 1) {
		t.Errorf("Expected camera rays valid over [0, +Inf), got [%f, %f]", ray.TMin, ray.TMax)
	}
}

func TestCamera_Basis_OffAxisView(t *testing.T) {
	config := CameraConfig{
		Center:      core.NewVec3(3, 1, 5),
		LookAt:      core.NewVec3(0, -0.4, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        24,
		AspectRatio: 16.0 / 9.0,
	}
	camera := NewCamera(config)

	ray := camera.GenerateRay(0.5, 0.5)
	expected := config.LookAt.Subtract(config.Center)
	if ray.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected center ray %v, got %v", expected, ray.Direction)
	}

	// Horizontal steps move perpendicular to both view axis and world up
	right := camera.GenerateRay(1, 0.5).Direction.Subtract(ray.Direction)
	if math.Abs(right.Dot(expected)) > 1e-9 {
		t.Errorf("Expected horizontal offset perpendicular to view axis, dot=%g", right.Dot(expected))
	}
	if math.Abs(right.Dot(config.Up)) > 1e-9 {
		t.Errorf("Expected horizontal offset perpendicular to up, dot=%g", right.Dot(config.Up))
	}
}

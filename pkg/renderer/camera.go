package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CameraConfig contains camera configuration
type CameraConfig struct {
	Center      core.Vec3 // Camera position (eye point)
	LookAt      core.Vec3 // Point that appears centered in the view
	Up          core.Vec3 // Direction that appears straight up in the view
	VFov        float64   // Full vertical field of view in degrees, in (0, 180)
	AspectRatio float64   // Width / height of the view
}

// Camera maps normalized image coordinates to world-space rays.
// The image plane sits at the look-at point, so generated ray directions
// carry the projection distance as their magnitude and are deliberately
// not normalized.
type Camera struct {
	eye      core.Vec3
	u, v, w  core.Vec3 // Right, up, and backward basis vectors
	projDist float64   // Distance from eye to the image plane
	width    float64   // World-space width of the image plane
	height   float64   // World-space height of the image plane
}

// NewCamera creates a camera from the given configuration. Up must not be
// parallel to the viewing axis; this is a caller precondition.
func NewCamera(config CameraConfig) *Camera {
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	projDist := config.LookAt.Subtract(config.Center).Length()
	vfov := config.VFov * math.Pi / 180
	height := 2 * projDist * math.Tan(vfov/2)

	return &Camera{
		eye:      config.Center,
		u:        u,
		v:        v,
		w:        w,
		projDist: projDist,
		width:    config.AspectRatio * height,
		height:   height,
	}
}

// GenerateRay computes the ray for image point (i, j) in [0,1]², where
// (0, 0) is the lower-left corner and (1, 1) the upper-right
func (c *Camera) GenerateRay(i, j float64) core.Ray {
	uOff := i*c.width - c.width/2
	vOff := j*c.height - c.height/2

	direction := c.w.Multiply(-c.projDist).
		Add(c.u.Multiply(uOff)).
		Add(c.v.Multiply(vOff))

	return core.NewRay(c.eye, direction)
}

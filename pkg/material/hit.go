package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// HitRecord contains information about a ray-surface intersection.
// Normal is the outward-facing geometric unit normal; it is never
// flipped toward the ray, since shading clamps against it.
type HitRecord struct {
	T        float64   // Parameter t along the ray
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Outward unit normal at the intersection
	Material *Material // Material of the hit surface
}

package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// shadowEpsilon offsets shadow rays off the surface to avoid
// self-intersection (shadow acne)
const shadowEpsilon = 1e-6

// PointLight is an isotropic point source with inverse-square falloff
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// NewPointLight creates a point light at the given position
func NewPointLight(position, intensity core.Vec3) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

// Illuminate computes the Blinn-Phong contribution of this light at the
// hit point, or zero when an occluder lies between the point and the light.
// The shadow ray direction is the full unnormalized vector to the light,
// so t is measured in fractions of the light distance and the valid
// interval (ε, 1) spans exactly the gap between surface and source.
func (l *PointLight) Illuminate(ray core.Ray, hit *material.HitRecord, world Occluder) core.Vec3 {
	toLight := l.Position.Subtract(hit.Point)

	shadowRay := core.NewBoundedRay(hit.Point, toLight, shadowEpsilon, 1)
	if _, occluded := world.Intersect(shadowRay); occluded {
		return core.Vec3{}
	}

	distSquared := toLight.LengthSquared()
	lightDir := toLight.Multiply(1 / math.Sqrt(distSquared))
	viewDir := ray.Direction.Normalize().Negate()
	halfDir := viewDir.Add(lightDir).Normalize()

	nDotL := math.Max(0, hit.Normal.Dot(lightDir))
	nDotH := math.Max(0, hit.Normal.Dot(halfDir))

	// (k_d·max(0,N·L) + k_s·max(0,N·H)^p) / dist² · intensity
	diffuse := hit.Material.Diffuse.Multiply(nDotL)
	specular := hit.Material.Specular.Multiply(math.Pow(nDotH, hit.Material.Shininess))
	return diffuse.Add(specular).
		Multiply(1 / distSquared).
		MultiplyVec(l.Intensity)
}

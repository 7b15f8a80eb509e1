package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// AmbientLight contributes a constant term with no shadowing
type AmbientLight struct {
	Intensity core.Vec3
}

// NewAmbientLight creates an ambient light with the given intensity
func NewAmbientLight(intensity core.Vec3) *AmbientLight {
	return &AmbientLight{Intensity: intensity}
}

// NewUniformAmbientLight creates an ambient light with a scalar intensity
func NewUniformAmbientLight(intensity float64) *AmbientLight {
	return &AmbientLight{Intensity: core.NewVec3(intensity, intensity, intensity)}
}

// Illuminate returns the material's ambient reflectance scaled by the
// light intensity, unconditionally
func (l *AmbientLight) Illuminate(_ core.Ray, hit *material.HitRecord, _ Occluder) core.Vec3 {
	return hit.Material.Ambient.MultiplyVec(l.Intensity)
}

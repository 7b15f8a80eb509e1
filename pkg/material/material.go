package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material holds the Blinn-Phong shading coefficients for a surface.
// Materials are immutable after construction and shared by pointer
// across many surfaces. Scalar coefficients from scene descriptions
// map to uniform vectors.
type Material struct {
	Diffuse   core.Vec3 // Diffuse reflectance per channel
	Specular  core.Vec3 // Specular reflectance per channel
	Shininess float64   // Specular exponent
	Mirror    core.Vec3 // Mirror reflection coefficient, [0,1] per channel
	Ambient   core.Vec3 // Ambient reflectance, defaults to Diffuse
}

// NewMaterial creates a matte material with the given diffuse color,
// no specular highlight, no mirror reflection, and ambient matching diffuse
func NewMaterial(diffuse core.Vec3) *Material {
	return &Material{
		Diffuse:   diffuse,
		Shininess: 20,
		Ambient:   diffuse,
	}
}

// NewMirrorMaterial creates a matte material with a uniform mirror coefficient
func NewMirrorMaterial(diffuse core.Vec3, mirror float64) *Material {
	m := NewMaterial(diffuse)
	m.Mirror = core.NewVec3(mirror, mirror, mirror)
	return m
}

// NewShinyMaterial creates a material with uniform specular and mirror
// coefficients and the given specular exponent
func NewShinyMaterial(diffuse core.Vec3, specular, shininess, mirror float64) *Material {
	m := NewMaterial(diffuse)
	m.Specular = core.NewVec3(specular, specular, specular)
	m.Shininess = shininess
	m.Mirror = core.NewVec3(mirror, mirror, mirror)
	return m
}

package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewSnowmanScene creates a snowman built from spheres standing on a
// large ground sphere, lit by one point light and a weak ambient term
func NewSnowmanScene() *Scene {
	white := material.NewMirrorMaterial(core.NewVec3(1.0, 1.0, 1.0), 0.4)
	black := material.NewMaterial(core.NewVec3(0.0, 0.0, 0.0))
	orange := material.NewMaterial(core.NewVec3(0.8, 0.393, 0.0))
	red := material.NewMirrorMaterial(core.NewVec3(1.0, 0.05, 0.05), 0.2)

	s := NewScene(DefaultBackground)

	// Body spheres from bottom to top, then the hat and face details,
	// standing on a large ground sphere
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1, 0), 0.45, white),
		geometry.NewSphere(core.NewVec3(0, -0.32, 0), 0.35, white),
		geometry.NewSphere(core.NewVec3(0, 0.2, 0), 0.26, white),
		geometry.NewSphere(core.NewVec3(0, 0.4, 0), 0.2, red),
		geometry.NewSphere(core.NewVec3(0.2, 0.2, 0.2), 0.05, orange),
		geometry.NewSphere(core.NewVec3(0.06, 0.27, 0.28), 0.042, black),
		geometry.NewSphere(core.NewVec3(0.25, 0.27, 0.1), 0.042, black),
		geometry.NewSphere(core.NewVec3(0, -41, 0), 39.7, white),
	)

	s.AddLight(
		lights.NewPointLight(core.NewVec3(12, 10, 5), core.NewVec3(300, 300, 300)),
		lights.NewUniformAmbientLight(0.1),
	)

	return s
}

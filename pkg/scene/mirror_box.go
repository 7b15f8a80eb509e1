package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewMirrorWall creates a square mirror wall from two triangles. The wall
// is centered at center, spans size along the axes of right and up, and
// winds counter-clockwise when viewed against the composite normal
// right × up.
func NewMirrorWall(center, right, up core.Vec3, size float64, mat *material.Material) []geometry.Surface {
	halfRight := right.Multiply(size / 2)
	halfUp := up.Multiply(size / 2)

	ll := center.Subtract(halfRight).Subtract(halfUp)
	lr := center.Add(halfRight).Subtract(halfUp)
	ul := center.Subtract(halfRight).Add(halfUp)
	ur := center.Add(halfRight).Add(halfUp)

	return []geometry.Surface{
		geometry.NewTriangle(ll, lr, ur, mat),
		geometry.NewTriangle(ll, ur, ul, mat),
	}
}

// NewMirrorBoxScene creates two large parallel mirror walls facing each
// other with a shiny sphere between them. Reflections of reflections
// exercise the shading recursion up to its depth bound.
func NewMirrorBoxScene() *Scene {
	mirror := material.NewShinyMaterial(core.NewVec3(0.2, 0.2, 0.2), 0.2, 50, 0.9)
	red := material.NewShinyMaterial(core.NewVec3(1.0, 0.05, 0.05), 0.3, 90, 0.3)
	gray := material.NewMaterial(core.NewVec3(0.4, 0.4, 0.4))

	s := NewScene(DefaultBackground)

	right := core.NewVec3(1, 0, 0)
	up := core.NewVec3(0, 1, 0)
	s.Add(NewMirrorWall(core.NewVec3(0, 0, -2), right, up, 6, mirror)...)
	s.Add(NewMirrorWall(core.NewVec3(0, 0, 2), right, up, 6, mirror)...)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 0.5, red),
		geometry.NewSphere(core.NewVec3(0, -40.5, 0), 40, gray), // ground
	)

	s.AddLight(
		lights.NewPointLight(core.NewVec3(1.5, 1.8, 0), core.NewVec3(40, 40, 40)),
		lights.NewUniformAmbientLight(0.08),
	)

	return s
}

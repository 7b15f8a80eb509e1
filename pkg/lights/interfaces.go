package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Occluder answers shadow-ray queries. *scene.Scene satisfies this;
// defining it here avoids an import cycle between lights and scene.
type Occluder interface {
	Intersect(ray core.Ray) (*material.HitRecord, bool)
}

// Light interface for sources that contribute to surface shading
type Light interface {
	// Illuminate computes the light reflected from the surface at hit
	// toward the viewer of ray. world is consulted for shadow rays.
	Illuminate(ray core.Ray, hit *material.HitRecord, world Occluder) core.Vec3
}

package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Surface interface for objects that can be intersected by rays.
// Intersect returns the closest hit within the ray's [TMin, TMax]
// interval, or (nil, false) when the ray misses.
type Surface interface {
	Intersect(ray core.Ray) (*material.HitRecord, bool)
}

package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Triangle represents a single flat-shaded triangle. Vertices are in
// counter-clockwise winding, which defines the outward normal via the
// right-hand rule. Degenerate (zero-area) triangles are a caller error.
type Triangle struct {
	V0, V1, V2 core.Vec3
	Material   *material.Material
	normal     core.Vec3 // Cached face normal
}

// NewTriangle creates a new triangle from three CCW vertices
func NewTriangle(v0, v1, v2 core.Vec3, mat *material.Material) *Triangle {
	t := &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: mat,
	}
	t.computeNormal()
	return t
}

// computeNormal calculates and caches the triangle's face normal
func (t *Triangle) computeNormal() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	t.normal = edge1.Cross(edge2).Normalize()
}

// Normal returns the triangle's outward face normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Intersect computes the intersection between the ray and this triangle
// using the Möller-Trumbore algorithm. The barycentric coordinates
// (u, v) correspond to the weights of V1 and V2 respectively.
func (t *Triangle) Intersect(ray core.Ray) (*material.HitRecord, bool) {
	const epsilon = 1e-12

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	// Determinant of the Cramer's-rule system
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in (or parallel to) the plane of the triangle
	if a > -epsilon && a < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)

	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)

	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tParam := f * edge2.Dot(q)

	if tParam < ray.TMin || tParam > ray.TMax {
		return nil, false
	}

	return &material.HitRecord{
		T:        tParam,
		Point:    ray.At(tParam),
		Normal:   t.normal,
		Material: t.Material,
	}, true
}

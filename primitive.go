package sdf

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Primitive is a base shape with a closed-form signed distance
// function, evaluated in the primitive's own local frame. Distances
// are negative inside the shape and positive outside.
type Primitive interface {
	// ValueAtPoint returns the signed distance from p to the surface.
	ValueAtPoint(p mgl32.Vec3) float32
	// Bounds returns the untransformed extent of the primitive.
	Bounds() AABB
}

// Sphere is a sphere of the given radius centered at the origin.
type Sphere struct {
	Radius float32
}

func (s Sphere) ValueAtPoint(p mgl32.Vec3) float32 {
	return p.Len() - s.Radius
}

func (s Sphere) Bounds() AABB {
	return AABB{Min: splat(-s.Radius), Max: splat(s.Radius)}
}

// Box is an axis-aligned box given by its half extents.
type Box struct {
	HalfExtents mgl32.Vec3
}

func (b Box) ValueAtPoint(p mgl32.Vec3) float32 {
	q := mgl32.Vec3{
		math32.Abs(p.X()) - b.HalfExtents.X(),
		math32.Abs(p.Y()) - b.HalfExtents.Y(),
		math32.Abs(p.Z()) - b.HalfExtents.Z(),
	}
	// Exact distance to the nearest face: positive part outside,
	// negative depth when fully inside.
	outside := maxVec(q, mgl32.Vec3{}).Len()
	inside := math32.Min(math32.Max(q.X(), math32.Max(q.Y(), q.Z())), 0)
	return outside + inside
}

func (b Box) Bounds() AABB {
	return AABB{Min: b.HalfExtents.Mul(-1), Max: b.HalfExtents}
}

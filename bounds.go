package sdf

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned bounding box, Min <= Max component-wise for
// any box with volume. The zero value is the canonical empty box.
// Intersections of disjoint bounds produce an inverted box (Min > Max
// on at least one axis); that encodes "no volume" and is left as-is.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

func (b AABB) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

func (b AABB) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// MaxExtent returns the largest edge length of the box.
func (b AABB) MaxExtent() float32 {
	s := b.Size()
	return math32.Max(s.X(), math32.Max(s.Y(), s.Z()))
}

// Corners returns the eight corners of the box.
func (b AABB) Corners() [8]mgl32.Vec3 {
	return [8]mgl32.Vec3{
		{b.Min.X(), b.Min.Y(), b.Min.Z()},
		{b.Max.X(), b.Min.Y(), b.Min.Z()},
		{b.Min.X(), b.Max.Y(), b.Min.Z()},
		{b.Max.X(), b.Max.Y(), b.Min.Z()},
		{b.Min.X(), b.Min.Y(), b.Max.Z()},
		{b.Max.X(), b.Min.Y(), b.Max.Z()},
		{b.Min.X(), b.Max.Y(), b.Max.Z()},
		{b.Max.X(), b.Max.Y(), b.Max.Z()},
	}
}

// hullOf returns the tightest box containing all points. Rotation can
// flip corner ordering, so results of transformed corners must go
// through this re-normalization.
func hullOf(points ...mgl32.Vec3) AABB {
	hull := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		hull.Min = minVec(hull.Min, p)
		hull.Max = maxVec(hull.Max, p)
	}
	return hull
}

func minVec(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		math32.Min(a.X(), b.X()),
		math32.Min(a.Y(), b.Y()),
		math32.Min(a.Z(), b.Z()),
	}
}

func maxVec(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		math32.Max(a.X(), b.X()),
		math32.Max(a.Y(), b.Y()),
		math32.Max(a.Z(), b.Z()),
	}
}

func splat(v float32) mgl32.Vec3 {
	return mgl32.Vec3{v, v, v}
}

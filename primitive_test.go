package sdf

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// floatTol absorbs the error of float32 matrix inversion.
const floatTol = 1e-4

func expectFloat(t *testing.T, name string, got, want float32) {
	t.Helper()
	if math32.Abs(got-want) > floatTol {
		t.Errorf("%s: got %v, want %v", name, got, want)
	}
}

func expectVec3(t *testing.T, name string, got, want mgl32.Vec3) {
	t.Helper()
	expectFloat(t, name+".x", got.X(), want.X())
	expectFloat(t, name+".y", got.Y(), want.Y())
	expectFloat(t, name+".z", got.Z(), want.Z())
}

func TestSphereValueAtPoint(t *testing.T) {
	sphere := Sphere{Radius: 1}

	expectFloat(t, "interior", sphere.ValueAtPoint(mgl32.Vec3{}), -1)
	expectFloat(t, "surface", sphere.ValueAtPoint(mgl32.Vec3{0, 1, 0}), 0)
	expectFloat(t, "outside", sphere.ValueAtPoint(mgl32.Vec3{1.5, 0, 0}), 0.5)
}

func TestBoxValueAtPoint(t *testing.T) {
	box := Box{HalfExtents: mgl32.Vec3{1, 2, 1}}

	expectFloat(t, "interior", box.ValueAtPoint(mgl32.Vec3{}), -1)
	expectFloat(t, "surface", box.ValueAtPoint(mgl32.Vec3{0, 2, 0}), 0)
	expectFloat(t, "outside", box.ValueAtPoint(mgl32.Vec3{1.5, 0, 0}), 0.5)
}

func TestBoxValueOutsideCorner(t *testing.T) {
	box := Box{HalfExtents: mgl32.Vec3{1, 1, 1}}

	// Distance past a corner is the euclidean distance to it, not the
	// per-axis overshoot.
	got := box.ValueAtPoint(mgl32.Vec3{2, 2, 2})
	expectFloat(t, "corner", got, math32.Sqrt(3))
}

func TestSphereBounds(t *testing.T) {
	bounds := Sphere{Radius: 2}.Bounds()

	expectVec3(t, "min", bounds.Min, mgl32.Vec3{-2, -2, -2})
	expectVec3(t, "max", bounds.Max, mgl32.Vec3{2, 2, 2})
}

func TestBoxBounds(t *testing.T) {
	bounds := Box{HalfExtents: mgl32.Vec3{1.5, 1, 2}}.Bounds()

	expectVec3(t, "min", bounds.Min, mgl32.Vec3{-1.5, -1, -2})
	expectVec3(t, "max", bounds.Max, mgl32.Vec3{1.5, 1, 2})
}

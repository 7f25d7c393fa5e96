package sdf

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func quatZ90() mgl32.Quat {
	return mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 0, 1})
}

func quatY90() mgl32.Quat {
	return mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})
}

func TestElementTranslation(t *testing.T) {
	element := NewElement().WithTranslation(mgl32.Vec3{1, 0, 0})

	expectFloat(t, "interior", element.ValueAtPoint(mgl32.Vec3{1, 0, 0}), -1)
	expectFloat(t, "surface", element.ValueAtPoint(mgl32.Vec3{}), 0)
	expectFloat(t, "outside", element.ValueAtPoint(mgl32.Vec3{-0.5, 0, 0}), 0.5)
}

func TestElementRotation(t *testing.T) {
	element := NewElement().
		WithRotation(quatZ90()).
		WithPrimitive(Box{HalfExtents: mgl32.Vec3{1, 2, 1}})

	// The long axis now points along x, so the surface sits 1 away
	// along y and 2 away along x.
	expectFloat(t, "interior", element.ValueAtPoint(mgl32.Vec3{}), -1)
	expectFloat(t, "surface", element.ValueAtPoint(mgl32.Vec3{0, 1, 0}), 0)
	expectFloat(t, "outside", element.ValueAtPoint(mgl32.Vec3{2.5, 0, 0}), 0.5)
}

func TestElementRotationAndTranslation(t *testing.T) {
	element := NewElement().
		WithRotation(quatZ90()).
		WithPrimitive(Box{HalfExtents: mgl32.Vec3{1, 2, 1}}).
		WithTranslation(mgl32.Vec3{1, 0, 0})

	expectFloat(t, "interior", element.ValueAtPoint(mgl32.Vec3{}), -1)
	expectFloat(t, "surface", element.ValueAtPoint(mgl32.Vec3{0, 1, 0}), 0)
	expectFloat(t, "outside", element.ValueAtPoint(mgl32.Vec3{-1.5, 0, 0}), 0.5)
}

func TestElementScale(t *testing.T) {
	element := NewElement().WithScale(2)

	expectFloat(t, "interior", element.ValueAtPoint(mgl32.Vec3{}), -2)
	expectFloat(t, "surface", element.ValueAtPoint(mgl32.Vec3{2, 0, 0}), 0)
	expectFloat(t, "outside", element.ValueAtPoint(mgl32.Vec3{-2.5, 0, 0}), 0.5)
}

func TestElementScaleRotationTranslation(t *testing.T) {
	element := NewElement().
		WithRotation(quatZ90()).
		WithPrimitive(Box{HalfExtents: mgl32.Vec3{0.5, 1, 0.5}}).
		WithTranslation(mgl32.Vec3{1, 0, 0}).
		WithScale(2)

	expectFloat(t, "interior", element.ValueAtPoint(mgl32.Vec3{}), -1)
	expectFloat(t, "surface", element.ValueAtPoint(mgl32.Vec3{0, 1, 0}), 0)
	expectFloat(t, "outside", element.ValueAtPoint(mgl32.Vec3{-1.5, 0, 0}), 0.5)
}

func TestElementNegativeScaleIsAbsolute(t *testing.T) {
	element := NewElement().WithScale(-2)

	// The sign of the scale is discarded, so this behaves as scale 2.
	expectFloat(t, "interior", element.ValueAtPoint(mgl32.Vec3{}), -2)
	expectFloat(t, "surface", element.ValueAtPoint(mgl32.Vec3{2, 0, 0}), 0)
}

func TestElementScaleInvariance(t *testing.T) {
	// Scaling by s multiplies sample distances by s while positions
	// scale with s.
	base := NewElement()
	for _, s := range []float32{0.5, 2, 3} {
		scaled := base.WithScale(s)
		expectFloat(t, "interior", scaled.ValueAtPoint(mgl32.Vec3{}), -1*s)
		expectFloat(t, "surface", scaled.ValueAtPoint(mgl32.Vec3{s, 0, 0}), 0)
		expectFloat(t, "exterior", scaled.ValueAtPoint(mgl32.Vec3{2 * s, 0, 0}), s)
	}
}

func TestElementTranslatedBounds(t *testing.T) {
	element := NewElement().WithTranslation(mgl32.Vec3{1, 0, 0})

	bounds := element.BoundsWith(nil)
	expectVec3(t, "min", bounds.Min, mgl32.Vec3{0, -1, -1})
	expectVec3(t, "max", bounds.Max, mgl32.Vec3{2, 1, 1})
}

func TestElementRotatedBounds(t *testing.T) {
	element := NewElement().
		WithPrimitive(Box{HalfExtents: mgl32.Vec3{1, 2, 0.5}}).
		WithRotation(quatY90())

	// Rotating 90 degrees about y swaps the x and z extents.
	bounds := element.BoundsWith(nil)
	expectVec3(t, "min", bounds.Min, mgl32.Vec3{-0.5, -2, -1})
	expectVec3(t, "max", bounds.Max, mgl32.Vec3{0.5, 2, 1})
}

func TestElementScaledBounds(t *testing.T) {
	element := NewElement().WithScale(2)

	bounds := element.BoundsWith(nil)
	expectVec3(t, "min", bounds.Min, mgl32.Vec3{-2, -2, -2})
	expectVec3(t, "max", bounds.Max, mgl32.Vec3{2, 2, 2})
}

func TestElementBoundsWithPrevious(t *testing.T) {
	prev := AABB{Min: mgl32.Vec3{-3, -1, -1}, Max: mgl32.Vec3{-1, 1, 1}}
	element := NewElement().WithTranslation(mgl32.Vec3{1, 0, 0})

	bounds := element.BoundsWith(&prev)
	expectVec3(t, "min", bounds.Min, mgl32.Vec3{-3, -1, -1})
	expectVec3(t, "max", bounds.Max, mgl32.Vec3{2, 1, 1})
}

func TestElementBuildersDoNotMutate(t *testing.T) {
	base := NewElement()
	_ = base.WithTranslation(mgl32.Vec3{5, 5, 5}).WithScale(3)

	// base must still be the unit sphere at the origin.
	expectFloat(t, "interior", base.ValueAtPoint(mgl32.Vec3{}), -1)
	expectFloat(t, "surface", base.ValueAtPoint(mgl32.Vec3{1, 0, 0}), 0)
}

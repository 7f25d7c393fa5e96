package sdf

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Element is one primitive with a similarity transform (translation,
// rotation, uniform scale) and the operator joining it with the
// elements before it in an Object. Elements are immutable: the WithX
// builders return updated copies, so a constructed Element can be read
// from any number of goroutines.
type Element struct {
	primitive   Primitive
	translation mgl32.Vec3
	rotation    mgl32.Quat
	scale       float32
	// Forward matrix and its inverse are maintained together. Every
	// builder rebuilds both; evaluation reads only the inverse.
	transform mgl32.Mat4
	inverse   mgl32.Mat4
	operator  Operator
}

// NewElement returns a unit sphere at the origin joined by Union.
func NewElement() Element {
	return Element{
		primitive: Sphere{Radius: 1},
		rotation:  mgl32.QuatIdent(),
		scale:     1,
		transform: mgl32.Ident4(),
		inverse:   mgl32.Ident4(),
		operator:  Union,
	}
}

func (e Element) rebuild() Element {
	t := mgl32.Translate3D(e.translation.X(), e.translation.Y(), e.translation.Z()).
		Mul4(e.rotation.Mat4()).
		Mul4(mgl32.Scale3D(e.scale, e.scale, e.scale))
	e.transform = t
	e.inverse = t.Inv()
	return e
}

func (e Element) WithPrimitive(p Primitive) Element {
	e.primitive = p
	return e
}

func (e Element) WithOperator(op Operator) Element {
	e.operator = op
	return e
}

func (e Element) WithTranslation(translation mgl32.Vec3) Element {
	e.translation = translation
	return e.rebuild()
}

func (e Element) WithRotation(rotation mgl32.Quat) Element {
	e.rotation = rotation.Normalize()
	return e.rebuild()
}

// WithScale sets the uniform scale. The sign is discarded: a mirrored
// similarity transform would break the distance property.
func (e Element) WithScale(scale float32) Element {
	e.scale = math32.Abs(scale)
	return e.rebuild()
}

func (e Element) Operator() Operator {
	return e.operator
}

// ValueAtPoint evaluates the element's field at a world-space point.
// The cached inverse maps the point into the local frame; multiplying
// the primitive's value by the scale keeps the result a true distance
// under uniform scaling.
func (e Element) ValueAtPoint(p mgl32.Vec3) float32 {
	local := e.inverse.Mul4x1(p.Vec4(1)).Vec3()
	return e.primitive.ValueAtPoint(local) * e.scale
}

// ProcessAtPoint folds the element into the accumulated field value.
func (e Element) ProcessAtPoint(p mgl32.Vec3, acc float32) float32 {
	return e.operator.Value(acc, e.ValueAtPoint(p))
}

// BoundsWith returns the element's world-space bounds combined with
// the accumulated bounds of the elements before it. A nil prev seeds
// the fold: this element's own bounds become the accumulation.
func (e Element) BoundsWith(prev *AABB) AABB {
	corners := e.primitive.Bounds().Corners()
	for i, c := range corners {
		corners[i] = e.transform.Mul4x1(c.Vec4(1)).Vec3()
	}
	bounds := hullOf(corners[:]...)
	if prev != nil {
		bounds = e.operator.CombineBounds(*prev, bounds)
	}
	return bounds
}

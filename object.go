package sdf

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Object is an ordered sequence of elements. Order is semantically
// significant: each element's operator joins it with the left-fold of
// everything before it, so reordering around a Subtraction changes the
// field. Objects are built once per scene description and read-only
// afterwards.
type Object struct {
	Elements []Element
}

// WithElement appends an element and returns the updated object.
func (o Object) WithElement(e Element) Object {
	elements := make([]Element, 0, len(o.Elements)+1)
	elements = append(elements, o.Elements...)
	o.Elements = append(elements, e)
	return o
}

// ValueAtPoint evaluates the composite field at a world-space point.
// The fold is seeded with +Inf so an empty object reads as infinitely
// outside everything.
func (o Object) ValueAtPoint(p mgl32.Vec3) float32 {
	value := math32.Inf(1)
	for _, e := range o.Elements {
		value = e.ProcessAtPoint(p, value)
	}
	return value
}

// Bounds folds element bounds in sequence order. An empty object
// returns the zero box.
func (o Object) Bounds() AABB {
	var acc *AABB
	for _, e := range o.Elements {
		b := e.BoundsWith(acc)
		acc = &b
	}
	if acc == nil {
		return AABB{}
	}
	return *acc
}

package sdf

import "github.com/chewxy/math32"

// Operator merges an element's field with the accumulated field of all
// elements evaluated before it. Union and Intersection commute;
// Subtraction does not, it carves the element out of the accumulation.
type Operator int

const (
	Union Operator = iota
	Subtraction
	Intersection
)

// Value combines the accumulated distance with an element's distance.
func (op Operator) Value(acc, value float32) float32 {
	switch op {
	case Subtraction:
		return math32.Max(acc, -value)
	case Intersection:
		return math32.Max(acc, value)
	default:
		return math32.Min(acc, value)
	}
}

// CombineBounds combines accumulated bounds with an element's bounds.
// Union hulls the two boxes. Subtraction keeps the accumulated bounds:
// carving can only shrink the interior, never grow the envelope.
// Intersection of disjoint bounds yields an inverted box; see AABB.
func (op Operator) CombineBounds(acc, bounds AABB) AABB {
	switch op {
	case Subtraction:
		return acc
	case Intersection:
		return AABB{Min: maxVec(acc.Min, bounds.Min), Max: minVec(acc.Max, bounds.Max)}
	default:
		return AABB{Min: minVec(acc.Min, bounds.Min), Max: maxVec(acc.Max, bounds.Max)}
	}
}

func (op Operator) String() string {
	switch op {
	case Union:
		return "Union"
	case Subtraction:
		return "Subtraction"
	case Intersection:
		return "Intersection"
	}
	return "Unknown"
}

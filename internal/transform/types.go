// Package transform implements the transform algebra (spec.md §4.4): a
// small closed set of loop-nest rewrites (Tiling, Renaming, Reorder,
// MapSpatial, MapTemporal) and their total action over every IR node,
// plus the transform-script text grammar.
package transform

import "fmt"

// Transform is the closed sum type Tiling | Renaming | Reorder |
// MapSpatial | MapTemporal. Each variant's Apply is total: it is defined
// on every LoopNest, acting as the identity on anything it doesn't
// target.
type Transform interface {
	isTransform()
	String() string
}

// Tiling splits iterator Old into an outer iterator (still named Old,
// bound (lo, hi/Factor)) and a new inner iterator New (bound (0,
// Factor), same step), inserted immediately after Old. Every occurrence
// of Var(Old) in an address expression becomes
// Add(Mul(Const(Factor), Var(New)), Var(Old)).
type Tiling struct {
	Old    string
	New    string
	Factor int32
}

// Renaming rewrites every occurrence of Old (as iterator name, Var, or
// ConstVar) to New.
type Renaming struct {
	Old, New string
}

// Reorder swaps the positions of iterators A and B in the nest's
// iterator list. Body and address expressions are unchanged.
type Reorder struct {
	A, B string
}

// MapSpatial assigns Iter a Spatial mapping tagged with Iter's own name.
type MapSpatial struct {
	Iter string
}

// MapTemporal assigns Iter a Temporal mapping.
type MapTemporal struct {
	Iter string
}

func (*Tiling) isTransform()      {}
func (*Renaming) isTransform()    {}
func (*Reorder) isTransform()     {}
func (*MapSpatial) isTransform()  {}
func (*MapTemporal) isTransform() {}

// String renders each variant in its transform-script form.
func (t *Tiling) String() string {
	return fmt.Sprintf("%s -> (%s, %s) by %d", t.Old, t.Old, t.New, t.Factor)
}
func (t *Renaming) String() string    { return t.Old + " -> " + t.New }
func (t *Reorder) String() string     { return t.A + " <-> " + t.B }
func (t *MapSpatial) String() string  { return t.Iter + " => Spatial" }
func (t *MapTemporal) String() string { return t.Iter + " => Temporal" }

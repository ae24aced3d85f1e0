// Package loopir implements the loop nest IR (spec.md §3, §4.3): ordered
// iterators plus a body of instructions, optional mapping properties,
// the iterator text grammar, and the YAML wire format.
package loopir

import "loopnest/internal/instr"

// LoopIter is one loop iterator: name, inclusive-exclusive bound
// (lo, hi), and step. Invariant: lo <= hi, step >= 1.
type LoopIter struct {
	IterName string
	Lo, Hi   int32
	Step     int32
}

// MappingKind is the hardware mapping assigned to an iterator.
type MappingKind int

const (
	MappingNone MappingKind = iota
	MappingSpatial
	MappingTemporal
	MappingInterTile
	MappingIntraTile
)

func (k MappingKind) String() string {
	switch k {
	case MappingSpatial:
		return "Spatial"
	case MappingTemporal:
		return "Temporal"
	case MappingInterTile:
		return "InterTile"
	case MappingIntraTile:
		return "IntraTile"
	default:
		return "None"
	}
}

// Mapping is one iterator's assigned MappingType; Tag is only meaningful
// when Kind is MappingSpatial.
type Mapping struct {
	Kind MappingKind
	Tag  string
}

// LoopProperties holds the per-iterator mapping assignments. An
// iterator absent from Mapping has no assignment (the default).
type LoopProperties struct {
	Mapping map[string]Mapping
}

// NewLoopProperties returns an empty LoopProperties ready for mapping
// directives to populate.
func NewLoopProperties() *LoopProperties {
	return &LoopProperties{Mapping: make(map[string]Mapping)}
}

// LoopNest is the iterators (outer to inner, nest order IS this slice's
// order) plus the instruction body plus optional mapping properties.
type LoopNest struct {
	Iters      []LoopIter
	Body       []instr.Instruction
	Properties *LoopProperties
}

// IterNames returns the nest-order list of iterator names.
func (n *LoopNest) IterNames() []string {
	names := make([]string, len(n.Iters))
	for i, it := range n.Iters {
		names[i] = it.IterName
	}
	return names
}

// IndexOfIter returns the position of name in Iters, or -1.
func (n *LoopNest) IndexOfIter(name string) int {
	for i, it := range n.Iters {
		if it.IterName == name {
			return i
		}
	}
	return -1
}

// Package workspace implements the property-tagged workspace (spec.md
// §3, §4.5): a loop nest plus an optional architecture, a property store
// keyed by stable hook identity, and a monotone-growing feature set.
package workspace

import "fmt"

// Property is an opaque value carrying its own storage key (PropertyID)
// and a human-readable rendering. It is the single storage unit for
// instruction, iterator, and global properties alike; which entity a
// property describes is given by the hook it is stored under.
type Property interface {
	PropertyID() string
	Display() string
}

// InstHook returns the stable hook id for the instruction at position
// idx in a nest's body (spec.md §9: "Inst#<body-index>").
func InstHook(idx int) string { return fmt.Sprintf("Inst#%d", idx) }

// IterHook returns the stable hook id for the iterator at position idx
// in a nest's iterator list ("Iter#<iter-index>").
func IterHook(idx int) string { return fmt.Sprintf("Iter#%d", idx) }

// GlobalHook is the workspace's own hook id, used for loop-wide and
// architecture-wide properties.
const GlobalHook = "Workspace"

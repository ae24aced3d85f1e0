// Package passes implements the reference analyses over a workspace
// (spec.md §4.6): MemAccessAnalysis, FreeDimAnalysis, and
// ArchInfoBuilder.
package passes

import (
	"strings"

	"loopnest/internal/arch"
)

// dimListProperty renders as "<id>: [a, b, c]", the shape both
// MemAccessAnalysis and FreeDimAnalysis produce.
type dimListProperty struct {
	id   string
	dims []string
}

func (p dimListProperty) PropertyID() string { return p.id }

func (p dimListProperty) Display() string {
	var b strings.Builder
	b.WriteString(p.id)
	b.WriteString(": [")
	b.WriteString(strings.Join(p.dims, ", "))
	b.WriteString("]")
	return b.String()
}

// archProperty carries the whole parsed architecture as one global
// property, rendered via its YAML encoding.
type archProperty struct {
	arch *arch.Arch
}

func (p archProperty) PropertyID() string { return "arch" }

func (p archProperty) Display() string {
	data, err := p.arch.ToYAML()
	if err != nil {
		return "arch: <unrenderable: " + err.Error() + ">"
	}
	return "arch:\n" + indent(string(data))
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}

package workspace

import "strings"

// Render prints the nest, then each iterator with its properties, then
// each instruction with its properties (spec.md §4.5 "Display").
func (w *Workspace) Render() string {
	var b strings.Builder

	b.WriteString("nest:\n")
	for _, it := range w.LoopNest.Iters {
		b.WriteString("  ")
		b.WriteString(it.String())
		b.WriteString("\n")
	}
	for _, inst := range w.LoopNest.Body {
		b.WriteString("  ")
		b.WriteString(inst.String())
		b.WriteString("\n")
	}

	b.WriteString("iterators:\n")
	for i, it := range w.LoopNest.Iters {
		b.WriteString("  ")
		b.WriteString(it.IterName)
		b.WriteString(":\n")
		for _, p := range w.Properties(IterHook(i)) {
			b.WriteString("    ")
			b.WriteString(p.Display())
			b.WriteString("\n")
		}
	}

	b.WriteString("instructions:\n")
	for i, inst := range w.LoopNest.Body {
		b.WriteString("  ")
		b.WriteString(inst.String())
		b.WriteString(":\n")
		for _, p := range w.Properties(InstHook(i)) {
			b.WriteString("    ")
			b.WriteString(p.Display())
			b.WriteString("\n")
		}
	}

	if global := w.Properties(GlobalHook); len(global) > 0 {
		b.WriteString("global:\n")
		for _, p := range global {
			b.WriteString("  ")
			b.WriteString(p.Display())
			b.WriteString("\n")
		}
	}

	return b.String()
}

package workspace

import (
	"loopnest/internal/arch"
	"loopnest/internal/errors"
	"loopnest/internal/loopir"
)

// Workspace owns a loop nest, an optional architecture, and the
// property store built up over a pipeline run. Invariant: the feature set
// only ever grows over a run; properties are append-only within a run.
type Workspace struct {
	LoopNest *loopir.LoopNest
	Arch     *arch.Arch

	properties map[string][]Property
	features   map[string]struct{}
}

// New constructs a Workspace over nest, with no architecture and no
// properties or features yet recorded.
func New(nest *loopir.LoopNest) *Workspace {
	return &Workspace{
		LoopNest:   nest,
		properties: make(map[string][]Property),
		features:   make(map[string]struct{}),
	}
}

// WithArch attaches an architecture description, returning w for
// chaining.
func (w *Workspace) WithArch(a *arch.Arch) *Workspace {
	w.Arch = a
	return w
}

// validHook reports whether hook names a real entity in the current
// nest: an instruction index, an iterator index, or the workspace itself.
func (w *Workspace) validHook(hook string) bool {
	if hook == GlobalHook {
		return true
	}
	for i := range w.LoopNest.Body {
		if InstHook(i) == hook {
			return true
		}
	}
	for i := range w.LoopNest.Iters {
		if IterHook(i) == hook {
			return true
		}
	}
	return false
}

// AddProperty appends p against hook, in insertion order. It fails with
// *errors.UnknownHookError if hook does not name a real entity in the
// current nest.
func (w *Workspace) AddProperty(hook string, p Property) error {
	if !w.validHook(hook) {
		return &errors.UnknownHookError{HookID: hook}
	}
	w.properties[hook] = append(w.properties[hook], p)
	return nil
}

// Properties returns the ordered sequence of properties recorded
// against hook, or nil if none have been added.
func (w *Workspace) Properties(hook string) []Property {
	return w.properties[hook]
}

// AddFeature records name as produced, a no-op if already present
// (the feature set never shrinks).
func (w *Workspace) AddFeature(name string) {
	w.features[name] = struct{}{}
}

// HasFeature reports whether name is currently available.
func (w *Workspace) HasFeature(name string) bool {
	_, ok := w.features[name]
	return ok
}

// Features returns the current feature set as a slice, order not
// significant.
func (w *Workspace) Features() []string {
	out := make([]string, 0, len(w.features))
	for f := range w.features {
		out = append(out, f)
	}
	return out
}

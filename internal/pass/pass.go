// Package pass implements the feature-gated analysis pipeline that runs
// over a workspace (spec.md §4.6): three small pass shapes sharing one
// execution machinery, rather than the teacher's compile-time code
// generation of `run` from `analyze_*`.
package pass

import (
	"loopnest/internal/instr"
	"loopnest/internal/loopir"
	"loopnest/internal/workspace"
)

// Info describes a pass's identity and its feature contract: it may run
// only once every name in RequiredFeatures is available on the
// workspace, and on success it makes every name in ProducedFeatures
// available.
type Info struct {
	Name             string
	Description      string
	RequiredFeatures []string
	ProducedFeatures []string
}

// Pass is satisfied by any of InstPass, IterPass, or LoopPass; the
// pipeline dispatches on which shape a registered pass implements.
type Pass interface {
	Info() Info
}

// InstPass is invoked once per instruction, in body order; each
// returned property is appended to that instruction's hook.
type InstPass interface {
	Pass
	AnalyzeInst(i instr.Instruction) []workspace.Property
}

// IterPass is invoked once per iterator, in nest order; each returned
// property is appended to that iterator's hook.
type IterPass interface {
	Pass
	AnalyzeIter(it loopir.LoopIter) []workspace.Property
}

// LoopPass is invoked once for the whole nest; its properties are
// appended to the workspace's global hook.
type LoopPass interface {
	Pass
	AnalyzeLoop(nest *loopir.LoopNest) []workspace.Property
}

// run dispatches ws against whichever shape p implements and appends
// the resulting properties to the appropriate hooks.
func run(p Pass, ws *workspace.Workspace) error {
	switch concrete := p.(type) {
	case InstPass:
		for i, inst := range ws.LoopNest.Body {
			for _, prop := range concrete.AnalyzeInst(inst) {
				if err := ws.AddProperty(workspace.InstHook(i), prop); err != nil {
					return err
				}
			}
		}
	case IterPass:
		for i, it := range ws.LoopNest.Iters {
			for _, prop := range concrete.AnalyzeIter(it) {
				if err := ws.AddProperty(workspace.IterHook(i), prop); err != nil {
					return err
				}
			}
		}
	case LoopPass:
		for _, prop := range concrete.AnalyzeLoop(ws.LoopNest) {
			if err := ws.AddProperty(workspace.GlobalHook, prop); err != nil {
				return err
			}
		}
	}
	return nil
}

package passes

import (
	"loopnest/internal/arch"
	"loopnest/internal/loopir"
	"loopnest/internal/pass"
	"loopnest/internal/workspace"
)

// ArchInfoBuilder attaches a workspace's parsed architecture as a single
// global property. Meaningless without an Arch; construct it only when
// one was supplied.
type ArchInfoBuilder struct {
	arch *arch.Arch
}

func NewArchInfoBuilder(a *arch.Arch) ArchInfoBuilder {
	return ArchInfoBuilder{arch: a}
}

func (ArchInfoBuilder) Info() pass.Info {
	return pass.Info{
		Name:             "arch-info",
		Description:      "attaches the parsed architecture to the workspace",
		ProducedFeatures: []string{"arch_info"},
	}
}

func (p ArchInfoBuilder) AnalyzeLoop(nest *loopir.LoopNest) []workspace.Property {
	return []workspace.Property{archProperty{arch: p.arch}}
}

package passes

import (
	"loopnest/internal/affine"
	"loopnest/internal/instr"
	"loopnest/internal/pass"
	"loopnest/internal/workspace"
)

// FreeDimAnalysis attaches each instruction's free-dimension list: the
// nest's iterator names, in nest order, minus whichever of them the
// instruction's addresses reference. It requires accessed_dims to
// already be available, but computes the accessed set itself from the
// instruction's addresses with affine.Vars (the walk MemAccessAnalysis
// uses) rather than reading the accessed_dims properties.
type FreeDimAnalysis struct {
	iterNames []string
}

// NewFreeDimAnalysis binds the pass to a nest's iterator order; iterNames
// should come from loopir.LoopNest.IterNames() for the nest this pass
// will run over.
func NewFreeDimAnalysis(iterNames []string) FreeDimAnalysis {
	return FreeDimAnalysis{iterNames: iterNames}
}

func (FreeDimAnalysis) Info() pass.Info {
	return pass.Info{
		Name:             "free-dim",
		Description:      "records the iterators each instruction does not access",
		RequiredFeatures: []string{"accessed_dims"},
		ProducedFeatures: []string{"free_dims"},
	}
}

func (p FreeDimAnalysis) AnalyzeInst(i instr.Instruction) []workspace.Property {
	var addr []affine.AffineExpr
	switch n := i.(type) {
	case *instr.DataLoad:
		addr = n.Access.Addr
	case *instr.DataStore:
		addr = n.Access.Addr
	case *instr.ComputeInstr:
		addr = nil
	}

	accessed := make(map[string]struct{})
	for _, e := range addr {
		for _, name := range affine.Vars(e) {
			accessed[name] = struct{}{}
		}
	}

	var free []string
	for _, name := range p.iterNames {
		if _, seen := accessed[name]; !seen {
			free = append(free, name)
		}
	}

	return []workspace.Property{dimListProperty{id: "free_dims", dims: free}}
}

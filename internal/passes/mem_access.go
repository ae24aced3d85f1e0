package passes

import (
	"loopnest/internal/affine"
	"loopnest/internal/instr"
	"loopnest/internal/pass"
	"loopnest/internal/workspace"
)

// MemAccessAnalysis attaches each instruction's accessed-dimension
// multiset: every Var name referenced in any of its address
// expressions, flattened, duplicates preserved. Compute instructions
// have no address expressions, so they get an empty set.
type MemAccessAnalysis struct{}

func (MemAccessAnalysis) Info() pass.Info {
	return pass.Info{
		Name:             "mem-access",
		Description:      "records the dimensions each instruction's addresses reference",
		ProducedFeatures: []string{"accessed_dims"},
	}
}

func (MemAccessAnalysis) AnalyzeInst(i instr.Instruction) []workspace.Property {
	var addr []affine.AffineExpr
	switch n := i.(type) {
	case *instr.DataLoad:
		addr = n.Access.Addr
	case *instr.DataStore:
		addr = n.Access.Addr
	case *instr.ComputeInstr:
		addr = nil
	}

	var dims []string
	for _, e := range addr {
		dims = append(dims, affine.Vars(e)...)
	}

	return []workspace.Property{dimListProperty{id: "accessed_dims", dims: dims}}
}

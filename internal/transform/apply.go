package transform

import (
	"loopnest/internal/affine"
	"loopnest/internal/errors"
	"loopnest/internal/instr"
	"loopnest/internal/loopir"
)

// Apply applies t to nest, returning a fresh LoopNest (nest itself is
// never mutated, so callers retain the pre-transform value for diffing
// or tests). Every variant is total: it is defined over the whole nest,
// acting as the identity on anything outside its target.
func Apply(t Transform, nest *loopir.LoopNest) (*loopir.LoopNest, error) {
	switch tt := t.(type) {
	case *Tiling:
		return applyTiling(tt, nest)
	case *Renaming:
		return applyRenaming(tt, nest)
	case *Reorder:
		return applyReorder(tt, nest)
	case *MapSpatial:
		return applyMapSpatial(tt, nest)
	case *MapTemporal:
		return applyMapTemporal(tt, nest)
	default:
		panic("transform: unhandled Transform variant")
	}
}

// ApplyAll is the left fold of Apply across script, in order. Errors
// short-circuit: the script stops at the first failing transform.
func ApplyAll(script []Transform, nest *loopir.LoopNest) (*loopir.LoopNest, error) {
	cur := nest
	for _, t := range script {
		next, err := Apply(t, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

func applyTiling(t *Tiling, nest *loopir.LoopNest) (*loopir.LoopNest, error) {
	idx := nest.IndexOfIter(t.Old)
	if idx < 0 {
		return nil, &errors.IterNotFoundError{Name: t.Old}
	}
	old := nest.Iters[idx]
	if old.Hi%t.Factor != 0 {
		return nil, &errors.NonDivisibleTileError{Iter: t.Old, Bound: int(old.Hi), Factor: int(t.Factor)}
	}

	// Reject up front if Old is used as a ConstVar coefficient anywhere
	// in the body; rewriteBody would otherwise silently leave it alone.
	for _, inst := range nest.Body {
		if instructionUsesConstVar(inst, t.Old) {
			return nil, &errors.TileOverCoeffVarError{Name: t.Old}
		}
	}

	rv := func(v *affine.Var) affine.AffineExpr {
		if v.Name != t.Old {
			return v
		}
		return &affine.Add{
			L: &affine.Mul{Coeff: &affine.CConst{Value: t.Factor}, Expr: &affine.Var{Name: t.New}},
			R: &affine.Var{Name: t.Old},
		}
	}
	body, err := rewriteBody(nest.Body, rv, identityConstVar)
	if err != nil {
		return nil, err
	}

	outer := loopir.LoopIter{IterName: t.Old, Lo: old.Lo, Hi: old.Hi / t.Factor, Step: old.Step}
	inner := loopir.LoopIter{IterName: t.New, Lo: 0, Hi: t.Factor, Step: old.Step}

	iters := make([]loopir.LoopIter, 0, len(nest.Iters)+1)
	iters = append(iters, nest.Iters[:idx]...)
	iters = append(iters, outer, inner)
	iters = append(iters, nest.Iters[idx+1:]...)

	return &loopir.LoopNest{Iters: iters, Body: body, Properties: nest.Properties}, nil
}

func instructionUsesConstVar(i instr.Instruction, name string) bool {
	var addr []affine.AffineExpr
	switch n := i.(type) {
	case *instr.DataLoad:
		addr = n.Access.Addr
	case *instr.DataStore:
		addr = n.Access.Addr
	default:
		return false
	}
	for _, e := range addr {
		for _, coeff := range coeffsIn(e) {
			for _, v := range affine.CoeffVars(coeff) {
				if v == name {
					return true
				}
			}
		}
	}
	return false
}

// coeffsIn collects every Coeff attached to a Mul/Div/Mod node in e.
func coeffsIn(e affine.AffineExpr) []affine.Coeff {
	var out []affine.Coeff
	switch n := e.(type) {
	case *affine.Var, *affine.Const:
	case *affine.Add:
		out = append(out, coeffsIn(n.L)...)
		out = append(out, coeffsIn(n.R)...)
	case *affine.Sub:
		out = append(out, coeffsIn(n.L)...)
		out = append(out, coeffsIn(n.R)...)
	case *affine.Mul:
		out = append(out, n.Coeff)
		out = append(out, coeffsIn(n.Expr)...)
	case *affine.Div:
		out = append(out, n.Coeff)
		out = append(out, coeffsIn(n.Expr)...)
	case *affine.Mod:
		out = append(out, n.Coeff)
		out = append(out, coeffsIn(n.Expr)...)
	}
	return out
}

func applyRenaming(t *Renaming, nest *loopir.LoopNest) (*loopir.LoopNest, error) {
	if nest.IndexOfIter(t.Old) < 0 {
		return nil, &errors.IterNotFoundError{Name: t.Old}
	}

	rv := func(v *affine.Var) affine.AffineExpr {
		if v.Name == t.Old {
			return &affine.Var{Name: t.New}
		}
		return v
	}
	rc := func(c *affine.CConstVar) (affine.Coeff, error) {
		if c.Name == t.Old {
			return &affine.CConstVar{Name: t.New}, nil
		}
		return c, nil
	}
	body, err := rewriteBody(nest.Body, rv, rc)
	if err != nil {
		return nil, err
	}

	iters := make([]loopir.LoopIter, len(nest.Iters))
	copy(iters, nest.Iters)
	for i, it := range iters {
		if it.IterName == t.Old {
			iters[i].IterName = t.New
		}
	}

	return &loopir.LoopNest{Iters: iters, Body: body, Properties: nest.Properties}, nil
}

func applyReorder(t *Reorder, nest *loopir.LoopNest) (*loopir.LoopNest, error) {
	ai := nest.IndexOfIter(t.A)
	if ai < 0 {
		return nil, &errors.IterNotFoundError{Name: t.A}
	}
	bi := nest.IndexOfIter(t.B)
	if bi < 0 {
		return nil, &errors.IterNotFoundError{Name: t.B}
	}

	iters := make([]loopir.LoopIter, len(nest.Iters))
	copy(iters, nest.Iters)
	iters[ai], iters[bi] = iters[bi], iters[ai]

	return &loopir.LoopNest{Iters: iters, Body: nest.Body, Properties: nest.Properties}, nil
}

func applyMapSpatial(t *MapSpatial, nest *loopir.LoopNest) (*loopir.LoopNest, error) {
	props := withMapping(nest.Properties, t.Iter, loopir.Mapping{Kind: loopir.MappingSpatial, Tag: t.Iter})
	return &loopir.LoopNest{Iters: nest.Iters, Body: nest.Body, Properties: props}, nil
}

func applyMapTemporal(t *MapTemporal, nest *loopir.LoopNest) (*loopir.LoopNest, error) {
	props := withMapping(nest.Properties, t.Iter, loopir.Mapping{Kind: loopir.MappingTemporal})
	return &loopir.LoopNest{Iters: nest.Iters, Body: nest.Body, Properties: props}, nil
}

func withMapping(existing *loopir.LoopProperties, iter string, m loopir.Mapping) *loopir.LoopProperties {
	props := loopir.NewLoopProperties()
	if existing != nil {
		for k, v := range existing.Mapping {
			props.Mapping[k] = v
		}
	}
	props.Mapping[iter] = m
	return props
}

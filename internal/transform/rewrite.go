package transform

import (
	"loopnest/internal/affine"
	"loopnest/internal/instr"
)

// varRewriter replaces a Var leaf found during a rewrite walk; returning
// the Var unchanged is the identity case every transform except Tiling
// and Renaming uses.
type varRewriter func(*affine.Var) affine.AffineExpr

// constVarRewriter replaces a CConstVar leaf, or reports an error that
// aborts the walk. The rewriters in this package never fail: Tiling
// passes identityConstVar and rejects a ConstVar use of its iterator
// before rewriting (see applyTiling).
type constVarRewriter func(*affine.CConstVar) (affine.Coeff, error)

// rewriteExpr walks e per spec.md §4.4's "total over every IR node"
// contract: Var leaves go through rv, Const is identity, and Add/Sub/
// Mul/Div/Mod recurse into their children (Mul/Div/Mod also rewriting
// their Coeff through rewriteCoeff).
func rewriteExpr(e affine.AffineExpr, rv varRewriter, rc constVarRewriter) (affine.AffineExpr, error) {
	switch n := e.(type) {
	case *affine.Var:
		return rv(n), nil
	case *affine.Const:
		return n, nil
	case *affine.Add:
		l, err := rewriteExpr(n.L, rv, rc)
		if err != nil {
			return nil, err
		}
		r, err := rewriteExpr(n.R, rv, rc)
		if err != nil {
			return nil, err
		}
		return &affine.Add{L: l, R: r}, nil
	case *affine.Sub:
		l, err := rewriteExpr(n.L, rv, rc)
		if err != nil {
			return nil, err
		}
		r, err := rewriteExpr(n.R, rv, rc)
		if err != nil {
			return nil, err
		}
		return &affine.Sub{L: l, R: r}, nil
	case *affine.Mul:
		c, err := rewriteCoeff(n.Coeff, rc)
		if err != nil {
			return nil, err
		}
		body, err := rewriteExpr(n.Expr, rv, rc)
		if err != nil {
			return nil, err
		}
		return affine.NewMul(c, body), nil
	case *affine.Div:
		body, err := rewriteExpr(n.Expr, rv, rc)
		if err != nil {
			return nil, err
		}
		c, err := rewriteCoeff(n.Coeff, rc)
		if err != nil {
			return nil, err
		}
		return &affine.Div{Expr: body, Coeff: c}, nil
	case *affine.Mod:
		body, err := rewriteExpr(n.Expr, rv, rc)
		if err != nil {
			return nil, err
		}
		c, err := rewriteCoeff(n.Coeff, rc)
		if err != nil {
			return nil, err
		}
		return &affine.Mod{Expr: body, Coeff: c}, nil
	default:
		panic("transform: unhandled AffineExpr variant")
	}
}

func rewriteCoeff(c affine.Coeff, rc constVarRewriter) (affine.Coeff, error) {
	switch n := c.(type) {
	case *affine.CConst:
		return n, nil
	case *affine.CConstVar:
		return rc(n)
	case *affine.CMul:
		l, err := rewriteCoeff(n.L, rc)
		if err != nil {
			return nil, err
		}
		r, err := rewriteCoeff(n.R, rc)
		if err != nil {
			return nil, err
		}
		return &affine.CMul{L: l, R: r}, nil
	default:
		panic("transform: unhandled Coeff variant")
	}
}

// rewriteAccess applies the same rv/rc pair to every address dimension
// of a DataAccess; identity on everything else about it.
func rewriteAccess(a instr.DataAccess, rv varRewriter, rc constVarRewriter) (instr.DataAccess, error) {
	out := a
	out.Addr = make([]affine.AffineExpr, len(a.Addr))
	for i, e := range a.Addr {
		ne, err := rewriteExpr(e, rv, rc)
		if err != nil {
			return instr.DataAccess{}, err
		}
		out.Addr[i] = ne
	}
	return out, nil
}

// rewriteCompute is the identity: Compute carries no AffineExpr (its
// Operand is Reg|Imm), so every transform passes it through unchanged.
func rewriteCompute(c instr.Compute) instr.Compute {
	return c
}

// rewriteInstruction dispatches rv/rc over one instruction, total over
// all three Instruction variants.
func rewriteInstruction(i instr.Instruction, rv varRewriter, rc constVarRewriter) (instr.Instruction, error) {
	switch n := i.(type) {
	case *instr.DataLoad:
		a, err := rewriteAccess(n.Access, rv, rc)
		if err != nil {
			return nil, err
		}
		return &instr.DataLoad{Access: a}, nil
	case *instr.DataStore:
		a, err := rewriteAccess(n.Access, rv, rc)
		if err != nil {
			return nil, err
		}
		return &instr.DataStore{Access: a}, nil
	case *instr.ComputeInstr:
		return &instr.ComputeInstr{Compute: rewriteCompute(n.Compute)}, nil
	default:
		panic("transform: unhandled Instruction variant")
	}
}

// rewriteBody applies rv/rc to every instruction in body order.
func rewriteBody(body []instr.Instruction, rv varRewriter, rc constVarRewriter) ([]instr.Instruction, error) {
	out := make([]instr.Instruction, len(body))
	for i, inst := range body {
		ni, err := rewriteInstruction(inst, rv, rc)
		if err != nil {
			return nil, err
		}
		out[i] = ni
	}
	return out, nil
}

func identityConstVar(c *affine.CConstVar) (affine.Coeff, error) { return c, nil }

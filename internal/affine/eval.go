package affine

import "loopnest/internal/errors"

// Evaluate computes e's integer value under vars, the mapping from
// variable/ConstVar name to its bound value (spec.md §4.1). Division and
// modulo use Go's truncating integer semantics. Evaluation fails with
// *errors.UnboundVariableError the moment a referenced name is missing.
func Evaluate(e AffineExpr, vars map[string]int32) (int32, error) {
	switch n := e.(type) {
	case *Var:
		v, ok := vars[n.Name]
		if !ok {
			return 0, &errors.UnboundVariableError{Name: n.Name}
		}
		return v, nil
	case *Const:
		return n.Value, nil
	case *Add:
		l, err := Evaluate(n.L, vars)
		if err != nil {
			return 0, err
		}
		r, err := Evaluate(n.R, vars)
		if err != nil {
			return 0, err
		}
		return l + r, nil
	case *Sub:
		l, err := Evaluate(n.L, vars)
		if err != nil {
			return 0, err
		}
		r, err := Evaluate(n.R, vars)
		if err != nil {
			return 0, err
		}
		return l - r, nil
	case *Mul:
		c, err := EvaluateCoeff(n.Coeff, vars)
		if err != nil {
			return 0, err
		}
		v, err := Evaluate(n.Expr, vars)
		if err != nil {
			return 0, err
		}
		return c * v, nil
	case *Div:
		v, err := Evaluate(n.Expr, vars)
		if err != nil {
			return 0, err
		}
		c, err := EvaluateCoeff(n.Coeff, vars)
		if err != nil {
			return 0, err
		}
		return v / c, nil
	case *Mod:
		v, err := Evaluate(n.Expr, vars)
		if err != nil {
			return 0, err
		}
		c, err := EvaluateCoeff(n.Coeff, vars)
		if err != nil {
			return 0, err
		}
		return v % c, nil
	default:
		panic("affine: unhandled AffineExpr variant in Evaluate")
	}
}

// EvaluateCoeff resolves a Coeff to its integer value under vars.
func EvaluateCoeff(c Coeff, vars map[string]int32) (int32, error) {
	switch n := c.(type) {
	case *CConst:
		return n.Value, nil
	case *CConstVar:
		v, ok := vars[n.Name]
		if !ok {
			return 0, &errors.UnboundVariableError{Name: n.Name}
		}
		return v, nil
	case *CMul:
		l, err := EvaluateCoeff(n.L, vars)
		if err != nil {
			return 0, err
		}
		r, err := EvaluateCoeff(n.R, vars)
		if err != nil {
			return 0, err
		}
		return l * r, nil
	default:
		panic("affine: unhandled Coeff variant in EvaluateCoeff")
	}
}

// Vars returns every Var name referenced anywhere in e, in a structural
// pre-order walk, duplicates preserved (spec.md §4.6: "flattened via
// structural walk over Add/Sub/Mul/Div/Mod; Var → [name], Const → []").
// Coefficients (including ConstVar coefficients) are symbolic constants,
// not loop dimensions, and are deliberately not walked into — this is
// the shared walk MemAccessAnalysis (internal/passes) uses over each
// instruction's address expressions.
func Vars(e AffineExpr) []string {
	var names []string
	var walk func(AffineExpr)
	walk = func(n AffineExpr) {
		switch v := n.(type) {
		case *Var:
			names = append(names, v.Name)
		case *Const:
		case *Add:
			walk(v.L)
			walk(v.R)
		case *Sub:
			walk(v.L)
			walk(v.R)
		case *Mul:
			walk(v.Expr)
		case *Div:
			walk(v.Expr)
		case *Mod:
			walk(v.Expr)
		default:
			panic("affine: unhandled AffineExpr variant in Vars")
		}
	}
	walk(e)
	return names
}

// CoeffVars returns every ConstVar name referenced in c.
func CoeffVars(c Coeff) []string {
	switch n := c.(type) {
	case *CConst:
		return nil
	case *CConstVar:
		return []string{n.Name}
	case *CMul:
		return append(CoeffVars(n.L), CoeffVars(n.R)...)
	default:
		panic("affine: unhandled Coeff variant in CoeffVars")
	}
}

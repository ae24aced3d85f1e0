package affine

import "fmt"

// String renders e per the round-trip contract in spec.md §4.1:
// Const/Var print literally; Add/Sub as infix with single spaces;
// Mul(c, Var) as "c * var"; Mul(c, non-Var) as "c * (expr)"; Div/Mod as
// infix with spaces. An Add/Sub right operand that is itself an Add/Sub,
// and a Div/Mod operand that is an Add/Sub/Div/Mod, is parenthesized so
// that it re-parses as one operand.

// grouped renders e, parenthesized when it is an Add or Sub, or (with
// divMod set) a Div or Mod.
func grouped(e AffineExpr, divMod bool) string {
	switch e.(type) {
	case *Add, *Sub:
		return "(" + e.String() + ")"
	case *Div, *Mod:
		if divMod {
			return "(" + e.String() + ")"
		}
	}
	return e.String()
}

func (e *Var) String() string { return e.Name }

func (e *Const) String() string { return fmt.Sprintf("%d", e.Value) }

func (e *Add) String() string { return e.L.String() + " + " + grouped(e.R, false) }

func (e *Sub) String() string { return e.L.String() + " - " + grouped(e.R, false) }

func (e *Mul) String() string {
	if _, isVar := e.Expr.(*Var); isVar {
		return e.Coeff.String() + " * " + e.Expr.String()
	}
	return e.Coeff.String() + " * (" + e.Expr.String() + ")"
}

func (e *Div) String() string { return grouped(e.Expr, true) + " / " + e.Coeff.String() }

func (e *Mod) String() string { return grouped(e.Expr, true) + " % " + e.Coeff.String() }

func (c *CConst) String() string { return fmt.Sprintf("%d", c.Value) }

func (c *CConstVar) String() string { return c.Name }

func (c *CMul) String() string { return c.L.String() + " * " + c.R.String() }

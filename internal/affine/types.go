// Package affine implements the affine expression IR (spec.md §3, §4.1):
// a small closed sum type for integer-valued expressions over loop
// iterators, plus its text grammar, printer, evaluator, and normalizer.
//
// Every AffineExpr and Coeff value is immutable after construction;
// transforms (internal/transform) always build fresh trees rather than
// mutate existing ones.
package affine

// AffineExpr is the closed sum type Var | Const | Add | Sub | Mul | Div |
// Mod. Concrete types implement it via an unexported marker method so the
// variant set stays closed to this package, mirroring the teacher's
// ast.Expr / ast.isExpr() pattern but without position/metadata baggage
// the algebraic IR doesn't need.
type AffineExpr interface {
	isAffineExpr()
	// Equal reports whether two expressions are structurally identical.
	Equal(AffineExpr) bool
	String() string
}

// Var is a reference to a loop iterator (or any other variable bound at
// evaluation time).
type Var struct {
	Name string
}

// Const is an integer literal.
type Const struct {
	Value int32
}

// Add is e1 + e2.
type Add struct {
	L, R AffineExpr
}

// Sub is e1 - e2.
type Sub struct {
	L, R AffineExpr
}

// Mul is coeff * e, a coefficient (constant or symbolic-constant product)
// times an expression.
type Mul struct {
	Coeff Coeff
	Expr  AffineExpr
}

// Div is e / coeff (integer division).
type Div struct {
	Expr  AffineExpr
	Coeff Coeff
}

// Mod is e % coeff (integer modulo).
type Mod struct {
	Expr  AffineExpr
	Coeff Coeff
}

func (*Var) isAffineExpr() {}
func (*Const) isAffineExpr() {}
func (*Add) isAffineExpr() {}
func (*Sub) isAffineExpr() {}
func (*Mul) isAffineExpr() {}
func (*Div) isAffineExpr() {}
func (*Mod) isAffineExpr() {}

// NewMul builds Mul(c, e), applying the parse-time elision law from
// spec.md §4.1: a literal coefficient of 1 is elided (Mul(Const(1), e)
// reduces to e itself).
func NewMul(c Coeff, e AffineExpr) AffineExpr {
	if cc, ok := c.(*CConst); ok && cc.Value == 1 {
		return e
	}
	return &Mul{Coeff: c, Expr: e}
}

// Coeff is the closed sum type Const(i32) | ConstVar(name) | Mul(Coeff,
// Coeff) used as the multiplier/divisor/modulus operand of Mul/Div/Mod.
type Coeff interface {
	isCoeff()
	Equal(Coeff) bool
	String() string
}

// CConst is an integer coefficient.
type CConst struct {
	Value int32
}

// CConstVar is a symbolic coefficient, an identifier containing an
// underscore after its first alphabetic run (e.g. M_a).
type CConstVar struct {
	Name string
}

// CMul is a product of two coefficients.
type CMul struct {
	L, R Coeff
}

func (*CConst) isCoeff()    {}
func (*CConstVar) isCoeff() {}
func (*CMul) isCoeff()      {}

package affine

// Equal reports structural equality, recursing into children. Children
// are compared by concrete type, not merely by rendered text, so e.g.
// Const(1) and a Var named "1" (impossible syntactically, but defends
// the invariant) never compare equal by accident.

func (e *Var) Equal(other AffineExpr) bool {
	o, ok := other.(*Var)
	return ok && o.Name == e.Name
}

func (e *Const) Equal(other AffineExpr) bool {
	o, ok := other.(*Const)
	return ok && o.Value == e.Value
}

func (e *Add) Equal(other AffineExpr) bool {
	o, ok := other.(*Add)
	return ok && e.L.Equal(o.L) && e.R.Equal(o.R)
}

func (e *Sub) Equal(other AffineExpr) bool {
	o, ok := other.(*Sub)
	return ok && e.L.Equal(o.L) && e.R.Equal(o.R)
}

func (e *Mul) Equal(other AffineExpr) bool {
	o, ok := other.(*Mul)
	return ok && e.Coeff.Equal(o.Coeff) && e.Expr.Equal(o.Expr)
}

func (e *Div) Equal(other AffineExpr) bool {
	o, ok := other.(*Div)
	return ok && e.Expr.Equal(o.Expr) && e.Coeff.Equal(o.Coeff)
}

func (e *Mod) Equal(other AffineExpr) bool {
	o, ok := other.(*Mod)
	return ok && e.Expr.Equal(o.Expr) && e.Coeff.Equal(o.Coeff)
}

func (c *CConst) Equal(other Coeff) bool {
	o, ok := other.(*CConst)
	return ok && o.Value == c.Value
}

func (c *CConstVar) Equal(other Coeff) bool {
	o, ok := other.(*CConstVar)
	return ok && o.Name == c.Name
}

func (c *CMul) Equal(other Coeff) bool {
	o, ok := other.(*CMul)
	return ok && c.L.Equal(o.L) && c.R.Equal(o.R)
}

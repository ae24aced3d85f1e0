package affine

// Normalize applies the simplification laws from spec.md §4.1: constant
// folding of Const-only Add/Sub/Mul/Div/Mod, identity laws (0+e=e,
// e+0=e, e-0=e, 1*e=e, 0*e=0), and NormalizeCoeff on every coefficient.
// It does not reassociate: constants in a chain of '+' keep their
// positions, and a Mul nested inside a Mul keeps its own coefficient
// rather than being merged into the outer one. It is optional on the
// parse path and not applied automatically by Parse; callers that want a canonical form call
// it explicitly. Normalize must preserve evaluation under every variable
// binding: it only ever replaces a subtree with one that evaluates
// identically for all bindings.
func Normalize(e AffineExpr) AffineExpr {
	switch n := e.(type) {
	case *Var, *Const:
		return n
	case *Add:
		l, r := Normalize(n.L), Normalize(n.R)
		if isZero(l) {
			return r
		}
		if isZero(r) {
			return l
		}
		if lc, ok := l.(*Const); ok {
			if rc, ok := r.(*Const); ok {
				return &Const{Value: lc.Value + rc.Value}
			}
		}
		return &Add{L: l, R: r}
	case *Sub:
		l, r := Normalize(n.L), Normalize(n.R)
		if isZero(r) {
			return l
		}
		if lc, ok := l.(*Const); ok {
			if rc, ok := r.(*Const); ok {
				return &Const{Value: lc.Value - rc.Value}
			}
		}
		return &Sub{L: l, R: r}
	case *Mul:
		c, body := NormalizeCoeff(n.Coeff), Normalize(n.Expr)
		if cc, ok := c.(*CConst); ok {
			if cc.Value == 0 {
				return &Const{Value: 0}
			}
			if cc.Value == 1 {
				return body
			}
			if bc, ok := body.(*Const); ok {
				return &Const{Value: cc.Value * bc.Value}
			}
		}
		return NewMul(c, body)
	case *Div:
		body, c := Normalize(n.Expr), NormalizeCoeff(n.Coeff)
		if bc, ok := body.(*Const); ok {
			if cc, ok := c.(*CConst); ok {
				return &Const{Value: bc.Value / cc.Value}
			}
		}
		return &Div{Expr: body, Coeff: c}
	case *Mod:
		body, c := Normalize(n.Expr), NormalizeCoeff(n.Coeff)
		if bc, ok := body.(*Const); ok {
			if cc, ok := c.(*CConst); ok {
				return &Const{Value: bc.Value % cc.Value}
			}
		}
		return &Mod{Expr: body, Coeff: c}
	default:
		panic("affine: unhandled AffineExpr variant in Normalize")
	}
}

func isZero(e AffineExpr) bool {
	c, ok := e.(*Const)
	return ok && c.Value == 0
}

// NormalizeCoeff folds constant products and puts the constant factor on
// the left of a chain of coefficient multiplications (mandatory per
// spec.md §9: "mandatory for the Coeff::normalize tie-break of putting
// constants on the left").
func NormalizeCoeff(c Coeff) Coeff {
	switch n := c.(type) {
	case *CConst, *CConstVar:
		return n
	case *CMul:
		l, r := NormalizeCoeff(n.L), NormalizeCoeff(n.R)
		lc, lIsConst := l.(*CConst)
		rc, rIsConst := r.(*CConst)
		switch {
		case lIsConst && rIsConst:
			return &CConst{Value: lc.Value * rc.Value}
		case rIsConst && !lIsConst:
			// Put the constant factor first.
			return &CMul{L: r, R: l}
		case lIsConst:
			// c1 * (c2 * e) = (c1*c2) * e: combine nested constant
			// multipliers (r is already normalized, constant first).
			if inner, ok := r.(*CMul); ok {
				if ic, ok := inner.L.(*CConst); ok {
					return &CMul{L: &CConst{Value: lc.Value * ic.Value}, R: inner.R}
				}
			}
			return &CMul{L: l, R: r}
		default:
			return &CMul{L: l, R: r}
		}
	default:
		panic("affine: unhandled Coeff variant in NormalizeCoeff")
	}
}

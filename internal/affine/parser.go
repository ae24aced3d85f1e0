package affine

import (
	"strconv"
	"strings"

	"loopnest/internal/errors"
	"loopnest/internal/lex"
)

// Parse parses source text into an AffineExpr per the grammar in
// spec.md §4.1. The implementation is a handwritten recursive-descent
// parser with explicit precedence (+/- below */ /%), in the style of
// the teacher's internal/parser scanner + precedence-climbing parser,
// generalized to this grammar's own small token set.
func Parse(source string) (AffineExpr, error) {
	return ParseNamed("", source)
}

// ParseNamed is Parse with a filename attached to error positions.
func ParseNamed(filename, source string) (AffineExpr, error) {
	scanner := lex.NewScanner(filename, source)
	tokens := scanner.ScanTokens()
	c := lex.NewCursor(tokens, "affine")

	e, err := ParseFrom(c)
	if err != nil {
		return nil, err
	}
	if !c.IsAtEnd() {
		tok := c.Peek()
		return nil, c.Errorf(tok.Position, "unexpected trailing token %q", tok.Lexeme)
	}
	return e, nil
}

// ParseFrom parses a single AffineExpr starting at c's current position,
// leaving c positioned just after the expression. It lets grammars that
// embed an affine expression inline (instruction addresses) share one token stream with the surrounding grammar instead of
// re-tokenizing a substring.
func ParseFrom(c *lex.Cursor) (AffineExpr, error) {
	p := &parser{c: c}
	return p.parseExpr()
}

type parser struct {
	c *lex.Cursor
}

// parseExpr: term (('+'|'-') term)*
func (p *parser) parseExpr() (AffineExpr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.c.Match(lex.PLUS):
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = &Add{L: left, R: right}
		case p.c.Match(lex.MINUS):
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = &Sub{L: left, R: right}
		default:
			return left, nil
		}
	}
}

// parseTerm: factor (('/'|'%') coeff)?
func (p *parser) parseTerm() (AffineExpr, error) {
	f, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	switch {
	case p.c.Match(lex.SLASH):
		c, err := p.parseCoeff()
		if err != nil {
			return nil, err
		}
		return &Div{Expr: f, Coeff: c}, nil
	case p.c.Match(lex.PERCENT):
		c, err := p.parseCoeff()
		if err != nil {
			return nil, err
		}
		return &Mod{Expr: f, Coeff: c}, nil
	default:
		return f, nil
	}
}

// canStartFactor reports whether tt can begin the factor of a mul. A sign
// only does so right after an explicit '*'; otherwise it is left for
// parseExpr as a binary '+'/'-'.
func canStartFactor(tt lex.TokenType, hadStar bool) bool {
	switch tt {
	case lex.IDENT, lex.LPAREN, lex.INT:
		return true
	case lex.MINUS, lex.PLUS:
		return hadStar
	default:
		return false
	}
}

// parseFactor: mul | const | var | '(' expr ')'. mul and const share a
// parse path (both start by consuming a chain of coefficient atoms); see
// parseCoeffAtoms for the tie-break between "this is a bare constant"
// and "this is a coefficient in front of a multiplication".
func (p *parser) parseFactor() (AffineExpr, error) {
	tok := p.c.Peek()

	switch tok.Type {
	case lex.LPAREN:
		return p.parseParenOrCoeffGroupMul()
	case lex.IDENT:
		if isConstVarName(tok.Lexeme) {
			return p.parseCoeffChainThenMul()
		}
		p.c.Advance()
		return &Var{Name: tok.Lexeme}, nil
	case lex.INT, lex.MINUS, lex.PLUS:
		return p.parseCoeffChainThenMul()
	default:
		return nil, p.c.Errorf(tok.Position, "unexpected token %q in expression", tok.Lexeme)
	}
}

// parseParenOrCoeffGroupMul resolves the ambiguity between a
// parenthesized coeff group used as a multiplier ("(2*3) * x") and a
// plain parenthesized sub-expression ("(x + y)").
func (p *parser) parseParenOrCoeffGroupMul() (AffineExpr, error) {
	checkpoint := *p.c

	if atoms, ok := p.tryParseParenCoeffGroup(); ok {
		hadStar := p.c.Match(lex.STAR)
		if canStartFactor(p.c.Peek().Type, hadStar) {
			inner, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			return NewMul(foldAtoms(atoms), inner), nil
		}
		if hadStar {
			tok := p.c.Peek()
			return nil, p.c.Errorf(tok.Position, "expected factor after '*'")
		}
		// The parenthesized coeff group isn't followed by a
		// multiplication after all; re-parse it as a plain
		// parenthesized expression instead.
	}

	*p.c = checkpoint
	return p.parseParenExpr()
}

func (p *parser) parseParenExpr() (AffineExpr, error) {
	if _, err := p.c.Consume(lex.LPAREN, "to open a parenthesized expression"); err != nil {
		return nil, err
	}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.c.Consume(lex.RPAREN, "to close a parenthesized expression"); err != nil {
		return nil, err
	}
	return e, nil
}

// tryParseParenCoeffGroup attempts '(' coeff ')'; on any mismatch it
// reports ok=false and leaves the cursor wherever it stopped (the caller
// always rewinds on failure).
func (p *parser) tryParseParenCoeffGroup() (atoms []coeffAtom, ok bool) {
	if !p.c.Match(lex.LPAREN) {
		return nil, false
	}
	as, err := p.parseCoeffAtoms()
	if err != nil {
		return nil, false
	}
	if !p.c.Match(lex.RPAREN) {
		return nil, false
	}
	return as, true
}

// parseCoeffChainThenMul parses a coefficient atom chain starting at the
// current position, then resolves whether the result is a bare constant
// (§4.1 "const"), an invalid bare coefficient, or the coefficient half of
// a "mul".
func (p *parser) parseCoeffChainThenMul() (AffineExpr, error) {
	atoms, err := p.parseCoeffAtoms()
	if err != nil {
		return nil, err
	}

	hadStar := p.c.Match(lex.STAR)
	if canStartFactor(p.c.Peek().Type, hadStar) {
		inner, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return NewMul(foldAtoms(atoms), inner), nil
	}
	if hadStar {
		tok := p.c.Peek()
		return nil, p.c.Errorf(tok.Position, "expected factor after '*'")
	}

	if len(atoms) == 1 {
		if atoms[0].isPlainInt {
			return &Const{Value: atoms[0].intVal}, nil
		}
		return nil, p.c.Errorf(atoms[0].pos, "coefficient %q must be followed by a multiplication", atoms[0].coeff)
	}

	last := atoms[len(atoms)-1]
	if !last.isPlainInt {
		return nil, p.c.Errorf(last.pos, "coefficient %q must be followed by a multiplication", last.coeff)
	}
	rest := foldAtoms(atoms[:len(atoms)-1])
	return NewMul(rest, &Const{Value: last.intVal}), nil
}

// coeffAtom is one coeffFactor (constVar | int | '(' coeff ')'), tagged
// with whether it was a plain integer literal so factor-position parsing
// can peel the last atom off a fully-consumed chain back into a trailing
// `factor` when nothing else follows it (spec.md §4.1 "mul" always ends
// in a factor, never a bare coefficient).
type coeffAtom struct {
	coeff      Coeff
	isPlainInt bool
	intVal     int32
	pos        errors.Position
}

// parseCoeffAtoms parses coeff := coeffFactor ('*' coeffFactor)*,
// greedily extending the chain only while the token after '*' is itself
// a valid coeffFactor; otherwise the '*' is left unconsumed for the
// caller to interpret as the explicit multiplication before a trailing
// var/paren-expr factor.
func (p *parser) parseCoeffAtoms() ([]coeffAtom, error) {
	first, err := p.parseOneCoeffAtom()
	if err != nil {
		return nil, err
	}
	atoms := []coeffAtom{first}

	for p.c.Check(lex.STAR) {
		checkpoint := *p.c
		p.c.Advance() // '*'
		next, err := p.parseOneCoeffAtom()
		if err != nil {
			*p.c = checkpoint
			break
		}
		atoms = append(atoms, next)
	}
	return atoms, nil
}

// parseOneCoeffAtom parses a single constVar | int | '(' coeff ')'.
func (p *parser) parseOneCoeffAtom() (coeffAtom, error) {
	tok := p.c.Peek()

	switch tok.Type {
	case lex.IDENT:
		if !isConstVarName(tok.Lexeme) {
			return coeffAtom{}, p.c.Errorf(tok.Position, "expected coefficient, found variable %q", tok.Lexeme)
		}
		p.c.Advance()
		return coeffAtom{coeff: &CConstVar{Name: tok.Lexeme}, pos: tok.Position}, nil
	case lex.LPAREN:
		checkpoint := *p.c
		p.c.Advance()
		inner, err := p.parseCoeffAtoms()
		if err != nil {
			*p.c = checkpoint
			return coeffAtom{}, err
		}
		if _, err := p.c.Consume(lex.RPAREN, "to close a parenthesized coefficient"); err != nil {
			*p.c = checkpoint
			return coeffAtom{}, err
		}
		return coeffAtom{coeff: foldAtoms(inner), pos: tok.Position}, nil
	case lex.INT, lex.MINUS, lex.PLUS:
		val, pos, err := p.parseSignedInt()
		if err != nil {
			return coeffAtom{}, err
		}
		return coeffAtom{coeff: &CConst{Value: val}, isPlainInt: true, intVal: val, pos: pos}, nil
	default:
		return coeffAtom{}, p.c.Errorf(tok.Position, "expected a coefficient, found %q", tok.Lexeme)
	}
}

// parseCoeff parses a coeff strictly (used after '/' and '%'), with no
// ambiguity to resolve against a trailing factor.
func (p *parser) parseCoeff() (Coeff, error) {
	atoms, err := p.parseCoeffAtoms()
	if err != nil {
		return nil, err
	}
	return foldAtoms(atoms), nil
}

func foldAtoms(atoms []coeffAtom) Coeff {
	acc := atoms[0].coeff
	for _, a := range atoms[1:] {
		acc = &CMul{L: acc, R: a.coeff}
	}
	return acc
}

// parseSignedInt consumes an optional leading '+'/'-' immediately
// followed by digits (spec.md §4.1: "integer sign prefix is optional but
// consumed greedily when present").
func (p *parser) parseSignedInt() (int32, errors.Position, error) {
	neg := false
	pos := p.c.Peek().Position
	if p.c.Match(lex.MINUS) {
		neg = true
	} else if p.c.Match(lex.PLUS) {
		neg = false
	}

	tok, err := p.c.Consume(lex.INT, "in integer literal")
	if err != nil {
		return 0, pos, err
	}
	v, convErr := strconv.ParseInt(tok.Lexeme, 10, 32)
	if convErr != nil {
		return 0, pos, p.c.Errorf(tok.Position, "invalid integer literal %q", tok.Lexeme)
	}
	if neg {
		v = -v
	}
	return int32(v), pos, nil
}

// isConstVarName reports whether name is syntactically a ConstVar: an
// alphabetic run followed by an underscore and more alphanumerics
// (spec.md §3: "a ConstVar is syntactically distinguished by containing
// an underscore after its first alphabetic run").
func isConstVarName(name string) bool {
	i := strings.IndexByte(name, '_')
	if i <= 0 {
		return false
	}
	return i < len(name)-1
}

package instr

import (
	"loopnest/internal/affine"
	"loopnest/internal/lex"
)

// Parse parses one instruction per spec.md §4.2's grammar:
//
//	dataLoad  := reg '<=' ident indices cond?
//	dataStore := reg '=>' ident indices cond?
//	compute   := op dst srcs cond?
//	indices   := '[' expr (']' '[' expr)* ']'
//	srcs      := src (',' src)*
//	src       := reg | imm
//	reg       := 'R' alphanum*
//	imm       := '$' digit+
//	cond      := '(' ('EQ'|'NE'|'LT'|'LE'|'GT'|'GE') whitespace reg ')'
//
// The three alternatives share a leading identifier, so the parser
// decides which one it is by looking at the token right after that
// identifier: '<=' means dataLoad, '=>' means dataStore, anything else
// means compute (the identifier was the opcode, not a register).
func Parse(source string) (Instruction, error) {
	return ParseNamed("", source)
}

func ParseNamed(filename, source string) (Instruction, error) {
	scanner := lex.NewScanner(filename, source)
	tokens := scanner.ScanTokens()
	p := &parser{c: lex.NewCursor(tokens, "instr")}

	inst, err := p.parseInstruction()
	if err != nil {
		return nil, err
	}
	if !p.c.IsAtEnd() {
		tok := p.c.Peek()
		return nil, p.c.Errorf(tok.Position, "unexpected trailing token %q", tok.Lexeme)
	}
	return inst, nil
}

type parser struct {
	c *lex.Cursor
}

func (p *parser) parseInstruction() (Instruction, error) {
	lead, err := p.c.Consume(lex.IDENT, "starting an instruction")
	if err != nil {
		return nil, err
	}

	switch {
	case p.c.Match(lex.LE):
		access, err := p.parseAccess(lead.Lexeme)
		if err != nil {
			return nil, err
		}
		return &DataLoad{Access: access}, nil
	case p.c.Match(lex.FATARROW):
		access, err := p.parseAccess(lead.Lexeme)
		if err != nil {
			return nil, err
		}
		return &DataStore{Access: access}, nil
	default:
		c, err := p.parseComputeBody(lead.Lexeme)
		if err != nil {
			return nil, err
		}
		return &ComputeInstr{Compute: c}, nil
	}
}

func (p *parser) parseAccess(reg string) (DataAccess, error) {
	ident, err := p.c.Consume(lex.IDENT, "naming the accessed array")
	if err != nil {
		return DataAccess{}, err
	}
	addr, err := p.parseIndices()
	if err != nil {
		return DataAccess{}, err
	}
	sfx, cond, err := p.parseOptionalCond()
	if err != nil {
		return DataAccess{}, err
	}
	return DataAccess{Reg: reg, ArrayName: ident.Lexeme, Addr: addr, CondSfx: sfx, Cond: cond}, nil
}

func (p *parser) parseIndices() ([]affine.AffineExpr, error) {
	var addr []affine.AffineExpr
	if _, err := p.c.Consume(lex.LBRACKET, "opening an index expression"); err != nil {
		return nil, err
	}
	for {
		e, err := affine.ParseFrom(p.c)
		if err != nil {
			return nil, err
		}
		addr = append(addr, e)
		if _, err := p.c.Consume(lex.RBRACKET, "closing an index expression"); err != nil {
			return nil, err
		}
		if !p.c.Check(lex.LBRACKET) {
			break
		}
		p.c.Advance()
	}
	return addr, nil
}

func (p *parser) parseComputeBody(op string) (Compute, error) {
	dst, err := p.c.Consume(lex.IDENT, "naming the destination register")
	if err != nil {
		return Compute{}, err
	}
	srcs, err := p.parseSrcs()
	if err != nil {
		return Compute{}, err
	}
	sfx, cond, err := p.parseOptionalCond()
	if err != nil {
		return Compute{}, err
	}
	return Compute{Op: op, Src: srcs, Dst: dst.Lexeme, CondSfx: sfx, Cond: cond}, nil
}

func (p *parser) parseSrcs() ([]Operand, error) {
	first, err := p.parseSrc()
	if err != nil {
		return nil, err
	}
	srcs := []Operand{first}
	for p.c.Match(lex.COMMA) {
		next, err := p.parseSrc()
		if err != nil {
			return nil, err
		}
		srcs = append(srcs, next)
	}
	return srcs, nil
}

func (p *parser) parseSrc() (Operand, error) {
	if p.c.Match(lex.DOLLAR) {
		neg := p.c.Match(lex.MINUS)
		tok, err := p.c.Consume(lex.INT, "in an immediate operand")
		if err != nil {
			return nil, err
		}
		v, err := parseInt32(p.c, tok)
		if err != nil {
			return nil, err
		}
		if neg {
			v = -v
		}
		return &Imm{Value: v}, nil
	}
	tok, err := p.c.Consume(lex.IDENT, "in a register operand")
	if err != nil {
		return nil, err
	}
	return &Reg{Name: tok.Lexeme}, nil
}

// parseOptionalCond parses the optional cond := '(' suffix reg ')'
// trailer shared by all three instruction shapes.
func (p *parser) parseOptionalCond() (CondSuffix, string, error) {
	if !p.c.Check(lex.LPAREN) {
		return NoCond, "", nil
	}
	p.c.Advance()

	kw, err := p.c.Consume(lex.IDENT, "a condition suffix (EQ, NE, LT, LE, GT, GE)")
	if err != nil {
		return NoCond, "", err
	}
	sfx, ok := parseCondSuffix(kw.Lexeme)
	if !ok {
		return NoCond, "", p.c.Errorf(kw.Position, "unknown condition suffix %q", kw.Lexeme)
	}
	reg, err := p.c.Consume(lex.IDENT, "naming the condition register")
	if err != nil {
		return NoCond, "", err
	}
	if _, err := p.c.Consume(lex.RPAREN, "closing a condition"); err != nil {
		return NoCond, "", err
	}
	return sfx, reg.Lexeme, nil
}

func parseCondSuffix(s string) (CondSuffix, bool) {
	switch s {
	case "EQ":
		return EQ, true
	case "NE":
		return NE, true
	case "LT":
		return LT, true
	case "LE":
		return LE, true
	case "GT":
		return GT, true
	case "GE":
		return GE, true
	default:
		return NoCond, false
	}
}

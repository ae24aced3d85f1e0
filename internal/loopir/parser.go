package loopir

import (
	"strconv"

	"loopnest/internal/lex"
)

// ParseIter parses one iterator per spec.md §4.3:
//
//	'for' id 'in' '(' int '..' int ')' ('.step(' int ')')?
//
// step defaults to 1 when the suffix is absent.
func ParseIter(source string) (LoopIter, error) {
	scanner := lex.NewScanner("", source)
	tokens := scanner.ScanTokens()
	c := lex.NewCursor(tokens, "loop-iter")

	it, err := parseIterFrom(c)
	if err != nil {
		return LoopIter{}, err
	}
	if !c.IsAtEnd() {
		tok := c.Peek()
		return LoopIter{}, c.Errorf(tok.Position, "unexpected trailing token %q", tok.Lexeme)
	}
	return it, nil
}

func parseIterFrom(c *lex.Cursor) (LoopIter, error) {
	if _, err := expectKeyword(c, "for"); err != nil {
		return LoopIter{}, err
	}
	name, err := c.Consume(lex.IDENT, "naming the iterator")
	if err != nil {
		return LoopIter{}, err
	}
	if _, err := expectKeyword(c, "in"); err != nil {
		return LoopIter{}, err
	}
	if _, err := c.Consume(lex.LPAREN, "opening the iterator bound"); err != nil {
		return LoopIter{}, err
	}
	lo, err := parseInt(c)
	if err != nil {
		return LoopIter{}, err
	}
	if _, err := c.Consume(lex.RANGE, "in the iterator bound"); err != nil {
		return LoopIter{}, err
	}
	hi, err := parseInt(c)
	if err != nil {
		return LoopIter{}, err
	}
	if _, err := c.Consume(lex.RPAREN, "closing the iterator bound"); err != nil {
		return LoopIter{}, err
	}

	step := int32(1)
	if c.Check(lex.DOT) {
		c.Advance()
		if _, err := expectKeyword(c, "step"); err != nil {
			return LoopIter{}, err
		}
		if _, err := c.Consume(lex.LPAREN, "opening the step value"); err != nil {
			return LoopIter{}, err
		}
		step, err = parseInt(c)
		if err != nil {
			return LoopIter{}, err
		}
		if _, err := c.Consume(lex.RPAREN, "closing the step value"); err != nil {
			return LoopIter{}, err
		}
	}

	return LoopIter{IterName: name.Lexeme, Lo: lo, Hi: hi, Step: step}, nil
}

func expectKeyword(c *lex.Cursor, kw string) (lex.Token, error) {
	tok, err := c.Consume(lex.IDENT, "keyword \""+kw+"\"")
	if err != nil {
		return tok, err
	}
	if tok.Lexeme != kw {
		return tok, c.Errorf(tok.Position, "expected keyword %q, found %q", kw, tok.Lexeme)
	}
	return tok, nil
}

func parseInt(c *lex.Cursor) (int32, error) {
	neg := c.Match(lex.MINUS)
	tok, err := c.Consume(lex.INT, "in integer literal")
	if err != nil {
		return 0, err
	}
	v, convErr := strconv.ParseInt(tok.Lexeme, 10, 32)
	if convErr != nil {
		return 0, c.Errorf(tok.Position, "invalid integer literal %q", tok.Lexeme)
	}
	if neg {
		v = -v
	}
	return int32(v), nil
}

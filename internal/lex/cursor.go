package lex

import (
	"fmt"

	"loopnest/internal/errors"
)

// Cursor walks a token slice with the peek/advance/match/consume shape the
// teacher's handwritten parser used, shared here so every grammar
// (affine, instruction, loop iterator) gets the same small vocabulary of
// parsing primitives instead of re-deriving it three times.
type Cursor struct {
	tokens  []Token
	current int
	kind    string // grammar name, used in ParseError.Kind
}

// NewCursor wraps a token stream for one grammar kind (e.g. "affine").
func NewCursor(tokens []Token, kind string) *Cursor {
	return &Cursor{tokens: tokens, kind: kind}
}

func (c *Cursor) Peek() Token {
	return c.tokens[c.current]
}

func (c *Cursor) Previous() Token {
	return c.tokens[c.current-1]
}

func (c *Cursor) IsAtEnd() bool {
	return c.Peek().Type == EOF
}

func (c *Cursor) Advance() Token {
	if !c.IsAtEnd() {
		c.current++
	}
	return c.Previous()
}

func (c *Cursor) Check(tt TokenType) bool {
	if c.IsAtEnd() {
		return tt == EOF
	}
	return c.Peek().Type == tt
}

func (c *Cursor) Match(types ...TokenType) bool {
	for _, tt := range types {
		if c.Check(tt) {
			c.Advance()
			return true
		}
	}
	return false
}

// Consume requires the current token to have type tt, advancing past it;
// otherwise it returns a *errors.ParseError describing what was expected.
func (c *Cursor) Consume(tt TokenType, context string) (Token, error) {
	if c.Check(tt) {
		return c.Advance(), nil
	}
	got := c.Peek()
	return Token{}, c.Errorf(got.Position, "expected %s %s, found %s %q", tt, context, got.Type, got.Lexeme)
}

// Errorf builds a *errors.ParseError tagged with this cursor's grammar kind.
func (c *Cursor) Errorf(pos errors.Position, format string, args ...any) error {
	return &errors.ParseError{
		Kind:     c.kind,
		Message:  fmt.Sprintf(format, args...),
		Position: pos,
	}
}

package instr

import (
	"strconv"

	"loopnest/internal/lex"
)

func parseInt32(c *lex.Cursor, tok lex.Token) (int32, error) {
	v, err := strconv.ParseInt(tok.Lexeme, 10, 32)
	if err != nil {
		return 0, c.Errorf(tok.Position, "invalid integer literal %q", tok.Lexeme)
	}
	return int32(v), nil
}

package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Reporter renders errors against a named source, caret-style, the way
// the original toolchain's CLI reports syntax errors.
type Reporter struct {
	filename string
	lines    []string
}

// NewReporter builds a Reporter for a given filename/source pair.
func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// Format renders err with a caret under its position when the error
// carries one, falling back to a plain message otherwise.
func (r *Reporter) Format(err error) string {
	var pos Position
	var code string

	switch e := err.(type) {
	case *ParseError:
		pos, code = e.Position, e.Code()
	default:
		return color.New(color.FgRed, color.Bold).Sprintf("error: %s", err.Error())
	}

	var b strings.Builder

	bold := color.New(color.Bold).SprintFunc()
	red := color.New(color.FgRed, color.Bold).SprintFunc()

	fmt.Fprintf(&b, "%s %s\n", red("error["+code+"]:"), bold(err.Error()))

	if pos.Line >= 1 && pos.Line <= len(r.lines) {
		line := r.lines[pos.Line-1]
		fmt.Fprintf(&b, "  --> %s\n", pos)
		fmt.Fprintf(&b, "   | %s\n", line)
		col := pos.Column
		if col < 1 {
			col = 1
		}
		fmt.Fprintf(&b, "   | %s%s\n", strings.Repeat(" ", col-1), red("^"))
	}

	return b.String()
}

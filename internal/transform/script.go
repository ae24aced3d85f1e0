package transform

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"loopnest/internal/errors"
)

// scriptLexer tokenizes the transform-script grammar from spec.md §6.
// Longer operators are listed before their prefixes ("<->" before "->"
// before "-") so the regex alternation always takes the longest match.
var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Operator", Pattern: `<->|->|=>|[(),!-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var scriptParser = buildScriptParser()

func buildScriptParser() *participle.Parser[scriptFile] {
	p, err := participle.Build[scriptFile](
		participle.Lexer(scriptLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(4),
	)
	if err != nil {
		panic(fmt.Errorf("transform: failed to build script parser: %w", err))
	}
	return p
}

type scriptFile struct {
	Lines []*scriptLine `@@*`
}

type scriptLine struct {
	Comment *string     `  @Comment`
	Item    *scriptItem `| "-" @@`
}

type scriptItem struct {
	Tag             *string     `[ "!" @Ident ]`
	Tiling          *tilingRule `(  @@`
	Renaming        *renamingRule ` | @@`
	Reorder         *reorderRule   ` | @@`
	Map             *mapRule       ` | @@ )`
	TrailingComment *string        `[ @Comment ]`
}

type tilingRule struct {
	LHS      string `@Ident "->" "("`
	TupleOld string `@Ident ","`
	TupleNew string `@Ident ")" "by"`
	Factor   string `@Int`
}

type renamingRule struct {
	Old string `@Ident "->"`
	New string `@Ident`
}

type reorderRule struct {
	A string `@Ident "<->"`
	B string `@Ident`
}

type mapRule struct {
	Iter string `@Ident "=>"`
	Kind string `@("Spatial" | "Temporal")`
}

// ParseScript parses a transform script into its ordered list of
// Transform values, per spec.md §6:
//
//	transform := tiling | renaming | reorder | mapSpat | mapTemp
//	tiling    := ['!Tiling']? id '->' '(' id ',' id ')' 'by' int
//	renaming  := ['!Renaming']? id '->' id
//	reorder   := ['!Reorder']? id '<->' id
//	mapSpat   := ['!MapSpatial']? id '=>' 'Spatial'
//	mapTemp   := ['!MapTemporal']? id '=>' 'Temporal'
//	script    := (comment | '-' transform (comment)?)*
//
// The optional "!Name" tag is documentation only; it is not checked
// against which alternative actually matched.
func ParseScript(source string) ([]Transform, error) {
	file, err := scriptParser.ParseString("", source)
	if err != nil {
		return nil, &errors.ParseError{Kind: "transform-script", Message: err.Error()}
	}

	var out []Transform
	for _, line := range file.Lines {
		if line.Item == nil {
			continue
		}
		t, err := compileItem(line.Item)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func compileItem(item *scriptItem) (Transform, error) {
	switch {
	case item.Tiling != nil:
		r := item.Tiling
		if r.LHS != r.TupleOld {
			return nil, &errors.ParseError{
				Kind:    "transform-script",
				Message: fmt.Sprintf("tiling target tuple's first id %q must equal the left-hand id %q", r.TupleOld, r.LHS),
			}
		}
		factor, convErr := strconv.ParseInt(r.Factor, 10, 32)
		if convErr != nil {
			return nil, &errors.ParseError{Kind: "transform-script", Message: "invalid tiling factor " + r.Factor}
		}
		return &Tiling{Old: r.LHS, New: r.TupleNew, Factor: int32(factor)}, nil
	case item.Renaming != nil:
		r := item.Renaming
		return &Renaming{Old: r.Old, New: r.New}, nil
	case item.Reorder != nil:
		r := item.Reorder
		return &Reorder{A: r.A, B: r.B}, nil
	case item.Map != nil:
		r := item.Map
		if r.Kind == "Spatial" {
			return &MapSpatial{Iter: r.Iter}, nil
		}
		return &MapTemporal{Iter: r.Iter}, nil
	default:
		return nil, &errors.ParseError{Kind: "transform-script", Message: "empty transform item"}
	}
}

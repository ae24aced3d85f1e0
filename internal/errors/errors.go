package errors

import "fmt"

// ParseError reports malformed affine, instruction, loop, or
// transform-script text.
type ParseError struct {
	Kind     string // "affine", "instr", "loop-iter", "transform-script"
	Message  string
	Position Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s parse error: %s", e.Position, e.Kind, e.Message)
}

func (e *ParseError) Code() string { return CodeParseError }

// UnboundVariableError is returned when evaluating an AffineExpr under a
// binding that does not cover every referenced name.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable %q", e.Name)
}

func (e *UnboundVariableError) Code() string { return CodeUnboundVariable }

// NonDivisibleTileError is returned when a Tiling transform's factor does
// not divide the iterator's bound.
type NonDivisibleTileError struct {
	Iter   string
	Bound  int
	Factor int
}

func (e *NonDivisibleTileError) Error() string {
	return fmt.Sprintf("tiling %q: bound %d is not divisible by factor %d",
		e.Iter, e.Bound, e.Factor)
}

func (e *NonDivisibleTileError) Code() string { return CodeNonDivisibleTile }

// TileOverCoeffVarError is returned when a Tiling transform targets an
// iterator that is used as a ConstVar coefficient somewhere in the body.
type TileOverCoeffVarError struct {
	Name string
}

func (e *TileOverCoeffVarError) Error() string {
	return fmt.Sprintf("cannot tile %q: used as a coefficient variable", e.Name)
}

func (e *TileOverCoeffVarError) Code() string { return CodeTileOverCoeffVar }

// IterNotFoundError is returned when a Tiling, Reorder, or Renaming
// transform references an iterator absent from the nest at the point of
// application.
type IterNotFoundError struct {
	Name string
}

func (e *IterNotFoundError) Error() string {
	return fmt.Sprintf("iterator %q not found", e.Name)
}

func (e *IterNotFoundError) Code() string { return CodeIterNotFound }

// MissingFeatureError is returned by the pipeline when a pass's
// required_features are not a subset of the workspace's available
// features at the point the pass would run.
type MissingFeatureError struct {
	Pass    string
	Feature string
}

func (e *MissingFeatureError) Error() string {
	return fmt.Sprintf("pass %q requires feature %q, which is not yet available", e.Pass, e.Feature)
}

func (e *MissingFeatureError) Code() string { return CodeMissingFeature }

// UnknownHookError is returned when attaching a property against a hook id
// the workspace does not recognize.
type UnknownHookError struct {
	HookID string
}

func (e *UnknownHookError) Error() string {
	return fmt.Sprintf("unknown property hook %q", e.HookID)
}

func (e *UnknownHookError) Code() string { return CodeUnknownHook }

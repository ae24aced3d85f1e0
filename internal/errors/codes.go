package errors

// Error codes for the loopnest toolchain.
//
// Error code ranges:
// E1001-E1019: parse errors (affine / instruction / loop / transform-script)
// E1020-E1029: affine evaluation errors
// E1030-E1039: transform application errors
// E1040-E1049: pipeline/workspace errors
const (
	CodeParseError           = "E1001"
	CodeUnboundVariable      = "E1020"
	CodeNonDivisibleTile     = "E1030"
	CodeTileOverCoeffVar     = "E1031"
	CodeIterNotFound         = "E1032"
	CodeMissingFeature       = "E1040"
	CodeUnknownHook          = "E1041"
)

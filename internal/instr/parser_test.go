package instr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loopnest/internal/affine"
	"loopnest/internal/instr"
)

func TestParse_Fixture_B(t *testing.T) {
	got, err := instr.Parse("R1 <= A[x][y] (EQ Rcmp)")
	require.NoError(t, err)

	want := &instr.DataLoad{Access: instr.DataAccess{
		Reg:       "R1",
		ArrayName: "A",
		Addr:      []affine.AffineExpr{&affine.Var{Name: "x"}, &affine.Var{Name: "y"}},
		CondSfx:   instr.EQ,
		Cond:      "Rcmp",
	}}
	assert.True(t, want.Equal(got), "got %s", got)
}

func TestParse_DataStore(t *testing.T) {
	got, err := instr.Parse("R2 => B[i]")
	require.NoError(t, err)
	want := &instr.DataStore{Access: instr.DataAccess{
		Reg:       "R2",
		ArrayName: "B",
		Addr:      []affine.AffineExpr{&affine.Var{Name: "i"}},
	}}
	assert.True(t, want.Equal(got))
}

func TestParse_Compute(t *testing.T) {
	got, err := instr.Parse("ADD R3 R1, $2")
	require.NoError(t, err)
	want := &instr.ComputeInstr{Compute: instr.Compute{
		Op:  "ADD",
		Dst: "R3",
		Src: []instr.Operand{&instr.Reg{Name: "R1"}, &instr.Imm{Value: 2}},
	}}
	assert.True(t, want.Equal(got))
}

func TestParse_ComputeWithCond(t *testing.T) {
	got, err := instr.Parse("SUB R3 R1, R2 (LT Rcmp)")
	require.NoError(t, err)
	want := &instr.ComputeInstr{Compute: instr.Compute{
		Op:      "SUB",
		Dst:     "R3",
		Src:     []instr.Operand{&instr.Reg{Name: "R1"}, &instr.Reg{Name: "R2"}},
		CondSfx: instr.LT,
		Cond:    "Rcmp",
	}}
	assert.True(t, want.Equal(got))
}

func TestParse_MultiDimIndices(t *testing.T) {
	got, err := instr.Parse("Ra <= A[m][k]")
	require.NoError(t, err)
	want := &instr.DataLoad{Access: instr.DataAccess{
		Reg:       "Ra",
		ArrayName: "A",
		Addr:      []affine.AffineExpr{&affine.Var{Name: "m"}, &affine.Var{Name: "k"}},
	}}
	assert.True(t, want.Equal(got))
}

func TestParse_RoundTrip(t *testing.T) {
	insts := []instr.Instruction{
		&instr.DataLoad{Access: instr.DataAccess{
			Reg: "R1", ArrayName: "A",
			Addr:    []affine.AffineExpr{&affine.Var{Name: "x"}, &affine.Var{Name: "y"}},
			CondSfx: instr.EQ, Cond: "Rcmp",
		}},
		&instr.DataStore{Access: instr.DataAccess{
			Reg: "Rb", ArrayName: "B",
			Addr: []affine.AffineExpr{&affine.Add{
				L: &affine.Mul{Coeff: &affine.CConst{Value: 4}, Expr: &affine.Var{Name: "simd"}},
				R: &affine.Var{Name: "n"},
			}},
		}},
		&instr.ComputeInstr{Compute: instr.Compute{
			Op: "MUL", Dst: "R3",
			Src: []instr.Operand{&instr.Reg{Name: "R1"}, &instr.Imm{Value: -7}},
		}},
	}

	for _, inst := range insts {
		text := inst.String()
		reparsed, err := instr.Parse(text)
		require.NoError(t, err, "reparsing %q", text)
		assert.Truef(t, inst.Equal(reparsed), "round-trip mismatch for %q: got %s", text, reparsed)
	}
}

func TestParse_TilingFixtureBody(t *testing.T) {
	got, err := instr.Parse("Rb => B[4*simd + n]")
	require.NoError(t, err)
	want := &instr.DataStore{Access: instr.DataAccess{
		Reg:       "Rb",
		ArrayName: "B",
		Addr: []affine.AffineExpr{&affine.Add{
			L: &affine.Mul{Coeff: &affine.CConst{Value: 4}, Expr: &affine.Var{Name: "simd"}},
			R: &affine.Var{Name: "n"},
		}},
	}}
	assert.True(t, want.Equal(got))
}

func TestParse_UnknownCondSuffixIsError(t *testing.T) {
	_, err := instr.Parse("R1 <= A[x] (XX Rcmp)")
	assert.Error(t, err)
}

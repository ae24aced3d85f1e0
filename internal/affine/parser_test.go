package affine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loopnest/internal/affine"
)

func TestParse_Fixture_A(t *testing.T) {
	got, err := affine.Parse("(1*x + M_a*y)/ 3 - 3*z%5")
	require.NoError(t, err)

	want := &affine.Sub{
		L: &affine.Div{
			Expr: &affine.Add{
				L: &affine.Var{Name: "x"},
				R: &affine.Mul{Coeff: &affine.CConstVar{Name: "M_a"}, Expr: &affine.Var{Name: "y"}},
			},
			Coeff: &affine.CConst{Value: 3},
		},
		R: &affine.Mod{
			Expr:  &affine.Mul{Coeff: &affine.CConst{Value: 3}, Expr: &affine.Var{Name: "z"}},
			Coeff: &affine.CConst{Value: 5},
		},
	}
	assert.True(t, want.Equal(got), "got %s, want %s", got, want)
}

func TestParse_ImplicitStar(t *testing.T) {
	got, err := affine.Parse("3x")
	require.NoError(t, err)
	want := &affine.Mul{Coeff: &affine.CConst{Value: 3}, Expr: &affine.Var{Name: "x"}}
	assert.True(t, want.Equal(got))
}

func TestParse_CoeffVarChain(t *testing.T) {
	got, err := affine.Parse("M_a * N_b * i")
	require.NoError(t, err)
	want := &affine.Mul{
		Coeff: &affine.CMul{L: &affine.CConstVar{Name: "M_a"}, R: &affine.CConstVar{Name: "N_b"}},
		Expr:  &affine.Var{Name: "i"},
	}
	assert.True(t, want.Equal(got))
}

func TestParse_LiteralOneElided(t *testing.T) {
	got, err := affine.Parse("1 * x")
	require.NoError(t, err)
	assert.True(t, (&affine.Var{Name: "x"}).Equal(got))
}

func TestParse_BareConst(t *testing.T) {
	got, err := affine.Parse("42")
	require.NoError(t, err)
	assert.True(t, (&affine.Const{Value: 42}).Equal(got))
}

func TestParse_NegativeConst(t *testing.T) {
	got, err := affine.Parse("-5")
	require.NoError(t, err)
	assert.True(t, (&affine.Const{Value: -5}).Equal(got))
}

func TestParse_ParenGroupAsExpr(t *testing.T) {
	got, err := affine.Parse("(x + y) / 2")
	require.NoError(t, err)
	want := &affine.Div{
		Expr:  &affine.Add{L: &affine.Var{Name: "x"}, R: &affine.Var{Name: "y"}},
		Coeff: &affine.CConst{Value: 2},
	}
	assert.True(t, want.Equal(got))
}

func TestParse_ParenCoeffGroupAsMultiplier(t *testing.T) {
	got, err := affine.Parse("(2*3) * x")
	require.NoError(t, err)
	want := &affine.Mul{
		Coeff: &affine.CMul{L: &affine.CConst{Value: 2}, R: &affine.CConst{Value: 3}},
		Expr:  &affine.Var{Name: "x"},
	}
	assert.True(t, want.Equal(got))
}

func TestParse_BareCoeffChainWithoutFactorIsError(t *testing.T) {
	_, err := affine.Parse("M_a")
	assert.Error(t, err)
}

func TestParse_TrailingGarbageIsError(t *testing.T) {
	_, err := affine.Parse("x +")
	assert.Error(t, err)
}

func TestParse_RoundTrip(t *testing.T) {
	exprs := []affine.AffineExpr{
		&affine.Var{Name: "i"},
		&affine.Const{Value: 7},
		&affine.Add{L: &affine.Var{Name: "i"}, R: &affine.Const{Value: 3}},
		&affine.Mul{Coeff: &affine.CConst{Value: 4}, Expr: &affine.Var{Name: "simd"}},
		&affine.Mul{Coeff: &affine.CConstVar{Name: "M_a"}, Expr: &affine.Add{L: &affine.Var{Name: "i"}, R: &affine.Var{Name: "j"}}},
		&affine.Div{Expr: &affine.Var{Name: "i"}, Coeff: &affine.CConst{Value: 2}},
		&affine.Mod{Expr: &affine.Var{Name: "i"}, Coeff: &affine.CConst{Value: 2}},
	}

	for _, e := range exprs {
		text := e.String()
		reparsed, err := affine.Parse(text)
		require.NoError(t, err, "reparsing %q", text)
		assert.Truef(t, e.Equal(reparsed), "round-trip mismatch for %q: got %s", text, reparsed)
	}
}

func TestParse_TilingFixture(t *testing.T) {
	got, err := affine.Parse("4*simd + n")
	require.NoError(t, err)
	want := &affine.Add{
		L: &affine.Mul{Coeff: &affine.CConst{Value: 4}, Expr: &affine.Var{Name: "simd"}},
		R: &affine.Var{Name: "n"},
	}
	assert.True(t, want.Equal(got))
}

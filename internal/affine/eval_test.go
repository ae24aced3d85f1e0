package affine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loopnest/internal/affine"
	"loopnest/internal/errors"
)

func TestEvaluate_Arithmetic(t *testing.T) {
	e := &affine.Sub{
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
	vars := map[string]int32{"x": 1, "y": 2, "M_a": 4, "z": 7}
	// (1 + 4*2)/3 - (3*7)%5 = 9/3 - 21%5 = 3 - 1 = 2
	got, err := affine.Evaluate(e, vars)
	require.NoError(t, err)
	assert.Equal(t, int32(2), got)
}

func TestEvaluate_UnboundVariable(t *testing.T) {
	e := &affine.Var{Name: "i"}
	_, err := affine.Evaluate(e, map[string]int32{})
	require.Error(t, err)
	var unbound *errors.UnboundVariableError
	require.ErrorAs(t, err, &unbound)
	assert.Equal(t, "i", unbound.Name)
}

func TestEvaluate_UnboundConstVarCoeff(t *testing.T) {
	e := &affine.Mul{Coeff: &affine.CConstVar{Name: "M_a"}, Expr: &affine.Const{Value: 1}}
	_, err := affine.Evaluate(e, map[string]int32{})
	require.Error(t, err)
	var unbound *errors.UnboundVariableError
	require.ErrorAs(t, err, &unbound)
	assert.Equal(t, "M_a", unbound.Name)
}

func TestVars_FlattenedDuplicatesPreserved(t *testing.T) {
	e := &affine.Add{
		L: &affine.Mul{Coeff: &affine.CConst{Value: 4}, Expr: &affine.Var{Name: "i"}},
		R: &affine.Var{Name: "i"},
	}
	assert.Equal(t, []string{"i", "i"}, affine.Vars(e))
}

func TestVars_ExcludesCoeffConstVars(t *testing.T) {
	e := &affine.Mul{Coeff: &affine.CConstVar{Name: "M_a"}, Expr: &affine.Var{Name: "j"}}
	assert.Equal(t, []string{"j"}, affine.Vars(e))
}

func TestVars_ConstHasNoVars(t *testing.T) {
	assert.Empty(t, affine.Vars(&affine.Const{Value: 3}))
}

func TestCoeffVars(t *testing.T) {
	c := &affine.CMul{L: &affine.CConstVar{Name: "M_a"}, R: &affine.CConst{Value: 2}}
	assert.Equal(t, []string{"M_a"}, affine.CoeffVars(c))
}

package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loopnest/internal/errors"
	"loopnest/internal/instr"
	"loopnest/internal/loopir"
	"loopnest/internal/transform"
)

func nestFixtureC(t *testing.T) *loopir.LoopNest {
	t.Helper()
	body, err := instr.Parse("Rb <= B[n]")
	require.NoError(t, err)
	return &loopir.LoopNest{
		Iters: []loopir.LoopIter{{IterName: "n", Lo: 0, Hi: 200, Step: 1}},
		Body:  []instr.Instruction{body},
	}
}

func TestApply_TilingFixture_C(t *testing.T) {
	nest := nestFixtureC(t)
	got, err := transform.Apply(&transform.Tiling{Old: "n", New: "simd", Factor: 4}, nest)
	require.NoError(t, err)

	assert.Equal(t, []loopir.LoopIter{
		{IterName: "n", Lo: 0, Hi: 50, Step: 1},
		{IterName: "simd", Lo: 0, Hi: 4, Step: 1},
	}, got.Iters)

	want, err := instr.Parse("Rb <= B[4*simd + n]")
	require.NoError(t, err)
	require.Len(t, got.Body, 1)
	assert.True(t, want.Equal(got.Body[0]), "got %s", got.Body[0])
}

func TestApply_TilingFixture_D_NonDivisible(t *testing.T) {
	nest := nestFixtureC(t)
	_, err := transform.Apply(&transform.Tiling{Old: "n", New: "simd", Factor: 3}, nest)
	require.Error(t, err)
	var nd *errors.NonDivisibleTileError
	require.ErrorAs(t, err, &nd)
	assert.Equal(t, "n", nd.Iter)
	assert.Equal(t, 200, nd.Bound)
	assert.Equal(t, 3, nd.Factor)
}

func TestApply_TilingOverCoeffVar(t *testing.T) {
	// "M_a" is syntactically a ConstVar (underscore after its first
	// alphabetic run), so even though it is declared as an iterator, any
	// occurrence of it in an address expression parses as a coefficient,
	// not a loop-dimension Var — which Tiling must reject.
	body, err := instr.Parse("Rb <= B[M_a*i]")
	require.NoError(t, err)
	nest := &loopir.LoopNest{
		Iters: []loopir.LoopIter{{IterName: "M_a", Lo: 0, Hi: 4, Step: 1}},
		Body:  []instr.Instruction{body},
	}
	_, err = transform.Apply(&transform.Tiling{Old: "M_a", New: "simd", Factor: 2}, nest)
	require.Error(t, err)
	var tv *errors.TileOverCoeffVarError
	require.ErrorAs(t, err, &tv)
	assert.Equal(t, "M_a", tv.Name)
}

func TestApply_Renaming(t *testing.T) {
	nest := nestFixtureC(t)
	got, err := transform.Apply(&transform.Renaming{Old: "n", New: "k"}, nest)
	require.NoError(t, err)
	assert.Equal(t, "k", got.Iters[0].IterName)
	want, err := instr.Parse("Rb <= B[k]")
	require.NoError(t, err)
	assert.True(t, want.Equal(got.Body[0]))
}

func TestApply_ReorderNotFound(t *testing.T) {
	nest := nestFixtureC(t)
	_, err := transform.Apply(&transform.Reorder{A: "n", B: "missing"}, nest)
	require.Error(t, err)
	var nf *errors.IterNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "missing", nf.Name)
}

func TestApply_Reorder(t *testing.T) {
	nest := &loopir.LoopNest{
		Iters: []loopir.LoopIter{
			{IterName: "i", Lo: 0, Hi: 10, Step: 1},
			{IterName: "j", Lo: 0, Hi: 20, Step: 1},
		},
	}
	got, err := transform.Apply(&transform.Reorder{A: "i", B: "j"}, nest)
	require.NoError(t, err)
	assert.Equal(t, "j", got.Iters[0].IterName)
	assert.Equal(t, "i", got.Iters[1].IterName)
}

func TestApply_MapSpatialAndTemporal(t *testing.T) {
	nest := nestFixtureC(t)
	got, err := transform.Apply(&transform.MapSpatial{Iter: "n"}, nest)
	require.NoError(t, err)
	require.NotNil(t, got.Properties)
	assert.Equal(t, loopir.MappingSpatial, got.Properties.Mapping["n"].Kind)

	got2, err := transform.Apply(&transform.MapTemporal{Iter: "n"}, got)
	require.NoError(t, err)
	assert.Equal(t, loopir.MappingTemporal, got2.Properties.Mapping["n"].Kind)
}

func TestApplyAll_LeftFold(t *testing.T) {
	nest := nestFixtureC(t)
	script := []transform.Transform{
		&transform.Tiling{Old: "n", New: "simd", Factor: 4},
		&transform.Renaming{Old: "simd", New: "lane"},
	}

	step1, err := transform.Apply(script[0], nest)
	require.NoError(t, err)
	step2, err := transform.Apply(script[1], step1)
	require.NoError(t, err)

	got, err := transform.ApplyAll(script, nest)
	require.NoError(t, err)
	assert.True(t, step2.Equal(got))
}

func TestApply_IdentityOnUnaffectedNodes(t *testing.T) {
	nest := nestFixtureC(t)
	got, err := transform.Apply(&transform.Renaming{Old: "m", New: "k"}, &loopir.LoopNest{
		Iters: append([]loopir.LoopIter{{IterName: "m", Lo: 0, Hi: 10, Step: 1}}, nest.Iters...),
		Body:  nest.Body,
	})
	require.NoError(t, err)
	// Renaming "m" never appears in nest.Body's address expr (it
	// references "n"), so the body is unchanged.
	assert.True(t, nest.Body[0].Equal(got.Body[0]))
}

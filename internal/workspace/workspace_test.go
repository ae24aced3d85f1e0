package workspace_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loopnest/internal/errors"
	"loopnest/internal/instr"
	"loopnest/internal/loopir"
	"loopnest/internal/workspace"
)

type stubProperty struct {
	id   string
	text string
}

func (s stubProperty) PropertyID() string { return s.id }
func (s stubProperty) Display() string    { return s.text }

func fixtureNest(t *testing.T) *loopir.LoopNest {
	t.Helper()
	body, err := instr.Parse("Rb => B[i]")
	require.NoError(t, err)
	return &loopir.LoopNest{
		Iters: []loopir.LoopIter{{IterName: "i", Lo: 0, Hi: 8, Step: 1}},
		Body:  []instr.Instruction{body},
	}
}

func TestAddProperty_UnknownHookIsError(t *testing.T) {
	w := workspace.New(fixtureNest(t))
	err := w.AddProperty("Inst#99", stubProperty{id: "x", text: "x"})
	require.Error(t, err)
	var hookErr *errors.UnknownHookError
	assert.ErrorAs(t, err, &hookErr)
}

func TestAddProperty_ValidHooksAccepted(t *testing.T) {
	w := workspace.New(fixtureNest(t))

	require.NoError(t, w.AddProperty(workspace.IterHook(0), stubProperty{id: "free_dims", text: "free_dims: []"}))
	require.NoError(t, w.AddProperty(workspace.InstHook(0), stubProperty{id: "accessed_dims", text: "accessed_dims: [i]"}))
	require.NoError(t, w.AddProperty(workspace.GlobalHook, stubProperty{id: "arch", text: "arch: present"}))

	assert.Len(t, w.Properties(workspace.IterHook(0)), 1)
	assert.Len(t, w.Properties(workspace.InstHook(0)), 1)
	assert.Len(t, w.Properties(workspace.GlobalHook), 1)
}

func TestAddProperty_AppendOnlyOrder(t *testing.T) {
	w := workspace.New(fixtureNest(t))
	for i := 0; i < 3; i++ {
		require.NoError(t, w.AddProperty(workspace.GlobalHook, stubProperty{
			id:   fmt.Sprintf("p%d", i),
			text: fmt.Sprintf("entry %d", i),
		}))
	}
	props := w.Properties(workspace.GlobalHook)
	require.Len(t, props, 3)
	for i, p := range props {
		assert.Equal(t, fmt.Sprintf("p%d", i), p.PropertyID())
	}
}

func TestFeatures_Monotone(t *testing.T) {
	w := workspace.New(fixtureNest(t))
	assert.False(t, w.HasFeature("accessed_dims"))

	w.AddFeature("accessed_dims")
	assert.True(t, w.HasFeature("accessed_dims"))

	w.AddFeature("accessed_dims")
	assert.True(t, w.HasFeature("accessed_dims"))
	assert.Len(t, w.Features(), 1)

	w.AddFeature("free_dims")
	assert.Len(t, w.Features(), 2)
}

func TestConfig_WithFeatureGateChaining(t *testing.T) {
	c := workspace.NewConfig().
		WithFeatureGate("mem_access", true).
		WithFeatureGate("free_dims", true).
		WithArch(true)

	assert.True(t, c.PassEnabled("mem_access"))
	assert.True(t, c.PassEnabled("free_dims"))
	assert.False(t, c.PassEnabled("arch_info"))
	assert.True(t, c.IncludeArch())
}

func TestConfig_ImmutableAcrossChaining(t *testing.T) {
	base := workspace.NewConfig().WithFeatureGate("mem_access", true)
	derived := base.WithFeatureGate("free_dims", true)

	assert.True(t, base.PassEnabled("mem_access"))
	assert.False(t, base.PassEnabled("free_dims"))
	assert.True(t, derived.PassEnabled("mem_access"))
	assert.True(t, derived.PassEnabled("free_dims"))
}

package arch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loopnest/internal/arch"
)

func TestYAML_RoundTrip(t *testing.T) {
	a := &arch.Arch{
		PEArch: arch.PEArch{
			DataWidth: 32,
			DataPorts: []arch.DataPort{
				&arch.NocPort{PortName: "north", Topology: []int32{0, -1}},
				&arch.MemoryReadPort{PortName: "rd0", MemName: "A"},
				&arch.MemoryWritePort{PortName: "wr0", MemName: "B"},
			},
		},
		Dimensions: []arch.Dimension{
			{Name: "x", Shape: 4},
			{Name: "y", Shape: 4},
		},
	}

	data, err := a.ToYAML()
	require.NoError(t, err)

	got, err := arch.ParseYAML(data)
	require.NoError(t, err)

	require.Len(t, got.PEArch.DataPorts, 3)
	assert.Equal(t, "north", got.PEArch.DataPorts[0].Name())
	assert.Equal(t, 32, got.PEArch.DataWidth)
	assert.Equal(t, a.Dimensions, got.Dimensions)

	noc, ok := got.PEArch.DataPorts[0].(*arch.NocPort)
	require.True(t, ok)
	assert.Equal(t, []int32{0, -1}, noc.Topology)
}

func TestParseYAML_UnrecognizedPortIsError(t *testing.T) {
	_, err := arch.ParseYAML([]byte(`
pe_arch:
  data_width: 8
  data_ports:
    - name: mystery
dimensions: []
`))
	assert.Error(t, err)
}

package arch

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// wireArch is the YAML encoding of Arch. DataPort's three variants are
// distinguished by which of their own fields is present, mirroring the
// NocPort{name,topology} | MemoryReadPort{name,mem_name} |
// MemoryWritePort{name,mem_name} shape from spec.md §3; "direction"
// picks between the two memory port variants.
type wireArch struct {
	PEArch struct {
		DataPorts []wireDataPort `yaml:"data_ports"`
		DataWidth int            `yaml:"data_width"`
	} `yaml:"pe_arch"`
	Dimensions []wireDimension `yaml:"dimensions"`
}

type wireDataPort struct {
	Name      string  `yaml:"name"`
	Topology  []int32 `yaml:"topology,omitempty"`
	MemName   string  `yaml:"mem_name,omitempty"`
	Direction string  `yaml:"direction,omitempty"` // "read" | "write", only for memory ports
}

type wireDimension struct {
	Name  string `yaml:"name"`
	Shape int    `yaml:"shape"`
}

// ParseYAML decodes an Arch from its wire format.
func ParseYAML(data []byte) (*Arch, error) {
	var w wireArch
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("arch: decoding wire format: %w", err)
	}

	a := &Arch{PEArch: PEArch{DataWidth: w.PEArch.DataWidth}}
	for _, p := range w.PEArch.DataPorts {
		port, err := p.toDataPort()
		if err != nil {
			return nil, err
		}
		a.PEArch.DataPorts = append(a.PEArch.DataPorts, port)
	}
	for _, d := range w.Dimensions {
		a.Dimensions = append(a.Dimensions, Dimension{Name: d.Name, Shape: d.Shape})
	}
	return a, nil
}

func (p wireDataPort) toDataPort() (DataPort, error) {
	switch {
	case p.MemName != "" && p.Direction == "read":
		return &MemoryReadPort{PortName: p.Name, MemName: p.MemName}, nil
	case p.MemName != "" && p.Direction == "write":
		return &MemoryWritePort{PortName: p.Name, MemName: p.MemName}, nil
	case p.Topology != nil:
		return &NocPort{PortName: p.Name, Topology: p.Topology}, nil
	default:
		return nil, fmt.Errorf("arch: data port %q has neither a topology nor a recognized memory direction", p.Name)
	}
}

// ToYAML encodes a into the wire format.
func (a *Arch) ToYAML() ([]byte, error) {
	w := wireArch{}
	w.PEArch.DataWidth = a.PEArch.DataWidth
	for _, p := range a.PEArch.DataPorts {
		switch v := p.(type) {
		case *NocPort:
			w.PEArch.DataPorts = append(w.PEArch.DataPorts, wireDataPort{Name: v.PortName, Topology: v.Topology})
		case *MemoryReadPort:
			w.PEArch.DataPorts = append(w.PEArch.DataPorts, wireDataPort{Name: v.PortName, MemName: v.MemName, Direction: "read"})
		case *MemoryWritePort:
			w.PEArch.DataPorts = append(w.PEArch.DataPorts, wireDataPort{Name: v.PortName, MemName: v.MemName, Direction: "write"})
		}
	}
	for _, d := range a.Dimensions {
		w.Dimensions = append(w.Dimensions, wireDimension{Name: d.Name, Shape: d.Shape})
	}
	return yaml.Marshal(w)
}

package loopir

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"loopnest/internal/instr"
)

// wireNest mirrors the YAML-ish serialization from spec.md §6: a mapping
// with keys "iters" (sequence of iterator strings), "body" (sequence of
// instruction strings), and an optional "properties" (iterator name to
// mapping kind).
type wireNest struct {
	Iters      []string          `yaml:"iters"`
	Body       []string          `yaml:"body"`
	Properties map[string]string `yaml:"properties,omitempty"`
}

// ParseYAML decodes a LoopNest from its wire format.
func ParseYAML(data []byte) (*LoopNest, error) {
	var w wireNest
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("loopir: decoding wire format: %w", err)
	}

	n := &LoopNest{}
	for _, s := range w.Iters {
		it, err := ParseIter(s)
		if err != nil {
			return nil, err
		}
		n.Iters = append(n.Iters, it)
	}
	for _, s := range w.Body {
		i, err := instr.Parse(s)
		if err != nil {
			return nil, err
		}
		n.Body = append(n.Body, i)
	}
	if len(w.Properties) > 0 {
		props := NewLoopProperties()
		for iter, kind := range w.Properties {
			m, err := parseMappingKind(kind)
			if err != nil {
				return nil, err
			}
			props.Mapping[iter] = m
		}
		n.Properties = props
	}
	return n, nil
}

// ToYAML encodes n into the wire format.
func (n *LoopNest) ToYAML() ([]byte, error) {
	w := wireNest{}
	for _, it := range n.Iters {
		w.Iters = append(w.Iters, it.String())
	}
	for _, i := range n.Body {
		w.Body = append(w.Body, i.String())
	}
	if n.Properties != nil && len(n.Properties.Mapping) > 0 {
		w.Properties = make(map[string]string, len(n.Properties.Mapping))
		for iter, m := range n.Properties.Mapping {
			if m.Kind == MappingSpatial && m.Tag != "" {
				w.Properties[iter] = "Spatial(" + m.Tag + ")"
			} else {
				w.Properties[iter] = m.Kind.String()
			}
		}
	}
	return yaml.Marshal(w)
}

func parseMappingKind(s string) (Mapping, error) {
	if len(s) > len("Spatial(") && s[:len("Spatial(")] == "Spatial(" && s[len(s)-1] == ')' {
		return Mapping{Kind: MappingSpatial, Tag: s[len("Spatial(") : len(s)-1]}, nil
	}
	switch s {
	case "Spatial":
		return Mapping{Kind: MappingSpatial}, nil
	case "Temporal":
		return Mapping{Kind: MappingTemporal}, nil
	case "InterTile":
		return Mapping{Kind: MappingInterTile}, nil
	case "IntraTile":
		return Mapping{Kind: MappingIntraTile}, nil
	default:
		return Mapping{}, fmt.Errorf("loopir: unknown mapping kind %q", s)
	}
}

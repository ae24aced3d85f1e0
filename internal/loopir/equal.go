package loopir

func (it LoopIter) Equal(other LoopIter) bool {
	return it.IterName == other.IterName && it.Lo == other.Lo && it.Hi == other.Hi && it.Step == other.Step
}

func (m Mapping) Equal(other Mapping) bool {
	return m.Kind == other.Kind && m.Tag == other.Tag
}

func (p *LoopProperties) Equal(other *LoopProperties) bool {
	if p == nil || other == nil {
		return p == other
	}
	if len(p.Mapping) != len(other.Mapping) {
		return false
	}
	for k, v := range p.Mapping {
		ov, ok := other.Mapping[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

func (n *LoopNest) Equal(other *LoopNest) bool {
	if len(n.Iters) != len(other.Iters) || len(n.Body) != len(other.Body) {
		return false
	}
	for i := range n.Iters {
		if !n.Iters[i].Equal(other.Iters[i]) {
			return false
		}
	}
	for i := range n.Body {
		if !n.Body[i].Equal(other.Body[i]) {
			return false
		}
	}
	return n.Properties.Equal(other.Properties)
}

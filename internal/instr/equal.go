package instr

func (a DataAccess) Equal(b DataAccess) bool {
	if a.Reg != b.Reg || a.ArrayName != b.ArrayName || a.CondSfx != b.CondSfx || a.Cond != b.Cond {
		return false
	}
	if len(a.Addr) != len(b.Addr) {
		return false
	}
	for i := range a.Addr {
		if !a.Addr[i].Equal(b.Addr[i]) {
			return false
		}
	}
	return true
}

func (o *Reg) Equal(other Operand) bool {
	v, ok := other.(*Reg)
	return ok && v.Name == o.Name
}

func (o *Imm) Equal(other Operand) bool {
	v, ok := other.(*Imm)
	return ok && v.Value == o.Value
}

func (c Compute) Equal(other Compute) bool {
	if c.Op != other.Op || c.Dst != other.Dst || c.CondSfx != other.CondSfx || c.Cond != other.Cond {
		return false
	}
	if len(c.Src) != len(other.Src) {
		return false
	}
	for i := range c.Src {
		if !c.Src[i].Equal(other.Src[i]) {
			return false
		}
	}
	return true
}

func (i *DataLoad) Equal(other Instruction) bool {
	v, ok := other.(*DataLoad)
	return ok && i.Access.Equal(v.Access)
}

func (i *DataStore) Equal(other Instruction) bool {
	v, ok := other.(*DataStore)
	return ok && i.Access.Equal(v.Access)
}

func (i *ComputeInstr) Equal(other Instruction) bool {
	v, ok := other.(*ComputeInstr)
	return ok && i.Compute.Equal(v.Compute)
}

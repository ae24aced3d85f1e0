package instr

import (
	"strconv"
	"strings"
)

func (o *Reg) String() string { return o.Name }

func (o *Imm) String() string { return "$" + strconv.FormatInt(int64(o.Value), 10) }

func condString(sfx CondSuffix, cond string) string {
	if sfx == NoCond {
		return ""
	}
	return " (" + sfx.String() + " " + cond + ")"
}

func (a DataAccess) stringArrow(arrow string) string {
	var b strings.Builder
	b.WriteString(a.Reg)
	b.WriteString(" ")
	b.WriteString(arrow)
	b.WriteString(" ")
	b.WriteString(a.ArrayName)
	for _, e := range a.Addr {
		b.WriteByte('[')
		b.WriteString(e.String())
		b.WriteByte(']')
	}
	b.WriteString(condString(a.CondSfx, a.Cond))
	return b.String()
}

func (i *DataLoad) String() string { return i.Access.stringArrow("<=") }

func (i *DataStore) String() string { return i.Access.stringArrow("=>") }

func (c Compute) String() string {
	srcs := make([]string, len(c.Src))
	for i, s := range c.Src {
		srcs[i] = s.String()
	}
	var b strings.Builder
	b.WriteString(c.Op)
	b.WriteString(" ")
	b.WriteString(c.Dst)
	b.WriteString(" ")
	b.WriteString(strings.Join(srcs, ", "))
	b.WriteString(condString(c.CondSfx, c.Cond))
	return b.String()
}

func (i *ComputeInstr) String() string { return i.Compute.String() }

package instruction

import (
	"github.com/shardwake/battlesim/catalog"
	"github.com/shardwake/battlesim/core"
	"github.com/shardwake/battlesim/state"
)

// ApplyVolatile adds Tag to the active slot's volatile set with the given
// starting counter (0 for flag-only volatiles like flinch or protect).
type ApplyVolatile struct {
	Side           core.SideRef
	Tag            catalog.VolatileTag
	InitialCounter int
}

// Apply implements Instruction.
func (a ApplyVolatile) Apply(s *state.State) {
	s.Side(a.Side).Volatiles[a.Tag] = a.InitialCounter
}

// Reverse implements Instruction.
func (a ApplyVolatile) Reverse(s *state.State) {
	delete(s.Side(a.Side).Volatiles, a.Tag)
}

// RemoveVolatile clears Tag from the active slot's volatile set. PriorValue
// is the counter it held, needed to restore it exactly on Reverse.
type RemoveVolatile struct {
	Side       core.SideRef
	Tag        catalog.VolatileTag
	PriorValue int
}

// Apply implements Instruction.
func (r RemoveVolatile) Apply(s *state.State) {
	delete(s.Side(r.Side).Volatiles, r.Tag)
}

// Reverse implements Instruction.
func (r RemoveVolatile) Reverse(s *state.State) {
	s.Side(r.Side).Volatiles[r.Tag] = r.PriorValue
}

// DecrementVolatileCounter decrements Tag's counter by one (confusion
// turns, taunt turns, disable turns, and so on).
type DecrementVolatileCounter struct {
	Side core.SideRef
	Tag  catalog.VolatileTag
}

// Apply implements Instruction.
func (d DecrementVolatileCounter) Apply(s *state.State) {
	s.Side(d.Side).Volatiles[d.Tag]--
}

// Reverse implements Instruction.
func (d DecrementVolatileCounter) Reverse(s *state.State) {
	s.Side(d.Side).Volatiles[d.Tag]++
}

// ChangeSubstituteHealth sets the active monster's substitute HP buffer.
// The SUBSTITUTE volatile presence is derived from this value (spec §3.2:
// "present iff substitute-health > 0"), not tracked separately.
type ChangeSubstituteHealth struct {
	Side     core.SideRef
	Old, New int
}

// Apply implements Instruction.
func (c ChangeSubstituteHealth) Apply(s *state.State) {
	applySubstitute(s, c.Side, c.New)
}

// Reverse implements Instruction.
func (c ChangeSubstituteHealth) Reverse(s *state.State) {
	applySubstitute(s, c.Side, c.Old)
}

func applySubstitute(s *state.State, side core.SideRef, hp int) {
	mon := s.Active(side)
	mon.SubstituteHP = hp
	if hp > 0 {
		s.Side(side).Volatiles[catalog.VolatileSubstitute] = 0
	} else {
		delete(s.Side(side).Volatiles, catalog.VolatileSubstitute)
	}
}

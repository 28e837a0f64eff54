package instruction

import (
	"github.com/shardwake/battlesim/catalog"
	"github.com/shardwake/battlesim/core"
	"github.com/shardwake/battlesim/state"
)

// ChangeStatus sets slot's non-volatile status from Old to New. Status is
// exclusive (spec §3.2), so this instruction always fully replaces it
// rather than toggling a bit.
type ChangeStatus struct {
	Side     core.SideRef
	Slot     int
	Old, New catalog.StatusCondition
}

// Apply implements Instruction.
func (c ChangeStatus) Apply(s *state.State) { s.Side(c.Side).Team[c.Slot].Status = c.New }

// Reverse implements Instruction.
func (c ChangeStatus) Reverse(s *state.State) { s.Side(c.Side).Team[c.Slot].Status = c.Old }

// SetSleepTurns sets slot's sleep-turn counter (turns spent asleep so far).
type SetSleepTurns struct {
	Side     core.SideRef
	Slot     int
	Old, New int
}

// Apply implements Instruction.
func (c SetSleepTurns) Apply(s *state.State) { s.Side(c.Side).Team[c.Slot].SleepTurns = c.New }

// Reverse implements Instruction.
func (c SetSleepTurns) Reverse(s *state.State) { s.Side(c.Side).Team[c.Slot].SleepTurns = c.Old }

// SetRestTurns sets slot's Rest-induced sleep-turn counter (Rest always
// sets it to 2 deterministically, spec §4.7).
type SetRestTurns struct {
	Side     core.SideRef
	Slot     int
	Old, New int
}

// Apply implements Instruction.
func (c SetRestTurns) Apply(s *state.State) { s.Side(c.Side).Team[c.Slot].RestTurns = c.New }

// Reverse implements Instruction.
func (c SetRestTurns) Reverse(s *state.State) { s.Side(c.Side).Team[c.Slot].RestTurns = c.Old }

// DecrementRestTurns decrements slot's rest-turn counter by one.
type DecrementRestTurns struct {
	Side core.SideRef
	Slot int
}

// Apply implements Instruction.
func (c DecrementRestTurns) Apply(s *state.State) { s.Side(c.Side).Team[c.Slot].RestTurns-- }

// Reverse implements Instruction.
func (c DecrementRestTurns) Reverse(s *state.State) { s.Side(c.Side).Team[c.Slot].RestTurns++ }

// SetToxicCount sets slot's badly-poisoned turn counter, used to compute
// ⌈n·maxhp/16⌉ residual damage (spec §8).
type SetToxicCount struct {
	Side     core.SideRef
	Slot     int
	Old, New int
}

// Apply implements Instruction.
func (c SetToxicCount) Apply(s *state.State) { s.Side(c.Side).Team[c.Slot].ToxicCounter = c.New }

// Reverse implements Instruction.
func (c SetToxicCount) Reverse(s *state.State) { s.Side(c.Side).Team[c.Slot].ToxicCounter = c.Old }

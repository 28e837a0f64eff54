package instruction

import (
	"github.com/shardwake/battlesim/core"
	"github.com/shardwake/battlesim/state"
)

// DisableMove sets one of slot's move slots' disabled-turns counter to
// NewTurns (Disable, Cursed Body). A move slot with DisabledTurns > 0
// cannot be chosen by the resolver's legal-actions pass.
type DisableMove struct {
	Side     core.SideRef
	Slot     int
	MoveSlot int
	OldTurns int
	NewTurns int
}

// Apply implements Instruction.
func (d DisableMove) Apply(s *state.State) {
	s.Side(d.Side).Team[d.Slot].Moves[d.MoveSlot].DisabledTurns = d.NewTurns
}

// Reverse implements Instruction.
func (d DisableMove) Reverse(s *state.State) {
	s.Side(d.Side).Team[d.Slot].Moves[d.MoveSlot].DisabledTurns = d.OldTurns
}

// SetLastUsedMove records the move id the side most recently used, read by
// Disable (what to disable), Encore (what to repeat), and consecutive-use
// tracking (Metronome item, Fury Cutter-style escalation).
type SetLastUsedMove struct {
	Side     core.SideRef
	Old, New string
}

// Apply implements Instruction.
func (s2 SetLastUsedMove) Apply(s *state.State) { s.Side(s2.Side).LastUsedMove = s2.New }

// Reverse implements Instruction.
func (s2 SetLastUsedMove) Reverse(s *state.State) { s.Side(s2.Side).LastUsedMove = s2.Old }

// SetDamageDealt records the last hit a side landed or suffered, consulted
// by counter-style moves (Counter, Mirror Coat, Metal Burst).
type SetDamageDealt struct {
	Side     core.SideRef
	Old, New state.DamageDealt
}

// Apply implements Instruction.
func (s2 SetDamageDealt) Apply(s *state.State) { s.Side(s2.Side).DamageDealt = s2.New }

// Reverse implements Instruction.
func (s2 SetDamageDealt) Reverse(s *state.State) { s.Side(s2.Side).DamageDealt = s2.Old }

// ToggleTrapped flips a monster's cannot-switch flag (Mean Look, Shadow
// Tag, Arena Trap, wrap-style binding moves).
type ToggleTrapped struct {
	Side     core.SideRef
	Slot     int
	Old, New bool
}

// Apply implements Instruction.
func (t ToggleTrapped) Apply(s *state.State) { s.Side(t.Side).Team[t.Slot].Trapped = t.New }

// Reverse implements Instruction.
func (t ToggleTrapped) Reverse(s *state.State) { s.Side(t.Side).Team[t.Slot].Trapped = t.Old }

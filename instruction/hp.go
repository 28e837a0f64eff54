package instruction

import (
	"github.com/shardwake/battlesim/core"
	"github.com/shardwake/battlesim/state"
)

// Damage reduces the active monster's current HP by Amount, clamped at 0.
// The resolver always constructs Amount as the already-clamped delta (it
// knows current HP when building the branch), so Heal-ing back the same
// Amount is guaranteed not to overheal past max — Damage/Heal are exact
// inverses of each other by construction, not by re-deriving state at
// apply time.
type Damage struct {
	Side   core.SideRef
	Amount int
}

// Apply implements Instruction.
func (d Damage) Apply(s *state.State) {
	mon := s.Active(d.Side)
	mon.CurrentHP -= d.Amount
	if mon.CurrentHP < 0 {
		mon.CurrentHP = 0
	}
}

// Reverse implements Instruction.
func (d Damage) Reverse(s *state.State) {
	s.Active(d.Side).CurrentHP += d.Amount
}

// Heal increases the active monster's current HP by Amount, clamped at
// max HP, under the same exact-inverse contract as Damage.
type Heal struct {
	Side   core.SideRef
	Amount int
}

// Apply implements Instruction.
func (h Heal) Apply(s *state.State) {
	mon := s.Active(h.Side)
	mon.CurrentHP += h.Amount
	if mon.CurrentHP > mon.Stats.HP {
		mon.CurrentHP = mon.Stats.HP
	}
}

// Reverse implements Instruction.
func (h Heal) Reverse(s *state.State) {
	s.Active(h.Side).CurrentHP -= h.Amount
}

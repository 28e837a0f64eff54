package instruction

import (
	"github.com/shardwake/battlesim/core"
	"github.com/shardwake/battlesim/state"
)

// ChangeItem sets slot's held item, used by Knock Off (removal) and
// trick/switcheroo-style swaps.
type ChangeItem struct {
	Side     core.SideRef
	Slot     int
	Old, New string
}

// Apply implements Instruction.
func (c ChangeItem) Apply(s *state.State) { s.Side(c.Side).Team[c.Slot].Item = c.New }

// Reverse implements Instruction.
func (c ChangeItem) Reverse(s *state.State) { s.Side(c.Side).Team[c.Slot].Item = c.Old }

// ChangeAbility sets slot's active ability (Skill Swap, Worry Seed, and
// ability-suppression effects).
type ChangeAbility struct {
	Side     core.SideRef
	Slot     int
	Old, New string
}

// Apply implements Instruction.
func (c ChangeAbility) Apply(s *state.State) { s.Side(c.Side).Team[c.Slot].Ability = c.New }

// Reverse implements Instruction.
func (c ChangeAbility) Reverse(s *state.State) { s.Side(c.Side).Team[c.Slot].Ability = c.Old }

// FormeChange swaps slot's species identity (Mega Evolution, forme-locked
// moves like Meteor Mash on Minior). Stats are recomputed by the resolver
// from the catalog, not stored on the instruction.
type FormeChange struct {
	Side                   core.SideRef
	Slot                   int
	OldSpecies, NewSpecies string
}

// Apply implements Instruction.
func (f FormeChange) Apply(s *state.State) { s.Side(f.Side).Team[f.Slot].Species = f.NewSpecies }

// Reverse implements Instruction.
func (f FormeChange) Reverse(s *state.State) { s.Side(f.Side).Team[f.Slot].Species = f.OldSpecies }

// SetTerastallized flips a monster's terastallization flag. Nothing enforces
// once-per-battle use: the resolver never emits this instruction and its
// legal actions have no terastallize option, and applying it twice is
// valid and simply asserts the flag's value like any other SetX
// instruction.
type SetTerastallized struct {
	Side     core.SideRef
	Slot     int
	Old, New bool
}

// Apply implements Instruction.
func (t SetTerastallized) Apply(s *state.State) {
	s.Side(t.Side).Team[t.Slot].Terastallized = t.New
}

// Reverse implements Instruction.
func (t SetTerastallized) Reverse(s *state.State) {
	s.Side(t.Side).Team[t.Slot].Terastallized = t.Old
}

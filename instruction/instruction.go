// Package instruction implements the closed instruction algebra spec §4.1
// describes: a fixed set of reversible edits to a *state.State, each small
// enough to carry both the before and after values it needs to undo itself
// exactly. Search algorithms step forward by calling Apply down a Branch's
// instruction list and step back by calling Reverse in the opposite order
// (spec §6.3) — no state cloning required for backtracking.
package instruction

import "github.com/shardwake/battlesim/state"

// Instruction is one atomic, reversible edit to a *state.State.
type Instruction interface {
	Apply(s *state.State)
	Reverse(s *state.State)
}

// Apply runs every instruction in list, in order, against s.
func Apply(s *state.State, list []Instruction) {
	for _, ins := range list {
		ins.Apply(s)
	}
}

// Reverse undoes every instruction in list against s, in reverse emission
// order — the only order that is guaranteed to restore the prior state
// when later instructions read values earlier ones wrote.
func Reverse(s *state.State, list []Instruction) {
	for i := len(list) - 1; i >= 0; i-- {
		list[i].Reverse(s)
	}
}

// FieldCounter names which field-wide turn counter DecrementFieldTurns
// targets.
type FieldCounter uint8

// Field counter kinds.
const (
	FieldCounterWeather FieldCounter = iota
	FieldCounterTerrain
	FieldCounterTrickRoom
	FieldCounterGravity
)

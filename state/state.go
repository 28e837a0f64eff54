// Package state defines the battle engine's data model (spec §3): the
// State/Side/Monster hierarchy, volatile and side conditions, the shared
// field, and the ephemeral per-turn Choice descriptor. State owns Sides;
// Sides own Monster slots and the volatile set keyed to their active slot;
// Monsters own their move slots and status counters — the ownership is
// strictly hierarchical, matching spec §9's guidance to avoid a Side<->
// State reference cycle by using index pairs instead of back-pointers.
package state

import (
	"github.com/google/uuid"

	"github.com/shardwake/battlesim/catalog"
	"github.com/shardwake/battlesim/core"
)

// State is the complete, mutable battle position: both sides plus the
// shared field. It carries no RNG — every source of chance is represented
// upstream, as a branch weight (spec §9).
type State struct {
	BattleID string
	Sides    [2]Side
	Field    Field
	Rules    catalog.RuleSet
}

// New builds an empty two-sided state with a fresh battle id, ready for
// callers to populate Sides before play.
func New(rules catalog.RuleSet) *State {
	return &State{
		BattleID: uuid.New().String(),
		Sides:    [2]Side{NewSide(), NewSide()},
		Rules:    rules,
	}
}

// GetID implements core.Entity.
func (s *State) GetID() string { return s.BattleID }

// GetType implements core.Entity.
func (s *State) GetType() string { return "battle_state" }

// Side returns a pointer to the requested side.
func (s *State) Side(ref core.SideRef) *Side { return &s.Sides[ref] }

// Active returns a pointer to ref's active monster.
func (s *State) Active(ref core.SideRef) *Monster { return s.Sides[ref].Active() }

// BattleOver reports whether either side has no monsters left, and if so,
// which side won (the other one). ok is false while the battle continues.
func (s *State) BattleOver() (winner core.SideRef, ok bool) {
	oneOut := s.Sides[core.SideOne].AllFainted()
	twoOut := s.Sides[core.SideTwo].AllFainted()
	switch {
	case oneOut && twoOut:
		return core.SideOne, true // simultaneous knockout; SideOne is the documented tiebreak
	case oneOut:
		return core.SideTwo, true
	case twoOut:
		return core.SideOne, true
	default:
		return 0, false
	}
}

// Clone returns a deep copy of the state, safe to mutate independently of
// the original — the unit callers parallelize over (spec §5).
func (s *State) Clone() *State {
	cp := &State{
		BattleID: s.BattleID,
		Field:    s.Field.Clone(),
		Rules:    s.Rules,
	}
	cp.Sides[0] = s.Sides[0].Clone()
	cp.Sides[1] = s.Sides[1].Clone()
	return cp
}

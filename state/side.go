package state

import "github.com/shardwake/battlesim/catalog"

// DamageDealt is the memory a side keeps of the last hit it landed or
// suffered, consulted by counter-style moves (spec §3.1). MoveType is a
// supplemented detail (SPEC_FULL.md) needed for the generation-1 Counter
// quirk, which only replies to Normal/Fighting-type hits.
type DamageDealt struct {
	Amount        int
	Category      catalog.Category
	MoveType      catalog.Type
	HitSubstitute bool
}

// Side is one player's half of the battle: up to six team slots, one
// active index, stat-stage boosts, and the side-wide conditions and
// volatile flags spec §3.1 describes.
type Side struct {
	Team        [6]Monster
	NumSlots    int // how many of Team are populated, 1..6
	ActiveIndex int

	Boosts [7]int // indexed by catalog.StatName

	SideConditions [17]int // indexed by catalog.SideConditionTag; counts/turns

	Volatiles map[catalog.VolatileTag]int // presence + counter; absent key = not present

	LastUsedMove string

	DamageDealt DamageDealt
}

// NewSide builds an empty Side with Volatiles initialized.
func NewSide() Side {
	return Side{Volatiles: make(map[catalog.VolatileTag]int)}
}

// Active returns a pointer to the currently active monster.
func (s *Side) Active() *Monster {
	return &s.Team[s.ActiveIndex]
}

// HasVolatile reports whether tag is currently set.
func (s *Side) HasVolatile(tag catalog.VolatileTag) bool {
	_, ok := s.Volatiles[tag]
	return ok
}

// VolatileCounter returns the counter value stored with tag, or 0 if unset.
func (s *Side) VolatileCounter(tag catalog.VolatileTag) int {
	return s.Volatiles[tag]
}

// AllFainted reports whether every populated team slot has fainted — the
// side-loss condition (spec §3.2, §4.5 step 10).
func (s *Side) AllFainted() bool {
	for i := 0; i < s.NumSlots; i++ {
		if !s.Team[i].Fainted() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the side, including its Volatiles map, so
// callers can fork a State without aliasing mutable state between
// branches.
func (s Side) Clone() Side {
	cp := s
	cp.Volatiles = make(map[catalog.VolatileTag]int, len(s.Volatiles))
	for k, v := range s.Volatiles {
		cp.Volatiles[k] = v
	}
	return cp
}

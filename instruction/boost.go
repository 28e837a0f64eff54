package instruction

import (
	"github.com/shardwake/battlesim/catalog"
	"github.com/shardwake/battlesim/core"
	"github.com/shardwake/battlesim/state"
)

// Boost applies a requested stage delta to Stat, saturating at [-6,6]
// (spec §3.2). The realized (post-saturation) delta is recorded on first
// Apply so Reverse undoes exactly what happened, not what was requested —
// this is the delta-carrying half of spec §4.1's Boost/SetBoost pair; use
// SetBoost instead when the resolver already knows the exact before/after
// stage values it wants to assert (e.g. restoring a snapshot on switch).
type Boost struct {
	Side  core.SideRef
	Stat  catalog.StatName
	Delta int

	applied int
}

// Apply implements Instruction.
func (b *Boost) Apply(s *state.State) {
	boosts := &s.Side(b.Side).Boosts
	old := boosts[b.Stat]
	newVal := state.ClampBoost(old + b.Delta)
	b.applied = newVal - old
	boosts[b.Stat] = newVal
}

// Reverse implements Instruction.
func (b *Boost) Reverse(s *state.State) {
	boosts := &s.Side(b.Side).Boosts
	boosts[b.Stat] -= b.applied
}

// SetBoost asserts Stat's stage is exactly New, recording Old to restore
// on Reverse. Used when the resolver has already computed the saturated
// result itself (e.g. clearing every boost to 0 on switch-out).
type SetBoost struct {
	Side     core.SideRef
	Stat     catalog.StatName
	Old, New int
}

// Apply implements Instruction.
func (c SetBoost) Apply(s *state.State) { s.Side(c.Side).Boosts[c.Stat] = c.New }

// Reverse implements Instruction.
func (c SetBoost) Reverse(s *state.State) { s.Side(c.Side).Boosts[c.Stat] = c.Old }

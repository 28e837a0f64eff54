package instruction

import (
	"github.com/shardwake/battlesim/catalog"
	"github.com/shardwake/battlesim/core"
	"github.com/shardwake/battlesim/state"
)

// ChangeSideCondition adjusts a side condition's counter by Delta (e.g.
// +1 when a second layer of Spikes is set, -1 as Reflect's timer ticks
// down). Side conditions persist across switches until cleared or expired
// (spec §3.3), so — unlike volatiles — they live on the Side unconditional
// on which monster is active.
type ChangeSideCondition struct {
	Side      core.SideRef
	Condition catalog.SideConditionTag
	Delta     int
}

// Apply implements Instruction.
func (c ChangeSideCondition) Apply(s *state.State) {
	s.Side(c.Side).SideConditions[c.Condition] += c.Delta
}

// Reverse implements Instruction.
func (c ChangeSideCondition) Reverse(s *state.State) {
	s.Side(c.Side).SideConditions[c.Condition] -= c.Delta
}

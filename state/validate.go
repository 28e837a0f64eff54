package state

import (
	"fmt"

	"github.com/shardwake/battlesim/bgerr"
)

// Validate checks every invariant spec §3.2 lists, returning the first
// violation found as a *bgerr.Error with CodeInvalidState, naming the
// offending field path and observed value (spec §7).
func (s *State) Validate() error {
	for sideIdx := range s.Sides {
		side := &s.Sides[sideIdx]
		if side.ActiveIndex < 0 || side.ActiveIndex >= side.NumSlots {
			return bgerr.InvalidState(fmt.Sprintf("sides[%d].active_index", sideIdx), side.ActiveIndex)
		}
		for slotIdx := 0; slotIdx < side.NumSlots; slotIdx++ {
			mon := &side.Team[slotIdx]
			path := fmt.Sprintf("sides[%d].team[%d]", sideIdx, slotIdx)
			if mon.CurrentHP < 0 || mon.CurrentHP > mon.Stats.HP {
				return bgerr.InvalidState(path+".hp", mon.CurrentHP)
			}
			if mon.SubstituteHP < 0 || mon.SubstituteHP > mon.Stats.HP/4 {
				return bgerr.InvalidState(path+".substitute_hp", mon.SubstituteHP)
			}
			if mon.ToxicCounter < 0 {
				return bgerr.InvalidState(path+".toxic_counter", mon.ToxicCounter)
			}
		}
		for stat, stage := range side.Boosts {
			if stage < -6 || stage > 6 {
				return bgerr.InvalidState(fmt.Sprintf("sides[%d].boosts[%d]", sideIdx, stat), stage)
			}
		}
		for tag, count := range side.SideConditions {
			if count < 0 {
				return bgerr.InvalidState(fmt.Sprintf("sides[%d].side_conditions[%d]", sideIdx, tag), count)
			}
		}
	}
	return nil
}

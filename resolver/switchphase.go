package resolver

import (
	"github.com/shardwake/battlesim/catalog"
	"github.com/shardwake/battlesim/core"
	"github.com/shardwake/battlesim/instruction"
	"github.com/shardwake/battlesim/state"
)

// bothSwitch resolves a turn where both sides chose to switch (spec §4.3
// step 1: switches never roll against each other for order — side one's
// simply resolves first, a fixed tiebreak since neither switch can observe
// the other).
func (rc *resolveCtx) bothSwitch(root workingBranch, a1, a2 state.Action) ([]workingBranch, error) {
	wb, err := rc.performSwitch(root, core.SideOne, a1.Slot)
	if err != nil {
		return nil, err
	}
	wb, err = rc.performSwitch(wb, core.SideTwo, a2.Slot)
	if err != nil {
		return nil, err
	}
	return []workingBranch{wb}, nil
}

// performSwitch emits the instructions a switch-out/switch-in produces on
// ref's side (spec §4.3 step 1, §8 scenario 3): a toxic-badly-poisoned
// monster reverts to plain poison on leaving the field, stat boosts and
// volatiles tied to the outgoing monster clear, and the active index moves
// to newSlot. Each of those only emits an instruction when it actually
// changes something — a switch into an already-full-health, unboosted
// monster produces nothing but the Switch itself.
func (rc *resolveCtx) performSwitch(wb workingBranch, ref core.SideRef, newSlot int) (workingBranch, error) {
	side := wb.state.Side(ref)
	prevIdx := side.ActiveIndex
	outgoing := side.Team[prevIdx]

	var instrs []instruction.Instruction

	if outgoing.Status == catalog.StatusToxic {
		instrs = append(instrs, instruction.ChangeStatus{
			Side: ref, Slot: prevIdx,
			Old: catalog.StatusToxic, New: catalog.StatusPoison,
		})
	}
	if outgoing.ToxicCounter != 0 {
		instrs = append(instrs, instruction.SetToxicCount{Side: ref, Slot: prevIdx, Old: outgoing.ToxicCounter, New: 0})
	}

	for stat := catalog.StatAttack; stat < 7; stat++ {
		if v := side.Boosts[stat]; v != 0 {
			instrs = append(instrs, instruction.SetBoost{Side: ref, Stat: stat, Old: v, New: 0})
		}
	}
	for tag, counter := range side.Volatiles {
		if tag == catalog.VolatileSubstitute {
			if outgoing.SubstituteHP > 0 {
				instrs = append(instrs, instruction.ChangeSubstituteHealth{Side: ref, Old: outgoing.SubstituteHP, New: 0})
			}
			continue
		}
		instrs = append(instrs, instruction.RemoveVolatile{Side: ref, Tag: tag, PriorValue: counter})
	}
	if outgoing.Trapped {
		instrs = append(instrs, instruction.ToggleTrapped{Side: ref, Slot: prevIdx, Old: true, New: false})
	}

	instrs = append(instrs, instruction.Switch{Side: ref, Previous: prevIdx, Next: newSlot})
	return fork(wb, wb.weight, instrs), nil
}

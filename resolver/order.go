package resolver

import (
	"context"

	"github.com/shardwake/battlesim/catalog"
	"github.com/shardwake/battlesim/core"
	"github.com/shardwake/battlesim/instruction"
	"github.com/shardwake/battlesim/state"
)

// orderOption is one possible sequencing of the two movers this turn, with
// the probability (on a local 0-100 scale) that this sequencing is the one
// that happens — always 100 except on an exact speed tie, which forks 50/50
// (spec §4.3 step 1).
type orderOption struct {
	weight float64
	first  moverPlan
	second moverPlan
}

// bothMove resolves a turn where both sides chose a move: determine order,
// then run each mover's full pipeline in turn, checking after the first
// mover whether the second mover's side even still has a battle left to
// act in (fainted board, forced switch, or the whole battle already over).
func (rc *resolveCtx) bothMove(ctx context.Context, root workingBranch, a1, a2 state.Action) ([]workingBranch, error) {
	choice1, extra1, err := rc.buildChoice(ctx, root.state, core.SideOne, a1)
	if err != nil {
		return nil, err
	}
	choice2, extra2, err := rc.buildChoice(ctx, root.state, core.SideTwo, a2)
	if err != nil {
		return nil, err
	}

	combinedExtra := append(append([]instruction.Instruction{}, extra1...), extra2...)
	wb := applyExtras(root, combinedExtra)

	plan1 := moverPlan{side: core.SideOne, choice: choice1}
	plan2 := moverPlan{side: core.SideTwo, choice: choice2}
	options := rc.moveOrder(wb.state, plan1, plan2)

	var out []workingBranch
	for _, opt := range options {
		orderRoot := workingBranch{
			weight: wb.weight * opt.weight / 100,
			instrs: wb.instrs,
			state:  wb.state,
		}
		firstBranches, err := rc.executeMove(ctx, orderRoot, opt.first)
		if err != nil {
			return nil, err
		}
		firstBranches = markTerminal(firstBranches)
		for _, fb := range firstBranches {
			if fb.terminal {
				out = append(out, fb)
				continue
			}
			secondBranches, err := rc.executeMove(ctx, fb, opt.second)
			if err != nil {
				return nil, err
			}
			out = append(out, markTerminal(secondBranches)...)
		}
	}
	return out, nil
}

// moveOrder decides which mover acts first (spec §4.3 step 1): priority
// bracket first, then effective speed, with an exact tie forking 50/50. A
// nil Choice (the must-recharge Pass action) carries priority 0, same as an
// ordinary status move — it always resolves to a no-op in the start gate
// regardless of when it runs, so its position in the order has no
// observable effect beyond which side's start gate fires first.
func (rc *resolveCtx) moveOrder(s *state.State, plan1, plan2 moverPlan) []orderOption {
	p1, p2 := priorityOf(plan1.choice), priorityOf(plan2.choice)
	if p1 != p2 {
		if p1 > p2 {
			return []orderOption{{weight: 100, first: plan1, second: plan2}}
		}
		return []orderOption{{weight: 100, first: plan2, second: plan1}}
	}

	speed1 := effectiveSpeed(s, plan1.side)
	speed2 := effectiveSpeed(s, plan2.side)
	trickRoom := s.Field.TrickRoomTurns > 0

	switch {
	case speed1 == speed2:
		return []orderOption{
			{weight: 50, first: plan1, second: plan2},
			{weight: 50, first: plan2, second: plan1},
		}
	case (speed1 > speed2) != trickRoom:
		return []orderOption{{weight: 100, first: plan1, second: plan2}}
	default:
		return []orderOption{{weight: 100, first: plan2, second: plan1}}
	}
}

func priorityOf(choice *state.Choice) int {
	if choice == nil {
		return 0
	}
	return choice.Priority
}

func effectiveSpeed(s *state.State, ref core.SideRef) float64 {
	side := s.Side(ref)
	mon := side.Active()
	speed := float64(mon.Stats.Speed) * state.BoostMultiplier(side.Boosts[catalog.StatSpeed])
	if mon.Status == catalog.StatusParalyze {
		speed *= s.Rules.ParalysisSpeedFactor
	}
	if side.SideConditions[catalog.SideConditionTailwind] > 0 {
		speed *= 2
	}
	return speed
}

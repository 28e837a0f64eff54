package resolver

import (
	"context"

	"github.com/shardwake/battlesim/core"
	"github.com/shardwake/battlesim/hooks"
	"github.com/shardwake/battlesim/instruction"
	"github.com/shardwake/battlesim/state"
)

// buildChoice turns a chosen action into a Choice ready for the pipeline,
// running it through the move/ability/item modify_choice chain (spec §4.3
// step 2) before damage calc ever sees it. A Pass action (the must-recharge
// turn) yields a nil Choice — executeMove's start gate handles that case
// directly from state, not from a Choice.
func (rc *resolveCtx) buildChoice(ctx context.Context, s *state.State, side core.SideRef, action state.Action) (*state.Choice, []instruction.Instruction, error) {
	if action.Kind != state.ActionMove {
		return nil, nil, nil
	}

	attackerSide := s.Side(side)
	attacker := attackerSide.Active()
	moveID := attacker.Moves[action.Slot].ID
	moveData, err := rc.provider.Move(moveID)
	if err != nil {
		return nil, nil, err
	}
	choice := state.NewChoiceFromMove(moveData)

	defenderSide := side.Opponent()
	defender := s.Active(defenderSide)
	chain, err := rc.hooks.BuildModifyChoiceChain(moveData.ID, attacker.Ability, defender.Ability, attacker.Item)
	if err != nil {
		return nil, nil, err
	}
	cc := &hooks.ChoiceContext{
		State:        s,
		Choice:       choice,
		AttackerSide: side,
		DefenderSide: defenderSide,
		Provider:     rc.provider,
	}
	cc, err = chain.Run(ctx, cc)
	if err != nil {
		return nil, nil, err
	}
	return choice, cc.Extra, nil
}

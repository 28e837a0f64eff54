package hooks

import (
	"context"

	"github.com/shardwake/battlesim/catalog"
	"github.com/shardwake/battlesim/core"
	"github.com/shardwake/battlesim/instruction"
	"github.com/shardwake/battlesim/state"
)

func registerItemHooks(r *Registry) {
	r.itemModify["choiceband"] = modifyChoiceBand
	r.itemModify["lifeorb"] = modifyLifeOrb

	r.afterDamage["lifeorb"] = afterDamageLifeOrb

	r.endOfTurn["leftovers"] = endOfTurnLeftovers
	r.endOfTurn["blacksludge"] = endOfTurnBlackSludge
}

// modifyChoiceBand boosts physical move power by 50%.
func modifyChoiceBand(_ context.Context, cc *ChoiceContext) (*ChoiceContext, error) {
	if cc.Choice.Category == catalog.CategoryPhysical {
		cc.Choice.BasePower = cc.Choice.BasePower * 3 / 2
	}
	return cc, nil
}

// modifyLifeOrb boosts any damaging move's power by 30%.
func modifyLifeOrb(_ context.Context, cc *ChoiceContext) (*ChoiceContext, error) {
	if cc.Choice.Category != catalog.CategoryStatus {
		cc.Choice.BasePower = cc.Choice.BasePower * 13 / 10
	}
	return cc, nil
}

// afterDamageLifeOrb deals 1/10 max HP recoil to the attacker for landing
// a damaging hit.
func afterDamageLifeOrb(_ context.Context, s *state.State, attackerSide core.SideRef, choice *state.Choice, damageDealt int, hitSubstitute bool) ([]instruction.Instruction, error) {
	if choice.Category == catalog.CategoryStatus || damageDealt <= 0 {
		return nil, nil
	}
	attacker := s.Active(attackerSide)
	amount := attacker.Stats.HP / 10
	if amount > attacker.CurrentHP {
		amount = attacker.CurrentHP
	}
	if amount <= 0 {
		return nil, nil
	}
	return []instruction.Instruction{
		instruction.Damage{Side: attackerSide, Amount: amount},
	}, nil
}

// endOfTurnLeftovers heals 1/16 max HP each turn.
func endOfTurnLeftovers(_ context.Context, s *state.State, side core.SideRef, slot int) ([]instruction.Instruction, error) {
	mon := &s.Side(side).Team[slot]
	if mon.Fainted() || mon.CurrentHP >= mon.Stats.HP {
		return nil, nil
	}
	amount := mon.Stats.HP / 16
	if missing := mon.Stats.HP - mon.CurrentHP; amount > missing {
		amount = missing
	}
	return []instruction.Instruction{instruction.Heal{Side: side, Amount: amount}}, nil
}

// endOfTurnBlackSludge heals Poison-types 1/16 max HP and damages every
// other type 1/8 max HP each turn.
func endOfTurnBlackSludge(_ context.Context, s *state.State, side core.SideRef, slot int) ([]instruction.Instruction, error) {
	mon := &s.Side(side).Team[slot]
	if mon.Fainted() {
		return nil, nil
	}
	if mon.TypeOne == catalog.TypePoison || mon.TypeTwo == catalog.TypePoison {
		if mon.CurrentHP >= mon.Stats.HP {
			return nil, nil
		}
		heal := mon.Stats.HP / 16
		if missing := mon.Stats.HP - mon.CurrentHP; heal > missing {
			heal = missing
		}
		return []instruction.Instruction{instruction.Heal{Side: side, Amount: heal}}, nil
	}
	dmg := mon.Stats.HP / 8
	if dmg > mon.CurrentHP {
		dmg = mon.CurrentHP
	}
	return []instruction.Instruction{instruction.Damage{Side: side, Amount: dmg}}, nil
}

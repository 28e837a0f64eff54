package hooks

import (
	"context"

	"github.com/shardwake/battlesim/catalog"
	"github.com/shardwake/battlesim/core"
	"github.com/shardwake/battlesim/instruction"
	"github.com/shardwake/battlesim/state"
)

func registerAbilityHooks(r *Registry) {
	r.abilityModify["levitate"] = modifyLevitate
	r.abilityModify["thickfat"] = modifyThickFat
	r.abilityModify["voltabsorb"] = modifyVoltAbsorb
	r.abilityModify["guts"] = modifyGuts
	r.abilityModify["adaptability"] = modifyAdaptability

	r.endOfTurn["speedboost"] = endOfTurnSpeedBoost
}

// modifyLevitate grants Ground-type immunity: the move simply fails.
func modifyLevitate(_ context.Context, cc *ChoiceContext) (*ChoiceContext, error) {
	if cc.Choice.Type == catalog.TypeGround {
		cc.Choice.Failed = true
	}
	return cc, nil
}

// modifyThickFat halves incoming Fire/Ice move power.
func modifyThickFat(_ context.Context, cc *ChoiceContext) (*ChoiceContext, error) {
	if cc.Choice.Type == catalog.TypeFire || cc.Choice.Type == catalog.TypeIce {
		cc.Choice.BasePower = cc.Choice.BasePower / 2
	}
	return cc, nil
}

// modifyVoltAbsorb nullifies Electric moves and heals the defender a
// quarter of its max HP instead, via the ChoiceContext's side-effect
// bucket rather than a Choice field.
func modifyVoltAbsorb(_ context.Context, cc *ChoiceContext) (*ChoiceContext, error) {
	if cc.Choice.Type != catalog.TypeElectric {
		return cc, nil
	}
	cc.Choice.Failed = true
	defender := cc.State.Active(cc.DefenderSide)
	if defender.CurrentHP < defender.Stats.HP {
		heal := defender.Stats.HP / 4
		if missing := defender.Stats.HP - defender.CurrentHP; heal > missing {
			heal = missing
		}
		cc.Extra = append(cc.Extra, instruction.Heal{Side: cc.DefenderSide, Amount: heal})
	}
	return cc, nil
}

// modifyGuts boosts physical power by 50% while statused (and, via the
// resolver's burn-penalty check reading the ability id directly, ignores
// burn's usual physical halving).
func modifyGuts(_ context.Context, cc *ChoiceContext) (*ChoiceContext, error) {
	attacker := cc.State.Active(cc.AttackerSide)
	if attacker.Status != catalog.StatusNone && cc.Choice.Category == catalog.CategoryPhysical {
		cc.Choice.BasePower = cc.Choice.BasePower * 3 / 2
	}
	return cc, nil
}

// modifyAdaptability is a no-op at the modify_choice stage: the resolver's
// STAB calculation reads the attacker's ability id directly (2.0x instead
// of 1.5x), since adaptability changes a damage-formula multiplier rather
// than a Choice field. Registered anyway so catalog.AbilityData's
// HasModifyChoice flag has a concrete (if trivial) handler, matching every
// other ability in the registry.
func modifyAdaptability(_ context.Context, cc *ChoiceContext) (*ChoiceContext, error) {
	return cc, nil
}

// endOfTurnSpeedBoost raises Speed by one stage at the end of every turn
// the holder survives.
func endOfTurnSpeedBoost(_ context.Context, s *state.State, side core.SideRef, slot int) ([]instruction.Instruction, error) {
	if s.Side(side).Team[slot].Fainted() {
		return nil, nil
	}
	return []instruction.Instruction{
		&instruction.Boost{Side: side, Stat: catalog.StatSpeed, Delta: 1},
	}, nil
}

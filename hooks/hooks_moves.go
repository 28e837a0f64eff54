package hooks

import (
	"context"

	"github.com/shardwake/battlesim/catalog"
	"github.com/shardwake/battlesim/core"
	"github.com/shardwake/battlesim/instruction"
	"github.com/shardwake/battlesim/state"
)

func registerMoveHooks(r *Registry) {
	r.moveModify["hex"] = modifyHex
	r.moveModify["acrobatics"] = modifyAcrobatics
	r.moveModify["counter"] = modifyCounter
	r.moveModify["mirrorcoat"] = modifyMirrorCoat
	r.moveModify["metalburst"] = modifyMetalBurst

	r.afterDamage["knockoff"] = afterDamageKnockOff

	r.hazardClear["rapidspin"] = hazardClearRapidSpin

	r.moveSpecialEffect["substitute"] = specialEffectSubstitute
	r.moveSpecialEffect["bellydrum"] = specialEffectBellyDrum
}

// modifyHex doubles power when the defender carries a non-volatile status.
func modifyHex(_ context.Context, cc *ChoiceContext) (*ChoiceContext, error) {
	defender := cc.State.Active(cc.DefenderSide)
	if defender.Status != catalog.StatusNone {
		cc.Choice.BasePower *= 2
	}
	return cc, nil
}

// modifyAcrobatics doubles power when the attacker holds no item.
func modifyAcrobatics(_ context.Context, cc *ChoiceContext) (*ChoiceContext, error) {
	attacker := cc.State.Active(cc.AttackerSide)
	if attacker.Item == "" || attacker.Item == "none" {
		cc.Choice.BasePower *= 2
	}
	return cc, nil
}

// modifyCounter replies to the last physical hit the attacker's side took
// with double that damage. Generation 1 carries a documented quirk: it
// only replies to Normal- or Fighting-type hits (spec §8 scenario 5), an
// artifact of how the original games identified "physical" by type rather
// than by category.
func modifyCounter(_ context.Context, cc *ChoiceContext) (*ChoiceContext, error) {
	dealt := cc.State.Side(cc.AttackerSide).DamageDealt
	eligible := dealt.Category == catalog.CategoryPhysical && dealt.Amount > 0
	if eligible && cc.State.Rules.Gen <= 1 {
		eligible = dealt.MoveType == catalog.TypeNormal || dealt.MoveType == catalog.TypeFighting
	}
	if !eligible {
		cc.Choice.Failed = true
		return cc, nil
	}
	cc.Choice.FixedDamage = dealt.Amount * 2
	return cc, nil
}

// modifyMirrorCoat replies to the last special hit with double damage.
func modifyMirrorCoat(_ context.Context, cc *ChoiceContext) (*ChoiceContext, error) {
	dealt := cc.State.Side(cc.AttackerSide).DamageDealt
	if dealt.Category != catalog.CategorySpecial || dealt.Amount <= 0 {
		cc.Choice.Failed = true
		return cc, nil
	}
	cc.Choice.FixedDamage = dealt.Amount * 2
	return cc, nil
}

// modifyMetalBurst replies to the last hit of either category with 1.5x
// damage.
func modifyMetalBurst(_ context.Context, cc *ChoiceContext) (*ChoiceContext, error) {
	dealt := cc.State.Side(cc.AttackerSide).DamageDealt
	if dealt.Amount <= 0 {
		cc.Choice.Failed = true
		return cc, nil
	}
	cc.Choice.FixedDamage = dealt.Amount * 3 / 2
	return cc, nil
}

// afterDamageKnockOff strips the defender's held item once Knock Off
// connects, unless the defender has already been hit through a substitute
// (the item is never touched) or carries no removable item.
func afterDamageKnockOff(_ context.Context, s *state.State, attackerSide core.SideRef, choice *state.Choice, damageDealt int, hitSubstitute bool) ([]instruction.Instruction, error) {
	if hitSubstitute {
		return nil, nil
	}
	defender := s.Active(attackerSide.Opponent())
	if defender.Item == "" || defender.Item == "none" {
		return nil, nil
	}
	return []instruction.Instruction{
		instruction.ChangeItem{Side: attackerSide.Opponent(), Slot: s.Side(attackerSide.Opponent()).ActiveIndex, Old: defender.Item, New: "none"},
	}, nil
}

// hazardClearRapidSpin removes every hazard side condition from the
// attacker's own side.
func hazardClearRapidSpin(_ context.Context, s *state.State, attackerSide core.SideRef) ([]instruction.Instruction, error) {
	side := s.Side(attackerSide)
	var out []instruction.Instruction
	for _, tag := range []catalog.SideConditionTag{
		catalog.SideConditionStealthRock,
		catalog.SideConditionSpikes,
		catalog.SideConditionToxicSpikes,
		catalog.SideConditionStickyWeb,
	} {
		if count := side.SideConditions[tag]; count > 0 {
			out = append(out, instruction.ChangeSideCondition{Side: attackerSide, Condition: tag, Delta: -count})
		}
	}
	return out, nil
}

// specialEffectSubstitute spends a quarter of the attacker's max HP to set
// up a substitute, failing if it would faint the attacker or one is
// already up.
func specialEffectSubstitute(_ context.Context, s *state.State, attackerSide core.SideRef) ([]instruction.Instruction, error) {
	mon := s.Active(attackerSide)
	if mon.HasSubstitute() {
		return nil, nil
	}
	cost := int(float64(mon.Stats.HP) * catalog.SubstituteHPFraction)
	if cost <= 0 || mon.CurrentHP <= cost {
		return nil, nil
	}
	return []instruction.Instruction{
		instruction.Damage{Side: attackerSide, Amount: cost},
		instruction.ChangeSubstituteHealth{Side: attackerSide, Old: mon.SubstituteHP, New: cost},
	}, nil
}

// specialEffectBellyDrum spends half the attacker's max HP to set its
// Attack stage to +6 outright, failing if it would faint the attacker.
func specialEffectBellyDrum(_ context.Context, s *state.State, attackerSide core.SideRef) ([]instruction.Instruction, error) {
	mon := s.Active(attackerSide)
	cost := int(float64(mon.Stats.HP) * catalog.BellyDrumHPFraction)
	if cost <= 0 || mon.CurrentHP <= cost {
		return nil, nil
	}
	old := s.Side(attackerSide).Boosts[catalog.StatAttack]
	return []instruction.Instruction{
		instruction.Damage{Side: attackerSide, Amount: cost},
		instruction.SetBoost{Side: attackerSide, Stat: catalog.StatAttack, Old: old, New: 6},
	}, nil
}

package resolver

import (
	"context"

	"github.com/shardwake/battlesim/catalog"
	"github.com/shardwake/battlesim/core"
	"github.com/shardwake/battlesim/instruction"
	"github.com/shardwake/battlesim/state"
)

// resolveHitGate is the final step of a mover's pipeline (spec §4.4 steps
// 4-7): a failed choice or a non-damaging (status-category) move never
// touches the damage formula at all.
func (rc *resolveCtx) resolveHitGate(ctx context.Context, plan moverPlan) func(workingBranch) ([]workingBranch, error) {
	return func(wb workingBranch) ([]workingBranch, error) {
		choice := plan.choice
		if choice == nil || choice.Failed {
			c := fork(wb, 100, nil)
			c.stopped = true
			return []workingBranch{c}, nil
		}
		if choice.Category == catalog.CategoryStatus {
			return rc.applyDirectEffects(ctx, wb, plan.side, choice)
		}
		return rc.resolveDamagingHit(ctx, wb, plan.side, choice)
	}
}

// resolveDamagingHit runs the crit/roll/hit-count/apply chain (spec §4.4
// steps 4-7) followed by one expand per independently-rolled secondary
// effect. A Choice with FixedDamage set (Counter, Mirror Coat, Metal Burst)
// skips crit and roll entirely — its damage is a fixed multiple of a past
// hit, never itself subject to a crit or a random roll.
func (rc *resolveCtx) resolveDamagingHit(ctx context.Context, wb workingBranch, side core.SideRef, choice *state.Choice) ([]workingBranch, error) {
	wbs := []workingBranch{wb}
	var err error

	if choice.FixedDamage > 0 {
		wbs[0].crit = false
		wbs[0].roll = 1.0
		wbs[0].hits = 1
	} else {
		wbs, err = expand(wbs, rc.critGate(choice))
		if err != nil {
			return nil, err
		}
		wbs, err = expand(wbs, rc.damageRollGate())
		if err != nil {
			return nil, err
		}
		wbs, err = expand(wbs, rc.hitCountGate(choice))
		if err != nil {
			return nil, err
		}
	}

	wbs, err = expand(wbs, rc.damageApplyGate(ctx, side, choice))
	if err != nil {
		return nil, err
	}

	for _, sec := range choice.Secondaries {
		sec := sec
		wbs, err = expand(wbs, rc.secondaryGate(side, sec))
		if err != nil {
			return nil, err
		}
	}
	return wbs, nil
}

// critGate forks on whether this hit is critical (spec §4.4 step 5).
func (rc *resolveCtx) critGate(choice *state.Choice) func(workingBranch) ([]workingBranch, error) {
	return func(wb workingBranch) ([]workingBranch, error) {
		if choice.CritRatio == catalog.CritRatioGuaranteed {
			c := fork(wb, 100, nil)
			c.crit = true
			return []workingBranch{c}, nil
		}
		chance := catalog.CritChanceNormalPercent
		if choice.CritRatio == catalog.CritRatioHigh {
			chance = catalog.CritChanceHighPercent
		}
		critChild := fork(wb, chance, nil)
		critChild.crit = true
		normalChild := fork(wb, 100-chance, nil)
		normalChild.crit = false
		return []workingBranch{critChild, normalChild}, nil
	}
}

// damageRollGate forks on the 85%-100% damage roll (spec §4.4 step 5):
// branchOnDamageRolls=false collapses the distribution to its two extremes
// at equal weight, matching what a caller that only wants min/max bounds
// needs without the full 16-way fan-out.
func (rc *resolveCtx) damageRollGate() func(workingBranch) ([]workingBranch, error) {
	return func(wb workingBranch) ([]workingBranch, error) {
		if !rc.branchOnDamageRolls {
			hi := fork(wb, 50, nil)
			hi.crit = wb.crit
			hi.roll = catalog.DamageRollMax
			lo := fork(wb, 50, nil)
			lo.crit = wb.crit
			lo.roll = catalog.DamageRollMin
			return []workingBranch{hi, lo}, nil
		}
		n := catalog.DamageRollSteps
		weight := 100.0 / float64(n)
		out := make([]workingBranch, 0, n)
		for i := 0; i < n; i++ {
			c := fork(wb, weight, nil)
			c.crit = wb.crit
			c.roll = float64(85+i) / 100.0
			out = append(out, c)
		}
		return out, nil
	}
}

// hitCountGate forks on how many times a multi-hit move strikes (spec §4.4
// step 7, catalog.HitCountDistribution). A single representative crit/roll
// outcome, already decided by the earlier gates, applies to every hit
// within a given branch rather than being re-rolled per hit — a documented
// simplification against the full per-hit combinatorial expansion, which
// would multiply this move's branch count by itself for every extra hit.
func (rc *resolveCtx) hitCountGate(choice *state.Choice) func(workingBranch) ([]workingBranch, error) {
	return func(wb workingBranch) ([]workingBranch, error) {
		if choice.MultiHit == nil {
			c := fork(wb, 100, nil)
			c.crit, c.roll, c.hits = wb.crit, wb.roll, 1
			return []workingBranch{c}, nil
		}
		dist := choice.MultiHit
		total := 0.0
		for _, w := range dist.Weights {
			total += w
		}
		out := make([]workingBranch, 0, len(dist.Hits))
		for i, h := range dist.Hits {
			c := fork(wb, dist.Weights[i]*100/total, nil)
			c.crit, c.roll, c.hits = wb.crit, wb.roll, h
			out = append(out, c)
		}
		return out, nil
	}
}

// damageApplyGate computes this hit's damage (spec §4.4 step 4) from the
// crit/roll/hit-count decisions already forked, then applies it — to the
// defender's substitute first if protectionGate routed there, otherwise to
// its HP — once per hit, stopping early if the target faints or its
// substitute breaks mid-sequence. Drain, recoil, the after_damage and
// hazard_clear hooks, and any status/volatile/boost the move applies
// directly all follow from the total actually dealt.
func (rc *resolveCtx) damageApplyGate(ctx context.Context, side core.SideRef, choice *state.Choice) func(workingBranch) ([]workingBranch, error) {
	return func(wb workingBranch) ([]workingBranch, error) {
		s := wb.state
		attacker := s.Active(side)
		defenderSide := side.Opponent()
		defender := s.Active(defenderSide)

		perHit := baseDamage(s, side, defenderSide, choice, wb.crit, rc.provider.TypeChart())
		perHit = int(float64(perHit) * wb.roll)
		if perHit < 1 {
			perHit = 1
		}
		hits := wb.hits
		if hits == 0 {
			hits = 1
		}

		var instrs []instruction.Instruction
		totalDealt := 0
		hp := defender.CurrentHP
		subHP := defender.SubstituteHP
		hitSub := wb.hitSubstitute

		for i := 0; i < hits; i++ {
			if hitSub && subHP > 0 {
				dealt := perHit
				if dealt > subHP {
					dealt = subHP
				}
				instrs = append(instrs, instruction.ChangeSubstituteHealth{Side: defenderSide, Old: subHP, New: subHP - dealt})
				subHP -= dealt
				totalDealt += dealt
				if subHP <= 0 {
					break
				}
				continue
			}
			dealt := perHit
			if dealt > hp {
				dealt = hp
			}
			instrs = append(instrs, instruction.Damage{Side: defenderSide, Amount: dealt})
			hp -= dealt
			totalDealt += dealt
			if hp <= 0 {
				break
			}
		}

		if totalDealt > 0 {
			instrs = append(instrs, instruction.SetDamageDealt{
				Side: defenderSide,
				Old:  s.Side(defenderSide).DamageDealt,
				New: state.DamageDealt{
					Amount: totalDealt, Category: choice.Category, MoveType: choice.Type, HitSubstitute: hitSub,
				},
			})
		}

		if !hitSub && totalDealt > 0 {
			if choice.DrainFraction > 0 && attacker.CurrentHP < attacker.Stats.HP {
				amount := int(float64(totalDealt) * choice.DrainFraction)
				if missing := attacker.Stats.HP - attacker.CurrentHP; amount > missing {
					amount = missing
				}
				if amount > 0 {
					instrs = append(instrs, instruction.Heal{Side: side, Amount: amount})
				}
			}
			if choice.AppliesStatus != catalog.StatusNone && canApplyStatus(s, defenderSide, choice.AppliesStatus) {
				slot := s.Side(defenderSide).ActiveIndex
				instrs = append(instrs, instruction.ChangeStatus{Side: defenderSide, Slot: slot, Old: catalog.StatusNone, New: choice.AppliesStatus})
			}
			if choice.AppliesVolatile != catalog.VolatileNone && !s.Side(defenderSide).HasVolatile(choice.AppliesVolatile) {
				instrs = append(instrs, instruction.ApplyVolatile{Side: defenderSide, Tag: choice.AppliesVolatile, InitialCounter: 0})
			}
			for _, spec := range choice.AppliesBoost {
				target := defenderSide
				if choice.BoostTarget == catalog.TargetUser {
					target = side
				}
				instrs = append(instrs, &instruction.Boost{Side: target, Stat: spec.Stat, Delta: spec.Delta})
			}
		}

		if choice.RecoilFraction > 0 && totalDealt > 0 {
			amount := int(float64(totalDealt) * choice.RecoilFraction)
			if amount > attacker.CurrentHP {
				amount = attacker.CurrentHP
			}
			if amount > 0 {
				instrs = append(instrs, instruction.Damage{Side: side, Amount: amount})
			}
		}

		child := fork(wb, 100, instrs)

		if totalDealt > 0 {
			ins, err := rc.hooks.AfterDamage(ctx, child.state, side, choice, attacker.Item, defender.Item, totalDealt, hitSub)
			if err != nil {
				return nil, err
			}
			child = fork(child, 100, ins)

			if choice.HasHazardClear {
				ins, err := rc.hooks.HazardClear(ctx, child.state, side, choice.MoveID)
				if err != nil {
					return nil, err
				}
				child = fork(child, 100, ins)
			}
		}

		return []workingBranch{child}, nil
	}
}

// secondaryGate forks on one independently-rolled secondary effect (spec
// §4.4 step 6). A hit that landed on a substitute never triggers a
// secondary — the substitute absorbs status, volatile, and flinch effects
// the same way it absorbs damage.
func (rc *resolveCtx) secondaryGate(side core.SideRef, sec catalog.SecondaryEffect) func(workingBranch) ([]workingBranch, error) {
	return func(wb workingBranch) ([]workingBranch, error) {
		if wb.hitSubstitute || sec.Chance <= 0 {
			return []workingBranch{fork(wb, 100, nil)}, nil
		}
		applied := applySecondaryInstrs(wb.state, side, sec)
		if sec.Chance >= 100 {
			return []workingBranch{fork(wb, 100, applied)}, nil
		}
		hitChild := fork(wb, sec.Chance, applied)
		missChild := fork(wb, 100-sec.Chance, nil)
		return []workingBranch{hitChild, missChild}, nil
	}
}

func applySecondaryInstrs(s *state.State, side core.SideRef, sec catalog.SecondaryEffect) []instruction.Instruction {
	target := side.Opponent()
	if sec.Target == catalog.TargetUser {
		target = side
	}
	switch sec.Effect {
	case catalog.SecondaryStatus:
		status, _ := sec.Param.(catalog.StatusCondition)
		if !canApplyStatus(s, target, status) {
			return nil
		}
		slot := s.Side(target).ActiveIndex
		return []instruction.Instruction{instruction.ChangeStatus{Side: target, Slot: slot, Old: catalog.StatusNone, New: status}}
	case catalog.SecondaryVolatile:
		tag, _ := sec.Param.(catalog.VolatileTag)
		if s.Side(target).HasVolatile(tag) {
			return nil
		}
		return []instruction.Instruction{instruction.ApplyVolatile{Side: target, Tag: tag, InitialCounter: 0}}
	case catalog.SecondaryBoost:
		spec, _ := sec.Param.(catalog.BoostSpec)
		return []instruction.Instruction{&instruction.Boost{Side: target, Stat: spec.Stat, Delta: spec.Delta}}
	case catalog.SecondaryFlinch:
		if s.Side(target).HasVolatile(catalog.VolatileFlinch) {
			return nil
		}
		return []instruction.Instruction{instruction.ApplyVolatile{Side: target, Tag: catalog.VolatileFlinch, InitialCounter: 0}}
	}
	return nil
}

// applyDirectEffects handles non-damaging (status-category) moves (spec
// §4.4 step 4's "no damage" branch): move_special_effect first (Substitute,
// Belly Drum), then whatever status/volatile/boost/side-condition the
// move applies directly.
func (rc *resolveCtx) applyDirectEffects(ctx context.Context, wb workingBranch, side core.SideRef, choice *state.Choice) ([]workingBranch, error) {
	s := wb.state
	var instrs []instruction.Instruction

	if choice.HasMoveSpecialEffect {
		ins, err := rc.hooks.MoveSpecialEffect(ctx, s, side, choice.MoveID)
		if err != nil {
			return nil, err
		}
		instrs = append(instrs, ins...)
	}

	target := side.Opponent()
	if choice.Target == catalog.TargetUser || choice.Target == catalog.TargetField {
		target = side
	}

	if choice.HealFraction > 0 {
		mon := s.Active(side)
		if mon.CurrentHP < mon.Stats.HP {
			amount := int(float64(mon.Stats.HP) * choice.HealFraction)
			if missing := mon.Stats.HP - mon.CurrentHP; amount > missing {
				amount = missing
			}
			if amount > 0 {
				instrs = append(instrs, instruction.Heal{Side: side, Amount: amount})
			}
		}
	}

	if choice.AppliesStatus != catalog.StatusNone && canApplyStatus(s, target, choice.AppliesStatus) {
		mon := s.Active(target)
		slot := s.Side(target).ActiveIndex
		instrs = append(instrs, instruction.ChangeStatus{Side: target, Slot: slot, Old: mon.Status, New: choice.AppliesStatus})
		if choice.MoveID == "rest" {
			instrs = append(instrs, instruction.SetRestTurns{Side: target, Slot: slot, Old: mon.RestTurns, New: 2})
		}
	}

	if choice.AppliesVolatile != catalog.VolatileNone && !s.Side(target).HasVolatile(choice.AppliesVolatile) {
		instrs = append(instrs, instruction.ApplyVolatile{Side: target, Tag: choice.AppliesVolatile, InitialCounter: 0})
	}

	for _, spec := range choice.AppliesBoost {
		boostTarget := target
		if choice.BoostTarget == catalog.TargetUser {
			boostTarget = side
		} else if choice.BoostTarget == catalog.TargetOpponent {
			boostTarget = side.Opponent()
		}
		instrs = append(instrs, &instruction.Boost{Side: boostTarget, Stat: spec.Stat, Delta: spec.Delta})
	}

	if choice.HasSideEffect {
		sideTarget := side
		if choice.Target == catalog.TargetOpponent {
			sideTarget = side.Opponent()
		}
		instrs = append(instrs, instruction.ChangeSideCondition{Side: sideTarget, Condition: choice.SideCondition, Delta: 1})
	}

	return []workingBranch{fork(wb, 100, instrs)}, nil
}

// canApplyStatus reports whether status can be newly applied to target:
// the target must not already carry a status, and freeze/sleep clause (if
// enabled) must not already have another teammate under that same status
// (spec §6.5).
func canApplyStatus(s *state.State, target core.SideRef, status catalog.StatusCondition) bool {
	side := s.Side(target)
	if side.Active().Status != catalog.StatusNone {
		return false
	}
	if status == catalog.StatusFreeze && s.Rules.FreezeClause && teammateHasStatus(side, status) {
		return false
	}
	if status == catalog.StatusSleep && s.Rules.SleepClause && teammateHasStatus(side, status) {
		return false
	}
	return true
}

func teammateHasStatus(side *state.Side, status catalog.StatusCondition) bool {
	for i := 0; i < side.NumSlots; i++ {
		if side.Team[i].Status == status {
			return true
		}
	}
	return false
}

// baseDamage computes one hit's damage before the roll multiplier (spec
// §4.4 step 4): the standard level/power/atk/def formula, then weather,
// STAB, type effectiveness, burn, screens, and crit, applied in that order.
func baseDamage(s *state.State, attackerSide, defenderSide core.SideRef, choice *state.Choice, crit bool, chart *catalog.TypeChart) int {
	if choice.FixedDamage > 0 {
		return choice.FixedDamage
	}

	atkSide := s.Side(attackerSide)
	defSide := s.Side(defenderSide)
	attacker := atkSide.Active()
	defender := defSide.Active()

	var atkStat, defStat int
	var atkBoost, defBoost int
	if choice.Category == catalog.CategoryPhysical {
		atkStat, defStat = attacker.Stats.Attack, defender.Stats.Defense
		atkBoost, defBoost = atkSide.Boosts[catalog.StatAttack], defSide.Boosts[catalog.StatDefense]
	} else {
		atkStat, defStat = attacker.Stats.SpecialAttack, defender.Stats.SpecialDefense
		atkBoost = atkSide.Boosts[catalog.StatSpecialAttack]
		defBoost = defSide.Boosts[catalog.StatSpecialDefense]
		if s.Rules.CombinedSpecial {
			defBoost = defSide.Boosts[catalog.StatSpecialAttack]
		}
	}
	if crit {
		if atkBoost < 0 {
			atkBoost = 0
		}
		if defBoost > 0 {
			defBoost = 0
		}
	}

	atk := float64(atkStat) * state.BoostMultiplier(atkBoost)
	def := float64(defStat) * state.BoostMultiplier(defBoost)
	dmg := (float64(2*attacker.Level)/5.0+2.0)*float64(choice.BasePower)*atk/def/50.0 + 2.0

	dmg *= weatherMultiplier(choice.Type, s.Field.Weather)

	if choice.Type == attacker.TypeOne || choice.Type == attacker.TypeTwo {
		if attacker.Ability == "adaptability" {
			dmg *= 2.0
		} else {
			dmg *= 1.5
		}
	}

	dmg *= chart.Multiplier(choice.Type, defender.TypeOne, defender.TypeTwo)

	if attacker.Status == catalog.StatusBurn && choice.Category == catalog.CategoryPhysical && attacker.Ability != "guts" {
		dmg *= 0.5
	}

	if choice.Category == catalog.CategoryPhysical && defSide.SideConditions[catalog.SideConditionReflect] > 0 {
		dmg *= 0.5
	}
	if choice.Category == catalog.CategorySpecial && defSide.SideConditions[catalog.SideConditionLightScreen] > 0 {
		dmg *= 0.5
	}

	if crit {
		dmg *= s.Rules.CritMultiplier
	}

	return int(dmg)
}

func weatherMultiplier(t catalog.Type, w catalog.WeatherKind) float64 {
	switch w {
	case catalog.WeatherRain:
		if t == catalog.TypeWater {
			return 1.5
		}
		if t == catalog.TypeFire {
			return 0.5
		}
	case catalog.WeatherSun:
		if t == catalog.TypeFire {
			return 1.5
		}
		if t == catalog.TypeWater {
			return 0.5
		}
	}
	return 1.0
}

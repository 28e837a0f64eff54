package resolver

import (
	"context"

	"github.com/shardwake/battlesim/catalog"
	"github.com/shardwake/battlesim/core"
	"github.com/shardwake/battlesim/instruction"
	"github.com/shardwake/battlesim/state"
)

// executeMove runs one mover's full single-move pipeline (spec §4.4): the
// pre-move status gates in order, then accuracy, then protection/substitute
// routing, then the hit itself. Each gate is an expand-compatible phase
// function that forks on its own probability and sets stopped on any
// branch where the mover's turn ends early.
func (rc *resolveCtx) executeMove(ctx context.Context, wbIn workingBranch, plan moverPlan) ([]workingBranch, error) {
	// stopped describes the previous mover's run, not this one.
	wbIn.stopped = false
	wbs := []workingBranch{wbIn}
	var err error

	for _, phase := range []func(workingBranch) ([]workingBranch, error){
		rc.startGate(plan.side),
		rc.sleepGate(plan.side),
		rc.freezeGate(plan.side, plan.choice),
		rc.paralysisGate(plan.side),
		rc.confusionGate(plan.side),
		rc.flinchGate(plan.side),
		rc.chargeGate(plan.side, plan.choice),
		rc.accuracyGate(plan.side, plan.choice),
		rc.protectionGate(plan.side, plan.choice),
	} {
		wbs, err = expand(wbs, phase)
		if err != nil {
			return nil, err
		}
	}

	wbs, err = expand(wbs, rc.resolveHitGate(ctx, plan))
	if err != nil {
		return nil, err
	}
	return wbs, nil
}

// startGate blocks a fainted mover outright and clears must-recharge
// (spec §4.4 step 1, §4.7): recharging consumes the whole turn the instant
// it's cleared, so legalFor never offers anything but Pass while it's set,
// and this gate stops the pipeline the moment the volatile comes off.
func (rc *resolveCtx) startGate(side core.SideRef) func(workingBranch) ([]workingBranch, error) {
	return func(wb workingBranch) ([]workingBranch, error) {
		s := wb.state.Side(side)
		mon := s.Active()
		if mon.Fainted() {
			c := fork(wb, 100, nil)
			c.stopped = true
			return []workingBranch{c}, nil
		}
		if s.HasVolatile(catalog.VolatileMustRecharge) {
			c := fork(wb, 100, []instruction.Instruction{
				instruction.RemoveVolatile{Side: side, Tag: catalog.VolatileMustRecharge, PriorValue: s.VolatileCounter(catalog.VolatileMustRecharge)},
			})
			c.stopped = true
			return []workingBranch{c}, nil
		}
		return []workingBranch{fork(wb, 100, nil)}, nil
	}
}

// sleepGate forks on the wake-up roll (spec §4.4 step 1): waking clears the
// status and lets the move continue this same turn; staying asleep
// increments the sleep-turn counter and ends the turn here.
func (rc *resolveCtx) sleepGate(side core.SideRef) func(workingBranch) ([]workingBranch, error) {
	return func(wb workingBranch) ([]workingBranch, error) {
		s := wb.state.Side(side)
		mon := s.Active()
		if mon.Status != catalog.StatusSleep {
			return []workingBranch{fork(wb, 100, nil)}, nil
		}
		slot := s.ActiveIndex
		wake := catalog.SleepWakeChancePercent
		stay := 100 - wake

		wakeChild := fork(wb, wake, []instruction.Instruction{
			instruction.ChangeStatus{Side: side, Slot: slot, Old: catalog.StatusSleep, New: catalog.StatusNone},
			instruction.SetSleepTurns{Side: side, Slot: slot, Old: mon.SleepTurns, New: 0},
		})
		stayChild := fork(wb, stay, []instruction.Instruction{
			instruction.SetSleepTurns{Side: side, Slot: slot, Old: mon.SleepTurns, New: mon.SleepTurns + 1},
		})
		stayChild.stopped = true
		return []workingBranch{wakeChild, stayChild}, nil
	}
}

// freezeGate forks on the thaw roll (spec §4.4 step 1). A move carrying
// FlagDefrost always thaws its user outright rather than rolling the usual
// 20% chance — no move in the default roster sets this flag, but the check
// costs nothing and gives any future fire-type move it the right behavior
// for free.
func (rc *resolveCtx) freezeGate(side core.SideRef, choice *state.Choice) func(workingBranch) ([]workingBranch, error) {
	return func(wb workingBranch) ([]workingBranch, error) {
		s := wb.state.Side(side)
		mon := s.Active()
		if mon.Status != catalog.StatusFreeze {
			return []workingBranch{fork(wb, 100, nil)}, nil
		}
		slot := s.ActiveIndex
		thawInstr := instruction.ChangeStatus{Side: side, Slot: slot, Old: catalog.StatusFreeze, New: catalog.StatusNone}

		if choice != nil && choice.Flags.Has(catalog.FlagDefrost) {
			return []workingBranch{fork(wb, 100, []instruction.Instruction{thawInstr})}, nil
		}

		thaw := catalog.FreezeThawChancePercent
		stay := 100 - thaw
		thawChild := fork(wb, thaw, []instruction.Instruction{thawInstr})
		stayChild := fork(wb, stay, nil)
		stayChild.stopped = true
		return []workingBranch{thawChild, stayChild}, nil
	}
}

// paralysisGate forks on full paralysis (spec §4.4 step 1): no residual
// instruction either way, since paralysis itself doesn't tick a counter —
// it's a plain status that clears only via Cure/other explicit means.
func (rc *resolveCtx) paralysisGate(side core.SideRef) func(workingBranch) ([]workingBranch, error) {
	return func(wb workingBranch) ([]workingBranch, error) {
		mon := wb.state.Side(side).Active()
		if mon.Status != catalog.StatusParalyze {
			return []workingBranch{fork(wb, 100, nil)}, nil
		}
		full := catalog.FullParalysisChancePercent
		fullChild := fork(wb, full, nil)
		fullChild.stopped = true
		normalChild := fork(wb, 100-full, nil)
		return []workingBranch{fullChild, normalChild}, nil
	}
}

// confusionGate decrements the confusion counter, removing the volatile
// once it reaches zero, then forks on the self-hit roll (spec §4.4 step 1).
// A self-hit is a fixed, typeless physical hit against the confused
// monster's own Defense using its own Attack — it never itself branches on
// crit or damage roll, matching the originating engine's simplification
// that confusion damage is deterministic once the self-hit roll lands.
func (rc *resolveCtx) confusionGate(side core.SideRef) func(workingBranch) ([]workingBranch, error) {
	return func(wb workingBranch) ([]workingBranch, error) {
		s := wb.state.Side(side)
		if !s.HasVolatile(catalog.VolatileConfusion) {
			return []workingBranch{fork(wb, 100, nil)}, nil
		}
		counter := s.VolatileCounter(catalog.VolatileConfusion)
		base := []instruction.Instruction{
			instruction.DecrementVolatileCounter{Side: side, Tag: catalog.VolatileConfusion},
		}
		if counter-1 <= 0 {
			base = append(base, instruction.RemoveVolatile{Side: side, Tag: catalog.VolatileConfusion, PriorValue: 0})
		}

		mon := s.Active()
		selfDamage := confusionSelfDamage(mon)
		selfInstrs := append(append([]instruction.Instruction{}, base...), instruction.Damage{Side: side, Amount: selfDamage})

		selfHit := catalog.ConfusionSelfHitChancePercent
		selfChild := fork(wb, selfHit, selfInstrs)
		selfChild.stopped = true
		actChild := fork(wb, 100-selfHit, base)
		return []workingBranch{selfChild, actChild}, nil
	}
}

func confusionSelfDamage(mon *state.Monster) int {
	base := (float64(2*mon.Level)/5.0 + 2.0) * float64(catalog.ConfusionSelfHitBasePower) * float64(mon.Stats.Attack) / float64(mon.Stats.Defense) / 50.0 + 2.0
	dmg := int(base)
	if dmg < 1 {
		dmg = 1
	}
	if dmg > mon.CurrentHP {
		dmg = mon.CurrentHP
	}
	return dmg
}

// flinchGate is deterministic, not random: flinch is itself the outcome of
// an earlier roll (a secondary effect or being hit first in a speed tie),
// so seeing it set always stops the move and always clears it (spec §4.4
// step 1).
func (rc *resolveCtx) flinchGate(side core.SideRef) func(workingBranch) ([]workingBranch, error) {
	return func(wb workingBranch) ([]workingBranch, error) {
		s := wb.state.Side(side)
		if !s.HasVolatile(catalog.VolatileFlinch) {
			return []workingBranch{fork(wb, 100, nil)}, nil
		}
		c := fork(wb, 100, []instruction.Instruction{
			instruction.RemoveVolatile{Side: side, Tag: catalog.VolatileFlinch, PriorValue: 0},
		})
		c.stopped = true
		return []workingBranch{c}, nil
	}
}

// chargeGate handles two-turn charge moves (Solar Beam is the only one in
// the default roster). The catalog has no dedicated "is charging" volatile
// tag distinct from VolatileCharge's unrelated in-game meaning (the move
// Charge, which isn't in this roster); this resolver repurposes the tag for
// the charge-turn marker since nothing else here uses it — a deliberate,
// documented simplification rather than adding a new tag to an
// already-closed set.
func (rc *resolveCtx) chargeGate(side core.SideRef, choice *state.Choice) func(workingBranch) ([]workingBranch, error) {
	return func(wb workingBranch) ([]workingBranch, error) {
		if choice == nil || !choice.Flags.Has(catalog.FlagCharge) {
			return []workingBranch{fork(wb, 100, nil)}, nil
		}
		s := wb.state.Side(side)
		if s.HasVolatile(catalog.VolatileCharge) {
			c := fork(wb, 100, []instruction.Instruction{
				instruction.RemoveVolatile{Side: side, Tag: catalog.VolatileCharge, PriorValue: 0},
			})
			return []workingBranch{c}, nil
		}
		if wb.state.Field.Weather == catalog.WeatherSun {
			return []workingBranch{fork(wb, 100, nil)}, nil
		}
		c := fork(wb, 100, []instruction.Instruction{
			instruction.ApplyVolatile{Side: side, Tag: catalog.VolatileCharge, InitialCounter: 0},
		})
		c.stopped = true
		return []workingBranch{c}, nil
	}
}

// accuracyGate forks on the to-hit roll (spec §4.4 step 2): a miss with a
// non-zero crash fraction (Hi Jump Kick) deals the attacker self-damage
// before the turn ends.
func (rc *resolveCtx) accuracyGate(side core.SideRef, choice *state.Choice) func(workingBranch) ([]workingBranch, error) {
	return func(wb workingBranch) ([]workingBranch, error) {
		if choice == nil {
			c := fork(wb, 100, nil)
			c.stopped = true
			return []workingBranch{c}, nil
		}
		if choice.BypassAcc || choice.Accuracy <= 0 {
			return []workingBranch{fork(wb, 100, nil)}, nil
		}

		atkSide := wb.state.Side(side)
		defSide := wb.state.Side(side.Opponent())
		acc := float64(choice.Accuracy) *
			state.AccuracyEvasionMultiplier(atkSide.Boosts[catalog.StatAccuracy]) /
			state.AccuracyEvasionMultiplier(defSide.Boosts[catalog.StatEvasion])
		if acc > 100 {
			acc = 100
		}
		if acc < 1 {
			acc = 1
		}

		hitChild := fork(wb, acc, nil)
		var missInstrs []instruction.Instruction
		if choice.CrashFraction > 0 {
			mon := atkSide.Active()
			crash := int(float64(mon.Stats.HP) * choice.CrashFraction)
			if crash > mon.CurrentHP {
				crash = mon.CurrentHP
			}
			if crash > 0 {
				missInstrs = []instruction.Instruction{instruction.Damage{Side: side, Amount: crash}}
			}
		}
		missChild := fork(wb, 100-acc, missInstrs)
		missChild.stopped = true
		return []workingBranch{hitChild, missChild}, nil
	}
}

// protectionGate routes around Protect and Substitute (spec §4.4 step 3).
// Every move in the default roster that can be blocked targets the
// opponent or all adjacent foes; self- and field-targeted moves bypass
// both checks entirely, which is why only those two Target kinds are
// gated here.
func (rc *resolveCtx) protectionGate(side core.SideRef, choice *state.Choice) func(workingBranch) ([]workingBranch, error) {
	return func(wb workingBranch) ([]workingBranch, error) {
		if choice == nil {
			c := fork(wb, 100, nil)
			c.stopped = true
			return []workingBranch{c}, nil
		}
		if choice.Target != catalog.TargetOpponent && choice.Target != catalog.TargetAllAdjacent {
			return []workingBranch{fork(wb, 100, nil)}, nil
		}

		defSide := wb.state.Side(side.Opponent())
		if defSide.HasVolatile(catalog.VolatileProtect) {
			c := fork(wb, 100, nil)
			c.stopped = true
			return []workingBranch{c}, nil
		}

		child := fork(wb, 100, nil)
		defender := defSide.Active()
		if defender.HasSubstitute() && !choice.Flags.Has(catalog.FlagSound) && !choice.Flags.Has(catalog.FlagAuthentic) {
			child.hitSubstitute = true
		}
		return []workingBranch{child}, nil
	}
}

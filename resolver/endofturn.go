package resolver

import (
	"context"

	"github.com/shardwake/battlesim/catalog"
	"github.com/shardwake/battlesim/core"
	"github.com/shardwake/battlesim/instruction"
	"github.com/shardwake/battlesim/state"
)

// endOfTurn runs the end-of-turn residual pass (spec §4.5): weather chip
// damage, status residuals, leech seed drain, and ability/item passives for
// each side's active monster in a fixed side-one-then-side-two order, then
// ticks every field/side-condition counter down, and finally checks for a
// forced switch or a decided battle. None of these steps roll a chance —
// unlike the per-move pipeline, end-of-turn processing is fully
// deterministic, so this phase never forks.
func (rc *resolveCtx) endOfTurn(ctx context.Context, wb workingBranch) ([]workingBranch, error) {
	var instrs []instruction.Instruction
	for _, ref := range []core.SideRef{core.SideOne, core.SideTwo} {
		instrs = append(instrs, residualsFor(wb.state, ref)...)
	}
	wb = fork(wb, 100, instrs)

	for _, ref := range []core.SideRef{core.SideOne, core.SideTwo} {
		mon := wb.state.Active(ref)
		if mon.Fainted() {
			continue
		}
		ins, err := rc.hooks.EndOfTurn(ctx, wb.state, ref, wb.state.Side(ref).ActiveIndex, mon.Ability, mon.Item)
		if err != nil {
			return nil, err
		}
		wb = fork(wb, 100, ins)
	}

	wb = fork(wb, 100, fieldCounterTicks(wb.state))

	result := markTerminal([]workingBranch{wb})
	return result, nil
}

// residualsFor computes one side's weather chip damage, status residual,
// and leech seed drain, in that order (spec §4.5 steps 1, 4, 5). A fainted
// active monster takes no further residual damage.
func residualsFor(s *state.State, ref core.SideRef) []instruction.Instruction {
	side := s.Side(ref)
	mon := side.Active()
	if mon.Fainted() {
		return nil
	}
	var instrs []instruction.Instruction
	remaining := mon.CurrentHP

	// dealt queues a Damage instruction clamped to whatever HP this
	// monster has left after every residual applied so far this pass,
	// per Damage's exact-inverse contract (instruction/hp.go).
	dealt := func(dmg int) int {
		if dmg > remaining {
			dmg = remaining
		}
		if dmg > 0 {
			instrs = append(instrs, instruction.Damage{Side: ref, Amount: dmg})
			remaining -= dmg
		}
		return dmg
	}

	dealt(weatherChipDamage(s, mon))
	if remaining <= 0 {
		return instrs
	}

	switch mon.Status {
	case catalog.StatusBurn:
		dealt(int(float64(mon.Stats.HP) * catalog.BurnDamageFraction))
	case catalog.StatusPoison:
		dealt(int(float64(mon.Stats.HP) * catalog.PoisonDamageFraction))
	case catalog.StatusToxic:
		counter := mon.ToxicCounter + 1
		if counter > catalog.MaxToxicCounter {
			counter = catalog.MaxToxicCounter
		}
		instrs = append(instrs, instruction.SetToxicCount{Side: ref, Slot: side.ActiveIndex, Old: mon.ToxicCounter, New: counter})
		dealt((counter*mon.Stats.HP + 15) / 16)
	}
	if remaining <= 0 {
		return instrs
	}

	if side.HasVolatile(catalog.VolatileLeechSeed) {
		drain := dealt(int(float64(remaining) * catalog.LeechSeedDrainFraction))
		if drain > 0 {
			opp := ref.Opponent()
			oppMon := s.Active(opp)
			if !oppMon.Fainted() {
				if heal := oppMon.Stats.HP - oppMon.CurrentHP; heal > 0 {
					if drain < heal {
						heal = drain
					}
					instrs = append(instrs, instruction.Heal{Side: opp, Amount: heal})
				}
			}
		}
	}

	return instrs
}

// weatherChipDamage is the sand/hail residual (spec §4.5 step 1): Rock,
// Ground, and Steel types are immune to sand; Ice types are immune to
// hail.
func weatherChipDamage(s *state.State, mon *state.Monster) int {
	switch s.Field.Weather {
	case catalog.WeatherSand:
		if mon.TypeOne == catalog.TypeRock || mon.TypeTwo == catalog.TypeRock ||
			mon.TypeOne == catalog.TypeGround || mon.TypeTwo == catalog.TypeGround ||
			mon.TypeOne == catalog.TypeSteel || mon.TypeTwo == catalog.TypeSteel {
			return 0
		}
	case catalog.WeatherHail:
		if mon.TypeOne == catalog.TypeIce || mon.TypeTwo == catalog.TypeIce {
			return 0
		}
	default:
		return 0
	}
	return int(float64(mon.Stats.HP) * catalog.WeatherChipDamageFraction)
}

// fieldCounterTicks decrements every active field and side-condition turn
// counter by one, never below zero (spec §4.5 step 2).
func fieldCounterTicks(s *state.State) []instruction.Instruction {
	var instrs []instruction.Instruction
	if s.Field.WeatherTurns > 0 {
		instrs = append(instrs, instruction.DecrementFieldTurns{Counter: instruction.FieldCounterWeather})
	}
	if s.Field.TerrainTurns > 0 {
		instrs = append(instrs, instruction.DecrementFieldTurns{Counter: instruction.FieldCounterTerrain})
	}
	if s.Field.TrickRoomTurns > 0 {
		instrs = append(instrs, instruction.DecrementFieldTurns{Counter: instruction.FieldCounterTrickRoom})
	}
	if s.Field.GravityTurns > 0 {
		instrs = append(instrs, instruction.DecrementFieldTurns{Counter: instruction.FieldCounterGravity})
	}
	turnLimited := []catalog.SideConditionTag{
		catalog.SideConditionReflect,
		catalog.SideConditionLightScreen,
		catalog.SideConditionAuroraVeil,
		catalog.SideConditionTailwind,
		catalog.SideConditionSafeguard,
	}
	for _, ref := range []core.SideRef{core.SideOne, core.SideTwo} {
		side := s.Side(ref)
		for _, tag := range turnLimited {
			if side.SideConditions[tag] > 0 {
				instrs = append(instrs, instruction.ChangeSideCondition{Side: ref, Condition: tag, Delta: -1})
			}
		}
	}
	return instrs
}

package instruction_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shardwake/battlesim/catalog"
	"github.com/shardwake/battlesim/core"
	"github.com/shardwake/battlesim/instruction"
	"github.com/shardwake/battlesim/state"
)

func neutralMonster() state.Monster {
	return state.Monster{
		Species:   "ditto",
		Level:     100,
		Stats:     state.Stats{HP: 300, Attack: 100, Defense: 100, SpecialAttack: 100, SpecialDefense: 100, Speed: 100},
		CurrentHP: 300,
		TypeOne:   catalog.TypeNormal,
	}
}

func twoSidedState() *state.State {
	s := state.New(catalog.NewRuleSet())
	s.Sides[0].NumSlots = 1
	s.Sides[0].Team[0] = neutralMonster()
	s.Sides[1].NumSlots = 1
	s.Sides[1].Team[0] = neutralMonster()
	return s
}

// roundTrip asserts Apply followed by Reverse restores an identical state,
// the property spec §8 names as "apply then reverse of an instruction list
// yields a state equal to the original".
func roundTrip(t *testing.T, ins instruction.Instruction) {
	t.Helper()
	before := twoSidedState()
	after := before.Clone()

	ins.Apply(after)
	ins.Reverse(after)

	require.Equal(t, before, after)
}

func TestDamageAndHealRoundTrip(t *testing.T) {
	roundTrip(t, instruction.Damage{Side: core.SideOne, Amount: 50})

	// A Heal's Amount is the already-clamped delta, so it is applied to a
	// monster missing at least that much HP.
	before := twoSidedState()
	before.Active(core.SideOne).CurrentHP = 250
	after := before.Clone()
	heal := instruction.Heal{Side: core.SideOne, Amount: 50}
	heal.Apply(after)
	require.Equal(t, 300, after.Active(core.SideOne).CurrentHP)
	heal.Reverse(after)
	require.Equal(t, before, after)
}

func TestDamageClampsAtZero(t *testing.T) {
	s := twoSidedState()
	instruction.Damage{Side: core.SideOne, Amount: 9999}.Apply(s)
	require.Equal(t, 0, s.Active(core.SideOne).CurrentHP)
}

func TestHealClampsAtMax(t *testing.T) {
	s := twoSidedState()
	s.Active(core.SideOne).CurrentHP = 290
	instruction.Heal{Side: core.SideOne, Amount: 50}.Apply(s)
	require.Equal(t, 300, s.Active(core.SideOne).CurrentHP)
}

func TestChangeStatusRoundTrip(t *testing.T) {
	roundTrip(t, instruction.ChangeStatus{Side: core.SideOne, Slot: 0, Old: catalog.StatusNone, New: catalog.StatusBurn})
}

func TestSleepAndRestTurnsRoundTrip(t *testing.T) {
	roundTrip(t, instruction.SetSleepTurns{Side: core.SideOne, Slot: 0, Old: 0, New: 3})
	roundTrip(t, instruction.SetRestTurns{Side: core.SideOne, Slot: 0, Old: 0, New: 2})
	roundTrip(t, instruction.DecrementRestTurns{Side: core.SideOne, Slot: 0})
	roundTrip(t, instruction.SetToxicCount{Side: core.SideOne, Slot: 0, Old: 0, New: 1})
}

func TestVolatileLifecycleRoundTrip(t *testing.T) {
	roundTrip(t, instruction.ApplyVolatile{Side: core.SideOne, Tag: catalog.VolatileFlinch, InitialCounter: 0})

	// RemoveVolatile is only emitted for a tag that is present.
	confused := twoSidedState()
	confused.Sides[0].Volatiles[catalog.VolatileConfusion] = 2
	restored := confused.Clone()
	rv := instruction.RemoveVolatile{Side: core.SideOne, Tag: catalog.VolatileConfusion, PriorValue: 2}
	rv.Apply(restored)
	require.False(t, restored.Sides[0].HasVolatile(catalog.VolatileConfusion))
	rv.Reverse(restored)
	require.Equal(t, confused, restored)

	s := twoSidedState()
	s.Sides[0].Volatiles[catalog.VolatileConfusion] = 3
	dec := instruction.DecrementVolatileCounter{Side: core.SideOne, Tag: catalog.VolatileConfusion}
	dec.Apply(s)
	require.Equal(t, 2, s.Sides[0].VolatileCounter(catalog.VolatileConfusion))
	dec.Reverse(s)
	require.Equal(t, 3, s.Sides[0].VolatileCounter(catalog.VolatileConfusion))
}

func TestChangeSubstituteHealthTogglesVolatile(t *testing.T) {
	s := twoSidedState()
	c := instruction.ChangeSubstituteHealth{Side: core.SideOne, Old: 0, New: 75}
	c.Apply(s)
	require.True(t, s.Sides[0].HasVolatile(catalog.VolatileSubstitute))
	require.Equal(t, 75, s.Active(core.SideOne).SubstituteHP)

	c.Reverse(s)
	require.False(t, s.Sides[0].HasVolatile(catalog.VolatileSubstitute))
	require.Equal(t, 0, s.Active(core.SideOne).SubstituteHP)
}

func TestBoostSaturatesAndReversesExactly(t *testing.T) {
	s := twoSidedState()
	s.Sides[0].Boosts[catalog.StatAttack] = 5

	b := &instruction.Boost{Side: core.SideOne, Stat: catalog.StatAttack, Delta: 4}
	b.Apply(s)
	require.Equal(t, 6, s.Sides[0].Boosts[catalog.StatAttack]) // saturated at +6, not +9

	b.Reverse(s)
	require.Equal(t, 5, s.Sides[0].Boosts[catalog.StatAttack]) // undoes the realized +1, not the requested +4
}

func TestSetBoostRoundTrip(t *testing.T) {
	roundTrip(t, instruction.SetBoost{Side: core.SideOne, Stat: catalog.StatSpeed, Old: 0, New: -2})
}

func TestChangeSideConditionRoundTrip(t *testing.T) {
	roundTrip(t, instruction.ChangeSideCondition{Side: core.SideOne, Condition: catalog.SideConditionSpikes, Delta: 1})
}

func TestSwitchRoundTrip(t *testing.T) {
	s := twoSidedState()
	s.Sides[0].NumSlots = 2
	s.Sides[0].Team[1] = neutralMonster()

	after := s.Clone()
	sw := instruction.Switch{Side: core.SideOne, Previous: 0, Next: 1}
	sw.Apply(after)
	require.Equal(t, 1, after.Sides[0].ActiveIndex)
	sw.Reverse(after)
	require.Equal(t, s, after)
}

func TestChangeItemAbilityFormeRoundTrip(t *testing.T) {
	roundTrip(t, instruction.ChangeItem{Side: core.SideOne, Slot: 0, Old: "leftovers", New: "choiceband"})
	roundTrip(t, instruction.ChangeAbility{Side: core.SideOne, Slot: 0, Old: "levitate", New: "static"})
	roundTrip(t, instruction.FormeChange{Side: core.SideOne, Slot: 0, OldSpecies: "ditto", NewSpecies: "ditto-mega"})
}

func TestSetTerastallizedRoundTrip(t *testing.T) {
	roundTrip(t, instruction.SetTerastallized{Side: core.SideOne, Slot: 0, Old: false, New: true})

	s := twoSidedState()
	instruction.SetTerastallized{Side: core.SideOne, Slot: 0, Old: false, New: true}.Apply(s)
	require.True(t, s.Sides[0].Team[0].Terastallized)
}

func TestFieldInstructionsRoundTrip(t *testing.T) {
	roundTrip(t, instruction.ChangeWeather{PreviousKind: catalog.WeatherNone, PreviousTurns: 0, NewKind: catalog.WeatherSun, NewTurns: 5})
	roundTrip(t, instruction.ChangeTerrain{PreviousKind: catalog.TerrainNone, PreviousTurns: 0, NewKind: catalog.TerrainElectric, NewTurns: 5})

	s := twoSidedState()
	s.Field.WeatherTurns = 3
	dec := instruction.DecrementFieldTurns{Counter: instruction.FieldCounterWeather}
	dec.Apply(s)
	require.Equal(t, 2, s.Field.WeatherTurns)
	dec.Reverse(s)
	require.Equal(t, 3, s.Field.WeatherTurns)
}

func TestMoveSlotInstructionsRoundTrip(t *testing.T) {
	roundTrip(t, instruction.DisableMove{Side: core.SideOne, Slot: 0, MoveSlot: 0, OldTurns: 0, NewTurns: 4})
	roundTrip(t, instruction.SetLastUsedMove{Side: core.SideOne, Old: "", New: "tackle"})
	roundTrip(t, instruction.SetDamageDealt{
		Side: core.SideOne,
		Old:  state.DamageDealt{},
		New:  state.DamageDealt{Amount: 40, Category: catalog.CategoryPhysical, MoveType: catalog.TypeNormal},
	})
	roundTrip(t, instruction.ToggleTrapped{Side: core.SideOne, Slot: 0, Old: false, New: true})
}

func TestApplyAndReverseListRestoresState(t *testing.T) {
	before := twoSidedState()
	after := before.Clone()

	list := []instruction.Instruction{
		instruction.Damage{Side: core.SideOne, Amount: 30},
		instruction.ChangeStatus{Side: core.SideOne, Slot: 0, Old: catalog.StatusNone, New: catalog.StatusParalyze},
		&instruction.Boost{Side: core.SideTwo, Stat: catalog.StatDefense, Delta: -1},
		instruction.ApplyVolatile{Side: core.SideTwo, Tag: catalog.VolatileFlinch, InitialCounter: 0},
	}

	instruction.Apply(after, list)
	require.NotEqual(t, before, after)

	instruction.Reverse(after, list)
	require.Equal(t, before, after)
}

func TestBranchTotalWeightAndMerge(t *testing.T) {
	same := []instruction.Instruction{instruction.Damage{Side: core.SideOne, Amount: 10}}
	branches := []instruction.Branch{
		{Weight: 60, Instructions: same},
		{Weight: 40, Instructions: []instruction.Instruction{instruction.Damage{Side: core.SideOne, Amount: 10}}},
	}

	require.InDelta(t, 100.0, instruction.TotalWeight(branches), 1e-9)

	merged := instruction.Merge(branches)
	require.Len(t, merged, 1)
	require.InDelta(t, 100.0, merged[0].Weight, 1e-9)
}

package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shardwake/battlesim/catalog"
	"github.com/shardwake/battlesim/core"
	"github.com/shardwake/battlesim/engine"
	"github.com/shardwake/battlesim/instruction"
	"github.com/shardwake/battlesim/state"
)

func neutralMonster(moves ...string) state.Monster {
	var slots [4]state.MoveSlot
	for i, id := range moves {
		slots[i] = state.MoveSlot{ID: id, PP: 20, MaxPP: 20}
	}
	return state.Monster{
		Species:   "ditto",
		Level:     100,
		Stats:     state.Stats{HP: 300, Attack: 100, Defense: 100, SpecialAttack: 100, SpecialDefense: 100, Speed: 100},
		CurrentHP: 300,
		TypeOne:   catalog.TypeNormal,
		Moves:     slots,
	}
}

func twoSidedState(rules catalog.RuleSet, moves ...string) *state.State {
	s := state.New(rules)
	s.Sides[0].NumSlots = 2
	s.Sides[0].Team[0] = neutralMonster(moves...)
	s.Sides[0].Team[1] = neutralMonster(moves...)
	s.Sides[1].NumSlots = 2
	s.Sides[1].Team[0] = neutralMonster(moves...)
	s.Sides[1].Team[1] = neutralMonster(moves...)
	return s
}

// TestBranchWeightsSumTo100 is spec §8's first universal property: for any
// (state, a1, a2), the returned branches' weights sum to 100 within
// floating point tolerance.
func TestBranchWeightsSumTo100(t *testing.T) {
	eng := engine.New(catalog.Default())
	s := twoSidedState(catalog.NewRuleSet(), "tackle", "splash")

	branches, err := eng.GenerateInstructions(context.Background(), s, state.Move(0), state.Move(1), false)
	require.NoError(t, err)
	require.InDelta(t, 100.0, instruction.TotalWeight(branches), 1e-9)
}

// TestApplyThenReverseRestoresState is spec §8's round-trip property: for
// every branch, applying then reversing its instructions yields a
// byte-identical state.
func TestApplyThenReverseRestoresState(t *testing.T) {
	eng := engine.New(catalog.Default())
	s := twoSidedState(catalog.NewRuleSet(), "tackle", "thunderwave")

	branches, err := eng.GenerateInstructions(context.Background(), s, state.Move(0), state.Move(1), false)
	require.NoError(t, err)
	require.NotEmpty(t, branches)

	for _, b := range branches {
		before := s.Clone()
		engine.ApplyInstructions(s, b.Instructions)
		engine.ReverseInstructions(s, b.Instructions)
		require.Equal(t, before, s)
	}
}

// TestLegalActionsWithMustRechargeIsPassOnly covers spec §8's legal-action
// invariant: a side with the MUSTRECHARGE volatile has exactly [None].
func TestLegalActionsWithMustRechargeIsPassOnly(t *testing.T) {
	s := twoSidedState(catalog.NewRuleSet(), "tackle")
	s.Sides[0].Volatiles[catalog.VolatileMustRecharge] = 0

	one, _ := engine.LegalActions(s)
	require.Equal(t, []state.Action{state.Pass()}, one)
}

// TestLegalActionsExcludesFaintedMonsters covers the rest of the same
// invariant: no move on a fainted active, no switch into a fainted slot.
func TestLegalActionsExcludesFaintedMonsters(t *testing.T) {
	s := twoSidedState(catalog.NewRuleSet(), "tackle")
	s.Sides[0].Team[0].CurrentHP = 0
	s.Sides[0].Team[1].CurrentHP = 0

	one, _ := engine.LegalActions(s)
	require.Empty(t, one)
}

// TestToxicConvertsToPoisonOnSwitch is spec §8 scenario 3: a toxic-statused
// monster converts to plain poison and its toxic counter resets when it
// switches out.
func TestToxicConvertsToPoisonOnSwitch(t *testing.T) {
	eng := engine.New(catalog.Default())
	s := twoSidedState(catalog.NewRuleSet(), "splash")
	s.Sides[0].Team[0].Status = catalog.StatusToxic
	s.Sides[0].Team[0].ToxicCounter = 3

	branches, err := eng.GenerateInstructions(context.Background(), s, state.Switch(1), state.Move(0), false)
	require.NoError(t, err)
	require.Len(t, branches, 1)

	b := branches[0]
	require.Contains(t, b.Instructions, instruction.ChangeStatus{
		Side: core.SideOne, Slot: 0, Old: catalog.StatusToxic, New: catalog.StatusPoison,
	})
	require.Contains(t, b.Instructions, instruction.Switch{Side: core.SideOne, Previous: 0, Next: 1})
}

// TestCounterDoublesLastPhysicalHit is the non-gen1 half of spec §8
// scenario 5: Counter replies to the physical damage its own side
// received, regardless of the hitting move's type, outside gen-1 rules.
func TestCounterDoublesLastPhysicalHit(t *testing.T) {
	eng := engine.New(catalog.Default())
	s := twoSidedState(catalog.NewRuleSet(), "counter", "splash")
	s.Sides[0].DamageDealt = state.DamageDealt{Amount: 48, Category: catalog.CategoryPhysical, MoveType: catalog.TypeFlying}

	branches, err := eng.GenerateInstructions(context.Background(), s, state.Move(0), state.Move(1), false)
	require.NoError(t, err)

	found := false
	for _, b := range branches {
		if b.Weight == 0 {
			continue
		}
		for _, ins := range b.Instructions {
			if dmg, ok := ins.(instruction.Damage); ok && dmg.Side == core.SideTwo {
				require.Equal(t, 96, dmg.Amount)
				found = true
			}
		}
	}
	require.True(t, found, "expected a Damage(side=two, amount=96) instruction from Counter")
}

// TestCounterFailsOnFlyingTypeHitUnderGen1 is the gen-1 half of the same
// scenario: the documented quirk only replies to Normal/Fighting-type
// hits pre-gen-2.
func TestCounterFailsOnFlyingTypeHitUnderGen1(t *testing.T) {
	eng := engine.New(catalog.Default())
	s := twoSidedState(catalog.NewRuleSet(catalog.WithGen(1)), "counter", "splash")
	s.Sides[0].DamageDealt = state.DamageDealt{Amount: 48, Category: catalog.CategoryPhysical, MoveType: catalog.TypeFlying}

	branches, err := eng.GenerateInstructions(context.Background(), s, state.Move(0), state.Move(1), false)
	require.NoError(t, err)

	for _, b := range branches {
		for _, ins := range b.Instructions {
			if dmg, ok := ins.(instruction.Damage); ok {
				require.NotEqual(t, core.SideTwo, dmg.Side, "counter must not have dealt damage")
			}
		}
	}
}

// TestReflectHalvesPhysicalDamage is spec §8 scenario 1, adapted to this
// engine's honest branch-forking: rather than collapsing to a single
// deterministic Damage amount, every damage-roll branch with Reflect up
// deals exactly half what the same roll deals without it.
func TestReflectHalvesPhysicalDamage(t *testing.T) {
	eng := engine.New(catalog.Default())

	without := twoSidedState(catalog.NewRuleSet(), "tackle", "splash")
	withReflect := twoSidedState(catalog.NewRuleSet(), "tackle", "splash")
	withReflect.Sides[1].SideConditions[catalog.SideConditionReflect] = 5

	plainBranches, err := eng.GenerateInstructions(context.Background(), without, state.Move(0), state.Move(1), true)
	require.NoError(t, err)
	reflectBranches, err := eng.GenerateInstructions(context.Background(), withReflect, state.Move(0), state.Move(1), true)
	require.NoError(t, err)

	maxPlain := maxDamageTo(plainBranches, core.SideTwo)
	maxReflect := maxDamageTo(reflectBranches, core.SideTwo)
	require.Positive(t, maxPlain)
	require.InDelta(t, float64(maxPlain)/2.0, float64(maxReflect), 1.0)
}

func maxDamageTo(branches []instruction.Branch, side core.SideRef) int {
	max := 0
	for _, b := range branches {
		for _, ins := range b.Instructions {
			if dmg, ok := ins.(instruction.Damage); ok && dmg.Side == side && dmg.Amount > max {
				max = dmg.Amount
			}
		}
	}
	return max
}

// TestSleepWakeBranchesSumToTotal is spec §8 scenario 7: an asleep
// monster choosing a move forks into exactly two branches (wake, stay
// asleep) whose weights sum to the parent's full weight.
func TestSleepWakeBranchesSumToTotal(t *testing.T) {
	eng := engine.New(catalog.Default())
	s := twoSidedState(catalog.NewRuleSet(), "tackle", "splash")
	s.Sides[0].Team[0].Status = catalog.StatusSleep
	s.Sides[0].Team[0].SleepTurns = 5

	branches, err := eng.GenerateInstructions(context.Background(), s, state.Move(0), state.Move(1), false)
	require.NoError(t, err)
	require.InDelta(t, 100.0, instruction.TotalWeight(branches), 1e-9)

	var sawWake, sawStay bool
	for _, b := range branches {
		for _, ins := range b.Instructions {
			switch v := ins.(type) {
			case instruction.ChangeStatus:
				if v.Old == catalog.StatusSleep && v.New == catalog.StatusNone {
					sawWake = true
				}
			case instruction.SetSleepTurns:
				if v.New == 6 {
					sawStay = true
				}
			}
		}
	}
	require.True(t, sawWake, "expected a wake-up branch")
	require.True(t, sawStay, "expected a stay-asleep branch")
}

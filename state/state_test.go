package state_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shardwake/battlesim/catalog"
	"github.com/shardwake/battlesim/core"
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

func TestCloneIsIndependent(t *testing.T) {
	s := twoSidedState()
	s.Sides[0].Volatiles[catalog.VolatileFlinch] = 1

	clone := s.Clone()
	clone.Sides[0].Volatiles[catalog.VolatileConfusion] = 3
	clone.Sides[0].Team[0].CurrentHP = 1

	require.False(t, s.Sides[0].HasVolatile(catalog.VolatileConfusion))
	require.Equal(t, 300, s.Sides[0].Team[0].CurrentHP)
}

func TestBattleOverWhenOneSideAllFainted(t *testing.T) {
	s := twoSidedState()
	s.Sides[0].Team[0].CurrentHP = 0

	winner, over := s.BattleOver()
	require.True(t, over)
	require.Equal(t, core.SideTwo, winner)
}

func TestBattleNotOverWithSurvivors(t *testing.T) {
	s := twoSidedState()
	_, over := s.BattleOver()
	require.False(t, over)
}

func TestValidateRejectsOutOfRangeHP(t *testing.T) {
	s := twoSidedState()
	s.Sides[0].Team[0].CurrentHP = 9999
	require.Error(t, s.Validate())
}

func TestValidateRejectsOutOfRangeBoost(t *testing.T) {
	s := twoSidedState()
	s.Sides[0].Boosts[catalog.StatAttack] = 7
	require.Error(t, s.Validate())
}

func TestBoostMultiplierTable(t *testing.T) {
	require.Equal(t, 1.0, state.BoostMultiplier(0))
	require.InDelta(t, 4.0, state.BoostMultiplier(6), 1e-9)
	require.InDelta(t, 1.0/4.0, state.BoostMultiplier(-6), 1e-9)
	require.Equal(t, state.BoostMultiplier(10), state.BoostMultiplier(6)) // saturates
}

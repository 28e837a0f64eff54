package hooks_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shardwake/battlesim/catalog"
	"github.com/shardwake/battlesim/core"
	"github.com/shardwake/battlesim/hooks"
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

func TestHexDoublesPowerOnStatusedTarget(t *testing.T) {
	r := hooks.NewRegistry()
	s := twoSidedState()
	s.Sides[1].Team[0].Status = catalog.StatusBurn

	moveData, err := catalog.Default().Move("hex")
	require.NoError(t, err)
	choice := state.NewChoiceFromMove(moveData)
	base := choice.BasePower

	c, err := r.BuildModifyChoiceChain("hex", "", "", "")
	require.NoError(t, err)

	cc := &hooks.ChoiceContext{State: s, Choice: choice, AttackerSide: core.SideOne, DefenderSide: core.SideTwo}
	_, err = c.Run(context.Background(), cc)
	require.NoError(t, err)
	require.Equal(t, base*2, choice.BasePower)
}

func TestCounterRepliesWithDoubleDamage(t *testing.T) {
	r := hooks.NewRegistry()
	s := twoSidedState()
	s.Sides[0].DamageDealt = state.DamageDealt{Amount: 48, Category: catalog.CategoryPhysical, MoveType: catalog.TypeNormal}

	moveData, err := catalog.Default().Move("counter")
	require.NoError(t, err)
	choice := state.NewChoiceFromMove(moveData)

	c, err := r.BuildModifyChoiceChain("counter", "", "", "")
	require.NoError(t, err)
	cc := &hooks.ChoiceContext{State: s, Choice: choice, AttackerSide: core.SideOne, DefenderSide: core.SideTwo}
	_, err = c.Run(context.Background(), cc)
	require.NoError(t, err)
	require.False(t, choice.Failed)
	require.Equal(t, 96, choice.FixedDamage)
}

func TestCounterFailsAgainstFlyingTypeHitInGen1(t *testing.T) {
	r := hooks.NewRegistry()
	s := twoSidedState()
	s.Rules = catalog.NewRuleSet(catalog.WithGen(1))
	s.Sides[0].DamageDealt = state.DamageDealt{Amount: 40, Category: catalog.CategoryPhysical, MoveType: catalog.TypeFlying}

	moveData, err := catalog.Default().Move("counter")
	require.NoError(t, err)
	choice := state.NewChoiceFromMove(moveData)

	c, err := r.BuildModifyChoiceChain("counter", "", "", "")
	require.NoError(t, err)
	cc := &hooks.ChoiceContext{State: s, Choice: choice, AttackerSide: core.SideOne, DefenderSide: core.SideTwo}
	_, err = c.Run(context.Background(), cc)
	require.NoError(t, err)
	require.True(t, choice.Failed)
}

func TestLevitateGrantsGroundImmunity(t *testing.T) {
	r := hooks.NewRegistry()
	s := twoSidedState()

	moveData, err := catalog.Default().Move("earthquake")
	if err != nil {
		// earthquake may not be in the reference roster; fall back to a
		// synthetic ground move for the assertion.
		moveData = catalog.MoveData{ID: "earthquake", Type: catalog.TypeGround, Category: catalog.CategoryPhysical, BasePower: 100, Accuracy: 100}
	}
	choice := state.NewChoiceFromMove(moveData)

	c, err := r.BuildModifyChoiceChain(moveData.ID, "", "levitate", "")
	require.NoError(t, err)
	cc := &hooks.ChoiceContext{State: s, Choice: choice, AttackerSide: core.SideOne, DefenderSide: core.SideTwo}
	_, err = c.Run(context.Background(), cc)
	require.NoError(t, err)
	require.True(t, choice.Failed)
}

func TestKnockOffRemovesItemAfterDamage(t *testing.T) {
	r := hooks.NewRegistry()
	s := twoSidedState()
	s.Sides[1].Team[0].Item = "leftovers"

	moveData, err := catalog.Default().Move("knockoff")
	require.NoError(t, err)
	choice := state.NewChoiceFromMove(moveData)

	ins, err := r.AfterDamage(context.Background(), s, core.SideOne, choice, "", "", 20, false)
	require.NoError(t, err)
	require.Len(t, ins, 1)
}

func TestRapidSpinClearsAttackerHazards(t *testing.T) {
	r := hooks.NewRegistry()
	s := twoSidedState()
	s.Sides[0].SideConditions[catalog.SideConditionStealthRock] = 1
	s.Sides[0].SideConditions[catalog.SideConditionSpikes] = 2

	ins, err := r.HazardClear(context.Background(), s, core.SideOne, "rapidspin")
	require.NoError(t, err)
	require.Len(t, ins, 2)
}

func TestSubstituteSpendsQuarterMaxHP(t *testing.T) {
	r := hooks.NewRegistry()
	s := twoSidedState()

	ins, err := r.MoveSpecialEffect(context.Background(), s, core.SideOne, "substitute")
	require.NoError(t, err)
	require.Len(t, ins, 2)
}

func TestLeftoversHealsOneSixteenth(t *testing.T) {
	r := hooks.NewRegistry()
	s := twoSidedState()
	s.Sides[0].Team[0].CurrentHP = 100

	ins, err := r.EndOfTurn(context.Background(), s, core.SideOne, 0, "", "leftovers")
	require.NoError(t, err)
	require.Len(t, ins, 1)
}

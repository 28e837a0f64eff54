package batch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shardwake/battlesim/batch"
	"github.com/shardwake/battlesim/catalog"
	"github.com/shardwake/battlesim/engine"
	"github.com/shardwake/battlesim/instruction"
	"github.com/shardwake/battlesim/state"
)

func splashOnlyState() *state.State {
	s := state.New(catalog.NewRuleSet())
	for _, ref := range []int{0, 1} {
		s.Sides[ref].NumSlots = 1
		s.Sides[ref].Team[0] = state.Monster{
			Species:   "magikarp",
			Level:     100,
			Stats:     state.Stats{HP: 300, Attack: 50, Defense: 50, SpecialAttack: 50, SpecialDefense: 50, Speed: 50},
			CurrentHP: 300,
			TypeOne:   catalog.TypeWater,
			Moves:     [4]state.MoveSlot{{ID: "splash", PP: 40, MaxPP: 40}},
		}
	}
	return s
}

func TestRunResolvesEveryRequestIndependently(t *testing.T) {
	eng := engine.New(catalog.Default())
	reqs := make([]batch.Request, 20)
	for i := range reqs {
		reqs[i] = batch.Request{
			State:     splashOnlyState(),
			ActionOne: state.Move(0),
			ActionTwo: state.Move(0),
		}
	}

	results := batch.Run(context.Background(), eng, reqs, 4)
	require.Len(t, results, len(reqs))
	for _, r := range results {
		require.NoError(t, r.Err)
		require.InDelta(t, 100.0, instruction.TotalWeight(r.Branches), 1e-5)
	}
}

func TestRunSurfacesPerRequestErrorsWithoutAbortingSiblings(t *testing.T) {
	eng := engine.New(catalog.Default())
	valid := splashOnlyState()
	invalid := splashOnlyState()

	reqs := []batch.Request{
		{State: invalid, ActionOne: state.Move(3), ActionTwo: state.Move(0)}, // empty move slot: illegal
		{State: valid, ActionOne: state.Move(0), ActionTwo: state.Move(0)},
	}

	results := batch.Run(context.Background(), eng, reqs, 0)
	require.Len(t, results, 2)
	require.Error(t, results[0].Err)
	require.NoError(t, results[1].Err)
}

func TestRunDoesNotMutateCallerStatesAcrossRequests(t *testing.T) {
	eng := engine.New(catalog.Default())
	s1, s2 := splashOnlyState(), splashOnlyState()
	reqs := []batch.Request{
		{State: s1, ActionOne: state.Move(0), ActionTwo: state.Move(0)},
		{State: s2, ActionOne: state.Move(0), ActionTwo: state.Move(0)},
	}

	batch.Run(context.Background(), eng, reqs, 0)

	require.Equal(t, 300, s1.Sides[0].Team[0].CurrentHP)
	require.Equal(t, 300, s2.Sides[0].Team[0].CurrentHP)
}

package chain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shardwake/battlesim/core/chain"
)

const (
	stageBase    chain.Stage = "base"
	stageFinal   chain.Stage = "final"
	stageUnknown chain.Stage = "unknown"
)

func TestStagedRunsInStageOrder(t *testing.T) {
	c := chain.NewStaged[int]([]chain.Stage{stageBase, stageFinal})

	require.NoError(t, c.Add(stageFinal, "double", func(_ context.Context, v int) (int, error) {
		return v * 2, nil
	}))
	require.NoError(t, c.Add(stageBase, "increment", func(_ context.Context, v int) (int, error) {
		return v + 1, nil
	}))

	got, err := c.Run(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, 12, got) // (5+1)*2, base before final regardless of registration order
}

func TestStagedRejectsDuplicateID(t *testing.T) {
	c := chain.NewStaged[int]([]chain.Stage{stageBase})
	require.NoError(t, c.Add(stageBase, "x", identity))
	require.Error(t, c.Add(stageBase, "x", identity))
}

func TestStagedRejectsUnknownStage(t *testing.T) {
	c := chain.NewStaged[int]([]chain.Stage{stageBase})
	require.Error(t, c.Add(stageUnknown, "x", identity))
}

func TestStagedRemove(t *testing.T) {
	c := chain.NewStaged[int]([]chain.Stage{stageBase})
	require.NoError(t, c.Add(stageBase, "x", func(_ context.Context, v int) (int, error) { return v + 100, nil }))
	require.NoError(t, c.Remove("x"))
	require.Error(t, c.Remove("x"))

	got, err := c.Run(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 1, got)
	require.Equal(t, 0, c.Len())
}

func identity(_ context.Context, v int) (int, error) { return v, nil }

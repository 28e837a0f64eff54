package bgerr_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shardwake/battlesim/bgerr"
)

func TestInvalidActionCarriesLegalActions(t *testing.T) {
	err := bgerr.InvalidAction("move:5", []string{"move:0", "switch:1"})
	require.Equal(t, bgerr.CodeInvalidAction, err.Code)
	require.Equal(t, []string{"move:0", "switch:1"}, err.Meta["legal_actions"])
}

func TestWrapPreservesCodeWhenNotOverridden(t *testing.T) {
	base := bgerr.UnknownIdentifier("move", "hyperbeamz")
	wrapped := bgerr.Wrap(base, "", "while resolving choice")
	require.Equal(t, bgerr.CodeUnknownIdentifier, wrapped.Code)
	require.True(t, errors.Is(wrapped, wrapped))
	require.ErrorIs(t, wrapped.Unwrap(), base)
}

func TestWithMetadataMergesAndDoesNotOverwriteExplicit(t *testing.T) {
	ctx := bgerr.WithMetadata(context.Background(), map[string]any{"battle_id": "b1", "side": "side_one"})
	err := bgerr.NewCtx(ctx, bgerr.CodeInvalidState, "bad hp", bgerr.WithMeta("side", "side_two"))
	require.Equal(t, "side_two", err.Meta["side"])
	require.Equal(t, "b1", err.Meta["battle_id"])
}

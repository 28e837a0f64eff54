package enginelog_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/shardwake/battlesim/bgerr"
	"github.com/shardwake/battlesim/enginelog"
)

func TestReportBugLogsCodeAndMeta(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	r := enginelog.New(zap.New(core))

	err := bgerr.EngineBug("branch probabilities sum to 99.4", bgerr.WithMeta("battle_id", "b1"))
	got := r.ReportBug(err)

	require.Same(t, err, got)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, "branch probabilities sum to 99.4", entry.Message)
	require.Equal(t, "b1", entry.ContextMap()["battle_id"])
	require.Equal(t, string(bgerr.CodeEngineBug), entry.ContextMap()["code"])
}

func TestNopDiscardsSilently(t *testing.T) {
	r := enginelog.Nop()
	require.NotPanics(t, func() {
		r.ReportBug(bgerr.EngineBug("unreachable"))
	})
}

// Package enginelog is the engine's one ambient logging touchpoint. Turn
// resolution is pure and silent; the only thing worth structured-logging is
// an EngineBug, an internal assertion the spec says should "never" fire in
// production. When one does, we want it on disk with full context, not just
// returned to a caller who might swallow the error.
package enginelog

import (
	"go.uber.org/zap"

	"github.com/shardwake/battlesim/bgerr"
)

// Reporter logs EngineBug occurrences. The zero value is not valid; use New
// or Nop.
type Reporter struct {
	logger *zap.Logger
}

// New wraps an existing zap logger.
func New(logger *zap.Logger) *Reporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reporter{logger: logger}
}

// Nop returns a Reporter that discards everything, the default for engine
// calls that don't opt into logging.
func Nop() *Reporter {
	return &Reporter{logger: zap.NewNop()}
}

// ReportBug logs err (which must carry bgerr.CodeEngineBug) at Error level
// with its metadata flattened into structured fields, and returns it
// unchanged so call sites can `return r.ReportBug(err)`.
func (r *Reporter) ReportBug(err *bgerr.Error) *bgerr.Error {
	if err == nil {
		return nil
	}
	fields := make([]zap.Field, 0, len(err.Meta)+1)
	fields = append(fields, zap.String("code", string(err.Code)))
	for k, v := range err.Meta {
		fields = append(fields, zap.Any(k, v))
	}
	r.logger.Error(err.Message, fields...)
	return err
}

// Package batch runs independent turn resolutions concurrently (spec §5:
// "callers may parallelize over independent State clones; this crate
// guarantees no process-wide state"). It is grounded on
// theRebelliousNerd-codenerd's perception.SemanticClassifier, which fans
// out independent lookups with errgroup; unlike that classifier it uses a
// plain errgroup.Group and never cancels sibling requests, since one
// request's State clone is fully isolated from every other's.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/shardwake/battlesim/engine"
	"github.com/shardwake/battlesim/instruction"
	"github.com/shardwake/battlesim/state"
)

// Request is one independent turn to resolve: its own State (never shared
// or mutated by any other Request in the same Run call — the engine clones
// it again internally, but callers must not pass the same *State pointer
// into two Requests run concurrently) and the pair of actions chosen for
// it.
type Request struct {
	State                *state.State
	ActionOne, ActionTwo state.Action
	BranchOnDamageRolls  bool
}

// Result is one Request's outcome: either a resolved branch set or the
// error GenerateInstructions returned for it.
type Result struct {
	Branches []instruction.Branch
	Err      error
}

// Run resolves every request in reqs concurrently against a shared Engine
// (safe for concurrent use — its catalog and hook registry are read-only
// after construction) and returns one Result per request, in the same
// order. concurrency caps how many requests run at once; a value <= 0
// means unbounded (bounded only by GOMAXPROCS scheduling).
//
// Unlike a typical errgroup.WithContext fan-out, one request's
// InvalidAction or InvalidState error does not cancel its siblings —
// batch simulation is commonly used to sweep many candidate action pairs
// at once, where some are expected to be illegal for a given state and
// the caller wants every result, not a first-error abort. Results are
// collected through a plain errgroup (no derived context) for exactly
// this reason.
func Run(ctx context.Context, eng *engine.Engine, reqs []Request, concurrency int) []Result {
	results := make([]Result, len(reqs))

	g := new(errgroup.Group)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			branches, err := eng.GenerateInstructions(ctx, req.State, req.ActionOne, req.ActionTwo, req.BranchOnDamageRolls)
			results[i] = Result{Branches: branches, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

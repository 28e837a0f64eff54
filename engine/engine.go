// Package engine is the turn-resolution engine's public surface (spec
// §6.2–6.3): GenerateInstructions, ApplyInstructions, ReverseInstructions,
// and LegalActions. It is a thin façade over resolver and instruction —
// callers outside this module never construct a resolveCtx or a
// workingBranch directly, mirroring how the teacher's combat package
// exposes a narrow Resolver API over its internal attack/damage machinery.
package engine

import (
	"context"

	"github.com/shardwake/battlesim/catalog"
	"github.com/shardwake/battlesim/hooks"
	"github.com/shardwake/battlesim/instruction"
	"github.com/shardwake/battlesim/resolver"
	"github.com/shardwake/battlesim/state"
)

// Engine bundles the read-only catalog and hook registry every call needs.
// Both are safe to share across goroutines (spec §5), so one Engine value
// can serve concurrent callers — including batch.Run's goroutine pool.
type Engine struct {
	provider catalog.Provider
	hooks    *hooks.Registry
}

// New builds an Engine from a catalog provider and a freshly built hook
// registry (safe to share across concurrent calls — see hooks.NewRegistry).
func New(provider catalog.Provider) *Engine {
	return &Engine{provider: provider, hooks: hooks.NewRegistry()}
}

// GenerateInstructions resolves one turn (spec §6.3): given a state and one
// action per side, returns every probability-weighted branch that can
// result. branchOnDamageRolls selects fine-grained (16-way) versus coarse
// (min/max, two-way) damage-roll bucketing (spec §9's honesty contract —
// both still sum to 100).
func (e *Engine) GenerateInstructions(ctx context.Context, s *state.State, a1, a2 state.Action, branchOnDamageRolls bool) ([]instruction.Branch, error) {
	outcomes, err := resolver.GenerateInstructions(ctx, e.provider, e.hooks, s, a1, a2, branchOnDamageRolls)
	if err != nil {
		return nil, err
	}
	branches := make([]instruction.Branch, len(outcomes))
	for i, o := range outcomes {
		branches[i] = o.ToBranch()
	}
	return branches, nil
}

// GenerateOutcomes is GenerateInstructions' uncollapsed form, preserving
// each branch's forced-switch annotation (spec §4.6) for callers that need
// to resolve a mid-turn switch choice before continuing.
func (e *Engine) GenerateOutcomes(ctx context.Context, s *state.State, a1, a2 state.Action, branchOnDamageRolls bool) ([]resolver.Outcome, error) {
	return resolver.GenerateInstructions(ctx, e.provider, e.hooks, s, a1, a2, branchOnDamageRolls)
}

// LegalActions reports the actions available to each side (spec §6.2). It
// depends only on state, not on the Engine's catalog or hooks, so it is
// also exposed as a package-level function for callers that haven't built
// an Engine yet (e.g. validating a freshly-parsed state).
func (e *Engine) LegalActions(s *state.State) (sideOne, sideTwo []state.Action) {
	return resolver.LegalActions(s)
}

// LegalActions is the package-level form of (*Engine).LegalActions.
func LegalActions(s *state.State) (sideOne, sideTwo []state.Action) {
	return resolver.LegalActions(s)
}

// ApplyInstructions mutates s in place by applying list in emission order
// (spec §6.3). Paired with ReverseInstructions for search algorithms that
// push a branch, recurse, then pop it without cloning state.
func ApplyInstructions(s *state.State, list []instruction.Instruction) {
	instruction.Apply(s, list)
}

// ReverseInstructions mutates s in place by undoing list in reverse
// emission order, restoring the state ApplyInstructions produced it from.
func ReverseInstructions(s *state.State, list []instruction.Instruction) {
	instruction.Reverse(s, list)
}

// Package resolver implements the turn-resolution algorithm spec §4.3–4.7
// describes: given a state and one action per side, produce the full,
// probability-weighted set of branches that can result. It is grounded on
// the teacher's rulebooks/dnd5e/combat package — ResolveAttack's
// step-numbered pipeline (attack.go) for the single-move sequence, and
// TurnManager's guard-flagged lifecycle (turn_manager.go) for the
// once-per-turn orchestration — generalized from a single deterministic
// outcome to a set of weighted ones, since this engine never rolls dice: it
// forks a branch per possible roll outcome instead (spec §9).
package resolver

import (
	"context"

	"github.com/shardwake/battlesim/bgerr"
	"github.com/shardwake/battlesim/catalog"
	"github.com/shardwake/battlesim/core"
	"github.com/shardwake/battlesim/hooks"
	"github.com/shardwake/battlesim/instruction"
	"github.com/shardwake/battlesim/state"
)

// Outcome is one probability-weighted result of resolving a turn. It widens
// instruction.Branch with the forced-switch terminal spec §4.6 requires
// ("the engine pauses mid-turn and returns a branch tagged
// RequiresSwitchIn(side)") without touching the already-closed Branch type
// itself — most callers only need Branch, reached via ToBranch.
type Outcome struct {
	Weight       float64
	Instructions []instruction.Instruction

	// RequiresSwitch is set when this branch ends with a fainted monster
	// on RequiresSwitch's side that still has a living reserve: the
	// resolver stops here rather than guessing a replacement, and the
	// caller must resolve that side's switch choice before resolution
	// can continue.
	RequiresSwitch bool
	SwitchSide     core.SideRef
}

// ToBranch discards the forced-switch annotation, for callers that only
// care about the instruction list and its weight.
func (o Outcome) ToBranch() instruction.Branch {
	return instruction.Branch{Weight: o.Weight, Instructions: o.Instructions}
}

// resolveCtx bundles the read-only collaborators every phase of a turn
// needs: the static catalog and the hook registry built from it.
type resolveCtx struct {
	provider            catalog.Provider
	hooks               *hooks.Registry
	branchOnDamageRolls bool
}

// workingBranch is one in-progress line of resolution: the probability mass
// it carries, the instructions emitted so far, and the state those
// instructions produce. stopped means the current mover's pipeline run has
// nothing left to do (a status gate blocked the move); terminal means the
// whole turn is done early, either because the battle ended or because a
// forced switch is pending.
type workingBranch struct {
	weight float64
	instrs []instruction.Instruction
	state  *state.State

	stopped  bool
	terminal bool

	pendingSwitch bool
	switchSide    core.SideRef

	hitSubstitute bool

	// crit, roll, and hits are transient scratch carried only within a
	// single mover's damage-resolution chain (critGate through
	// damageApplyGate); each mover's pipeline sets them fresh and nothing
	// outside that chain reads them.
	crit bool
	roll float64
	hits int
}

// fork builds one child of wb carrying newInstrs on top of wb's own. When
// newInstrs is empty the child shares wb's state pointer — safe because a
// state pointer is only ever mutated immediately after being freshly
// cloned, never after being shared.
func fork(wb workingBranch, weight float64, newInstrs []instruction.Instruction) workingBranch {
	st := wb.state
	if len(newInstrs) > 0 {
		st = wb.state.Clone()
		instruction.Apply(st, newInstrs)
	}
	instrs := make([]instruction.Instruction, 0, len(wb.instrs)+len(newInstrs))
	instrs = append(instrs, wb.instrs...)
	instrs = append(instrs, newInstrs...)
	return workingBranch{
		weight:        weight,
		instrs:        instrs,
		state:         st,
		stopped:       wb.stopped,
		hitSubstitute: wb.hitSubstitute,
	}
}

// expand runs phase over every branch in wbs that isn't already stopped or
// terminal, renormalizing each phase's returned weights (which sum to 100
// on their own scale) against the parent branch's weight.
func expand(wbs []workingBranch, phase func(workingBranch) ([]workingBranch, error)) ([]workingBranch, error) {
	var out []workingBranch
	for _, wb := range wbs {
		if wb.stopped || wb.terminal {
			out = append(out, wb)
			continue
		}
		children, err := phase(wb)
		if err != nil {
			return nil, err
		}
		for _, c := range children {
			c.weight = wb.weight * c.weight / 100
			out = append(out, c)
		}
	}
	return out, nil
}

// moverPlan pairs a side with the Choice it is about to execute. choice is
// nil for a Pass action (the must-recharge turn).
type moverPlan struct {
	side   core.SideRef
	choice *state.Choice
}

// GenerateInstructions resolves one full turn: both sides' chosen actions,
// in the order spec §4.3 describes, producing every branch that can result
// (spec §6.3). Both actions must be present in LegalActions(state) for
// their side.
func GenerateInstructions(ctx context.Context, provider catalog.Provider, registry *hooks.Registry, s *state.State, a1, a2 state.Action, branchOnDamageRolls bool) ([]Outcome, error) {
	legalOne, legalTwo := LegalActions(s)
	if !containsAction(legalOne, a1) {
		return nil, bgerr.InvalidAction(actionString(a1), actionStrings(legalOne))
	}
	if !containsAction(legalTwo, a2) {
		return nil, bgerr.InvalidAction(actionString(a2), actionStrings(legalTwo))
	}

	rc := &resolveCtx{provider: provider, hooks: registry, branchOnDamageRolls: branchOnDamageRolls}
	root := workingBranch{weight: 100, state: s.Clone()}

	branches, err := rc.resolveMainPhase(ctx, root, a1, a2)
	if err != nil {
		return nil, err
	}

	// A mover's early stop ends only that mover's run; end-of-turn still
	// applies to the branch.
	for i := range branches {
		branches[i].stopped = false
	}
	branches, err = expand(branches, func(wb workingBranch) ([]workingBranch, error) {
		return rc.endOfTurn(ctx, wb)
	})
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, 0, len(branches))
	for _, wb := range branches {
		outcomes = append(outcomes, Outcome{
			Weight:         wb.weight,
			Instructions:   wb.instrs,
			RequiresSwitch: wb.pendingSwitch,
			SwitchSide:     wb.switchSide,
		})
	}
	return outcomes, nil
}

// resolveMainPhase dispatches to the switch-phase or move-phase pipeline
// depending on what each side chose, per spec §4.3 step 1's ordering rule:
// switches always resolve before moves, side one's switch breaking a tie
// against side two's switch.
func (rc *resolveCtx) resolveMainPhase(ctx context.Context, root workingBranch, a1, a2 state.Action) ([]workingBranch, error) {
	switch {
	case a1.Kind == state.ActionSwitch && a2.Kind == state.ActionSwitch:
		return rc.bothSwitch(root, a1, a2)
	case a1.Kind == state.ActionSwitch:
		return rc.switchThenMove(ctx, root, core.SideOne, a1, core.SideTwo, a2)
	case a2.Kind == state.ActionSwitch:
		return rc.switchThenMove(ctx, root, core.SideTwo, a2, core.SideOne, a1)
	default:
		return rc.bothMove(ctx, root, a1, a2)
	}
}

// switchThenMove resolves the side that switched immediately, then runs
// the other side's move against the freshly-switched-in board.
func (rc *resolveCtx) switchThenMove(ctx context.Context, root workingBranch, switchSide core.SideRef, switchAction state.Action, moveSide core.SideRef, moveAction state.Action) ([]workingBranch, error) {
	wb, err := rc.performSwitch(root, switchSide, switchAction.Slot)
	if err != nil {
		return nil, err
	}
	choice, extra, err := rc.buildChoice(ctx, wb.state, moveSide, moveAction)
	if err != nil {
		return nil, err
	}
	wb = applyExtras(wb, extra)
	branches, err := rc.executeMove(ctx, wb, moverPlan{side: moveSide, choice: choice})
	if err != nil {
		return nil, err
	}
	return markTerminal(branches), nil
}

// markTerminal flags every branch whose state shows the turn can't continue
// normally: the battle is already decided, or a side's active monster just
// fainted and still has a living reserve to bring in (spec §4.6) — that
// side one first if both qualify simultaneously, a fixed tiebreak for an
// edge case no move in the default roster can actually trigger on both
// sides in the same pipeline run.
func markTerminal(wbs []workingBranch) []workingBranch {
	for i := range wbs {
		s := wbs[i].state
		if _, over := s.BattleOver(); over {
			wbs[i].terminal = true
			continue
		}
		if ref, ok := detectForcedSwitch(s); ok {
			wbs[i].pendingSwitch = true
			wbs[i].switchSide = ref
			wbs[i].terminal = true
		}
	}
	return wbs
}

// detectForcedSwitch reports the side (if any) whose active monster just
// fainted while its team still has a living reserve — the RequiresSwitch
// terminal spec §4.6 describes.
func detectForcedSwitch(s *state.State) (core.SideRef, bool) {
	for _, ref := range []core.SideRef{core.SideOne, core.SideTwo} {
		side := s.Side(ref)
		if side.Active().Fainted() && !side.AllFainted() {
			return ref, true
		}
	}
	return 0, false
}

func applyExtras(wb workingBranch, extra []instruction.Instruction) workingBranch {
	if len(extra) == 0 {
		return wb
	}
	return fork(wb, wb.weight, extra)
}

// Package hooks dispatches the four typed hook shapes spec §4.2 describes
// (modify_choice, after_damage, hazard_clear, move_special_effect) over a
// move/ability/item id, the way the teacher's core/chain package dispatches
// named stages over a value: a fresh core/chain.Staged[*ChoiceContext] is
// built per resolver call from whichever ids are actually in play this
// turn (the move, both abilities, the attacker's item), since the set of
// registered handlers differs battle to battle, unlike the teacher's
// longer-lived combat chains.
package hooks

import (
	"context"
	"fmt"

	"github.com/shardwake/battlesim/catalog"
	"github.com/shardwake/battlesim/core"
	"github.com/shardwake/battlesim/core/chain"
	"github.com/shardwake/battlesim/instruction"
	"github.com/shardwake/battlesim/state"
)

// The five documented timing points a modify_choice hook can occupy (spec
// §4.3 step 2: "own ability, opponent ability, held item, field effects",
// plus the move's own hook first).
const (
	StageMove            chain.Stage = "move"
	StageAttackerAbility chain.Stage = "attacker_ability"
	StageDefenderAbility chain.Stage = "defender_ability"
	StageAttackerItem    chain.Stage = "attacker_item"
	StageField           chain.Stage = "field"
)

// ChoiceStages is the fixed stage order every modify_choice chain runs.
var ChoiceStages = []chain.Stage{StageMove, StageAttackerAbility, StageDefenderAbility, StageAttackerItem, StageField}

// ChoiceContext is the value threaded through a modify_choice chain: the
// Choice being built plus enough battle context for a hook to read
// (attacker/defender monsters, side refs, the provider for further
// lookups) and, where an effect is a side effect rather than a pure
// field edit (Volt Absorb's heal-on-absorb), a place to stash additional
// instructions the resolver should splice in ahead of the move's own.
type ChoiceContext struct {
	State        *state.State
	Choice       *state.Choice
	AttackerSide core.SideRef
	DefenderSide core.SideRef
	Provider     catalog.Provider
	Extra        []instruction.Instruction
}

// ModifyChoiceFunc adjusts a ChoiceContext before damage calc.
type ModifyChoiceFunc func(ctx context.Context, cc *ChoiceContext) (*ChoiceContext, error)

// AfterDamageFunc fires once a damaging hit connects, returning any
// instructions the effect produces (Knock Off's item removal, Life Orb's
// recoil).
type AfterDamageFunc func(ctx context.Context, s *state.State, attackerSide core.SideRef, choice *state.Choice, damageDealt int, hitSubstitute bool) ([]instruction.Instruction, error)

// HazardClearFunc implements Rapid Spin/Defog-style hazard removal from the
// attacker's own side.
type HazardClearFunc func(ctx context.Context, s *state.State, attackerSide core.SideRef) ([]instruction.Instruction, error)

// MoveSpecialEffectFunc implements non-damaging self-transformations
// (Substitute, Belly Drum) that don't fit the secondary-effect shape.
type MoveSpecialEffectFunc func(ctx context.Context, s *state.State, attackerSide core.SideRef) ([]instruction.Instruction, error)

// EndOfTurnFunc implements an ability's or item's end-of-turn passive
// (Leftovers, Black Sludge, Speed Boost), keyed by id and invoked once per
// surviving, non-fainted monster that carries it.
type EndOfTurnFunc func(ctx context.Context, s *state.State, side core.SideRef, slot int) ([]instruction.Instruction, error)

// Registry holds every concrete hook this engine ships, keyed by the id
// that activates it (a move id for move hooks, an ability or item id for
// the rest). A Registry is built once and is safe for concurrent reads —
// it is never mutated after NewRegistry returns.
type Registry struct {
	moveModify        map[string]ModifyChoiceFunc
	abilityModify     map[string]ModifyChoiceFunc
	itemModify        map[string]ModifyChoiceFunc
	afterDamage       map[string]AfterDamageFunc
	hazardClear       map[string]HazardClearFunc
	moveSpecialEffect map[string]MoveSpecialEffectFunc
	endOfTurn         map[string]EndOfTurnFunc
}

// NewRegistry builds the registry wired with every hook this package
// implements (see hooks_moves.go, hooks_abilities.go, hooks_items.go).
func NewRegistry() *Registry {
	r := &Registry{
		moveModify:        make(map[string]ModifyChoiceFunc),
		abilityModify:     make(map[string]ModifyChoiceFunc),
		itemModify:        make(map[string]ModifyChoiceFunc),
		afterDamage:       make(map[string]AfterDamageFunc),
		hazardClear:       make(map[string]HazardClearFunc),
		moveSpecialEffect: make(map[string]MoveSpecialEffectFunc),
		endOfTurn:         make(map[string]EndOfTurnFunc),
	}
	registerMoveHooks(r)
	registerAbilityHooks(r)
	registerItemHooks(r)
	return r
}

// BuildModifyChoiceChain assembles a fresh chain for one move's pipeline
// run, registering only the hooks relevant to the ids actually in play
// this turn. Missing ids simply register nothing at their stage — most
// moves/abilities/items have no modify_choice hook at all.
func (r *Registry) BuildModifyChoiceChain(moveID, attackerAbility, defenderAbility, attackerItem string) (*chain.Staged[*ChoiceContext], error) {
	c := chain.NewStaged[*ChoiceContext](ChoiceStages)
	if fn, ok := r.moveModify[moveID]; ok {
		if err := c.Add(StageMove, "move:"+moveID, wrapModify(fn)); err != nil {
			return nil, err
		}
	}
	if fn, ok := r.abilityModify[attackerAbility]; ok {
		if err := c.Add(StageAttackerAbility, "attacker_ability:"+attackerAbility, wrapModify(fn)); err != nil {
			return nil, err
		}
	}
	if fn, ok := r.abilityModify[defenderAbility]; ok {
		if err := c.Add(StageDefenderAbility, "defender_ability:"+defenderAbility, wrapModify(fn)); err != nil {
			return nil, err
		}
	}
	if fn, ok := r.itemModify[attackerItem]; ok {
		if err := c.Add(StageAttackerItem, "attacker_item:"+attackerItem, wrapModify(fn)); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func wrapModify(fn ModifyChoiceFunc) func(context.Context, *ChoiceContext) (*ChoiceContext, error) {
	return func(ctx context.Context, cc *ChoiceContext) (*ChoiceContext, error) {
		if cc.Choice.Failed {
			return cc, nil
		}
		return fn(ctx, cc)
	}
}

// AfterDamage runs the move's, the attacker's item's, and the defender's
// item's after-damage hooks in that order, collecting every instruction
// they produce.
func (r *Registry) AfterDamage(ctx context.Context, s *state.State, attackerSide core.SideRef, choice *state.Choice, attackerItem, defenderItem string, damageDealt int, hitSubstitute bool) ([]instruction.Instruction, error) {
	var out []instruction.Instruction
	if fn, ok := r.afterDamage[choice.MoveID]; ok {
		ins, err := fn(ctx, s, attackerSide, choice, damageDealt, hitSubstitute)
		if err != nil {
			return nil, fmt.Errorf("hooks: move %s after_damage: %w", choice.MoveID, err)
		}
		out = append(out, ins...)
	}
	if fn, ok := r.afterDamage[attackerItem]; ok {
		ins, err := fn(ctx, s, attackerSide, choice, damageDealt, hitSubstitute)
		if err != nil {
			return nil, fmt.Errorf("hooks: item %s after_damage: %w", attackerItem, err)
		}
		out = append(out, ins...)
	}
	if fn, ok := r.afterDamage[defenderItem]; ok {
		ins, err := fn(ctx, s, attackerSide.Opponent(), choice, damageDealt, hitSubstitute)
		if err != nil {
			return nil, fmt.Errorf("hooks: defender item %s after_damage: %w", defenderItem, err)
		}
		out = append(out, ins...)
	}
	return out, nil
}

// HazardClear runs a move's hazard_clear hook, if registered.
func (r *Registry) HazardClear(ctx context.Context, s *state.State, attackerSide core.SideRef, moveID string) ([]instruction.Instruction, error) {
	fn, ok := r.hazardClear[moveID]
	if !ok {
		return nil, nil
	}
	return fn(ctx, s, attackerSide)
}

// MoveSpecialEffect runs a move's move_special_effect hook, if registered.
func (r *Registry) MoveSpecialEffect(ctx context.Context, s *state.State, attackerSide core.SideRef, moveID string) ([]instruction.Instruction, error) {
	fn, ok := r.moveSpecialEffect[moveID]
	if !ok {
		return nil, nil
	}
	return fn(ctx, s, attackerSide)
}

// EndOfTurn runs slot's ability and item end-of-turn hooks, if registered,
// in ability-then-item order.
func (r *Registry) EndOfTurn(ctx context.Context, s *state.State, side core.SideRef, slot int, ability, item string) ([]instruction.Instruction, error) {
	var out []instruction.Instruction
	if fn, ok := r.endOfTurn[ability]; ok {
		ins, err := fn(ctx, s, side, slot)
		if err != nil {
			return nil, err
		}
		out = append(out, ins...)
	}
	if fn, ok := r.endOfTurn[item]; ok {
		ins, err := fn(ctx, s, side, slot)
		if err != nil {
			return nil, err
		}
		out = append(out, ins...)
	}
	return out, nil
}

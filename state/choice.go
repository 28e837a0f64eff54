package state

import "github.com/shardwake/battlesim/catalog"

// Choice is the immutable-once-built, per-turn descriptor spec §3.1
// describes: a copy of a move's static data plus whatever modify_choice
// hooks adjusted before damage calc. Choices are ephemeral — owned by the
// turn currently resolving them, never persisted in State.
type Choice struct {
	MoveID     string
	Type       catalog.Type
	Category   catalog.Category
	BasePower  int
	Accuracy   int
	BypassAcc  bool
	Priority   int
	Target     catalog.Target
	Flags      catalog.MoveFlags
	CritRatio  catalog.CritRatio

	AppliesStatus   catalog.StatusCondition
	AppliesVolatile catalog.VolatileTag
	AppliesBoost    []catalog.BoostSpec
	BoostTarget     catalog.Target

	HealFraction   float64
	DrainFraction  float64
	RecoilFraction float64
	CrashFraction  float64

	SideCondition catalog.SideConditionTag
	HasSideEffect bool

	Secondaries []catalog.SecondaryEffect
	MultiHit    *catalog.HitCountDistribution

	HasModifyChoice      bool
	HasAfterDamage       bool
	HasHazardClear       bool
	HasMoveSpecialEffect bool

	// Failed marks a choice a modify_choice hook determined cannot
	// execute at all (e.g. Counter with no stored damage to reply to).
	// The pipeline short-circuits to an empty-instruction branch.
	Failed bool

	// FixedDamage, when non-zero, overrides the base-power damage formula
	// entirely (Counter/Mirror Coat/Metal Burst deal a multiple of
	// damage the attacker previously received, not a base-power-derived
	// amount).
	FixedDamage int
}

// NewChoiceFromMove copies a catalog move's static data into a fresh,
// mutable Choice for one turn's pipeline to adjust.
func NewChoiceFromMove(m catalog.MoveData) *Choice {
	return &Choice{
		MoveID:               m.ID,
		Type:                 m.Type,
		Category:             m.Category,
		BasePower:            m.BasePower,
		Accuracy:             m.Accuracy,
		BypassAcc:            m.BypassAcc,
		Priority:             m.Priority,
		Target:               m.DefaultTgt,
		Flags:                m.Flags,
		CritRatio:            m.CritRatio,
		AppliesStatus:        m.AppliesStatus,
		AppliesVolatile:      m.AppliesVolatile,
		AppliesBoost:         m.AppliesBoost,
		BoostTarget:          m.BoostTarget,
		HealFraction:         m.HealFraction,
		DrainFraction:        m.DrainFraction,
		RecoilFraction:       m.RecoilFraction,
		CrashFraction:        m.CrashFraction,
		SideCondition:        m.SideCondition,
		HasSideEffect:        m.HasSideEffect,
		Secondaries:          m.Secondaries,
		MultiHit:             m.MultiHit,
		HasModifyChoice:      m.HasModifyChoice,
		HasAfterDamage:       m.HasAfterDamage,
		HasHazardClear:       m.HasHazardClear,
		HasMoveSpecialEffect: m.HasMoveSpecialEffect,
	}
}

// Action is the closed set of things a side can choose to do this turn
// (spec §6.2): move a slot, switch to a slot, or pass.
type Action struct {
	Kind ActionKind
	Slot int // move slot (0..3) or team slot (0..5), depending on Kind
}

// ActionKind closes the Action variant set.
type ActionKind uint8

// Action kinds.
const (
	ActionNone ActionKind = iota
	ActionMove
	ActionSwitch
)

// Move builds a Move action for the given move slot.
func Move(slot int) Action { return Action{Kind: ActionMove, Slot: slot} }

// Switch builds a Switch action for the given team slot.
func Switch(slot int) Action { return Action{Kind: ActionSwitch, Slot: slot} }

// Pass builds the None action used for must-recharge / forced pass.
func Pass() Action { return Action{Kind: ActionNone} }

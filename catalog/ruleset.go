package catalog

// RuleSet carries the generation-specific rule flags spec §6.5 describes:
// these change only which rule applies, never the instruction algebra
// itself. RuleSets are plain values, not global mutable state — a search
// client can hold several side by side (e.g. to compare gen7 vs gen9 play)
// without re-initializing anything, unlike the process-wide static tables
// in Provider.
type RuleSet struct {
	Gen int

	// FreezeClause disallows more than one monster per side being frozen
	// at once (the resolver enforces this; RuleSet just flags it on).
	FreezeClause bool

	// SleepClause disallows more than one monster per side being put to
	// sleep by the opponent at once.
	SleepClause bool

	// CombinedSpecial merges special attack/defense into one stat, as in
	// generations 1–2. When true, StatSpecialDefense mirrors
	// StatSpecialAttack for boost purposes.
	CombinedSpecial bool

	// ParalysisSpeedFactor is the speed multiplier applied to a paralyzed
	// monster: 0.25 pre-gen-7, 0.5 gen-7 onward.
	ParalysisSpeedFactor float64

	// CritMultiplier is the damage multiplier on a critical hit: 2.0 pre
	// gen-6, 1.5 gen-6 onward.
	CritMultiplier float64

	// PartialTrapFraction is the end-of-turn chip damage fraction of max
	// HP dealt by partial-trapping moves (wrap, bind, ...): 1/8 in some
	// generations, 1/16 in others.
	PartialTrapFraction float64

	// ConsecutiveProtectDecay is the multiplier applied to protect's
	// success chance for each consecutive use beyond the first. Source
	// material disallows a second successive protect outright in some
	// generations (decay = 0) and uses a 1/3 chain in later ones (see
	// Open Question in spec §9; ties implementers to pick per generation
	// and record the choice — recorded in DESIGN.md).
	ConsecutiveProtectDecay float64
}

// Option configures a RuleSet at construction.
type Option func(*RuleSet)

// WithGen sets the generation number, which also seeds generation-typical
// defaults for every other flag (callers can still override with a later
// option in the same NewRuleSet call).
func WithGen(gen int) Option {
	return func(rs *RuleSet) {
		rs.Gen = gen
		switch {
		case gen <= 2:
			rs.CombinedSpecial = true
			rs.ParalysisSpeedFactor = 0.25
			rs.CritMultiplier = 2.0
			rs.PartialTrapFraction = 1.0 / 16.0
			rs.ConsecutiveProtectDecay = 0
		case gen <= 5:
			rs.ParalysisSpeedFactor = 0.25
			rs.CritMultiplier = 2.0
			rs.PartialTrapFraction = 1.0 / 16.0
			rs.ConsecutiveProtectDecay = 1.0 / 3.0
		case gen == 6:
			rs.ParalysisSpeedFactor = 0.25
			rs.CritMultiplier = 1.5
			rs.PartialTrapFraction = 1.0 / 8.0
			rs.ConsecutiveProtectDecay = 1.0 / 3.0
		default:
			rs.ParalysisSpeedFactor = 0.5
			rs.CritMultiplier = 1.5
			rs.PartialTrapFraction = 1.0 / 8.0
			rs.ConsecutiveProtectDecay = 1.0 / 3.0
		}
	}
}

// WithFreezeClause enables freeze clause.
func WithFreezeClause() Option { return func(rs *RuleSet) { rs.FreezeClause = true } }

// WithSleepClause enables sleep clause.
func WithSleepClause() Option { return func(rs *RuleSet) { rs.SleepClause = true } }

// NewRuleSet builds a RuleSet, defaulting to the latest-generation shape
// before applying options in order.
func NewRuleSet(opts ...Option) RuleSet {
	rs := RuleSet{}
	WithGen(9)(&rs)
	for _, opt := range opts {
		opt(&rs)
	}
	return rs
}

package catalog

// SecondaryEffect describes one independently-rolled side effect of a move
// (spec §3.1): each is branched on its own Chance during pipeline step 6.
type SecondaryEffect struct {
	// Chance is a percentage in (0,100]. 100 means "always happens,"
	// modeled as its own branch for symmetry with the probabilistic ones.
	Chance float64
	Target Target
	Effect SecondaryEffectKind
	// Param carries the effect-specific payload: for StatusEffect it's a
	// StatusCondition, for VolatileEffect a VolatileTag, for BoostEffect a
	// BoostSpec.
	Param any
}

// SecondaryEffectKind closes the set of things a secondary effect can do.
type SecondaryEffectKind uint8

// Secondary effect kinds.
const (
	SecondaryStatus SecondaryEffectKind = iota
	SecondaryVolatile
	SecondaryBoost
	SecondaryFlinch
)

// BoostSpec pairs a stat with the stage delta a boost-kind secondary
// effect applies.
type BoostSpec struct {
	Stat  StatName
	Delta int
}

// HitCountDistribution is a discrete probability distribution over how many
// times a multi-hit move strikes (spec §4.4 step 7). Weights need not be
// normalized to 100; callers normalize against their sum.
type HitCountDistribution struct {
	Hits    []int
	Weights []float64
}

// TwoToFiveHits is the standard 2–5 hit distribution (35/35/15/15).
var TwoToFiveHits = HitCountDistribution{
	Hits:    []int{2, 3, 4, 5},
	Weights: []float64{35, 35, 15, 15},
}

// CritRatio names a move's critical-hit stage; higher stages crit more
// often under the generation's crit-chance table.
type CritRatio uint8

// Critical hit ratio stages.
const (
	CritRatioNormal CritRatio = iota
	CritRatioHigh
	CritRatioGuaranteed
)

// MoveData is the static, read-only descriptor for one move: mandatory
// fields per spec §6.4 plus the optional sub-effects and hook presence
// flags. The actual hook functions live in package hooks, keyed by ID —
// MoveData only says whether one is registered, keeping this package free
// of any dependency on state/instruction.
type MoveData struct {
	ID         string
	Type       Type
	Category   Category
	BasePower  int
	Accuracy   int // 0 means "bypass accuracy check"
	BypassAcc  bool
	Priority   int
	DefaultTgt Target
	Flags      MoveFlags

	CritRatio CritRatio

	// Status/volatile/boost the move applies directly to its target (not
	// conditional on a secondary roll).
	AppliesStatus   StatusCondition
	AppliesVolatile VolatileTag
	AppliesBoost    []BoostSpec
	BoostTarget     Target

	HealFraction   float64 // e.g. 0.5 for Roost/Recover
	DrainFraction  float64 // e.g. 0.5 for Giga Drain
	RecoilFraction float64
	CrashFraction  float64 // self-damage fraction on miss (Hi Jump Kick)

	SideCondition SideConditionTag
	HasSideEffect bool

	Secondaries []SecondaryEffect

	MultiHit *HitCountDistribution

	HasModifyChoice      bool
	HasAfterDamage       bool
	HasHazardClear       bool
	HasMoveSpecialEffect bool
}

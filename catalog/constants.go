package catalog

// Named percentage and turn-count constants the resolver's pipeline
// consults, pulled out of the instruction-generation algorithm the same
// way the original implementation's `generate_instructions` module keeps
// them as named constants rather than inlined magic numbers
// (SPEC_FULL.md, SUPPLEMENTED FEATURES).
const (
	// SleepWakeChancePercent is the chance an asleep monster wakes up when
	// it attempts to move, checked before the sleep-turns counter is
	// incremented.
	SleepWakeChancePercent = 100.0 / 3.0

	// FreezeThawChancePercent is the chance a frozen monster thaws when it
	// attempts to move.
	FreezeThawChancePercent = 20.0

	// FullParalysisChancePercent is the chance a paralyzed monster fails
	// to move entirely.
	FullParalysisChancePercent = 25.0

	// ConfusionSelfHitChancePercent is the chance a confused monster hits
	// itself instead of executing its chosen move.
	ConfusionSelfHitChancePercent = 33.0

	// ParalysisSpeedFactorGen1Through6 and ParalysisSpeedFactorGen7Plus
	// mirror catalog.RuleSet.ParalysisSpeedFactor's two generation-gated
	// values, exposed here as named constants for callers building a
	// RuleSet by hand instead of through WithGen.
	ParalysisSpeedFactorGen1Through6 = 0.25
	ParalysisSpeedFactorGen7Plus     = 0.5

	// MaxToxicCounter bounds how many turns of toxic residual damage
	// accumulate; the original caps the multiplier rather than letting it
	// climb forever once a battle runs long.
	MaxToxicCounter = 15

	// PartialTrapMinTurns and PartialTrapMaxTurns bound the wrap/bind
	// family's forced-duration distribution (spec §4.7).
	PartialTrapMinTurns = 4
	PartialTrapMaxTurns = 5

	// BurnDamageFraction and PoisonDamageFraction are the end-of-turn
	// residual fractions of max HP for the two status conditions (spec
	// §4.5 step 4).
	BurnDamageFraction   = 1.0 / 16.0
	PoisonDamageFraction = 1.0 / 8.0

	// SubstituteHPFraction is the fraction of max HP spent to set up a
	// substitute, and the cap on the substitute's own HP pool.
	SubstituteHPFraction = 1.0 / 4.0

	// BellyDrumHPFraction is the fraction of max HP Belly Drum spends to
	// set the user's Attack stage to +6 outright.
	BellyDrumHPFraction = 0.5

	// CritChanceNormalPercent and CritChanceHighPercent are the two
	// critical-hit stage chances this catalog's moves use (spec §4.4 step
	// 5's "branched at the move's crit ratio"); CritRatioGuaranteed always
	// hits at 100% and needs no constant.
	CritChanceNormalPercent = 100.0 / 24.0
	CritChanceHighPercent   = 12.5

	// DamageRollMin and DamageRollMax bound the 16-step 85%-100% damage
	// roll distribution (spec §4.4 step 5).
	DamageRollMin   = 0.85
	DamageRollMax   = 1.00
	DamageRollSteps = 16

	// LeechSeedDrainFraction is the fraction of the seeded monster's
	// current HP drained to the seeder each end-of-turn (spec §4.5 step 5).
	LeechSeedDrainFraction = 1.0 / 8.0

	// WeatherChipDamageFraction is the end-of-turn residual sand/hail deals
	// to a non-immune monster (spec §4.5 step 1).
	WeatherChipDamageFraction = 1.0 / 16.0

	// ConfusionSelfHitBasePower is the fixed base power of a confused
	// monster's self-inflicted hit: typeless, physical, computed from its
	// own Attack and Defense (spec §4.4 step 1).
	ConfusionSelfHitBasePower = 40
)

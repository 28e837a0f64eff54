package catalog

// DefaultMoves is a representative move set, not an exhaustive one: every
// flag, hook kind, sub-effect kind, and pipeline branch point the turn
// resolver implements has at least one mover here to exercise it. Static
// data tables in a production deployment would ship the full few-hundred
// move roster the same way — one literal per move, looked up by id — this
// is simply enough of that shape to drive the resolver's entire algorithm.
var DefaultMoves = []MoveData{
	{
		ID: "tackle", Type: TypeNormal, Category: CategoryPhysical,
		BasePower: 40, Accuracy: 100, DefaultTgt: TargetOpponent,
		Flags: FlagContact,
	},
	{
		ID: "splash", Type: TypeNormal, Category: CategoryStatus,
		Accuracy: 100, BypassAcc: true, DefaultTgt: TargetUser,
	},
	{
		ID: "thunderwave", Type: TypeElectric, Category: CategoryStatus,
		Accuracy: 90, DefaultTgt: TargetOpponent,
		AppliesStatus: StatusParalyze,
	},
	{
		ID: "reflect", Type: TypePsychic, Category: CategoryStatus,
		Accuracy: 100, BypassAcc: true, DefaultTgt: TargetField,
		SideCondition: SideConditionReflect, HasSideEffect: true,
	},
	{
		ID: "lightscreen", Type: TypePsychic, Category: CategoryStatus,
		Accuracy: 100, BypassAcc: true, DefaultTgt: TargetField,
		SideCondition: SideConditionLightScreen, HasSideEffect: true,
	},
	{
		ID: "toxic", Type: TypePoison, Category: CategoryStatus,
		Accuracy: 90, DefaultTgt: TargetOpponent,
		AppliesStatus: StatusToxic,
	},
	{
		ID: "willowisp", Type: TypeFire, Category: CategoryStatus,
		Accuracy: 85, DefaultTgt: TargetOpponent,
		AppliesStatus: StatusBurn,
	},
	{
		ID: "leechseed", Type: TypeGrass, Category: CategoryStatus,
		Accuracy: 90, DefaultTgt: TargetOpponent,
		AppliesVolatile: VolatileLeechSeed,
	},
	{
		ID: "confuseray", Type: TypeGhost, Category: CategoryStatus,
		Accuracy: 100, DefaultTgt: TargetOpponent,
		AppliesVolatile: VolatileConfusion,
	},
	{
		ID: "stealthrock", Type: TypeRock, Category: CategoryStatus,
		Accuracy: 100, BypassAcc: true, DefaultTgt: TargetField,
		SideCondition: SideConditionStealthRock, HasSideEffect: true,
	},
	{
		ID: "spikes", Type: TypeGround, Category: CategoryStatus,
		Accuracy: 100, BypassAcc: true, DefaultTgt: TargetField,
		SideCondition: SideConditionSpikes, HasSideEffect: true,
	},
	{
		ID: "rapidspin", Type: TypeNormal, Category: CategoryPhysical,
		BasePower: 50, Accuracy: 100, DefaultTgt: TargetOpponent,
		Flags: FlagContact, HasHazardClear: true,
	},
	{
		ID: "knockoff", Type: TypeDark, Category: CategoryPhysical,
		BasePower: 65, Accuracy: 100, DefaultTgt: TargetOpponent,
		Flags: FlagContact, HasAfterDamage: true,
	},
	{
		ID: "hex", Type: TypeGhost, Category: CategorySpecial,
		BasePower: 65, Accuracy: 100, DefaultTgt: TargetOpponent,
		HasModifyChoice: true,
	},
	{
		ID: "acrobatics", Type: TypeFlying, Category: CategoryPhysical,
		BasePower: 55, Accuracy: 100, DefaultTgt: TargetOpponent,
		Flags: FlagContact, HasModifyChoice: true,
	},
	{
		ID: "counter", Type: TypeFighting, Category: CategoryPhysical,
		Accuracy: 100, Priority: -5, DefaultTgt: TargetOpponent,
		Flags: FlagContact, HasModifyChoice: true,
	},
	{
		ID: "mirrorcoat", Type: TypePsychic, Category: CategorySpecial,
		Accuracy: 100, Priority: -5, DefaultTgt: TargetOpponent,
		HasModifyChoice: true,
	},
	{
		ID: "metalburst", Type: TypeSteel, Category: CategoryPhysical,
		Accuracy: 100, DefaultTgt: TargetOpponent,
		Flags: FlagContact, HasModifyChoice: true,
	},
	{
		ID: "slash", Type: TypeNormal, Category: CategoryPhysical,
		BasePower: 70, Accuracy: 100, DefaultTgt: TargetOpponent,
		Flags: FlagContact, CritRatio: CritRatioHigh,
	},
	{
		ID: "drillpeck", Type: TypeFlying, Category: CategoryPhysical,
		BasePower: 80, Accuracy: 100, DefaultTgt: TargetOpponent,
		Flags: FlagContact,
	},
	{
		ID: "hyperbeam", Type: TypeNormal, Category: CategorySpecial,
		BasePower: 150, Accuracy: 90, DefaultTgt: TargetOpponent,
		Flags: FlagRecharge,
	},
	{
		ID: "substitute", Type: TypeNormal, Category: CategoryStatus,
		Accuracy: 100, BypassAcc: true, DefaultTgt: TargetUser,
		HasMoveSpecialEffect: true,
	},
	{
		ID: "bellydrum", Type: TypeNormal, Category: CategoryStatus,
		Accuracy: 100, BypassAcc: true, DefaultTgt: TargetUser,
		HasMoveSpecialEffect: true,
	},
	{
		ID: "icebeam", Type: TypeIce, Category: CategorySpecial,
		BasePower: 90, Accuracy: 100, DefaultTgt: TargetOpponent,
		Secondaries: []SecondaryEffect{
			{Chance: 10, Target: TargetOpponent, Effect: SecondaryStatus, Param: StatusFreeze},
		},
	},
	{
		ID: "thunderbolt", Type: TypeElectric, Category: CategorySpecial,
		BasePower: 90, Accuracy: 100, DefaultTgt: TargetOpponent,
		Secondaries: []SecondaryEffect{
			{Chance: 10, Target: TargetOpponent, Effect: SecondaryStatus, Param: StatusParalyze},
		},
	},
	{
		ID: "flamethrower", Type: TypeFire, Category: CategorySpecial,
		BasePower: 90, Accuracy: 100, DefaultTgt: TargetOpponent,
		Secondaries: []SecondaryEffect{
			{Chance: 10, Target: TargetOpponent, Effect: SecondaryStatus, Param: StatusBurn},
		},
	},
	{
		ID: "bodyslam", Type: TypeNormal, Category: CategoryPhysical,
		BasePower: 85, Accuracy: 100, DefaultTgt: TargetOpponent,
		Flags: FlagContact,
		Secondaries: []SecondaryEffect{
			{Chance: 30, Target: TargetOpponent, Effect: SecondaryStatus, Param: StatusParalyze},
		},
	},
	{
		ID: "hijumpkick", Type: TypeFighting, Category: CategoryPhysical,
		BasePower: 130, Accuracy: 90, DefaultTgt: TargetOpponent,
		Flags: FlagContact, CrashFraction: 0.5,
	},
	{
		ID: "gigadrain", Type: TypeGrass, Category: CategorySpecial,
		BasePower: 75, Accuracy: 100, DefaultTgt: TargetOpponent,
		DrainFraction: 0.5,
	},
	{
		ID: "doubleedge", Type: TypeNormal, Category: CategoryPhysical,
		BasePower: 120, Accuracy: 100, DefaultTgt: TargetOpponent,
		Flags: FlagContact, RecoilFraction: 1.0 / 3.0,
	},
	{
		ID: "bulletseed", Type: TypeGrass, Category: CategoryPhysical,
		BasePower: 25, Accuracy: 100, DefaultTgt: TargetOpponent,
		Flags: FlagContact | FlagBullet | FlagMultiHit,
		MultiHit: &TwoToFiveHits,
	},
	{
		ID: "protect", Type: TypeNormal, Category: CategoryStatus,
		Accuracy: 100, BypassAcc: true, Priority: 4, DefaultTgt: TargetUser,
		AppliesVolatile: VolatileProtect,
	},
	{
		ID: "rest", Type: TypePsychic, Category: CategoryStatus,
		Accuracy: 100, BypassAcc: true, DefaultTgt: TargetUser,
		AppliesStatus: StatusSleep, HealFraction: 1.0, Flags: FlagHeal,
	},
	{
		ID: "sleeppowder", Type: TypeGrass, Category: CategoryStatus,
		Accuracy: 75, DefaultTgt: TargetOpponent,
		Flags: FlagPowder, AppliesStatus: StatusSleep,
	},
	{
		ID: "solarbeam", Type: TypeGrass, Category: CategorySpecial,
		BasePower: 120, Accuracy: 100, DefaultTgt: TargetOpponent,
		Flags: FlagCharge,
	},
	{
		ID: "roost", Type: TypeFlying, Category: CategoryStatus,
		Accuracy: 100, BypassAcc: true, DefaultTgt: TargetUser,
		HealFraction: 0.5, Flags: FlagHeal,
	},
	{
		ID: "leechlife", Type: TypeBug, Category: CategoryPhysical,
		BasePower: 80, Accuracy: 100, DefaultTgt: TargetOpponent,
		Flags: FlagContact, DrainFraction: 0.5,
	},
	{
		ID: "dragondance", Type: TypeDragon, Category: CategoryStatus,
		Accuracy: 100, BypassAcc: true, DefaultTgt: TargetUser,
		AppliesBoost: []BoostSpec{{Stat: StatAttack, Delta: 1}, {Stat: StatSpeed, Delta: 1}},
		BoostTarget:  TargetUser,
	},
	{
		ID: "swordsdance", Type: TypeNormal, Category: CategoryStatus,
		Accuracy: 100, BypassAcc: true, DefaultTgt: TargetUser,
		AppliesBoost: []BoostSpec{{Stat: StatAttack, Delta: 2}},
		BoostTarget:  TargetUser,
	},
	{
		ID: "irondefense", Type: TypeSteel, Category: CategoryStatus,
		Accuracy: 100, BypassAcc: true, DefaultTgt: TargetUser,
		AppliesBoost: []BoostSpec{{Stat: StatDefense, Delta: 2}},
		BoostTarget:  TargetUser,
	},
}

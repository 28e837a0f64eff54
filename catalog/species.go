package catalog

// BaseStats is a species' base stat line. Provider.Species takes a
// generation argument, but StaticProvider ignores it: each species has one
// base stat line for every generation.
type BaseStats struct {
	HP             int
	Attack         int
	Defense        int
	SpecialAttack  int
	SpecialDefense int
	Speed          int
}

// SpeciesData is the static descriptor for one species.
type SpeciesData struct {
	ID        string
	TypeOne   Type
	TypeTwo   Type // TypeNone if single-typed
	Stats     BaseStats
	Abilities []string // legal ability ids for this species
}

// AbilityData is the static descriptor for an ability. Like moves, the
// actual hook implementations live in package hooks; this only records
// which timing points are wired.
type AbilityData struct {
	ID                  string
	HasModifyChoice     bool
	HasAfterDamageTaken bool
	HasOnSwitchIn       bool
	HasEndOfTurn        bool
}

// ItemData is the static descriptor for a held item.
type ItemData struct {
	ID                  string
	HasModifyChoice     bool
	HasAfterDamageTaken bool
	HasEndOfTurn        bool
	Consumable          bool
}

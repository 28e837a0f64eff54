package catalog

// DefaultAbilities is the bundled ability roster. Package hooks registers
// handlers for the modify_choice and end-of-turn abilities below; no
// ability here acts on switch-in, and sturdy's after-damage-taken flag has
// no registered handler, so sturdy (like limber and keeneye) has no effect
// in the resolver.
var DefaultAbilities = []AbilityData{
	{ID: "limber"},
	{ID: "sturdy", HasAfterDamageTaken: true},
	{ID: "keeneye"},
	{ID: "levitate", HasModifyChoice: true},
	{ID: "thickfat", HasModifyChoice: true},
	{ID: "voltabsorb", HasModifyChoice: true},
	{ID: "guts", HasModifyChoice: true},
	{ID: "adaptability", HasModifyChoice: true},
	{ID: "speedboost", HasEndOfTurn: true},
}

// DefaultItems is the bundled item roster (power-boosting modify_choice
// items, end-of-turn passives, Life Orb's after-damage recoil). sitrusberry
// carries after-damage-taken and consumable flags, but no handler is
// registered for it, so the resolver never consumes it.
var DefaultItems = []ItemData{
	{ID: "none"},
	{ID: "leftovers", HasEndOfTurn: true},
	{ID: "blacksludge", HasEndOfTurn: true},
	{ID: "choiceband", HasModifyChoice: true},
	{ID: "sitrusberry", HasAfterDamageTaken: true, Consumable: true},
	{ID: "lifeorb", HasModifyChoice: true, HasAfterDamageTaken: true},
}

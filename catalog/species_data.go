package catalog

// DefaultSpecies is a small reference roster spanning single- and
// dual-typed monsters, enough to exercise STAB, type effectiveness, and
// the neutral-default-state scenarios in spec §8.
var DefaultSpecies = []SpeciesData{
	{
		ID: "ditto", TypeOne: TypeNormal, TypeTwo: TypeNone,
		Stats:     BaseStats{HP: 48, Attack: 48, Defense: 48, SpecialAttack: 48, SpecialDefense: 48, Speed: 48},
		Abilities: []string{"limber"},
	},
	{
		ID: "golem", TypeOne: TypeRock, TypeTwo: TypeGround,
		Stats:     BaseStats{HP: 80, Attack: 120, Defense: 130, SpecialAttack: 55, SpecialDefense: 65, Speed: 45},
		Abilities: []string{"sturdy"},
	},
	{
		ID: "pidgeot", TypeOne: TypeNormal, TypeTwo: TypeFlying,
		Stats:     BaseStats{HP: 83, Attack: 80, Defense: 75, SpecialAttack: 70, SpecialDefense: 70, Speed: 101},
		Abilities: []string{"keeneye"},
	},
	{
		ID: "gengar", TypeOne: TypeGhost, TypeTwo: TypePoison,
		Stats:     BaseStats{HP: 60, Attack: 65, Defense: 60, SpecialAttack: 130, SpecialDefense: 75, Speed: 110},
		Abilities: []string{"levitate"},
	},
	{
		ID: "snorlax", TypeOne: TypeNormal, TypeTwo: TypeNone,
		Stats:     BaseStats{HP: 160, Attack: 110, Defense: 65, SpecialAttack: 65, SpecialDefense: 110, Speed: 30},
		Abilities: []string{"thickfat"},
	},
	{
		ID: "jolteon", TypeOne: TypeElectric, TypeTwo: TypeNone,
		Stats:     BaseStats{HP: 65, Attack: 65, Defense: 60, SpecialAttack: 110, SpecialDefense: 95, Speed: 130},
		Abilities: []string{"voltabsorb"},
	},
}

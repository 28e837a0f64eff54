package state

import "github.com/shardwake/battlesim/catalog"

// MoveSlot is one of a monster's up to four known moves.
type MoveSlot struct {
	ID            string
	PP            int
	MaxPP         int
	DisabledTurns int
	LastUsed      bool
}

// Stats is a monster's computed max stat line (spec §3.1: "computed max
// stats {hp, atk, def, spa, spd, spe}").
type Stats struct {
	HP             int
	Attack         int
	Defense        int
	SpecialAttack  int
	SpecialDefense int
	Speed          int
}

// Monster is one team slot, active or reserved. Stable identity fields
// (Species/Level/Gender/Nature/Ability/Item) never change except via an
// explicit ChangeAbility/ChangeItem/FormeChange instruction.
type Monster struct {
	Species string
	Level   int
	Gender  string
	Nature  string
	Ability string
	Item    string

	Stats     Stats
	CurrentHP int

	Status       catalog.StatusCondition
	SleepTurns   int
	RestTurns    int
	ToxicCounter int

	TypeOne catalog.Type
	TypeTwo catalog.Type

	Moves [4]MoveSlot

	SubstituteHP  int
	Trapped       bool
	Terastallized bool
}

// Fainted reports whether this monster is at 0 HP and cannot act.
func (m Monster) Fainted() bool { return m.CurrentHP <= 0 }

// HasSubstitute reports whether the substitute volatile's invariant holds:
// present iff substitute HP > 0 (spec §3.2).
func (m Monster) HasSubstitute() bool { return m.SubstituteHP > 0 }

// MoveSlotIndex returns the index of the move slot carrying id, or -1.
func (m Monster) MoveSlotIndex(id string) int {
	for i, slot := range m.Moves {
		if slot.ID == id {
			return i
		}
	}
	return -1
}

// EffectiveType returns the monster's two types; TypeTwo is TypeNone for a
// single-typed monster.
func (m Monster) EffectiveType() (catalog.Type, catalog.Type) { return m.TypeOne, m.TypeTwo }

package serialize_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/shardwake/battlesim/catalog"
	"github.com/shardwake/battlesim/serialize"
	"github.com/shardwake/battlesim/state"
)

func fullMonster() state.Monster {
	return state.Monster{
		Species: "gengar",
		Level:   100,
		Gender:  "m",
		Nature:  "timid",
		Ability: "levitate",
		Item:    "leftovers",
		Stats: state.Stats{
			HP: 300, Attack: 150, Defense: 140, SpecialAttack: 250, SpecialDefense: 180, Speed: 220,
		},
		CurrentHP:    210,
		Status:       catalog.StatusPoison,
		SleepTurns:   0,
		RestTurns:    0,
		ToxicCounter: 2,
		TypeOne:      catalog.TypeGhost,
		TypeTwo:      catalog.TypePoison,
		Moves: [4]state.MoveSlot{
			{ID: "shadowball", PP: 12, MaxPP: 16, DisabledTurns: 0, LastUsed: true},
			{ID: "thunderbolt", PP: 8, MaxPP: 24},
			{ID: "substitute", PP: 10, MaxPP: 16},
		},
		SubstituteHP:  0,
		Trapped:       false,
		Terastallized: true,
	}
}

func fullState() *state.State {
	s := state.New(catalog.NewRuleSet(catalog.WithFreezeClause()))
	s.Sides[0].NumSlots = 2
	s.Sides[0].ActiveIndex = 0
	s.Sides[0].Team[0] = fullMonster()
	s.Sides[0].Team[1] = fullMonster()
	s.Sides[0].Boosts[catalog.StatSpeed] = 2
	s.Sides[0].SideConditions[catalog.SideConditionReflect] = 3
	s.Sides[0].Volatiles[catalog.VolatileLeechSeed] = 1
	s.Sides[0].LastUsedMove = "shadowball"
	s.Sides[0].DamageDealt = state.DamageDealt{
		Amount: 48, Category: catalog.CategoryPhysical, MoveType: catalog.TypeNormal,
	}

	s.Sides[1].NumSlots = 1
	s.Sides[1].Team[0] = fullMonster()
	s.Sides[1].Team[0].Species = "starmie"

	s.Field.Weather = catalog.WeatherRain
	s.Field.WeatherTurns = 4
	s.Field.TrickRoomTurns = 2
	s.Field.GravityTurns = 0
	s.Field.TeamPreview = true

	return s
}

func TestRoundTripPreservesSidesAndField(t *testing.T) {
	s := fullState()
	encoded := serialize.Encode(s)

	decoded, err := serialize.Parse(encoded, s.BattleID)
	require.NoError(t, err)

	if diff := cmp.Diff(s.Sides, decoded.Sides); diff != "" {
		t.Fatalf("sides mismatch after round trip (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(s.Field, decoded.Field); diff != "" {
		t.Fatalf("field mismatch after round trip (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(s.Rules, decoded.Rules); diff != "" {
		t.Fatalf("rules mismatch after round trip (-want +got):\n%s", diff)
	}
	require.Equal(t, s.BattleID, decoded.BattleID)
}

func TestParseTruncatedRecordDefaults(t *testing.T) {
	s := fullState()
	encoded := serialize.Encode(s)

	lines := splitLines(encoded)
	truncated := lines[0] + "\n" + lines[1]

	decoded, err := serialize.Parse(truncated, "battle-1")
	require.NoError(t, err)

	require.Equal(t, catalog.WeatherNone, decoded.Field.Weather)
	require.Equal(t, 0, decoded.Field.WeatherTurns)
	require.Equal(t, catalog.NewRuleSet(), decoded.Rules)
}

func TestParseEmptySnapshotYieldsEmptyState(t *testing.T) {
	decoded, err := serialize.Parse("", "battle-2")
	require.NoError(t, err)
	require.Equal(t, 0, decoded.Sides[0].NumSlots)
	require.Equal(t, 0, decoded.Sides[1].NumSlots)
}

func TestEncodeOmitsUnpopulatedTeamSlots(t *testing.T) {
	s := fullState()
	encoded := serialize.Encode(s)
	decoded, err := serialize.Parse(encoded, s.BattleID)
	require.NoError(t, err)

	require.Equal(t, "", decoded.Sides[1].Team[1].Species)
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}

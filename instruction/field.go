package instruction

import (
	"github.com/shardwake/battlesim/catalog"
	"github.com/shardwake/battlesim/state"
)

// ChangeWeather sets the field's weather to New for NewTurns, recording the
// prior kind/turns so Reverse restores whatever weather was active before
// (including WeatherNone/0, the no-weather case).
type ChangeWeather struct {
	PreviousKind  catalog.WeatherKind
	PreviousTurns int
	NewKind       catalog.WeatherKind
	NewTurns      int
}

// Apply implements Instruction.
func (c ChangeWeather) Apply(s *state.State) {
	s.Field.Weather = c.NewKind
	s.Field.WeatherTurns = c.NewTurns
}

// Reverse implements Instruction.
func (c ChangeWeather) Reverse(s *state.State) {
	s.Field.Weather = c.PreviousKind
	s.Field.WeatherTurns = c.PreviousTurns
}

// ChangeTerrain sets the field's terrain to New for NewTurns, symmetric
// with ChangeWeather.
type ChangeTerrain struct {
	PreviousKind  catalog.TerrainKind
	PreviousTurns int
	NewKind       catalog.TerrainKind
	NewTurns      int
}

// Apply implements Instruction.
func (c ChangeTerrain) Apply(s *state.State) {
	s.Field.Terrain = c.NewKind
	s.Field.TerrainTurns = c.NewTurns
}

// Reverse implements Instruction.
func (c ChangeTerrain) Reverse(s *state.State) {
	s.Field.Terrain = c.PreviousKind
	s.Field.TerrainTurns = c.PreviousTurns
}

// DecrementFieldTurns ticks down one of the field's turn counters (weather,
// terrain, trick room, or gravity) by one, used by end-of-turn residual
// processing (spec §4.5).
type DecrementFieldTurns struct {
	Counter FieldCounter
}

// Apply implements Instruction.
func (d DecrementFieldTurns) Apply(s *state.State) { d.adjust(s, -1) }

// Reverse implements Instruction.
func (d DecrementFieldTurns) Reverse(s *state.State) { d.adjust(s, 1) }

func (d DecrementFieldTurns) adjust(s *state.State, delta int) {
	switch d.Counter {
	case FieldCounterWeather:
		s.Field.WeatherTurns += delta
	case FieldCounterTerrain:
		s.Field.TerrainTurns += delta
	case FieldCounterTrickRoom:
		s.Field.TrickRoomTurns += delta
	case FieldCounterGravity:
		s.Field.GravityTurns += delta
	}
}

package state

import "github.com/shardwake/battlesim/catalog"

// Field holds the shared, side-independent battle-wide state: weather,
// terrain, trick room and gravity counters, and the team-preview flag
// (spec §3.1).
type Field struct {
	Weather      catalog.WeatherKind
	WeatherTurns int

	Terrain      catalog.TerrainKind
	TerrainTurns int

	TrickRoomTurns int
	GravityTurns   int

	TeamPreview bool
}

// Clone returns a deep (here, value) copy; Field has no reference fields so
// a plain copy suffices.
func (f Field) Clone() Field { return f }

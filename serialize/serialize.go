// Package serialize implements the compact text encoding spec §6.1
// describes: a fixed-field record per side followed by field-wide fields,
// suitable for snapshotting a *state.State to a string and back. It is
// grounded on the teacher's combat package data.go, which persists combat
// state as flat, explicitly-versioned fields rather than a generic
// reflection-based encoder — the same discipline applies here: every field
// has a known position, and a short record simply omits its trailing
// fields rather than erroring, so an older snapshot stays loadable against
// a newer schema (spec §6.1's "parsers must accept missing trailing fields
// as defaults").
package serialize

import (
	"strconv"
	"strings"

	"github.com/shardwake/battlesim/bgerr"
	"github.com/shardwake/battlesim/catalog"
	"github.com/shardwake/battlesim/core"
	"github.com/shardwake/battlesim/state"
)

// Delimiters, outermost to innermost. Each level's separator never appears
// inside a value one level down (ids are lowercase ASCII per spec §6.4, and
// every other field is numeric or a single flag), so a naive Split is
// exact — no escaping needed.
const (
	sectionSep   = "\n" // side one | side two | field
	sideSep      = ";"  // fields within one side's record
	slotSep      = "|"  // team slots within a side
	fieldSep     = ","  // fields within one slot, or one compound side field
	moveSep      = "&"  // move slots within one monster
	moveFieldSep = ":"  // fields within one move
	pairSep      = "~"  // volatile tag:counter pairs
)

// Encode renders s as a snapshot string (spec §6.1).
func Encode(s *state.State) string {
	lines := []string{
		encodeSide(&s.Sides[core.SideOne]),
		encodeSide(&s.Sides[core.SideTwo]),
		encodeField(s),
	}
	return strings.Join(lines, sectionSep)
}

// Parse reconstructs a *state.State from a string Encode produced (or an
// older/truncated version of one — trailing fields default to zero
// values, and a missing rules-flags record defaults to catalog.NewRuleSet()'s
// latest-generation shape). The returned state carries battleID as given;
// Encode does not round-trip BattleID, since spec §6.1 describes a board
// snapshot, not a session identity.
func Parse(snapshot string, battleID string) (*state.State, error) {
	lines := strings.Split(snapshot, sectionSep)
	s := &state.State{BattleID: battleID}

	sideOne, err := decodeSide(field(lines, 0))
	if err != nil {
		return nil, err
	}
	sideTwo, err := decodeSide(field(lines, 1))
	if err != nil {
		return nil, err
	}
	s.Sides[core.SideOne] = sideOne
	s.Sides[core.SideTwo] = sideTwo

	f, rules, err := decodeField(field(lines, 2))
	if err != nil {
		return nil, err
	}
	s.Field = f
	s.Rules = rules

	return s, nil
}

func encodeSide(side *state.Side) string {
	boosts := make([]string, len(side.Boosts))
	for i, v := range side.Boosts {
		boosts[i] = strconv.Itoa(v)
	}
	conditions := make([]string, len(side.SideConditions))
	for i, v := range side.SideConditions {
		conditions[i] = strconv.Itoa(v)
	}

	var volatileParts []string
	for tag, counter := range side.Volatiles {
		volatileParts = append(volatileParts, strconv.Itoa(int(tag))+moveFieldSep+strconv.Itoa(counter))
	}

	dd := side.DamageDealt
	damageDealt := strings.Join([]string{
		strconv.Itoa(dd.Amount),
		strconv.Itoa(int(dd.Category)),
		strconv.Itoa(int(dd.MoveType)),
		boolField(dd.HitSubstitute),
	}, fieldSep)

	slots := make([]string, side.NumSlots)
	for i := 0; i < side.NumSlots; i++ {
		slots[i] = encodeMonster(&side.Team[i])
	}

	return strings.Join([]string{
		strconv.Itoa(side.ActiveIndex),
		strconv.Itoa(side.NumSlots),
		strings.Join(boosts, fieldSep),
		strings.Join(conditions, fieldSep),
		strings.Join(volatileParts, pairSep),
		side.LastUsedMove,
		damageDealt,
		strings.Join(slots, slotSep),
	}, sideSep)
}

func decodeSide(record string) (state.Side, error) {
	side := state.NewSide()
	if record == "" {
		return side, nil
	}
	parts := strings.Split(record, sideSep)

	side.ActiveIndex = atoiDefault(field(parts, 0), 0)
	side.NumSlots = atoiDefault(field(parts, 1), 0)

	for i, v := range strings.Split(field(parts, 2), fieldSep) {
		if i >= len(side.Boosts) || v == "" {
			continue
		}
		side.Boosts[i] = atoiDefault(v, 0)
	}
	for i, v := range strings.Split(field(parts, 3), fieldSep) {
		if i >= len(side.SideConditions) || v == "" {
			continue
		}
		side.SideConditions[i] = atoiDefault(v, 0)
	}
	if raw := field(parts, 4); raw != "" {
		for _, pair := range strings.Split(raw, pairSep) {
			kv := strings.SplitN(pair, moveFieldSep, 2)
			if len(kv) != 2 {
				continue
			}
			tag := catalog.VolatileTag(atoiDefault(kv[0], 0))
			side.Volatiles[tag] = atoiDefault(kv[1], 0)
		}
	}
	side.LastUsedMove = field(parts, 5)

	if raw := field(parts, 6); raw != "" {
		dd := strings.Split(raw, fieldSep)
		side.DamageDealt = state.DamageDealt{
			Amount:        atoiDefault(field(dd, 0), 0),
			Category:      catalog.Category(atoiDefault(field(dd, 1), 0)),
			MoveType:      catalog.Type(atoiDefault(field(dd, 2), 0)),
			HitSubstitute: field(dd, 3) == "1",
		}
	}

	if raw := field(parts, 7); raw != "" {
		slotRecords := strings.Split(raw, slotSep)
		for i, rec := range slotRecords {
			if i >= len(side.Team) {
				break
			}
			mon, err := decodeMonster(rec)
			if err != nil {
				return side, err
			}
			side.Team[i] = mon
		}
	}

	return side, nil
}

func encodeMonster(m *state.Monster) string {
	moves := make([]string, 0, len(m.Moves))
	for _, mv := range m.Moves {
		if mv.ID == "" {
			continue
		}
		moves = append(moves, strings.Join([]string{
			mv.ID,
			strconv.Itoa(mv.PP),
			strconv.Itoa(mv.MaxPP),
			strconv.Itoa(mv.DisabledTurns),
			boolField(mv.LastUsed),
		}, moveFieldSep))
	}

	return strings.Join([]string{
		m.Species,
		strconv.Itoa(m.Level),
		m.Gender,
		m.Nature,
		m.Ability,
		m.Item,
		strconv.Itoa(m.CurrentHP),
		strconv.Itoa(m.Stats.HP),
		strconv.Itoa(m.Stats.Attack),
		strconv.Itoa(m.Stats.Defense),
		strconv.Itoa(m.Stats.SpecialAttack),
		strconv.Itoa(m.Stats.SpecialDefense),
		strconv.Itoa(m.Stats.Speed),
		strconv.Itoa(int(m.Status)),
		strconv.Itoa(m.SleepTurns),
		strconv.Itoa(m.RestTurns),
		strconv.Itoa(m.ToxicCounter),
		strconv.Itoa(int(m.TypeOne)),
		strconv.Itoa(int(m.TypeTwo)),
		strconv.Itoa(m.SubstituteHP),
		boolField(m.Trapped),
		boolField(m.Terastallized),
		strings.Join(moves, moveSep),
	}, fieldSep)
}

func decodeMonster(record string) (state.Monster, error) {
	var m state.Monster
	parts := strings.Split(record, fieldSep)

	m.Species = field(parts, 0)
	m.Level = atoiDefault(field(parts, 1), 1)
	m.Gender = field(parts, 2)
	m.Nature = field(parts, 3)
	m.Ability = field(parts, 4)
	m.Item = field(parts, 5)
	m.CurrentHP = atoiDefault(field(parts, 6), 0)
	m.Stats.HP = atoiDefault(field(parts, 7), 0)
	m.Stats.Attack = atoiDefault(field(parts, 8), 0)
	m.Stats.Defense = atoiDefault(field(parts, 9), 0)
	m.Stats.SpecialAttack = atoiDefault(field(parts, 10), 0)
	m.Stats.SpecialDefense = atoiDefault(field(parts, 11), 0)
	m.Stats.Speed = atoiDefault(field(parts, 12), 0)
	m.Status = catalog.StatusCondition(atoiDefault(field(parts, 13), 0))
	m.SleepTurns = atoiDefault(field(parts, 14), 0)
	m.RestTurns = atoiDefault(field(parts, 15), 0)
	m.ToxicCounter = atoiDefault(field(parts, 16), 0)
	m.TypeOne = catalog.Type(atoiDefault(field(parts, 17), 0))
	m.TypeTwo = catalog.Type(atoiDefault(field(parts, 18), 0))
	m.SubstituteHP = atoiDefault(field(parts, 19), 0)
	m.Trapped = field(parts, 20) == "1"
	m.Terastallized = field(parts, 21) == "1"

	if raw := field(parts, 22); raw != "" {
		for i, mv := range strings.Split(raw, moveSep) {
			if i >= len(m.Moves) || mv == "" {
				continue
			}
			mf := strings.Split(mv, moveFieldSep)
			if field(mf, 0) == "" {
				return m, bgerr.InvalidState("moves["+strconv.Itoa(i)+"].id", mv)
			}
			m.Moves[i] = state.MoveSlot{
				ID:            field(mf, 0),
				PP:            atoiDefault(field(mf, 1), 0),
				MaxPP:         atoiDefault(field(mf, 2), 0),
				DisabledTurns: atoiDefault(field(mf, 3), 0),
				LastUsed:      field(mf, 4) == "1",
			}
		}
	}

	return m, nil
}

func encodeField(s *state.State) string {
	r := s.Rules
	rulesFlags := strings.Join([]string{
		strconv.Itoa(r.Gen),
		boolField(r.FreezeClause),
		boolField(r.SleepClause),
		boolField(r.CombinedSpecial),
		strconv.FormatFloat(r.ParalysisSpeedFactor, 'g', -1, 64),
		strconv.FormatFloat(r.CritMultiplier, 'g', -1, 64),
		strconv.FormatFloat(r.PartialTrapFraction, 'g', -1, 64),
		strconv.FormatFloat(r.ConsecutiveProtectDecay, 'g', -1, 64),
	}, fieldSep)

	return strings.Join([]string{
		strconv.Itoa(int(s.Field.Weather)) + moveFieldSep + strconv.Itoa(s.Field.WeatherTurns),
		strconv.Itoa(int(s.Field.Terrain)) + moveFieldSep + strconv.Itoa(s.Field.TerrainTurns),
		strconv.Itoa(s.Field.TrickRoomTurns),
		strconv.Itoa(s.Field.GravityTurns),
		boolField(s.Field.TeamPreview),
		rulesFlags,
	}, sideSep)
}

func decodeField(record string) (state.Field, catalog.RuleSet, error) {
	var f state.Field
	rules := catalog.NewRuleSet()
	if record == "" {
		return f, rules, nil
	}
	parts := strings.Split(record, sideSep)

	if raw := field(parts, 0); raw != "" {
		kv := strings.SplitN(raw, moveFieldSep, 2)
		f.Weather = catalog.WeatherKind(atoiDefault(field(kv, 0), 0))
		f.WeatherTurns = atoiDefault(field(kv, 1), 0)
	}
	if raw := field(parts, 1); raw != "" {
		kv := strings.SplitN(raw, moveFieldSep, 2)
		f.Terrain = catalog.TerrainKind(atoiDefault(field(kv, 0), 0))
		f.TerrainTurns = atoiDefault(field(kv, 1), 0)
	}
	f.TrickRoomTurns = atoiDefault(field(parts, 2), 0)
	f.GravityTurns = atoiDefault(field(parts, 3), 0)
	f.TeamPreview = field(parts, 4) == "1"

	if raw := field(parts, 5); raw != "" {
		rf := strings.Split(raw, fieldSep)
		rules = catalog.RuleSet{
			Gen:                     atoiDefault(field(rf, 0), rules.Gen),
			FreezeClause:            field(rf, 1) == "1",
			SleepClause:             field(rf, 2) == "1",
			CombinedSpecial:         field(rf, 3) == "1",
			ParalysisSpeedFactor:    atofDefault(field(rf, 4), rules.ParalysisSpeedFactor),
			CritMultiplier:          atofDefault(field(rf, 5), rules.CritMultiplier),
			PartialTrapFraction:     atofDefault(field(rf, 6), rules.PartialTrapFraction),
			ConsecutiveProtectDecay: atofDefault(field(rf, 7), rules.ConsecutiveProtectDecay),
		}
	}

	return f, rules, nil
}

// field returns parts[i], or "" if i is out of range — the mechanism
// behind "missing trailing fields default" (spec §6.1).
func field(parts []string, i int) string {
	if i < 0 || i >= len(parts) {
		return ""
	}
	return parts[i]
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func atofDefault(s string, def float64) float64 {
	if s == "" {
		return def
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return n
}

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

package catalog

import "github.com/shardwake/battlesim/bgerr"

// Provider is the read-only lookup surface the rest of the engine consults
// for static data (spec §6.4: "lookup is O(1)"). Implementations must be
// safe for concurrent use by multiple goroutines once built — they never
// mutate after construction.
type Provider interface {
	Move(id string) (MoveData, error)
	Species(id string, gen int) (SpeciesData, error)
	Ability(id string) (AbilityData, error)
	Item(id string) (ItemData, error)
	TypeChart() *TypeChart
}

// StaticProvider is the engine's concrete Provider: four maps plus a type
// chart, all populated once at construction and never mutated again.
type StaticProvider struct {
	moves     map[string]MoveData
	species   map[string]SpeciesData
	abilities map[string]AbilityData
	items     map[string]ItemData
	chart     *TypeChart
}

// NewStaticProvider builds a Provider from in-memory tables. Any generation
// switch requires building a fresh Provider (spec §9: "mixing generations
// mid-battle is undefined"); this constructor is cheap enough to call once
// per generation a caller supports and hold the results side by side.
func NewStaticProvider(moves []MoveData, species []SpeciesData, abilities []AbilityData, items []ItemData, chart *TypeChart) *StaticProvider {
	p := &StaticProvider{
		moves:     make(map[string]MoveData, len(moves)),
		species:   make(map[string]SpeciesData, len(species)),
		abilities: make(map[string]AbilityData, len(abilities)),
		items:     make(map[string]ItemData, len(items)),
		chart:     chart,
	}
	for _, m := range moves {
		p.moves[m.ID] = m
	}
	for _, s := range species {
		p.species[s.ID] = s
	}
	for _, a := range abilities {
		p.abilities[a.ID] = a
	}
	for _, i := range items {
		p.items[i.ID] = i
	}
	return p
}

// Move implements Provider.
func (p *StaticProvider) Move(id string) (MoveData, error) {
	m, ok := p.moves[id]
	if !ok {
		return MoveData{}, bgerr.UnknownIdentifier("move", id)
	}
	return m, nil
}

// Species implements Provider. gen is accepted for interface symmetry with
// the per-generation base-stat override described in SPEC_FULL.md; the
// reference tables here are generation-invariant, so it is otherwise
// unused.
func (p *StaticProvider) Species(id string, _ int) (SpeciesData, error) {
	s, ok := p.species[id]
	if !ok {
		return SpeciesData{}, bgerr.UnknownIdentifier("species", id)
	}
	return s, nil
}

// Ability implements Provider.
func (p *StaticProvider) Ability(id string) (AbilityData, error) {
	a, ok := p.abilities[id]
	if !ok {
		return AbilityData{}, bgerr.UnknownIdentifier("ability", id)
	}
	return a, nil
}

// Item implements Provider.
func (p *StaticProvider) Item(id string) (ItemData, error) {
	i, ok := p.items[id]
	if !ok {
		return ItemData{}, bgerr.UnknownIdentifier("item", id)
	}
	return i, nil
}

// TypeChart implements Provider.
func (p *StaticProvider) TypeChart() *TypeChart {
	return p.chart
}

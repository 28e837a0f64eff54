// Package chain provides ordered processing of a value through named
// stages. The battle engine's modify_choice hooks (move, ability, item) are
// handlers registered at documented stages of a Chain[T], instead of an
// open inheritance hierarchy of move subclasses; the other hook slots are
// plain per-id lookups in package hooks.
package chain

import (
	"context"
	"fmt"
	"sync"
)

// Stage names one step of a chain's execution order. Stage sets are closed
// per chain kind (see hooks.ChoiceStages) and documented at the call site.
type Stage string

// Chain threads a value through ordered stages of handlers.
type Chain[T any] interface {
	// Add registers handler at stage under id. Returns an error if id is
	// already registered at any stage.
	Add(stage Stage, id string, handler func(context.Context, T) (T, error)) error
	// Remove unregisters a handler by id.
	Remove(id string) error
	// Run executes every registered handler in stage order, left to right
	// within a stage in registration order, returning the final value.
	Run(ctx context.Context, value T) (T, error)
	// Len reports how many handlers are currently registered.
	Len() int
}

type entry[T any] struct {
	id      string
	handler func(context.Context, T) (T, error)
}

// Staged is the concrete Chain[T] used throughout the engine: a fixed,
// caller-declared stage order with handlers appended per stage.
type Staged[T any] struct {
	mu    sync.RWMutex
	order []Stage
	byID  map[string]Stage
	byStg map[Stage][]entry[T]
}

// NewStaged builds an empty chain that executes the given stages, in order,
// every time Run is called. Registering a handler at a Stage not in order
// is an error.
func NewStaged[T any](order []Stage) *Staged[T] {
	byStg := make(map[Stage][]entry[T], len(order))
	for _, s := range order {
		byStg[s] = nil
	}
	return &Staged[T]{
		order: order,
		byID:  make(map[string]Stage),
		byStg: byStg,
	}
}

// Add implements Chain[T].
func (c *Staged[T]) Add(stage Stage, id string, handler func(context.Context, T) (T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.byID[id]; exists {
		return fmt.Errorf("chain: handler id %q already registered", id)
	}
	if _, known := c.byStg[stage]; !known {
		return fmt.Errorf("chain: unknown stage %q", stage)
	}
	c.byStg[stage] = append(c.byStg[stage], entry[T]{id: id, handler: handler})
	c.byID[id] = stage
	return nil
}

// Remove implements Chain[T].
func (c *Staged[T]) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	stage, ok := c.byID[id]
	if !ok {
		return fmt.Errorf("chain: handler id %q not registered", id)
	}
	entries := c.byStg[stage]
	for i, e := range entries {
		if e.id == id {
			c.byStg[stage] = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	delete(c.byID, id)
	return nil
}

// Run implements Chain[T].
func (c *Staged[T]) Run(ctx context.Context, value T) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := value
	for _, stage := range c.order {
		for _, e := range c.byStg[stage] {
			var err error
			result, err = e.handler(ctx, result)
			if err != nil {
				return result, fmt.Errorf("chain: stage %s handler %s: %w", stage, e.id, err)
			}
		}
	}
	return result, nil
}

// Len implements Chain[T].
func (c *Staged[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byID)
}

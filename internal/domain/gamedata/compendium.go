package gamedata

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/vellum-app/vellum/internal/shared/errors"
)

type entityKey struct {
	typ string
	id  int64
}

type snapshot struct {
	byKey map[entityKey]Entity
}

// Compendium holds an in-memory snapshot of the game entity set. Lookups are
// lock-free reads against the current snapshot; Reload swaps in a fresh
// snapshot wholesale, so readers always see a consistent set.
type Compendium struct {
	source  EntitySource
	current atomic.Pointer[snapshot]
}

// NewCompendium creates an empty compendium. Call Reload before serving.
func NewCompendium(source EntitySource) *Compendium {
	c := &Compendium{source: source}
	c.current.Store(&snapshot{byKey: map[entityKey]Entity{}})
	return c
}

// Reload replaces the snapshot with the source's current entity set.
func (c *Compendium) Reload(ctx context.Context) error {
	entities, err := c.source.LoadEntities(ctx)
	if err != nil {
		return fmt.Errorf("load compendium entities: %w", err)
	}

	byKey := make(map[entityKey]Entity, len(entities))
	for _, e := range entities {
		byKey[entityKey{typ: e.Type, id: e.ID}] = e
	}
	c.current.Store(&snapshot{byKey: byKey})
	return nil
}

// Lookup resolves an entity by (type, id).
func (c *Compendium) Lookup(entityType string, entityID int64) (Entity, error) {
	snap := c.current.Load()
	e, ok := snap.byKey[entityKey{typ: entityType, id: entityID}]
	if !ok {
		return Entity{}, errors.NewNotFoundError(fmt.Sprintf("entity %s/%d not found", entityType, entityID))
	}
	return e, nil
}

// Size returns the number of entities in the current snapshot.
func (c *Compendium) Size() int {
	return len(c.current.Load().byKey)
}

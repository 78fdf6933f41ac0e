package gamedata

import "context"

// Entity is one compendium entry (a spell, item, monster and so on) that a
// collectable's entitlement gate can reference.
type Entity struct {
	Type   string `json:"type"`
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	IsFree bool   `json:"is_free"`
}

// EntitySource loads the full compendium entity set.
type EntitySource interface {
	LoadEntities(ctx context.Context) ([]Entity, error)
}

package workshop

import "time"

// CodeVersion is one immutable snapshot of a collectable's source content.
// Only the IsCurrent flag ever changes after creation.
type CodeVersion struct {
	Version   int       `json:"version"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	IsCurrent bool      `json:"is_current"`
}

// RequiredEntitlement is a gating reference to a compendium entity that a
// caller must own to invoke a collectable. Required entitlements are
// moderator-imposed and cannot be removed by the collection owner.
type RequiredEntitlement struct {
	EntityType string `json:"entity_type"`
	EntityID   int64  `json:"entity_id"`
	Required   bool   `json:"required"`
}

package workshop

import (
	"context"
	"time"
)

// CollectionRepository persists collection aggregates.
type CollectionRepository interface {
	Create(ctx context.Context, collection *Collection) error
	FindByID(ctx context.Context, id string) (*Collection, error)
	FindByIDs(ctx context.Context, ids []string) ([]*Collection, error)
	FindByOwner(ctx context.Context, owner int64) ([]*Collection, error)
	Update(ctx context.Context, collection *Collection) error
	Delete(ctx context.Context, id string) error

	// AdjustSubscriberCount atomically shifts the personal subscriber
	// counter; AdjustGuildSubscriberCount shifts the guild counter.
	AdjustSubscriberCount(ctx context.Context, id string, delta int) error
	AdjustGuildSubscriberCount(ctx context.Context, id string, delta int) error
}

// AliasRepository persists aliases, root and nested alike.
type AliasRepository interface {
	Create(ctx context.Context, alias *Alias) error
	FindByID(ctx context.Context, id string) (*Alias, error)
	FindByIDs(ctx context.Context, ids []string) ([]*Alias, error)
	FindByCollection(ctx context.Context, collectionID string) ([]*Alias, error)
	Update(ctx context.Context, alias *Alias) error
	Delete(ctx context.Context, id string) error
	DeleteByCollection(ctx context.Context, collectionID string) error
}

// SnippetRepository persists snippets.
type SnippetRepository interface {
	Create(ctx context.Context, snippet *Snippet) error
	FindByID(ctx context.Context, id string) (*Snippet, error)
	FindByIDs(ctx context.Context, ids []string) ([]*Snippet, error)
	FindByCollection(ctx context.Context, collectionID string) ([]*Snippet, error)
	Update(ctx context.Context, snippet *Snippet) error
	Delete(ctx context.Context, id string) error
	DeleteByCollection(ctx context.Context, collectionID string) error
}

// SubscriptionRepository persists the subscription ledger.
type SubscriptionRepository interface {
	// Upsert inserts or replaces the record keyed by (type, subscriber,
	// object) and reports whether a new record was created.
	Upsert(ctx context.Context, sub *Subscription) (created bool, err error)
	Find(ctx context.Context, typ SubscriptionType, subscriberID int64, objectID string) (*Subscription, error)
	Delete(ctx context.Context, typ SubscriptionType, subscriberID int64, objectID string) error
	FindByObject(ctx context.Context, objectID string, typ SubscriptionType) ([]*Subscription, error)
	FindBySubscriber(ctx context.Context, typ SubscriptionType, subscriberID int64) ([]*Subscription, error)
	CountByObject(ctx context.Context, objectID string, typ SubscriptionType) (int64, error)
	DeleteByObject(ctx context.Context, objectID string) error

	// AppendBinding adds a binding to every subscribe and server_active
	// record for the object, so new content is immediately invocable by
	// existing subscribers. RemoveBinding pulls bindings for a deleted
	// member from every record.
	AppendBinding(ctx context.Context, objectID string, kind BindingKind, binding Binding) error
	RemoveBinding(ctx context.Context, objectID string, kind BindingKind, memberID string) error
}

// AliasEventRepository persists the append-only popularity event log.
type AliasEventRepository interface {
	Append(ctx context.Context, event AliasEvent) error

	// NetSubScores aggregates subscribe-family events since the given time
	// into per-collection net scores, highest first, capped at limit. A zero
	// since time means all of history.
	NetSubScores(ctx context.Context, since time.Time, limit int) ([]CollectionScore, error)
}

// TagRepository exposes the controlled tag vocabulary.
type TagRepository interface {
	FindAll(ctx context.Context) ([]Tag, error)
	Exists(ctx context.Context, slug string) (bool, error)
}

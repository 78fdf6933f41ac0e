package workshop

import (
	"context"
	"time"
)

// CollectionDocument is the denormalized view of a collection mirrored into
// the search index after every collection mutation.
type CollectionDocument struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	Description         string           `json:"description"`
	Tags                []string         `json:"tags"`
	State               PublicationState `json:"publish_state"`
	NumSubscribers      int              `json:"num_subscribers"`
	NumGuildSubscribers int              `json:"num_guild_subscribers"`
	CreatedAt           time.Time        `json:"created_at"`
	LastEdited          time.Time        `json:"last_edited"`
}

// DocumentFromCollection builds the index document for a collection.
func DocumentFromCollection(c *Collection) CollectionDocument {
	return CollectionDocument{
		ID:                  c.ID(),
		Name:                c.Name(),
		Description:         c.Description(),
		Tags:                c.Tags(),
		State:               c.State(),
		NumSubscribers:      c.NumSubscribers(),
		NumGuildSubscribers: c.NumGuildSubscribers(),
		CreatedAt:           c.CreatedAt(),
		LastEdited:          c.LastEdited(),
	}
}

// SearchSort orders a direct index query.
type SearchSort string

const (
	SortRelevance SearchSort = "relevance"
	SortNewest    SearchSort = "newest"
	SortEditTime  SearchSort = "edittime"
	SortGuildSubs SearchSort = "guild_subscribers"
)

// SearchQuery is a filtered, sorted, paginated query against the index.
// Text is an optional free-text query; Tags use AND semantics. Only
// PUBLISHED documents are ever returned.
type SearchQuery struct {
	Text   string
	Tags   []string
	Sort   SearchSort
	Limit  int
	Offset int
}

// CollectionIndex mirrors collection documents for the explore pipeline.
// Writes are fire-and-forget relative to the storage backend, so readers
// must tolerate stale or momentarily absent documents.
type CollectionIndex interface {
	Index(ctx context.Context, doc CollectionDocument) error
	Delete(ctx context.Context, id string) error

	// Search returns matching collection IDs in query order.
	Search(ctx context.Context, query SearchQuery) ([]string, error)

	// FilterCandidates keeps only the candidate IDs that match the text and
	// tag criteria among PUBLISHED documents, preserving input order.
	FilterCandidates(ctx context.Context, ids []string, text string, tags []string) ([]string, error)
}

// PopularityCache caches per-window net popularity scores. Staleness up to
// the configured TTL is accepted.
type PopularityCache interface {
	Get(ctx context.Context, order ExploreOrder) ([]CollectionScore, bool, error)
	Set(ctx context.Context, order ExploreOrder, scores []CollectionScore) error
}

// ReservedCommandSource exposes the built-in command-name set that root
// alias names and alias bindings must not shadow.
type ReservedCommandSource interface {
	ReservedNames(ctx context.Context) (ReservedNames, error)
}

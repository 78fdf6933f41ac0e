// Package dto defines the transport-facing shapes of workshop data.
package dto

import (
	"time"

	"github.com/vellum-app/vellum/internal/domain/workshop"
)

// CollectionDTO is the public view of a collection.
type CollectionDTO struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	Image               string    `json:"image,omitempty"`
	Owner               string    `json:"owner"`
	AliasIDs            []string  `json:"alias_ids"`
	SnippetIDs          []string  `json:"snippet_ids"`
	Tags                []string  `json:"tags"`
	PublishState        string    `json:"publish_state"`
	NumSubscribers      int       `json:"num_subscribers"`
	NumGuildSubscribers int       `json:"num_guild_subscribers"`
	CreatedAt           time.Time `json:"created_at"`
	LastEdited          time.Time `json:"last_edited"`
}

// CollectionFullDTO is a collection with its full alias and snippet trees
// attached, used by the bot to hydrate everything in one request.
type CollectionFullDTO struct {
	CollectionDTO
	Aliases  []*AliasDTO   `json:"aliases"`
	Snippets []*SnippetDTO `json:"snippets"`
}

// ToCollectionDTO converts a domain collection to its DTO.
func ToCollectionDTO(c *workshop.Collection) *CollectionDTO {
	return &CollectionDTO{
		ID:                  c.ID(),
		Name:                c.Name(),
		Description:         c.Description(),
		Image:               c.Image(),
		Owner:               formatSnowflake(c.Owner()),
		AliasIDs:            c.AliasIDs(),
		SnippetIDs:          c.SnippetIDs(),
		Tags:                c.Tags(),
		PublishState:        c.State().String(),
		NumSubscribers:      c.NumSubscribers(),
		NumGuildSubscribers: c.NumGuildSubscribers(),
		CreatedAt:           c.CreatedAt(),
		LastEdited:          c.LastEdited(),
	}
}

// ToCollectionDTOs converts a slice of domain collections.
func ToCollectionDTOs(collections []*workshop.Collection) []*CollectionDTO {
	out := make([]*CollectionDTO, 0, len(collections))
	for _, c := range collections {
		out = append(out, ToCollectionDTO(c))
	}
	return out
}

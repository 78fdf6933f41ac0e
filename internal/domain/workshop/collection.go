package workshop

import (
	"fmt"
	"time"

	"github.com/vellum-app/vellum/internal/shared/errors"
	"github.com/vellum-app/vellum/internal/shared/id"
)

// Collection is the aggregate root of a shareable unit of scripted content.
// It owns its root alias and snippet ID lists; the actual alias/snippet
// documents, subscriptions and editor grants live in their own repositories.
type Collection struct {
	id                  string
	name                string
	description         string
	image               string
	owner               int64
	aliasIDs            []string
	snippetIDs          []string
	tags                []string
	state               PublicationState
	numSubscribers      int
	numGuildSubscribers int
	createdAt           time.Time
	lastEdited          time.Time
}

// NewCollection creates an empty private collection owned by the given user.
func NewCollection(name, description, image string, owner int64) (*Collection, error) {
	if name == "" {
		return nil, errors.NewValidationError("name is required")
	}
	if description == "" {
		return nil, errors.NewValidationError("description is required")
	}
	if owner == 0 {
		return nil, fmt.Errorf("owner is required")
	}

	now := time.Now().UTC()
	return &Collection{
		id:          id.NewCollectionID(),
		name:        name,
		description: description,
		image:       image,
		owner:       owner,
		state:       StatePrivate,
		createdAt:   now,
		lastEdited:  now,
	}, nil
}

// ReconstructCollection rebuilds a collection from persistence.
func ReconstructCollection(
	collectionID, name, description, image string,
	owner int64,
	aliasIDs, snippetIDs, tags []string,
	state PublicationState,
	numSubscribers, numGuildSubscribers int,
	createdAt, lastEdited time.Time,
) (*Collection, error) {
	if collectionID == "" {
		return nil, fmt.Errorf("collection ID is required")
	}
	if !ValidPublicationStates[state] {
		return nil, fmt.Errorf("invalid publication state: %s", state)
	}

	return &Collection{
		id:                  collectionID,
		name:                name,
		description:         description,
		image:               image,
		owner:               owner,
		aliasIDs:            aliasIDs,
		snippetIDs:          snippetIDs,
		tags:                tags,
		state:               state,
		numSubscribers:      numSubscribers,
		numGuildSubscribers: numGuildSubscribers,
		createdAt:           createdAt,
		lastEdited:          lastEdited,
	}, nil
}

// ID returns the collection's prefixed short ID.
func (c *Collection) ID() string {
	return c.id
}

// Name returns the collection name.
func (c *Collection) Name() string {
	return c.name
}

// Description returns the collection description.
func (c *Collection) Description() string {
	return c.description
}

// Image returns the optional image URL.
func (c *Collection) Image() string {
	return c.image
}

// Owner returns the owning user's Discord snowflake.
func (c *Collection) Owner() int64 {
	return c.owner
}

// AliasIDs returns a copy of the root alias ID list.
func (c *Collection) AliasIDs() []string {
	out := make([]string, len(c.aliasIDs))
	copy(out, c.aliasIDs)
	return out
}

// SnippetIDs returns a copy of the snippet ID list.
func (c *Collection) SnippetIDs() []string {
	out := make([]string, len(c.snippetIDs))
	copy(out, c.snippetIDs)
	return out
}

// Tags returns a copy of the tag slug list.
func (c *Collection) Tags() []string {
	out := make([]string, len(c.tags))
	copy(out, c.tags)
	return out
}

// State returns the publication state.
func (c *Collection) State() PublicationState {
	return c.state
}

// NumSubscribers returns the approximate personal subscriber count.
func (c *Collection) NumSubscribers() int {
	return c.numSubscribers
}

// NumGuildSubscribers returns the approximate guild activation count.
func (c *Collection) NumGuildSubscribers() int {
	return c.numGuildSubscribers
}

// CreatedAt returns when the collection was created.
func (c *Collection) CreatedAt() time.Time {
	return c.createdAt
}

// LastEdited returns when the collection or any descendant was last edited.
func (c *Collection) LastEdited() time.Time {
	return c.lastEdited
}

// IsOwner reports whether the given user owns this collection.
func (c *Collection) IsOwner(userID int64) bool {
	return c.owner == userID
}

// Touch bumps the last-edited timestamp. Called for descendant mutations that
// do not change the collection document itself.
func (c *Collection) Touch() {
	c.lastEdited = time.Now().UTC()
}

// UpdateInfo replaces the name, description and image URL.
func (c *Collection) UpdateInfo(name, description, image string) error {
	if name == "" {
		return errors.NewValidationError("name is required")
	}
	if description == "" {
		return errors.NewValidationError("description is required")
	}
	c.name = name
	c.description = description
	c.image = image
	c.Touch()
	return nil
}

// SetState transitions the publication state. With runChecks set (the normal
// owner path) leaving PUBLISHED is forbidden and entering PUBLISHED requires
// a name, a description and at least one alias or snippet. Moderators pass
// runChecks=false and may perform any transition.
func (c *Collection) SetState(newState PublicationState, runChecks bool) error {
	if !ValidPublicationStates[newState] {
		return errors.NewValidationError(newState.String() + " is not a valid publication state")
	}
	if newState == c.state {
		return nil
	}

	if runChecks {
		if c.state == StatePublished {
			return errors.NewForbiddenError("you cannot unpublish a collection after it has been published")
		}
		if newState == StatePublished {
			if c.name == "" {
				return errors.NewValidationError("a collection must have a name to be published")
			}
			if c.description == "" {
				return errors.NewValidationError("a collection must have a description to be published")
			}
			if len(c.aliasIDs)+len(c.snippetIDs) == 0 {
				return errors.NewValidationError("a collection must have at least one alias or snippet to be published")
			}
		}
	}

	c.state = newState
	c.Touch()
	return nil
}

// AddTag appends a tag slug. Adding a tag that is already present is a
// no-op; vocabulary membership is checked by the caller.
func (c *Collection) AddTag(tag string) {
	for _, t := range c.tags {
		if t == tag {
			return
		}
	}
	c.tags = append(c.tags, tag)
	c.Touch()
}

// RemoveTag removes a tag slug if present.
func (c *Collection) RemoveTag(tag string) {
	for i, t := range c.tags {
		if t == tag {
			c.tags = append(c.tags[:i], c.tags[i+1:]...)
			c.Touch()
			return
		}
	}
}

// AttachAlias appends a root alias ID.
func (c *Collection) AttachAlias(aliasID string) {
	for _, existing := range c.aliasIDs {
		if existing == aliasID {
			return
		}
	}
	c.aliasIDs = append(c.aliasIDs, aliasID)
	c.Touch()
}

// DetachAlias removes a root alias ID.
func (c *Collection) DetachAlias(aliasID string) {
	for i, existing := range c.aliasIDs {
		if existing == aliasID {
			c.aliasIDs = append(c.aliasIDs[:i], c.aliasIDs[i+1:]...)
			c.Touch()
			return
		}
	}
}

// AttachSnippet appends a snippet ID.
func (c *Collection) AttachSnippet(snippetID string) {
	for _, existing := range c.snippetIDs {
		if existing == snippetID {
			return
		}
	}
	c.snippetIDs = append(c.snippetIDs, snippetID)
	c.Touch()
}

// DetachSnippet removes a snippet ID.
func (c *Collection) DetachSnippet(snippetID string) {
	for i, existing := range c.snippetIDs {
		if existing == snippetID {
			c.snippetIDs = append(c.snippetIDs[:i], c.snippetIDs[i+1:]...)
			c.Touch()
			return
		}
	}
}

// CanDelete reports whether the owner may delete the collection. Published
// collections are protected from owner deletion; moderators bypass this.
func (c *Collection) CanDelete(runChecks bool) error {
	if runChecks && c.state == StatePublished {
		return errors.NewForbiddenError("you cannot delete a collection after it has been published")
	}
	return nil
}

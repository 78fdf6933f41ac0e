package workshop

import (
	"strings"
	"time"

	"github.com/vellum-app/vellum/internal/shared/errors"
)

// Collectable holds the state shared by aliases and snippets: a name, docs,
// the denormalized active code string, the version history and the
// entitlement gates. It is embedded, never used on its own.
type Collectable struct {
	id           string
	name         string
	docs         string
	code         string
	versions     []CodeVersion
	entitlements []RequiredEntitlement
}

// ID returns the collectable's prefixed short ID.
func (c *Collectable) ID() string {
	return c.id
}

// Name returns the default invocation name.
func (c *Collectable) Name() string {
	return c.name
}

// Docs returns the free-text documentation.
func (c *Collectable) Docs() string {
	return c.docs
}

// Code returns the denormalized content of the current code version, or the
// placeholder stub if no version has been activated yet.
func (c *Collectable) Code() string {
	return c.code
}

// CodeVersions returns a copy of the version history, oldest first.
func (c *Collectable) CodeVersions() []CodeVersion {
	out := make([]CodeVersion, len(c.versions))
	copy(out, c.versions)
	return out
}

// Entitlements returns a copy of the entitlement list.
func (c *Collectable) Entitlements() []RequiredEntitlement {
	out := make([]RequiredEntitlement, len(c.entitlements))
	copy(out, c.entitlements)
	return out
}

// CodeVersion returns the version with the given number.
func (c *Collectable) CodeVersion(version int) (CodeVersion, error) {
	for _, v := range c.versions {
		if v.Version == version {
			return v, nil
		}
	}
	return CodeVersion{}, ErrCodeVersionNotFound
}

// NewCodeVersion appends a new, not-yet-current code version. Version numbers
// are assigned as max(existing)+1 and never reused.
func (c *Collectable) NewCodeVersion(content string, sizeLimit int) (CodeVersion, error) {
	if len(content) > sizeLimit {
		return CodeVersion{}, ErrContentTooLarge(sizeLimit)
	}

	next := 0
	for _, v := range c.versions {
		if v.Version > next {
			next = v.Version
		}
	}
	cv := CodeVersion{
		Version:   next + 1,
		Content:   content,
		CreatedAt: time.Now().UTC(),
		IsCurrent: false,
	}
	c.versions = append(c.versions, cv)
	return cv, nil
}

// SetActiveCodeVersion marks exactly one version as current and copies its
// content into the denormalized code field.
func (c *Collectable) SetActiveCodeVersion(version int) (CodeVersion, error) {
	found := -1
	for i, v := range c.versions {
		if v.Version == version {
			found = i
			break
		}
	}
	if found < 0 {
		return CodeVersion{}, ErrCodeVersionNotFound
	}

	for i := range c.versions {
		c.versions[i].IsCurrent = i == found
	}
	c.code = c.versions[found].Content
	return c.versions[found], nil
}

// AddEntitlement attaches an entitlement gate for a compendium entity. Free
// entities cannot gate anything, and at most one entitlement may exist per
// (type, id) pair.
func (c *Collectable) AddEntitlement(entityType string, entityID int64, isFree, required bool) error {
	if isFree {
		return errors.NewValidationError("cannot add an entitlement for a free entity")
	}
	for _, e := range c.entitlements {
		if e.EntityType == entityType && e.EntityID == entityID {
			return errors.NewConflictError("entitlement already exists")
		}
	}
	c.entitlements = append(c.entitlements, RequiredEntitlement{
		EntityType: entityType,
		EntityID:   entityID,
		Required:   required,
	})
	return nil
}

// RemoveEntitlement detaches an entitlement gate. Moderator-required gates
// can only be removed when ignoreRequired is set.
func (c *Collectable) RemoveEntitlement(entityType string, entityID int64, ignoreRequired bool) error {
	for i, e := range c.entitlements {
		if e.EntityType == entityType && e.EntityID == entityID {
			if e.Required && !ignoreRequired {
				return errors.NewForbiddenError("cannot remove a required entitlement")
			}
			c.entitlements = append(c.entitlements[:i], c.entitlements[i+1:]...)
			return nil
		}
	}
	return errors.NewConflictError("this collectable does not require this entitlement")
}

func (c *Collectable) updateInfo(name, docs string) {
	c.name = name
	c.docs = docs
}

// ValidateName enforces the name rules shared by aliases and snippets.
func ValidateName(name string) error {
	if name == "" {
		return errors.NewValidationError("name is required")
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong()
	}
	if strings.ContainsAny(name, " \t\n") {
		return errors.NewValidationError("name cannot contain whitespace")
	}
	return nil
}

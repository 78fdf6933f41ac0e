package workshop

import (
	"fmt"

	"github.com/vellum-app/vellum/internal/shared/errors"
	"github.com/vellum-app/vellum/internal/shared/id"
)

// Snippet is a short argument fragment appended to another command's
// invocation. Snippets never nest.
type Snippet struct {
	Collectable
	collectionID string
}

// NewSnippet creates a snippet with the safe stub code and no code versions.
func NewSnippet(collectionID, name, docs string) (*Snippet, error) {
	if collectionID == "" {
		return nil, fmt.Errorf("collection ID is required")
	}
	if err := ValidateSnippetName(name); err != nil {
		return nil, err
	}

	return &Snippet{
		Collectable: Collectable{
			id:   id.NewSnippetID(),
			name: name,
			docs: docs,
			code: SnippetStubCode(name),
		},
		collectionID: collectionID,
	}, nil
}

// ReconstructSnippet rebuilds a snippet from persistence.
func ReconstructSnippet(
	snippetID, collectionID, name, docs, code string,
	versions []CodeVersion,
	entitlements []RequiredEntitlement,
) (*Snippet, error) {
	if snippetID == "" {
		return nil, fmt.Errorf("snippet ID is required")
	}
	if collectionID == "" {
		return nil, fmt.Errorf("collection ID is required")
	}

	return &Snippet{
		Collectable: Collectable{
			id:           snippetID,
			name:         name,
			docs:         docs,
			code:         code,
			versions:     versions,
			entitlements: entitlements,
		},
		collectionID: collectionID,
	}, nil
}

// CollectionID returns the owning collection's ID.
func (s *Snippet) CollectionID() string {
	return s.collectionID
}

// UpdateInfo renames the snippet and replaces its docs.
func (s *Snippet) UpdateInfo(name, docs string) error {
	if err := ValidateSnippetName(name); err != nil {
		return err
	}
	s.updateInfo(name, docs)
	return nil
}

// ValidateSnippetName enforces the snippet naming rules.
func ValidateSnippetName(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if len(name) < MinSnippetNameLength {
		return errors.NewValidationError(fmt.Sprintf("snippet names must be at least %d characters", MinSnippetNameLength))
	}
	return nil
}

package usecases

import (
	"context"
	"fmt"

	"github.com/vellum-app/vellum/internal/domain/workshop"
)

// CollectableKind discriminates alias and snippet paths through the shared
// code version and entitlement use cases.
type CollectableKind string

const (
	CollectableAlias   CollectableKind = "alias"
	CollectableSnippet CollectableKind = "snippet"
)

// collectable is the slice of behavior shared by *workshop.Alias and
// *workshop.Snippet that the shared use cases need.
type collectable interface {
	ID() string
	Name() string
	Code() string
	CollectionID() string
	CodeVersions() []workshop.CodeVersion
	Entitlements() []workshop.RequiredEntitlement
	CodeVersion(version int) (workshop.CodeVersion, error)
	NewCodeVersion(content string, sizeLimit int) (workshop.CodeVersion, error)
	SetActiveCodeVersion(version int) (workshop.CodeVersion, error)
	AddEntitlement(entityType string, entityID int64, isFree, required bool) error
	RemoveEntitlement(entityType string, entityID int64, ignoreRequired bool) error
}

// collectableStore loads and saves either kind through its own repository.
type collectableStore struct {
	aliasRepo   workshop.AliasRepository
	snippetRepo workshop.SnippetRepository
}

func (s *collectableStore) load(ctx context.Context, kind CollectableKind, id string) (collectable, error) {
	switch kind {
	case CollectableAlias:
		return s.aliasRepo.FindByID(ctx, id)
	case CollectableSnippet:
		return s.snippetRepo.FindByID(ctx, id)
	default:
		return nil, fmt.Errorf("unknown collectable kind: %s", kind)
	}
}

func (s *collectableStore) save(ctx context.Context, c collectable) error {
	switch v := c.(type) {
	case *workshop.Alias:
		return s.aliasRepo.Update(ctx, v)
	case *workshop.Snippet:
		return s.snippetRepo.Update(ctx, v)
	default:
		return fmt.Errorf("unknown collectable type %T", c)
	}
}

func (s *collectableStore) sizeLimit(kind CollectableKind, aliasLimit, snippetLimit int) int {
	if kind == CollectableSnippet {
		return snippetLimit
	}
	return aliasLimit
}

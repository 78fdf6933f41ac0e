package usecases

import (
	"context"
	"fmt"

	"github.com/vellum-app/vellum/internal/application/workshop/dto"
	"github.com/vellum-app/vellum/internal/domain/gamedata"
	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

type AddEntitlementCommand struct {
	Kind       CollectableKind
	ID         string
	EntityType string
	EntityID   int64
	// Required marks the gate moderator-enforced; only moderator routes set it.
	Required bool
}

type AddEntitlementUseCase struct {
	collectionRepo workshop.CollectionRepository
	store          *collectableStore
	subRepo        workshop.SubscriptionRepository
	compendium     *gamedata.Compendium
	logger         logger.Interface
}

func NewAddEntitlementUseCase(
	collectionRepo workshop.CollectionRepository,
	aliasRepo workshop.AliasRepository,
	snippetRepo workshop.SnippetRepository,
	subRepo workshop.SubscriptionRepository,
	compendium *gamedata.Compendium,
	logger logger.Interface,
) *AddEntitlementUseCase {
	return &AddEntitlementUseCase{
		collectionRepo: collectionRepo,
		store:          &collectableStore{aliasRepo: aliasRepo, snippetRepo: snippetRepo},
		subRepo:        subRepo,
		compendium:     compendium,
		logger:         logger,
	}
}

// Execute attaches an entitlement gate. The entity must exist in the
// compendium and must not be free content.
func (uc *AddEntitlementUseCase) Execute(ctx context.Context, cmd AddEntitlementCommand, actor Actor) error {
	c, err := uc.store.load(ctx, cmd.Kind, cmd.ID)
	if err != nil {
		return err
	}

	collection, err := uc.collectionRepo.FindByID(ctx, c.CollectionID())
	if err != nil {
		return err
	}
	if !actor.Moderator {
		if err := requireEditCollection(ctx, uc.subRepo, collection, actor); err != nil {
			return err
		}
	}

	entity, err := uc.compendium.Lookup(cmd.EntityType, cmd.EntityID)
	if err != nil {
		return err
	}

	if err := c.AddEntitlement(entity.Type, entity.ID, entity.IsFree, cmd.Required); err != nil {
		return err
	}

	if err := uc.store.save(ctx, c); err != nil {
		return fmt.Errorf("failed to persist entitlement: %w", err)
	}

	uc.logger.Infow("entitlement added",
		"kind", cmd.Kind,
		"id", cmd.ID,
		"entity_type", cmd.EntityType,
		"entity_id", cmd.EntityID,
		"required", cmd.Required)
	return nil
}

type RemoveEntitlementCommand struct {
	Kind       CollectableKind
	ID         string
	EntityType string
	EntityID   int64
	// IgnoreRequired lets moderators strip moderator-enforced gates.
	IgnoreRequired bool
}

type RemoveEntitlementUseCase struct {
	collectionRepo workshop.CollectionRepository
	store          *collectableStore
	subRepo        workshop.SubscriptionRepository
	logger         logger.Interface
}

func NewRemoveEntitlementUseCase(
	collectionRepo workshop.CollectionRepository,
	aliasRepo workshop.AliasRepository,
	snippetRepo workshop.SnippetRepository,
	subRepo workshop.SubscriptionRepository,
	logger logger.Interface,
) *RemoveEntitlementUseCase {
	return &RemoveEntitlementUseCase{
		collectionRepo: collectionRepo,
		store:          &collectableStore{aliasRepo: aliasRepo, snippetRepo: snippetRepo},
		subRepo:        subRepo,
		logger:         logger,
	}
}

func (uc *RemoveEntitlementUseCase) Execute(ctx context.Context, cmd RemoveEntitlementCommand, actor Actor) error {
	c, err := uc.store.load(ctx, cmd.Kind, cmd.ID)
	if err != nil {
		return err
	}

	collection, err := uc.collectionRepo.FindByID(ctx, c.CollectionID())
	if err != nil {
		return err
	}
	if !actor.Moderator {
		if err := requireEditCollection(ctx, uc.subRepo, collection, actor); err != nil {
			return err
		}
	}

	if err := c.RemoveEntitlement(cmd.EntityType, cmd.EntityID, cmd.IgnoreRequired); err != nil {
		return err
	}

	if err := uc.store.save(ctx, c); err != nil {
		return fmt.Errorf("failed to persist entitlement removal: %w", err)
	}

	uc.logger.Infow("entitlement removed",
		"kind", cmd.Kind,
		"id", cmd.ID,
		"entity_type", cmd.EntityType,
		"entity_id", cmd.EntityID)
	return nil
}

// ListEntitlementsUseCase returns the gates on a collectable.
type ListEntitlementsUseCase struct {
	collectionRepo workshop.CollectionRepository
	store          *collectableStore
	subRepo        workshop.SubscriptionRepository
	logger         logger.Interface
}

func NewListEntitlementsUseCase(
	collectionRepo workshop.CollectionRepository,
	aliasRepo workshop.AliasRepository,
	snippetRepo workshop.SnippetRepository,
	subRepo workshop.SubscriptionRepository,
	logger logger.Interface,
) *ListEntitlementsUseCase {
	return &ListEntitlementsUseCase{
		collectionRepo: collectionRepo,
		store:          &collectableStore{aliasRepo: aliasRepo, snippetRepo: snippetRepo},
		subRepo:        subRepo,
		logger:         logger,
	}
}

func (uc *ListEntitlementsUseCase) Execute(ctx context.Context, kind CollectableKind, id string, actor Actor) ([]dto.EntitlementDTO, error) {
	c, err := uc.store.load(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	collection, err := uc.collectionRepo.FindByID(ctx, c.CollectionID())
	if err != nil {
		return nil, err
	}
	if err := requireViewCollection(ctx, uc.subRepo, collection, actor); err != nil {
		return nil, err
	}

	entitlements := c.Entitlements()
	out := make([]dto.EntitlementDTO, 0, len(entitlements))
	for _, e := range entitlements {
		out = append(out, dto.EntitlementDTO{
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Required:   e.Required,
		})
	}
	return out, nil
}

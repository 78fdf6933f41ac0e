package usecases

import (
	"context"
	"fmt"

	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

// The list endpoints return collection id lists; clients hydrate the ones
// they care about through the batch endpoint.

type ListOwnedCollectionsUseCase struct {
	collectionRepo workshop.CollectionRepository
	logger         logger.Interface
}

func NewListOwnedCollectionsUseCase(collectionRepo workshop.CollectionRepository, logger logger.Interface) *ListOwnedCollectionsUseCase {
	return &ListOwnedCollectionsUseCase{collectionRepo: collectionRepo, logger: logger}
}

func (uc *ListOwnedCollectionsUseCase) Execute(ctx context.Context, userID int64) ([]string, error) {
	collections, err := uc.collectionRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load owned collections: %w", err)
	}

	out := make([]string, 0, len(collections))
	for _, c := range collections {
		out = append(out, c.ID())
	}
	return out, nil
}

type ListEditableCollectionsUseCase struct {
	subRepo workshop.SubscriptionRepository
	logger  logger.Interface
}

func NewListEditableCollectionsUseCase(subRepo workshop.SubscriptionRepository, logger logger.Interface) *ListEditableCollectionsUseCase {
	return &ListEditableCollectionsUseCase{subRepo: subRepo, logger: logger}
}

func (uc *ListEditableCollectionsUseCase) Execute(ctx context.Context, userID int64) ([]string, error) {
	return subscribedObjectIDs(ctx, uc.subRepo, workshop.SubscriptionTypeEditor, userID)
}

type ListSubscribedCollectionsUseCase struct {
	subRepo workshop.SubscriptionRepository
	logger  logger.Interface
}

func NewListSubscribedCollectionsUseCase(subRepo workshop.SubscriptionRepository, logger logger.Interface) *ListSubscribedCollectionsUseCase {
	return &ListSubscribedCollectionsUseCase{subRepo: subRepo, logger: logger}
}

func (uc *ListSubscribedCollectionsUseCase) Execute(ctx context.Context, userID int64) ([]string, error) {
	return subscribedObjectIDs(ctx, uc.subRepo, workshop.SubscriptionTypeSubscribe, userID)
}

type ListGuildCollectionsUseCase struct {
	subRepo workshop.SubscriptionRepository
	logger  logger.Interface
}

func NewListGuildCollectionsUseCase(subRepo workshop.SubscriptionRepository, logger logger.Interface) *ListGuildCollectionsUseCase {
	return &ListGuildCollectionsUseCase{subRepo: subRepo, logger: logger}
}

// Execute lists the collections a guild has set server-active.
func (uc *ListGuildCollectionsUseCase) Execute(ctx context.Context, guildID int64) ([]string, error) {
	return subscribedObjectIDs(ctx, uc.subRepo, workshop.SubscriptionTypeServerActive, guildID)
}

func subscribedObjectIDs(ctx context.Context, subRepo workshop.SubscriptionRepository, typ workshop.SubscriptionType, subscriberID int64) ([]string, error) {
	records, err := subRepo.FindBySubscriber(ctx, typ, subscriberID)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s records: %w", typ, err)
	}

	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ObjectID)
	}
	return out, nil
}

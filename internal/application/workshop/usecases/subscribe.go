package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/vellum-app/vellum/internal/application/workshop/dto"
	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/errors"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

type SubscribeCommand struct {
	CollectionID string
	// Bindings are optional; nil means "use every member's default name".
	AliasBindings   []dto.BindingDTO
	SnippetBindings []dto.BindingDTO
}

type SubscribeUseCase struct {
	collectionRepo workshop.CollectionRepository
	aliasRepo      workshop.AliasRepository
	snippetRepo    workshop.SnippetRepository
	subRepo        workshop.SubscriptionRepository
	eventRepo      workshop.AliasEventRepository
	reserved       workshop.ReservedCommandSource
	index          workshop.CollectionIndex
	logger         logger.Interface
}

func NewSubscribeUseCase(
	collectionRepo workshop.CollectionRepository,
	aliasRepo workshop.AliasRepository,
	snippetRepo workshop.SnippetRepository,
	subRepo workshop.SubscriptionRepository,
	eventRepo workshop.AliasEventRepository,
	reserved workshop.ReservedCommandSource,
	index workshop.CollectionIndex,
	logger logger.Interface,
) *SubscribeUseCase {
	return &SubscribeUseCase{
		collectionRepo: collectionRepo,
		aliasRepo:      aliasRepo,
		snippetRepo:    snippetRepo,
		subRepo:        subRepo,
		eventRepo:      eventRepo,
		reserved:       reserved,
		index:          index,
		logger:         logger,
	}
}

// Execute subscribes a user to a collection. Re-subscribing replaces the
// bindings without bumping the counter or logging another event.
func (uc *SubscribeUseCase) Execute(ctx context.Context, cmd SubscribeCommand, actor Actor) (*dto.SubscriptionDTO, error) {
	collection, err := uc.collectionRepo.FindByID(ctx, cmd.CollectionID)
	if err != nil {
		return nil, err
	}

	if err := requireViewCollection(ctx, uc.subRepo, collection, actor); err != nil {
		return nil, err
	}

	aliasBindings, snippetBindings, err := uc.reconcile(ctx, collection, cmd.AliasBindings, cmd.SnippetBindings)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sub := &workshop.Subscription{
		Type:            workshop.SubscriptionTypeSubscribe,
		SubscriberID:    actor.UserID,
		ObjectID:        cmd.CollectionID,
		AliasBindings:   aliasBindings,
		SnippetBindings: snippetBindings,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := uc.subRepo.Upsert(ctx, sub)
	if err != nil {
		uc.logger.Errorw("failed to upsert subscription", "error", err, "collection_id", cmd.CollectionID)
		return nil, fmt.Errorf("failed to upsert subscription: %w", err)
	}

	if created {
		if err := uc.collectionRepo.AdjustSubscriberCount(ctx, cmd.CollectionID, 1); err != nil {
			uc.logger.Errorw("failed to bump subscriber count", "error", err, "collection_id", cmd.CollectionID)
		}
		uc.appendEvent(ctx, workshop.EventSubscribe, cmd.CollectionID, actor.UserID)
		uc.remirror(ctx, cmd.CollectionID)
	}

	uc.logger.Infow("user subscribed",
		"collection_id", cmd.CollectionID,
		"user", actor.UserID,
		"created", created)
	return dto.ToSubscriptionDTO(sub), nil
}

func (uc *SubscribeUseCase) reconcile(ctx context.Context, collection *workshop.Collection, aliasProposal, snippetProposal []dto.BindingDTO) ([]workshop.Binding, []workshop.Binding, error) {
	aliases, err := uc.aliasRepo.FindByIDs(ctx, collection.AliasIDs())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load collection aliases: %w", err)
	}
	snippets, err := uc.snippetRepo.FindByIDs(ctx, collection.SnippetIDs())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load collection snippets: %w", err)
	}

	reserved, err := uc.reserved.ReservedNames(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load reserved command names: %w", err)
	}

	aliasMembers := make([]workshop.BindingTarget, 0, len(aliases))
	for _, a := range aliases {
		aliasMembers = append(aliasMembers, workshop.BindingTarget{ID: a.ID(), Name: a.Name()})
	}
	snippetMembers := make([]workshop.BindingTarget, 0, len(snippets))
	for _, s := range snippets {
		snippetMembers = append(snippetMembers, workshop.BindingTarget{ID: s.ID(), Name: s.Name()})
	}

	aliasBindings, err := workshop.ReconcileBindings(aliasMembers, dto.FromBindingDTOs(aliasProposal), workshop.BindingKindAlias, reserved)
	if err != nil {
		return nil, nil, err
	}
	snippetBindings, err := workshop.ReconcileBindings(snippetMembers, dto.FromBindingDTOs(snippetProposal), workshop.BindingKindSnippet, reserved)
	if err != nil {
		return nil, nil, err
	}
	return aliasBindings, snippetBindings, nil
}

func (uc *SubscribeUseCase) appendEvent(ctx context.Context, eventType, collectionID string, userID int64) {
	err := uc.eventRepo.Append(ctx, workshop.AliasEvent{
		Type:      eventType,
		ObjectID:  collectionID,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		uc.logger.Warnw("failed to append alias event", "error", err, "type", eventType, "collection_id", collectionID)
	}
}

func (uc *SubscribeUseCase) remirror(ctx context.Context, collectionID string) {
	collection, err := uc.collectionRepo.FindByID(ctx, collectionID)
	if err != nil {
		return
	}
	mirrorCollection(uc.logger, uc.index, collection)
}

type UnsubscribeUseCase struct {
	collectionRepo workshop.CollectionRepository
	subRepo        workshop.SubscriptionRepository
	eventRepo      workshop.AliasEventRepository
	logger         logger.Interface
}

func NewUnsubscribeUseCase(
	collectionRepo workshop.CollectionRepository,
	subRepo workshop.SubscriptionRepository,
	eventRepo workshop.AliasEventRepository,
	logger logger.Interface,
) *UnsubscribeUseCase {
	return &UnsubscribeUseCase{
		collectionRepo: collectionRepo,
		subRepo:        subRepo,
		eventRepo:      eventRepo,
		logger:         logger,
	}
}

func (uc *UnsubscribeUseCase) Execute(ctx context.Context, collectionID string, actor Actor) error {
	if _, err := uc.subRepo.Find(ctx, workshop.SubscriptionTypeSubscribe, actor.UserID, collectionID); err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewConflictError("you are not subscribed to this collection")
		}
		return err
	}

	if err := uc.subRepo.Delete(ctx, workshop.SubscriptionTypeSubscribe, actor.UserID, collectionID); err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	if err := uc.collectionRepo.AdjustSubscriberCount(ctx, collectionID, -1); err != nil {
		uc.logger.Errorw("failed to drop subscriber count", "error", err, "collection_id", collectionID)
	}

	err := uc.eventRepo.Append(ctx, workshop.AliasEvent{
		Type:      workshop.EventUnsubscribe,
		ObjectID:  collectionID,
		UserID:    actor.UserID,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		uc.logger.Warnw("failed to append alias event", "error", err, "collection_id", collectionID)
	}

	uc.logger.Infow("user unsubscribed", "collection_id", collectionID, "user", actor.UserID)
	return nil
}

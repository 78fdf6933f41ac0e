package usecases

import (
	"context"
	"fmt"

	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/errors"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

type DeleteCollectionUseCase struct {
	collectionRepo workshop.CollectionRepository
	aliasRepo      workshop.AliasRepository
	snippetRepo    workshop.SnippetRepository
	subRepo        workshop.SubscriptionRepository
	index          workshop.CollectionIndex
	logger         logger.Interface
}

func NewDeleteCollectionUseCase(
	collectionRepo workshop.CollectionRepository,
	aliasRepo workshop.AliasRepository,
	snippetRepo workshop.SnippetRepository,
	subRepo workshop.SubscriptionRepository,
	index workshop.CollectionIndex,
	logger logger.Interface,
) *DeleteCollectionUseCase {
	return &DeleteCollectionUseCase{
		collectionRepo: collectionRepo,
		aliasRepo:      aliasRepo,
		snippetRepo:    snippetRepo,
		subRepo:        subRepo,
		index:          index,
		logger:         logger,
	}
}

// Execute deletes a collection and everything hanging off it: aliases,
// snippets, ledger records and the index document. Owners cannot delete
// published collections; moderators can.
func (uc *DeleteCollectionUseCase) Execute(ctx context.Context, collectionID string, actor Actor) error {
	collection, err := uc.collectionRepo.FindByID(ctx, collectionID)
	if err != nil {
		return err
	}

	if !actor.Moderator && !collection.IsOwner(actor.UserID) {
		return errors.NewForbiddenError("you do not have permission to delete this collection")
	}

	if err := collection.CanDelete(!actor.Moderator); err != nil {
		return err
	}

	if err := uc.aliasRepo.DeleteByCollection(ctx, collectionID); err != nil {
		return fmt.Errorf("failed to delete collection aliases: %w", err)
	}
	if err := uc.snippetRepo.DeleteByCollection(ctx, collectionID); err != nil {
		return fmt.Errorf("failed to delete collection snippets: %w", err)
	}
	if err := uc.subRepo.DeleteByObject(ctx, collectionID); err != nil {
		return fmt.Errorf("failed to delete collection subscriptions: %w", err)
	}
	if err := uc.collectionRepo.Delete(ctx, collectionID); err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}

	mirrorDelete(uc.logger, uc.index, collectionID)

	uc.logger.Infow("collection deleted",
		"collection_id", collectionID,
		"actor", actor.UserID,
		"moderator", actor.Moderator)
	return nil
}

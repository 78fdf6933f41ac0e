package usecases

import (
	"context"
	"fmt"

	"github.com/vellum-app/vellum/internal/application/workshop/dto"
	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/errors"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

type SetCollectionStateCommand struct {
	CollectionID string
	State        string
}

type SetCollectionStateUseCase struct {
	collectionRepo workshop.CollectionRepository
	subRepo        workshop.SubscriptionRepository
	index          workshop.CollectionIndex
	logger         logger.Interface
}

func NewSetCollectionStateUseCase(
	collectionRepo workshop.CollectionRepository,
	subRepo workshop.SubscriptionRepository,
	index workshop.CollectionIndex,
	logger logger.Interface,
) *SetCollectionStateUseCase {
	return &SetCollectionStateUseCase{
		collectionRepo: collectionRepo,
		subRepo:        subRepo,
		index:          index,
		logger:         logger,
	}
}

// Execute transitions the publication state. Owners and editors go through
// the one-way-door checks; moderators bypass them.
func (uc *SetCollectionStateUseCase) Execute(ctx context.Context, cmd SetCollectionStateCommand, actor Actor) (*dto.CollectionDTO, error) {
	newState, err := workshop.ParsePublicationState(cmd.State)
	if err != nil {
		return nil, err
	}

	collection, err := uc.collectionRepo.FindByID(ctx, cmd.CollectionID)
	if err != nil {
		return nil, err
	}

	if !actor.Moderator {
		ok, err := canEditCollection(ctx, uc.subRepo, collection, actor)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.NewForbiddenError("you do not have permission to edit this collection")
		}
	}

	if err := collection.SetState(newState, !actor.Moderator); err != nil {
		return nil, err
	}

	if err := uc.collectionRepo.Update(ctx, collection); err != nil {
		uc.logger.Errorw("failed to persist state change", "error", err, "collection_id", cmd.CollectionID)
		return nil, fmt.Errorf("failed to persist state change: %w", err)
	}

	mirrorCollection(uc.logger, uc.index, collection)

	uc.logger.Infow("collection state changed",
		"collection_id", cmd.CollectionID,
		"state", newState.String(),
		"moderator", actor.Moderator)
	return dto.ToCollectionDTO(collection), nil
}

package usecases

import (
	"context"
	"fmt"

	"github.com/vellum-app/vellum/internal/application/workshop/dto"
	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

type UpdateCollectionCommand struct {
	CollectionID string
	Name         string
	Description  string
	Image        string
}

type UpdateCollectionUseCase struct {
	collectionRepo workshop.CollectionRepository
	subRepo        workshop.SubscriptionRepository
	index          workshop.CollectionIndex
	logger         logger.Interface
}

func NewUpdateCollectionUseCase(
	collectionRepo workshop.CollectionRepository,
	subRepo workshop.SubscriptionRepository,
	index workshop.CollectionIndex,
	logger logger.Interface,
) *UpdateCollectionUseCase {
	return &UpdateCollectionUseCase{
		collectionRepo: collectionRepo,
		subRepo:        subRepo,
		index:          index,
		logger:         logger,
	}
}

func (uc *UpdateCollectionUseCase) Execute(ctx context.Context, cmd UpdateCollectionCommand, actor Actor) (*dto.CollectionDTO, error) {
	collection, err := uc.collectionRepo.FindByID(ctx, cmd.CollectionID)
	if err != nil {
		return nil, err
	}

	if err := requireEditCollection(ctx, uc.subRepo, collection, actor); err != nil {
		return nil, err
	}

	if err := collection.UpdateInfo(cmd.Name, cmd.Description, cmd.Image); err != nil {
		return nil, err
	}

	if err := uc.collectionRepo.Update(ctx, collection); err != nil {
		uc.logger.Errorw("failed to update collection", "error", err, "collection_id", cmd.CollectionID)
		return nil, fmt.Errorf("failed to update collection: %w", err)
	}

	mirrorCollection(uc.logger, uc.index, collection)

	return dto.ToCollectionDTO(collection), nil
}

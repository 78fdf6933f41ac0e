package usecases

import (
	"context"
	"fmt"

	"github.com/vellum-app/vellum/internal/application/workshop/dto"
	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

type CreateCollectionCommand struct {
	Name        string
	Description string
	Image       string
	Owner       int64
}

type CreateCollectionUseCase struct {
	collectionRepo workshop.CollectionRepository
	index          workshop.CollectionIndex
	logger         logger.Interface
}

func NewCreateCollectionUseCase(
	collectionRepo workshop.CollectionRepository,
	index workshop.CollectionIndex,
	logger logger.Interface,
) *CreateCollectionUseCase {
	return &CreateCollectionUseCase{
		collectionRepo: collectionRepo,
		index:          index,
		logger:         logger,
	}
}

func (uc *CreateCollectionUseCase) Execute(ctx context.Context, cmd CreateCollectionCommand) (*dto.CollectionDTO, error) {
	collection, err := workshop.NewCollection(cmd.Name, cmd.Description, cmd.Image, cmd.Owner)
	if err != nil {
		return nil, err
	}

	if err := uc.collectionRepo.Create(ctx, collection); err != nil {
		uc.logger.Errorw("failed to persist collection", "error", err, "owner", cmd.Owner)
		return nil, fmt.Errorf("failed to persist collection: %w", err)
	}

	mirrorCollection(uc.logger, uc.index, collection)

	uc.logger.Infow("collection created", "collection_id", collection.ID(), "owner", cmd.Owner)
	return dto.ToCollectionDTO(collection), nil
}

package usecases

import (
	"context"

	"github.com/vellum-app/vellum/internal/application/workshop/dto"
	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

type GetCollectionUseCase struct {
	collectionRepo workshop.CollectionRepository
	subRepo        workshop.SubscriptionRepository
	logger         logger.Interface
}

func NewGetCollectionUseCase(
	collectionRepo workshop.CollectionRepository,
	subRepo workshop.SubscriptionRepository,
	logger logger.Interface,
) *GetCollectionUseCase {
	return &GetCollectionUseCase{
		collectionRepo: collectionRepo,
		subRepo:        subRepo,
		logger:         logger,
	}
}

// Execute returns one collection. Missing collections are NotFound regardless
// of caller; private collections the caller cannot access are Forbidden.
func (uc *GetCollectionUseCase) Execute(ctx context.Context, collectionID string, actor Actor) (*dto.CollectionDTO, error) {
	collection, err := uc.collectionRepo.FindByID(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	if err := requireViewCollection(ctx, uc.subRepo, collection, actor); err != nil {
		return nil, err
	}

	return dto.ToCollectionDTO(collection), nil
}

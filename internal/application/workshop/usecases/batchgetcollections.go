package usecases

import (
	"context"
	"fmt"

	"github.com/vellum-app/vellum/internal/application/workshop/dto"
	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/errors"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

const maxBatchSize = 100

type BatchGetCollectionsUseCase struct {
	collectionRepo workshop.CollectionRepository
	subRepo        workshop.SubscriptionRepository
	logger         logger.Interface
}

func NewBatchGetCollectionsUseCase(
	collectionRepo workshop.CollectionRepository,
	subRepo workshop.SubscriptionRepository,
	logger logger.Interface,
) *BatchGetCollectionsUseCase {
	return &BatchGetCollectionsUseCase{
		collectionRepo: collectionRepo,
		subRepo:        subRepo,
		logger:         logger,
	}
}

// Execute fetches multiple collections at once. Missing ids are skipped, and
// private collections the caller cannot access are filtered out rather than
// failing the whole batch.
func (uc *BatchGetCollectionsUseCase) Execute(ctx context.Context, ids []string, actor Actor) ([]*dto.CollectionDTO, error) {
	if len(ids) == 0 {
		return []*dto.CollectionDTO{}, nil
	}
	if len(ids) > maxBatchSize {
		return nil, errors.NewValidationError(fmt.Sprintf("at most %d collections per batch", maxBatchSize))
	}

	collections, err := uc.collectionRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load collections: %w", err)
	}

	out := make([]*dto.CollectionDTO, 0, len(collections))
	for _, c := range collections {
		if err := requireViewCollection(ctx, uc.subRepo, c, actor); err != nil {
			if errors.IsForbiddenError(err) {
				continue
			}
			return nil, err
		}
		out = append(out, dto.ToCollectionDTO(c))
	}
	return out, nil
}

package usecases

import (
	"context"
	"fmt"

	"github.com/vellum-app/vellum/internal/application/workshop/dto"
	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/errors"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

type AddCollectionTagUseCase struct {
	collectionRepo workshop.CollectionRepository
	subRepo        workshop.SubscriptionRepository
	tagRepo        workshop.TagRepository
	index          workshop.CollectionIndex
	logger         logger.Interface
}

func NewAddCollectionTagUseCase(
	collectionRepo workshop.CollectionRepository,
	subRepo workshop.SubscriptionRepository,
	tagRepo workshop.TagRepository,
	index workshop.CollectionIndex,
	logger logger.Interface,
) *AddCollectionTagUseCase {
	return &AddCollectionTagUseCase{
		collectionRepo: collectionRepo,
		subRepo:        subRepo,
		tagRepo:        tagRepo,
		index:          index,
		logger:         logger,
	}
}

// Execute adds a tag from the controlled vocabulary. Re-adding a tag that is
// already present is a no-op success.
func (uc *AddCollectionTagUseCase) Execute(ctx context.Context, collectionID, tag string, actor Actor) (*dto.CollectionDTO, error) {
	collection, err := uc.collectionRepo.FindByID(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	if err := requireEditCollection(ctx, uc.subRepo, collection, actor); err != nil {
		return nil, err
	}

	known, err := uc.tagRepo.Exists(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("failed to check tag vocabulary: %w", err)
	}
	if !known {
		return nil, errors.NewValidationError(fmt.Sprintf("%s is not a valid tag", tag))
	}

	collection.AddTag(tag)

	if err := uc.collectionRepo.Update(ctx, collection); err != nil {
		return nil, fmt.Errorf("failed to persist tag change: %w", err)
	}

	mirrorCollection(uc.logger, uc.index, collection)
	return dto.ToCollectionDTO(collection), nil
}

type RemoveCollectionTagUseCase struct {
	collectionRepo workshop.CollectionRepository
	subRepo        workshop.SubscriptionRepository
	index          workshop.CollectionIndex
	logger         logger.Interface
}

func NewRemoveCollectionTagUseCase(
	collectionRepo workshop.CollectionRepository,
	subRepo workshop.SubscriptionRepository,
	index workshop.CollectionIndex,
	logger logger.Interface,
) *RemoveCollectionTagUseCase {
	return &RemoveCollectionTagUseCase{
		collectionRepo: collectionRepo,
		subRepo:        subRepo,
		index:          index,
		logger:         logger,
	}
}

func (uc *RemoveCollectionTagUseCase) Execute(ctx context.Context, collectionID, tag string, actor Actor) (*dto.CollectionDTO, error) {
	collection, err := uc.collectionRepo.FindByID(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	if err := requireEditCollection(ctx, uc.subRepo, collection, actor); err != nil {
		return nil, err
	}

	collection.RemoveTag(tag)

	if err := uc.collectionRepo.Update(ctx, collection); err != nil {
		return nil, fmt.Errorf("failed to persist tag change: %w", err)
	}

	mirrorCollection(uc.logger, uc.index, collection)
	return dto.ToCollectionDTO(collection), nil
}

type ListTagsUseCase struct {
	tagRepo workshop.TagRepository
	logger  logger.Interface
}

func NewListTagsUseCase(tagRepo workshop.TagRepository, logger logger.Interface) *ListTagsUseCase {
	return &ListTagsUseCase{tagRepo: tagRepo, logger: logger}
}

// Execute returns the full controlled tag vocabulary.
func (uc *ListTagsUseCase) Execute(ctx context.Context) ([]dto.TagDTO, error) {
	tags, err := uc.tagRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tags: %w", err)
	}
	return dto.ToTagDTOs(tags), nil
}

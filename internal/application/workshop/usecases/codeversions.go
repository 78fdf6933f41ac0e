package usecases

import (
	"context"
	"fmt"

	"github.com/vellum-app/vellum/internal/application/workshop/dto"
	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/logger"
	"github.com/vellum-app/vellum/internal/shared/utils"
)

type ListCodeVersionsUseCase struct {
	collectionRepo workshop.CollectionRepository
	store          *collectableStore
	subRepo        workshop.SubscriptionRepository
	pageSize       int
	logger         logger.Interface
}

func NewListCodeVersionsUseCase(
	collectionRepo workshop.CollectionRepository,
	aliasRepo workshop.AliasRepository,
	snippetRepo workshop.SnippetRepository,
	subRepo workshop.SubscriptionRepository,
	pageSize int,
	logger logger.Interface,
) *ListCodeVersionsUseCase {
	return &ListCodeVersionsUseCase{
		collectionRepo: collectionRepo,
		store:          &collectableStore{aliasRepo: aliasRepo, snippetRepo: snippetRepo},
		subRepo:        subRepo,
		pageSize:       pageSize,
		logger:         logger,
	}
}

// Execute returns one page of a collectable's version history, newest first.
func (uc *ListCodeVersionsUseCase) Execute(ctx context.Context, kind CollectableKind, id string, page int, actor Actor) (*dto.CodeVersionPageDTO, error) {
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

	versions := c.CodeVersions()
	// history is stored oldest first
	for i, j := 0, len(versions)-1; i < j; i, j = i+1, j-1 {
		versions[i], versions[j] = versions[j], versions[i]
	}

	if page < 1 {
		page = 1
	}
	start, end := utils.ApplyPagination(len(versions), page, uc.pageSize)
	return &dto.CodeVersionPageDTO{
		Items:    dto.ToCodeVersionDTOs(versions[start:end]),
		Total:    int64(len(versions)),
		Page:     page,
		PageSize: uc.pageSize,
	}, nil
}

type CreateCodeVersionCommand struct {
	Kind    CollectableKind
	ID      string
	Content string
}

type CreateCodeVersionUseCase struct {
	collectionRepo workshop.CollectionRepository
	store          *collectableStore
	subRepo        workshop.SubscriptionRepository
	aliasLimit     int
	snippetLimit   int
	logger         logger.Interface
}

func NewCreateCodeVersionUseCase(
	collectionRepo workshop.CollectionRepository,
	aliasRepo workshop.AliasRepository,
	snippetRepo workshop.SnippetRepository,
	subRepo workshop.SubscriptionRepository,
	aliasLimit, snippetLimit int,
	logger logger.Interface,
) *CreateCodeVersionUseCase {
	return &CreateCodeVersionUseCase{
		collectionRepo: collectionRepo,
		store:          &collectableStore{aliasRepo: aliasRepo, snippetRepo: snippetRepo},
		subRepo:        subRepo,
		aliasLimit:     aliasLimit,
		snippetLimit:   snippetLimit,
		logger:         logger,
	}
}

// Execute appends a new code version. The new version is not current until
// the author activates it explicitly.
func (uc *CreateCodeVersionUseCase) Execute(ctx context.Context, cmd CreateCodeVersionCommand, actor Actor) (*dto.CodeVersionDTO, error) {
	c, err := uc.store.load(ctx, cmd.Kind, cmd.ID)
	if err != nil {
		return nil, err
	}

	collection, err := uc.collectionRepo.FindByID(ctx, c.CollectionID())
	if err != nil {
		return nil, err
	}
	if err := requireEditCollection(ctx, uc.subRepo, collection, actor); err != nil {
		return nil, err
	}

	limit := uc.store.sizeLimit(cmd.Kind, uc.aliasLimit, uc.snippetLimit)
	version, err := c.NewCodeVersion(cmd.Content, limit)
	if err != nil {
		return nil, err
	}

	if err := uc.store.save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to persist code version: %w", err)
	}

	collection.Touch()
	if err := uc.collectionRepo.Update(ctx, collection); err != nil {
		return nil, fmt.Errorf("failed to touch collection: %w", err)
	}

	uc.logger.Infow("code version created",
		"kind", cmd.Kind,
		"id", cmd.ID,
		"version", version.Version)
	out := dto.ToCodeVersionDTO(version)
	return &out, nil
}

type SetActiveCodeVersionUseCase struct {
	collectionRepo workshop.CollectionRepository
	store          *collectableStore
	subRepo        workshop.SubscriptionRepository
	logger         logger.Interface
}

func NewSetActiveCodeVersionUseCase(
	collectionRepo workshop.CollectionRepository,
	aliasRepo workshop.AliasRepository,
	snippetRepo workshop.SnippetRepository,
	subRepo workshop.SubscriptionRepository,
	logger logger.Interface,
) *SetActiveCodeVersionUseCase {
	return &SetActiveCodeVersionUseCase{
		collectionRepo: collectionRepo,
		store:          &collectableStore{aliasRepo: aliasRepo, snippetRepo: snippetRepo},
		subRepo:        subRepo,
		logger:         logger,
	}
}

// Execute marks the given version current and denormalizes its content into
// the collectable's code field.
func (uc *SetActiveCodeVersionUseCase) Execute(ctx context.Context, kind CollectableKind, id string, version int, actor Actor) (*dto.CodeVersionDTO, error) {
	c, err := uc.store.load(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	collection, err := uc.collectionRepo.FindByID(ctx, c.CollectionID())
	if err != nil {
		return nil, err
	}
	if err := requireEditCollection(ctx, uc.subRepo, collection, actor); err != nil {
		return nil, err
	}

	active, err := c.SetActiveCodeVersion(version)
	if err != nil {
		return nil, err
	}

	if err := uc.store.save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to persist active code version: %w", err)
	}

	collection.Touch()
	if err := uc.collectionRepo.Update(ctx, collection); err != nil {
		return nil, fmt.Errorf("failed to touch collection: %w", err)
	}

	uc.logger.Infow("active code version set",
		"kind", kind,
		"id", id,
		"version", version)
	out := dto.ToCodeVersionDTO(active)
	return &out, nil
}

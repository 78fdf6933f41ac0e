package usecases

import (
	"context"

	"github.com/vellum-app/vellum/internal/application/workshop/dto"
	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

type GetAliasUseCase struct {
	collectionRepo workshop.CollectionRepository
	aliasRepo      workshop.AliasRepository
	subRepo        workshop.SubscriptionRepository
	logger         logger.Interface
}

func NewGetAliasUseCase(
	collectionRepo workshop.CollectionRepository,
	aliasRepo workshop.AliasRepository,
	subRepo workshop.SubscriptionRepository,
	logger logger.Interface,
) *GetAliasUseCase {
	return &GetAliasUseCase{
		collectionRepo: collectionRepo,
		aliasRepo:      aliasRepo,
		subRepo:        subRepo,
		logger:         logger,
	}
}

func (uc *GetAliasUseCase) Execute(ctx context.Context, aliasID string, actor Actor) (*dto.AliasDTO, error) {
	alias, err := uc.aliasRepo.FindByID(ctx, aliasID)
	if err != nil {
		return nil, err
	}

	collection, err := uc.collectionRepo.FindByID(ctx, alias.CollectionID())
	if err != nil {
		return nil, err
	}
	if err := requireViewCollection(ctx, uc.subRepo, collection, actor); err != nil {
		return nil, err
	}

	return dto.ToAliasDTO(alias, false), nil
}

type GetSnippetUseCase struct {
	collectionRepo workshop.CollectionRepository
	snippetRepo    workshop.SnippetRepository
	subRepo        workshop.SubscriptionRepository
	logger         logger.Interface
}

func NewGetSnippetUseCase(
	collectionRepo workshop.CollectionRepository,
	snippetRepo workshop.SnippetRepository,
	subRepo workshop.SubscriptionRepository,
	logger logger.Interface,
) *GetSnippetUseCase {
	return &GetSnippetUseCase{
		collectionRepo: collectionRepo,
		snippetRepo:    snippetRepo,
		subRepo:        subRepo,
		logger:         logger,
	}
}

func (uc *GetSnippetUseCase) Execute(ctx context.Context, snippetID string, actor Actor) (*dto.SnippetDTO, error) {
	snippet, err := uc.snippetRepo.FindByID(ctx, snippetID)
	if err != nil {
		return nil, err
	}

	collection, err := uc.collectionRepo.FindByID(ctx, snippet.CollectionID())
	if err != nil {
		return nil, err
	}
	if err := requireViewCollection(ctx, uc.subRepo, collection, actor); err != nil {
		return nil, err
	}

	return dto.ToSnippetDTO(snippet, false), nil
}

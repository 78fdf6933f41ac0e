package usecases

import (
	"context"
	"fmt"

	"github.com/vellum-app/vellum/internal/application/workshop/dto"
	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

type UpdateAliasCommand struct {
	AliasID string
	Name    string
	Docs    string
}

type UpdateAliasUseCase struct {
	collectionRepo workshop.CollectionRepository
	aliasRepo      workshop.AliasRepository
	subRepo        workshop.SubscriptionRepository
	reserved       workshop.ReservedCommandSource
	logger         logger.Interface
}

func NewUpdateAliasUseCase(
	collectionRepo workshop.CollectionRepository,
	aliasRepo workshop.AliasRepository,
	subRepo workshop.SubscriptionRepository,
	reserved workshop.ReservedCommandSource,
	logger logger.Interface,
) *UpdateAliasUseCase {
	return &UpdateAliasUseCase{
		collectionRepo: collectionRepo,
		aliasRepo:      aliasRepo,
		subRepo:        subRepo,
		reserved:       reserved,
		logger:         logger,
	}
}

func (uc *UpdateAliasUseCase) Execute(ctx context.Context, cmd UpdateAliasCommand, actor Actor) (*dto.AliasDTO, error) {
	alias, err := uc.aliasRepo.FindByID(ctx, cmd.AliasID)
	if err != nil {
		return nil, err
	}

	collection, err := uc.collectionRepo.FindByID(ctx, alias.CollectionID())
	if err != nil {
		return nil, err
	}
	if err := requireEditCollection(ctx, uc.subRepo, collection, actor); err != nil {
		return nil, err
	}

	reserved, err := uc.reserved.ReservedNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load reserved command names: %w", err)
	}

	if err := alias.UpdateInfo(cmd.Name, cmd.Docs, reserved); err != nil {
		return nil, err
	}

	if err := uc.aliasRepo.Update(ctx, alias); err != nil {
		return nil, fmt.Errorf("failed to update alias: %w", err)
	}

	collection.Touch()
	if err := uc.collectionRepo.Update(ctx, collection); err != nil {
		return nil, fmt.Errorf("failed to touch collection: %w", err)
	}

	return dto.ToAliasDTO(alias, false), nil
}

type UpdateSnippetCommand struct {
	SnippetID string
	Name      string
	Docs      string
}

type UpdateSnippetUseCase struct {
	collectionRepo workshop.CollectionRepository
	snippetRepo    workshop.SnippetRepository
	subRepo        workshop.SubscriptionRepository
	logger         logger.Interface
}

func NewUpdateSnippetUseCase(
	collectionRepo workshop.CollectionRepository,
	snippetRepo workshop.SnippetRepository,
	subRepo workshop.SubscriptionRepository,
	logger logger.Interface,
) *UpdateSnippetUseCase {
	return &UpdateSnippetUseCase{
		collectionRepo: collectionRepo,
		snippetRepo:    snippetRepo,
		subRepo:        subRepo,
		logger:         logger,
	}
}

func (uc *UpdateSnippetUseCase) Execute(ctx context.Context, cmd UpdateSnippetCommand, actor Actor) (*dto.SnippetDTO, error) {
	snippet, err := uc.snippetRepo.FindByID(ctx, cmd.SnippetID)
	if err != nil {
		return nil, err
	}

	collection, err := uc.collectionRepo.FindByID(ctx, snippet.CollectionID())
	if err != nil {
		return nil, err
	}
	if err := requireEditCollection(ctx, uc.subRepo, collection, actor); err != nil {
		return nil, err
	}

	if err := snippet.UpdateInfo(cmd.Name, cmd.Docs); err != nil {
		return nil, err
	}

	if err := uc.snippetRepo.Update(ctx, snippet); err != nil {
		return nil, fmt.Errorf("failed to update snippet: %w", err)
	}

	collection.Touch()
	if err := uc.collectionRepo.Update(ctx, collection); err != nil {
		return nil, fmt.Errorf("failed to touch collection: %w", err)
	}

	return dto.ToSnippetDTO(snippet, false), nil
}

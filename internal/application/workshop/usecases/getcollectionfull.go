package usecases

import (
	"context"
	"fmt"

	"github.com/vellum-app/vellum/internal/application/workshop/dto"
	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

type GetCollectionFullUseCase struct {
	collectionRepo workshop.CollectionRepository
	aliasRepo      workshop.AliasRepository
	snippetRepo    workshop.SnippetRepository
	subRepo        workshop.SubscriptionRepository
	logger         logger.Interface
}

func NewGetCollectionFullUseCase(
	collectionRepo workshop.CollectionRepository,
	aliasRepo workshop.AliasRepository,
	snippetRepo workshop.SnippetRepository,
	subRepo workshop.SubscriptionRepository,
	logger logger.Interface,
) *GetCollectionFullUseCase {
	return &GetCollectionFullUseCase{
		collectionRepo: collectionRepo,
		aliasRepo:      aliasRepo,
		snippetRepo:    snippetRepo,
		subRepo:        subRepo,
		logger:         logger,
	}
}

// Execute returns a collection with its complete alias trees and snippets,
// without code version histories. The bot uses this to hydrate a collection
// in one round trip.
func (uc *GetCollectionFullUseCase) Execute(ctx context.Context, collectionID string, actor Actor) (*dto.CollectionFullDTO, error) {
	collection, err := uc.collectionRepo.FindByID(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	if err := requireViewCollection(ctx, uc.subRepo, collection, actor); err != nil {
		return nil, err
	}

	aliases, err := uc.aliasRepo.FindByCollection(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection aliases: %w", err)
	}
	snippets, err := uc.snippetRepo.FindByCollection(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection snippets: %w", err)
	}

	byID := make(map[string]*dto.AliasDTO, len(aliases))
	for _, a := range aliases {
		byID[a.ID()] = dto.ToAliasDTO(a, false)
	}

	// attach each sub-alias under its parent, roots form the result forest
	roots := make([]*dto.AliasDTO, 0, len(collection.AliasIDs()))
	for _, a := range aliases {
		d := byID[a.ID()]
		if a.IsRoot() {
			roots = append(roots, d)
			continue
		}
		if parent, ok := byID[*a.ParentID()]; ok {
			parent.Subcommands = append(parent.Subcommands, d)
		} else {
			uc.logger.Warnw("sub-alias references missing parent",
				"alias_id", a.ID(),
				"parent_id", *a.ParentID())
		}
	}

	snippetDTOs := make([]*dto.SnippetDTO, 0, len(snippets))
	for _, s := range snippets {
		snippetDTOs = append(snippetDTOs, dto.ToSnippetDTO(s, false))
	}

	return &dto.CollectionFullDTO{
		CollectionDTO: *dto.ToCollectionDTO(collection),
		Aliases:       roots,
		Snippets:      snippetDTOs,
	}, nil
}

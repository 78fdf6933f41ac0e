package usecases

import (
	"context"
	"fmt"

	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/errors"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

type DeleteAliasUseCase struct {
	collectionRepo workshop.CollectionRepository
	aliasRepo      workshop.AliasRepository
	subRepo        workshop.SubscriptionRepository
	index          workshop.CollectionIndex
	logger         logger.Interface
}

func NewDeleteAliasUseCase(
	collectionRepo workshop.CollectionRepository,
	aliasRepo workshop.AliasRepository,
	subRepo workshop.SubscriptionRepository,
	index workshop.CollectionIndex,
	logger logger.Interface,
) *DeleteAliasUseCase {
	return &DeleteAliasUseCase{
		collectionRepo: collectionRepo,
		aliasRepo:      aliasRepo,
		subRepo:        subRepo,
		index:          index,
		logger:         logger,
	}
}

// Execute deletes an alias and its whole sub-alias tree. Root aliases are
// detached from the collection and pulled out of every subscription's
// bindings; sub-aliases are detached from their parent.
func (uc *DeleteAliasUseCase) Execute(ctx context.Context, aliasID string, actor Actor) error {
	alias, err := uc.aliasRepo.FindByID(ctx, aliasID)
	if err != nil {
		return err
	}

	collection, err := uc.collectionRepo.FindByID(ctx, alias.CollectionID())
	if err != nil {
		return err
	}
	if err := requireEditCollection(ctx, uc.subRepo, collection, actor); err != nil {
		return err
	}
	if !actor.Moderator && alias.IsRoot() && collection.State() == workshop.StatePublished {
		return errors.NewForbiddenError("you cannot delete a top-level alias from a published collection")
	}

	if err := uc.deleteTree(ctx, alias); err != nil {
		return err
	}

	if alias.IsRoot() {
		collection.DetachAlias(aliasID)
		if err := uc.subRepo.RemoveBinding(ctx, collection.ID(), workshop.BindingKindAlias, aliasID); err != nil {
			uc.logger.Errorw("failed to remove alias bindings", "error", err, "alias_id", aliasID)
			return fmt.Errorf("failed to remove alias bindings: %w", err)
		}
	} else {
		parent, err := uc.aliasRepo.FindByID(ctx, *alias.ParentID())
		if err == nil {
			parent.DetachSubcommand(aliasID)
			if err := uc.aliasRepo.Update(ctx, parent); err != nil {
				return fmt.Errorf("failed to detach sub-alias: %w", err)
			}
		}
		collection.Touch()
	}

	if err := uc.collectionRepo.Update(ctx, collection); err != nil {
		return fmt.Errorf("failed to update collection: %w", err)
	}

	mirrorCollection(uc.logger, uc.index, collection)

	uc.logger.Infow("alias deleted", "alias_id", aliasID, "collection_id", collection.ID())
	return nil
}

// deleteTree removes the alias and its descendants, children first.
func (uc *DeleteAliasUseCase) deleteTree(ctx context.Context, alias *workshop.Alias) error {
	for _, childID := range alias.SubcommandIDs() {
		child, err := uc.aliasRepo.FindByID(ctx, childID)
		if err != nil {
			continue
		}
		if err := uc.deleteTree(ctx, child); err != nil {
			return err
		}
	}
	if err := uc.aliasRepo.Delete(ctx, alias.ID()); err != nil {
		return fmt.Errorf("failed to delete alias %s: %w", alias.ID(), err)
	}
	return nil
}

type DeleteSnippetUseCase struct {
	collectionRepo workshop.CollectionRepository
	snippetRepo    workshop.SnippetRepository
	subRepo        workshop.SubscriptionRepository
	index          workshop.CollectionIndex
	logger         logger.Interface
}

func NewDeleteSnippetUseCase(
	collectionRepo workshop.CollectionRepository,
	snippetRepo workshop.SnippetRepository,
	subRepo workshop.SubscriptionRepository,
	index workshop.CollectionIndex,
	logger logger.Interface,
) *DeleteSnippetUseCase {
	return &DeleteSnippetUseCase{
		collectionRepo: collectionRepo,
		snippetRepo:    snippetRepo,
		subRepo:        subRepo,
		index:          index,
		logger:         logger,
	}
}

func (uc *DeleteSnippetUseCase) Execute(ctx context.Context, snippetID string, actor Actor) error {
	snippet, err := uc.snippetRepo.FindByID(ctx, snippetID)
	if err != nil {
		return err
	}

	collection, err := uc.collectionRepo.FindByID(ctx, snippet.CollectionID())
	if err != nil {
		return err
	}
	if err := requireEditCollection(ctx, uc.subRepo, collection, actor); err != nil {
		return err
	}
	if !actor.Moderator && collection.State() == workshop.StatePublished {
		return errors.NewForbiddenError("you cannot delete a snippet from a published collection")
	}

	if err := uc.snippetRepo.Delete(ctx, snippetID); err != nil {
		return fmt.Errorf("failed to delete snippet: %w", err)
	}

	collection.DetachSnippet(snippetID)
	if err := uc.subRepo.RemoveBinding(ctx, collection.ID(), workshop.BindingKindSnippet, snippetID); err != nil {
		uc.logger.Errorw("failed to remove snippet bindings", "error", err, "snippet_id", snippetID)
		return fmt.Errorf("failed to remove snippet bindings: %w", err)
	}

	if err := uc.collectionRepo.Update(ctx, collection); err != nil {
		return fmt.Errorf("failed to update collection: %w", err)
	}

	mirrorCollection(uc.logger, uc.index, collection)

	uc.logger.Infow("snippet deleted", "snippet_id", snippetID, "collection_id", collection.ID())
	return nil
}

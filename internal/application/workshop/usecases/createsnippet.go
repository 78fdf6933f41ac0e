package usecases

import (
	"context"
	"fmt"

	"github.com/vellum-app/vellum/internal/application/workshop/dto"
	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

type CreateSnippetCommand struct {
	CollectionID string
	Name         string
	Docs         string
}

type CreateSnippetUseCase struct {
	collectionRepo workshop.CollectionRepository
	snippetRepo    workshop.SnippetRepository
	subRepo        workshop.SubscriptionRepository
	index          workshop.CollectionIndex
	logger         logger.Interface
}

func NewCreateSnippetUseCase(
	collectionRepo workshop.CollectionRepository,
	snippetRepo workshop.SnippetRepository,
	subRepo workshop.SubscriptionRepository,
	index workshop.CollectionIndex,
	logger logger.Interface,
) *CreateSnippetUseCase {
	return &CreateSnippetUseCase{
		collectionRepo: collectionRepo,
		snippetRepo:    snippetRepo,
		subRepo:        subRepo,
		index:          index,
		logger:         logger,
	}
}

// Execute creates a snippet and pushes it into every existing subscription's
// bindings.
func (uc *CreateSnippetUseCase) Execute(ctx context.Context, cmd CreateSnippetCommand, actor Actor) (*dto.SnippetDTO, error) {
	collection, err := uc.collectionRepo.FindByID(ctx, cmd.CollectionID)
	if err != nil {
		return nil, err
	}

	if err := requireEditCollection(ctx, uc.subRepo, collection, actor); err != nil {
		return nil, err
	}

	snippet, err := workshop.NewSnippet(cmd.CollectionID, cmd.Name, cmd.Docs)
	if err != nil {
		return nil, err
	}

	if err := uc.snippetRepo.Create(ctx, snippet); err != nil {
		uc.logger.Errorw("failed to persist snippet", "error", err, "collection_id", cmd.CollectionID)
		return nil, fmt.Errorf("failed to persist snippet: %w", err)
	}

	collection.AttachSnippet(snippet.ID())
	if err := uc.collectionRepo.Update(ctx, collection); err != nil {
		return nil, fmt.Errorf("failed to update collection: %w", err)
	}

	binding := workshop.Binding{Name: snippet.Name(), ID: snippet.ID()}
	if err := uc.subRepo.AppendBinding(ctx, cmd.CollectionID, workshop.BindingKindSnippet, binding); err != nil {
		uc.logger.Errorw("failed to propagate snippet binding", "error", err, "snippet_id", snippet.ID())
		return nil, fmt.Errorf("failed to propagate snippet binding: %w", err)
	}

	mirrorCollection(uc.logger, uc.index, collection)

	uc.logger.Infow("snippet created", "snippet_id", snippet.ID(), "collection_id", cmd.CollectionID)
	return dto.ToSnippetDTO(snippet, false), nil
}

package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/vellum-app/vellum/internal/application/workshop/dto"
	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/errors"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

// Editor grants live as ledger records of type editor. Only the owner (or a
// moderator) manages them; editors themselves cannot add more editors.

type AddEditorUseCase struct {
	collectionRepo workshop.CollectionRepository
	subRepo        workshop.SubscriptionRepository
	logger         logger.Interface
}

func NewAddEditorUseCase(
	collectionRepo workshop.CollectionRepository,
	subRepo workshop.SubscriptionRepository,
	logger logger.Interface,
) *AddEditorUseCase {
	return &AddEditorUseCase{
		collectionRepo: collectionRepo,
		subRepo:        subRepo,
		logger:         logger,
	}
}

func (uc *AddEditorUseCase) Execute(ctx context.Context, collectionID string, editorID int64, actor Actor) error {
	collection, err := uc.collectionRepo.FindByID(ctx, collectionID)
	if err != nil {
		return err
	}

	if !actor.Moderator && !collection.IsOwner(actor.UserID) {
		return errors.NewForbiddenError("only the owner can manage editors")
	}
	if collection.IsOwner(editorID) {
		return errors.NewConflictError("the owner is already an editor")
	}

	if _, err := uc.subRepo.Find(ctx, workshop.SubscriptionTypeEditor, editorID, collectionID); err == nil {
		return errors.NewConflictError("that user is already an editor")
	} else if !errors.IsNotFoundError(err) {
		return fmt.Errorf("failed to check editor record: %w", err)
	}

	now := time.Now().UTC()
	_, err = uc.subRepo.Upsert(ctx, &workshop.Subscription{
		Type:         workshop.SubscriptionTypeEditor,
		SubscriberID: editorID,
		ObjectID:     collectionID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		uc.logger.Errorw("failed to add editor", "error", err, "collection_id", collectionID, "editor", editorID)
		return fmt.Errorf("failed to add editor: %w", err)
	}

	uc.logger.Infow("editor added", "collection_id", collectionID, "editor", editorID)
	return nil
}

type RemoveEditorUseCase struct {
	collectionRepo workshop.CollectionRepository
	subRepo        workshop.SubscriptionRepository
	logger         logger.Interface
}

func NewRemoveEditorUseCase(
	collectionRepo workshop.CollectionRepository,
	subRepo workshop.SubscriptionRepository,
	logger logger.Interface,
) *RemoveEditorUseCase {
	return &RemoveEditorUseCase{
		collectionRepo: collectionRepo,
		subRepo:        subRepo,
		logger:         logger,
	}
}

func (uc *RemoveEditorUseCase) Execute(ctx context.Context, collectionID string, editorID int64, actor Actor) error {
	collection, err := uc.collectionRepo.FindByID(ctx, collectionID)
	if err != nil {
		return err
	}

	// editors may remove themselves
	if !actor.Moderator && !collection.IsOwner(actor.UserID) && actor.UserID != editorID {
		return errors.NewForbiddenError("only the owner can manage editors")
	}

	if err := uc.subRepo.Delete(ctx, workshop.SubscriptionTypeEditor, editorID, collectionID); err != nil {
		return err
	}

	uc.logger.Infow("editor removed", "collection_id", collectionID, "editor", editorID)
	return nil
}

type ListEditorsUseCase struct {
	collectionRepo workshop.CollectionRepository
	subRepo        workshop.SubscriptionRepository
	logger         logger.Interface
}

func NewListEditorsUseCase(
	collectionRepo workshop.CollectionRepository,
	subRepo workshop.SubscriptionRepository,
	logger logger.Interface,
) *ListEditorsUseCase {
	return &ListEditorsUseCase{
		collectionRepo: collectionRepo,
		subRepo:        subRepo,
		logger:         logger,
	}
}

// Execute lists the user ids holding editor grants on a collection.
func (uc *ListEditorsUseCase) Execute(ctx context.Context, collectionID string, actor Actor) ([]string, error) {
	collection, err := uc.collectionRepo.FindByID(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	if err := requireViewCollection(ctx, uc.subRepo, collection, actor); err != nil {
		return nil, err
	}

	records, err := uc.subRepo.FindByObject(ctx, collectionID, workshop.SubscriptionTypeEditor)
	if err != nil {
		return nil, fmt.Errorf("failed to load editors: %w", err)
	}

	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, dto.FormatSnowflake(r.SubscriberID))
	}
	return out, nil
}

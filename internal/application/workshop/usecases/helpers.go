package usecases

import (
	"context"
	"time"

	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/errors"
	"github.com/vellum-app/vellum/internal/shared/goroutine"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

const indexMirrorTimeout = 5 * time.Second

// Actor identifies the authenticated caller for authorization decisions.
type Actor struct {
	UserID    int64
	Moderator bool
}

// canEditCollection reports whether the actor may mutate the collection:
// the owner, a moderator, or a user holding an editor ledger record.
func canEditCollection(ctx context.Context, subRepo workshop.SubscriptionRepository, collection *workshop.Collection, actor Actor) (bool, error) {
	if actor.Moderator || collection.IsOwner(actor.UserID) {
		return true, nil
	}

	_, err := subRepo.Find(ctx, workshop.SubscriptionTypeEditor, actor.UserID, collection.ID())
	if err != nil {
		if errors.IsNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// requireEditCollection is canEditCollection with a Forbidden error on denial.
func requireEditCollection(ctx context.Context, subRepo workshop.SubscriptionRepository, collection *workshop.Collection, actor Actor) error {
	ok, err := canEditCollection(ctx, subRepo, collection, actor)
	if err != nil {
		return err
	}
	if !ok {
		return errors.NewForbiddenError("you do not have permission to edit this collection")
	}
	return nil
}

// requireViewCollection enforces the private-collection read rule. Existence
// was already established by loading the collection, so an unauthorized read
// of a private collection surfaces as Forbidden rather than NotFound.
func requireViewCollection(ctx context.Context, subRepo workshop.SubscriptionRepository, collection *workshop.Collection, actor Actor) error {
	if collection.State() != workshop.StatePrivate {
		return nil
	}

	ok, err := canEditCollection(ctx, subRepo, collection, actor)
	if err != nil {
		return err
	}
	if !ok {
		return errors.NewForbiddenError("this collection is private")
	}
	return nil
}

// mirrorCollection pushes the collection's document into the search index in
// the background. Mutation success never depends on the mirror.
func mirrorCollection(log logger.Interface, index workshop.CollectionIndex, collection *workshop.Collection) {
	doc := workshop.DocumentFromCollection(collection)
	goroutine.SafeGo(log, "index-mirror", func() {
		ctx, cancel := context.WithTimeout(context.Background(), indexMirrorTimeout)
		defer cancel()
		if err := index.Index(ctx, doc); err != nil {
			log.Warnw("failed to mirror collection to index", "collection_id", doc.ID, "error", err)
		}
	})
}

// mirrorDelete removes the collection's document from the search index in the
// background.
func mirrorDelete(log logger.Interface, index workshop.CollectionIndex, collectionID string) {
	goroutine.SafeGo(log, "index-mirror", func() {
		ctx, cancel := context.WithTimeout(context.Background(), indexMirrorTimeout)
		defer cancel()
		if err := index.Delete(ctx, collectionID); err != nil {
			log.Warnw("failed to remove collection from index", "collection_id", collectionID, "error", err)
		}
	})
}

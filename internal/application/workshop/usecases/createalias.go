package usecases

import (
	"context"
	"fmt"

	"github.com/vellum-app/vellum/internal/application/workshop/dto"
	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

type CreateAliasCommand struct {
	CollectionID string
	// ParentAliasID is set for sub-aliases; the collection is then resolved
	// from the parent.
	ParentAliasID *string
	Name          string
	Docs          string
}

type CreateAliasUseCase struct {
	collectionRepo workshop.CollectionRepository
	aliasRepo      workshop.AliasRepository
	subRepo        workshop.SubscriptionRepository
	reserved       workshop.ReservedCommandSource
	index          workshop.CollectionIndex
	logger         logger.Interface
}

func NewCreateAliasUseCase(
	collectionRepo workshop.CollectionRepository,
	aliasRepo workshop.AliasRepository,
	subRepo workshop.SubscriptionRepository,
	reserved workshop.ReservedCommandSource,
	index workshop.CollectionIndex,
	logger logger.Interface,
) *CreateAliasUseCase {
	return &CreateAliasUseCase{
		collectionRepo: collectionRepo,
		aliasRepo:      aliasRepo,
		subRepo:        subRepo,
		reserved:       reserved,
		index:          index,
		logger:         logger,
	}
}

// Execute creates a root alias on a collection or a sub-alias under an
// existing alias. New root aliases are pushed into every existing
// subscription's bindings so subscribers can invoke them immediately.
func (uc *CreateAliasUseCase) Execute(ctx context.Context, cmd CreateAliasCommand, actor Actor) (*dto.AliasDTO, error) {
	var parent *workshop.Alias
	collectionID := cmd.CollectionID
	if cmd.ParentAliasID != nil {
		p, err := uc.aliasRepo.FindByID(ctx, *cmd.ParentAliasID)
		if err != nil {
			return nil, err
		}
		parent = p
		collectionID = p.CollectionID()
	}

	collection, err := uc.collectionRepo.FindByID(ctx, collectionID)
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

	alias, err := workshop.NewAlias(collectionID, cmd.Name, cmd.Docs, cmd.ParentAliasID, reserved)
	if err != nil {
		return nil, err
	}

	if err := uc.aliasRepo.Create(ctx, alias); err != nil {
		uc.logger.Errorw("failed to persist alias", "error", err, "collection_id", collectionID)
		return nil, fmt.Errorf("failed to persist alias: %w", err)
	}

	if parent != nil {
		parent.AttachSubcommand(alias.ID())
		if err := uc.aliasRepo.Update(ctx, parent); err != nil {
			return nil, fmt.Errorf("failed to attach sub-alias: %w", err)
		}
		collection.Touch()
	} else {
		collection.AttachAlias(alias.ID())
	}

	if err := uc.collectionRepo.Update(ctx, collection); err != nil {
		return nil, fmt.Errorf("failed to update collection: %w", err)
	}

	if parent == nil {
		binding := workshop.Binding{Name: alias.Name(), ID: alias.ID()}
		if err := uc.subRepo.AppendBinding(ctx, collectionID, workshop.BindingKindAlias, binding); err != nil {
			uc.logger.Errorw("failed to propagate alias binding", "error", err, "alias_id", alias.ID())
			return nil, fmt.Errorf("failed to propagate alias binding: %w", err)
		}
	}

	mirrorCollection(uc.logger, uc.index, collection)

	uc.logger.Infow("alias created",
		"alias_id", alias.ID(),
		"collection_id", collectionID,
		"root", parent == nil)
	return dto.ToAliasDTO(alias, false), nil
}

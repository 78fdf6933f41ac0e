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

// GuildPermissions answers whether a user may manage server aliases in a
// guild. Implemented by the Discord identity client.
type GuildPermissions interface {
	CanEditServerAliases(ctx context.Context, token string, guildID string, userID int64) error
}

type ServerActiveCommand struct {
	CollectionID string
	GuildID      int64
	// DiscordToken is the caller's OAuth2 token, used to list their guilds.
	DiscordToken    string
	AliasBindings   []dto.BindingDTO
	SnippetBindings []dto.BindingDTO
}

type SetServerActiveUseCase struct {
	collectionRepo workshop.CollectionRepository
	subRepo        workshop.SubscriptionRepository
	eventRepo      workshop.AliasEventRepository
	subscriber     *SubscribeUseCase
	guildPerms     GuildPermissions
	logger         logger.Interface
}

func NewSetServerActiveUseCase(
	collectionRepo workshop.CollectionRepository,
	subRepo workshop.SubscriptionRepository,
	eventRepo workshop.AliasEventRepository,
	subscriber *SubscribeUseCase,
	guildPerms GuildPermissions,
	logger logger.Interface,
) *SetServerActiveUseCase {
	return &SetServerActiveUseCase{
		collectionRepo: collectionRepo,
		subRepo:        subRepo,
		eventRepo:      eventRepo,
		subscriber:     subscriber,
		guildPerms:     guildPerms,
		logger:         logger,
	}
}

// Execute activates a collection for a whole guild. The caller must hold
// server-alias permission in that guild.
func (uc *SetServerActiveUseCase) Execute(ctx context.Context, cmd ServerActiveCommand, actor Actor) (*dto.SubscriptionDTO, error) {
	if !actor.Moderator {
		guildID := dto.FormatSnowflake(cmd.GuildID)
		if err := uc.guildPerms.CanEditServerAliases(ctx, cmd.DiscordToken, guildID, actor.UserID); err != nil {
			return nil, err
		}
	}

	collection, err := uc.collectionRepo.FindByID(ctx, cmd.CollectionID)
	if err != nil {
		return nil, err
	}

	if err := requireViewCollection(ctx, uc.subRepo, collection, actor); err != nil {
		return nil, err
	}

	aliasBindings, snippetBindings, err := uc.subscriber.reconcile(ctx, collection, cmd.AliasBindings, cmd.SnippetBindings)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sub := &workshop.Subscription{
		Type:            workshop.SubscriptionTypeServerActive,
		SubscriberID:    cmd.GuildID,
		ObjectID:        cmd.CollectionID,
		AliasBindings:   aliasBindings,
		SnippetBindings: snippetBindings,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := uc.subRepo.Upsert(ctx, sub)
	if err != nil {
		uc.logger.Errorw("failed to upsert server activation", "error", err, "collection_id", cmd.CollectionID, "guild", cmd.GuildID)
		return nil, fmt.Errorf("failed to upsert server activation: %w", err)
	}

	if created {
		if err := uc.collectionRepo.AdjustGuildSubscriberCount(ctx, cmd.CollectionID, 1); err != nil {
			uc.logger.Errorw("failed to bump guild subscriber count", "error", err, "collection_id", cmd.CollectionID)
		}
		uc.appendEvent(ctx, workshop.EventServerSubscribe, cmd.CollectionID, actor.UserID)
		uc.subscriber.remirror(ctx, cmd.CollectionID)
	}

	uc.logger.Infow("collection set server active",
		"collection_id", cmd.CollectionID,
		"guild", cmd.GuildID,
		"created", created)
	return dto.ToSubscriptionDTO(sub), nil
}

func (uc *SetServerActiveUseCase) appendEvent(ctx context.Context, eventType, collectionID string, userID int64) {
	err := uc.eventRepo.Append(ctx, workshop.AliasEvent{
		Type:      eventType,
		ObjectID:  collectionID,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		uc.logger.Warnw("failed to append alias event", "error", err, "type", eventType, "collection_id", collectionID)
	}
}

type UnsetServerActiveUseCase struct {
	collectionRepo workshop.CollectionRepository
	subRepo        workshop.SubscriptionRepository
	eventRepo      workshop.AliasEventRepository
	guildPerms     GuildPermissions
	logger         logger.Interface
}

func NewUnsetServerActiveUseCase(
	collectionRepo workshop.CollectionRepository,
	subRepo workshop.SubscriptionRepository,
	eventRepo workshop.AliasEventRepository,
	guildPerms GuildPermissions,
	logger logger.Interface,
) *UnsetServerActiveUseCase {
	return &UnsetServerActiveUseCase{
		collectionRepo: collectionRepo,
		subRepo:        subRepo,
		eventRepo:      eventRepo,
		guildPerms:     guildPerms,
		logger:         logger,
	}
}

func (uc *UnsetServerActiveUseCase) Execute(ctx context.Context, collectionID string, guildID int64, discordToken string, actor Actor) error {
	if !actor.Moderator {
		if err := uc.guildPerms.CanEditServerAliases(ctx, discordToken, dto.FormatSnowflake(guildID), actor.UserID); err != nil {
			return err
		}
	}

	if _, err := uc.subRepo.Find(ctx, workshop.SubscriptionTypeServerActive, guildID, collectionID); err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewConflictError("this collection is not active on this server")
		}
		return err
	}

	if err := uc.subRepo.Delete(ctx, workshop.SubscriptionTypeServerActive, guildID, collectionID); err != nil {
		return fmt.Errorf("failed to delete server activation: %w", err)
	}

	if err := uc.collectionRepo.AdjustGuildSubscriberCount(ctx, collectionID, -1); err != nil {
		uc.logger.Errorw("failed to drop guild subscriber count", "error", err, "collection_id", collectionID)
	}

	err := uc.eventRepo.Append(ctx, workshop.AliasEvent{
		Type:      workshop.EventServerUnsubscribe,
		ObjectID:  collectionID,
		UserID:    actor.UserID,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		uc.logger.Warnw("failed to append alias event", "error", err, "collection_id", collectionID)
	}

	uc.logger.Infow("collection unset server active", "collection_id", collectionID, "guild", guildID)
	return nil
}

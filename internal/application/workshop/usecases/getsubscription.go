package usecases

import (
	"context"

	"github.com/vellum-app/vellum/internal/application/workshop/dto"
	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

type GetSubscriptionUseCase struct {
	subRepo workshop.SubscriptionRepository
	logger  logger.Interface
}

func NewGetSubscriptionUseCase(subRepo workshop.SubscriptionRepository, logger logger.Interface) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{subRepo: subRepo, logger: logger}
}

// Personal returns the caller's own subscription record for a collection.
func (uc *GetSubscriptionUseCase) Personal(ctx context.Context, collectionID string, actor Actor) (*dto.SubscriptionDTO, error) {
	sub, err := uc.subRepo.Find(ctx, workshop.SubscriptionTypeSubscribe, actor.UserID, collectionID)
	if err != nil {
		return nil, err
	}
	return dto.ToSubscriptionDTO(sub), nil
}

// Guild returns a guild's server-active record for a collection.
func (uc *GetSubscriptionUseCase) Guild(ctx context.Context, collectionID string, guildID int64) (*dto.SubscriptionDTO, error) {
	sub, err := uc.subRepo.Find(ctx, workshop.SubscriptionTypeServerActive, guildID, collectionID)
	if err != nil {
		return nil, err
	}
	return dto.ToSubscriptionDTO(sub), nil
}

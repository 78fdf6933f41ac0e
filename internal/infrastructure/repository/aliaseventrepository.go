package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/infrastructure/persistence/models"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

var subscribeFamilyEvents = []string{
	workshop.EventSubscribe,
	workshop.EventUnsubscribe,
	workshop.EventServerSubscribe,
	workshop.EventServerUnsubscribe,
}

// AliasEventRepositoryImpl implements the workshop.AliasEventRepository interface
type AliasEventRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewAliasEventRepository creates a new alias event repository instance
func NewAliasEventRepository(db *gorm.DB, logger logger.Interface) workshop.AliasEventRepository {
	return &AliasEventRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

// Append writes one event to the log. The derived sub score is denormalized
// so window aggregation stays a single SUM.
func (r *AliasEventRepositoryImpl) Append(ctx context.Context, event workshop.AliasEvent) error {
	model := &models.AliasEventModel{
		Type:      event.Type,
		ObjectSID: event.ObjectID,
		UserID:    event.UserID,
		SubScore:  event.SubScore(),
		Timestamp: event.Timestamp,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to append alias event", "type", event.Type, "object", event.ObjectID, "error", err)
		return fmt.Errorf("failed to append alias event: %w", err)
	}

	return nil
}

// NetSubScores aggregates subscribe-family events since the given time into
// per-collection net scores, highest first, capped at limit.
func (r *AliasEventRepositoryImpl) NetSubScores(ctx context.Context, since time.Time, limit int) ([]workshop.CollectionScore, error) {
	type row struct {
		ObjectSID string
		Score     float64
	}

	query := r.db.WithContext(ctx).
		Model(&models.AliasEventModel{}).
		Select("object_sid, SUM(sub_score) AS score").
		Where("type IN ?", subscribeFamilyEvents).
		Group("object_sid").
		Order("score DESC")
	if !since.IsZero() {
		query = query.Where("timestamp >= ?", since)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []row
	if err := query.Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to aggregate sub scores", "since", since, "error", err)
		return nil, fmt.Errorf("failed to aggregate sub scores: %w", err)
	}

	scores := make([]workshop.CollectionScore, len(rows))
	for i, rec := range rows {
		scores[i] = workshop.CollectionScore{CollectionID: rec.ObjectSID, Score: rec.Score}
	}
	return scores, nil
}

package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/infrastructure/persistence/mappers"
	"github.com/vellum-app/vellum/internal/infrastructure/persistence/models"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

// CollectionRepositoryImpl implements the workshop.CollectionRepository interface
type CollectionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CollectionMapper
	logger logger.Interface
}

// NewCollectionRepository creates a new collection repository instance
func NewCollectionRepository(db *gorm.DB, logger logger.Interface) workshop.CollectionRepository {
	return &CollectionRepositoryImpl{
		db:     db,
		mapper: mappers.NewCollectionMapper(),
		logger: logger,
	}
}

// Create persists a new collection aggregate
func (r *CollectionRepositoryImpl) Create(ctx context.Context, collection *workshop.Collection) error {
	model, err := r.mapper.ToModel(collection)
	if err != nil {
		return fmt.Errorf("failed to map collection: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create collection", "sid", collection.ID(), "error", err)
		return fmt.Errorf("failed to create collection: %w", err)
	}

	r.logger.Infow("collection created", "sid", collection.ID(), "owner", collection.Owner())
	return nil
}

// FindByID loads a collection by its prefixed short ID
func (r *CollectionRepositoryImpl) FindByID(ctx context.Context, id string) (*workshop.Collection, error) {
	var model models.CollectionModel
	if err := r.db.WithContext(ctx).Where("sid = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, workshop.ErrCollectionNotFound
		}
		r.logger.Errorw("failed to find collection", "sid", id, "error", err)
		return nil, fmt.Errorf("failed to find collection: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// FindByIDs loads collections for a batch of IDs; missing IDs are skipped
func (r *CollectionRepositoryImpl) FindByIDs(ctx context.Context, ids []string) ([]*workshop.Collection, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var collectionModels []*models.CollectionModel
	if err := r.db.WithContext(ctx).Where("sid IN ?", ids).Find(&collectionModels).Error; err != nil {
		r.logger.Errorw("failed to find collections", "count", len(ids), "error", err)
		return nil, fmt.Errorf("failed to find collections: %w", err)
	}

	// preserve the requested order
	bySID := make(map[string]*models.CollectionModel, len(collectionModels))
	for _, m := range collectionModels {
		bySID[m.SID] = m
	}
	ordered := make([]*models.CollectionModel, 0, len(collectionModels))
	for _, id := range ids {
		if m, ok := bySID[id]; ok {
			ordered = append(ordered, m)
		}
	}

	return r.mapper.ToEntities(ordered)
}

// FindByOwner loads all collections owned by a user
func (r *CollectionRepositoryImpl) FindByOwner(ctx context.Context, owner int64) ([]*workshop.Collection, error) {
	var collectionModels []*models.CollectionModel
	if err := r.db.WithContext(ctx).
		Where("owner = ?", owner).
		Order("created_at DESC").
		Find(&collectionModels).Error; err != nil {
		r.logger.Errorw("failed to find collections by owner", "owner", owner, "error", err)
		return nil, fmt.Errorf("failed to find collections by owner: %w", err)
	}

	return r.mapper.ToEntities(collectionModels)
}

// Update writes back every mutable column in a single row update
func (r *CollectionRepositoryImpl) Update(ctx context.Context, collection *workshop.Collection) error {
	model, err := r.mapper.ToModel(collection)
	if err != nil {
		return fmt.Errorf("failed to map collection: %w", err)
	}

	result := r.db.WithContext(ctx).
		Model(&models.CollectionModel{}).
		Where("sid = ?", collection.ID()).
		Select("name", "description", "image", "alias_ids", "snippet_ids", "tags", "publish_state", "last_edited").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update collection", "sid", collection.ID(), "error", result.Error)
		return fmt.Errorf("failed to update collection: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return workshop.ErrCollectionNotFound
	}

	return nil
}

// Delete removes a collection row
func (r *CollectionRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("sid = ?", id).Delete(&models.CollectionModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete collection", "sid", id, "error", result.Error)
		return fmt.Errorf("failed to delete collection: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return workshop.ErrCollectionNotFound
	}

	r.logger.Infow("collection deleted", "sid", id)
	return nil
}

// AdjustSubscriberCount atomically shifts the personal subscriber counter
func (r *CollectionRepositoryImpl) AdjustSubscriberCount(ctx context.Context, id string, delta int) error {
	return r.adjustCounter(ctx, id, "num_subscribers", delta)
}

// AdjustGuildSubscriberCount atomically shifts the guild activation counter
func (r *CollectionRepositoryImpl) AdjustGuildSubscriberCount(ctx context.Context, id string, delta int) error {
	return r.adjustCounter(ctx, id, "num_guild_subscribers", delta)
}

func (r *CollectionRepositoryImpl) adjustCounter(ctx context.Context, id, column string, delta int) error {
	result := r.db.WithContext(ctx).
		Model(&models.CollectionModel{}).
		Where("sid = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta))
	if result.Error != nil {
		r.logger.Errorw("failed to adjust counter", "sid", id, "column", column, "error", result.Error)
		return fmt.Errorf("failed to adjust counter: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return workshop.ErrCollectionNotFound
	}
	return nil
}

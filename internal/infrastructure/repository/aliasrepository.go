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

// AliasRepositoryImpl implements the workshop.AliasRepository interface
type AliasRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AliasMapper
	logger logger.Interface
}

// NewAliasRepository creates a new alias repository instance
func NewAliasRepository(db *gorm.DB, logger logger.Interface) workshop.AliasRepository {
	return &AliasRepositoryImpl{
		db:     db,
		mapper: mappers.NewAliasMapper(),
		logger: logger,
	}
}

// Create persists a new alias
func (r *AliasRepositoryImpl) Create(ctx context.Context, alias *workshop.Alias) error {
	model, err := r.mapper.ToModel(alias)
	if err != nil {
		return fmt.Errorf("failed to map alias: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create alias", "sid", alias.ID(), "error", err)
		return fmt.Errorf("failed to create alias: %w", err)
	}

	r.logger.Infow("alias created", "sid", alias.ID(), "collection", alias.CollectionID())
	return nil
}

// FindByID loads an alias by its prefixed short ID
func (r *AliasRepositoryImpl) FindByID(ctx context.Context, id string) (*workshop.Alias, error) {
	var model models.AliasModel
	if err := r.db.WithContext(ctx).Where("sid = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, workshop.ErrAliasNotFound
		}
		r.logger.Errorw("failed to find alias", "sid", id, "error", err)
		return nil, fmt.Errorf("failed to find alias: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// FindByIDs loads aliases for a batch of IDs, preserving the requested order
func (r *AliasRepositoryImpl) FindByIDs(ctx context.Context, ids []string) ([]*workshop.Alias, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var aliasModels []*models.AliasModel
	if err := r.db.WithContext(ctx).Where("sid IN ?", ids).Find(&aliasModels).Error; err != nil {
		r.logger.Errorw("failed to find aliases", "count", len(ids), "error", err)
		return nil, fmt.Errorf("failed to find aliases: %w", err)
	}

	bySID := make(map[string]*models.AliasModel, len(aliasModels))
	for _, m := range aliasModels {
		bySID[m.SID] = m
	}
	ordered := make([]*models.AliasModel, 0, len(aliasModels))
	for _, id := range ids {
		if m, ok := bySID[id]; ok {
			ordered = append(ordered, m)
		}
	}

	return r.mapper.ToEntities(ordered)
}

// FindByCollection loads every alias of a collection, nested ones included
func (r *AliasRepositoryImpl) FindByCollection(ctx context.Context, collectionID string) ([]*workshop.Alias, error) {
	var aliasModels []*models.AliasModel
	if err := r.db.WithContext(ctx).
		Where("collection_sid = ?", collectionID).
		Order("id ASC").
		Find(&aliasModels).Error; err != nil {
		r.logger.Errorw("failed to find aliases by collection", "collection", collectionID, "error", err)
		return nil, fmt.Errorf("failed to find aliases by collection: %w", err)
	}

	return r.mapper.ToEntities(aliasModels)
}

// Update writes back every mutable column in a single row update
func (r *AliasRepositoryImpl) Update(ctx context.Context, alias *workshop.Alias) error {
	model, err := r.mapper.ToModel(alias)
	if err != nil {
		return fmt.Errorf("failed to map alias: %w", err)
	}

	result := r.db.WithContext(ctx).
		Model(&models.AliasModel{}).
		Where("sid = ?", alias.ID()).
		Select("name", "docs", "code", "versions", "entitlements", "subcommand_ids", "updated_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update alias", "sid", alias.ID(), "error", result.Error)
		return fmt.Errorf("failed to update alias: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return workshop.ErrAliasNotFound
	}

	return nil
}

// Delete removes an alias row
func (r *AliasRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("sid = ?", id).Delete(&models.AliasModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete alias", "sid", id, "error", result.Error)
		return fmt.Errorf("failed to delete alias: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return workshop.ErrAliasNotFound
	}

	r.logger.Infow("alias deleted", "sid", id)
	return nil
}

// DeleteByCollection removes every alias of a collection
func (r *AliasRepositoryImpl) DeleteByCollection(ctx context.Context, collectionID string) error {
	result := r.db.WithContext(ctx).
		Where("collection_sid = ?", collectionID).
		Delete(&models.AliasModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete aliases by collection", "collection", collectionID, "error", result.Error)
		return fmt.Errorf("failed to delete aliases by collection: %w", result.Error)
	}

	r.logger.Infow("aliases deleted", "collection", collectionID, "count", result.RowsAffected)
	return nil
}

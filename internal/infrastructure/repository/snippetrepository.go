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

// SnippetRepositoryImpl implements the workshop.SnippetRepository interface
type SnippetRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SnippetMapper
	logger logger.Interface
}

// NewSnippetRepository creates a new snippet repository instance
func NewSnippetRepository(db *gorm.DB, logger logger.Interface) workshop.SnippetRepository {
	return &SnippetRepositoryImpl{
		db:     db,
		mapper: mappers.NewSnippetMapper(),
		logger: logger,
	}
}

// Create persists a new snippet
func (r *SnippetRepositoryImpl) Create(ctx context.Context, snippet *workshop.Snippet) error {
	model, err := r.mapper.ToModel(snippet)
	if err != nil {
		return fmt.Errorf("failed to map snippet: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create snippet", "sid", snippet.ID(), "error", err)
		return fmt.Errorf("failed to create snippet: %w", err)
	}

	r.logger.Infow("snippet created", "sid", snippet.ID(), "collection", snippet.CollectionID())
	return nil
}

// FindByID loads a snippet by its prefixed short ID
func (r *SnippetRepositoryImpl) FindByID(ctx context.Context, id string) (*workshop.Snippet, error) {
	var model models.SnippetModel
	if err := r.db.WithContext(ctx).Where("sid = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, workshop.ErrSnippetNotFound
		}
		r.logger.Errorw("failed to find snippet", "sid", id, "error", err)
		return nil, fmt.Errorf("failed to find snippet: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// FindByIDs loads snippets for a batch of IDs, preserving the requested order
func (r *SnippetRepositoryImpl) FindByIDs(ctx context.Context, ids []string) ([]*workshop.Snippet, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var snippetModels []*models.SnippetModel
	if err := r.db.WithContext(ctx).Where("sid IN ?", ids).Find(&snippetModels).Error; err != nil {
		r.logger.Errorw("failed to find snippets", "count", len(ids), "error", err)
		return nil, fmt.Errorf("failed to find snippets: %w", err)
	}

	bySID := make(map[string]*models.SnippetModel, len(snippetModels))
	for _, m := range snippetModels {
		bySID[m.SID] = m
	}
	ordered := make([]*models.SnippetModel, 0, len(snippetModels))
	for _, id := range ids {
		if m, ok := bySID[id]; ok {
			ordered = append(ordered, m)
		}
	}

	return r.mapper.ToEntities(ordered)
}

// FindByCollection loads every snippet of a collection
func (r *SnippetRepositoryImpl) FindByCollection(ctx context.Context, collectionID string) ([]*workshop.Snippet, error) {
	var snippetModels []*models.SnippetModel
	if err := r.db.WithContext(ctx).
		Where("collection_sid = ?", collectionID).
		Order("id ASC").
		Find(&snippetModels).Error; err != nil {
		r.logger.Errorw("failed to find snippets by collection", "collection", collectionID, "error", err)
		return nil, fmt.Errorf("failed to find snippets by collection: %w", err)
	}

	return r.mapper.ToEntities(snippetModels)
}

// Update writes back every mutable column in a single row update
func (r *SnippetRepositoryImpl) Update(ctx context.Context, snippet *workshop.Snippet) error {
	model, err := r.mapper.ToModel(snippet)
	if err != nil {
		return fmt.Errorf("failed to map snippet: %w", err)
	}

	result := r.db.WithContext(ctx).
		Model(&models.SnippetModel{}).
		Where("sid = ?", snippet.ID()).
		Select("name", "docs", "code", "versions", "entitlements", "updated_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update snippet", "sid", snippet.ID(), "error", result.Error)
		return fmt.Errorf("failed to update snippet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return workshop.ErrSnippetNotFound
	}

	return nil
}

// Delete removes a snippet row
func (r *SnippetRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("sid = ?", id).Delete(&models.SnippetModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete snippet", "sid", id, "error", result.Error)
		return fmt.Errorf("failed to delete snippet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return workshop.ErrSnippetNotFound
	}

	r.logger.Infow("snippet deleted", "sid", id)
	return nil
}

// DeleteByCollection removes every snippet of a collection
func (r *SnippetRepositoryImpl) DeleteByCollection(ctx context.Context, collectionID string) error {
	result := r.db.WithContext(ctx).
		Where("collection_sid = ?", collectionID).
		Delete(&models.SnippetModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete snippets by collection", "collection", collectionID, "error", result.Error)
		return fmt.Errorf("failed to delete snippets by collection: %w", result.Error)
	}

	r.logger.Infow("snippets deleted", "collection", collectionID, "count", result.RowsAffected)
	return nil
}

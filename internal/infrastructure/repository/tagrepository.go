package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/infrastructure/persistence/models"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

// TagRepositoryImpl implements the workshop.TagRepository interface
type TagRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewTagRepository creates a new tag repository instance
func NewTagRepository(db *gorm.DB, logger logger.Interface) workshop.TagRepository {
	return &TagRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

// FindAll returns the whole tag vocabulary
func (r *TagRepositoryImpl) FindAll(ctx context.Context) ([]workshop.Tag, error) {
	var tagModels []models.TagModel
	if err := r.db.WithContext(ctx).Order("slug ASC").Find(&tagModels).Error; err != nil {
		r.logger.Errorw("failed to find tags", "error", err)
		return nil, fmt.Errorf("failed to find tags: %w", err)
	}

	tags := make([]workshop.Tag, len(tagModels))
	for i, m := range tagModels {
		tags[i] = workshop.Tag{Slug: m.Slug, Name: m.Name}
	}
	return tags, nil
}

// Exists reports whether a slug is part of the vocabulary
func (r *TagRepositoryImpl) Exists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TagModel{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check tag existence", "slug", slug, "error", err)
		return false, fmt.Errorf("failed to check tag existence: %w", err)
	}

	return count > 0, nil
}

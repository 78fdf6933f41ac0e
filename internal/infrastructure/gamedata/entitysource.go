// Package gamedata provides the storage-backed compendium entity source.
package gamedata

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vellum-app/vellum/internal/domain/gamedata"
	"github.com/vellum-app/vellum/internal/infrastructure/persistence/models"
)

type gormEntitySource struct {
	db *gorm.DB
}

// NewGormEntitySource returns an EntitySource reading from the compendium table.
func NewGormEntitySource(db *gorm.DB) gamedata.EntitySource {
	return &gormEntitySource{db: db}
}

func (s *gormEntitySource) LoadEntities(ctx context.Context) ([]gamedata.Entity, error) {
	var rows []models.EntityModel
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load compendium entities: %w", err)
	}

	entities := make([]gamedata.Entity, 0, len(rows))
	for _, row := range rows {
		entities = append(entities, gamedata.Entity{
			Type:   row.EntityType,
			ID:     row.EntityID,
			Name:   row.Name,
			IsFree: row.IsFree,
		})
	}
	return entities, nil
}

package models

import (
	"time"

	"github.com/vellum-app/vellum/internal/shared/constants"
)

// EntityModel is one compendium entity usable as an entitlement target.
type EntityModel struct {
	ID         uint   `gorm:"primarykey"`
	EntityType string `gorm:"not null;size:30;uniqueIndex:idx_unique_entity,priority:1"`
	EntityID   int64  `gorm:"not null;uniqueIndex:idx_unique_entity,priority:2"`
	Name       string `gorm:"not null;size:255"`
	IsFree     bool   `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (EntityModel) TableName() string {
	return constants.TableCompendiumEntities
}

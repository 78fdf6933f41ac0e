package models

import (
	"time"

	"github.com/vellum-app/vellum/internal/shared/constants"
)

// TagModel is the controlled tag vocabulary.
type TagModel struct {
	ID        uint   `gorm:"primarykey"`
	Slug      string `gorm:"not null;size:64;uniqueIndex"`
	Name      string `gorm:"not null;size:128"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (TagModel) TableName() string {
	return constants.TableWorkshopTags
}

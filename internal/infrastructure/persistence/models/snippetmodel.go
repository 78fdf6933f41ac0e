package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/vellum-app/vellum/internal/shared/constants"
)

// SnippetModel is the persistence model for workshop snippets.
type SnippetModel struct {
	ID            uint   `gorm:"primarykey"`
	SID           string `gorm:"not null;size:32;uniqueIndex"`
	CollectionSID string `gorm:"not null;size:32;index"`
	Name          string `gorm:"not null;size:1024"`
	Docs          string `gorm:"type:text"`
	Code          string `gorm:"type:text"`
	Versions      datatypes.JSON
	Entitlements  datatypes.JSON
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (SnippetModel) TableName() string {
	return constants.TableWorkshopSnippets
}

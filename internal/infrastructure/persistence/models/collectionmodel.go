package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/vellum-app/vellum/internal/shared/constants"
)

// CollectionModel is the persistence model for workshop collections.
// The child-id lists and tags are stored as JSON columns so every aggregate
// mutation is a single atomic row update.
type CollectionModel struct {
	ID                  uint   `gorm:"primarykey"`
	SID                 string `gorm:"not null;size:32;uniqueIndex"`
	Name                string `gorm:"not null;size:255"`
	Description         string `gorm:"not null;type:text"`
	Image               string `gorm:"size:512"`
	Owner               int64  `gorm:"not null;index"`
	AliasIDs            datatypes.JSON
	SnippetIDs          datatypes.JSON
	Tags                datatypes.JSON
	PublishState        string `gorm:"not null;size:20;default:PRIVATE;index"`
	NumSubscribers      int    `gorm:"not null;default:0"`
	NumGuildSubscribers int    `gorm:"not null;default:0"`
	CreatedAt           time.Time
	LastEdited          time.Time `gorm:"index"`
}

// TableName specifies the table name for GORM
func (CollectionModel) TableName() string {
	return constants.TableWorkshopCollections
}

package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/vellum-app/vellum/internal/shared/constants"
)

// CollectionDocModel is the search mirror of a collection, written
// fire-and-forget after collection mutations and queried by the explore
// pipeline. It is deliberately denormalized and may lag the source table.
type CollectionDocModel struct {
	SID                 string `gorm:"primarykey;size:32"`
	Name                string `gorm:"not null;size:255"`
	Description         string `gorm:"not null;type:text"`
	Tags                datatypes.JSON
	PublishState        string    `gorm:"not null;size:20;index"`
	NumSubscribers      int       `gorm:"not null;default:0"`
	NumGuildSubscribers int       `gorm:"not null;default:0;index"`
	CreatedAt           time.Time `gorm:"index"`
	LastEdited          time.Time `gorm:"index"`
}

// TableName specifies the table name for GORM
func (CollectionDocModel) TableName() string {
	return constants.TableWorkshopCollectionDocs
}

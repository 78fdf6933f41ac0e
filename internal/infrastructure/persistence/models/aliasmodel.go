package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/vellum-app/vellum/internal/shared/constants"
)

// AliasModel is the persistence model for workshop aliases, root and nested.
// Code versions, entitlements and subcommand ids live in JSON columns so a
// version flip or entitlement change is one atomic row update.
type AliasModel struct {
	ID            uint    `gorm:"primarykey"`
	SID           string  `gorm:"not null;size:32;uniqueIndex"`
	CollectionSID string  `gorm:"not null;size:32;index"`
	ParentSID     *string `gorm:"size:32;index"`
	Name          string  `gorm:"not null;size:1024"`
	Docs          string  `gorm:"type:text"`
	Code          string  `gorm:"type:mediumtext"`
	Versions      datatypes.JSON
	Entitlements  datatypes.JSON
	SubcommandIDs datatypes.JSON
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (AliasModel) TableName() string {
	return constants.TableWorkshopAliases
}

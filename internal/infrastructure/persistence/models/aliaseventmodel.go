package models

import (
	"time"

	"github.com/vellum-app/vellum/internal/shared/constants"
)

// AliasEventModel is the append-only popularity event log. SubScore is
// denormalized at write time so window aggregation is a single SUM.
type AliasEventModel struct {
	ID        uint      `gorm:"primarykey"`
	Type      string    `gorm:"not null;size:30;index:idx_event_window,priority:2"`
	ObjectSID string    `gorm:"not null;size:32;index"`
	UserID    int64     `gorm:"not null"`
	SubScore  int       `gorm:"not null;default:0"`
	Timestamp time.Time `gorm:"not null;index:idx_event_window,priority:1"`
}

// TableName specifies the table name for GORM
func (AliasEventModel) TableName() string {
	return constants.TableWorkshopAliasEvents
}

package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/vellum-app/vellum/internal/shared/constants"
)

// SubscriptionModel is the persistence model for ledger records. The unique
// index over (type, subscriber, object) enforces the at-most-one-record
// invariant at the storage layer.
type SubscriptionModel struct {
	ID              uint   `gorm:"primarykey"`
	Type            string `gorm:"not null;size:20;uniqueIndex:idx_unique_subscription,priority:1"`
	SubscriberID    int64  `gorm:"not null;uniqueIndex:idx_unique_subscription,priority:2;index:idx_subscriber"`
	ObjectSID       string `gorm:"not null;size:32;uniqueIndex:idx_unique_subscription,priority:3;index:idx_object"`
	AliasBindings   datatypes.JSON
	SnippetBindings datatypes.JSON
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableWorkshopSubscriptions
}

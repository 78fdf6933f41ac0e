package migration

import (
	"github.com/vellum-app/vellum/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.CollectionModel{},
		&models.AliasModel{},
		&models.SnippetModel{},
		&models.SubscriptionModel{},
		&models.AliasEventModel{},
		&models.TagModel{},
		&models.CollectionDocModel{},
		&models.EntityModel{},
	}
}

// Package constants defines application-wide constant values.
package constants

// Environment names
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Database table names
const (
	TableWorkshopCollections    = "workshop_collections"
	TableWorkshopAliases        = "workshop_aliases"
	TableWorkshopSnippets       = "workshop_snippets"
	TableWorkshopSubscriptions  = "workshop_subscriptions"
	TableWorkshopAliasEvents    = "workshop_alias_events"
	TableWorkshopTags           = "workshop_tags"
	TableWorkshopCollectionDocs = "workshop_collection_docs"
	TableCompendiumEntities     = "compendium_entities"
)

// Context keys set by middleware
const (
	ContextKeyUserID       = "user_id"
	ContextKeyModerator    = "is_moderator"
	ContextKeyDiscordToken = "discord_token"
)

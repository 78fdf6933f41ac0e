package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vellum-app/vellum/internal/application/workshop/usecases"
	"github.com/vellum-app/vellum/internal/interfaces/http/handlers/workshop"
	"github.com/vellum-app/vellum/internal/interfaces/http/middleware"
)

// WorkshopRouteConfig holds dependencies for workshop routes.
type WorkshopRouteConfig struct {
	CollectionHandler   *workshop.CollectionHandler
	EditorHandler       *workshop.EditorHandler
	CollectableHandler  *workshop.CollectableHandler
	EntitlementHandler  *workshop.EntitlementHandler
	SubscriptionHandler *workshop.SubscriptionHandler
	ExploreHandler      *workshop.ExploreHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupWorkshopRoutes configures the workshop API surface.
func SetupWorkshopRoutes(engine *gin.Engine, cfg *WorkshopRouteConfig) {
	ws := engine.Group("/workshop")
	ws.Use(cfg.AuthMiddleware.RequireAuth())

	collections := ws.Group("/collection")
	{
		collections.POST("", cfg.CollectionHandler.CreateCollection)
		collections.GET("/batch", cfg.CollectionHandler.BatchGetCollections)

		collections.GET("/:id", cfg.CollectionHandler.GetCollection)
		collections.GET("/:id/full", cfg.CollectionHandler.GetCollectionFull)
		collections.PATCH("/:id", cfg.CollectionHandler.UpdateCollection)
		collections.DELETE("/:id", cfg.CollectionHandler.DeleteCollection)
		collections.PATCH("/:id/state", cfg.CollectionHandler.SetCollectionState)

		collections.POST("/:id/tag", cfg.CollectionHandler.AddTag)
		collections.DELETE("/:id/tag", cfg.CollectionHandler.RemoveTag)

		collections.GET("/:id/editor", cfg.EditorHandler.ListEditors)
		collections.PUT("/:id/editor/:userID", cfg.EditorHandler.AddEditor)
		collections.DELETE("/:id/editor/:userID", cfg.EditorHandler.RemoveEditor)

		collections.POST("/:id/alias", cfg.CollectableHandler.CreateAlias)
		collections.POST("/:id/snippet", cfg.CollectableHandler.CreateSnippet)

		collections.GET("/:id/subscription/me", cfg.SubscriptionHandler.GetMySubscription)
		collections.PUT("/:id/subscription/me", cfg.SubscriptionHandler.Subscribe)
		collections.DELETE("/:id/subscription/me", cfg.SubscriptionHandler.Unsubscribe)
		collections.GET("/:id/subscription/:guildID", cfg.SubscriptionHandler.GetGuildSubscription)

		collections.PUT("/:id/active", cfg.SubscriptionHandler.SetServerActive)
		collections.DELETE("/:id/active", cfg.SubscriptionHandler.UnsetServerActive)
	}

	aliases := ws.Group("/alias")
	{
		aliases.GET("/:id", cfg.CollectableHandler.Get(usecases.CollectableAlias))
		aliases.PATCH("/:id", cfg.CollectableHandler.Update(usecases.CollectableAlias))
		aliases.DELETE("/:id", cfg.CollectableHandler.Delete(usecases.CollectableAlias))

		aliases.POST("/:id/alias", cfg.CollectableHandler.CreateSubAlias)

		aliases.GET("/:id/code", cfg.CollectableHandler.ListCodeVersions(usecases.CollectableAlias))
		aliases.POST("/:id/code", cfg.CollectableHandler.CreateCodeVersion(usecases.CollectableAlias))
		aliases.PUT("/:id/active-code", cfg.CollectableHandler.SetActiveCodeVersion(usecases.CollectableAlias))

		aliases.GET("/:id/entitlement", cfg.EntitlementHandler.List(usecases.CollectableAlias))
		aliases.POST("/:id/entitlement", cfg.EntitlementHandler.Add(usecases.CollectableAlias, false))
		aliases.DELETE("/:id/entitlement", cfg.EntitlementHandler.Remove(usecases.CollectableAlias, false))
	}

	snippets := ws.Group("/snippet")
	{
		snippets.GET("/:id", cfg.CollectableHandler.Get(usecases.CollectableSnippet))
		snippets.PATCH("/:id", cfg.CollectableHandler.Update(usecases.CollectableSnippet))
		snippets.DELETE("/:id", cfg.CollectableHandler.Delete(usecases.CollectableSnippet))

		snippets.GET("/:id/code", cfg.CollectableHandler.ListCodeVersions(usecases.CollectableSnippet))
		snippets.POST("/:id/code", cfg.CollectableHandler.CreateCodeVersion(usecases.CollectableSnippet))
		snippets.PUT("/:id/active-code", cfg.CollectableHandler.SetActiveCodeVersion(usecases.CollectableSnippet))

		snippets.GET("/:id/entitlement", cfg.EntitlementHandler.List(usecases.CollectableSnippet))
		snippets.POST("/:id/entitlement", cfg.EntitlementHandler.Add(usecases.CollectableSnippet, false))
		snippets.DELETE("/:id/entitlement", cfg.EntitlementHandler.Remove(usecases.CollectableSnippet, false))
	}

	ws.GET("/owned", cfg.SubscriptionHandler.ListOwned)
	ws.GET("/editable", cfg.SubscriptionHandler.ListEditable)
	ws.GET("/subscribed", cfg.SubscriptionHandler.ListSubscribed)
	ws.GET("/guild/:guildID", cfg.SubscriptionHandler.ListGuildActive)

	ws.GET("/tags", cfg.CollectionHandler.ListTags)
	ws.GET("/explore", cfg.ExploreHandler.Explore)
	ws.GET("/guild-check", cfg.SubscriptionHandler.GuildCheck)

	// Moderation endpoints. The underlying use cases grant moderators wider
	// powers (unpublish, required entitlements), so these share handlers with
	// the user-facing routes where the semantics line up.
	moderator := ws.Group("/moderator")
	moderator.Use(cfg.AuthMiddleware.RequireModerator())
	{
		moderator.PATCH("/collection/:id/state", cfg.CollectionHandler.SetCollectionState)
		moderator.DELETE("/collection/:id", cfg.CollectionHandler.DeleteCollection)

		moderator.POST("/alias/:id/entitlement", cfg.EntitlementHandler.Add(usecases.CollectableAlias, true))
		moderator.DELETE("/alias/:id/entitlement", cfg.EntitlementHandler.Remove(usecases.CollectableAlias, true))
		moderator.POST("/snippet/:id/entitlement", cfg.EntitlementHandler.Add(usecases.CollectableSnippet, true))
		moderator.DELETE("/snippet/:id/entitlement", cfg.EntitlementHandler.Remove(usecases.CollectableSnippet, true))
	}
}

package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/vellum-app/vellum/internal/application/workshop/usecases"
	"github.com/vellum-app/vellum/internal/domain/gamedata"
	"github.com/vellum-app/vellum/internal/infrastructure/auth"
	"github.com/vellum-app/vellum/internal/infrastructure/cache"
	"github.com/vellum-app/vellum/internal/infrastructure/config"
	"github.com/vellum-app/vellum/internal/infrastructure/identity"
	"github.com/vellum-app/vellum/internal/infrastructure/permission"
	"github.com/vellum-app/vellum/internal/infrastructure/repository"
	"github.com/vellum-app/vellum/internal/infrastructure/search"
	workshophandlers "github.com/vellum-app/vellum/internal/interfaces/http/handlers/workshop"
	"github.com/vellum-app/vellum/internal/interfaces/http/middleware"
	"github.com/vellum-app/vellum/internal/interfaces/http/routes"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

// Router wires repositories, use cases and handlers into a gin engine.
type Router struct {
	engine *gin.Engine
	logger logger.Interface
}

func NewRouter(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, compendium *gamedata.Compendium) (*Router, error) {
	log := logger.NewLogger()

	collectionRepo := repository.NewCollectionRepository(db, log)
	aliasRepo := repository.NewAliasRepository(db, log)
	snippetRepo := repository.NewSnippetRepository(db, log)
	subRepo := repository.NewSubscriptionRepository(db, log)
	eventRepo := repository.NewAliasEventRepository(db, log)
	tagRepo := repository.NewTagRepository(db, log)

	index := search.NewCollectionIndex(db, log)
	popularityCache := cache.NewRedisPopularityCache(
		redisClient,
		time.Duration(cfg.Workshop.PopularityCacheTTLHours)*time.Hour,
		log,
	)
	reserved := cache.NewRedisReservedCommandSource(redisClient, log)

	discordClient := identity.NewClient(&cfg.Discord, log)
	guildPerms := identity.NewGuildPermissionChecker(discordClient, log)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	enforcer, err := permission.NewEnforcer(db, cfg.Permission.ModelPath, log)
	if err != nil {
		return nil, err
	}

	subscribeUC := usecases.NewSubscribeUseCase(collectionRepo, aliasRepo, snippetRepo, subRepo, eventRepo, reserved, index, log)

	collectionHandler := workshophandlers.NewCollectionHandler(
		usecases.NewCreateCollectionUseCase(collectionRepo, index, log),
		usecases.NewGetCollectionUseCase(collectionRepo, subRepo, log),
		usecases.NewGetCollectionFullUseCase(collectionRepo, aliasRepo, snippetRepo, subRepo, log),
		usecases.NewBatchGetCollectionsUseCase(collectionRepo, subRepo, log),
		usecases.NewUpdateCollectionUseCase(collectionRepo, subRepo, index, log),
		usecases.NewDeleteCollectionUseCase(collectionRepo, aliasRepo, snippetRepo, subRepo, index, log),
		usecases.NewSetCollectionStateUseCase(collectionRepo, subRepo, index, log),
		usecases.NewAddCollectionTagUseCase(collectionRepo, subRepo, tagRepo, index, log),
		usecases.NewRemoveCollectionTagUseCase(collectionRepo, subRepo, index, log),
		usecases.NewListTagsUseCase(tagRepo, log),
	)

	editorHandler := workshophandlers.NewEditorHandler(
		usecases.NewAddEditorUseCase(collectionRepo, subRepo, log),
		usecases.NewRemoveEditorUseCase(collectionRepo, subRepo, log),
		usecases.NewListEditorsUseCase(collectionRepo, subRepo, log),
	)

	collectableHandler := workshophandlers.NewCollectableHandler(
		usecases.NewCreateAliasUseCase(collectionRepo, aliasRepo, subRepo, reserved, index, log),
		usecases.NewCreateSnippetUseCase(collectionRepo, snippetRepo, subRepo, index, log),
		usecases.NewGetAliasUseCase(collectionRepo, aliasRepo, subRepo, log),
		usecases.NewGetSnippetUseCase(collectionRepo, snippetRepo, subRepo, log),
		usecases.NewUpdateAliasUseCase(collectionRepo, aliasRepo, subRepo, reserved, log),
		usecases.NewUpdateSnippetUseCase(collectionRepo, snippetRepo, subRepo, log),
		usecases.NewDeleteAliasUseCase(collectionRepo, aliasRepo, subRepo, index, log),
		usecases.NewDeleteSnippetUseCase(collectionRepo, snippetRepo, subRepo, index, log),
		usecases.NewListCodeVersionsUseCase(collectionRepo, aliasRepo, snippetRepo, subRepo, cfg.Workshop.CodeVersionPageSize, log),
		usecases.NewCreateCodeVersionUseCase(collectionRepo, aliasRepo, snippetRepo, subRepo, cfg.Workshop.AliasSizeLimit, cfg.Workshop.SnippetSizeLimit, log),
		usecases.NewSetActiveCodeVersionUseCase(collectionRepo, aliasRepo, snippetRepo, subRepo, log),
	)

	entitlementHandler := workshophandlers.NewEntitlementHandler(
		usecases.NewAddEntitlementUseCase(collectionRepo, aliasRepo, snippetRepo, subRepo, compendium, log),
		usecases.NewRemoveEntitlementUseCase(collectionRepo, aliasRepo, snippetRepo, subRepo, log),
		usecases.NewListEntitlementsUseCase(collectionRepo, aliasRepo, snippetRepo, subRepo, log),
	)

	subscriptionHandler := workshophandlers.NewSubscriptionHandler(
		subscribeUC,
		usecases.NewUnsubscribeUseCase(collectionRepo, subRepo, eventRepo, log),
		usecases.NewGetSubscriptionUseCase(subRepo, log),
		usecases.NewSetServerActiveUseCase(collectionRepo, subRepo, eventRepo, subscribeUC, guildPerms, log),
		usecases.NewUnsetServerActiveUseCase(collectionRepo, subRepo, eventRepo, guildPerms, log),
		usecases.NewCheckGuildPermissionsUseCase(guildPerms, log),
		usecases.NewListOwnedCollectionsUseCase(collectionRepo, log),
		usecases.NewListEditableCollectionsUseCase(subRepo, log),
		usecases.NewListSubscribedCollectionsUseCase(subRepo, log),
		usecases.NewListGuildCollectionsUseCase(subRepo, log),
	)

	exploreHandler := workshophandlers.NewExploreHandler(
		usecases.NewExploreCollectionsUseCase(eventRepo, tagRepo, index, popularityCache, cfg.Workshop.ExplorePageSize, cfg.Workshop.ExploreCandidateCap, log),
	)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, enforcer)

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.ErrorHandler())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupWorkshopRoutes(engine, &routes.WorkshopRouteConfig{
		CollectionHandler:   collectionHandler,
		EditorHandler:       editorHandler,
		CollectableHandler:  collectableHandler,
		EntitlementHandler:  entitlementHandler,
		SubscriptionHandler: subscriptionHandler,
		ExploreHandler:      exploreHandler,
		AuthMiddleware:      authMiddleware,
	})

	return &Router{engine: engine, logger: log}, nil
}

// Handler exposes the engine for the HTTP server.
func (r *Router) Handler() http.Handler {
	return r.engine
}

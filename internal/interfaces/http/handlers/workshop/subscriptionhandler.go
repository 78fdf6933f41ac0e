package workshop

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vellum-app/vellum/internal/application/workshop/dto"
	"github.com/vellum-app/vellum/internal/application/workshop/usecases"
	"github.com/vellum-app/vellum/internal/shared/logger"
	"github.com/vellum-app/vellum/internal/shared/utils"
)

type SubscriptionHandler struct {
	subscribeUC        *usecases.SubscribeUseCase
	unsubscribeUC      *usecases.UnsubscribeUseCase
	getSubscriptionUC  *usecases.GetSubscriptionUseCase
	setServerActiveUC  *usecases.SetServerActiveUseCase
	unsetServerActive  *usecases.UnsetServerActiveUseCase
	guildCheckUC       *usecases.CheckGuildPermissionsUseCase
	listOwnedUC        *usecases.ListOwnedCollectionsUseCase
	listEditableUC     *usecases.ListEditableCollectionsUseCase
	listSubscribedUC   *usecases.ListSubscribedCollectionsUseCase
	listGuildActiveUC  *usecases.ListGuildCollectionsUseCase
	logger             logger.Interface
}

func NewSubscriptionHandler(
	subscribeUC *usecases.SubscribeUseCase,
	unsubscribeUC *usecases.UnsubscribeUseCase,
	getSubscriptionUC *usecases.GetSubscriptionUseCase,
	setServerActiveUC *usecases.SetServerActiveUseCase,
	unsetServerActive *usecases.UnsetServerActiveUseCase,
	guildCheckUC *usecases.CheckGuildPermissionsUseCase,
	listOwnedUC *usecases.ListOwnedCollectionsUseCase,
	listEditableUC *usecases.ListEditableCollectionsUseCase,
	listSubscribedUC *usecases.ListSubscribedCollectionsUseCase,
	listGuildActiveUC *usecases.ListGuildCollectionsUseCase,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscribeUC:       subscribeUC,
		unsubscribeUC:     unsubscribeUC,
		getSubscriptionUC: getSubscriptionUC,
		setServerActiveUC: setServerActiveUC,
		unsetServerActive: unsetServerActive,
		guildCheckUC:      guildCheckUC,
		listOwnedUC:       listOwnedUC,
		listEditableUC:    listEditableUC,
		listSubscribedUC:  listSubscribedUC,
		listGuildActiveUC: listGuildActiveUC,
		logger:            logger.NewLogger(),
	}
}

type SubscribeRequest struct {
	AliasBindings   []dto.BindingDTO `json:"alias_bindings"`
	SnippetBindings []dto.BindingDTO `json:"snippet_bindings"`
}

type ServerActiveRequest struct {
	GuildID         string           `json:"guild_id" binding:"required"`
	AliasBindings   []dto.BindingDTO `json:"alias_bindings"`
	SnippetBindings []dto.BindingDTO `json:"snippet_bindings"`
}

type ServerInactiveRequest struct {
	GuildID string `json:"guild_id" binding:"required"`
}

func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	collectionID, err := collectionIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SubscribeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for subscribe", "error", err)
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	result, err := h.subscribeUC.Execute(c.Request.Context(), usecases.SubscribeCommand{
		CollectionID:    collectionID,
		AliasBindings:   req.AliasBindings,
		SnippetBindings: req.SnippetBindings,
	}, actorFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscribed", result)
}

func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	collectionID, err := collectionIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.unsubscribeUC.Execute(c.Request.Context(), collectionID, actorFrom(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *SubscriptionHandler) GetMySubscription(c *gin.Context) {
	collectionID, err := collectionIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getSubscriptionUC.Personal(c.Request.Context(), collectionID, actorFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SubscriptionHandler) GetGuildSubscription(c *gin.Context) {
	collectionID, err := collectionIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	guildID, err := parseSnowflakeParam(c, "guildID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getSubscriptionUC.Guild(c.Request.Context(), collectionID, guildID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SubscriptionHandler) SetServerActive(c *gin.Context) {
	collectionID, err := collectionIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ServerActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	guildID, err := dto.ParseSnowflake(req.GuildID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.setServerActiveUC.Execute(c.Request.Context(), usecases.ServerActiveCommand{
		CollectionID:    collectionID,
		GuildID:         guildID,
		DiscordToken:    discordToken(c),
		AliasBindings:   req.AliasBindings,
		SnippetBindings: req.SnippetBindings,
	}, actorFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Collection activated for server", result)
}

func (h *SubscriptionHandler) UnsetServerActive(c *gin.Context) {
	collectionID, err := collectionIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ServerInactiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	guildID, err := dto.ParseSnowflake(req.GuildID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.unsetServerActive.Execute(c.Request.Context(), collectionID, guildID, discordToken(c), actorFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GuildCheck reports whether the caller may manage server aliases in the
// given guild, without mutating anything. Clients use it to grey out UI.
func (h *SubscriptionHandler) GuildCheck(c *gin.Context) {
	guildID := c.Query("guild_id")
	if guildID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "guild_id is required")
		return
	}

	result, err := h.guildCheckUC.Execute(c.Request.Context(), discordToken(c), guildID, actorFrom(c).UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SubscriptionHandler) ListOwned(c *gin.Context) {
	result, err := h.listOwnedUC.Execute(c.Request.Context(), actorFrom(c).UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SubscriptionHandler) ListEditable(c *gin.Context) {
	result, err := h.listEditableUC.Execute(c.Request.Context(), actorFrom(c).UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SubscriptionHandler) ListSubscribed(c *gin.Context) {
	result, err := h.listSubscribedUC.Execute(c.Request.Context(), actorFrom(c).UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SubscriptionHandler) ListGuildActive(c *gin.Context) {
	guildID, err := parseSnowflakeParam(c, "guildID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listGuildActiveUC.Execute(c.Request.Context(), guildID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

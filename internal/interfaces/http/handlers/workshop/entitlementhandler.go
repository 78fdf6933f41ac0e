package workshop

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vellum-app/vellum/internal/application/workshop/dto"
	"github.com/vellum-app/vellum/internal/application/workshop/usecases"
	"github.com/vellum-app/vellum/internal/shared/logger"
	"github.com/vellum-app/vellum/internal/shared/utils"
)

type EntitlementHandler struct {
	addUC    *usecases.AddEntitlementUseCase
	removeUC *usecases.RemoveEntitlementUseCase
	listUC   *usecases.ListEntitlementsUseCase
	logger   logger.Interface
}

func NewEntitlementHandler(
	addUC *usecases.AddEntitlementUseCase,
	removeUC *usecases.RemoveEntitlementUseCase,
	listUC *usecases.ListEntitlementsUseCase,
) *EntitlementHandler {
	return &EntitlementHandler{
		addUC:    addUC,
		removeUC: removeUC,
		listUC:   listUC,
		logger:   logger.NewLogger(),
	}
}

type EntitlementRequest struct {
	EntityType string `json:"entity_type" binding:"required"`
	EntityID   string `json:"entity_id" binding:"required"`
}

func (r *EntitlementRequest) entityID() (int64, error) {
	return dto.ParseSnowflake(r.EntityID)
}

func (h *EntitlementHandler) List(kind usecases.CollectableKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := collectableIDParam(c, kind)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		result, err := h.listUC.Execute(c.Request.Context(), kind, id, actorFrom(c))
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "", result)
	}
}

func (h *EntitlementHandler) Add(kind usecases.CollectableKind, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := collectableIDParam(c, kind)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		var req EntitlementRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		entityID, err := req.entityID()
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		err = h.addUC.Execute(c.Request.Context(), usecases.AddEntitlementCommand{
			Kind:       kind,
			ID:         id,
			EntityType: req.EntityType,
			EntityID:   entityID,
			Required:   required,
		}, actorFrom(c))
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "Entitlement added", nil)
	}
}

func (h *EntitlementHandler) Remove(kind usecases.CollectableKind, ignoreRequired bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := collectableIDParam(c, kind)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		var req EntitlementRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		entityID, err := req.entityID()
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		err = h.removeUC.Execute(c.Request.Context(), usecases.RemoveEntitlementCommand{
			Kind:           kind,
			ID:             id,
			EntityType:     req.EntityType,
			EntityID:       entityID,
			IgnoreRequired: ignoreRequired,
		}, actorFrom(c))
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "Entitlement removed", nil)
	}
}

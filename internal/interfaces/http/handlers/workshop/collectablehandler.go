package workshop

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vellum-app/vellum/internal/application/workshop/usecases"
	"github.com/vellum-app/vellum/internal/shared/errors"
	"github.com/vellum-app/vellum/internal/shared/logger"
	"github.com/vellum-app/vellum/internal/shared/utils"
)

// CollectableHandler serves aliases and snippets through the same endpoints,
// parameterized by kind at route registration time.
type CollectableHandler struct {
	createAliasUC      *usecases.CreateAliasUseCase
	createSnippetUC    *usecases.CreateSnippetUseCase
	getAliasUC         *usecases.GetAliasUseCase
	getSnippetUC       *usecases.GetSnippetUseCase
	updateAliasUC      *usecases.UpdateAliasUseCase
	updateSnippetUC    *usecases.UpdateSnippetUseCase
	deleteAliasUC      *usecases.DeleteAliasUseCase
	deleteSnippetUC    *usecases.DeleteSnippetUseCase
	listVersionsUC     *usecases.ListCodeVersionsUseCase
	createVersionUC    *usecases.CreateCodeVersionUseCase
	setActiveVersionUC *usecases.SetActiveCodeVersionUseCase
	logger             logger.Interface
}

func NewCollectableHandler(
	createAliasUC *usecases.CreateAliasUseCase,
	createSnippetUC *usecases.CreateSnippetUseCase,
	getAliasUC *usecases.GetAliasUseCase,
	getSnippetUC *usecases.GetSnippetUseCase,
	updateAliasUC *usecases.UpdateAliasUseCase,
	updateSnippetUC *usecases.UpdateSnippetUseCase,
	deleteAliasUC *usecases.DeleteAliasUseCase,
	deleteSnippetUC *usecases.DeleteSnippetUseCase,
	listVersionsUC *usecases.ListCodeVersionsUseCase,
	createVersionUC *usecases.CreateCodeVersionUseCase,
	setActiveVersionUC *usecases.SetActiveCodeVersionUseCase,
) *CollectableHandler {
	return &CollectableHandler{
		createAliasUC:      createAliasUC,
		createSnippetUC:    createSnippetUC,
		getAliasUC:         getAliasUC,
		getSnippetUC:       getSnippetUC,
		updateAliasUC:      updateAliasUC,
		updateSnippetUC:    updateSnippetUC,
		deleteAliasUC:      deleteAliasUC,
		deleteSnippetUC:    deleteSnippetUC,
		listVersionsUC:     listVersionsUC,
		createVersionUC:    createVersionUC,
		setActiveVersionUC: setActiveVersionUC,
		logger:             logger.NewLogger(),
	}
}

type CreateCollectableRequest struct {
	Name string `json:"name" binding:"required"`
	Docs string `json:"docs"`
}

type UpdateCollectableRequest struct {
	Name string `json:"name" binding:"required"`
	Docs string `json:"docs"`
}

type CreateCodeVersionRequest struct {
	Content string `json:"content" binding:"required"`
}

type SetActiveVersionRequest struct {
	Version int `json:"version" binding:"required"`
}

func (h *CollectableHandler) CreateAlias(c *gin.Context) {
	collectionID, err := collectionIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateCollectableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create alias", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createAliasUC.Execute(c.Request.Context(), usecases.CreateAliasCommand{
		CollectionID: collectionID,
		Name:         req.Name,
		Docs:         req.Docs,
	}, actorFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Alias created successfully")
}

func (h *CollectableHandler) CreateSubAlias(c *gin.Context) {
	parentID, err := collectableIDParam(c, usecases.CollectableAlias)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateCollectableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createAliasUC.Execute(c.Request.Context(), usecases.CreateAliasCommand{
		ParentAliasID: &parentID,
		Name:          req.Name,
		Docs:          req.Docs,
	}, actorFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Subcommand created successfully")
}

func (h *CollectableHandler) CreateSnippet(c *gin.Context) {
	collectionID, err := collectionIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateCollectableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create snippet", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createSnippetUC.Execute(c.Request.Context(), usecases.CreateSnippetCommand{
		CollectionID: collectionID,
		Name:         req.Name,
		Docs:         req.Docs,
	}, actorFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Snippet created successfully")
}

func (h *CollectableHandler) Get(kind usecases.CollectableKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := collectableIDParam(c, kind)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		var result any
		if kind == usecases.CollectableAlias {
			result, err = h.getAliasUC.Execute(c.Request.Context(), id, actorFrom(c))
		} else {
			result, err = h.getSnippetUC.Execute(c.Request.Context(), id, actorFrom(c))
		}
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "", result)
	}
}

func (h *CollectableHandler) Update(kind usecases.CollectableKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := collectableIDParam(c, kind)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		var req UpdateCollectableRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		var result any
		if kind == usecases.CollectableAlias {
			result, err = h.updateAliasUC.Execute(c.Request.Context(), usecases.UpdateAliasCommand{
				AliasID: id,
				Name:    req.Name,
				Docs:    req.Docs,
			}, actorFrom(c))
		} else {
			result, err = h.updateSnippetUC.Execute(c.Request.Context(), usecases.UpdateSnippetCommand{
				SnippetID: id,
				Name:      req.Name,
				Docs:      req.Docs,
			}, actorFrom(c))
		}
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "Updated successfully", result)
	}
}

func (h *CollectableHandler) Delete(kind usecases.CollectableKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := collectableIDParam(c, kind)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		if kind == usecases.CollectableAlias {
			err = h.deleteAliasUC.Execute(c.Request.Context(), id, actorFrom(c))
		} else {
			err = h.deleteSnippetUC.Execute(c.Request.Context(), id, actorFrom(c))
		}
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.NoContentResponse(c)
	}
}

func (h *CollectableHandler) ListCodeVersions(kind usecases.CollectableKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := collectableIDParam(c, kind)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		page := 1
		if raw := c.Query("page"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				utils.ErrorResponseWithError(c, errors.NewValidationError("invalid page"))
				return
			}
			page = parsed
		}

		result, err := h.listVersionsUC.Execute(c.Request.Context(), kind, id, page, actorFrom(c))
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
	}
}

func (h *CollectableHandler) CreateCodeVersion(kind usecases.CollectableKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := collectableIDParam(c, kind)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		var req CreateCodeVersionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		result, err := h.createVersionUC.Execute(c.Request.Context(), usecases.CreateCodeVersionCommand{
			Kind:    kind,
			ID:      id,
			Content: req.Content,
		}, actorFrom(c))
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.CreatedResponse(c, result, "Code version created")
	}
}

func (h *CollectableHandler) SetActiveCodeVersion(kind usecases.CollectableKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := collectableIDParam(c, kind)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		var req SetActiveVersionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		result, err := h.setActiveVersionUC.Execute(c.Request.Context(), kind, id, req.Version, actorFrom(c))
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "Active code version updated", result)
	}
}

package workshop

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vellum-app/vellum/internal/application/workshop/usecases"
	"github.com/vellum-app/vellum/internal/shared/logger"
	"github.com/vellum-app/vellum/internal/shared/utils"
)

type CollectionHandler struct {
	createUC    *usecases.CreateCollectionUseCase
	getUC       *usecases.GetCollectionUseCase
	getFullUC   *usecases.GetCollectionFullUseCase
	batchGetUC  *usecases.BatchGetCollectionsUseCase
	updateUC    *usecases.UpdateCollectionUseCase
	deleteUC    *usecases.DeleteCollectionUseCase
	setStateUC  *usecases.SetCollectionStateUseCase
	addTagUC    *usecases.AddCollectionTagUseCase
	removeTagUC *usecases.RemoveCollectionTagUseCase
	listTagsUC  *usecases.ListTagsUseCase
	logger      logger.Interface
}

func NewCollectionHandler(
	createUC *usecases.CreateCollectionUseCase,
	getUC *usecases.GetCollectionUseCase,
	getFullUC *usecases.GetCollectionFullUseCase,
	batchGetUC *usecases.BatchGetCollectionsUseCase,
	updateUC *usecases.UpdateCollectionUseCase,
	deleteUC *usecases.DeleteCollectionUseCase,
	setStateUC *usecases.SetCollectionStateUseCase,
	addTagUC *usecases.AddCollectionTagUseCase,
	removeTagUC *usecases.RemoveCollectionTagUseCase,
	listTagsUC *usecases.ListTagsUseCase,
) *CollectionHandler {
	return &CollectionHandler{
		createUC:    createUC,
		getUC:       getUC,
		getFullUC:   getFullUC,
		batchGetUC:  batchGetUC,
		updateUC:    updateUC,
		deleteUC:    deleteUC,
		setStateUC:  setStateUC,
		addTagUC:    addTagUC,
		removeTagUC: removeTagUC,
		listTagsUC:  listTagsUC,
		logger:      logger.NewLogger(),
	}
}

type CreateCollectionRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Image       string `json:"image"`
}

type UpdateCollectionRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Image       string `json:"image"`
}

type SetStateRequest struct {
	State string `json:"state" binding:"required"`
}

type TagRequest struct {
	Tag string `json:"tag" binding:"required"`
}

func (h *CollectionHandler) CreateCollection(c *gin.Context) {
	var req CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create collection", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateCollectionCommand{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Owner:       actorFrom(c).UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Collection created successfully")
}

func (h *CollectionHandler) GetCollection(c *gin.Context) {
	collectionID, err := collectionIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), collectionID, actorFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CollectionHandler) GetCollectionFull(c *gin.Context) {
	collectionID, err := collectionIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getFullUC.Execute(c.Request.Context(), collectionID, actorFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// BatchGetCollections resolves up to 100 ids from the comma-separated "c"
// query parameter. Private collections the caller cannot see are omitted,
// not errors.
func (h *CollectionHandler) BatchGetCollections(c *gin.Context) {
	raw := c.Query("c")
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	result, err := h.batchGetUC.Execute(c.Request.Context(), ids, actorFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CollectionHandler) UpdateCollection(c *gin.Context) {
	collectionID, err := collectionIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update collection", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateCollectionCommand{
		CollectionID: collectionID,
		Name:         req.Name,
		Description:  req.Description,
		Image:        req.Image,
	}, actorFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Collection updated successfully", result)
}

func (h *CollectionHandler) DeleteCollection(c *gin.Context) {
	collectionID, err := collectionIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), collectionID, actorFrom(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *CollectionHandler) SetCollectionState(c *gin.Context) {
	collectionID, err := collectionIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.setStateUC.Execute(c.Request.Context(), usecases.SetCollectionStateCommand{
		CollectionID: collectionID,
		State:        req.State,
	}, actorFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Collection state updated", result)
}

func (h *CollectionHandler) AddTag(c *gin.Context) {
	collectionID, err := collectionIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addTagUC.Execute(c.Request.Context(), collectionID, req.Tag, actorFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tag added", result)
}

func (h *CollectionHandler) RemoveTag(c *gin.Context) {
	collectionID, err := collectionIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.removeTagUC.Execute(c.Request.Context(), collectionID, req.Tag, actorFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tag removed", result)
}

func (h *CollectionHandler) ListTags(c *gin.Context) {
	result, err := h.listTagsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

package workshop

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vellum-app/vellum/internal/application/workshop/usecases"
	"github.com/vellum-app/vellum/internal/shared/logger"
	"github.com/vellum-app/vellum/internal/shared/utils"
)

type EditorHandler struct {
	addUC    *usecases.AddEditorUseCase
	removeUC *usecases.RemoveEditorUseCase
	listUC   *usecases.ListEditorsUseCase
	logger   logger.Interface
}

func NewEditorHandler(
	addUC *usecases.AddEditorUseCase,
	removeUC *usecases.RemoveEditorUseCase,
	listUC *usecases.ListEditorsUseCase,
) *EditorHandler {
	return &EditorHandler{
		addUC:    addUC,
		removeUC: removeUC,
		listUC:   listUC,
		logger:   logger.NewLogger(),
	}
}

func (h *EditorHandler) AddEditor(c *gin.Context) {
	collectionID, err := collectionIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	editorID, err := parseSnowflakeParam(c, "userID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.addUC.Execute(c.Request.Context(), collectionID, editorID, actorFrom(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Editor added", nil)
}

func (h *EditorHandler) RemoveEditor(c *gin.Context) {
	collectionID, err := collectionIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	editorID, err := parseSnowflakeParam(c, "userID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.removeUC.Execute(c.Request.Context(), collectionID, editorID, actorFrom(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Editor removed", nil)
}

func (h *EditorHandler) ListEditors(c *gin.Context) {
	collectionID, err := collectionIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), collectionID, actorFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

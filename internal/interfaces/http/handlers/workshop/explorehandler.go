package workshop

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vellum-app/vellum/internal/application/workshop/usecases"
	"github.com/vellum-app/vellum/internal/shared/errors"
	"github.com/vellum-app/vellum/internal/shared/logger"
	"github.com/vellum-app/vellum/internal/shared/utils"
)

type ExploreHandler struct {
	exploreUC *usecases.ExploreCollectionsUseCase
	logger    logger.Interface
}

func NewExploreHandler(exploreUC *usecases.ExploreCollectionsUseCase) *ExploreHandler {
	return &ExploreHandler{
		exploreUC: exploreUC,
		logger:    logger.NewLogger(),
	}
}

// Explore returns a page of collection ids ranked by the requested order.
// Tags come in as a comma-separated list.
func (h *ExploreHandler) Explore(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid page"))
			return
		}
		page = parsed
	}

	var tags []string
	if raw := c.Query("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	result, err := h.exploreUC.Execute(c.Request.Context(), usecases.ExploreQuery{
		Order: c.Query("order"),
		Query: c.Query("q"),
		Tags:  tags,
		Page:  page,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

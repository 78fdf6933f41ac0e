package workshop

import (
	"github.com/gin-gonic/gin"

	"github.com/vellum-app/vellum/internal/application/workshop/dto"
	"github.com/vellum-app/vellum/internal/application/workshop/usecases"
	"github.com/vellum-app/vellum/internal/shared/constants"
	"github.com/vellum-app/vellum/internal/shared/errors"
	"github.com/vellum-app/vellum/internal/shared/id"
	"github.com/vellum-app/vellum/internal/shared/utils"
)

func actorFrom(c *gin.Context) usecases.Actor {
	return usecases.Actor{
		UserID:    c.GetInt64(constants.ContextKeyUserID),
		Moderator: c.GetBool(constants.ContextKeyModerator),
	}
}

func discordToken(c *gin.Context) string {
	return c.GetString(constants.ContextKeyDiscordToken)
}

func parseSnowflakeParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	parsed, err := dto.ParseSnowflake(raw)
	if err != nil {
		return 0, errors.NewValidationError("invalid " + name)
	}
	return parsed, nil
}

func collectionIDParam(c *gin.Context) (string, error) {
	return utils.ParseSIDParam(c, "id", id.PrefixCollection, "collection")
}

func collectableIDParam(c *gin.Context, kind usecases.CollectableKind) (string, error) {
	if kind == usecases.CollectableAlias {
		return utils.ParseSIDParam(c, "id", id.PrefixAlias, "alias")
	}
	return utils.ParseSIDParam(c, "id", id.PrefixSnippet, "snippet")
}

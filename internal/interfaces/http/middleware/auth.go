package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vellum-app/vellum/internal/domain/permission"
	"github.com/vellum-app/vellum/internal/infrastructure/auth"
	"github.com/vellum-app/vellum/internal/shared/constants"
	"github.com/vellum-app/vellum/internal/shared/logger"
	"github.com/vellum-app/vellum/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	enforcer   permission.Enforcer
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, enforcer permission.Enforcer) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		enforcer:   enforcer,
		logger:     logger.NewLogger(),
	}
}

// RequireAuth validates the Bearer token and stores the caller's identity
// in the request context. The Discord OAuth2 token, when the client sends
// one, rides along for guild permission checks downstream.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Debugw("token verification failed", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyModerator, m.isModerator(claims))

		if token := c.GetHeader("X-Discord-Token"); token != "" {
			c.Set(constants.ContextKeyDiscordToken, token)
		}

		c.Next()
	}
}

// RequireModerator gates moderation-only routes. It must run after RequireAuth.
func (m *AuthMiddleware) RequireModerator() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(constants.ContextKeyModerator) {
			utils.ErrorResponse(c, http.StatusForbidden, "Moderator access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (m *AuthMiddleware) isModerator(claims *auth.Claims) bool {
	if claims.Moderator {
		return true
	}
	if m.enforcer == nil {
		return false
	}

	subject := strconv.FormatInt(claims.UserID, 10)
	allowed, err := m.enforcer.Enforce(subject, permission.ObjectModeration, permission.ActionWrite)
	if err != nil {
		m.logger.Warnw("moderation policy check failed", "user_id", claims.UserID, "error", err)
		return false
	}
	return allowed
}

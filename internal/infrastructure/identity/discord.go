// Package identity talks to the Discord API for guild membership and
// role lookups. User-scoped calls carry the user's OAuth2 bearer token,
// guild-scoped calls use the bot token.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/oauth2"

	"github.com/vellum-app/vellum/internal/shared/config"
	"github.com/vellum-app/vellum/internal/shared/errors"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

// Guild is a partial guild as returned by /users/@me/guilds.
type Guild struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Owner       bool   `json:"owner"`
	Permissions string `json:"permissions"`
}

// Role is a guild role.
type Role struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Permissions string `json:"permissions"`
}

// Member is a guild member with its role ids.
type Member struct {
	User struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	} `json:"user"`
	Roles []string `json:"roles"`
}

const permissionAdministrator = 0x8

// HasAdministrator reports whether the permission bitset string carries
// the administrator bit. Malformed bitsets count as no permission.
func HasAdministrator(permissions string) bool {
	bits, err := strconv.ParseUint(permissions, 10, 64)
	if err != nil {
		return false
	}
	return bits&permissionAdministrator != 0
}

// Client is the Discord API boundary.
type Client interface {
	UserGuilds(ctx context.Context, token string) ([]Guild, error)
	GuildRoles(ctx context.Context, guildID string) ([]Role, error)
	GuildMember(ctx context.Context, guildID, userID string) (*Member, error)
}

type discordClient struct {
	baseURL    string
	botToken   string
	httpClient *http.Client
	logger     logger.Interface
}

// NewClient builds a Discord API client from configuration.
func NewClient(cfg *config.DiscordConfig, log logger.Interface) Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &discordClient{
		baseURL:    cfg.APIBaseURL,
		botToken:   cfg.BotToken,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

// UserGuilds lists the guilds the user belongs to, using their OAuth2 token.
func (c *discordClient) UserGuilds(ctx context.Context, token string) ([]Guild, error) {
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	client := oauth2.NewClient(ctx, source)
	client.Timeout = c.httpClient.Timeout

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/@me/guilds", nil)
	if err != nil {
		return nil, errors.NewInternalError("failed to build discord request", err.Error())
	}

	var guilds []Guild
	if err := c.do(client, req, &guilds); err != nil {
		return nil, err
	}
	return guilds, nil
}

// GuildRoles lists the roles of a guild via the bot token.
func (c *discordClient) GuildRoles(ctx context.Context, guildID string) ([]Role, error) {
	req, err := c.botRequest(ctx, fmt.Sprintf("%s/guilds/%s/roles", c.baseURL, guildID))
	if err != nil {
		return nil, err
	}

	var roles []Role
	if err := c.do(c.httpClient, req, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// GuildMember fetches a guild member via the bot token. A 404 from Discord
// maps to a not found error so callers can treat non-membership distinctly.
func (c *discordClient) GuildMember(ctx context.Context, guildID, userID string) (*Member, error) {
	req, err := c.botRequest(ctx, fmt.Sprintf("%s/guilds/%s/members/%s", c.baseURL, guildID, userID))
	if err != nil {
		return nil, err
	}

	var member Member
	if err := c.do(c.httpClient, req, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (c *discordClient) botRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewInternalError("failed to build discord request", err.Error())
	}
	req.Header.Set("Authorization", "Bot "+c.botToken)
	return req, nil
}

func (c *discordClient) do(client *http.Client, req *http.Request, out interface{}) error {
	resp, err := client.Do(req)
	if err != nil {
		c.logger.Errorw("discord request failed", "url", req.URL.Path, "error", err)
		return errors.NewUpstreamError("discord api unreachable", err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errors.NewUpstreamError("failed to read discord response", err.Error())
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errors.NewNotFoundError("discord resource not found")
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return errors.NewUnauthorizedError("discord rejected credentials")
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.logger.Warnw("discord returned unexpected status",
			"url", req.URL.Path,
			"status", resp.StatusCode)
		return errors.NewUpstreamError(fmt.Sprintf("discord api returned status %d", resp.StatusCode))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.NewUpstreamError("failed to decode discord response", err.Error())
	}
	return nil
}

package identity

import (
	"context"
	"strconv"
	"strings"

	"github.com/vellum-app/vellum/internal/shared/errors"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

// Role names that grant server alias management without guild admin.
var aliaserRoleNames = map[string]struct{}{
	"server aliaser": {},
	"dragonspeaker":  {},
}

// GuildPermissionChecker decides whether a user may manage server-active
// subscriptions for a guild.
type GuildPermissionChecker struct {
	client Client
	logger logger.Interface
}

func NewGuildPermissionChecker(client Client, log logger.Interface) *GuildPermissionChecker {
	return &GuildPermissionChecker{client: client, logger: log}
}

// CanEditServerAliases checks the guild permission rule. The user must be in
// the guild; within it, ownership or the administrator bit is enough,
// otherwise one of the aliaser roles is required.
func (c *GuildPermissionChecker) CanEditServerAliases(ctx context.Context, token string, guildID string, userID int64) error {
	guilds, err := c.client.UserGuilds(ctx, token)
	if err != nil {
		return err
	}

	var guild *Guild
	for i := range guilds {
		if guilds[i].ID == guildID {
			guild = &guilds[i]
			break
		}
	}
	if guild == nil {
		return errors.NewNotFoundError("you are not a member of that server")
	}

	if guild.Owner || HasAdministrator(guild.Permissions) {
		return nil
	}

	member, err := c.client.GuildMember(ctx, guildID, strconv.FormatInt(userID, 10))
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError("you are not a member of that server")
		}
		return err
	}

	roles, err := c.client.GuildRoles(ctx, guildID)
	if err != nil {
		return err
	}

	memberRoles := make(map[string]struct{}, len(member.Roles))
	for _, id := range member.Roles {
		memberRoles[id] = struct{}{}
	}

	for _, role := range roles {
		if _, ok := memberRoles[role.ID]; !ok {
			continue
		}
		if _, ok := aliaserRoleNames[strings.ToLower(role.Name)]; ok {
			return nil
		}
		if HasAdministrator(role.Permissions) {
			return nil
		}
	}

	return errors.NewForbiddenError(
		"you do not have permission to manage server aliases; ask a server admin for the \"Server Aliaser\" role")
}

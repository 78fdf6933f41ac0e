package usecases

import (
	"context"

	"github.com/vellum-app/vellum/internal/shared/errors"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

// GuildCheckResult reports whether the caller can manage server aliases in a
// guild, distinguishing "no permission" from "not in that guild".
type GuildCheckResult struct {
	CanEdit bool   `json:"can_edit"`
	Reason  string `json:"reason,omitempty"`
}

type CheckGuildPermissionsUseCase struct {
	guildPerms GuildPermissions
	logger     logger.Interface
}

func NewCheckGuildPermissionsUseCase(guildPerms GuildPermissions, logger logger.Interface) *CheckGuildPermissionsUseCase {
	return &CheckGuildPermissionsUseCase{guildPerms: guildPerms, logger: logger}
}

func (uc *CheckGuildPermissionsUseCase) Execute(ctx context.Context, token, guildID string, userID int64) (*GuildCheckResult, error) {
	err := uc.guildPerms.CanEditServerAliases(ctx, token, guildID, userID)
	if err == nil {
		return &GuildCheckResult{CanEdit: true}, nil
	}

	if errors.IsForbiddenError(err) || errors.IsNotFoundError(err) {
		return &GuildCheckResult{CanEdit: false, Reason: err.Error()}, nil
	}
	return nil, err
}

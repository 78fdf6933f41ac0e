package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

const reservedCommandsKey = "workshop:reserved_commands"

// defaultReservedCommands are the bot's built-in command names. The Redis set
// is the live source so the bot process can extend it at startup; this list
// seeds the set when it is empty.
var defaultReservedCommands = []string{
	"help", "roll", "multiroll", "iterroll", "init", "combat", "cast",
	"attack", "check", "save", "game", "spellbook", "randchar", "import",
	"sheet", "token", "alias", "snippet", "servalias", "servsnippet",
	"workshop", "customization", "echo", "embed", "ping", "prefix",
}

// RedisReservedCommandSource implements workshop.ReservedCommandSource on a
// Redis set shared with the bot process.
type RedisReservedCommandSource struct {
	client *redis.Client
	logger logger.Interface
}

// NewRedisReservedCommandSource creates a new Redis-backed reserved command source
func NewRedisReservedCommandSource(client *redis.Client, logger logger.Interface) workshop.ReservedCommandSource {
	return &RedisReservedCommandSource{
		client: client,
		logger: logger,
	}
}

// ReservedNames returns the current reserved command-name set, seeding it
// with the built-in defaults when empty.
func (s *RedisReservedCommandSource) ReservedNames(ctx context.Context) (workshop.ReservedNames, error) {
	names, err := s.client.SMembers(ctx, reservedCommandsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get reserved commands: %w", err)
	}

	if len(names) == 0 {
		seed := make([]interface{}, len(defaultReservedCommands))
		for i, name := range defaultReservedCommands {
			seed[i] = name
		}
		if err := s.client.SAdd(ctx, reservedCommandsKey, seed...).Err(); err != nil {
			s.logger.Warnw("failed to seed reserved commands", "error", err)
		}
		names = defaultReservedCommands
	}

	set := make(workshop.ReservedNameSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set, nil
}

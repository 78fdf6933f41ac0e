package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/vellum-app/vellum/internal/domain/permission"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

var _ permission.Enforcer = (*Enforcer)(nil)

// Enforcer backs role checks with a casbin RBAC model persisted through
// the gorm adapter, so moderator grants survive restarts.
type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

func NewEnforcer(db *gorm.DB, modelPath string, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(modelPath, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

func (e *Enforcer) Enforce(subject, object, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(subject, object, action)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "subject", subject, "object", object, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

func (e *Enforcer) AddRoleForUser(user, role string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	added, err := e.enforcer.AddRoleForUser(user, role)
	if err != nil {
		e.logger.Errorw("failed to add role for user", "error", err, "user", user, "role", role)
		return false, fmt.Errorf("failed to add role for user: %w", err)
	}

	if err := e.enforcer.SavePolicy(); err != nil {
		return false, fmt.Errorf("failed to save policy: %w", err)
	}
	return added, nil
}

func (e *Enforcer) DeleteRoleForUser(user, role string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	removed, err := e.enforcer.DeleteRoleForUser(user, role)
	if err != nil {
		e.logger.Errorw("failed to delete role for user", "error", err, "user", user, "role", role)
		return false, fmt.Errorf("failed to delete role for user: %w", err)
	}

	if err := e.enforcer.SavePolicy(); err != nil {
		return false, fmt.Errorf("failed to save policy: %w", err)
	}
	return removed, nil
}

func (e *Enforcer) GetRolesForUser(user string) ([]string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	roles, err := e.enforcer.GetRolesForUser(user)
	if err != nil {
		return nil, fmt.Errorf("failed to get roles for user: %w", err)
	}

	return roles, nil
}

// LoadPolicy reloads all policies from storage
func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}

	e.logger.Info("policy reloaded successfully")
	return nil
}

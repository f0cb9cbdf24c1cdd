package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"agroplan/internal/shared/logger"
)

// rbacModel grants actions to roles directly; users carry one role.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && (r.act == p.act || p.act == "*")
`

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer stores policies in the casbin_rule table through gorm-adapter
// and seeds DefaultPolicies on first start.
func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	e := &Enforcer{enforcer: enforcer, logger: log}
	if err := e.seed(); err != nil {
		return nil, err
	}
	return e, nil
}

// NewMemoryEnforcer keeps DefaultPolicies in memory only.
func NewMemoryEnforcer(log logger.Interface) (*Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	e := &Enforcer{enforcer: enforcer, logger: log}
	if err := e.seed(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Enforcer) seed() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for _, p := range DefaultPolicies {
		ok, err := e.enforcer.AddPolicy(p.Role, p.Resource, p.Action)
		if err != nil {
			e.logger.Errorw("failed to add permission policy",
				"error", err,
				"role", p.Role,
				"resource", p.Resource,
				"action", p.Action)
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p.Role, p.Resource, p.Action, err)
		}
		if ok {
			added++
		}
	}

	if added > 0 {
		e.logger.Infow("permission policies seeded", "added", added)
	}
	return nil
}

func (e *Enforcer) Enforce(role, resource, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role, resource, action)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	return allowed, nil
}

func (e *Enforcer) AddPolicy(role, resource, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddPolicy(role, resource, action); err != nil {
		e.logger.Errorw("failed to add policy", "error", err)
		return fmt.Errorf("failed to add policy: %w", err)
	}
	return nil
}

func (e *Enforcer) RemovePolicy(role, resource, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.RemovePolicy(role, resource, action); err != nil {
		e.logger.Errorw("failed to remove policy", "error", err)
		return fmt.Errorf("failed to remove policy: %w", err)
	}
	return nil
}

func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}
	e.logger.Info("policy reloaded successfully")
	return nil
}

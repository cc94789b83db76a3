package permission

import (
	"context"
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"soapbox/internal/domain/identity"
	"soapbox/internal/domain/permission"
	"soapbox/internal/shared/logger"
)

var _ permission.Service = (*Enforcer)(nil)

// rbacModel is the casbin model used for capability checks. Policies are
// keyed by role; role membership comes from the actor's claims, not from
// casbin grouping rules, so hosts stay in control of who holds which role.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// Enforcer answers capability questions with casbin policies persisted
// through the gorm adapter.
type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

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

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

func (e *Enforcer) CanVote(ctx context.Context, actor identity.Actor) (bool, error) {
	return e.check(actor, "ticket", "vote")
}

func (e *Enforcer) CanComment(ctx context.Context, actor identity.Actor) (bool, error) {
	return e.check(actor, "ticket", "comment")
}

func (e *Enforcer) CanEditTickets(ctx context.Context, actor identity.Actor) (bool, error) {
	return e.check(actor, "ticket", "edit")
}

func (e *Enforcer) CanManageBoards(ctx context.Context, actor identity.Actor) (bool, error) {
	return e.check(actor, "board", "manage")
}

func (e *Enforcer) CanViewAdminBoards(ctx context.Context, actor identity.Actor) (bool, error) {
	return e.check(actor, "board", "view_admin")
}

// check evaluates the capability against every role the actor holds; one
// allowing role is enough.
func (e *Enforcer) check(actor identity.Actor, resource, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, subject := range subjectsFor(actor) {
		allowed, err := e.enforcer.Enforce(subject, resource, action)
		if err != nil {
			e.logger.Errorw("permission check failed",
				"error", err, "subject", subject, "resource", resource, "action", action)
			return false, fmt.Errorf("permission check failed: %w", err)
		}
		if allowed {
			return true, nil
		}
	}
	return false, nil
}

// AddPolicy grants a role a capability and persists the change.
func (e *Enforcer) AddPolicy(role, resource, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, err := e.enforcer.AddPolicy(role, resource, action)
	if err != nil {
		e.logger.Errorw("failed to add policy", "error", err)
		return fmt.Errorf("failed to add policy: %w", err)
	}

	return e.enforcer.SavePolicy()
}

// RemovePolicy revokes a role's capability and persists the change.
func (e *Enforcer) RemovePolicy(role, resource, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, err := e.enforcer.RemovePolicy(role, resource, action)
	if err != nil {
		e.logger.Errorw("failed to remove policy", "error", err)
		return fmt.Errorf("failed to remove policy: %w", err)
	}

	return e.enforcer.SavePolicy()
}

// LoadPolicy reloads policies from storage.
func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}

	e.logger.Info("policy reloaded successfully")
	return nil
}

// subjectsFor maps an actor to the policy subjects checked on its behalf.
// Anonymous visitors evaluate as "anonymous"; authenticated actors without
// explicit roles evaluate as "user".
func subjectsFor(actor identity.Actor) []string {
	if actor.IsAnonymous() {
		return []string{"anonymous"}
	}
	if len(actor.Roles) == 0 {
		return []string{"user"}
	}
	return actor.Roles
}

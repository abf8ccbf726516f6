package access

import (
	"sync"

	"github.com/casbin/casbin/v2"
	casbinmodel "github.com/casbin/casbin/v2/model"
	"go.uber.org/zap"
)

const modelText = `
[request_definition]
r = sub, dom, act

[policy_definition]
p = sub, dom, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (p.dom == "*" || p.dom == r.dom) && (p.act == "*" || p.act == r.act)
`

//go:generate mockgen -source=gate.go -destination=mock/gate_mock.go -package=mock
type Gate interface {
	Allowed(id Identity, domain, action string) (bool, error)
}

type gate struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewGate(logger ...*zap.Logger) (Gate, error) {
	m, err := casbinmodel.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	l := zap.L().Named("access.gate")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("access.gate")
	}

	return &gate{enforcer: enforcer, logger: l}, nil
}

// Allowed rebuilds the policy for the requesting identity and enforces it.
// The enforcer is shared, so the identity's flags are loaded under the lock
// on every call.
func (g *gate) Allowed(id Identity, domain, action string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.enforcer.ClearPolicy()

	// Admin role holds a wildcard grant.
	if _, err := g.enforcer.AddPolicy("role:"+RoleAdmin, "*", "*"); err != nil {
		return false, err
	}

	sub := "role:" + RoleAdmin
	if !id.IsAdmin() {
		sub = "subadmin:" + id.ActorID
		for key, perm := range capabilityTable {
			if !id.HasFlag(perm) {
				continue
			}
			if _, err := g.enforcer.AddPolicy(sub, key.Domain, key.Action); err != nil {
				return false, err
			}
		}
	}

	allowed, err := g.enforcer.Enforce(sub, domain, action)
	if err != nil {
		g.logger.Error("enforce failed",
			zap.String("subject", sub),
			zap.String("domain", domain),
			zap.String("action", action),
			zap.Error(err),
		)
		return false, err
	}

	g.logger.Debug("enforce result",
		zap.String("subject", sub),
		zap.String("domain", domain),
		zap.String("action", action),
		zap.Bool("allowed", allowed),
	)

	return allowed, nil
}

package rbac

import (
	"context"
	"testing"

	"github.com/hoanvukhai/cafe-shop-management/internal/domain"
	"github.com/hoanvukhai/cafe-shop-management/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
)

type fakeRBACRepo struct {
	rows []RolePermission
	err  error
}

func (f *fakeRBACRepo) GetRolePermissions(ctx context.Context) ([]RolePermission, error) {
	return f.rows, f.err
}

func newLoadedService(t *testing.T, rows []RolePermission) Service {
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)

	svc := NewService(&fakeRBACRepo{rows: rows}, enforcer)
	assert.NoError(t, svc.LoadPolicy(context.Background()))
	return svc
}

func TestEnforce_AllowsSeededPermission(t *testing.T) {
	svc := newLoadedService(t, []RolePermission{
		{Role: "admin", Resource: "timesheet", Action: "manage"},
		{Role: "employee", Resource: "menu", Action: "read"},
	})

	allowed, err := svc.Enforce(domain.EnforceRequest{
		UserID:   "u1",
		Role:     "admin",
		Resource: "timesheet",
		Action:   "manage",
	})

	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestEnforce_DeniesMissingPermission(t *testing.T) {
	svc := newLoadedService(t, []RolePermission{
		{Role: "employee", Resource: "menu", Action: "read"},
	})

	allowed, err := svc.Enforce(domain.EnforceRequest{
		UserID:   "u2",
		Role:     "employee",
		Resource: "timesheet",
		Action:   "manage",
	})

	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestLoadPolicy_ReplacesOldPolicy(t *testing.T) {
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)

	repo := &fakeRBACRepo{rows: []RolePermission{
		{Role: "employee", Resource: "order", Action: "manage"},
	}}
	svc := NewService(repo, enforcer)
	assert.NoError(t, svc.LoadPolicy(context.Background()))

	repo.rows = []RolePermission{
		{Role: "employee", Resource: "menu", Action: "read"},
	}
	assert.NoError(t, svc.LoadPolicy(context.Background()))

	allowed, err := svc.Enforce(domain.EnforceRequest{
		UserID: "u3", Role: "employee", Resource: "order", Action: "manage",
	})
	assert.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = svc.Enforce(domain.EnforceRequest{
		UserID: "u3", Role: "employee", Resource: "menu", Action: "read",
	})
	assert.NoError(t, err)
	assert.True(t, allowed)
}

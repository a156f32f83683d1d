package rbac

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	rbacerrors "github.com/pittisunilkumar3/talent-spark-sub001/internal/rbac/errors"
)

type fakeRepo struct {
	Repository

	policies  []PolicyRow
	groupings []GroupingRow
	roles     map[string]*Role
	cats      map[string]*PermissionCategory

	replacedRoleID string
	replacedPerms  []RolePermission
	createdER      *EmployeeRole
	createERErr    error
}

func (f *fakeRepo) ListPolicyRows(ctx context.Context) ([]PolicyRow, error) {
	return f.policies, nil
}

func (f *fakeRepo) ListGroupingRows(ctx context.Context) ([]GroupingRow, error) {
	return f.groupings, nil
}

func (f *fakeRepo) GetRoleByID(ctx context.Context, id string) (*Role, error) {
	role, ok := f.roles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return role, nil
}

func (f *fakeRepo) GetCategoryByID(ctx context.Context, id string) (*PermissionCategory, error) {
	cat, ok := f.cats[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return cat, nil
}

func (f *fakeRepo) ReplaceRolePermissions(ctx context.Context, roleID string, perms []RolePermission) error {
	f.replacedRoleID = roleID
	f.replacedPerms = perms
	return nil
}

func (f *fakeRepo) CreateEmployeeRole(ctx context.Context, er *EmployeeRole) error {
	if f.createERErr != nil {
		return f.createERErr
	}
	f.createdER = er
	return nil
}

func newTestService(t *testing.T, repo Repository) Service {
	t.Helper()
	enforcer, err := NewEnforcer()
	require.NoError(t, err)
	return NewService(repo, enforcer)
}

func TestEnforceAllowsGrantedAction(t *testing.T) {
	repo := &fakeRepo{
		policies: []PolicyRow{
			{RoleID: "role-hr", Resource: "jobs", Action: ActionView},
			{RoleID: "role-hr", Resource: "jobs", Action: ActionAdd},
		},
		groupings: []GroupingRow{
			{EmployeeID: "emp-1", RoleID: "role-hr"},
		},
	}
	svc := newTestService(t, repo)

	allowed, err := svc.Enforce(context.Background(), "emp-1", "jobs", ActionView)
	assert.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = svc.Enforce(context.Background(), "emp-1", "jobs", ActionDelete)
	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestEnforceDeniesUnassignedEmployee(t *testing.T) {
	repo := &fakeRepo{
		policies: []PolicyRow{
			{RoleID: "role-hr", Resource: "jobs", Action: ActionView},
		},
	}
	svc := newTestService(t, repo)

	allowed, err := svc.Enforce(context.Background(), "emp-2", "jobs", ActionView)
	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestEnforcePicksUpPolicyChanges(t *testing.T) {
	repo := &fakeRepo{
		groupings: []GroupingRow{{EmployeeID: "emp-1", RoleID: "role-hr"}},
	}
	svc := newTestService(t, repo)

	allowed, err := svc.Enforce(context.Background(), "emp-1", "jobs", ActionView)
	assert.NoError(t, err)
	assert.False(t, allowed)

	// Each enforce reloads from the store, so new grants take effect
	// without restarting.
	repo.policies = []PolicyRow{{RoleID: "role-hr", Resource: "jobs", Action: ActionView}}

	allowed, err = svc.Enforce(context.Background(), "emp-1", "jobs", ActionView)
	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestUpdateRoleRejectsSystemRole(t *testing.T) {
	repo := &fakeRepo{
		roles: map[string]*Role{
			"role-sys": {ID: "role-sys", Name: "Superadmin", IsSystem: true},
		},
	}
	svc := newTestService(t, repo)

	_, err := svc.UpdateRole(context.Background(), "role-sys", UpdateRoleRequest{Name: "Renamed"})
	assert.ErrorIs(t, err, rbacerrors.ErrSystemRoleImmutable)

	err = svc.DeleteRole(context.Background(), "role-sys")
	assert.ErrorIs(t, err, rbacerrors.ErrSystemRoleImmutable)
}

func TestGetRoleMapsNotFound(t *testing.T) {
	svc := newTestService(t, &fakeRepo{roles: map[string]*Role{}})

	_, err := svc.GetRole(context.Background(), "missing")
	assert.ErrorIs(t, err, rbacerrors.ErrRoleNotFound)
}

func TestReplaceRolePermissionsValidatesCategories(t *testing.T) {
	repo := &fakeRepo{
		roles: map[string]*Role{
			"role-hr": {ID: "role-hr", Name: "HR"},
		},
		cats: map[string]*PermissionCategory{
			"cat-jobs": {ID: "cat-jobs", Code: "jobs", EnableView: true},
		},
	}
	svc := newTestService(t, repo)

	err := svc.ReplaceRolePermissions(context.Background(), "role-hr", "actor-1", ReplaceRolePermissionsRequest{
		Permissions: []PermissionGrant{
			{PermCategoryID: "cat-unknown", CanView: true},
		},
	})
	assert.ErrorIs(t, err, rbacerrors.ErrCategoryNotFound)

	err = svc.ReplaceRolePermissions(context.Background(), "role-hr", "actor-1", ReplaceRolePermissionsRequest{
		Permissions: []PermissionGrant{
			{PermCategoryID: "cat-jobs", CanView: true, CanEdit: true},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, "role-hr", repo.replacedRoleID)
	require.Len(t, repo.replacedPerms, 1)
	assert.Equal(t, "cat-jobs", repo.replacedPerms[0].PermCategoryID)
	assert.True(t, repo.replacedPerms[0].CanView)
	require.NotNil(t, repo.replacedPerms[0].CreatedBy)
	assert.Equal(t, "actor-1", *repo.replacedPerms[0].CreatedBy)
}

func TestCreateRoleSlugifiesName(t *testing.T) {
	repo := &fakeRepo{roles: map[string]*Role{}}
	created := &Role{}
	full := &fakeRepoWithCreate{fakeRepo: repo, created: created}
	svc := newTestService(t, full)

	role, err := svc.CreateRole(context.Background(), CreateRoleRequest{Name: "Branch  Manager"})
	assert.NoError(t, err)
	assert.Equal(t, "branch-manager", role.Slug)
	assert.True(t, role.IsActive)
	assert.NotEmpty(t, role.ID)
}

type fakeRepoWithCreate struct {
	*fakeRepo
	created *Role
}

func (f *fakeRepoWithCreate) CreateRole(ctx context.Context, role *Role) error {
	*f.created = *role
	return nil
}

func TestExpandGrantsHonorsEnableBits(t *testing.T) {
	rows := expandGrants([]grantRow{
		{
			RoleID: "role-1", Code: "jobs",
			CanView: true, CanAdd: true, CanDelete: true,
			EnableView: true, EnableAdd: false, EnableDelete: true,
		},
	})

	assert.ElementsMatch(t, []PolicyRow{
		{RoleID: "role-1", Resource: "jobs", Action: ActionView},
		{RoleID: "role-1", Resource: "jobs", Action: ActionDelete},
	}, rows)
}

package rbac

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"

	rbacerrors "github.com/pittisunilkumar3/talent-spark-sub001/internal/rbac/errors"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	// Enforcement
	Enforce(ctx context.Context, employeeID, resource, action string) (bool, error)
	ReloadPolicy(ctx context.Context) error

	// Roles
	ListRoles(ctx context.Context) ([]Role, error)
	GetRole(ctx context.Context, id string) (*Role, error)
	CreateRole(ctx context.Context, req CreateRoleRequest) (*Role, error)
	UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (*Role, error)
	DeleteRole(ctx context.Context, id string) error

	// Permission catalog
	ListGroups(ctx context.Context) ([]PermissionGroup, error)
	ListCategories(ctx context.Context, groupID string) ([]PermissionCategory, error)

	// Grants
	ListRolePermissions(ctx context.Context, roleID string) ([]RolePermissionResponse, error)
	ReplaceRolePermissions(ctx context.Context, roleID, actorID string, req ReplaceRolePermissionsRequest) error

	// Assignments
	AssignEmployeeRole(ctx context.Context, req AssignEmployeeRoleRequest) (*EmployeeRole, error)
	RevokeEmployeeRole(ctx context.Context, id string) error
	ListEmployeeRoles(ctx context.Context, employeeID string) ([]EmployeeRole, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac_service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac_service")
	}
	return &service{repo: repo, enforcer: enforcer, logger: l}
}

// ReloadPolicy rebuilds the in-memory policy set from the store. Grants
// mutated through this service trigger a reload themselves; call it after
// out-of-band changes.
func (s *service) ReloadPolicy(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reloadPolicyUnlocked(ctx)
}

func (s *service) reloadPolicyUnlocked(ctx context.Context) error {
	s.enforcer.ClearPolicy()

	groupings, err := s.repo.ListGroupingRows(ctx)
	if err != nil {
		return err
	}
	for _, g := range groupings {
		if _, err := s.enforcer.AddGroupingPolicy(g.EmployeeID, g.RoleID); err != nil {
			return err
		}
	}

	policies, err := s.repo.ListPolicyRows(ctx)
	if err != nil {
		return err
	}
	for _, p := range policies {
		if _, err := s.enforcer.AddPolicy(p.RoleID, p.Resource, p.Action); err != nil {
			return err
		}
	}

	s.logger.Debug("policy reloaded",
		zap.Int("groupings", len(groupings)),
		zap.Int("policies", len(policies)),
	)
	return nil
}

func (s *service) Enforce(ctx context.Context, employeeID, resource, action string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.reloadPolicyUnlocked(ctx); err != nil {
		return false, err
	}

	allowed, err := s.enforcer.Enforce(employeeID, resource, action)
	if err != nil {
		return false, err
	}

	s.logger.Debug("enforce",
		zap.String("employee_id", employeeID),
		zap.String("resource", resource),
		zap.String("action", action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) ListRoles(ctx context.Context) ([]Role, error) {
	return s.repo.ListRoles(ctx)
}

func (s *service) GetRole(ctx context.Context, id string) (*Role, error) {
	role, err := s.repo.GetRoleByID(ctx, id)
	if err != nil {
		return nil, mapRoleError(err)
	}
	return role, nil
}

func (s *service) CreateRole(ctx context.Context, req CreateRoleRequest) (*Role, error) {
	role := &Role{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Slug:        roleSlug(req.Name),
		Description: req.Description,
		IsActive:    true,
	}
	if err := s.repo.CreateRole(ctx, role); err != nil {
		return nil, mapRoleError(err)
	}
	return role, nil
}

func (s *service) UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (*Role, error) {
	role, err := s.repo.GetRoleByID(ctx, id)
	if err != nil {
		return nil, mapRoleError(err)
	}
	if role.IsSystem {
		return nil, rbacerrors.ErrSystemRoleImmutable
	}

	if req.Name != "" {
		role.Name = req.Name
		role.Slug = roleSlug(req.Name)
	}
	if req.Description != "" {
		role.Description = req.Description
	}
	if req.IsActive != nil {
		role.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateRole(ctx, role); err != nil {
		return nil, mapRoleError(err)
	}
	return role, nil
}

func (s *service) DeleteRole(ctx context.Context, id string) error {
	role, err := s.repo.GetRoleByID(ctx, id)
	if err != nil {
		return mapRoleError(err)
	}
	if role.IsSystem {
		return rbacerrors.ErrSystemRoleImmutable
	}
	return s.repo.SoftDeleteRole(ctx, id)
}

func (s *service) ListGroups(ctx context.Context) ([]PermissionGroup, error) {
	return s.repo.ListGroups(ctx)
}

func (s *service) ListCategories(ctx context.Context, groupID string) ([]PermissionCategory, error) {
	return s.repo.ListCategories(ctx, groupID)
}

func (s *service) ListRolePermissions(ctx context.Context, roleID string) ([]RolePermissionResponse, error) {
	if _, err := s.repo.GetRoleByID(ctx, roleID); err != nil {
		return nil, mapRoleError(err)
	}

	perms, err := s.repo.ListRolePermissions(ctx, roleID)
	if err != nil {
		return nil, err
	}

	out := make([]RolePermissionResponse, 0, len(perms))
	for _, p := range perms {
		resp := RolePermissionResponse{
			ID:             p.ID,
			PermCategoryID: p.PermCategoryID,
			BranchID:       p.BranchID,
			CanView:        p.CanView,
			CanAdd:         p.CanAdd,
			CanEdit:        p.CanEdit,
			CanDelete:      p.CanDelete,
		}
		if cat, err := s.repo.GetCategoryByID(ctx, p.PermCategoryID); err == nil {
			resp.CategoryCode = cat.Code
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *service) ReplaceRolePermissions(ctx context.Context, roleID, actorID string, req ReplaceRolePermissionsRequest) error {
	role, err := s.repo.GetRoleByID(ctx, roleID)
	if err != nil {
		return mapRoleError(err)
	}
	if role.IsSystem {
		return rbacerrors.ErrSystemRoleImmutable
	}

	perms := make([]RolePermission, 0, len(req.Permissions))
	for _, g := range req.Permissions {
		if _, err := s.repo.GetCategoryByID(ctx, g.PermCategoryID); err != nil {
			return rbacerrors.ErrCategoryNotFound
		}
		perm := RolePermission{
			ID:             uuid.NewString(),
			RoleID:         roleID,
			PermCategoryID: g.PermCategoryID,
			BranchID:       g.BranchID,
			CanView:        g.CanView,
			CanAdd:         g.CanAdd,
			CanEdit:        g.CanEdit,
			CanDelete:      g.CanDelete,
		}
		if actorID != "" {
			perm.CreatedBy = &actorID
		}
		perms = append(perms, perm)
	}

	if err := s.repo.ReplaceRolePermissions(ctx, roleID, perms); err != nil {
		return err
	}
	return s.ReloadPolicy(ctx)
}

func (s *service) AssignEmployeeRole(ctx context.Context, req AssignEmployeeRoleRequest) (*EmployeeRole, error) {
	if _, err := s.repo.GetRoleByID(ctx, req.RoleID); err != nil {
		return nil, mapRoleError(err)
	}

	er := &EmployeeRole{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		RoleID:     req.RoleID,
		BranchID:   req.BranchID,
		IsPrimary:  req.IsPrimary,
	}
	if err := s.repo.CreateEmployeeRole(ctx, er); err != nil {
		if isDuplicate(err) {
			return nil, rbacerrors.ErrRoleAssignmentExists
		}
		return nil, err
	}

	if err := s.ReloadPolicy(ctx); err != nil {
		s.logger.Warn("policy reload after assignment failed", zap.Error(err))
	}
	return er, nil
}

func (s *service) RevokeEmployeeRole(ctx context.Context, id string) error {
	if err := s.repo.DeleteEmployeeRole(ctx, id); err != nil {
		return err
	}
	if err := s.ReloadPolicy(ctx); err != nil {
		s.logger.Warn("policy reload after revocation failed", zap.Error(err))
	}
	return nil
}

func (s *service) ListEmployeeRoles(ctx context.Context, employeeID string) ([]EmployeeRole, error) {
	return s.repo.ListEmployeeRoles(ctx, employeeID)
}

func mapRoleError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, mongo.ErrNoDocuments) {
		return rbacerrors.ErrRoleNotFound
	}
	if isDuplicate(err) {
		return rbacerrors.ErrRoleAlreadyExists
	}
	return err
}

func isDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return mongo.IsDuplicateKeyError(err)
}

func roleSlug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}), "-")
	return s
}

package rbac

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	// Enforcer feeds
	ListPolicyRows(ctx context.Context) ([]PolicyRow, error)
	ListGroupingRows(ctx context.Context) ([]GroupingRow, error)

	// Role management
	ListRoles(ctx context.Context) ([]Role, error)
	GetRoleByID(ctx context.Context, id string) (*Role, error)
	CreateRole(ctx context.Context, role *Role) error
	UpdateRole(ctx context.Context, role *Role) error
	SoftDeleteRole(ctx context.Context, id string) error

	// Permission catalog
	ListGroups(ctx context.Context) ([]PermissionGroup, error)
	ListCategories(ctx context.Context, groupID string) ([]PermissionCategory, error)
	GetCategoryByID(ctx context.Context, id string) (*PermissionCategory, error)

	// Grants
	ListRolePermissions(ctx context.Context, roleID string) ([]RolePermission, error)
	ReplaceRolePermissions(ctx context.Context, roleID string, perms []RolePermission) error

	// Assignments
	CreateEmployeeRole(ctx context.Context, er *EmployeeRole) error
	DeleteEmployeeRole(ctx context.Context, id string) error
	ListEmployeeRoles(ctx context.Context, employeeID string) ([]EmployeeRole, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type grantRow struct {
	RoleID       string
	Code         string
	CanView      bool
	CanAdd       bool
	CanEdit      bool
	CanDelete    bool
	EnableView   bool
	EnableAdd    bool
	EnableEdit   bool
	EnableDelete bool
}

// ListPolicyRows flattens granted capability bits into (role, resource,
// action) rows, keeping only capabilities the category actually enables.
func (r *repository) ListPolicyRows(ctx context.Context) ([]PolicyRow, error) {
	var grants []grantRow
	err := r.db.WithContext(ctx).
		Table("role_permissions").
		Select(`role_permissions.role_id, permission_categories.code,
			role_permissions.can_view, role_permissions.can_add,
			role_permissions.can_edit, role_permissions.can_delete,
			permission_categories.enable_view, permission_categories.enable_add,
			permission_categories.enable_edit, permission_categories.enable_delete`).
		Joins("JOIN permission_categories ON permission_categories.id = role_permissions.perm_category_id").
		Where("permission_categories.is_active = ?", true).
		Scan(&grants).Error
	if err != nil {
		return nil, err
	}

	return expandGrants(grants), nil
}

func expandGrants(grants []grantRow) []PolicyRow {
	var rows []PolicyRow
	for _, g := range grants {
		if g.CanView && g.EnableView {
			rows = append(rows, PolicyRow{RoleID: g.RoleID, Resource: g.Code, Action: ActionView})
		}
		if g.CanAdd && g.EnableAdd {
			rows = append(rows, PolicyRow{RoleID: g.RoleID, Resource: g.Code, Action: ActionAdd})
		}
		if g.CanEdit && g.EnableEdit {
			rows = append(rows, PolicyRow{RoleID: g.RoleID, Resource: g.Code, Action: ActionEdit})
		}
		if g.CanDelete && g.EnableDelete {
			rows = append(rows, PolicyRow{RoleID: g.RoleID, Resource: g.Code, Action: ActionDelete})
		}
	}
	return rows
}

func (r *repository) ListGroupingRows(ctx context.Context) ([]GroupingRow, error) {
	var rows []GroupingRow
	err := r.db.WithContext(ctx).
		Table("employee_roles").
		Select("employee_roles.employee_id, employee_roles.role_id").
		Joins("JOIN roles ON roles.id = employee_roles.role_id").
		Where("roles.is_active = ? AND roles.deleted_at IS NULL", true).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) ListRoles(ctx context.Context) ([]Role, error) {
	var roles []Role
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("name ASC").
		Find(&roles).Error
	return roles, err
}

func (r *repository) GetRoleByID(ctx context.Context, id string) (*Role, error) {
	var role Role
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		First(&role, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *repository) CreateRole(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *repository) UpdateRole(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).Save(role).Error
}

func (r *repository) SoftDeleteRole(ctx context.Context, id string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&Role{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now).Error
}

func (r *repository) ListGroups(ctx context.Context) ([]PermissionGroup, error) {
	var groups []PermissionGroup
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&groups).Error
	return groups, err
}

func (r *repository) ListCategories(ctx context.Context, groupID string) ([]PermissionCategory, error) {
	tx := r.db.WithContext(ctx).Where("is_active = ?", true)
	if groupID != "" {
		tx = tx.Where("perm_group_id = ?", groupID)
	}

	var categories []PermissionCategory
	err := tx.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *repository) GetCategoryByID(ctx context.Context, id string) (*PermissionCategory, error) {
	var category PermissionCategory
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *repository) ListRolePermissions(ctx context.Context, roleID string) ([]RolePermission, error) {
	var perms []RolePermission
	err := r.db.WithContext(ctx).
		Where("role_id = ?", roleID).
		Find(&perms).Error
	return perms, err
}

func (r *repository) ReplaceRolePermissions(ctx context.Context, roleID string, perms []RolePermission) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", roleID).Delete(&RolePermission{}).Error; err != nil {
			return err
		}
		if len(perms) == 0 {
			return nil
		}
		return tx.Create(&perms).Error
	})
}

func (r *repository) CreateEmployeeRole(ctx context.Context, er *EmployeeRole) error {
	return r.db.WithContext(ctx).Create(er).Error
}

func (r *repository) DeleteEmployeeRole(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&EmployeeRole{}, "id = ?", id).Error
}

func (r *repository) ListEmployeeRoles(ctx context.Context, employeeID string) ([]EmployeeRole, error) {
	var ers []EmployeeRole
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Find(&ers).Error
	return ers, err
}

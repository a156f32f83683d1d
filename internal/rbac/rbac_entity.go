package rbac

import "time"

// Capability actions a permission category exposes.
const (
	ActionView   = "view"
	ActionAdd    = "add"
	ActionEdit   = "edit"
	ActionDelete = "delete"
)

type Role struct {
	ID          string     `gorm:"type:uuid;primaryKey" bson:"_id" json:"id"`
	Name        string     `gorm:"type:varchar(100);uniqueIndex;not null" bson:"name" json:"name"`
	Slug        string     `gorm:"type:varchar(100);uniqueIndex" bson:"slug" json:"slug"`
	Description string     `gorm:"type:text" bson:"description" json:"description"`
	IsSystem    bool       `gorm:"default:false" bson:"is_system" json:"is_system"`
	IsActive    bool       `gorm:"default:true" bson:"is_active" json:"is_active"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
	DeletedAt   *time.Time `gorm:"index" bson:"deleted_at,omitempty" json:"-"`
}

func (Role) TableName() string { return "roles" }

// PermissionGroup is the top of the permission hierarchy; it contains
// categories.
type PermissionGroup struct {
	ID        string    `gorm:"type:uuid;primaryKey" bson:"_id" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" bson:"name" json:"name"`
	Code      string    `gorm:"type:varchar(100);uniqueIndex;not null" bson:"code" json:"code"`
	IsActive  bool      `gorm:"default:true" bson:"is_active" json:"is_active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func (PermissionGroup) TableName() string { return "permission_groups" }

// PermissionCategory names a resource and declares which of the four
// CRUD capability bits exist for it.
type PermissionCategory struct {
	ID           string    `gorm:"type:uuid;primaryKey" bson:"_id" json:"id"`
	PermGroupID  string    `gorm:"type:uuid;index;not null" bson:"perm_group_id" json:"perm_group_id"`
	Name         string    `gorm:"type:varchar(100);not null" bson:"name" json:"name"`
	Code         string    `gorm:"type:varchar(100);uniqueIndex;not null" bson:"code" json:"code"`
	EnableView   bool      `gorm:"default:true" bson:"enable_view" json:"enable_view"`
	EnableAdd    bool      `gorm:"default:true" bson:"enable_add" json:"enable_add"`
	EnableEdit   bool      `gorm:"default:true" bson:"enable_edit" json:"enable_edit"`
	EnableDelete bool      `gorm:"default:true" bson:"enable_delete" json:"enable_delete"`
	IsActive     bool      `gorm:"default:true" bson:"is_active" json:"is_active"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

func (PermissionCategory) TableName() string { return "permission_categories" }

// RolePermission grants a subset of a category's capability bits to a
// role, optionally scoped to a branch. (role, category, branch) is unique.
type RolePermission struct {
	ID             string    `gorm:"type:uuid;primaryKey" bson:"_id" json:"id"`
	RoleID         string    `gorm:"type:uuid;uniqueIndex:uq_role_perm,priority:1;not null" bson:"role_id" json:"role_id"`
	PermCategoryID string    `gorm:"type:uuid;uniqueIndex:uq_role_perm,priority:2;not null" bson:"perm_category_id" json:"perm_category_id"`
	BranchID       *string   `gorm:"type:uuid;uniqueIndex:uq_role_perm,priority:3" bson:"branch_id,omitempty" json:"branch_id,omitempty"`
	CanView        bool      `gorm:"default:false" bson:"can_view" json:"can_view"`
	CanAdd         bool      `gorm:"default:false" bson:"can_add" json:"can_add"`
	CanEdit        bool      `gorm:"default:false" bson:"can_edit" json:"can_edit"`
	CanDelete      bool      `gorm:"default:false" bson:"can_delete" json:"can_delete"`
	CreatedBy      *string   `gorm:"type:uuid" bson:"created_by,omitempty" json:"created_by,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

func (RolePermission) TableName() string { return "role_permissions" }

// EmployeeRole joins an employee to a role, optionally branch-scoped.
// (employee, role, branch) is unique.
type EmployeeRole struct {
	ID         string    `gorm:"type:uuid;primaryKey" bson:"_id" json:"id"`
	EmployeeID string    `gorm:"type:uuid;uniqueIndex:uq_employee_role,priority:1;not null" bson:"employee_id" json:"employee_id"`
	RoleID     string    `gorm:"type:uuid;uniqueIndex:uq_employee_role,priority:2;not null" bson:"role_id" json:"role_id"`
	BranchID   *string   `gorm:"type:uuid;uniqueIndex:uq_employee_role,priority:3" bson:"branch_id,omitempty" json:"branch_id,omitempty"`
	IsPrimary  bool      `gorm:"default:false" bson:"is_primary" json:"is_primary"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

func (EmployeeRole) TableName() string { return "employee_roles" }

// PolicyRow is the flattened (role, resource, action) feed for the
// enforcer, derived from granted capability bits.
type PolicyRow struct {
	RoleID   string
	Resource string
	Action   string
}

// GroupingRow links an employee to a role for the enforcer.
type GroupingRow struct {
	EmployeeID string
	RoleID     string
}

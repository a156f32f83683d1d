package rbac

type CreateRoleRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description"`
}

type UpdateRoleRequest struct {
	Name        string `json:"name" binding:"omitempty,min=2,max=100"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

type PermissionGrant struct {
	PermCategoryID string  `json:"perm_category_id" binding:"required,uuid"`
	BranchID       *string `json:"branch_id" binding:"omitempty,uuid"`
	CanView        bool    `json:"can_view"`
	CanAdd         bool    `json:"can_add"`
	CanEdit        bool    `json:"can_edit"`
	CanDelete      bool    `json:"can_delete"`
}

// ReplaceRolePermissionsRequest swaps a role's grants wholesale.
type ReplaceRolePermissionsRequest struct {
	Permissions []PermissionGrant `json:"permissions" binding:"required,dive"`
}

type AssignEmployeeRoleRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	RoleID     string  `json:"role_id" binding:"required,uuid"`
	BranchID   *string `json:"branch_id" binding:"omitempty,uuid"`
	IsPrimary  bool    `json:"is_primary"`
}

type RolePermissionResponse struct {
	ID             string  `json:"id"`
	PermCategoryID string  `json:"perm_category_id"`
	CategoryCode   string  `json:"category_code,omitempty"`
	BranchID       *string `json:"branch_id,omitempty"`
	CanView        bool    `json:"can_view"`
	CanAdd         bool    `json:"can_add"`
	CanEdit        bool    `json:"can_edit"`
	CanDelete      bool    `json:"can_delete"`
}

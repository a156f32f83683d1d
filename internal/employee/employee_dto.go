package employee

import "time"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type CreateEmployeeRequest struct {
	FirstName     string  `json:"first_name" binding:"required,min=1,max=100"`
	LastName      string  `json:"last_name" binding:"max=100"`
	Email         string  `json:"email" binding:"required,email"`
	Phone         string  `json:"phone" binding:"max=30"`
	Password      string  `json:"password" binding:"required,min=8"`
	BranchID      *string `json:"branch_id" binding:"omitempty,uuid"`
	DepartmentID  *string `json:"department_id" binding:"omitempty,uuid"`
	DesignationID *string `json:"designation_id" binding:"omitempty,uuid"`
	ReportingTo   *string `json:"reporting_to" binding:"omitempty,uuid"`
	IsSuperadmin  bool    `json:"is_superadmin"`
}

type UpdateEmployeeRequest struct {
	FirstName     string  `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName      string  `json:"last_name" binding:"max=100"`
	Email         string  `json:"email" binding:"omitempty,email"`
	Phone         string  `json:"phone" binding:"max=30"`
	Password      string  `json:"password" binding:"omitempty,min=8"`
	BranchID      *string `json:"branch_id" binding:"omitempty,uuid"`
	DepartmentID  *string `json:"department_id" binding:"omitempty,uuid"`
	DesignationID *string `json:"designation_id" binding:"omitempty,uuid"`
	ReportingTo   *string `json:"reporting_to" binding:"omitempty,uuid"`
	IsSuperadmin  *bool   `json:"is_superadmin"`
	IsActive      *bool   `json:"is_active"`
}

// EmployeeResponse is the wire shape; it never carries the hash.
type EmployeeResponse struct {
	ID            string     `json:"id"`
	EmployeeCode  string     `json:"employee_code"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone,omitempty"`
	BranchID      *string    `json:"branch_id,omitempty"`
	DepartmentID  *string    `json:"department_id,omitempty"`
	DesignationID *string    `json:"designation_id,omitempty"`
	ReportingTo   *string    `json:"reporting_to,omitempty"`
	IsSuperadmin  bool       `json:"is_superadmin"`
	IsActive      bool       `json:"is_active"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type AuthResponse struct {
	Employee     EmployeeResponse `json:"employee"`
	Token        string           `json:"token"`
	RefreshToken string           `json:"refreshToken"`
}

type StatusResponse struct {
	Authenticated bool             `json:"authenticated"`
	Employee      EmployeeResponse `json:"employee"`
}

type ListEmployeesFilter struct {
	BranchID     string
	DepartmentID string
	IsActive     *bool
}

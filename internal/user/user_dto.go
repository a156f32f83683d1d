package user

import "time"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type RequestPasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

type CreateUserRequest struct {
	Username   string  `json:"username" binding:"required,min=3,max=100"`
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"omitempty,min=6"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Role       string  `json:"role" binding:"omitempty,oneof=admin staff customer vendor system"`
	EmployeeID *string `json:"employee_id" binding:"omitempty,uuid"`
	IsActive   *bool   `json:"is_active"`
}

type UpdateUserRequest struct {
	Username  string `json:"username" binding:"omitempty,min=3,max=100"`
	Email     string `json:"email" binding:"omitempty,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role" binding:"omitempty,oneof=admin staff customer vendor system"`
	IsActive  *bool  `json:"is_active"`
}

// UserResponse is the sanitized shape returned to clients. Password hash
// and reset/verification tokens never appear here.
type UserResponse struct {
	ID          string     `json:"id"`
	EmployeeID  string     `json:"employee_id,omitempty"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name,omitempty"`
	LastName    string     `json:"last_name,omitempty"`
	AuthMethods string     `json:"auth_methods"`
	IsVerified  bool       `json:"is_verified"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
}

type ListUsersFilter struct {
	Role     string
	IsActive *bool
}

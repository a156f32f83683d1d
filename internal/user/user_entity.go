package user

import (
	"strings"
	"time"
)

// Auth methods a user account may have enabled. Stored as a
// comma-separated set so both backends share one representation.
const (
	AuthMethodPassword = "password"
	AuthMethodGoogle   = "google"
	AuthMethodPhoneOTP = "phone_otp"
)

// Role tags for user principals.
const (
	RoleAdmin    = "admin"
	RoleStaff    = "staff"
	RoleCustomer = "customer"
	RoleVendor   = "vendor"
	RoleSystem   = "system"
)

const (
	MaxLoginAttempts = 5
	LockoutDuration  = 30 * time.Minute
)

type User struct {
	ID                  string     `gorm:"type:uuid;primaryKey" bson:"_id" json:"id"`
	EmployeeID          *string    `gorm:"type:uuid;index" bson:"employee_id,omitempty" json:"employee_id,omitempty"`
	Username            string     `gorm:"type:varchar(100);uniqueIndex;not null" bson:"username" json:"username"`
	Email               string     `gorm:"type:varchar(255);uniqueIndex;not null" bson:"email" json:"email"`
	FirstName           string     `gorm:"type:varchar(100)" bson:"first_name" json:"first_name"`
	LastName            string     `gorm:"type:varchar(100)" bson:"last_name" json:"last_name"`
	PasswordHash        *string    `gorm:"type:varchar(255)" bson:"password_hash,omitempty" json:"-"`
	AuthMethods         string     `gorm:"type:varchar(255);not null;default:'password'" bson:"auth_methods" json:"auth_methods"`
	IsVerified          bool       `gorm:"default:false" bson:"is_verified" json:"is_verified"`
	VerificationToken   *string    `gorm:"type:varchar(255)" bson:"verification_token,omitempty" json:"-"`
	ResetToken          *string    `gorm:"type:varchar(255);index" bson:"reset_token,omitempty" json:"-"`
	ResetTokenExpiresAt *time.Time `bson:"reset_token_expires_at,omitempty" json:"-"`
	LoginAttempts       int        `gorm:"default:0" bson:"login_attempts" json:"-"`
	LoginLockedUntil    *time.Time `bson:"login_locked_until,omitempty" json:"-"`
	Role                string     `gorm:"type:varchar(50);not null;default:'customer'" bson:"role" json:"role"`
	IsActive            bool       `gorm:"default:true" bson:"is_active" json:"is_active"`
	LastLogin           *time.Time `bson:"last_login,omitempty" json:"last_login,omitempty"`
	CreatedBy           *string    `gorm:"type:uuid" bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy           *string    `gorm:"type:uuid" bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	CreatedAt           time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time  `bson:"updated_at" json:"updated_at"`
	DeletedAt           *time.Time `gorm:"index" bson:"deleted_at,omitempty" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) HasAuthMethod(method string) bool {
	for _, m := range strings.Split(u.AuthMethods, ",") {
		if strings.TrimSpace(m) == method {
			return true
		}
	}
	return false
}

// Locked reports whether the lockout window is still open.
func (u *User) Locked(now time.Time) bool {
	return u.LoginLockedUntil != nil && u.LoginLockedUntil.After(now)
}

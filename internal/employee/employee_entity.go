package employee

import "time"

// Employee is the internal staff principal, distinct from the
// customer-facing User. The password is mandatory and stored hashed;
// the service layer never persists a plaintext value.
type Employee struct {
	ID            string     `gorm:"type:uuid;primaryKey" bson:"_id" json:"id"`
	EmployeeCode  string     `gorm:"type:varchar(20);uniqueIndex;not null" bson:"employee_code" json:"employee_code"`
	FirstName     string     `gorm:"type:varchar(100);not null" bson:"first_name" json:"first_name"`
	LastName      string     `gorm:"type:varchar(100)" bson:"last_name" json:"last_name"`
	Email         string     `gorm:"type:varchar(255);uniqueIndex;not null" bson:"email" json:"email"`
	Phone         string     `gorm:"type:varchar(30)" bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash  string     `gorm:"type:varchar(255);not null" bson:"password_hash" json:"-"`
	BranchID      *string    `gorm:"type:uuid;index" bson:"branch_id,omitempty" json:"branch_id,omitempty"`
	DepartmentID  *string    `gorm:"type:uuid;index" bson:"department_id,omitempty" json:"department_id,omitempty"`
	DesignationID *string    `gorm:"type:uuid;index" bson:"designation_id,omitempty" json:"designation_id,omitempty"`
	ReportingTo   *string    `gorm:"type:uuid;index" bson:"reporting_to,omitempty" json:"reporting_to,omitempty"`
	IsSuperadmin  bool       `gorm:"default:false" bson:"is_superadmin" json:"is_superadmin"`
	IsActive      bool       `gorm:"default:true" bson:"is_active" json:"is_active"`
	LastLogin     *time.Time `bson:"last_login,omitempty" json:"last_login,omitempty"`
	CreatedBy     *string    `gorm:"type:uuid" bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy     *string    `gorm:"type:uuid" bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `bson:"updated_at" json:"updated_at"`
	DeletedAt     *time.Time `gorm:"index" bson:"deleted_at,omitempty" json:"-"`
}

func (Employee) TableName() string { return "employees" }

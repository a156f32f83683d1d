package job

import "time"

// Lifecycle statuses. PublishedAt is stamped the first time a job
// enters StatusPublished and never changes afterwards.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusFilled    = "filled"
	StatusExpired   = "expired"
	StatusCanceled  = "canceled"
)

// allowedTransitions encodes the lifecycle. An absent key means the
// status is terminal.
var allowedTransitions = map[string][]string{
	StatusDraft:     {StatusPublished, StatusCanceled},
	StatusPublished: {StatusFilled, StatusExpired, StatusCanceled},
	StatusExpired:   {StatusPublished, StatusCanceled},
}

func transitionAllowed(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func validStatus(s string) bool {
	switch s {
	case StatusDraft, StatusPublished, StatusFilled, StatusExpired, StatusCanceled:
		return true
	}
	return false
}

type Job struct {
	ID               string     `gorm:"type:uuid;primaryKey" bson:"_id" json:"id"`
	Title            string     `gorm:"type:varchar(255);not null" bson:"title" json:"title"`
	Slug             string     `gorm:"type:varchar(255);uniqueIndex;not null" bson:"slug" json:"slug"`
	Description      string     `gorm:"type:text" bson:"description" json:"description"`
	Requirements     string     `gorm:"type:text" bson:"requirements,omitempty" json:"requirements,omitempty"`
	Location         string     `gorm:"type:varchar(255)" bson:"location,omitempty" json:"location,omitempty"`
	JobType          string     `gorm:"type:varchar(50)" bson:"job_type,omitempty" json:"job_type,omitempty"`
	SalaryMin        *int64     `bson:"salary_min,omitempty" json:"salary_min,omitempty"`
	SalaryMax        *int64     `bson:"salary_max,omitempty" json:"salary_max,omitempty"`
	BranchID         *string    `gorm:"type:uuid;index" bson:"branch_id,omitempty" json:"branch_id,omitempty"`
	DepartmentID     *string    `gorm:"type:uuid;index" bson:"department_id,omitempty" json:"department_id,omitempty"`
	Status           string     `gorm:"type:varchar(20);index;default:draft" bson:"status" json:"status"`
	ViewCount        int64      `gorm:"default:0" bson:"view_count" json:"view_count"`
	ApplicationCount int64      `gorm:"default:0" bson:"application_count" json:"application_count"`
	PublishedAt      *time.Time `bson:"published_at,omitempty" json:"published_at,omitempty"`
	ExpiresAt        *time.Time `bson:"expires_at,omitempty" json:"expires_at,omitempty"`
	CreatedBy        *string    `gorm:"type:uuid" bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy        *string    `gorm:"type:uuid" bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	CreatedAt        time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `bson:"updated_at" json:"updated_at"`
	DeletedAt        *time.Time `gorm:"index" bson:"deleted_at,omitempty" json:"-"`
}

func (Job) TableName() string { return "jobs" }

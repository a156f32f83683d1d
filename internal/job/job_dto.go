package job

import "time"

type CreateJobRequest struct {
	Title        string     `json:"title" binding:"required,min=3,max=255"`
	Description  string     `json:"description"`
	Requirements string     `json:"requirements"`
	Location     string     `json:"location" binding:"max=255"`
	JobType      string     `json:"job_type" binding:"omitempty,oneof=full_time part_time contract internship temporary"`
	SalaryMin    *int64     `json:"salary_min" binding:"omitempty,min=0"`
	SalaryMax    *int64     `json:"salary_max" binding:"omitempty,min=0"`
	BranchID     *string    `json:"branch_id" binding:"omitempty,uuid"`
	DepartmentID *string    `json:"department_id" binding:"omitempty,uuid"`
	ExpiresAt    *time.Time `json:"expires_at"`
}

type UpdateJobRequest struct {
	Title        string     `json:"title" binding:"omitempty,min=3,max=255"`
	Description  string     `json:"description"`
	Requirements string     `json:"requirements"`
	Location     string     `json:"location" binding:"max=255"`
	JobType      string     `json:"job_type" binding:"omitempty,oneof=full_time part_time contract internship temporary"`
	SalaryMin    *int64     `json:"salary_min" binding:"omitempty,min=0"`
	SalaryMax    *int64     `json:"salary_max" binding:"omitempty,min=0"`
	BranchID     *string    `json:"branch_id" binding:"omitempty,uuid"`
	DepartmentID *string    `json:"department_id" binding:"omitempty,uuid"`
	ExpiresAt    *time.Time `json:"expires_at"`
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft published filled expired canceled"`
}

type ListJobsFilter struct {
	Status   string
	JobType  string
	BranchID string
}

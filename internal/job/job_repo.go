package job

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/listquery"
)

//go:generate mockgen -source=job_repo.go -destination=mock/job_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, j *Job) error
	FindByID(ctx context.Context, id string) (*Job, error)
	FindBySlug(ctx context.Context, slug string) (*Job, error)
	// SlugExists reports whether another job already owns the slug.
	// excludeID skips the row being updated so it never collides with
	// itself.
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	List(ctx context.Context, q listquery.Params, filter ListJobsFilter) ([]Job, int64, error)
	Update(ctx context.Context, j *Job) error
	SoftDelete(ctx context.Context, id string) error
	IncrementViewCount(ctx context.Context, id string) error
	IncrementApplicationCount(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func notDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("deleted_at IS NULL")
}

// jobSortColumns is the sort_by whitelist shared by both backends.
var jobSortColumns = []string{"created_at", "published_at", "title", "view_count", "application_count"}

func (r *repository) Create(ctx context.Context, j *Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Job, error) {
	var j Job
	err := r.db.WithContext(ctx).Scopes(notDeleted).First(&j, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *repository) FindBySlug(ctx context.Context, slug string) (*Job, error) {
	var j Job
	err := r.db.WithContext(ctx).Scopes(notDeleted).First(&j, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *repository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&Job{}).Scopes(notDeleted).Where("slug = ?", slug)
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) List(ctx context.Context, q listquery.Params, filter ListJobsFilter) ([]Job, int64, error) {
	tx := r.db.WithContext(ctx).Model(&Job{}).Scopes(notDeleted)

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where("title ILIKE ? OR description ILIKE ? OR location ILIKE ?", pattern, pattern, pattern)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.JobType != "" {
		tx = tx.Where("job_type = ?", filter.JobType)
	}
	if filter.BranchID != "" {
		tx = tx.Where("branch_id = ?", filter.BranchID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []Job
	err := tx.Order(q.OrderClause("created_at", jobSortColumns...)).
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *repository) Update(ctx context.Context, j *Job) error {
	return r.db.WithContext(ctx).Save(j).Error
}

func (r *repository) SoftDelete(ctx context.Context, id string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&Job{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now).Error
}

func (r *repository) IncrementViewCount(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&Job{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *repository) IncrementApplicationCount(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&Job{}).
		Where("id = ?", id).
		UpdateColumn("application_count", gorm.Expr("application_count + 1")).Error
}

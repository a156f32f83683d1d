package employee

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/listquery"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, e *Employee) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	List(ctx context.Context, q listquery.Params, filter ListEmployeesFilter) ([]Employee, int64, error)
	Update(ctx context.Context, e *Employee) error
	SoftDelete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).Scopes(notDeleted).First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).Scopes(notDeleted).First(&e, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) List(ctx context.Context, q listquery.Params, filter ListEmployeesFilter) ([]Employee, int64, error) {
	tx := r.db.WithContext(ctx).Model(&Employee{}).Scopes(notDeleted)

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where(
			"employee_code ILIKE ? OR email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if filter.BranchID != "" {
		tx = tx.Where("branch_id = ?", filter.BranchID)
	}
	if filter.DepartmentID != "" {
		tx = tx.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.IsActive != nil {
		tx = tx.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var employees []Employee
	err := tx.Order(q.OrderClause("created_at", "created_at", "employee_code", "first_name", "last_name", "email")).
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&employees).Error
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) SoftDelete(ctx context.Context, id string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now).Error
}

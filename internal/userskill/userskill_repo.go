package userskill

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/listquery"
)

//go:generate mockgen -source=userskill_repo.go -destination=mock/userskill_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, s *UserSkill) error
	FindByID(ctx context.Context, id string) (*UserSkill, error)
	ListByUser(ctx context.Context, userID string, q listquery.Params) ([]UserSkill, int64, error)
	Update(ctx context.Context, s *UserSkill) error
	SoftDelete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *UserSkill) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*UserSkill, error) {
	var s UserSkill
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) ListByUser(ctx context.Context, userID string, q listquery.Params) ([]UserSkill, int64, error) {
	tx := r.db.WithContext(ctx).Model(&UserSkill{}).
		Where("deleted_at IS NULL").
		Where("user_id = ?", userID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var skills []UserSkill
	err := tx.Order(q.OrderClause("created_at", "created_at", "updated_at")).
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&skills).Error
	if err != nil {
		return nil, 0, err
	}

	return skills, total, nil
}

func (r *repository) Update(ctx context.Context, s *UserSkill) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) SoftDelete(ctx context.Context, id string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&UserSkill{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now).Error
}

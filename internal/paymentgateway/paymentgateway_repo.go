package paymentgateway

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/listquery"
)

//go:generate mockgen -source=paymentgateway_repo.go -destination=mock/paymentgateway_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, cfg *PaymentConfiguration) error
	FindByID(ctx context.Context, id string) (*PaymentConfiguration, error)
	List(ctx context.Context, q listquery.Params) ([]PaymentConfiguration, int64, error)
	Update(ctx context.Context, cfg *PaymentConfiguration) error
	SoftDelete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, cfg *PaymentConfiguration) error {
	return r.db.WithContext(ctx).Create(cfg).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*PaymentConfiguration, error) {
	var cfg PaymentConfiguration
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		First(&cfg, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *repository) List(ctx context.Context, q listquery.Params) ([]PaymentConfiguration, int64, error) {
	tx := r.db.WithContext(ctx).Model(&PaymentConfiguration{}).Where("deleted_at IS NULL")

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where("gateway_name ILIKE ? OR gateway_code ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var configs []PaymentConfiguration
	err := tx.Order("priority DESC, created_at DESC").
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&configs).Error
	if err != nil {
		return nil, 0, err
	}

	return configs, total, nil
}

func (r *repository) Update(ctx context.Context, cfg *PaymentConfiguration) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}

func (r *repository) SoftDelete(ctx context.Context, id string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&PaymentConfiguration{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now).Error
}

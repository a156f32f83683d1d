package smsgateway

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/listquery"
)

//go:generate mockgen -source=smsgateway_repo.go -destination=mock/smsgateway_repo_mock.go -package=mock
type Repository interface {
	CreateConfiguration(ctx context.Context, cfg *SmsConfiguration) error
	FindConfigurationByID(ctx context.Context, id string) (*SmsConfiguration, error)
	// ListConfigurations orders by priority descending; the first active
	// row is the dispatch gateway.
	ListConfigurations(ctx context.Context, q listquery.Params) ([]SmsConfiguration, int64, error)
	FindActiveConfiguration(ctx context.Context) (*SmsConfiguration, error)
	UpdateConfiguration(ctx context.Context, cfg *SmsConfiguration) error
	SoftDeleteConfiguration(ctx context.Context, id string) error

	CreateTemplate(ctx context.Context, t *SmsTemplate) error
	FindTemplateByID(ctx context.Context, id string) (*SmsTemplate, error)
	FindTemplateByCode(ctx context.Context, code string) (*SmsTemplate, error)
	ListTemplates(ctx context.Context, q listquery.Params) ([]SmsTemplate, int64, error)
	UpdateTemplate(ctx context.Context, t *SmsTemplate) error
	SoftDeleteTemplate(ctx context.Context, id string) error
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

func (r *repository) CreateConfiguration(ctx context.Context, cfg *SmsConfiguration) error {
	return r.db.WithContext(ctx).Create(cfg).Error
}

func (r *repository) FindConfigurationByID(ctx context.Context, id string) (*SmsConfiguration, error) {
	var cfg SmsConfiguration
	err := r.db.WithContext(ctx).Scopes(notDeleted).First(&cfg, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *repository) ListConfigurations(ctx context.Context, q listquery.Params) ([]SmsConfiguration, int64, error) {
	tx := r.db.WithContext(ctx).Model(&SmsConfiguration{}).Scopes(notDeleted)

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where("gateway_name ILIKE ? OR gateway_code ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var configs []SmsConfiguration
	err := tx.Order("priority DESC, created_at DESC").
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&configs).Error
	if err != nil {
		return nil, 0, err
	}

	return configs, total, nil
}

func (r *repository) FindActiveConfiguration(ctx context.Context) (*SmsConfiguration, error) {
	var cfg SmsConfiguration
	err := r.db.WithContext(ctx).Scopes(notDeleted).
		Where("is_active = ?", true).
		Order("priority DESC").
		First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *repository) UpdateConfiguration(ctx context.Context, cfg *SmsConfiguration) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}

func (r *repository) SoftDeleteConfiguration(ctx context.Context, id string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&SmsConfiguration{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now).Error
}

func (r *repository) CreateTemplate(ctx context.Context, t *SmsTemplate) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindTemplateByID(ctx context.Context, id string) (*SmsTemplate, error) {
	var t SmsTemplate
	err := r.db.WithContext(ctx).Scopes(notDeleted).First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindTemplateByCode(ctx context.Context, code string) (*SmsTemplate, error) {
	var t SmsTemplate
	err := r.db.WithContext(ctx).Scopes(notDeleted).
		Where("is_active = ?", true).
		First(&t, "template_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) ListTemplates(ctx context.Context, q listquery.Params) ([]SmsTemplate, int64, error) {
	tx := r.db.WithContext(ctx).Model(&SmsTemplate{}).Scopes(notDeleted)

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where("template_code ILIKE ? OR name ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var templates []SmsTemplate
	err := tx.Order(q.OrderClause("created_at", "created_at", "name", "template_code")).
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&templates).Error
	if err != nil {
		return nil, 0, err
	}

	return templates, total, nil
}

func (r *repository) UpdateTemplate(ctx context.Context, t *SmsTemplate) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) SoftDeleteTemplate(ctx context.Context, id string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&SmsTemplate{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now).Error
}

package settings

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/listquery"
)

//go:generate mockgen -source=settings_repo.go -destination=mock/settings_repo_mock.go -package=mock
type Repository interface {
	CreateSocialLink(ctx context.Context, link *SocialMediaLink) error
	FindSocialLinkByID(ctx context.Context, id string) (*SocialMediaLink, error)
	ListSocialLinks(ctx context.Context) ([]SocialMediaLink, error)
	UpdateSocialLink(ctx context.Context, link *SocialMediaLink) error
	HardDeleteSocialLink(ctx context.Context, id string) error

	FindGeneralSetting(ctx context.Context) (*GeneralSetting, error)
	SaveGeneralSetting(ctx context.Context, setting *GeneralSetting) error

	CreateEmailConfig(ctx context.Context, cfg *EmailConfig) error
	FindEmailConfigByID(ctx context.Context, id string) (*EmailConfig, error)
	ListEmailConfigs(ctx context.Context, q listquery.Params) ([]EmailConfig, int64, error)
	UpdateEmailConfig(ctx context.Context, cfg *EmailConfig) error
	SoftDeleteEmailConfig(ctx context.Context, id string) error

	CreateEmailTemplate(ctx context.Context, t *EmailTemplate) error
	FindEmailTemplateByID(ctx context.Context, id string) (*EmailTemplate, error)
	FindEmailTemplateByCode(ctx context.Context, code string) (*EmailTemplate, error)
	ListEmailTemplates(ctx context.Context, q listquery.Params) ([]EmailTemplate, int64, error)
	UpdateEmailTemplate(ctx context.Context, t *EmailTemplate) error
	SoftDeleteEmailTemplate(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateSocialLink(ctx context.Context, link *SocialMediaLink) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *repository) FindSocialLinkByID(ctx context.Context, id string) (*SocialMediaLink, error) {
	var link SocialMediaLink
	if err := r.db.WithContext(ctx).First(&link, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *repository) ListSocialLinks(ctx context.Context) ([]SocialMediaLink, error) {
	var links []SocialMediaLink
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, created_at ASC").
		Find(&links).Error
	return links, err
}

func (r *repository) UpdateSocialLink(ctx context.Context, link *SocialMediaLink) error {
	return r.db.WithContext(ctx).Save(link).Error
}

func (r *repository) HardDeleteSocialLink(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&SocialMediaLink{}, "id = ?", id).Error
}

func (r *repository) FindGeneralSetting(ctx context.Context) (*GeneralSetting, error) {
	var setting GeneralSetting
	err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *repository) SaveGeneralSetting(ctx context.Context, setting *GeneralSetting) error {
	return r.db.WithContext(ctx).Save(setting).Error
}

func (r *repository) CreateEmailConfig(ctx context.Context, cfg *EmailConfig) error {
	return r.db.WithContext(ctx).Create(cfg).Error
}

func (r *repository) FindEmailConfigByID(ctx context.Context, id string) (*EmailConfig, error) {
	var cfg EmailConfig
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		First(&cfg, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *repository) ListEmailConfigs(ctx context.Context, q listquery.Params) ([]EmailConfig, int64, error) {
	tx := r.db.WithContext(ctx).Model(&EmailConfig{}).Where("deleted_at IS NULL")

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where("config_name ILIKE ? OR smtp_host ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var configs []EmailConfig
	err := tx.Order("created_at DESC").
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&configs).Error
	if err != nil {
		return nil, 0, err
	}

	return configs, total, nil
}

func (r *repository) UpdateEmailConfig(ctx context.Context, cfg *EmailConfig) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}

func (r *repository) SoftDeleteEmailConfig(ctx context.Context, id string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&EmailConfig{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now).Error
}

func (r *repository) CreateEmailTemplate(ctx context.Context, t *EmailTemplate) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindEmailTemplateByID(ctx context.Context, id string) (*EmailTemplate, error) {
	var t EmailTemplate
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindEmailTemplateByCode(ctx context.Context, code string) (*EmailTemplate, error) {
	var t EmailTemplate
	err := r.db.WithContext(ctx).
		Where("template_code = ? AND is_active = ? AND deleted_at IS NULL", code, true).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) ListEmailTemplates(ctx context.Context, q listquery.Params) ([]EmailTemplate, int64, error) {
	tx := r.db.WithContext(ctx).Model(&EmailTemplate{}).Where("deleted_at IS NULL")

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where("template_code ILIKE ? OR name ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var templates []EmailTemplate
	err := tx.Order("created_at DESC").
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&templates).Error
	if err != nil {
		return nil, 0, err
	}

	return templates, total, nil
}

func (r *repository) UpdateEmailTemplate(ctx context.Context, t *EmailTemplate) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) SoftDeleteEmailTemplate(ctx context.Context, id string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&EmailTemplate{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now).Error
}

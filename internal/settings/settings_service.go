package settings

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/apperror"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/listquery"
)

var (
	ErrSocialLinkNotFound = apperror.New(
		apperror.CodeNotFound,
		"Social media link not found",
		http.StatusNotFound,
	)

	ErrEmailConfigNotFound = apperror.New(
		apperror.CodeNotFound,
		"Email configuration not found",
		http.StatusNotFound,
	)

	ErrEmailTemplateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Email template not found",
		http.StatusNotFound,
	)

	ErrTemplateCodeExists = apperror.New(
		apperror.CodeConflict,
		"Template with this code already exists",
		http.StatusConflict,
	)
)

//go:generate mockgen -source=settings_service.go -destination=mock/settings_service_mock.go -package=mock
type Service interface {
	CreateSocialLink(ctx context.Context, actorID string, req CreateSocialLinkRequest) (*SocialMediaLink, error)
	GetSocialLink(ctx context.Context, id string) (*SocialMediaLink, error)
	ListSocialLinks(ctx context.Context) ([]SocialMediaLink, error)
	UpdateSocialLink(ctx context.Context, actorID, id string, req UpdateSocialLinkRequest) (*SocialMediaLink, error)
	DeleteSocialLink(ctx context.Context, id string) error

	GetGeneralSetting(ctx context.Context) (*GeneralSetting, error)
	UpdateGeneralSetting(ctx context.Context, actorID string, req UpdateGeneralSettingRequest) (*GeneralSetting, error)

	CreateEmailConfig(ctx context.Context, actorID string, req CreateEmailConfigRequest) (*EmailConfig, error)
	GetEmailConfig(ctx context.Context, id string) (*EmailConfig, error)
	ListEmailConfigs(ctx context.Context, q listquery.Params) ([]EmailConfig, int64, error)
	UpdateEmailConfig(ctx context.Context, actorID, id string, req UpdateEmailConfigRequest) (*EmailConfig, error)
	DeleteEmailConfig(ctx context.Context, id string) error

	CreateEmailTemplate(ctx context.Context, actorID string, req CreateEmailTemplateRequest) (*EmailTemplate, error)
	GetEmailTemplate(ctx context.Context, id string) (*EmailTemplate, error)
	ListEmailTemplates(ctx context.Context, q listquery.Params) ([]EmailTemplate, int64, error)
	UpdateEmailTemplate(ctx context.Context, actorID, id string, req UpdateEmailTemplateRequest) (*EmailTemplate, error)
	DeleteEmailTemplate(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("settings.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settings.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) CreateSocialLink(ctx context.Context, actorID string, req CreateSocialLinkRequest) (*SocialMediaLink, error) {
	link := &SocialMediaLink{
		ID:        uuid.NewString(),
		Platform:  req.Platform,
		URL:       req.URL,
		Icon:      req.Icon,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if actorID != "" {
		link.CreatedBy = &actorID
	}

	if err := s.repo.CreateSocialLink(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *service) GetSocialLink(ctx context.Context, id string) (*SocialMediaLink, error) {
	link, err := s.repo.FindSocialLinkByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrSocialLinkNotFound)
	}
	return link, nil
}

func (s *service) ListSocialLinks(ctx context.Context) ([]SocialMediaLink, error) {
	return s.repo.ListSocialLinks(ctx)
}

func (s *service) UpdateSocialLink(ctx context.Context, actorID, id string, req UpdateSocialLinkRequest) (*SocialMediaLink, error) {
	link, err := s.repo.FindSocialLinkByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrSocialLinkNotFound)
	}

	if req.Platform != "" {
		link.Platform = req.Platform
	}
	if req.URL != "" {
		link.URL = req.URL
	}
	if req.Icon != "" {
		link.Icon = req.Icon
	}
	if req.SortOrder != nil {
		link.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		link.IsActive = *req.IsActive
	}
	if actorID != "" {
		link.UpdatedBy = &actorID
	}

	if err := s.repo.UpdateSocialLink(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// DeleteSocialLink removes the row permanently. Links carry no audit
// value once gone, so there is no soft delete here.
func (s *service) DeleteSocialLink(ctx context.Context, id string) error {
	if _, err := s.repo.FindSocialLinkByID(ctx, id); err != nil {
		return mapNotFound(err, ErrSocialLinkNotFound)
	}
	return s.repo.HardDeleteSocialLink(ctx, id)
}

func (s *service) GetGeneralSetting(ctx context.Context) (*GeneralSetting, error) {
	setting, err := s.repo.FindGeneralSetting(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, mongo.ErrNoDocuments) {
			return defaultGeneralSetting(), nil
		}
		return nil, err
	}
	return setting, nil
}

func (s *service) UpdateGeneralSetting(ctx context.Context, actorID string, req UpdateGeneralSettingRequest) (*GeneralSetting, error) {
	setting, err := s.repo.FindGeneralSetting(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		setting = defaultGeneralSetting()
	}

	if req.CompanyName != "" {
		setting.CompanyName = req.CompanyName
	}
	if req.Tagline != "" {
		setting.Tagline = req.Tagline
	}
	if req.LogoURL != "" {
		setting.LogoURL = req.LogoURL
	}
	if req.FaviconURL != "" {
		setting.FaviconURL = req.FaviconURL
	}
	if req.ContactEmail != "" {
		setting.ContactEmail = req.ContactEmail
	}
	if req.ContactPhone != "" {
		setting.ContactPhone = req.ContactPhone
	}
	if req.Address != "" {
		setting.Address = req.Address
	}
	if req.Timezone != "" {
		setting.Timezone = req.Timezone
	}
	if req.DateFormat != "" {
		setting.DateFormat = req.DateFormat
	}
	if req.Currency != "" {
		setting.Currency = req.Currency
	}
	if req.Language != "" {
		setting.Language = req.Language
	}
	if actorID != "" {
		setting.UpdatedBy = &actorID
	}

	if err := s.repo.SaveGeneralSetting(ctx, setting); err != nil {
		return nil, err
	}

	s.logger.Info("general settings updated", zap.String("setting_id", setting.ID))
	return setting, nil
}

func (s *service) CreateEmailConfig(ctx context.Context, actorID string, req CreateEmailConfigRequest) (*EmailConfig, error) {
	port := req.SmtpPort
	if port == 0 {
		port = 587
	}
	encryption := req.Encryption
	if encryption == "" {
		encryption = "tls"
	}

	cfg := &EmailConfig{
		ID:         uuid.NewString(),
		ConfigName: req.ConfigName,
		SmtpHost:   req.SmtpHost,
		SmtpPort:   port,
		SmtpUser:   req.SmtpUser,
		SmtpPass:   req.SmtpPass,
		Encryption: encryption,
		FromName:   req.FromName,
		FromEmail:  req.FromEmail,
		IsActive:   true,
	}
	if actorID != "" {
		cfg.CreatedBy = &actorID
	}

	if err := s.repo.CreateEmailConfig(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *service) GetEmailConfig(ctx context.Context, id string) (*EmailConfig, error) {
	cfg, err := s.repo.FindEmailConfigByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrEmailConfigNotFound)
	}
	return cfg, nil
}

func (s *service) ListEmailConfigs(ctx context.Context, q listquery.Params) ([]EmailConfig, int64, error) {
	return s.repo.ListEmailConfigs(ctx, q)
}

func (s *service) UpdateEmailConfig(ctx context.Context, actorID, id string, req UpdateEmailConfigRequest) (*EmailConfig, error) {
	cfg, err := s.repo.FindEmailConfigByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrEmailConfigNotFound)
	}

	if req.ConfigName != "" {
		cfg.ConfigName = req.ConfigName
	}
	if req.SmtpHost != "" {
		cfg.SmtpHost = req.SmtpHost
	}
	if req.SmtpPort != nil {
		cfg.SmtpPort = *req.SmtpPort
	}
	if req.SmtpUser != "" {
		cfg.SmtpUser = req.SmtpUser
	}
	if req.SmtpPass != "" {
		cfg.SmtpPass = req.SmtpPass
	}
	if req.Encryption != "" {
		cfg.Encryption = req.Encryption
	}
	if req.FromName != "" {
		cfg.FromName = req.FromName
	}
	if req.FromEmail != "" {
		cfg.FromEmail = req.FromEmail
	}
	if req.IsActive != nil {
		cfg.IsActive = *req.IsActive
	}
	if actorID != "" {
		cfg.UpdatedBy = &actorID
	}

	if err := s.repo.UpdateEmailConfig(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *service) DeleteEmailConfig(ctx context.Context, id string) error {
	if _, err := s.repo.FindEmailConfigByID(ctx, id); err != nil {
		return mapNotFound(err, ErrEmailConfigNotFound)
	}
	return s.repo.SoftDeleteEmailConfig(ctx, id)
}

func (s *service) CreateEmailTemplate(ctx context.Context, actorID string, req CreateEmailTemplateRequest) (*EmailTemplate, error) {
	t := &EmailTemplate{
		ID:           uuid.NewString(),
		TemplateCode: req.TemplateCode,
		Name:         req.Name,
		Subject:      req.Subject,
		Body:         req.Body,
		IsActive:     true,
	}
	if actorID != "" {
		t.CreatedBy = &actorID
	}

	if err := s.repo.CreateEmailTemplate(ctx, t); err != nil {
		if isDuplicate(err) {
			return nil, ErrTemplateCodeExists
		}
		return nil, err
	}
	return t, nil
}

func (s *service) GetEmailTemplate(ctx context.Context, id string) (*EmailTemplate, error) {
	t, err := s.repo.FindEmailTemplateByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrEmailTemplateNotFound)
	}
	return t, nil
}

func (s *service) ListEmailTemplates(ctx context.Context, q listquery.Params) ([]EmailTemplate, int64, error) {
	return s.repo.ListEmailTemplates(ctx, q)
}

func (s *service) UpdateEmailTemplate(ctx context.Context, actorID, id string, req UpdateEmailTemplateRequest) (*EmailTemplate, error) {
	t, err := s.repo.FindEmailTemplateByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrEmailTemplateNotFound)
	}

	if req.Name != "" {
		t.Name = req.Name
	}
	if req.Subject != "" {
		t.Subject = req.Subject
	}
	if req.Body != "" {
		t.Body = req.Body
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}
	if actorID != "" {
		t.UpdatedBy = &actorID
	}

	if err := s.repo.UpdateEmailTemplate(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) DeleteEmailTemplate(ctx context.Context, id string) error {
	if _, err := s.repo.FindEmailTemplateByID(ctx, id); err != nil {
		return mapNotFound(err, ErrEmailTemplateNotFound)
	}
	return s.repo.SoftDeleteEmailTemplate(ctx, id)
}

func defaultGeneralSetting() *GeneralSetting {
	return &GeneralSetting{
		ID:         uuid.NewString(),
		Timezone:   "UTC",
		DateFormat: "YYYY-MM-DD",
		Currency:   "USD",
		Language:   "en",
	}
}

func mapNotFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, mongo.ErrNoDocuments) {
		return sentinel
	}
	return err
}

func isDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return mongo.IsDuplicateKeyError(err)
}

package smsgateway

import (
	"context"
	"encoding/json"
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
	ErrConfigurationNotFound = apperror.New(
		apperror.CodeNotFound,
		"SMS gateway configuration not found",
		http.StatusNotFound,
	)

	ErrGatewayCodeExists = apperror.New(
		apperror.CodeConflict,
		"Gateway with this code already exists",
		http.StatusConflict,
	)

	ErrTemplateNotFound = apperror.New(
		apperror.CodeNotFound,
		"SMS template not found",
		http.StatusNotFound,
	)

	ErrTemplateCodeExists = apperror.New(
		apperror.CodeConflict,
		"Template with this code already exists",
		http.StatusConflict,
	)

	ErrInvalidValues = apperror.New(
		apperror.CodeInvalidInput,
		"Gateway values must be valid JSON documents",
		http.StatusBadRequest,
	)
)

//go:generate mockgen -source=smsgateway_service.go -destination=mock/smsgateway_service_mock.go -package=mock
type Service interface {
	CreateConfiguration(ctx context.Context, actorID string, req CreateConfigurationRequest) (*SmsConfiguration, error)
	GetConfiguration(ctx context.Context, id string) (*SmsConfiguration, error)
	ListConfigurations(ctx context.Context, q listquery.Params) ([]SmsConfiguration, int64, error)
	UpdateConfiguration(ctx context.Context, actorID, id string, req UpdateConfigurationRequest) (*SmsConfiguration, error)
	UpdateConfigurationStatus(ctx context.Context, actorID, id string, req UpdateStatusRequest) (*SmsConfiguration, error)
	DeleteConfiguration(ctx context.Context, id string) error

	CreateTemplate(ctx context.Context, req CreateTemplateRequest) (*SmsTemplate, error)
	GetTemplate(ctx context.Context, id string) (*SmsTemplate, error)
	ListTemplates(ctx context.Context, q listquery.Params) ([]SmsTemplate, int64, error)
	UpdateTemplate(ctx context.Context, id string, req UpdateTemplateRequest) (*SmsTemplate, error)
	DeleteTemplate(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("smsgateway.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("smsgateway.service")
	}
	return &service{repo: repo, logger: l}
}

func validBlob(raw json.RawMessage) bool {
	return len(raw) == 0 || json.Valid(raw)
}

func (s *service) CreateConfiguration(ctx context.Context, actorID string, req CreateConfigurationRequest) (*SmsConfiguration, error) {
	if !validBlob(req.LiveValues) || !validBlob(req.TestValues) {
		return nil, ErrInvalidValues
	}

	mode := req.Mode
	if mode == "" {
		mode = ModeTest
	}

	cfg := &SmsConfiguration{
		ID:            uuid.NewString(),
		GatewayName:   req.GatewayName,
		GatewayCode:   req.GatewayCode,
		LiveValues:    req.LiveValues,
		TestValues:    req.TestValues,
		SchemaVersion: 1,
		Mode:          mode,
		Priority:      req.Priority,
		IsActive:      true,
	}
	if actorID != "" {
		cfg.CreatedBy = &actorID
	}

	if err := s.repo.CreateConfiguration(ctx, cfg); err != nil {
		return nil, mapConfigError(err)
	}

	s.logger.Info("sms gateway created",
		zap.String("gateway_id", cfg.ID),
		zap.String("gateway_code", cfg.GatewayCode),
	)
	return cfg, nil
}

func (s *service) GetConfiguration(ctx context.Context, id string) (*SmsConfiguration, error) {
	cfg, err := s.repo.FindConfigurationByID(ctx, id)
	if err != nil {
		return nil, mapConfigError(err)
	}
	return cfg, nil
}

func (s *service) ListConfigurations(ctx context.Context, q listquery.Params) ([]SmsConfiguration, int64, error) {
	return s.repo.ListConfigurations(ctx, q)
}

func (s *service) UpdateConfiguration(ctx context.Context, actorID, id string, req UpdateConfigurationRequest) (*SmsConfiguration, error) {
	if !validBlob(req.LiveValues) || !validBlob(req.TestValues) {
		return nil, ErrInvalidValues
	}

	cfg, err := s.repo.FindConfigurationByID(ctx, id)
	if err != nil {
		return nil, mapConfigError(err)
	}

	if req.GatewayName != "" {
		cfg.GatewayName = req.GatewayName
	}
	if len(req.LiveValues) > 0 {
		cfg.LiveValues = req.LiveValues
	}
	if len(req.TestValues) > 0 {
		cfg.TestValues = req.TestValues
	}
	if req.Mode != "" {
		cfg.Mode = req.Mode
	}
	if req.Priority != nil {
		cfg.Priority = *req.Priority
	}
	if actorID != "" {
		cfg.UpdatedBy = &actorID
	}

	if err := s.repo.UpdateConfiguration(ctx, cfg); err != nil {
		return nil, mapConfigError(err)
	}
	return cfg, nil
}

func (s *service) UpdateConfigurationStatus(ctx context.Context, actorID, id string, req UpdateStatusRequest) (*SmsConfiguration, error) {
	cfg, err := s.repo.FindConfigurationByID(ctx, id)
	if err != nil {
		return nil, mapConfigError(err)
	}

	cfg.IsActive = *req.IsActive
	if actorID != "" {
		cfg.UpdatedBy = &actorID
	}

	if err := s.repo.UpdateConfiguration(ctx, cfg); err != nil {
		return nil, mapConfigError(err)
	}

	s.logger.Info("sms gateway status changed",
		zap.String("gateway_id", cfg.ID),
		zap.Bool("is_active", cfg.IsActive),
	)
	return cfg, nil
}

func (s *service) DeleteConfiguration(ctx context.Context, id string) error {
	if _, err := s.repo.FindConfigurationByID(ctx, id); err != nil {
		return mapConfigError(err)
	}
	return s.repo.SoftDeleteConfiguration(ctx, id)
}

func (s *service) CreateTemplate(ctx context.Context, req CreateTemplateRequest) (*SmsTemplate, error) {
	t := &SmsTemplate{
		ID:           uuid.NewString(),
		TemplateCode: req.TemplateCode,
		Name:         req.Name,
		Body:         req.Body,
		GatewayID:    req.GatewayID,
		IsActive:     true,
	}

	if err := s.repo.CreateTemplate(ctx, t); err != nil {
		return nil, mapTemplateError(err)
	}
	return t, nil
}

func (s *service) GetTemplate(ctx context.Context, id string) (*SmsTemplate, error) {
	t, err := s.repo.FindTemplateByID(ctx, id)
	if err != nil {
		return nil, mapTemplateError(err)
	}
	return t, nil
}

func (s *service) ListTemplates(ctx context.Context, q listquery.Params) ([]SmsTemplate, int64, error) {
	return s.repo.ListTemplates(ctx, q)
}

func (s *service) UpdateTemplate(ctx context.Context, id string, req UpdateTemplateRequest) (*SmsTemplate, error) {
	t, err := s.repo.FindTemplateByID(ctx, id)
	if err != nil {
		return nil, mapTemplateError(err)
	}

	if req.Name != "" {
		t.Name = req.Name
	}
	if req.Body != "" {
		t.Body = req.Body
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateTemplate(ctx, t); err != nil {
		return nil, mapTemplateError(err)
	}
	return t, nil
}

func (s *service) DeleteTemplate(ctx context.Context, id string) error {
	if _, err := s.repo.FindTemplateByID(ctx, id); err != nil {
		return mapTemplateError(err)
	}
	return s.repo.SoftDeleteTemplate(ctx, id)
}

func isDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return mongo.IsDuplicateKeyError(err)
}

func mapConfigError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, mongo.ErrNoDocuments) {
		return ErrConfigurationNotFound
	}
	if isDuplicate(err) {
		return ErrGatewayCodeExists
	}
	return err
}

func mapTemplateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, mongo.ErrNoDocuments) {
		return ErrTemplateNotFound
	}
	if isDuplicate(err) {
		return ErrTemplateCodeExists
	}
	return err
}

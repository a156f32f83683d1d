package paymentgateway

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
		"Payment gateway configuration not found",
		http.StatusNotFound,
	)

	ErrGatewayCodeExists = apperror.New(
		apperror.CodeConflict,
		"Gateway with this code already exists",
		http.StatusConflict,
	)

	ErrInvalidValues = apperror.New(
		apperror.CodeInvalidInput,
		"Gateway values must be valid JSON documents",
		http.StatusBadRequest,
	)
)

//go:generate mockgen -source=paymentgateway_service.go -destination=mock/paymentgateway_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateConfigurationRequest) (*PaymentConfiguration, error)
	Get(ctx context.Context, id string) (*PaymentConfiguration, error)
	List(ctx context.Context, q listquery.Params) ([]PaymentConfiguration, int64, error)
	Update(ctx context.Context, actorID, id string, req UpdateConfigurationRequest) (*PaymentConfiguration, error)
	UpdateStatus(ctx context.Context, actorID, id string, req UpdateStatusRequest) (*PaymentConfiguration, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("paymentgateway.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("paymentgateway.service")
	}
	return &service{repo: repo, logger: l}
}

func validBlob(raw json.RawMessage) bool {
	return len(raw) == 0 || json.Valid(raw)
}

func (s *service) Create(ctx context.Context, actorID string, req CreateConfigurationRequest) (*PaymentConfiguration, error) {
	if !validBlob(req.LiveValues) || !validBlob(req.TestValues) {
		return nil, ErrInvalidValues
	}

	mode := req.Mode
	if mode == "" {
		mode = ModeTest
	}

	cfg := &PaymentConfiguration{
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

	if err := s.repo.Create(ctx, cfg); err != nil {
		return nil, mapRepositoryError(err)
	}

	s.logger.Info("payment gateway created",
		zap.String("gateway_id", cfg.ID),
		zap.String("gateway_code", cfg.GatewayCode),
	)
	return cfg, nil
}

func (s *service) Get(ctx context.Context, id string) (*PaymentConfiguration, error) {
	cfg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return cfg, nil
}

func (s *service) List(ctx context.Context, q listquery.Params) ([]PaymentConfiguration, int64, error) {
	return s.repo.List(ctx, q)
}

func (s *service) Update(ctx context.Context, actorID, id string, req UpdateConfigurationRequest) (*PaymentConfiguration, error) {
	if !validBlob(req.LiveValues) || !validBlob(req.TestValues) {
		return nil, ErrInvalidValues
	}

	cfg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
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

	if err := s.repo.Update(ctx, cfg); err != nil {
		return nil, mapRepositoryError(err)
	}
	return cfg, nil
}

func (s *service) UpdateStatus(ctx context.Context, actorID, id string, req UpdateStatusRequest) (*PaymentConfiguration, error) {
	cfg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	cfg.IsActive = *req.IsActive
	if actorID != "" {
		cfg.UpdatedBy = &actorID
	}

	if err := s.repo.Update(ctx, cfg); err != nil {
		return nil, mapRepositoryError(err)
	}

	s.logger.Info("payment gateway status changed",
		zap.String("gateway_id", cfg.ID),
		zap.Bool("is_active", cfg.IsActive),
	)
	return cfg, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	return s.repo.SoftDelete(ctx, id)
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, mongo.ErrNoDocuments) {
		return ErrConfigurationNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrGatewayCodeExists
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrGatewayCodeExists
	}
	return err
}

package userskill

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/apperror"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/listquery"
)

var (
	ErrSkillNotFound = apperror.New(
		apperror.CodeNotFound,
		"User skill not found",
		http.StatusNotFound,
	)

	ErrInvalidSkillData = apperror.New(
		apperror.CodeInvalidInput,
		"skill_data must be a valid JSON document",
		http.StatusBadRequest,
	)
)

//go:generate mockgen -source=userskill_service.go -destination=mock/userskill_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateUserSkillRequest) (*UserSkill, error)
	GetByID(ctx context.Context, id string) (*UserSkill, error)
	ListByUser(ctx context.Context, userID string, q listquery.Params) ([]UserSkill, int64, error)
	Update(ctx context.Context, actorID, id string, req UpdateUserSkillRequest) (*UserSkill, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("userskill.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("userskill.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, actorID string, req CreateUserSkillRequest) (*UserSkill, error) {
	if !json.Valid(req.SkillData) {
		return nil, ErrInvalidSkillData
	}

	skill := &UserSkill{
		ID:            uuid.NewString(),
		UserID:        req.UserID,
		SkillData:     req.SkillData,
		SchemaVersion: 1,
	}
	if actorID != "" {
		skill.CreatedBy = &actorID
	}

	if err := s.repo.Create(ctx, skill); err != nil {
		return nil, mapError(err)
	}
	return skill, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*UserSkill, error) {
	skill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return skill, nil
}

func (s *service) ListByUser(ctx context.Context, userID string, q listquery.Params) ([]UserSkill, int64, error) {
	skills, total, err := s.repo.ListByUser(ctx, userID, q)
	if err != nil {
		return nil, 0, mapError(err)
	}
	return skills, total, nil
}

func (s *service) Update(ctx context.Context, actorID, id string, req UpdateUserSkillRequest) (*UserSkill, error) {
	if !json.Valid(req.SkillData) {
		return nil, ErrInvalidSkillData
	}

	skill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}

	skill.SkillData = req.SkillData
	if actorID != "" {
		skill.UpdatedBy = &actorID
	}

	if err := s.repo.Update(ctx, skill); err != nil {
		return nil, mapError(err)
	}
	return skill, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapError(err)
	}
	return mapError(s.repo.SoftDelete(ctx, id))
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, mongo.ErrNoDocuments) {
		return ErrSkillNotFound
	}
	return err
}

package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/events"
	joberrors "github.com/pittisunilkumar3/talent-spark-sub001/internal/job/errors"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/notification"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/contextutil"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/listquery"
)

const (
	publishedCacheKey = "jobs:published"
	publishedCacheTTL = 30 * time.Minute
)

//go:generate mockgen -source=job_service.go -destination=mock/job_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateJobRequest) (*Job, error)
	GetByID(ctx context.Context, id string) (*Job, error)
	GetBySlug(ctx context.Context, slug string) (*Job, error)
	List(ctx context.Context, q listquery.Params, filter ListJobsFilter) ([]Job, int64, error)
	ListPublished(ctx context.Context) ([]Job, error)
	Update(ctx context.Context, actorID, id string, req UpdateJobRequest) (*Job, error)
	UpdateStatus(ctx context.Context, actorID, id string, req UpdateJobStatusRequest) (*Job, error)
	Apply(ctx context.Context, id string) (*Job, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	outbox notification.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, outbox notification.OutboxRepository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("job.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("job.service")
	}
	return &service{
		repo:   repo,
		outbox: outbox,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, actorID string, req CreateJobRequest) (*Job, error) {
	j := &Job{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		JobType:      req.JobType,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		BranchID:     req.BranchID,
		DepartmentID: req.DepartmentID,
		Status:       StatusDraft,
		ExpiresAt:    req.ExpiresAt,
	}
	if actorID != "" {
		j.CreatedBy = &actorID
	}

	slug, err := s.uniqueSlug(ctx, req.Title, "")
	if err != nil {
		return nil, err
	}
	j.Slug = slug

	if err := s.repo.Create(ctx, j); err != nil {
		return nil, mapRepositoryError(err)
	}

	s.logger.Info("job created", zap.String("job_id", j.ID), zap.String("slug", j.Slug))
	return j, nil
}

// uniqueSlug appends -1, -2, ... until the candidate is free. The slug
// check and the insert are not serialized; the database unique index is
// the final arbiter and maps to a 409.
func (s *service) uniqueSlug(ctx context.Context, title, excludeID string) (string, error) {
	base := slugify(title)
	candidate := base
	for i := 1; ; i++ {
		exists, err := s.repo.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

// GetByID counts the view before returning, so the response carries the
// incremented number.
func (s *service) GetByID(ctx context.Context, id string) (*Job, error) {
	if err := s.repo.IncrementViewCount(ctx, id); err != nil {
		s.logger.Warn("view count increment failed", zap.String("job_id", id), zap.Error(err))
	}

	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return j, nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Job, error) {
	j, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return j, nil
}

func (s *service) List(ctx context.Context, q listquery.Params, filter ListJobsFilter) ([]Job, int64, error) {
	if filter.Status != "" && !validStatus(filter.Status) {
		return nil, 0, joberrors.ErrInvalidStatus
	}

	jobs, total, err := s.repo.List(ctx, q, filter)
	if err != nil {
		return nil, 0, mapRepositoryError(err)
	}
	return jobs, total, nil
}

// ListPublished serves the public board from redis; concurrent misses
// collapse into one repository query via singleflight.
func (s *service) ListPublished(ctx context.Context) ([]Job, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, publishedCacheKey).Result()
		if err == nil {
			var jobs []Job
			if err := json.Unmarshal([]byte(cached), &jobs); err == nil {
				return jobs, nil
			}
		}
	}

	v, err, _ := s.sf.Do(publishedCacheKey, func() (interface{}, error) {
		jobs, _, err := s.repo.List(ctx,
			listquery.Params{Page: 1, Limit: 100, SortBy: "published_at", SortOrder: "desc"},
			ListJobsFilter{Status: StatusPublished},
		)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if data, err := json.Marshal(jobs); err == nil {
				s.rdb.Set(ctx, publishedCacheKey, data, publishedCacheTTL)
			}
		}
		return jobs, nil
	})
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return v.([]Job), nil
}

func (s *service) Update(ctx context.Context, actorID, id string, req UpdateJobRequest) (*Job, error) {
	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	if req.Title != "" && req.Title != j.Title {
		j.Title = req.Title
		slug, err := s.uniqueSlug(ctx, req.Title, j.ID)
		if err != nil {
			return nil, err
		}
		j.Slug = slug
	}
	if req.Description != "" {
		j.Description = req.Description
	}
	if req.Requirements != "" {
		j.Requirements = req.Requirements
	}
	if req.Location != "" {
		j.Location = req.Location
	}
	if req.JobType != "" {
		j.JobType = req.JobType
	}
	if req.SalaryMin != nil {
		j.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		j.SalaryMax = req.SalaryMax
	}
	if req.BranchID != nil {
		j.BranchID = req.BranchID
	}
	if req.DepartmentID != nil {
		j.DepartmentID = req.DepartmentID
	}
	if req.ExpiresAt != nil {
		j.ExpiresAt = req.ExpiresAt
	}
	if actorID != "" {
		j.UpdatedBy = &actorID
	}

	if err := s.repo.Update(ctx, j); err != nil {
		return nil, mapRepositoryError(err)
	}

	s.invalidatePublishedCache(ctx)
	return j, nil
}

// UpdateStatus validates the lifecycle transition. PublishedAt is set
// only on the first entry into published; republishing an expired job
// keeps the original timestamp.
func (s *service) UpdateStatus(ctx context.Context, actorID, id string, req UpdateJobStatusRequest) (*Job, error) {
	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	if req.Status == j.Status {
		return j, nil
	}
	if !transitionAllowed(j.Status, req.Status) {
		return nil, joberrors.ErrInvalidTransition
	}

	firstPublish := req.Status == StatusPublished && j.PublishedAt == nil
	j.Status = req.Status
	if firstPublish {
		now := time.Now().UTC()
		j.PublishedAt = &now
	}
	if actorID != "" {
		j.UpdatedBy = &actorID
	}

	if err := s.repo.Update(ctx, j); err != nil {
		return nil, mapRepositoryError(err)
	}

	if firstPublish {
		s.enqueuePublishedEvent(ctx, j)
	}

	s.invalidatePublishedCache(ctx)
	s.logger.Info("job status changed",
		zap.String("job_id", j.ID),
		zap.String("status", j.Status),
	)
	return j, nil
}

func (s *service) Apply(ctx context.Context, id string) (*Job, error) {
	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if j.Status != StatusPublished {
		return nil, joberrors.ErrJobNotPublished
	}

	if err := s.repo.IncrementApplicationCount(ctx, id); err != nil {
		return nil, mapRepositoryError(err)
	}

	j.ApplicationCount++
	return j, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.invalidatePublishedCache(ctx)
	s.logger.Info("job soft-deleted", zap.String("job_id", id))
	return nil
}

func (s *service) invalidatePublishedCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, publishedCacheKey).Err(); err != nil {
		s.logger.Warn("published cache invalidation failed", zap.Error(err))
	}
}

func (s *service) enqueuePublishedEvent(ctx context.Context, j *Job) {
	if s.outbox == nil {
		return
	}

	event := events.JobPublishedEvent{
		EventType:   "job_published",
		RequestID:   contextutil.GetRequestID(ctx),
		JobID:       j.ID,
		Slug:        j.Slug,
		Title:       j.Title,
		PublishedAt: *j.PublishedAt,
		OccurredAt:  time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal job event failed", zap.Error(err))
		return
	}

	if err := s.outbox.Create(ctx, notification.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: "job",
		AggregateID:   j.ID,
		EventType:     event.EventType,
		Topic:         events.JobLifecycleTopic,
		Payload:       payload,
		Status:        notification.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("outbox enqueue failed", zap.String("job_id", j.ID), zap.Error(err))
	}
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, mongo.ErrNoDocuments) {
		return joberrors.ErrJobNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return joberrors.ErrSlugAlreadyExists
	}
	if mongo.IsDuplicateKeyError(err) {
		return joberrors.ErrSlugAlreadyExists
	}

	return err
}

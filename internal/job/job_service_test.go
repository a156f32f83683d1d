package job

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	joberrors "github.com/pittisunilkumar3/talent-spark-sub001/internal/job/errors"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/notification"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/listquery"
)

type fakeJobRepo struct {
	byID   map[string]*Job
	bySlug map[string]*Job

	listCalls int
}

func newFakeJobRepo(jobs ...*Job) *fakeJobRepo {
	r := &fakeJobRepo{byID: map[string]*Job{}, bySlug: map[string]*Job{}}
	for _, j := range jobs {
		r.put(j)
	}
	return r
}

func (r *fakeJobRepo) put(j *Job) {
	r.byID[j.ID] = j
	r.bySlug[j.Slug] = j
}

func (r *fakeJobRepo) Create(ctx context.Context, j *Job) error {
	r.put(j)
	return nil
}

func (r *fakeJobRepo) FindByID(ctx context.Context, id string) (*Job, error) {
	j, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	// Real repositories decode a fresh row per call; mutating the result
	// must not reach the stored record until Update is called.
	cp := *j
	return &cp, nil
}

func (r *fakeJobRepo) FindBySlug(ctx context.Context, slug string) (*Job, error) {
	j, ok := r.bySlug[slug]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *j
	return &cp, nil
}

func (r *fakeJobRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	j, ok := r.bySlug[slug]
	if !ok {
		return false, nil
	}
	return j.ID != excludeID, nil
}

func (r *fakeJobRepo) List(ctx context.Context, q listquery.Params, filter ListJobsFilter) ([]Job, int64, error) {
	r.listCalls++
	var out []Job
	for _, j := range r.byID {
		if filter.Status != "" && j.Status != filter.Status {
			continue
		}
		out = append(out, *j)
	}
	return out, int64(len(out)), nil
}

func (r *fakeJobRepo) Update(ctx context.Context, j *Job) error {
	// Remove stale slug key when the slug changed.
	for slug, existing := range r.bySlug {
		if existing.ID == j.ID && slug != j.Slug {
			delete(r.bySlug, slug)
		}
	}
	r.put(j)
	return nil
}

func (r *fakeJobRepo) SoftDelete(ctx context.Context, id string) error {
	if j, ok := r.byID[id]; ok {
		delete(r.bySlug, j.Slug)
		delete(r.byID, id)
	}
	return nil
}

func (r *fakeJobRepo) IncrementViewCount(ctx context.Context, id string) error {
	if j, ok := r.byID[id]; ok {
		j.ViewCount++
	}
	return nil
}

func (r *fakeJobRepo) IncrementApplicationCount(ctx context.Context, id string) error {
	if j, ok := r.byID[id]; ok {
		j.ApplicationCount++
	}
	return nil
}

type fakeOutbox struct {
	events []notification.OutboxEvent
}

func (f *fakeOutbox) Create(ctx context.Context, e notification.OutboxEvent) error {
	f.events = append(f.events, e)
	return nil
}

func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]notification.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

func TestCreateGeneratesUniqueSlug(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewService(repo, &fakeOutbox{}, nil)

	first, err := svc.Create(context.Background(), "emp-1", CreateJobRequest{Title: "Senior Go Engineer"})
	require.NoError(t, err)
	assert.Equal(t, "senior-go-engineer", first.Slug)
	assert.Equal(t, StatusDraft, first.Status)

	second, err := svc.Create(context.Background(), "emp-1", CreateJobRequest{Title: "Senior Go Engineer"})
	require.NoError(t, err)
	assert.Equal(t, "senior-go-engineer-1", second.Slug)

	third, err := svc.Create(context.Background(), "emp-1", CreateJobRequest{Title: "Senior Go Engineer"})
	require.NoError(t, err)
	assert.Equal(t, "senior-go-engineer-2", third.Slug)
}

func TestUpdateKeepsOwnSlug(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewService(repo, &fakeOutbox{}, nil)

	j, err := svc.Create(context.Background(), "emp-1", CreateJobRequest{Title: "Backend Developer"})
	require.NoError(t, err)

	// Re-saving the same title must not produce backend-developer-1.
	updated, err := svc.Update(context.Background(), "emp-1", j.ID, UpdateJobRequest{Description: "updated"})
	require.NoError(t, err)
	assert.Equal(t, "backend-developer", updated.Slug)

	retitled, err := svc.Update(context.Background(), "emp-1", j.ID, UpdateJobRequest{Title: "Platform Developer"})
	require.NoError(t, err)
	assert.Equal(t, "platform-developer", retitled.Slug)
}

func TestPublishSetsPublishedAtOnce(t *testing.T) {
	repo := newFakeJobRepo()
	outbox := &fakeOutbox{}
	svc := NewService(repo, outbox, nil)

	j, err := svc.Create(context.Background(), "emp-1", CreateJobRequest{Title: "QA Engineer"})
	require.NoError(t, err)

	published, err := svc.UpdateStatus(context.Background(), "emp-1", j.ID, UpdateJobStatusRequest{Status: StatusPublished})
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	firstStamp := *published.PublishedAt

	require.Len(t, outbox.events, 1)
	assert.Equal(t, "job_published", outbox.events[0].EventType)

	// Repeating the same PATCH is a no-op for the timestamp.
	again, err := svc.UpdateStatus(context.Background(), "emp-1", j.ID, UpdateJobStatusRequest{Status: StatusPublished})
	require.NoError(t, err)
	assert.Equal(t, firstStamp, *again.PublishedAt)
	assert.Len(t, outbox.events, 1)

	// Expire, republish: timestamp survives and no second event fires.
	_, err = svc.UpdateStatus(context.Background(), "emp-1", j.ID, UpdateJobStatusRequest{Status: StatusExpired})
	require.NoError(t, err)
	republished, err := svc.UpdateStatus(context.Background(), "emp-1", j.ID, UpdateJobStatusRequest{Status: StatusPublished})
	require.NoError(t, err)
	assert.Equal(t, firstStamp, *republished.PublishedAt)
	assert.Len(t, outbox.events, 1)
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewService(repo, &fakeOutbox{}, nil)

	j, err := svc.Create(context.Background(), "emp-1", CreateJobRequest{Title: "QA Engineer"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), "emp-1", j.ID, UpdateJobStatusRequest{Status: StatusFilled})
	assert.ErrorIs(t, err, joberrors.ErrInvalidTransition)
}

func TestApplyIncrementsOnlyPublishedJobs(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewService(repo, &fakeOutbox{}, nil)

	j, err := svc.Create(context.Background(), "emp-1", CreateJobRequest{Title: "QA Engineer"})
	require.NoError(t, err)

	_, err = svc.Apply(context.Background(), j.ID)
	assert.ErrorIs(t, err, joberrors.ErrJobNotPublished)

	_, err = svc.UpdateStatus(context.Background(), "emp-1", j.ID, UpdateJobStatusRequest{Status: StatusPublished})
	require.NoError(t, err)

	applied, err := svc.Apply(context.Background(), j.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), applied.ApplicationCount)
}

func TestGetByIDIncrementsViewCount(t *testing.T) {
	repo := newFakeJobRepo(&Job{ID: "job-1", Slug: "qa-engineer", Title: "QA Engineer", Status: StatusPublished})
	svc := NewService(repo, &fakeOutbox{}, nil)

	j, err := svc.GetByID(context.Background(), "job-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), j.ViewCount)

	j, err = svc.GetByID(context.Background(), "job-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), j.ViewCount)
}

func TestListPublishedServesFromCache(t *testing.T) {
	cached := []Job{{ID: "job-1", Slug: "qa-engineer", Title: "QA Engineer", Status: StatusPublished}}
	data, err := json.Marshal(cached)
	require.NoError(t, err)

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet(publishedCacheKey).SetVal(string(data))

	repo := newFakeJobRepo()
	svc := NewService(repo, &fakeOutbox{}, rdb)

	jobs, err := svc.ListPublished(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "job-1", jobs[0].ID)
	assert.Zero(t, repo.listCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPublishedCacheMissFillsCache(t *testing.T) {
	job1 := &Job{ID: "job-1", Slug: "qa-engineer", Title: "QA Engineer", Status: StatusPublished}
	repo := newFakeJobRepo(job1)

	expected, err := json.Marshal([]Job{*job1})
	require.NoError(t, err)

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet(publishedCacheKey).RedisNil()
	mock.ExpectSet(publishedCacheKey, expected, publishedCacheTTL).SetVal("OK")

	svc := NewService(repo, &fakeOutbox{}, rdb)

	jobs, err := svc.ListPublished(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, 1, repo.listCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRejectsUnknownStatusFilter(t *testing.T) {
	svc := NewService(newFakeJobRepo(), &fakeOutbox{}, nil)

	_, _, err := svc.List(context.Background(), listquery.Params{Page: 1, Limit: 10}, ListJobsFilter{Status: "archived"})
	assert.ErrorIs(t, err, joberrors.ErrInvalidStatus)
}

func TestPublishedAtWithinTestWindow(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewService(repo, &fakeOutbox{}, nil)

	before := time.Now().UTC()
	j, err := svc.Create(context.Background(), "emp-1", CreateJobRequest{Title: "SRE"})
	require.NoError(t, err)
	published, err := svc.UpdateStatus(context.Background(), "emp-1", j.ID, UpdateJobStatusRequest{Status: StatusPublished})
	require.NoError(t, err)
	after := time.Now().UTC()

	require.NotNil(t, published.PublishedAt)
	assert.False(t, published.PublishedAt.Before(before))
	assert.False(t, published.PublishedAt.After(after))
}

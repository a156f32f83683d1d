package userskill

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/listquery"
)

type fakeSkillRepo struct {
	byID map[string]*UserSkill
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{byID: map[string]*UserSkill{}}
}

func (r *fakeSkillRepo) Create(ctx context.Context, s *UserSkill) error {
	r.byID[s.ID] = s
	return nil
}

func (r *fakeSkillRepo) FindByID(ctx context.Context, id string) (*UserSkill, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *fakeSkillRepo) ListByUser(ctx context.Context, userID string, q listquery.Params) ([]UserSkill, int64, error) {
	var out []UserSkill
	for _, s := range r.byID {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeSkillRepo) Update(ctx context.Context, s *UserSkill) error {
	r.byID[s.ID] = s
	return nil
}

func (r *fakeSkillRepo) SoftDelete(ctx context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func TestCreateAcceptsArbitraryJSON(t *testing.T) {
	svc := NewService(newFakeSkillRepo())

	payload := json.RawMessage(`{"languages":["go","sql"],"years":5,"certs":{"aws":true}}`)
	skill, err := svc.Create(context.Background(), "emp-1", CreateUserSkillRequest{
		UserID:    "user-1",
		SkillData: payload,
	})
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), string(skill.SkillData))
	assert.Equal(t, 1, skill.SchemaVersion)
	require.NotNil(t, skill.CreatedBy)
	assert.Equal(t, "emp-1", *skill.CreatedBy)
}

func TestCreateRejectsMalformedJSON(t *testing.T) {
	svc := NewService(newFakeSkillRepo())

	_, err := svc.Create(context.Background(), "emp-1", CreateUserSkillRequest{
		UserID:    "user-1",
		SkillData: json.RawMessage(`{"broken":`),
	})
	assert.ErrorIs(t, err, ErrInvalidSkillData)
}

func TestUpdateStampsUpdatedBy(t *testing.T) {
	repo := newFakeSkillRepo()
	svc := NewService(repo)

	skill, err := svc.Create(context.Background(), "emp-1", CreateUserSkillRequest{
		UserID:    "user-1",
		SkillData: json.RawMessage(`{"level":"junior"}`),
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), "emp-2", skill.ID, UpdateUserSkillRequest{
		SkillData: json.RawMessage(`{"level":"senior"}`),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"level":"senior"}`, string(updated.SkillData))
	require.NotNil(t, updated.UpdatedBy)
	assert.Equal(t, "emp-2", *updated.UpdatedBy)
}

func TestGetMissingSkill(t *testing.T) {
	svc := NewService(newFakeSkillRepo())

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSkillNotFound)
}

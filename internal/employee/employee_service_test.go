package employee

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/bootstrap"
	employeeerrors "github.com/pittisunilkumar3/talent-spark-sub001/internal/employee/errors"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/listquery"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/password"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/token"
)

type fakeEmployeeRepo struct {
	byID    map[string]*Employee
	byEmail map[string]*Employee
}

func newFakeEmployeeRepo(employees ...*Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{byID: map[string]*Employee{}, byEmail: map[string]*Employee{}}
	for _, e := range employees {
		r.put(e)
	}
	return r
}

func (r *fakeEmployeeRepo) put(e *Employee) {
	r.byID[e.ID] = e
	r.byEmail[e.Email] = e
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, e *Employee) error {
	r.put(e)
	return nil
}

func (r *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*Employee, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	e, ok := r.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) List(ctx context.Context, q listquery.Params, filter ListEmployeesFilter) ([]Employee, int64, error) {
	var out []Employee
	for _, e := range r.byID {
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, e *Employee) error {
	r.put(e)
	return nil
}

func (r *fakeEmployeeRepo) SoftDelete(ctx context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

type fakeCounter struct {
	next int64
}

func (f *fakeCounter) GetNextValue(ctx context.Context, scope, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

type recordingAudit struct {
	entries []bootstrap.AuditLog
}

func (a *recordingAudit) Log(ctx context.Context, entry bootstrap.AuditLog) {
	a.entries = append(a.entries, entry)
}

func testTokens() token.Service {
	return token.NewService("test-secret", time.Hour, 2*time.Hour)
}

func activeEmployee(t *testing.T, email, plain string) *Employee {
	t.Helper()
	hashed, err := password.Hash(plain)
	require.NoError(t, err)
	return &Employee{
		ID:           "emp-1",
		EmployeeCode: "EMP-000001",
		FirstName:    "Sam",
		Email:        email,
		PasswordHash: hashed,
		IsActive:     true,
	}
}

func TestEmployeeLoginSuccess(t *testing.T) {
	repo := newFakeEmployeeRepo(activeEmployee(t, "sam@example.com", "staff-pass-1"))
	svc := NewService(repo, &fakeCounter{}, testTokens(), &recordingAudit{})

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "sam@example.com", Password: "staff-pass-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "EMP-000001", resp.Employee.EmployeeCode)
	assert.NotNil(t, repo.byID["emp-1"].LastLogin)
}

func TestEmployeeLoginUnknownEmail(t *testing.T) {
	svc := NewService(newFakeEmployeeRepo(), &fakeCounter{}, testTokens(), &recordingAudit{})

	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidCredentials)
}

func TestEmployeeLoginInactive(t *testing.T) {
	e := activeEmployee(t, "sam@example.com", "staff-pass-1")
	e.IsActive = false
	svc := NewService(newFakeEmployeeRepo(e), &fakeCounter{}, testTokens(), &recordingAudit{})

	_, err := svc.Login(context.Background(), LoginRequest{Email: "sam@example.com", Password: "staff-pass-1"})
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeInactive)
}

func TestEmployeeLoginWithoutStoredHash(t *testing.T) {
	e := activeEmployee(t, "sam@example.com", "staff-pass-1")
	e.PasswordHash = ""
	svc := NewService(newFakeEmployeeRepo(e), &fakeCounter{}, testTokens(), &recordingAudit{})

	_, err := svc.Login(context.Background(), LoginRequest{Email: "sam@example.com", Password: "staff-pass-1"})
	assert.ErrorIs(t, err, employeeerrors.ErrPasswordNotSet)
}

// Only the stored hash admits a login. No email/password pair may skip
// verification, and a failed login must never rewrite the stored hash.
func TestEmployeeLoginNoCredentialBackdoor(t *testing.T) {
	e := activeEmployee(t, "admin@example.com", "real-admin-pass")
	originalHash := e.PasswordHash
	repo := newFakeEmployeeRepo(e)
	svc := NewService(repo, &fakeCounter{}, testTokens(), &recordingAudit{})

	for _, guess := range []string{"admin", "password", "admin123", "superadmin"} {
		_, err := svc.Login(context.Background(), LoginRequest{Email: "admin@example.com", Password: guess})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidCredentials)
	}

	assert.Equal(t, originalHash, repo.byID["emp-1"].PasswordHash)
}

func TestEmployeeRefreshRejectsUserToken(t *testing.T) {
	tokens := testTokens()
	repo := newFakeEmployeeRepo(activeEmployee(t, "sam@example.com", "staff-pass-1"))
	svc := NewService(repo, &fakeCounter{}, tokens, &recordingAudit{})

	userToken, err := tokens.IssueRefreshToken(token.Claims{SubjectID: "emp-1", Type: token.TypeUser})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), userToken)
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidRefreshToken)
}

func TestEmployeeCreateAssignsSequentialCodes(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewService(repo, &fakeCounter{}, testTokens(), &recordingAudit{})

	first, err := svc.Create(context.Background(), "actor-1", CreateEmployeeRequest{
		FirstName: "Sam",
		Email:     "sam@example.com",
		Password:  "staff-pass-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "EMP-000001", first.EmployeeCode)

	second, err := svc.Create(context.Background(), "actor-1", CreateEmployeeRequest{
		FirstName: "Ana",
		Email:     "ana@example.com",
		Password:  "staff-pass-2",
	})
	require.NoError(t, err)
	assert.Equal(t, "EMP-000002", second.EmployeeCode)

	// Persisted hash verifies; plaintext never stored.
	stored := repo.byID[first.ID]
	assert.NotEqual(t, "staff-pass-1", stored.PasswordHash)
	assert.True(t, password.Verify("staff-pass-1", stored.PasswordHash))
}

func TestEmployeeUpdateRehashesPassword(t *testing.T) {
	e := activeEmployee(t, "sam@example.com", "staff-pass-1")
	repo := newFakeEmployeeRepo(e)
	svc := NewService(repo, &fakeCounter{}, testTokens(), &recordingAudit{})

	_, err := svc.Update(context.Background(), "actor-1", "emp-1", UpdateEmployeeRequest{Password: "new-staff-pass"})
	require.NoError(t, err)

	stored := repo.byID["emp-1"]
	assert.True(t, password.Verify("new-staff-pass", stored.PasswordHash))
	assert.False(t, password.Verify("staff-pass-1", stored.PasswordHash))
}

func TestEmployeeLogoutWritesAuditEntry(t *testing.T) {
	audit := &recordingAudit{}
	svc := NewService(newFakeEmployeeRepo(), &fakeCounter{}, testTokens(), audit)

	err := svc.Logout(context.Background(), "emp-1")
	assert.NoError(t, err)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, "EMPLOYEE_LOGOUT", audit.entries[0].Action)
	assert.Equal(t, "emp-1", audit.entries[0].ActorID)
}

func TestEmployeeStatusNotFound(t *testing.T) {
	svc := NewService(newFakeEmployeeRepo(), &fakeCounter{}, testTokens(), &recordingAudit{})

	_, err := svc.Status(context.Background(), "missing")
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

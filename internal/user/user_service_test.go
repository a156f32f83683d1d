package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/notification"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/listquery"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/password"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/token"
	usererrors "github.com/pittisunilkumar3/talent-spark-sub001/internal/user/errors"
)

type fakeUserRepo struct {
	byID    map[string]*User
	byEmail map[string]*User
	byReset map[string]*User

	createErr error
	updates   int
}

func newFakeUserRepo(users ...*User) *fakeUserRepo {
	r := &fakeUserRepo{
		byID:    map[string]*User{},
		byEmail: map[string]*User{},
		byReset: map[string]*User{},
	}
	for _, u := range users {
		r.put(u)
	}
	return r
}

func (r *fakeUserRepo) put(u *User) {
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	if u.ResetToken != nil {
		r.byReset[*u.ResetToken] = u
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.put(u)
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByResetToken(ctx context.Context, tok string) (*User, error) {
	u, ok := r.byReset[tok]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) List(ctx context.Context, q listquery.Params, filter ListUsersFilter) ([]User, int64, error) {
	var out []User
	for _, u := range r.byID {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *User) error {
	r.updates++
	r.put(u)
	return nil
}

func (r *fakeUserRepo) SoftDelete(ctx context.Context, id string) error {
	delete(r.byID, id)
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

func testTokens() token.Service {
	return token.NewService("test-secret", time.Hour, 2*time.Hour)
}

func activeUser(t *testing.T, email, plain string) *User {
	t.Helper()
	hashed, err := password.Hash(plain)
	require.NoError(t, err)
	return &User{
		ID:           "user-1",
		Username:     "jdoe",
		Email:        email,
		PasswordHash: &hashed,
		AuthMethods:  AuthMethodPassword,
		Role:         RoleCustomer,
		IsActive:     true,
	}
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeUserRepo(activeUser(t, "jdoe@example.com", "s3cret-pass"))
	svc := NewService(repo, testTokens(), &fakeOutbox{})

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "jdoe@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "user-1", resp.User.ID)

	u := repo.byID["user-1"]
	assert.Zero(t, u.LoginAttempts)
	assert.NotNil(t, u.LastLogin)
}

func TestLoginUnknownEmailIsGeneric401(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testTokens(), &fakeOutbox{})

	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, usererrors.ErrInvalidCredentials)
}

func TestLoginWrongPasswordIncrementsAttempts(t *testing.T) {
	repo := newFakeUserRepo(activeUser(t, "jdoe@example.com", "s3cret-pass"))
	svc := NewService(repo, testTokens(), &fakeOutbox{})

	_, err := svc.Login(context.Background(), LoginRequest{Email: "jdoe@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, usererrors.ErrInvalidCredentials)
	assert.Equal(t, 1, repo.byID["user-1"].LoginAttempts)
	assert.Nil(t, repo.byID["user-1"].LoginLockedUntil)
}

func TestLoginLocksAfterFiveFailures(t *testing.T) {
	repo := newFakeUserRepo(activeUser(t, "jdoe@example.com", "s3cret-pass"))
	svc := NewService(repo, testTokens(), &fakeOutbox{})

	for i := 0; i < MaxLoginAttempts; i++ {
		_, err := svc.Login(context.Background(), LoginRequest{Email: "jdoe@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, usererrors.ErrInvalidCredentials)
	}

	u := repo.byID["user-1"]
	assert.Equal(t, MaxLoginAttempts, u.LoginAttempts)
	require.NotNil(t, u.LoginLockedUntil)

	// Even the correct password is rejected while the lock holds.
	_, err := svc.Login(context.Background(), LoginRequest{Email: "jdoe@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, usererrors.ErrAccountLocked)
}

func TestLoginExpiredLockAdmits(t *testing.T) {
	u := activeUser(t, "jdoe@example.com", "s3cret-pass")
	past := time.Now().UTC().Add(-time.Minute)
	u.LoginAttempts = MaxLoginAttempts
	u.LoginLockedUntil = &past
	repo := newFakeUserRepo(u)
	svc := NewService(repo, testTokens(), &fakeOutbox{})

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "jdoe@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Zero(t, repo.byID["user-1"].LoginAttempts)
	assert.Nil(t, repo.byID["user-1"].LoginLockedUntil)
}

func TestLoginInactiveUser(t *testing.T) {
	u := activeUser(t, "jdoe@example.com", "s3cret-pass")
	u.IsActive = false
	svc := NewService(newFakeUserRepo(u), testTokens(), &fakeOutbox{})

	_, err := svc.Login(context.Background(), LoginRequest{Email: "jdoe@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, usererrors.ErrUserInactive)
}

func TestLoginWithoutPasswordAuthMethod(t *testing.T) {
	u := activeUser(t, "jdoe@example.com", "s3cret-pass")
	u.AuthMethods = AuthMethodGoogle
	svc := NewService(newFakeUserRepo(u), testTokens(), &fakeOutbox{})

	_, err := svc.Login(context.Background(), LoginRequest{Email: "jdoe@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, usererrors.ErrPasswordAuthDisabled)
}

func TestSignupEnqueuesRegisteredEvent(t *testing.T) {
	repo := newFakeUserRepo()
	outbox := &fakeOutbox{}
	svc := NewService(repo, testTokens(), outbox)

	resp, err := svc.Signup(context.Background(), SignupRequest{
		Username:  "jdoe",
		Email:     "jdoe@example.com",
		Password:  "s3cret-pass",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, RoleCustomer, resp.User.Role)
	assert.NotEmpty(t, resp.Token)

	require.Len(t, outbox.events, 1)
	assert.Equal(t, "user_registered", outbox.events[0].EventType)
	assert.Equal(t, resp.User.ID, outbox.events[0].AggregateID)

	// Stored hash must verify and never equal the plaintext.
	stored := repo.byID[resp.User.ID]
	require.NotNil(t, stored.PasswordHash)
	assert.NotEqual(t, "s3cret-pass", *stored.PasswordHash)
	assert.True(t, password.Verify("s3cret-pass", *stored.PasswordHash))
}

func TestRefreshTokenRejectsEmployeeToken(t *testing.T) {
	tokens := testTokens()
	repo := newFakeUserRepo(activeUser(t, "jdoe@example.com", "s3cret-pass"))
	svc := NewService(repo, tokens, &fakeOutbox{})

	employeeToken, err := tokens.IssueRefreshToken(token.Claims{SubjectID: "user-1", Type: token.TypeEmployee})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), employeeToken)
	assert.ErrorIs(t, err, usererrors.ErrInvalidRefreshToken)
}

func TestRequestPasswordResetHidesUnknownEmail(t *testing.T) {
	outbox := &fakeOutbox{}
	svc := NewService(newFakeUserRepo(), testTokens(), outbox)

	err := svc.RequestPasswordReset(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Empty(t, outbox.events)
}

func TestResetPasswordClearsLockout(t *testing.T) {
	u := activeUser(t, "jdoe@example.com", "old-pass")
	tok := "reset-token-1"
	future := time.Now().UTC().Add(time.Hour)
	u.ResetToken = &tok
	u.ResetTokenExpiresAt = &future
	u.LoginAttempts = 4
	repo := newFakeUserRepo(u)
	svc := NewService(repo, testTokens(), &fakeOutbox{})

	err := svc.ResetPassword(context.Background(), ResetPasswordRequest{Token: tok, NewPassword: "new-pass-123"})
	require.NoError(t, err)

	stored := repo.byID["user-1"]
	assert.Nil(t, stored.ResetToken)
	assert.Zero(t, stored.LoginAttempts)
	assert.True(t, password.Verify("new-pass-123", *stored.PasswordHash))
}

func TestResetPasswordExpiredToken(t *testing.T) {
	u := activeUser(t, "jdoe@example.com", "old-pass")
	tok := "reset-token-1"
	past := time.Now().UTC().Add(-time.Minute)
	u.ResetToken = &tok
	u.ResetTokenExpiresAt = &past
	svc := NewService(newFakeUserRepo(u), testTokens(), &fakeOutbox{})

	err := svc.ResetPassword(context.Background(), ResetPasswordRequest{Token: tok, NewPassword: "new-pass-123"})
	assert.ErrorIs(t, err, usererrors.ErrInvalidResetToken)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	repo := newFakeUserRepo(activeUser(t, "jdoe@example.com", "s3cret-pass"))
	svc := NewService(repo, testTokens(), &fakeOutbox{})

	err := svc.ChangePassword(context.Background(), "user-1", ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "new-pass-123",
	})
	assert.ErrorIs(t, err, usererrors.ErrWrongPassword)
}

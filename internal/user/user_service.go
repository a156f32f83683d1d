package user

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/events"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/notification"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/contextutil"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/listquery"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/password"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/token"
	usererrors "github.com/pittisunilkumar3/talent-spark-sub001/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const resetTokenTTL = time.Hour

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	Signup(ctx context.Context, req SignupRequest) (AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (AuthResponse, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
	GetMe(ctx context.Context, userID string) (UserResponse, error)

	List(ctx context.Context, q listquery.Params, filter ListUsersFilter) ([]UserResponse, int64, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Create(ctx context.Context, actorID string, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, actorID, id string, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	tokens token.Service
	outbox notification.OutboxRepository
	logger *zap.Logger
}

func NewService(repo Repository, tokens token.Service, outbox notification.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, tokens: tokens, outbox: outbox, logger: l}
}

// Login implements the lockout policy: five consecutive failures lock the
// account for thirty minutes, and a locked account rejects even correct
// credentials until the window elapses.
func (s *service) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("login requested", zap.String("request_id", rid), zap.String("email", req.Email))

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return AuthResponse{}, usererrors.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if u.Locked(now) {
		s.logger.Warn("login rejected, account locked",
			zap.String("user_id", u.ID),
			zap.Timep("locked_until", u.LoginLockedUntil),
		)
		return AuthResponse{}, usererrors.ErrAccountLocked
	}

	if !u.IsActive {
		return AuthResponse{}, usererrors.ErrUserInactive
	}

	if !u.HasAuthMethod(AuthMethodPassword) {
		return AuthResponse{}, usererrors.ErrPasswordAuthDisabled
	}

	if u.PasswordHash == nil || !password.Verify(req.Password, *u.PasswordHash) {
		u.LoginAttempts++
		if u.LoginAttempts >= MaxLoginAttempts {
			lockedUntil := now.Add(LockoutDuration)
			u.LoginLockedUntil = &lockedUntil
			s.logger.Warn("account locked after failed attempts",
				zap.String("user_id", u.ID),
				zap.Int("attempts", u.LoginAttempts),
			)
		}
		if err := s.repo.Update(ctx, u); err != nil {
			s.logger.Error("persist failed login attempt failed", zap.Error(err))
		}
		return AuthResponse{}, usererrors.ErrInvalidCredentials
	}

	u.LoginAttempts = 0
	u.LoginLockedUntil = nil
	u.LastLogin = &now
	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("persist login success failed", zap.Error(err))
	}

	resp, err := s.issueTokens(u)
	if err != nil {
		return AuthResponse{}, err
	}

	s.logger.Info("login success", zap.String("request_id", rid), zap.String("user_id", u.ID))
	return resp, nil
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (AuthResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("signup requested", zap.String("request_id", rid), zap.String("email", req.Email))

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return AuthResponse{}, err
	}

	u := &User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: &hashed,
		AuthMethods:  AuthMethodPassword,
		Role:         RoleCustomer,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return AuthResponse{}, mapRepositoryError(err)
	}

	s.enqueueEvent(ctx, "user", u.ID, events.UserLifecycleTopic, events.UserRegisteredEvent{
		EventType:  "user_registered",
		RequestID:  rid,
		UserID:     u.ID,
		Email:      u.Email,
		Username:   u.Username,
		OccurredAt: time.Now().UTC(),
	})

	resp, err := s.issueTokens(u)
	if err != nil {
		return AuthResponse{}, err
	}

	s.logger.Info("signup success", zap.String("request_id", rid), zap.String("user_id", u.ID))
	return resp, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (AuthResponse, error) {
	claims, ok := s.tokens.Verify(refreshToken)
	if !ok || claims.Type != token.TypeUser {
		return AuthResponse{}, usererrors.ErrInvalidRefreshToken
	}

	u, err := s.repo.FindByID(ctx, claims.SubjectID)
	if err != nil {
		return AuthResponse{}, usererrors.ErrInvalidRefreshToken
	}
	if !u.IsActive {
		return AuthResponse{}, usererrors.ErrUserInactive
	}

	return s.issueTokens(u)
}

// RequestPasswordReset always reports success so callers cannot probe
// which emails have accounts.
func (s *service) RequestPasswordReset(ctx context.Context, email string) error {
	rid := contextutil.GetRequestID(ctx)

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Debug("password reset for unknown email", zap.String("request_id", rid))
		return nil
	}

	resetToken := uuid.NewString()
	expiresAt := time.Now().UTC().Add(resetTokenTTL)
	u.ResetToken = &resetToken
	u.ResetTokenExpiresAt = &expiresAt

	if err := s.repo.Update(ctx, u); err != nil {
		return mapRepositoryError(err)
	}

	s.enqueueEvent(ctx, "user", u.ID, events.UserLifecycleTopic, events.PasswordResetRequestedEvent{
		EventType:  "password_reset_requested",
		RequestID:  rid,
		UserID:     u.ID,
		Email:      u.Email,
		ResetToken: resetToken,
		ExpiresAt:  expiresAt,
		OccurredAt: time.Now().UTC(),
	})

	s.logger.Info("password reset requested", zap.String("request_id", rid), zap.String("user_id", u.ID))
	return nil
}

func (s *service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	u, err := s.repo.FindByResetToken(ctx, req.Token)
	if err != nil {
		return usererrors.ErrInvalidResetToken
	}
	if u.ResetTokenExpiresAt == nil || u.ResetTokenExpiresAt.Before(time.Now().UTC()) {
		return usererrors.ErrInvalidResetToken
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		return err
	}

	u.PasswordHash = &hashed
	u.ResetToken = nil
	u.ResetTokenExpiresAt = nil
	u.LoginAttempts = 0
	u.LoginLockedUntil = nil

	if err := s.repo.Update(ctx, u); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("password reset completed", zap.String("user_id", u.ID))
	return nil
}

func (s *service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return mapRepositoryError(err)
	}

	if u.PasswordHash == nil || !password.Verify(req.CurrentPassword, *u.PasswordHash) {
		return usererrors.ErrWrongPassword
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		return err
	}

	u.PasswordHash = &hashed
	if err := s.repo.Update(ctx, u); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("password changed", zap.String("user_id", u.ID))
	return nil
}

func (s *service) GetMe(ctx context.Context, userID string) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(u), nil
}

func (s *service) List(ctx context.Context, q listquery.Params, filter ListUsersFilter) ([]UserResponse, int64, error) {
	users, total, err := s.repo.List(ctx, q, filter)
	if err != nil {
		return nil, 0, mapRepositoryError(err)
	}

	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = mapToResponse(&users[i])
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(u), nil
}

func (s *service) Create(ctx context.Context, actorID string, req CreateUserRequest) (UserResponse, error) {
	role := req.Role
	if role == "" {
		role = RoleCustomer
	}

	u := &User{
		ID:          uuid.NewString(),
		Username:    req.Username,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		AuthMethods: AuthMethodPassword,
		Role:        role,
		EmployeeID:  req.EmployeeID,
		IsActive:    true,
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
	if actorID != "" {
		u.CreatedBy = &actorID
	}

	if req.Password != "" {
		hashed, err := password.Hash(req.Password)
		if err != nil {
			return UserResponse{}, err
		}
		u.PasswordHash = &hashed
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("user created", zap.String("user_id", u.ID), zap.String("created_by", actorID))
	return mapToResponse(u), nil
}

func (s *service) Update(ctx context.Context, actorID, id string, req UpdateUserRequest) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	if req.Username != "" {
		u.Username = req.Username
	}
	if req.Email != "" {
		u.Email = req.Email
	}
	if req.FirstName != "" {
		u.FirstName = req.FirstName
	}
	if req.LastName != "" {
		u.LastName = req.LastName
	}
	if req.Role != "" {
		u.Role = req.Role
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
	if actorID != "" {
		u.UpdatedBy = &actorID
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("user updated", zap.String("user_id", u.ID), zap.String("updated_by", actorID))
	return mapToResponse(u), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("user soft-deleted", zap.String("user_id", id))
	return nil
}

func (s *service) issueTokens(u *User) (AuthResponse, error) {
	claims := token.Claims{SubjectID: u.ID, Type: token.TypeUser}

	access, err := s.tokens.IssueAccessToken(claims)
	if err != nil {
		return AuthResponse{}, err
	}
	refresh, err := s.tokens.IssueRefreshToken(claims)
	if err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{
		User:         mapToResponse(u),
		Token:        access,
		RefreshToken: refresh,
	}, nil
}

// enqueueEvent writes an outbox row; delivery failures are logged, never
// surfaced, so a broker outage cannot fail the originating request.
func (s *service) enqueueEvent(ctx context.Context, aggregate, aggregateID, topic string, event any) {
	if s.outbox == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal event failed", zap.Error(err))
		return
	}

	var eventType string
	switch e := event.(type) {
	case events.UserRegisteredEvent:
		eventType = e.EventType
	case events.PasswordResetRequestedEvent:
		eventType = e.EventType
	}

	if err := s.outbox.Create(ctx, notification.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: aggregate,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         topic,
		Payload:       payload,
		Status:        notification.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("outbox enqueue failed",
			zap.String("aggregate_id", aggregateID),
			zap.Error(err),
		)
	}
}

func mapToResponse(u *User) UserResponse {
	resp := UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		AuthMethods: u.AuthMethods,
		IsVerified:  u.IsVerified,
		Role:        u.Role,
		IsActive:    u.IsActive,
		LastLogin:   u.LastLogin,
		CreatedAt:   u.CreatedAt,
	}
	if u.EmployeeID != nil {
		resp.EmployeeID = *u.EmployeeID
	}
	return resp
}

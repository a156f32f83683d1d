package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/bootstrap"
	employeeerrors "github.com/pittisunilkumar3/talent-spark-sub001/internal/employee/errors"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/contextutil"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/counter"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/listquery"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/password"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/token"
)

const (
	codeScope  = "employee"
	codeType   = "employee_code"
	codeFormat = "EMP-%06d"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (AuthResponse, error)
	Status(ctx context.Context, employeeID string) (StatusResponse, error)
	Logout(ctx context.Context, employeeID string) error

	List(ctx context.Context, q listquery.Params, filter ListEmployeesFilter) ([]EmployeeResponse, int64, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Create(ctx context.Context, actorID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, actorID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	counters counter.Repository
	tokens   token.Service
	audit    bootstrap.AuditLogger
	logger   *zap.Logger
}

func NewService(repo Repository, counters counter.Repository, tokens token.Service, audit bootstrap.AuditLogger, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, counters: counters, tokens: tokens, audit: audit, logger: l}
}

// Login accepts exactly one path: a stored bcrypt hash matching the
// presented password. Unknown emails and wrong passwords share the same
// generic 401.
func (s *service) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	e, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return AuthResponse{}, employeeerrors.ErrInvalidCredentials
	}

	if !e.IsActive {
		return AuthResponse{}, employeeerrors.ErrEmployeeInactive
	}
	if e.PasswordHash == "" {
		return AuthResponse{}, employeeerrors.ErrPasswordNotSet
	}
	if !password.Verify(req.Password, e.PasswordHash) {
		return AuthResponse{}, employeeerrors.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	e.LastLogin = &now
	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("persist last_login failed", zap.Error(err))
	}

	resp, err := s.issueTokens(e)
	if err != nil {
		return AuthResponse{}, err
	}

	s.logger.Info("employee login success", zap.String("request_id", rid), zap.String("employee_id", e.ID))
	return resp, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (AuthResponse, error) {
	claims, ok := s.tokens.Verify(refreshToken)
	if !ok || claims.Type != token.TypeEmployee {
		return AuthResponse{}, employeeerrors.ErrInvalidRefreshToken
	}

	e, err := s.repo.FindByID(ctx, claims.SubjectID)
	if err != nil {
		return AuthResponse{}, employeeerrors.ErrInvalidRefreshToken
	}
	if !e.IsActive {
		return AuthResponse{}, employeeerrors.ErrEmployeeInactive
	}

	return s.issueTokens(e)
}

// Status confirms the middleware-validated token still maps to a live
// principal and returns the current profile.
func (s *service) Status(ctx context.Context, employeeID string) (StatusResponse, error) {
	e, err := s.repo.FindByID(ctx, employeeID)
	if err != nil {
		return StatusResponse{}, mapRepositoryError(err)
	}
	return StatusResponse{Authenticated: true, Employee: mapToResponse(e)}, nil
}

// Logout is a no-op for stateless tokens; the call is audit-logged so
// session ends still leave a trail.
func (s *service) Logout(ctx context.Context, employeeID string) error {
	if s.audit != nil {
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  "EMPLOYEE_LOGOUT",
			ActorID: employeeID,
			Message: "Employee logged out",
		})
	}
	return nil
}

func (s *service) List(ctx context.Context, q listquery.Params, filter ListEmployeesFilter) ([]EmployeeResponse, int64, error) {
	employees, total, err := s.repo.List(ctx, q, filter)
	if err != nil {
		return nil, 0, mapRepositoryError(err)
	}

	resp := make([]EmployeeResponse, len(employees))
	for i := range employees {
		resp[i] = mapToResponse(&employees[i])
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(e), nil
}

func (s *service) Create(ctx context.Context, actorID string, req CreateEmployeeRequest) (EmployeeResponse, error) {
	hashed, err := password.Hash(req.Password)
	if err != nil {
		return EmployeeResponse{}, err
	}

	seq, err := s.counters.GetNextValue(ctx, codeScope, codeType)
	if err != nil {
		return EmployeeResponse{}, err
	}

	e := &Employee{
		ID:            uuid.NewString(),
		EmployeeCode:  fmt.Sprintf(codeFormat, seq),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		PasswordHash:  hashed,
		BranchID:      req.BranchID,
		DepartmentID:  req.DepartmentID,
		DesignationID: req.DesignationID,
		ReportingTo:   req.ReportingTo,
		IsSuperadmin:  req.IsSuperadmin,
		IsActive:      true,
	}
	if actorID != "" {
		e.CreatedBy = &actorID
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("employee created",
		zap.String("employee_id", e.ID),
		zap.String("employee_code", e.EmployeeCode),
		zap.String("created_by", actorID),
	)
	return mapToResponse(e), nil
}

func (s *service) Update(ctx context.Context, actorID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.FirstName != "" {
		e.FirstName = req.FirstName
	}
	if req.LastName != "" {
		e.LastName = req.LastName
	}
	if req.Email != "" {
		e.Email = req.Email
	}
	if req.Phone != "" {
		e.Phone = req.Phone
	}
	if req.Password != "" {
		hashed, err := password.Hash(req.Password)
		if err != nil {
			return EmployeeResponse{}, err
		}
		e.PasswordHash = hashed
	}
	if req.BranchID != nil {
		e.BranchID = req.BranchID
	}
	if req.DepartmentID != nil {
		e.DepartmentID = req.DepartmentID
	}
	if req.DesignationID != nil {
		e.DesignationID = req.DesignationID
	}
	if req.ReportingTo != nil {
		e.ReportingTo = req.ReportingTo
	}
	if req.IsSuperadmin != nil {
		e.IsSuperadmin = *req.IsSuperadmin
	}
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}
	if actorID != "" {
		e.UpdatedBy = &actorID
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("employee updated", zap.String("employee_id", e.ID), zap.String("updated_by", actorID))
	return mapToResponse(e), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("employee soft-deleted", zap.String("employee_id", id))
	return nil
}

func (s *service) issueTokens(e *Employee) (AuthResponse, error) {
	claims := token.Claims{SubjectID: e.ID, Type: token.TypeEmployee}

	access, err := s.tokens.IssueAccessToken(claims)
	if err != nil {
		return AuthResponse{}, err
	}
	refresh, err := s.tokens.IssueRefreshToken(claims)
	if err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{
		Employee:     mapToResponse(e),
		Token:        access,
		RefreshToken: refresh,
	}, nil
}

func mapToResponse(e *Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		EmployeeCode:  e.EmployeeCode,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Email:         e.Email,
		Phone:         e.Phone,
		BranchID:      e.BranchID,
		DepartmentID:  e.DepartmentID,
		DesignationID: e.DesignationID,
		ReportingTo:   e.ReportingTo,
		IsSuperadmin:  e.IsSuperadmin,
		IsActive:      e.IsActive,
		LastLogin:     e.LastLogin,
		CreatedAt:     e.CreatedAt,
	}
}

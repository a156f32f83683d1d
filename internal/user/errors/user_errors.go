package usererrors

import (
	"net/http"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/apperror"
)

var (
	// Deliberately generic so login failures never reveal whether the
	// account exists or which field was wrong.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrAccountLocked = apperror.New(
		apperror.CodeLocked,
		"Account temporarily locked due to too many failed login attempts",
		http.StatusForbidden,
	)

	ErrUserInactive = apperror.New(
		apperror.CodeForbidden,
		"User account is inactive",
		http.StatusForbidden,
	)

	ErrPasswordAuthDisabled = apperror.New(
		apperror.CodeInvalidInput,
		"Password authentication is not enabled for this account",
		http.StatusBadRequest,
	)

	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"User with the same email already exists",
		http.StatusConflict,
	)

	ErrUsernameAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"User with the same username already exists",
		http.StatusConflict,
	)

	ErrInvalidResetToken = apperror.New(
		apperror.CodeInvalidInput,
		"Password reset token is invalid or expired",
		http.StatusBadRequest,
	)

	ErrWrongPassword = apperror.New(
		apperror.CodeInvalidInput,
		"Current password is incorrect",
		http.StatusBadRequest,
	)

	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"Refresh token is invalid or expired",
		http.StatusUnauthorized,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)
)

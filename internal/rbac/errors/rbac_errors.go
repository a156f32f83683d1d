package rbacerrors

import (
	"net/http"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/apperror"
)

var (
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Role not found",
		http.StatusNotFound,
	)

	ErrRoleAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Role with the same name already exists",
		http.StatusConflict,
	)

	ErrSystemRoleImmutable = apperror.New(
		apperror.CodeForbidden,
		"System roles cannot be modified or deleted",
		http.StatusForbidden,
	)

	ErrCategoryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Permission category not found",
		http.StatusNotFound,
	)

	ErrRoleAssignmentExists = apperror.New(
		apperror.CodeConflict,
		"Employee already has this role for the branch",
		http.StatusConflict,
	)

	ErrRoleAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee role assignment not found",
		http.StatusNotFound,
	)
)

package joberrors

import (
	"net/http"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/apperror"
)

var (
	ErrJobNotFound = apperror.New(
		apperror.CodeNotFound,
		"Job not found",
		http.StatusNotFound,
	)

	ErrSlugAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Job with this slug already exists",
		http.StatusConflict,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid job status",
		http.StatusBadRequest,
	)

	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"Job status transition is not allowed",
		http.StatusBadRequest,
	)

	ErrJobNotPublished = apperror.New(
		apperror.CodeInvalidState,
		"Job is not accepting applications",
		http.StatusBadRequest,
	)
)

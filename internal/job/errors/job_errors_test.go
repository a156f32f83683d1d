package joberrors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/apperror"
)

func TestSentinelHTTPStatuses(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", ErrJobNotFound, http.StatusNotFound, apperror.CodeNotFound},
		{"slug conflict", ErrSlugAlreadyExists, http.StatusConflict, apperror.CodeConflict},
		{"unknown status", ErrInvalidStatus, http.StatusBadRequest, apperror.CodeInvalidInput},
		{"rejected transition", ErrInvalidTransition, http.StatusBadRequest, apperror.CodeInvalidState},
		{"apply on unpublished", ErrJobNotPublished, http.StatusBadRequest, apperror.CodeInvalidState},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			httpErr := apperror.ToHTTP(tc.err)
			assert.Equal(t, tc.status, httpErr.Status)
			assert.Equal(t, tc.code, httpErr.Code)
		})
	}
}

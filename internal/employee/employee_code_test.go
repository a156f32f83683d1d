package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	counterMock "github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/counter/mock"
)

func TestEmployeeCodeUsesCounterScope(t *testing.T) {
	ctrl := gomock.NewController(t)

	counters := counterMock.NewMockRepository(ctrl)
	counters.EXPECT().
		GetNextValue(gomock.Any(), "employee", "employee_code").
		Return(int64(42), nil)

	svc := NewService(newFakeEmployeeRepo(), counters, testTokens(), &recordingAudit{})

	created, err := svc.Create(context.Background(), "emp-admin", CreateEmployeeRequest{
		FirstName: "Nia",
		Email:     "nia@example.com",
		Password:  "long-enough-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "EMP-000042", created.EmployeeCode)
}

func TestEmployeeCodeCounterFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)

	counters := counterMock.NewMockRepository(ctrl)
	counters.EXPECT().
		GetNextValue(gomock.Any(), "employee", "employee_code").
		Return(int64(0), assert.AnError)

	svc := NewService(newFakeEmployeeRepo(), counters, testTokens(), &recordingAudit{})

	_, err := svc.Create(context.Background(), "emp-admin", CreateEmployeeRequest{
		FirstName: "Nia",
		Email:     "nia@example.com",
		Password:  "long-enough-pass",
	})
	assert.Error(t, err)
}

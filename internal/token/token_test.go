package token_test

import (
	"testing"
	"time"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/token"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	svc := token.NewService("test-secret", time.Minute, time.Hour)
	id := uuid.NewString()

	t.Run("access token", func(t *testing.T) {
		signed, err := svc.IssueAccessToken(token.Claims{SubjectID: id, Type: token.TypeEmployee})
		assert.NoError(t, err)

		claims, ok := svc.Verify(signed)
		assert.True(t, ok)
		assert.Equal(t, id, claims.SubjectID)
		assert.Equal(t, token.TypeEmployee, claims.Type)
	})

	t.Run("refresh token defaults type to user", func(t *testing.T) {
		signed, err := svc.IssueRefreshToken(token.Claims{SubjectID: id})
		assert.NoError(t, err)

		claims, ok := svc.Verify(signed)
		assert.True(t, ok)
		assert.Equal(t, token.TypeUser, claims.Type)
	})
}

func TestVerify_Expired(t *testing.T) {
	svc := token.NewService("test-secret", time.Minute, time.Hour)

	// NewService treats non-positive TTLs as "use the default", so an
	// already-expired token has to be signed by hand with the same secret.
	past := time.Now().Add(-time.Hour)
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.NewString(),
		"typ": token.TypeUser,
		"iat": past.Add(-time.Minute).Unix(),
		"exp": past.Unix(),
	})
	signed, err := expired.SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	claims, ok := svc.Verify(signed)
	assert.False(t, ok)
	assert.Nil(t, claims)
}

func TestNewService_DefaultsNonPositiveTTLs(t *testing.T) {
	svc := token.NewService("test-secret", -time.Minute, 0)

	signed, err := svc.IssueAccessToken(token.Claims{SubjectID: uuid.NewString()})
	assert.NoError(t, err)

	_, ok := svc.Verify(signed)
	assert.True(t, ok)
}

func TestVerify_Tampered(t *testing.T) {
	svc := token.NewService("test-secret", time.Minute, time.Hour)
	other := token.NewService("other-secret", time.Minute, time.Hour)

	signed, err := other.IssueAccessToken(token.Claims{SubjectID: uuid.NewString()})
	assert.NoError(t, err)

	_, ok := svc.Verify(signed)
	assert.False(t, ok)

	_, ok = svc.Verify("definitely.not.a-jwt")
	assert.False(t, ok)

	_, ok = svc.Verify("")
	assert.False(t, ok)
}

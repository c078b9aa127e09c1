//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"mindcare-booking/internal/domain/user"
	"mindcare-booking/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("unit-secret", time.Hour)
	id := uuid.New()

	token, err := svc.GenerateToken(id, user.RoleProfessional)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "professional", claims.Role)
	assert.Equal(t, id.String(), claims.Subject)
}

func TestService_Rejects(t *testing.T) {
	svc := jwt.NewService("unit-secret", time.Hour)
	id := uuid.New()

	t.Run("expired", func(t *testing.T) {
		token, err := jwt.NewService("unit-secret", -time.Minute).GenerateToken(id, user.RoleClient)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("other secret", func(t *testing.T) {
		token, err := jwt.NewService("other-secret", time.Hour).GenerateToken(id, user.RoleClient)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("alg none", func(t *testing.T) {
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, jwt.Claims{UserID: id, Role: "admin"}).
			SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("missing user id", func(t *testing.T) {
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{
			Role:             "client",
			RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour))},
		}).SignedString([]byte("unit-secret"))
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"mindcare-booking/internal/domain/user"
	"mindcare-booking/internal/pkg/config"
	"mindcare-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the identity service does.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.TokenTTL)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, -time.Minute)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// Actor bundles a fresh identity with a signed token.
type Actor struct {
	User  user.Actor
	Token string
}

func (h *JWTHelper) NewActor(t *testing.T, role user.Role) Actor {
	t.Helper()
	a := user.NewActor(uuid.New(), role)
	return Actor{User: a, Token: h.GenerateToken(t, a.UserID, role)}
}

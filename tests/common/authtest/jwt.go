//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"workshop-quotes/internal/domain/staff"
	"workshop-quotes/internal/pkg/config"
	"workshop-quotes/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

// Staff returns an actor of the given role inside tenantID.
func Staff(tenantID uuid.UUID, role staff.Role) staff.Actor {
	return staff.Actor{UserID: uuid.New(), TenantID: tenantID, Role: role}
}

func (h *JWTHelper) GenerateToken(t *testing.T, actor staff.Actor) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration)
	token, err := service.GenerateToken(actor)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, actor staff.Actor) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(actor)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/WeberBSG/ParTea/internal/app/models"
	"github.com/WeberBSG/ParTea/internal/pkg/config"
)

func newTestService() *ServiceImpl {
	cfg := &config.Config{
		JWT: config.JWTConfig{SecretKey: "test-secret"},
	}
	return NewService(cfg, zap.NewNop())
}

func TestLogin(t *testing.T) {
	svc := newTestService()

	user, token, err := svc.Login(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "Tea Enthusiast", user.Name)
	assert.Equal(t, "tea@party.com", user.Email)
	require.NotNil(t, user.Socials)
	assert.Equal(t, "partea_official", user.Socials.Instagram)

	claims, err := NewJWTService().ValidateToken(svc.JWTConfig(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Name, claims.Name)

	current, ok := svc.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, user, current)
}

func TestLogout(t *testing.T) {
	svc := newTestService()
	_, _, err := svc.Login(context.Background())
	require.NoError(t, err)

	svc.Logout(context.Background())

	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("edits the session user and title-cases the name", func(t *testing.T) {
		svc := newTestService()
		user, _, err := svc.Login(ctx)
		require.NoError(t, err)

		updated, err := svc.UpdateProfile(ctx, user.ID, UpdateProfileParams{
			Name:  "  party queen ",
			Photo: "https://picsum.photos/seed/new/100/100",
			Socials: &models.Socials{
				TikTok: "partyqueen",
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "Party Queen", updated.Name)
		assert.Equal(t, "https://picsum.photos/seed/new/100/100", updated.Photo)
		require.NotNil(t, updated.Socials)
		assert.Equal(t, "partyqueen", updated.Socials.TikTok)

		current, ok := svc.CurrentUser()
		require.True(t, ok)
		assert.Equal(t, updated, current)
	})

	t.Run("empty fields leave the profile untouched", func(t *testing.T) {
		svc := newTestService()
		user, _, err := svc.Login(ctx)
		require.NoError(t, err)

		updated, err := svc.UpdateProfile(ctx, user.ID, UpdateProfileParams{})
		require.NoError(t, err)
		assert.Equal(t, user, updated)
	})

	t.Run("no session", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.UpdateProfile(ctx, "u1", UpdateProfileParams{Name: "x"})
		assert.ErrorIs(t, err, models.ErrUnauthenticated)
	})

	t.Run("wrong user id", func(t *testing.T) {
		svc := newTestService()
		_, _, err := svc.Login(ctx)
		require.NoError(t, err)

		_, err = svc.UpdateProfile(ctx, "someone-else", UpdateProfileParams{Name: "x"})
		assert.ErrorIs(t, err, models.ErrUnauthenticated)
	})
}

func TestJWTService(t *testing.T) {
	jwtConfig := JWTConfig{SecretKey: "test-secret", TokenExpiration: time.Hour}
	svc := NewJWTService()

	t.Run("round trip", func(t *testing.T) {
		token, err := svc.GenerateToken(jwtConfig, "u1", "tea@party.com", "Tea Enthusiast")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(jwtConfig, token)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token, err := svc.GenerateToken(jwtConfig, "u1", "", "")
		require.NoError(t, err)

		_, err = svc.ValidateToken(JWTConfig{SecretKey: "other"}, token)
		assert.Error(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expired := JWTConfig{SecretKey: "test-secret", TokenExpiration: -time.Minute}
		token, err := svc.GenerateToken(expired, "u1", "", "")
		require.NoError(t, err)

		_, err = svc.ValidateToken(jwtConfig, token)
		assert.Error(t, err)
	})
}

package service

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/contactbook/internal/apperr"
	"github.com/mmynk/contactbook/internal/auth"
	"github.com/mmynk/contactbook/internal/storage/sqlite"
)

func newAuthService(t *testing.T) (*AuthService, *auth.JWTManager) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	jwtManager := auth.NewJWTManager("0123456789abcdef", "contactbook", "contactbook-ui", time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewAuthService(auth.NewPasswordAuthenticator(store), jwtManager, store, logger)
	return svc, jwtManager
}

func TestAuthService(t *testing.T) {
	svc, jwtManager := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureUser(ctx, "testuser", "testpass1"))
	// Second call is a no-op.
	require.NoError(t, svc.EnsureUser(ctx, "testuser", "different1"))

	t.Run("login issues a valid token", func(t *testing.T) {
		res, err := svc.Login(ctx, " testuser ", "testpass1")
		require.NoError(t, err)
		assert.True(t, res.ExpiresAt.After(time.Now()))

		claims, err := jwtManager.Validate(res.Token)
		require.NoError(t, err)
		assert.Equal(t, "testuser", claims.Username)

		id, err := claims.UserID()
		require.NoError(t, err)
		user, err := svc.CurrentUser(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "testuser", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "testuser", "different1")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Login(ctx, "", "testpass1")
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("unknown user behind token", func(t *testing.T) {
		_, err := svc.CurrentUser(ctx, 9999)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("weak operator password", func(t *testing.T) {
		err := svc.EnsureUser(ctx, "other", "weak")
		assert.True(t, apperr.IsValidation(err))
	})
}

package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/mmynk/contactbook/internal/apperr"
	"github.com/mmynk/contactbook/internal/auth"
	"github.com/mmynk/contactbook/internal/models"
)

// UserLookup resolves the user behind a validated token.
type UserLookup interface {
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

// AuthService implements operator login.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	users         UserLookup
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, users UserLookup, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		users:         users,
		logger:        logger,
	}
}

// Login authenticates a user and returns a signed bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	s.logger.Info("Login request", "username", username)

	if username == "" || password == "" {
		return nil, apperr.Validation("username and password are required")
	}

	user, err := s.authenticator.Authenticate(ctx, username, password)
	if err != nil {
		s.logger.Warn("Login failed", "username", username, "error", err)
		return nil, err
	}

	token, expiresAt, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, err
	}

	s.logger.Info("User logged in successfully", "user_id", user.ID, "username", user.Username)
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// CurrentUser returns the user identified by a validated token's subject.
func (s *AuthService) CurrentUser(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if apperr.IsNotFound(err) {
		// The account was removed after the token was issued.
		return nil, auth.ErrInvalidToken
	}
	return user, err
}

// EnsureUser registers the operator account unless it already exists.
func (s *AuthService) EnsureUser(ctx context.Context, username, password string) error {
	user, err := s.authenticator.Register(ctx, username, password)
	if errors.Is(err, auth.ErrUserExists) {
		s.logger.Debug("Operator account present", "username", username)
		return nil
	}
	if err != nil {
		return err
	}
	s.logger.Info("Operator account created", "user_id", user.ID, "username", user.Username)
	return nil
}

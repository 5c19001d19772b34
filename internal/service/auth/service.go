package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/skoglund/gatehouse/internal/domain"
	"github.com/skoglund/gatehouse/internal/repository"
	"github.com/skoglund/gatehouse/pkg/crypto"
	"github.com/skoglund/gatehouse/pkg/token"
)

var (
	// ErrInvalidInput indicates a missing username or password.
	ErrInvalidInput = errors.New("auth: username and password are required")
	// ErrUsernameTaken indicates a registration conflict.
	ErrUsernameTaken = errors.New("auth: username already taken")
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. The two cases are deliberately indistinguishable to the
	// caller to resist username enumeration.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrUserNotFound indicates the subject of a valid token no longer
	// exists in the store.
	ErrUserNotFound = errors.New("auth: user not found")
	// ErrStoreUnavailable wraps infrastructure failures from the user store
	// or the hasher. The underlying cause is logged, never echoed.
	ErrStoreUnavailable = errors.New("auth: store unavailable")
)

// Service handles registration, login, and profile lookup.
type Service struct {
	users    repository.UserRepository
	tokens   *token.Service
	logger   *slog.Logger
	tokenTTL time.Duration
}

// New constructs a Service.
func New(users repository.UserRepository, tokens *token.Service, logger *slog.Logger, tokenTTL time.Duration) Service {
	return Service{users: users, tokens: tokens, logger: logger, tokenTTL: tokenTTL}
}

// Register creates a new user with a hashed credential. The plaintext is
// never persisted and never logged.
func (s Service) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}
	hash, err := crypto.HashPassword(password)
	if err != nil {
		s.logger.Error("password hashing failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		s.logger.Error("user insert failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login verifies credentials and returns a signed access token. A failed
// lookup and a failed password comparison produce the same error.
func (s Service) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrInvalidInput
	}
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		s.logger.Error("user lookup failed", "error", err)
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	match, err := crypto.ComparePassword(user.PasswordHash, password)
	if err != nil {
		s.logger.Error("stored hash unusable", "user_id", user.ID, "error", err)
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if !match {
		return "", ErrInvalidCredentials
	}
	tok, err := s.tokens.Issue(user.ID, s.tokenTTL)
	if err != nil {
		s.logger.Error("token issuance failed", "user_id", user.ID, "error", err)
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	s.logger.Info("user logged in", "user_id", user.ID)
	return tok, nil
}

// Profile returns the public projection of an already-authenticated user.
// The token may outlive the account, so a missing row is a normal outcome.
func (s Service) Profile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("profile lookup failed", "user_id", userID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return user, nil
}

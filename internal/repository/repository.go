package repository

import (
	"context"

	"github.com/skoglund/gatehouse/internal/domain"
)

// UserRepository persists users. CreateUser is atomic: the uniqueness check
// and the insert happen in one statement, so concurrent registrations of the
// same username cannot race past each other.
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
}

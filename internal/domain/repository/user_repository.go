package repository

import (
	"context"
	"errors"

	"usuarios-api/internal/domain/entity"
)

var (
	// ErrNotFound reports that no user matched the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicate reports a unique-constraint violation on email or username.
	ErrDuplicate = errors.New("duplicate email or username")
)

// UserRepository defines the interface for user-related database operations.
// Each method is a single storage operation; uniqueness of email and username
// is enforced by the storage layer itself.
type UserRepository interface {
	Count(ctx context.Context) (int64, error)
	FindPage(ctx context.Context, skip, limit int) ([]*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error)
	Create(ctx context.Context, u *entity.User) error
	Update(ctx context.Context, u *entity.User) error
	DeleteByEmail(ctx context.Context, email string) (*entity.User, error)
}

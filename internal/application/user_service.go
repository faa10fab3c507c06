package application

import (
	"context"
	"errors"
	"math"

	"github.com/sirupsen/logrus"

	"usuarios-api/internal/domain/entity"
	repo "usuarios-api/internal/domain/repository"
	"usuarios-api/pkg/helpers"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user or email already exists")
)

type Service struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewService(r repo.UserRepository, logger *logrus.Logger) *Service {
	return &Service{Repo: r, Logger: logger}
}

type CreateUserInput struct {
	Name     string
	Lastname string
	Username string
	Email    string
	Password string
}

// UpdateUserInput carries a partial update; empty fields keep stored values.
type UpdateUserInput struct {
	Name     string
	Lastname string
	Username string
	Password string
}

// List returns one page of users plus the total page count.
// An empty page is a normal result, not an error.
func (s *Service) List(ctx context.Context, page, limit int) ([]*entity.User, int, error) {
	skip := (page - 1) * limit

	total, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	users, err := s.Repo.FindPage(ctx, skip, limit)
	if err != nil {
		return nil, 0, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return users, totalPages, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// Create registers a new user. The collision lookup is only a fast path;
// the unique constraints on email and username remain the enforced
// guarantee when two creates race, surfacing here as repo.ErrDuplicate.
func (s *Service) Create(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	_, err := s.Repo.GetByEmailOrUsername(ctx, in.Email, in.Username)
	switch {
	case err == nil:
		return nil, ErrUserExists
	case !errors.Is(err, repo.ErrNotFound):
		return nil, err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Name:     in.Name,
		Lastname: in.Lastname,
		Username: in.Username,
		Email:    in.Email,
		Password: hash,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return u, nil
}

// Update applies a partial update to the user identified by email.
// A non-empty password is re-hashed with a fresh salt before storage.
func (s *Service) Update(ctx context.Context, email string, in UpdateUserInput) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if in.Password != "" {
		hash, err := helpers.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		u.Password = hash
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Lastname != "" {
		u.Lastname = in.Lastname
	}
	if in.Username != "" {
		u.Username = in.Username
	}

	if err := s.Repo.Update(ctx, u); err != nil {
		switch {
		case errors.Is(err, repo.ErrDuplicate):
			return nil, ErrUserExists
		case errors.Is(err, repo.ErrNotFound):
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// Delete removes the user by email and returns the pre-deletion snapshot.
func (s *Service) Delete(ctx context.Context, email string) (*entity.User, error) {
	u, err := s.Repo.DeleteByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

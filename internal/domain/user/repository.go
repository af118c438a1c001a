package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// UpdateDetails writes name, phone and updated_at.
	UpdateDetails(ctx context.Context, u User) error
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
	// Ensure returns the user's profile, creating an empty one if absent.
	// It is safe to call concurrently for the same user.
	Ensure(ctx context.Context, userID uuid.UUID) (Profile, error)
	UpdateContact(ctx context.Context, userID uuid.UUID, location, linkedInURL *string) (Profile, error)
}

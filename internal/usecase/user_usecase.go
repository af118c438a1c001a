package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/domain/user"
	ucuser "github.com/swipeforjobs-ireland/swipeforjobs/internal/usecase/user"
)

type UserUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (ucuser.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ucuser.UpdateProfileInput) (ucuser.Profile, error)
}

type User struct {
	svc *ucuser.Service
}

var _ UserUsecase = (*User)(nil)

func NewUserUsecase(users user.Repository, profiles user.ProfileRepository) *User {
	return &User{svc: ucuser.NewService(users, profiles)}
}

func (u *User) GetProfile(ctx context.Context, userID uuid.UUID) (ucuser.Profile, error) {
	p, err := u.svc.GetProfile(ctx, userID)
	return p, mapUserError(err)
}

func (u *User) UpdateProfile(ctx context.Context, userID uuid.UUID, in ucuser.UpdateProfileInput) (ucuser.Profile, error) {
	p, err := u.svc.UpdateProfile(ctx, userID, in)
	return p, mapUserError(err)
}

func mapUserError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ucuser.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, ucuser.ErrInvalidInput):
		return invalid("linkedinUrl", "must be an http(s) URL")
	default:
		return internalError("profile", err)
	}
}

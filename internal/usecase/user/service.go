package user

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/domain/user"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("user not found")
	ErrInternal     = errors.New("internal error")
)

// Profile is the account plus its one-to-one profile row.
type Profile struct {
	User    user.User    `json:"user"`
	Profile user.Profile `json:"profile"`
}

// UpdateProfileInput fields left nil or blank are not touched.
type UpdateProfileInput struct {
	FirstName   *string
	LastName    *string
	Phone       *string
	Location    *string
	LinkedInURL *string
}

type Service struct {
	users    user.Repository
	profiles user.ProfileRepository
}

func NewService(users user.Repository, profiles user.ProfileRepository) *Service {
	return &Service{users: users, profiles: profiles}
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return Profile{}, mapRepoError(err)
	}
	p, err := s.profiles.Ensure(ctx, userID)
	if err != nil {
		return Profile{}, mapRepoError(err)
	}
	return Profile{User: sanitizeUser(usr), Profile: p}, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (Profile, error) {
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return Profile{}, mapRepoError(err)
	}

	linkedIn := nonBlank(in.LinkedInURL)
	if linkedIn != nil && !isValidURL(*linkedIn) {
		return Profile{}, ErrInvalidInput
	}

	changed := false
	if v := nonBlank(in.FirstName); v != nil {
		usr.FirstName = v
		changed = true
	}
	if v := nonBlank(in.LastName); v != nil {
		usr.LastName = v
		changed = true
	}
	if v := nonBlank(in.Phone); v != nil {
		usr.Phone = v
		changed = true
	}
	if changed {
		if err := s.users.UpdateDetails(ctx, usr); err != nil {
			return Profile{}, mapRepoError(err)
		}
	}

	p, err := s.profiles.UpdateContact(ctx, userID, nonBlank(in.Location), linkedIn)
	if err != nil {
		return Profile{}, mapRepoError(err)
	}

	updated, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return Profile{}, mapRepoError(err)
	}
	return Profile{User: sanitizeUser(updated), Profile: p}, nil
}

func nonBlank(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func mapRepoError(err error) error {
	if errors.Is(err, user.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %w", ErrInternal, err)
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}

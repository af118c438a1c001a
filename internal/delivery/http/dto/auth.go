package dto

import (
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/domain/user"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/usecase"
)

type SignupRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type AuthResponse struct {
	User         user.User `json:"user"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
}

func NewAuthResponse(u user.User, tokens usecase.TokenPair) AuthResponse {
	return AuthResponse{User: u, AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}
}

type UpdateProfileRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Phone       *string `json:"phone"`
	Location    *string `json:"location"`
	LinkedInURL *string `json:"linkedinUrl" validate:"omitempty,http_url"`
}

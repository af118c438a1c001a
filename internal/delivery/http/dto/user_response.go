package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	ucuser "github.com/swipeforjobs-ireland/swipeforjobs/internal/usecase/user"
)

type ProfileResponse struct {
	ID               uuid.UUID       `json:"id"`
	Email            string          `json:"email"`
	FirstName        *string         `json:"firstName"`
	LastName         *string         `json:"lastName"`
	Phone            *string         `json:"phone"`
	SubscriptionTier string          `json:"subscriptionTier"`
	Location         *string         `json:"location"`
	LinkedInURL      *string         `json:"linkedinUrl"`
	Preferences      json.RawMessage `json:"preferences"`
	CreatedAt        time.Time       `json:"createdAt"`
}

func NewProfileResponse(p ucuser.Profile) ProfileResponse {
	prefs := p.Profile.Preferences
	if len(prefs) == 0 {
		prefs = json.RawMessage(`{}`)
	}
	return ProfileResponse{
		ID:               p.User.ID,
		Email:            p.User.Email,
		FirstName:        p.User.FirstName,
		LastName:         p.User.LastName,
		Phone:            p.User.Phone,
		SubscriptionTier: p.User.SubscriptionTier,
		Location:         p.Profile.Location,
		LinkedInURL:      p.Profile.LinkedInURL,
		Preferences:      prefs,
		CreatedAt:        p.User.CreatedAt,
	}
}

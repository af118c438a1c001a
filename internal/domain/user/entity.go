package user

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TierFree is the only subscription tier handed out; it is a label, nothing
// enforces it.
const TierFree = "FREE"

type User struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	FirstName        *string   `json:"firstName,omitempty"`
	LastName         *string   `json:"lastName,omitempty"`
	Phone            *string   `json:"phone,omitempty"`
	SubscriptionTier string    `json:"subscriptionTier"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Profile is one-to-one with User. It is created at signup, or lazily on the
// user's first application if it is still missing.
type Profile struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"userId"`
	Location    *string         `json:"location,omitempty"`
	LinkedInURL *string         `json:"linkedinUrl,omitempty"`
	Preferences json.RawMessage `json:"preferences,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

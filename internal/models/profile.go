package models

import (
	"time"
)

// Profile is an anonymous member profile. There is no account or credential
// behind it; the pseudonym is the whole identity.
type Profile struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"` // always non-empty, falls back to a generated pseudonym
	JobTitle       string    `json:"job_title,omitempty"`
	Industry       string    `json:"industry,omitempty"`
	Experience     string    `json:"experience,omitempty"`
	Certifications []string  `json:"certifications"`
	AvatarGradient string    `json:"avatar_gradient"`
	IsAnonymous    bool      `json:"is_anonymous"`
	Reputation     int       `json:"reputation"`
	CreatedAt      time.Time `json:"created_at"`
}

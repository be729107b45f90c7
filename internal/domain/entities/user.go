package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// User represents an end user keyed by the identity provider's user id.
// The id is opaque to this service; it is whatever the provider returns
// from assertion verification.
type User struct {
	ID        string      `json:"id"`
	Email     null.String `json:"email,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// CreateSessionInput represents input for exchanging an identity assertion
// for a session
type CreateSessionInput struct {
	IdentityAssertion string `json:"identityAssertion" binding:"required"`
}

// IdentityInfo is the result of verifying an identity assertion against
// the provider
type IdentityInfo struct {
	ID    string
	Email string
}

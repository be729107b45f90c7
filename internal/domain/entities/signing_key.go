package entities

import "time"

// SigningKey is the custodial key pair bound to one user. The private scalar
// is stored sealed (AES-GCM) and never leaves the key vault; it is
// deliberately excluded from JSON.
type SigningKey struct {
	UserID        string    `json:"userId"`
	PublicKey     string    `json:"publicKey"`
	SealedPrivate string    `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
}

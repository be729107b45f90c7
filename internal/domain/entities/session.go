package entities

import "time"

// Session represents an authenticated session. Sessions are created once per
// successful assertion exchange and never mutated. Only the auth usecase may
// observe the raw assertion; every other component receives the resolved
// user id.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Assertion string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

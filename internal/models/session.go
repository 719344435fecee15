package models

import "time"

// Session is the persisted record of an authenticated account. A session
// lives until explicit logout; there is no expiry.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

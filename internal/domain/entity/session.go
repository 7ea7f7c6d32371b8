package entity

import "time"

// Identity is an authentication principal owned by the identity provider
type Identity struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

// Session is an authenticated login
type Session struct {
	ID          string
	UserID      string
	Email       string
	AccessToken string
	ExpiresAt   time.Time
}

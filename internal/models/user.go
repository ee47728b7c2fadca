package models

import "time"

// User represents a registered account. IDs are assigned monotonically by the
// database; the first account ever created is the site administrator.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose this to the client
	Name         string    `json:"name"`
	ProfilePic   string    `json:"profilePic"`
	CreatedAt    time.Time `json:"createdAt"`
}

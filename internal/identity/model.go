package identity

import "time"

// User represents a registered account able to reserve parking slots.
type User struct {
	ID           string
	Email        string
	Phone        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Credentials carries a login attempt.
type Credentials struct {
	Email    string
	Password string
}

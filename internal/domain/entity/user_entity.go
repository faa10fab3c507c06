package entity

import (
	"time"
)

// User is the aggregate root for the users resource.
// Password always holds a bcrypt hash, never the plaintext secret.
// Username travels as the "user" field on the wire.
type User struct {
	ID        string
	Name      string
	Lastname  string
	Username  string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

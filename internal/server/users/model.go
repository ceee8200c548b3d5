package users

import "time"

// User is one registered account. Email never changes after creation and
// HashedPassword is the bcrypt digest, never plaintext. SessionID is nil
// while the user is logged out; at most one session is active at a time.
type User struct {
	ID             int64
	Email          string
	HashedPassword []byte
	SessionID      *string
	CreatedAt      time.Time
}

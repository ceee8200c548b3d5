// Package users holds the User model and its persistence contract, plus the
// PostgreSQL and in-memory implementations.
package users

import "context"

// Repository is the persistence contract for User records. Finders return
// common.ErrorNotFound when no row matches; a sole match is returned as-is.
// Multiple matches cannot occur: email is unique and session ids are unique
// among active sessions.
//
// The updatable surface is enumerated statically: after creation only the
// session id ever changes, so the contract exposes exactly a setter and a
// clearer instead of a generic field-map update.
type Repository interface {
	// Add inserts a new user with no active session and returns the row
	// with its assigned id. A duplicate email yields
	// common.ErrorAlreadyRegistered.
	Add(ctx context.Context, email string, hashedPassword []byte) (*User, error)

	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	FindBySessionID(ctx context.Context, sessionID string) (*User, error)

	// UpdateSessionID overwrites the user's session id, invalidating any
	// previous session. Returns common.ErrorNotFound when the user does
	// not exist.
	UpdateSessionID(ctx context.Context, id int64, sessionID string) error

	// ClearSessionID removes the user's active session, if any. Returns
	// common.ErrorNotFound when the user does not exist.
	ClearSessionID(ctx context.Context, id int64) error
}

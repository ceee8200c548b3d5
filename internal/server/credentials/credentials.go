// Package credentials provides password hashing/verification and opaque
// session token generation.
package credentials

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Manager hashes and verifies passwords with bcrypt and mints session
// tokens. bcrypt embeds a fresh random salt into every digest, so hashing
// the same password twice never yields the same output, and its comparison
// does not leak timing on the digest bytes.
type Manager struct {
	cost int
}

// NewManager constructs a Manager with the given bcrypt cost. Costs outside
// bcrypt's supported range fall back to the default cost.
func NewManager(cost int) *Manager {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Manager{cost: cost}
}

// Hash returns the salted bcrypt digest of password.
func (m *Manager) Hash(password string) ([]byte, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), m.cost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}
	return hashed, nil
}

// Verify reports whether password matches the digest produced by Hash.
func (m *Manager) Verify(password string, hashed []byte) bool {
	return bcrypt.CompareHashAndPassword(hashed, []byte(password)) == nil
}

// NewSessionToken returns a fresh opaque session token. The token is a
// random UUID backed by crypto/rand and carries no user information.
func (m *Manager) NewSessionToken() string {
	return uuid.NewString()
}

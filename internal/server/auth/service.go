// Package auth implements the authentication service: registration,
// credential checks, and the session lifecycle. All state lives in the
// injected users.Repository; the service itself is safe for concurrent use.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/server/credentials"
	"github.com/dmitrijs2005/authkeeper/internal/server/users"
)

type Service struct {
	repo  users.Repository
	creds *credentials.Manager
}

func NewService(repo users.Repository, creds *credentials.Manager) *Service {
	return &Service{repo: repo, creds: creds}
}

// Register creates a new account. When the email is already taken it
// returns an error wrapping common.ErrorAlreadyRegistered and performs no
// write; otherwise the password is hashed and exactly one insert happens.
func (s *Service) Register(ctx context.Context, email, password string) (*users.User, error) {

	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return nil, fmt.Errorf("user %s already exists: %w", email, common.ErrorAlreadyRegistered)
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	hashed, err := s.creds.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.repo.Add(ctx, email, hashed)
	if err != nil {
		// a concurrent registration can win the race between the lookup
		// and the insert; the unique index reports it the same way
		if errors.Is(err, common.ErrorAlreadyRegistered) {
			return nil, fmt.Errorf("user %s already exists: %w", email, common.ErrorAlreadyRegistered)
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// ValidLogin reports whether email and password match a registered account.
// Unknown emails and wrong passwords are both plain false, never an error;
// only repository failures surface as errors.
func (s *Service) ValidLogin(ctx context.Context, email, password string) (bool, error) {

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("error searching user: %w", err)
	}

	return s.creds.Verify(password, user.HashedPassword), nil
}

// CreateSession issues a new session token for the user with the given
// email and persists it, silently invalidating any previous session.
// An unknown email yields ("", nil), not an error.
func (s *Service) CreateSession(ctx context.Context, email string) (string, error) {

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("error searching user: %w", err)
	}

	token := s.creds.NewSessionToken()
	if err := s.repo.UpdateSessionID(ctx, user.ID, token); err != nil {
		return "", fmt.Errorf("error storing session: %w", err)
	}

	return token, nil
}

// UserBySessionID resolves a session token back to its user. An empty or
// unknown token yields (nil, nil).
func (s *Service) UserBySessionID(ctx context.Context, sessionID string) (*users.User, error) {

	if sessionID == "" {
		return nil, nil
	}

	user, err := s.repo.FindBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error searching session: %w", err)
	}

	return user, nil
}

// DestroySession clears the user's active session. Unknown users and
// already-destroyed sessions are no-ops.
func (s *Service) DestroySession(ctx context.Context, userID int64) error {

	if err := s.repo.ClearSessionID(ctx, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return fmt.Errorf("error clearing session: %w", err)
	}

	return nil
}

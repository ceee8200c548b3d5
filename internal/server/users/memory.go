package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
)

// MemoryRepository is a mutex-guarded in-memory Repository. It backs tests
// and local development; it honors the same contract as the Postgres
// implementation, including unique emails.
type MemoryRepository struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1, byID: make(map[int64]*User)}
}

func (r *MemoryRepository) Add(ctx context.Context, email string, hashedPassword []byte) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byID {
		if u.Email == email {
			return nil, common.ErrorAlreadyRegistered
		}
	}

	user := &User{
		ID:             r.nextID,
		Email:          email,
		HashedPassword: append([]byte(nil), hashedPassword...),
		CreatedAt:      time.Now(),
	}
	r.byID[user.ID] = user
	r.nextID++

	return copyUser(user), nil
}

func (r *MemoryRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byID {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) FindByID(ctx context.Context, id int64) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return copyUser(u), nil
}

func (r *MemoryRepository) FindBySessionID(ctx context.Context, sessionID string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byID {
		if u.SessionID != nil && *u.SessionID == sessionID {
			return copyUser(u), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) UpdateSessionID(ctx context.Context, id int64, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	s := sessionID
	u.SessionID = &s
	return nil
}

func (r *MemoryRepository) ClearSessionID(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.SessionID = nil
	return nil
}

// copyUser returns a detached copy so callers cannot mutate stored state.
func copyUser(u *User) *User {
	c := *u
	c.HashedPassword = append([]byte(nil), u.HashedPassword...)
	if u.SessionID != nil {
		s := *u.SessionID
		c.SessionID = &s
	}
	return &c
}

package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/filehub/internal/common"
)

type entry struct {
	userID    string
	expiresAt time.Time
}

// InMemoryRepository is a map-backed Repository with lazy expiry, used in
// tests and for running the server without Postgres.
type InMemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]entry
	// now is swappable so expiry can be tested without sleeping.
	now func() time.Time
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (r *InMemoryRepository) Put(ctx context.Context, token string, userID string, validity time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[token] = entry{userID: userID, expiresAt: r.now().Add(validity)}
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, token string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[token]
	if !ok || !e.expiresAt.After(r.now()) {
		return "", common.ErrorNotFound
	}
	return e.userID, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, token)
	return nil
}

// SetClock overrides the time source. Test helper.
func (r *InMemoryRepository) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

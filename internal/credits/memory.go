package credits

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps balances in process memory. Used for local runs and
// tests when no database is configured.
type MemoryStore struct {
	mu       sync.Mutex
	balances map[uuid.UUID]int
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		balances: make(map[uuid.UUID]int),
	}
}

func (s *MemoryStore) Balance(_ context.Context, userID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	balance, ok := s.balances[userID]
	if !ok {
		balance = MaxCredits
		s.balances[userID] = balance
	}
	return balance, nil
}

func (s *MemoryStore) Spend(_ context.Context, userID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	balance, ok := s.balances[userID]
	if !ok || balance <= 0 {
		return 0, ErrNoCredits
	}

	balance--
	s.balances[userID] = balance
	return balance, nil
}

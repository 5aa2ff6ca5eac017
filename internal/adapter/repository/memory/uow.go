package memory

import (
	"context"
	"log"
	"sync"

	"ruralbank/internal/domain/snapshot"
	"ruralbank/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*Store)(nil)

// Store owns the authoritative in-memory state behind a single mutex: the
// workload is one user action at a time, so one global lock is the exclusion
// boundary for every engine operation, transfers included.
type Store struct {
	mu     sync.Mutex
	state  *state
	mirror snapshot.Store // optional; nil disables persistence
}

// NewStore builds the store from a loaded snapshot (nil starts empty).
// mirror, when non-nil, receives the full snapshot after every commit.
func NewStore(snap *snapshot.Snapshot, mirror snapshot.Store) *Store {
	return &Store{state: newState(snap), mirror: mirror}
}

// WithinTx runs fn against a staged deep copy of the state. Only when fn
// returns nil is the copy swapped in as the committed state, so a failing
// operation cannot leave a partial write behind.
func (s *Store) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.state.clone()
	if err := fn(reposFor(staged)); err != nil {
		return err
	}
	s.state = staged

	// The committed in-memory state is authoritative; the mirror is
	// best-effort and never rolls a commit back.
	if s.mirror != nil {
		if err := s.mirror.Save(ctx, s.state.snapshot()); err != nil {
			log.Printf("snapshot save failed: %v", err)
		}
	}
	return nil
}

// View runs fn against a throwaway copy of the committed state, so read
// sites can never mutate it even by mistake.
func (s *Store) View(ctx context.Context, fn func(r uow.Repos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(reposFor(s.state.clone()))
}

// Snapshot exports the committed state, mainly for tests and manual export.
func (s *Store) Snapshot() *snapshot.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.snapshot()
}

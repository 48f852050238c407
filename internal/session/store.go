package session

import (
	"sync"
	"time"
)

type pendingSetup struct {
	frequency string
	expiresAt time.Time
}

// Store keeps per-user challenge-setup state between the frequency button tap
// and the free-text message that follows it. Entries expire after ttl so an
// abandoned setup doesn't capture an unrelated message days later.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[int64]pendingSetup
	done    chan struct{}
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	s := &Store{
		ttl:     ttl,
		entries: make(map[int64]pendingSetup),
		done:    make(chan struct{}),
	}
	go s.janitor()
	return s
}

// Begin records the frequency the user just picked, replacing any earlier
// unfinished pick.
func (s *Store) Begin(userID int64, frequency string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[userID] = pendingSetup{
		frequency: frequency,
		expiresAt: time.Now().Add(s.ttl),
	}
}

// Frequency returns the user's pending frequency if a setup is in flight and
// has not expired.
func (s *Store) Frequency(userID int64) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[userID]
	if !ok {
		return "", false
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, userID)
		return "", false
	}
	return entry.frequency, true
}

// Clear forgets the user's pending setup. Clearing a user with no pending
// setup is a no-op.
func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, userID)
}

// Close stops the expiry janitor. The store must not be used after Close.
func (s *Store) Close() {
	close(s.done)
}

func (s *Store) janitor() {
	ticker := time.NewTicker(s.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.done:
			return
		}
	}
}

func (s *Store) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for userID, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, userID)
		}
	}
}

// Package memory provides an in-process implementation of the storage.Store interface.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/wesplit/internal/screen"
	"github.com/mmynk/wesplit/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

type entry struct {
	mu    sync.Mutex // serialises access to state
	state *screen.State

	lastUsed time.Time // guarded by Store.mu
}

// Store keeps screens in memory and forgets them after ttl without use.
type Store struct {
	mu      sync.Mutex
	screens map[string]*entry
	ttl     time.Duration
	now     func() time.Time

	// OnClose is called with the number of screens removed by a close or sweep.
	OnClose func(n int)
}

// New creates a Store whose screens expire after ttl of inactivity.
// A zero ttl disables expiry.
func New(ttl time.Duration) *Store {
	return &Store{
		screens: make(map[string]*entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// WithClock replaces the time source used for expiry.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	return s
}

// OpenScreen creates a screen with default inputs.
func (s *Store) OpenScreen(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id := uuid.New().String()

	s.mu.Lock()
	s.screens[id] = &entry{state: screen.New(), lastUsed: s.now()}
	s.mu.Unlock()

	return id, nil
}

// WithScreen runs fn while holding the screen's lock, then refreshes its lifetime.
func (s *Store) WithScreen(ctx context.Context, screenID string, fn func(st *screen.State) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	e, ok := s.screens[screenID]
	if ok && s.expired(e) {
		delete(s.screens, screenID)
		ok = false
		s.notifyClosed(1)
	}
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", storage.ErrScreenNotFound, screenID)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// The screen may have been closed while we waited for its lock.
	s.mu.Lock()
	current := s.screens[screenID]
	s.mu.Unlock()
	if current != e {
		return fmt.Errorf("%w: %s", storage.ErrScreenNotFound, screenID)
	}

	err := fn(e.state)

	s.mu.Lock()
	e.lastUsed = s.now()
	s.mu.Unlock()
	return err
}

// CloseScreen drops the screen.
func (s *Store) CloseScreen(ctx context.Context, screenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.screens[screenID]; !ok {
		return fmt.Errorf("%w: %s", storage.ErrScreenNotFound, screenID)
	}
	delete(s.screens, screenID)
	s.notifyClosed(1)
	return nil
}

// Count reports how many screens are open, expired ones included until swept.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.screens)
}

// Sweep removes expired screens and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.screens {
		if s.expired(e) {
			delete(s.screens, id)
			removed++
		}
	}
	if removed > 0 {
		s.notifyClosed(removed)
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *Store) RunSweeper(ctx context.Context, interval time.Duration) {
	if s.ttl <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				slog.Info("Expired idle screens", "removed", n, "open", s.Count())
			}
		}
	}
}

// Close drops every screen.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.screens)
	s.screens = make(map[string]*entry)
	if n > 0 {
		s.notifyClosed(n)
	}
	return nil
}

// expired must be called with s.mu held.
func (s *Store) expired(e *entry) bool {
	return s.ttl > 0 && s.now().Sub(e.lastUsed) > s.ttl
}

func (s *Store) notifyClosed(n int) {
	if s.OnClose != nil {
		s.OnClose(n)
	}
}

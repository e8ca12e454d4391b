// Package storage provides abstractions for holding live screens.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/wesplit/internal/screen"
)

// ErrScreenNotFound is returned for unknown, closed or expired screens.
var ErrScreenNotFound = errors.New("screen not found")

// Store defines the interface for screen lifetime operations.
// Screens are never persisted; a Store only keeps them alive between calls.
type Store interface {
	// OpenScreen creates a screen with default inputs and returns its ID.
	OpenScreen(ctx context.Context) (string, error)

	// WithScreen runs fn with exclusive access to the screen.
	// Returns ErrScreenNotFound if the screen does not exist.
	WithScreen(ctx context.Context, screenID string, fn func(s *screen.State) error) error

	// CloseScreen drops the screen. Closing an unknown screen returns ErrScreenNotFound.
	CloseScreen(ctx context.Context, screenID string) error

	// Count reports how many screens are open.
	Count() int

	// Close releases any resources held by the store.
	Close() error
}

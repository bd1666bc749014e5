package storage

import "github.com/ksolberg/habitkit/internal/models"

// Provider persists the full application state as a single document
// under the configured path. Implementations must round-trip: a saved
// then reloaded state yields identical streak and unlock results.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// State document
	State() (models.State, error)
	SaveState(models.State) error

	// Reset clears the document entirely and reseeds the defaults.
	Reset() error

	// Utils
	GetConfigPath() string
}

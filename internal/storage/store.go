// Package storage persists the whole application state as one serialized
// record under a single well-known key. Two backends exist: a JSON file
// and a redis key. Both fall back to an empty default state when the
// record is missing, so callers never see a partial or nil state.
package storage

import "github.com/kirim-labs/invoice-service/internal/models"

// Store reads and writes the application state blob.
type Store interface {
	// Load returns the current state. A missing record yields an empty
	// default state, not an error.
	Load() (*models.AppState, error)
	// Save replaces the stored state with the given one.
	Save(state *models.AppState) error
}

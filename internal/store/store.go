// Package store defines the storage driver seam for the keg registry.
package store

import (
	"errors"

	"github.com/zulandar/taproom/internal/models"
)

// ErrNotFound is returned by drivers when no keg exists for an id.
// The tracker maps it to its own sentinel before it reaches users.
var ErrNotFound = errors.New("store: keg not found")

// Store holds keg records for the lifetime of the process. Drivers are
// timestamp-passive: LastUpdated is stamped by the caller, never here.
type Store interface {
	// Insert assigns the next id to the keg and stores it. Ids start at 1
	// and increase by exactly 1 per insert.
	Insert(keg models.Keg) (models.Keg, error)

	// Get returns the keg with the given id, or ErrNotFound.
	Get(id uint) (models.Keg, error)

	// SetVolume overwrites CurrentVolume and LastUpdated for the given id,
	// or returns ErrNotFound. Bounds checks belong to the tracker.
	SetVolume(id uint, volume float64, updatedAt int64) error

	// List returns all kegs ordered by ascending id.
	List() ([]models.Keg, error)

	// Close releases driver resources.
	Close() error
}

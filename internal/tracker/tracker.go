// Package tracker provides keg lifecycle operations over a storage driver.
package tracker

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/zulandar/taproom/internal/models"
	"github.com/zulandar/taproom/internal/store"
)

// Failure taxonomy. NotFound and OverCapacity are the two conditions the
// menu reports by kind; the invalid-input sentinels guard the registry
// invariant 0 <= CurrentVolume <= Size at the API boundary.
var (
	ErrNotFound      = errors.New("keg not found")
	ErrOverCapacity  = errors.New("volume cannot exceed keg size")
	ErrInvalidSize   = errors.New("keg size must be a positive number")
	ErrInvalidVolume = errors.New("volume must be a non-negative number")
)

// Clock returns the current time as Unix seconds. Injected so tests can
// control LastUpdated stamps.
type Clock func() int64

// AddOpts holds parameters for registering a new keg. The id and initial
// volume are never caller-supplied: ids come from the store, and a new
// keg always starts full.
type AddOpts struct {
	BeerType string
	Size     float64
	Location string
}

// Tracker owns all keg records for the process lifetime.
type Tracker struct {
	store store.Store
	clock Clock
}

// New creates a Tracker over the given store. A nil clock defaults to
// the wall clock.
func New(s store.Store, clock Clock) *Tracker {
	if clock == nil {
		clock = func() int64 { return time.Now().Unix() }
	}
	return &Tracker{store: s, clock: clock}
}

// Add registers a new keg, full to capacity, and returns the stored
// record with its assigned id.
func (t *Tracker) Add(opts AddOpts) (*models.Keg, error) {
	if opts.Size <= 0 || math.IsInf(opts.Size, 0) || math.IsNaN(opts.Size) {
		return nil, ErrInvalidSize
	}

	keg := models.Keg{
		BeerType:      opts.BeerType,
		Size:          opts.Size,
		CurrentVolume: opts.Size,
		Location:      opts.Location,
		LastUpdated:   t.clock(),
	}
	stored, err := t.store.Insert(keg)
	if err != nil {
		return nil, fmt.Errorf("tracker: add: %w", err)
	}
	return &stored, nil
}

// UpdateVolume sets a keg's fill level and restamps LastUpdated. On any
// failure the record is left untouched.
func (t *Tracker) UpdateVolume(id uint, volume float64) error {
	if volume < 0 || math.IsInf(volume, 0) || math.IsNaN(volume) {
		return ErrInvalidVolume
	}

	keg, err := t.store.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("tracker: get %d: %w", id, err)
	}
	if volume > keg.Size {
		return ErrOverCapacity
	}

	if err := t.store.SetVolume(id, volume, t.clock()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("tracker: update %d: %w", id, err)
	}
	return nil
}

// List returns all kegs ordered by ascending id. An empty tracker yields
// a zero-length slice, not an error.
func (t *Tracker) List() ([]models.Keg, error) {
	kegs, err := t.store.List()
	if err != nil {
		return nil, fmt.Errorf("tracker: list: %w", err)
	}
	return kegs, nil
}

// Get returns a single keg by id.
func (t *Tracker) Get(id uint) (*models.Keg, error) {
	keg, err := t.store.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("tracker: get %d: %w", id, err)
	}
	return &keg, nil
}

// Close releases the underlying store.
func (t *Tracker) Close() error {
	return t.store.Close()
}

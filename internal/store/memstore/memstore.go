// Package memstore is the default in-memory storage driver: a map keyed
// by id plus a monotonic id counter.
package memstore

import (
	"sort"
	"sync"

	"github.com/zulandar/taproom/internal/models"
	"github.com/zulandar/taproom/internal/store"
)

// Store keeps all kegs in a map. The mutex makes the driver safe for
// callers beyond the single interactive loop, e.g. parallel tests.
type Store struct {
	mu     sync.Mutex
	kegs   map[uint]models.Keg
	nextID uint
}

// New returns an empty store with the id counter at 1.
func New() *Store {
	return &Store{
		kegs:   make(map[uint]models.Keg),
		nextID: 1,
	}
}

// Insert assigns the next id and stores the keg.
func (s *Store) Insert(keg models.Keg) (models.Keg, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keg.ID = s.nextID
	s.kegs[keg.ID] = keg
	s.nextID++
	return keg, nil
}

// Get returns the keg for id, or store.ErrNotFound.
func (s *Store) Get(id uint) (models.Keg, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keg, ok := s.kegs[id]
	if !ok {
		return models.Keg{}, store.ErrNotFound
	}
	return keg, nil
}

// SetVolume overwrites the fill level and timestamp of an existing keg.
func (s *Store) SetVolume(id uint, volume float64, updatedAt int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	keg, ok := s.kegs[id]
	if !ok {
		return store.ErrNotFound
	}
	keg.CurrentVolume = volume
	keg.LastUpdated = updatedAt
	s.kegs[id] = keg
	return nil
}

// List returns all kegs ordered by ascending id.
func (s *Store) List() ([]models.Keg, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kegs := make([]models.Keg, 0, len(s.kegs))
	for _, keg := range s.kegs {
		kegs = append(kegs, keg)
	}
	sort.Slice(kegs, func(i, j int) bool { return kegs[i].ID < kegs[j].ID })
	return kegs, nil
}

// Close is a no-op for the in-memory driver.
func (s *Store) Close() error {
	return nil
}

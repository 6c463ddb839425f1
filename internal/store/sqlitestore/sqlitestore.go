// Package sqlitestore is a storage driver backed by an in-memory SQLite
// database through GORM. Nothing is written to disk; the database lives
// and dies with the process, same as the map driver.
package sqlitestore

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zulandar/taproom/internal/models"
	"github.com/zulandar/taproom/internal/store"
)

// DSN is the in-memory SQLite connection string. cache=shared keeps the
// database alive across the pool's connections within this process.
const DSN = "file::memory:?cache=shared"

// Store persists kegs in an in-memory SQLite database. The autoincrement
// primary key provides the 1,2,3,... id sequence.
type Store struct {
	db *gorm.DB
}

// Open connects to a fresh in-memory database and migrates the schema.
func Open() (*Store, error) {
	db, err := gorm.Open(sqlite.Open(DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	if err := db.AutoMigrate(&models.Keg{}); err != nil {
		return nil, fmt.Errorf("store: migrate: %w", err)
	}
	// A fresh session may see leftovers when a previous Store in the same
	// process used the shared cache. Start empty, like every other driver.
	if err := db.Exec("DELETE FROM kegs").Error; err != nil {
		return nil, fmt.Errorf("store: reset: %w", err)
	}
	if err := db.Exec("DELETE FROM sqlite_sequence WHERE name = 'kegs'").Error; err != nil {
		return nil, fmt.Errorf("store: reset sequence: %w", err)
	}
	return &Store{db: db}, nil
}

// Insert stores the keg, letting SQLite assign the next id.
func (s *Store) Insert(keg models.Keg) (models.Keg, error) {
	keg.ID = 0
	if err := s.db.Create(&keg).Error; err != nil {
		return models.Keg{}, fmt.Errorf("store: insert: %w", err)
	}
	return keg, nil
}

// Get returns the keg for id, or store.ErrNotFound.
func (s *Store) Get(id uint) (models.Keg, error) {
	var keg models.Keg
	if err := s.db.Where("id = ?", id).First(&keg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Keg{}, store.ErrNotFound
		}
		return models.Keg{}, fmt.Errorf("store: get %d: %w", id, err)
	}
	return keg, nil
}

// SetVolume overwrites the fill level and timestamp of an existing keg.
func (s *Store) SetVolume(id uint, volume float64, updatedAt int64) error {
	res := s.db.Model(&models.Keg{}).Where("id = ?", id).Updates(map[string]interface{}{
		"current_volume": volume,
		"last_updated":   updatedAt,
	})
	if res.Error != nil {
		return fmt.Errorf("store: set volume %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// List returns all kegs ordered by ascending id.
func (s *Store) List() ([]models.Keg, error) {
	var kegs []models.Keg
	if err := s.db.Order("id ASC").Find(&kegs).Error; err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	return kegs, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("store: close: %w", err)
	}
	return sqlDB.Close()
}

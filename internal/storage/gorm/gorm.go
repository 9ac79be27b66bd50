// internal/storage/gorm/gorm.go
package gorm

import (
	"errors"
	"fmt"
	"sync"

	"github.com/OCAP2/missionbuilder/internal/database"
	"github.com/OCAP2/missionbuilder/internal/mission"
	"github.com/OCAP2/missionbuilder/internal/model"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// ErrNotInitialized is returned when saving before Init.
var ErrNotInitialized = errors.New("storage backend not initialized")

// Opener returns a database handle. database.OpenSQLite and
// database.OpenPostgres both fit behind one.
type Opener func() (*gorm.DB, error)

// Backend stores scenario snapshots in a SQL database through gorm
type Backend struct {
	open Opener
	db   *gorm.DB
	log  zerolog.Logger

	mu sync.Mutex
}

// New creates a snapshot backend. The database is opened on Init.
func New(open Opener, log zerolog.Logger) *Backend {
	return &Backend{
		open: open,
		log:  log.With().Str("component", "storage.gorm").Logger(),
	}
}

// Init opens the database and migrates the snapshot tables
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	db, err := b.open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return err
	}
	b.db = db
	b.log.Debug().Msg("Snapshot tables migrated")
	return nil
}

// Close releases the database connection
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.db == nil {
		return nil
	}
	sqlDB, err := b.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	b.db = nil
	return sqlDB.Close()
}

// DB returns the underlying handle, or nil before Init.
func (b *Backend) DB() *gorm.DB {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.db
}

// SaveScenario writes one scenario row and one row per country in a single transaction
func (b *Backend) SaveScenario(s *mission.Scenario) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.db == nil {
		return ErrNotInitialized
	}

	countries := s.Countries()
	data, err := model.JSON(s.Dict())
	if err != nil {
		return err
	}

	snapshot := model.ScenarioSnapshot{
		Name:         s.Name,
		CountryCount: len(countries),
		Data:         data,
	}

	err = b.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&snapshot).Error; err != nil {
			return fmt.Errorf("failed to insert scenario snapshot: %w", err)
		}

		rows := make([]model.CountrySnapshot, 0, len(countries))
		for _, c := range countries {
			cd, err := model.JSON(c.Dict())
			if err != nil {
				return err
			}
			rows = append(rows, model.CountrySnapshot{
				ScenarioSnapshotID: snapshot.ID,
				CountryID:          c.ID(),
				Name:               c.Name,
				ShortName:          c.ShortName,
				GroupCount:         c.GroupCount(),
				Data:               cd,
			})
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to insert country snapshots: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	b.log.Info().
		Uint("snapshotId", snapshot.ID).
		Str("scenario", s.Name).
		Int("countries", len(countries)).
		Msg("Scenario snapshot saved")
	return nil
}

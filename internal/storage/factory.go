// internal/storage/factory.go
package storage

import (
	"fmt"

	"github.com/OCAP2/missionbuilder/internal/config"
	"github.com/OCAP2/missionbuilder/internal/database"
	gormstore "github.com/OCAP2/missionbuilder/internal/storage/gorm"
	"github.com/OCAP2/missionbuilder/internal/storage/memory"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// NewBackend creates a storage backend based on configuration
func NewBackend(cfg config.StorageConfig, log zerolog.Logger) (Backend, error) {
	switch cfg.Type {
	case "postgres":
		return gormstore.New(func() (*gorm.DB, error) {
			return database.OpenPostgres(cfg.Postgres)
		}, log), nil
	case "sqlite":
		return gormstore.New(func() (*gorm.DB, error) {
			return database.OpenSQLite(cfg.SQLite.Path)
		}, log), nil
	case "memory", "":
		return memory.New(cfg.Memory), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

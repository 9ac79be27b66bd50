// internal/storage/storage.go
package storage

import "github.com/OCAP2/missionbuilder/internal/mission"

// Backend is the interface all storage implementations must satisfy
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// SaveScenario persists the full export of s.
	SaveScenario(s *mission.Scenario) error
}

// Exporter is an optional interface for backends that write export files.
type Exporter interface {
	LastExportPath() string
}

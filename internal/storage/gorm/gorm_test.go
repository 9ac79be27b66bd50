// internal/storage/gorm/gorm_test.go
package gorm

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/OCAP2/missionbuilder/internal/country"
	"github.com/OCAP2/missionbuilder/internal/database"
	"github.com/OCAP2/missionbuilder/internal/mission"
	"github.com/OCAP2/missionbuilder/internal/model"
	"github.com/OCAP2/missionbuilder/pkg/core"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSQLiteBackend(t *testing.T) *Backend {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshots.db")
	b := New(func() (*gorm.DB, error) { return database.OpenSQLite(path) }, zerolog.Nop())
	require.NoError(t, b.Init())
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func testScenario() *mission.Scenario {
	s := mission.NewScenario("Caucasus Strike")

	usa := country.New(2, "USA", "US")
	usa.AddVehicleGroup(&core.VehicleGroup{GroupBase: core.GroupBase{ID: 1, Name: "Armor"}})
	usa.AddStaticGroup(&core.StaticGroup{GroupBase: core.GroupBase{ID: 2, Name: "Depot"}})
	s.AddCountry(usa)

	russia := country.New(0, "Russia", "RUS")
	russia.AddShipGroup(&core.ShipGroup{GroupBase: core.GroupBase{ID: 3, Name: "Fleet"}})
	s.AddCountry(russia)

	return s
}

func TestSaveBeforeInit(t *testing.T) {
	b := New(func() (*gorm.DB, error) { return nil, errors.New("unused") }, zerolog.Nop())
	assert.ErrorIs(t, b.SaveScenario(testScenario()), ErrNotInitialized)
	assert.Nil(t, b.DB())
	assert.NoError(t, b.Close())
}

func TestInitOpenError(t *testing.T) {
	b := New(func() (*gorm.DB, error) { return nil, errors.New("connection refused") }, zerolog.Nop())
	err := b.Init()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSaveScenario(t *testing.T) {
	b := newSQLiteBackend(t)
	require.NoError(t, b.SaveScenario(testScenario()))

	var snapshots []model.ScenarioSnapshot
	require.NoError(t, b.DB().Find(&snapshots).Error)
	require.Len(t, snapshots, 1)
	assert.Equal(t, "Caucasus Strike", snapshots[0].Name)
	assert.Equal(t, 2, snapshots[0].CountryCount)

	var export map[string]any
	require.NoError(t, json.Unmarshal(snapshots[0].Data, &export))
	assert.Equal(t, "Caucasus Strike", export["name"])
	assert.Len(t, export["country"], 2)

	var rows []model.CountrySnapshot
	require.NoError(t, b.DB().Order("id").Find(&rows).Error)
	require.Len(t, rows, 2)

	assert.Equal(t, snapshots[0].ID, rows[0].ScenarioSnapshotID)
	assert.Equal(t, 2, rows[0].CountryID)
	assert.Equal(t, "USA", rows[0].Name)
	assert.Equal(t, "US", rows[0].ShortName)
	assert.Equal(t, 2, rows[0].GroupCount)

	assert.Equal(t, 0, rows[1].CountryID)
	assert.Equal(t, "Russia", rows[1].Name)
	assert.Equal(t, 1, rows[1].GroupCount)

	var usa map[string]any
	require.NoError(t, json.Unmarshal(rows[0].Data, &usa))
	assert.Contains(t, usa, "vehicle")
	assert.Contains(t, usa, "static")
	assert.NotContains(t, usa, "ship")
}

func TestSaveScenarioTwice(t *testing.T) {
	b := newSQLiteBackend(t)
	s := testScenario()
	require.NoError(t, b.SaveScenario(s))
	require.NoError(t, b.SaveScenario(s))

	var count int64
	require.NoError(t, b.DB().Model(&model.ScenarioSnapshot{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
	require.NoError(t, b.DB().Model(&model.CountrySnapshot{}).Count(&count).Error)
	assert.Equal(t, int64(4), count)
}

func TestSaveEmptyScenario(t *testing.T) {
	b := newSQLiteBackend(t)
	require.NoError(t, b.SaveScenario(mission.NewScenario("empty")))

	var count int64
	require.NoError(t, b.DB().Model(&model.CountrySnapshot{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSaveLogsSnapshot(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "snapshots.db")
	b := New(func() (*gorm.DB, error) { return database.OpenSQLite(path) }, zerolog.New(&buf))
	require.NoError(t, b.Init())
	defer b.Close()

	require.NoError(t, b.SaveScenario(testScenario()))
	assert.Contains(t, buf.String(), "Scenario snapshot saved")
	assert.Contains(t, buf.String(), `"component":"storage.gorm"`)
}

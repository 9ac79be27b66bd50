package model

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

////////////////////////
// DATABASE STRUCTURES //
////////////////////////

// DatabaseModels is a list of all the structs exported here which represent tables in the database schema
var DatabaseModels = []interface{}{
	&ScenarioSnapshot{},
	&CountrySnapshot{},
}

// ScenarioSnapshot is one exported scenario, stored as the full country table.
type ScenarioSnapshot struct {
	gorm.Model
	Name         string            `json:"name" gorm:"size:200;index:idx_scenario_name"`
	CountryCount int               `json:"countryCount"`
	Data         datatypes.JSON    `json:"data"`
	Countries    []CountrySnapshot `json:"countries" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (*ScenarioSnapshot) TableName() string {
	return "scenario_snapshots"
}

// CountrySnapshot is the export of one country within a scenario snapshot.
type CountrySnapshot struct {
	gorm.Model
	ScenarioSnapshotID uint           `json:"scenarioId" gorm:"index:idx_country_scenario"`
	CountryID          int            `json:"countryId"`
	Name               string         `json:"name" gorm:"size:64"`
	ShortName          string         `json:"shortName" gorm:"size:16"`
	GroupCount         int            `json:"groupCount"`
	Data               datatypes.JSON `json:"data"`
}

func (*CountrySnapshot) TableName() string {
	return "country_snapshots"
}

// JSON marshals an exported table for storage in a JSON column.
func JSON(v any) (datatypes.JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export: %w", err)
	}
	return datatypes.JSON(b), nil
}

// Package builder turns a declarative scenario plan into countries and groups.
package builder

import (
	"fmt"

	"github.com/spf13/viper"
)

// Plan describes a scenario to build.
type Plan struct {
	Name      string        `json:"name" mapstructure:"name"`
	Countries []CountryPlan `json:"countries" mapstructure:"countries"`
}

// CountryPlan describes one side and the groups it fields.
type CountryPlan struct {
	ID        int         `json:"id" mapstructure:"id"`
	Name      string      `json:"name" mapstructure:"name"`
	ShortName string      `json:"shortName" mapstructure:"shortName"`
	Vehicles  []GroupPlan `json:"vehicles" mapstructure:"vehicles"`
	Ships     []GroupPlan `json:"ships" mapstructure:"ships"`
	Statics   []GroupPlan `json:"statics" mapstructure:"statics"`
	Flights   []GroupPlan `json:"flights" mapstructure:"flights"`
}

// GroupPlan describes one group. Fields that do not apply to a group's kind are ignored.
type GroupPlan struct {
	Name     string    `json:"name" mapstructure:"name"`
	UnitType string    `json:"unitType" mapstructure:"unitType"`
	Count    int       `json:"count" mapstructure:"count"`
	Position string    `json:"position" mapstructure:"position"`
	LatLong  []float64 `json:"latLong" mapstructure:"latLong"`
	Heading  float64   `json:"heading" mapstructure:"heading"`
	Task     string    `json:"task" mapstructure:"task"`
	Hidden   bool      `json:"hidden" mapstructure:"hidden"`

	// statics
	Dead bool `json:"dead" mapstructure:"dead"`

	// flights
	Kind        string   `json:"kind" mapstructure:"kind"`
	Helicopter  bool     `json:"helicopter" mapstructure:"helicopter"`
	Category    string   `json:"category" mapstructure:"category"`
	Callsigns   []string `json:"callsigns" mapstructure:"callsigns"`
	Frequency   float64  `json:"frequency" mapstructure:"frequency"`
	Route       string   `json:"route" mapstructure:"route"`
	OnboardNums []string `json:"onboardNums" mapstructure:"onboardNums"`
}

// LoadPlan reads a plan file. The format follows the file extension
// (JSON, YAML or TOML).
func LoadPlan(path string) (Plan, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Plan{}, fmt.Errorf("error reading plan file: %w", err)
	}

	var plan Plan
	if err := v.Unmarshal(&plan); err != nil {
		return Plan{}, fmt.Errorf("error decoding plan file: %w", err)
	}
	return plan, nil
}

// Package callsign holds the category → callsign-name tables flight groups draw from.
package callsign

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Well-known categories of the default catalogue.
const (
	CategoryAir    = "Air"
	CategoryAWACS  = "AWACS"
	CategoryTanker = "Tanker"
	CategoryJTAC   = "JTAC"
)

// Catalogue maps a category to its callsign names. Category keys are
// case-insensitive; order of names is significant, it defines the callsign index.
type Catalogue map[string][]string

// Default returns the western naming convention used when no catalogue file is configured.
func Default() Catalogue {
	return Catalogue{
		CategoryAir:    {"Enfield", "Springfield", "Uzi", "Colt", "Dodge", "Ford", "Chevy", "Pontiac"},
		CategoryAWACS:  {"Overlord", "Magic", "Wizard", "Focus", "Darkstar"},
		CategoryTanker: {"Texaco", "Arco", "Shell"},
		CategoryJTAC: {
			"Axeman", "Darknight", "Warrior", "Pointer", "Eyeball", "Moonbeam",
			"Whiplash", "Finger", "Pinpoint", "Ferret", "Shaba", "Playboy",
			"Hammer", "Jaguar", "Deathstar", "Anvil", "Firefly", "Mantis", "Badger",
		},
	}.normalize()
}

func (c Catalogue) normalize() Catalogue {
	out := make(Catalogue, len(c))
	for k, v := range c {
		out[strings.ToLower(k)] = v
	}
	return out
}

// Names returns the names of a category, or nil when the category is unknown.
// Keys match case-insensitively, also for catalogues built by hand.
func (c Catalogue) Names(category string) []string {
	if names, ok := c[category]; ok {
		return names
	}
	if names, ok := c[strings.ToLower(category)]; ok {
		return names
	}
	for k, names := range c {
		if strings.EqualFold(k, category) {
			return names
		}
	}
	return nil
}

// Load reads a catalogue from a JSON, YAML or TOML file whose top-level keys are
// categories and whose values are lists of names.
func Load(path string) (Catalogue, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading callsign catalogue: %w", err)
	}

	raw := make(map[string][]string)
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("error decoding callsign catalogue: %w", err)
	}
	return Catalogue(raw).normalize(), nil
}

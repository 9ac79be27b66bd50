package mission

import (
	"slices"
	"sync"

	"github.com/OCAP2/missionbuilder/internal/country"
	"github.com/OCAP2/missionbuilder/pkg/core"
)

// Scenario holds the countries of one mission and the mission-wide group and
// unit ID counters.
type Scenario struct {
	mu        sync.RWMutex
	Name      string
	countries []*country.Country
	groupID   int
	unitID    int
}

// NewScenario creates an empty scenario.
func NewScenario(name string) *Scenario {
	return &Scenario{Name: name}
}

// AddCountry adds c, replacing a country with an equal ID in place.
func (s *Scenario) AddCountry(c *country.Country) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := slices.IndexFunc(s.countries, c.Equal); i >= 0 {
		s.countries[i] = c
		return
	}
	s.countries = append(s.countries, c)
}

// Country returns the country with the given ID.
func (s *Scenario) Country(id int) (*country.Country, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.countries {
		if c.ID() == id {
			return c, true
		}
	}
	return nil, false
}

// CountryByName returns the first country with the given name.
func (s *Scenario) CountryByName(name string) (*country.Country, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.countries {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Countries returns the countries in the order they were added.
func (s *Scenario) Countries() []*country.Country {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.countries)
}

// FindGroup searches every country, in order, for a group with a matching name.
func (s *Scenario) FindGroup(name string, mode country.FindMode) (core.Group, *country.Country, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.countries {
		if g, ok := c.FindGroup(name, mode); ok {
			return g, c, true
		}
	}
	return nil, nil, false
}

// NextGroupID returns the next mission-wide group ID, starting at 1.
func (s *Scenario) NextGroupID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groupID++
	return s.groupID
}

// NextUnitID returns the next mission-wide unit ID, starting at 1.
func (s *Scenario) NextUnitID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unitID++
	return s.unitID
}

// Dict exports the scenario: its name and the country table keyed 1..n.
func (s *Scenario) Dict() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	countries := make(map[int]any, len(s.countries))
	for i, c := range s.countries {
		countries[i+1] = c.Dict()
	}
	return map[string]any{
		"name":    s.Name,
		"country": countries,
	}
}

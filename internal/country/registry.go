package country

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/OCAP2/missionbuilder/pkg/core"
)

var (
	// ErrNoUnits is returned when an aircraft group has no units to route on.
	ErrNoUnits = errors.New("aircraft group has no units")
	// ErrAircraftMismatch is returned when a group's declared variant disagrees
	// with the helicopter flag of its lead unit.
	ErrAircraftMismatch = errors.New("aircraft group variant does not match unit type")
	// ErrUnknownFindMode is returned by ParseFindMode for unrecognised names.
	ErrUnknownFindMode = errors.New("unknown find mode")
)

// FindMode selects how group names are compared.
type FindMode int

const (
	// FindExact matches names that are equal to the query.
	FindExact FindMode = iota
	// FindMatch matches names that contain the query.
	FindMatch
)

// ParseFindMode maps "exact" and "match" to their FindMode.
func ParseFindMode(s string) (FindMode, error) {
	switch s {
	case "exact":
		return FindExact, nil
	case "match":
		return FindMatch, nil
	default:
		return FindExact, fmt.Errorf("%w: %q", ErrUnknownFindMode, s)
	}
}

func (m FindMode) String() string {
	if m == FindMatch {
		return "match"
	}
	return "exact"
}

func (m FindMode) matches(groupName, query string) bool {
	if m == FindMatch {
		return strings.Contains(groupName, query)
	}
	return groupName == query
}

func findIn[G core.Group](groups []G, name string, mode FindMode) (G, bool) {
	for _, g := range groups {
		if mode.matches(g.GroupName(), name) {
			return g, true
		}
	}
	var zero G
	return zero, false
}

func within[G core.Group](groups []G, p core.Point, distance float64) []G {
	var out []G
	for _, g := range groups {
		if g.Position().DistanceTo(p) < distance {
			out = append(out, g)
		}
	}
	return out
}

func (c *Country) AddVehicleGroup(g *core.VehicleGroup) {
	c.vehicleGroups = append(c.vehicleGroups, g)
}

func (c *Country) AddShipGroup(g *core.ShipGroup) {
	c.shipGroups = append(c.shipGroups, g)
}

func (c *Country) AddPlaneGroup(g *core.PlaneGroup) {
	c.planeGroups = append(c.planeGroups, g)
}

func (c *Country) AddHelicopterGroup(g *core.HelicopterGroup) {
	c.helicopterGroups = append(c.helicopterGroups, g)
}

func (c *Country) AddStaticGroup(g *core.StaticGroup) {
	c.staticGroups = append(c.staticGroups, g)
}

// AddAircraftGroup routes a flying group to the plane or helicopter collection
// according to the helicopter flag of its first unit. A group whose declared
// variant disagrees with that flag is a programming error and is rejected.
func (c *Country) AddAircraftGroup(g core.FlyingGroup) error {
	units := g.GroupUnits()
	if len(units) == 0 {
		return fmt.Errorf("group %q: %w", g.GroupName(), ErrNoUnits)
	}
	kind := core.KindOf(units[0].Type)

	switch fg := g.(type) {
	case *core.HelicopterGroup:
		if kind == core.KindHelicopter {
			c.helicopterGroups = append(c.helicopterGroups, fg)
			return nil
		}
	case *core.PlaneGroup:
		if kind == core.KindPlane {
			c.planeGroups = append(c.planeGroups, fg)
			return nil
		}
	}
	return fmt.Errorf("group %q declared %s, unit %s is a %s: %w",
		g.GroupName(), g.AircraftKind(), units[0].Type.ID, kind, ErrAircraftMismatch)
}

// RemoveStaticGroup removes the first static group with the same ID as g and
// reports whether one was found.
func (c *Country) RemoveStaticGroup(g *core.StaticGroup) bool {
	i := slices.IndexFunc(c.staticGroups, func(s *core.StaticGroup) bool {
		return s.ID == g.ID
	})
	if i < 0 {
		return false
	}
	c.staticGroups = slices.Delete(c.staticGroups, i, i+1)
	return true
}

// FindGroup searches vehicle, ship, plane, helicopter and static groups, in that
// order, and returns the first group whose name matches.
func (c *Country) FindGroup(name string, mode FindMode) (core.Group, bool) {
	if g, ok := findIn(c.vehicleGroups, name, mode); ok {
		return g, true
	}
	if g, ok := findIn(c.shipGroups, name, mode); ok {
		return g, true
	}
	if g, ok := findIn(c.planeGroups, name, mode); ok {
		return g, true
	}
	if g, ok := findIn(c.helicopterGroups, name, mode); ok {
		return g, true
	}
	if g, ok := findIn(c.staticGroups, name, mode); ok {
		return g, true
	}
	return nil, false
}

func (c *Country) FindVehicleGroup(name string, mode FindMode) (*core.VehicleGroup, bool) {
	return findIn(c.vehicleGroups, name, mode)
}

func (c *Country) FindShipGroup(name string, mode FindMode) (*core.ShipGroup, bool) {
	return findIn(c.shipGroups, name, mode)
}

func (c *Country) FindPlaneGroup(name string, mode FindMode) (*core.PlaneGroup, bool) {
	return findIn(c.planeGroups, name, mode)
}

func (c *Country) FindHelicopterGroup(name string, mode FindMode) (*core.HelicopterGroup, bool) {
	return findIn(c.helicopterGroups, name, mode)
}

func (c *Country) FindStaticGroup(name string, mode FindMode) (*core.StaticGroup, bool) {
	return findIn(c.staticGroups, name, mode)
}

// VehicleGroupWithin returns the vehicle groups strictly closer than distance
// to p, in insertion order.
func (c *Country) VehicleGroupWithin(p core.Point, distance float64) []*core.VehicleGroup {
	return within(c.vehicleGroups, p, distance)
}

// StaticGroupWithin returns the static groups strictly closer than distance
// to p, in insertion order.
func (c *Country) StaticGroupWithin(p core.Point, distance float64) []*core.StaticGroup {
	return within(c.staticGroups, p, distance)
}

// Ships and aircraft move during the mission, so they get no spatial query.

func (c *Country) VehicleGroups() []*core.VehicleGroup       { return slices.Clone(c.vehicleGroups) }
func (c *Country) ShipGroups() []*core.ShipGroup             { return slices.Clone(c.shipGroups) }
func (c *Country) PlaneGroups() []*core.PlaneGroup           { return slices.Clone(c.planeGroups) }
func (c *Country) HelicopterGroups() []*core.HelicopterGroup { return slices.Clone(c.helicopterGroups) }
func (c *Country) StaticGroups() []*core.StaticGroup         { return slices.Clone(c.staticGroups) }

// GroupCount returns the number of registered groups across all kinds.
func (c *Country) GroupCount() int {
	return len(c.vehicleGroups) + len(c.shipGroups) + len(c.planeGroups) +
		len(c.helicopterGroups) + len(c.staticGroups)
}

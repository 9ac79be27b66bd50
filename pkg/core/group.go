// pkg/core/group.go
package core

import "fmt"

// Group is the contract every unit group registered with a country satisfies.
type Group interface {
	GroupID() int
	GroupName() string
	Position() Point
	Dict() map[string]any
}

// AircraftKind is the closed set of flying group variants.
type AircraftKind int

const (
	KindPlane AircraftKind = iota
	KindHelicopter
)

func (k AircraftKind) String() string {
	switch k {
	case KindPlane:
		return "plane"
	case KindHelicopter:
		return "helicopter"
	default:
		return fmt.Sprintf("AircraftKind(%d)", int(k))
	}
}

// KindOf resolves the aircraft kind from a unit type's capability flag.
func KindOf(t UnitType) AircraftKind {
	if t.Helicopter {
		return KindHelicopter
	}
	return KindPlane
}

// FlyingGroup is a group of aircraft. AircraftKind reports the declared variant,
// which must agree with the unit types it carries.
type FlyingGroup interface {
	Group
	AircraftKind() AircraftKind
	GroupUnits() []*Unit
}

// GroupBase holds the fields shared by all group variants.
type GroupBase struct {
	ID     int
	Name   string
	Units  []*Unit
	Hidden bool
}

func (g *GroupBase) GroupID() int        { return g.ID }
func (g *GroupBase) GroupName() string   { return g.Name }
func (g *GroupBase) GroupUnits() []*Unit { return g.Units }

// Position is the position of the group leader, or the origin for an empty group.
func (g *GroupBase) Position() Point {
	if len(g.Units) == 0 {
		return Point{}
	}
	return g.Units[0].Position
}

func (g *GroupBase) dict() map[string]any {
	pos := g.Position()
	units := make(map[int]any, len(g.Units))
	for i, u := range g.Units {
		units[i+1] = u.Dict()
	}
	return map[string]any{
		"groupId": g.ID,
		"name":    g.Name,
		"hidden":  g.Hidden,
		"x":       pos.X,
		"y":       pos.Y,
		"units":   units,
	}
}

// VehicleGroup is a group of ground vehicles.
type VehicleGroup struct {
	GroupBase
	Task string
}

func (g *VehicleGroup) Dict() map[string]any {
	d := g.dict()
	d["task"] = g.Task
	return d
}

// ShipGroup is a group of naval units.
type ShipGroup struct {
	GroupBase
}

func (g *ShipGroup) Dict() map[string]any {
	return g.dict()
}

// FlightBase holds the fields shared by plane and helicopter groups.
type FlightBase struct {
	GroupBase
	Task      string
	Frequency float64 // MHz
	Route     []Point
}

func (g *FlightBase) dict() map[string]any {
	d := g.GroupBase.dict()
	d["task"] = g.Task
	d["frequency"] = g.Frequency
	if len(g.Route) > 0 {
		points := make(map[int]any, len(g.Route))
		for i, p := range g.Route {
			points[i+1] = map[string]any{"x": p.X, "y": p.Y}
		}
		d["route"] = map[string]any{"points": points}
	}
	return d
}

// PlaneGroup is a flight of fixed-wing aircraft.
type PlaneGroup struct {
	FlightBase
}

func (g *PlaneGroup) AircraftKind() AircraftKind { return KindPlane }
func (g *PlaneGroup) Dict() map[string]any       { return g.FlightBase.dict() }

// HelicopterGroup is a flight of rotary-wing aircraft.
type HelicopterGroup struct {
	FlightBase
}

func (g *HelicopterGroup) AircraftKind() AircraftKind { return KindHelicopter }
func (g *HelicopterGroup) Dict() map[string]any       { return g.FlightBase.dict() }

// StaticGroup is a group of static objects.
type StaticGroup struct {
	GroupBase
	Dead bool
}

func (g *StaticGroup) Dict() map[string]any {
	d := g.dict()
	d["dead"] = g.Dead
	return d
}

package country

import (
	"github.com/OCAP2/missionbuilder/pkg/core"
)

var (
	tank    = core.UnitType{ID: "M-1 Abrams"}
	carrier = core.UnitType{ID: "CVN_71"}
	hornet  = core.UnitType{ID: "FA-18C_hornet"}
	apache  = core.UnitType{ID: "AH-64D", Helicopter: true}
	bunker  = core.UnitType{ID: "Bunker"}
)

func units(t core.UnitType, n int, at core.Point) []*core.Unit {
	out := make([]*core.Unit, n)
	for i := range out {
		out[i] = &core.Unit{ID: i + 1, Type: t, Position: at}
	}
	return out
}

func vehicleGroup(id int, name string, at core.Point) *core.VehicleGroup {
	return &core.VehicleGroup{GroupBase: core.GroupBase{ID: id, Name: name, Units: units(tank, 2, at)}}
}

func shipGroup(id int, name string) *core.ShipGroup {
	return &core.ShipGroup{GroupBase: core.GroupBase{ID: id, Name: name, Units: units(carrier, 1, core.Point{})}}
}

func planeGroup(id int, name string, n int) *core.PlaneGroup {
	return &core.PlaneGroup{FlightBase: core.FlightBase{GroupBase: core.GroupBase{ID: id, Name: name, Units: units(hornet, n, core.Point{})}}}
}

func helicopterGroup(id int, name string, n int) *core.HelicopterGroup {
	return &core.HelicopterGroup{FlightBase: core.FlightBase{GroupBase: core.GroupBase{ID: id, Name: name, Units: units(apache, n, core.Point{})}}}
}

func staticGroup(id int, name string, at core.Point) *core.StaticGroup {
	return &core.StaticGroup{GroupBase: core.GroupBase{ID: id, Name: name, Units: units(bunker, 1, at)}}
}

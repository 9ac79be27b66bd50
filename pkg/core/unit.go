// pkg/core/unit.go
package core

// UnitType describes the static properties of a unit class.
type UnitType struct {
	ID         string
	Helicopter bool
}

// FlightCallsign is the structured callsign of one aircraft in a flight.
// Name is the full spoken form, e.g. "Enfield11".
type FlightCallsign struct {
	Index  int // 1-based position of the callsign name in its candidate list
	Number int // flight number, 1-9
	Member int // 1-based position of the aircraft in the flight
	Name   string
}

// Unit is a single vehicle, ship, aircraft or static object.
type Unit struct {
	ID       int
	Name     string
	Type     UnitType
	Position Point
	Heading  float64

	// Aircraft only
	OnboardNum string
	Callsign   *FlightCallsign
	CallsignID int
}

// Dict exports the unit in the scenario table layout.
func (u *Unit) Dict() map[string]any {
	d := map[string]any{
		"unitId":  u.ID,
		"name":    u.Name,
		"type":    u.Type.ID,
		"x":       u.Position.X,
		"y":       u.Position.Y,
		"heading": u.Heading,
	}
	if u.OnboardNum != "" {
		d["onboard_num"] = u.OnboardNum
	}
	switch {
	case u.Callsign != nil:
		// slots 1..3 share the table with "name", so keys are strings
		d["callsign"] = map[string]any{
			"1":    u.Callsign.Index,
			"2":    u.Callsign.Number,
			"3":    u.Callsign.Member,
			"name": u.Callsign.Name,
		}
	case u.CallsignID != 0:
		d["callsign"] = u.CallsignID
	}
	return d
}

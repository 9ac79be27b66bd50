package country

import (
	"fmt"
	"slices"

	"github.com/OCAP2/missionbuilder/pkg/core"
)

// AssignFlight gives every unit of a flight its callsign and onboard number.
//
// When the category (or extra) offers callsign names, the flight shares one
// drawn callsign and unit i is named "<name><number><i+1>". Otherwise each unit
// gets a numeric callsign from NextCallsignID. Units that already carry an
// onboard number keep it and have it reserved; the others get NextOnboardNum.
func (c *Country) AssignFlight(g core.FlyingGroup, category string, extra []string) error {
	units := g.GroupUnits()
	if len(units) == 0 {
		return fmt.Errorf("group %q: %w", g.GroupName(), ErrNoUnits)
	}

	if candidates := c.callsignCandidates(category, extra); len(candidates) > 0 {
		cs, err := c.NextCallsignCategory(category, extra)
		if err != nil {
			return fmt.Errorf("group %q: %w", g.GroupName(), err)
		}
		index := slices.Index(candidates, cs.Name) + 1
		for i, u := range units {
			u.CallsignID = 0
			u.Callsign = &core.FlightCallsign{
				Index:  index,
				Number: cs.Number,
				Member: i + 1,
				Name:   fmt.Sprintf("%s%d%d", cs.Name, cs.Number, i+1),
			}
		}
	} else {
		for _, u := range units {
			u.Callsign = nil
			u.CallsignID = c.NextCallsignID()
		}
	}

	// presets first, so fresh draws cannot collide with a later unit's number
	for _, u := range units {
		if u.OnboardNum != "" && c.ReserveOnboardNum(u.OnboardNum) {
			c.log.Debug().Str("group", g.GroupName()).Str("onboardNum", u.OnboardNum).Msg("Onboard number already in use")
		}
	}
	for _, u := range units {
		if u.OnboardNum == "" {
			u.OnboardNum = c.NextOnboardNum()
		}
	}

	c.log.Debug().Str("group", g.GroupName()).Str("kind", g.AircraftKind().String()).Int("units", len(units)).Msg("Flight assigned")
	return nil
}

package builder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/OCAP2/missionbuilder/internal/callsign"
	"github.com/OCAP2/missionbuilder/internal/country"
	"github.com/OCAP2/missionbuilder/internal/geo"
	"github.com/OCAP2/missionbuilder/internal/mission"
	"github.com/OCAP2/missionbuilder/internal/rand"
	"github.com/OCAP2/missionbuilder/pkg/core"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"
)

// unitSpacing is the distance in meters between consecutive units of a group.
const unitSpacing = 50.0

var (
	ErrDuplicateCountry = errors.New("duplicate country id")
	ErrDuplicateGroup   = errors.New("duplicate group name")
	ErrInvalidPlan      = errors.New("invalid plan")
)

// Options are the shared dependencies handed to every country.
type Options struct {
	Rand      rand.Source
	Callsigns callsign.Catalogue
	Logger    zerolog.Logger
	Meter     metric.Meter
}

func (o Options) countryOptions() []country.Option {
	opts := []country.Option{country.WithLogger(o.Logger)}
	if o.Rand != nil {
		opts = append(opts, country.WithRand(o.Rand))
	}
	if o.Callsigns != nil {
		opts = append(opts, country.WithCallsigns(o.Callsigns))
	}
	if o.Meter != nil {
		opts = append(opts, country.WithMeter(o.Meter))
	}
	return opts
}

type builder struct {
	scenario *mission.Scenario
	opts     Options
	log      zerolog.Logger
}

// Build creates the scenario described by plan.
func Build(plan Plan, opts Options) (*mission.Scenario, error) {
	b := &builder{
		scenario: mission.NewScenario(plan.Name),
		opts:     opts,
		log:      opts.Logger.With().Str("scenario", plan.Name).Logger(),
	}

	for _, cp := range plan.Countries {
		if err := b.addCountry(cp); err != nil {
			return nil, err
		}
	}

	b.log.Info().Int("countries", len(plan.Countries)).Msg("Scenario built")
	return b.scenario, nil
}

func (b *builder) addCountry(cp CountryPlan) error {
	if cp.Name == "" {
		return fmt.Errorf("country %d has no name: %w", cp.ID, ErrInvalidPlan)
	}
	if _, ok := b.scenario.Country(cp.ID); ok {
		return fmt.Errorf("country %q: %w %d", cp.Name, ErrDuplicateCountry, cp.ID)
	}

	c := country.New(cp.ID, cp.Name, cp.ShortName, b.opts.countryOptions()...)
	b.scenario.AddCountry(c)

	for _, gp := range cp.Vehicles {
		base, err := b.groupBase(gp, core.UnitType{ID: gp.UnitType})
		if err != nil {
			return err
		}
		c.AddVehicleGroup(&core.VehicleGroup{GroupBase: base, Task: gp.Task})
	}
	for _, gp := range cp.Ships {
		base, err := b.groupBase(gp, core.UnitType{ID: gp.UnitType})
		if err != nil {
			return err
		}
		c.AddShipGroup(&core.ShipGroup{GroupBase: base})
	}
	for _, gp := range cp.Statics {
		base, err := b.groupBase(gp, core.UnitType{ID: gp.UnitType})
		if err != nil {
			return err
		}
		c.AddStaticGroup(&core.StaticGroup{GroupBase: base, Dead: gp.Dead})
	}
	for _, gp := range cp.Flights {
		if err := b.addFlight(c, gp); err != nil {
			return err
		}
	}

	b.log.Debug().
		Int("countryID", cp.ID).
		Str("country", cp.Name).
		Int("groups", c.GroupCount()).
		Msg("Country added")
	return nil
}

func (b *builder) addFlight(c *country.Country, gp GroupPlan) error {
	base, err := b.groupBase(gp, core.UnitType{ID: gp.UnitType, Helicopter: gp.Helicopter})
	if err != nil {
		return err
	}
	for i, num := range gp.OnboardNums {
		if i < len(base.Units) {
			base.Units[i].OnboardNum = num
		}
	}

	flight := core.FlightBase{GroupBase: base, Task: gp.Task, Frequency: gp.Frequency}
	if gp.Route != "" {
		route, length, err := geo.ParseRoute(gp.Route)
		if err != nil {
			return fmt.Errorf("group %q: %w", gp.Name, err)
		}
		flight.Route = route
		b.log.Trace().Str("group", gp.Name).Float64("length", length).Msg("Route parsed")
	}

	kind, err := flightKind(gp)
	if err != nil {
		return err
	}
	var g core.FlyingGroup
	switch kind {
	case core.KindHelicopter:
		g = &core.HelicopterGroup{FlightBase: flight}
	default:
		g = &core.PlaneGroup{FlightBase: flight}
	}

	if err := c.AddAircraftGroup(g); err != nil {
		return err
	}
	return c.AssignFlight(g, gp.Category, gp.Callsigns)
}

// flightKind resolves the declared kind, defaulting to the unit type's.
func flightKind(gp GroupPlan) (core.AircraftKind, error) {
	switch strings.ToLower(gp.Kind) {
	case "":
		if gp.Helicopter {
			return core.KindHelicopter, nil
		}
		return core.KindPlane, nil
	case "plane":
		return core.KindPlane, nil
	case "helicopter":
		return core.KindHelicopter, nil
	default:
		return 0, fmt.Errorf("group %q: unknown flight kind %q: %w", gp.Name, gp.Kind, ErrInvalidPlan)
	}
}

func (b *builder) groupBase(gp GroupPlan, unitType core.UnitType) (core.GroupBase, error) {
	if gp.Name == "" {
		return core.GroupBase{}, fmt.Errorf("group without a name: %w", ErrInvalidPlan)
	}
	if _, _, ok := b.scenario.FindGroup(gp.Name, country.FindExact); ok {
		return core.GroupBase{}, fmt.Errorf("group %q: %w", gp.Name, ErrDuplicateGroup)
	}

	pos, err := position(gp)
	if err != nil {
		return core.GroupBase{}, fmt.Errorf("group %q: %w", gp.Name, err)
	}

	count := gp.Count
	if count <= 0 {
		count = 1
	}

	units := make([]*core.Unit, count)
	for i := range units {
		units[i] = &core.Unit{
			ID:       b.scenario.NextUnitID(),
			Name:     fmt.Sprintf("%s-%d", gp.Name, i+1),
			Type:     unitType,
			Position: core.Point{X: pos.X + float64(i)*unitSpacing, Y: pos.Y},
			Heading:  gp.Heading,
		}
	}

	return core.GroupBase{
		ID:     b.scenario.NextGroupID(),
		Name:   gp.Name,
		Units:  units,
		Hidden: gp.Hidden,
	}, nil
}

func position(gp GroupPlan) (core.Point, error) {
	switch {
	case len(gp.LatLong) == 2:
		return geo.PointFromLatLong(gp.LatLong[0], gp.LatLong[1]), nil
	case len(gp.LatLong) != 0:
		return core.Point{}, geo.ErrInvalidCoordinates
	case gp.Position == "":
		return core.Point{}, nil
	default:
		return geo.ParsePoint(gp.Position)
	}
}

// Package country implements the per-side registry of a scenario: the groups a
// country owns, and the callsign and tail-number pools its flights draw from.
//
// A Country is owned by a single builder. It holds no locks; callers building
// several missions concurrently use one Country per worker.
package country

import (
	"context"
	"fmt"
	"strconv"

	"github.com/OCAP2/missionbuilder/internal/callsign"
	"github.com/OCAP2/missionbuilder/internal/rand"
	"github.com/OCAP2/missionbuilder/pkg/core"
	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// firstCallsignID is the counter value before the first NextCallsignID call.
const firstCallsignID = 99

// Country is one side of a scenario.
type Country struct {
	id        int
	Name      string
	ShortName string

	vehicleGroups    []*core.VehicleGroup
	shipGroups       []*core.ShipGroup
	planeGroups      []*core.PlaneGroup
	helicopterGroups []*core.HelicopterGroup
	staticGroups     []*core.StaticGroup

	currentCallsignID int
	callsignNumbers   map[string]map[int]struct{}
	tailNumbers       map[string]struct{}

	callsigns callsign.Catalogue
	rnd       rand.Source
	log       zerolog.Logger
	metrics   metrics
}

type metrics struct {
	attrs             metric.MeasurementOption
	callsignsIssued   metric.Int64Counter
	callsignResets    metric.Int64Counter
	tailNumDuplicates metric.Int64Counter
}

// Option configures a Country.
type Option func(*Country)

// WithRand sets the random source used by both allocators.
func WithRand(src rand.Source) Option {
	return func(c *Country) { c.rnd = src }
}

// WithCallsigns sets the callsign catalogue flights draw names from.
func WithCallsigns(cat callsign.Catalogue) Option {
	return func(c *Country) { c.callsigns = cat }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Country) { c.log = log }
}

// WithMeter records allocator metrics on the given meter.
func WithMeter(m metric.Meter) Option {
	return func(c *Country) { c.metrics = newMetrics(m, c.id) }
}

// New creates an empty country.
func New(id int, name, shortName string, opts ...Option) *Country {
	c := &Country{
		id:                id,
		Name:              name,
		ShortName:         shortName,
		currentCallsignID: firstCallsignID,
		callsignNumbers:   make(map[string]map[int]struct{}),
		tailNumbers:       make(map[string]struct{}),
		callsigns:         callsign.Catalogue{},
		log:               zerolog.Nop(),
		metrics:           newMetrics(noop.Meter{}, id),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rnd == nil {
		c.rnd = rand.New()
	}
	c.log = c.log.With().Int("countryID", id).Str("country", name).Logger()
	return c
}

func newMetrics(m metric.Meter, id int) metrics {
	out := metrics{
		attrs: metric.WithAttributes(attribute.Int("country.id", id)),
	}
	var err error
	if out.callsignsIssued, err = m.Int64Counter("missionbuilder.callsign.issued",
		metric.WithDescription("Callsign/number pairs handed out")); err != nil {
		out.callsignsIssued = noop.Int64Counter{}
	}
	if out.callsignResets, err = m.Int64Counter("missionbuilder.callsign.resets",
		metric.WithDescription("Full callsign pool resets after exhaustion")); err != nil {
		out.callsignResets = noop.Int64Counter{}
	}
	if out.tailNumDuplicates, err = m.Int64Counter("missionbuilder.tailnumber.duplicates",
		metric.WithDescription("Tail numbers handed out again because the pool was exhausted")); err != nil {
		out.tailNumDuplicates = noop.Int64Counter{}
	}
	return out
}

func (m metrics) add(c metric.Int64Counter) {
	c.Add(context.Background(), 1, m.attrs)
}

// ID returns the country's identifier.
func (c *Country) ID() int {
	return c.id
}

// Equal reports whether both countries have the same ID. Names are not compared.
func (c *Country) Equal(other *Country) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.id == other.id
}

// Hash is derived from the ID only, consistent with Equal.
func (c *Country) Hash() uint64 {
	return xxhash.Sum64String(strconv.Itoa(c.id))
}

func (c *Country) String() string {
	names := make([]string, len(c.vehicleGroups))
	for i, g := range c.vehicleGroups {
		names[i] = g.Name
	}
	return fmt.Sprintf("%d,%s,%v", c.id, c.Name, names)
}

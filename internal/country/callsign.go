package country

import (
	"errors"
	"fmt"

	"github.com/OCAP2/missionbuilder/internal/rand"
)

// numbersPerCallsign is how many flight numbers (1..9) each callsign name carries.
const numbersPerCallsign = 9

// ErrNoCallsigns is returned when a category has no names and no extra names
// were supplied, so even a pool reset cannot produce a callsign.
var ErrNoCallsigns = errors.New("no callsign names available")

// Callsign is a radio callsign name and flight number.
type Callsign struct {
	Name   string
	Number int
}

func (cs Callsign) String() string {
	return fmt.Sprintf("%s %d", cs.Name, cs.Number)
}

// NextCallsignID increments and returns the numeric callsign counter. The first
// value returned is 100.
func (c *Country) NextCallsignID() int {
	c.currentCallsignID++
	return c.currentCallsignID
}

// NextCallsignCategory draws a callsign for a flight of the given category.
// Candidates are the catalogue names of the category followed by extra. A name
// is eligible until all nine of its numbers are issued; once no candidate is
// eligible every issued number of every category is released and the draw is
// repeated.
func (c *Country) NextCallsignCategory(category string, extra []string) (Callsign, error) {
	candidates := c.callsignCandidates(category, extra)
	if len(candidates) == 0 {
		return Callsign{}, fmt.Errorf("category %q: %w", category, ErrNoCallsigns)
	}

	for pass := 0; pass < 2; pass++ {
		eligible := make([]string, 0, len(candidates))
		for _, name := range candidates {
			if len(c.callsignNumbers[name]) < numbersPerCallsign {
				eligible = append(eligible, name)
			}
		}
		if len(eligible) == 0 {
			c.log.Debug().Str("category", category).Msg("Callsign pool exhausted, releasing all callsign numbers")
			c.metrics.add(c.metrics.callsignResets)
			c.callsignNumbers = make(map[string]map[int]struct{})
			continue
		}

		name := rand.SampleSlice(c.rnd, eligible)
		taken := c.callsignNumbers[name]
		if taken == nil {
			taken = make(map[int]struct{}, numbersPerCallsign)
			c.callsignNumbers[name] = taken
		}
		free := make([]int, 0, numbersPerCallsign)
		for n := 1; n <= numbersPerCallsign; n++ {
			if _, used := taken[n]; !used {
				free = append(free, n)
			}
		}
		number := rand.SampleSlice(c.rnd, free)
		taken[number] = struct{}{}

		c.metrics.add(c.metrics.callsignsIssued)
		c.log.Trace().Str("category", category).Str("callsign", name).Int("number", number).Msg("Callsign issued")
		return Callsign{Name: name, Number: number}, nil
	}

	// A reset leaves every candidate eligible, so the second pass always returns.
	return Callsign{}, fmt.Errorf("category %q: %w", category, ErrNoCallsigns)
}

func (c *Country) callsignCandidates(category string, extra []string) []string {
	names := c.callsigns.Names(category)
	out := make([]string, 0, len(names)+len(extra))
	out = append(out, names...)
	return append(out, extra...)
}

// CallsignNumbersIssued returns how many numbers of name are currently taken.
func (c *Country) CallsignNumbersIssued(name string) int {
	return len(c.callsignNumbers[name])
}

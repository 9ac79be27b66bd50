package country

import (
	"testing"

	"github.com/OCAP2/missionbuilder/internal/callsign"
	"github.com/OCAP2/missionbuilder/internal/rand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextCallsignID(t *testing.T) {
	c := New(2, "USA", "USA")
	assert.Equal(t, 100, c.NextCallsignID())
	assert.Equal(t, 101, c.NextCallsignID())
	assert.Equal(t, 102, c.NextCallsignID())
}

func TestNextCallsignCategory_ScriptedChoices(t *testing.T) {
	cat := callsign.Catalogue{"air": {"Enfield", "Springfield"}}
	c := New(2, "USA", "USA", WithCallsigns(cat), WithRand(rand.NewScripted(2, 4)))

	// candidates: Enfield, Springfield, Hawg -> index 2; numbers 1..9 -> index 4
	cs, err := c.NextCallsignCategory("Air", []string{"Hawg"})
	require.NoError(t, err)
	assert.Equal(t, Callsign{Name: "Hawg", Number: 5}, cs)

	// Hawg again; free numbers 1,2,3,4,6,7,8,9 -> index 4
	cs, err = c.NextCallsignCategory("Air", []string{"Hawg"})
	require.NoError(t, err)
	assert.Equal(t, Callsign{Name: "Hawg", Number: 6}, cs)
	assert.Equal(t, "Hawg 6", cs.String())
	assert.Equal(t, 2, c.CallsignNumbersIssued("Hawg"))
}

func TestNextCallsignCategory_NoRepeatUntilExhausted(t *testing.T) {
	c := New(2, "USA", "USA", WithCallsigns(callsign.Default()), WithRand(rand.NewSeeded(1)))
	names := callsign.Default().Names(callsign.CategoryAir)
	total := len(names) * numbersPerCallsign

	seen := make(map[Callsign]bool, total)
	for i := 0; i < total; i++ {
		cs, err := c.NextCallsignCategory(callsign.CategoryAir, nil)
		require.NoError(t, err)
		assert.False(t, seen[cs], "pair %v issued twice before exhaustion", cs)
		assert.GreaterOrEqual(t, cs.Number, 1)
		assert.LessOrEqual(t, cs.Number, 9)
		seen[cs] = true
	}
	assert.Len(t, seen, total)
	for _, n := range names {
		assert.Equal(t, numbersPerCallsign, c.CallsignNumbersIssued(n))
	}

	// pool is exhausted: the next draw resets and starts over
	cs, err := c.NextCallsignCategory(callsign.CategoryAir, nil)
	require.NoError(t, err)
	assert.True(t, seen[cs])
	assert.Equal(t, 1, c.CallsignNumbersIssued(cs.Name))
}

func TestNextCallsignCategory_SingleName(t *testing.T) {
	c := New(2, "USA", "USA", WithRand(rand.NewSeeded(99)))

	numbers := make(map[int]bool)
	for i := 0; i < numbersPerCallsign; i++ {
		cs, err := c.NextCallsignCategory("Air", []string{"Solo"})
		require.NoError(t, err)
		assert.Equal(t, "Solo", cs.Name)
		numbers[cs.Number] = true
	}
	assert.Len(t, numbers, numbersPerCallsign)

	cs, err := c.NextCallsignCategory("Air", []string{"Solo"})
	require.NoError(t, err)
	assert.Equal(t, "Solo", cs.Name)
	assert.Equal(t, 1, c.CallsignNumbersIssued("Solo"))
}

func TestNextCallsignCategory_ResetIsGlobal(t *testing.T) {
	cat := callsign.Catalogue{"air": {"Enfield"}, "tanker": {"Texaco"}}
	c := New(2, "USA", "USA", WithCallsigns(cat), WithRand(rand.NewSeeded(3)))

	_, err := c.NextCallsignCategory("Tanker", nil)
	require.NoError(t, err)
	for i := 0; i < numbersPerCallsign; i++ {
		_, err := c.NextCallsignCategory("Air", nil)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, c.CallsignNumbersIssued("Texaco"))

	_, err = c.NextCallsignCategory("Air", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, c.CallsignNumbersIssued("Texaco"), "exhausting one category releases all")
	assert.Equal(t, 1, c.CallsignNumbersIssued("Enfield"))
}

func TestNextCallsignCategory_SkipsFullNames(t *testing.T) {
	cat := callsign.Catalogue{"air": {"Enfield", "Springfield"}}
	c := New(2, "USA", "USA", WithCallsigns(cat), WithRand(rand.NewScripted(0)))

	// always picks the first eligible name and its lowest free number
	for n := 1; n <= numbersPerCallsign; n++ {
		cs, err := c.NextCallsignCategory("Air", nil)
		require.NoError(t, err)
		assert.Equal(t, Callsign{Name: "Enfield", Number: n}, cs)
	}
	cs, err := c.NextCallsignCategory("Air", nil)
	require.NoError(t, err)
	assert.Equal(t, Callsign{Name: "Springfield", Number: 1}, cs)
}

func TestNextCallsignCategory_NoCandidates(t *testing.T) {
	c := New(2, "USA", "USA")
	_, err := c.NextCallsignCategory("Air", nil)
	require.ErrorIs(t, err, ErrNoCallsigns)
}

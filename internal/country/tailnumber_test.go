package country

import (
	"bytes"
	"testing"

	"github.com/OCAP2/missionbuilder/internal/rand"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnusedOnboardNumbers_FullRange(t *testing.T) {
	c := New(2, "USA", "USA")
	free := c.UnusedOnboardNumbers()
	require.Len(t, free, 990)
	assert.Equal(t, "010", free[0])
	assert.Equal(t, "999", free[len(free)-1])
	assert.NotContains(t, free, "009")
}

func TestReserveOnboardNum_Idempotent(t *testing.T) {
	c := New(2, "USA", "USA")

	assert.False(t, c.ReserveOnboardNum("123"))
	assert.True(t, c.ReserveOnboardNum("123"))
	assert.Len(t, c.UnusedOnboardNumbers(), 989)
	assert.NotContains(t, c.UnusedOnboardNumbers(), "123")

	// out of the issued range: accepted, pool unchanged
	assert.False(t, c.ReserveOnboardNum("005"))
	assert.True(t, c.ReserveOnboardNum("005"))
	assert.Len(t, c.UnusedOnboardNumbers(), 989)
}

func TestNextOnboardNum_ExhaustsThenDuplicates(t *testing.T) {
	var buf bytes.Buffer
	c := New(2, "USA", "USA", WithRand(rand.NewSeeded(5)), WithLogger(zerolog.New(&buf)))

	issued := make(map[string]bool, 990)
	for i := 0; i < 990; i++ {
		num := c.NextOnboardNum()
		assert.Len(t, num, 3)
		assert.False(t, issued[num], "onboard number %s issued twice", num)
		issued[num] = true
	}
	assert.Len(t, issued, 990)
	assert.True(t, issued["010"])
	assert.True(t, issued["999"])
	assert.Empty(t, c.UnusedOnboardNumbers())
	assert.Empty(t, buf.String())

	dup := c.NextOnboardNum()
	assert.True(t, issued[dup], "991st number must be a previously issued one")
	assert.Contains(t, buf.String(), "Onboard numbers exhausted")
}

func TestNextOnboardNum_SkipsReserved(t *testing.T) {
	c := New(2, "USA", "USA", WithRand(rand.NewScripted(0)))
	c.ReserveOnboardNum("010")
	c.ReserveOnboardNum("011")

	assert.Equal(t, "012", c.NextOnboardNum())
	assert.Equal(t, "013", c.NextOnboardNum())
}

func TestResetOnboardNumbers(t *testing.T) {
	c := New(2, "USA", "USA")
	for i := 0; i < 10; i++ {
		c.NextOnboardNum()
	}
	c.ReserveOnboardNum("001")
	require.Len(t, c.UnusedOnboardNumbers(), 980)

	c.ResetOnboardNumbers()
	assert.Len(t, c.UnusedOnboardNumbers(), 990)
	assert.False(t, c.ReserveOnboardNum("001"))
}

package country

import (
	"fmt"
	"slices"

	"github.com/OCAP2/missionbuilder/internal/rand"
)

// Fresh onboard numbers are drawn from this inclusive range; 000-009 are never issued.
const (
	minOnboardNum = 10
	maxOnboardNum = 999
)

// ReserveOnboardNum marks num as used and reports whether it already was.
// Any string may be reserved, including numbers outside the issued range.
func (c *Country) ReserveOnboardNum(num string) bool {
	_, inUse := c.tailNumbers[num]
	c.tailNumbers[num] = struct{}{}
	return inUse
}

// UnusedOnboardNumbers returns, in ascending order, every number from "010" to
// "999" that is not reserved. It is recomputed on each call.
func (c *Country) UnusedOnboardNumbers() []string {
	out := make([]string, 0, maxOnboardNum-minOnboardNum+1)
	for n := minOnboardNum; n <= maxOnboardNum; n++ {
		num := fmt.Sprintf("%03d", n)
		if _, inUse := c.tailNumbers[num]; !inUse {
			out = append(out, num)
		}
	}
	return out
}

// NextOnboardNum reserves and returns a random unused onboard number. When all
// 990 numbers are taken it returns a random reserved one instead, so the result
// is a duplicate.
func (c *Country) NextOnboardNum() string {
	if free := c.UnusedOnboardNumbers(); len(free) > 0 {
		num := rand.SampleSlice(c.rnd, free)
		c.ReserveOnboardNum(num)
		return num
	}

	reserved := make([]string, 0, len(c.tailNumbers))
	for num := range c.tailNumbers {
		reserved = append(reserved, num)
	}
	slices.Sort(reserved)
	num := rand.SampleSlice(c.rnd, reserved)

	c.metrics.add(c.metrics.tailNumDuplicates)
	c.log.Warn().Str("onboardNum", num).Msg("Onboard numbers exhausted, reusing a reserved number")
	return num
}

// ResetOnboardNumbers releases every reserved onboard number.
func (c *Country) ResetOnboardNumbers() {
	c.tailNumbers = make(map[string]struct{})
}

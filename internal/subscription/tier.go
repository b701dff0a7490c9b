package subscription

import (
	"errors"
	"fmt"
)

var ErrUnknownTier = errors.New("unknown subscription tier")

type Tier string

const (
	TierTrial    Tier = "trial"
	TierWeekly   Tier = "weekly"
	TierMonthly  Tier = "monthly"
	TierHalfYear Tier = "half_year"
	TierYearly   Tier = "yearly"
)

// TrialGenerationDays is the size of the plan materialized for trial users.
// Days past the trial duration exist but stay locked.
const TrialGenerationDays = 7

var tierDurations = map[Tier]int{
	TierTrial:    3,
	TierWeekly:   7,
	TierMonthly:  30,
	TierHalfYear: 180,
	TierYearly:   365,
}

func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if _, ok := tierDurations[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
	}
	return t, nil
}

// Duration is the number of plan days the tier grants access to.
// Unknown tiers grant nothing.
func (t Tier) Duration() int {
	return tierDurations[t]
}

// GenerationDays returns how many plan days to generate for the tier.
func GenerationDays(t Tier) int {
	if t == TierTrial {
		return TrialGenerationDays
	}
	return t.Duration()
}

// CanAccessDay reports whether the 1-based plan day is unlocked for the tier.
func CanAccessDay(t Tier, day int) bool {
	return day >= 1 && day <= t.Duration()
}

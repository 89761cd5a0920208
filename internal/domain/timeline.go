package domain

import (
	"fmt"
	"time"
)

// Timeline is the fixed calendar input to schedule computation. It is set at
// project creation and never mutated by the scheduling core.
type Timeline struct {
	StartDate    time.Time
	DeadlineDate time.Time
	// DurationDays, when set, overrides the deadline-minus-start day count.
	DurationDays *int
	Granularity  TaskGranularity
}

// EffectiveDurationDays resolves the authoritative day count used for all
// calendar math: the explicit override if present, otherwise the inclusive
// day count from start to deadline.
func (t Timeline) EffectiveDurationDays() int {
	if t.DurationDays != nil {
		return *t.DurationDays
	}
	return int(t.DeadlineDate.Sub(t.StartDate).Hours()/24) + 1
}

// Validate checks the timeline invariants: deadline strictly after start and
// an effective duration of at least minDays.
func (t Timeline) Validate(minDays int) error {
	if !t.DeadlineDate.After(t.StartDate) {
		return fmt.Errorf("%w: deadline %s is not after start date %s",
			ErrInvalidTimeline, t.DeadlineDate.Format("2006-01-02"), t.StartDate.Format("2006-01-02"))
	}
	if days := t.EffectiveDurationDays(); days < minDays {
		return fmt.Errorf("%w: effective duration %d days is below the %d-day minimum",
			ErrInvalidTimeline, days, minDays)
	}
	if t.Granularity != "" && !t.Granularity.Valid() {
		return fmt.Errorf("%w: unknown task granularity %q", ErrInvalidTimeline, t.Granularity)
	}
	return nil
}

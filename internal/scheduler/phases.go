package scheduler

import "math"

// AlertNoTestingPhase is raised when the timeline is too short to reserve any
// week for cumulative review.
const AlertNoTestingPhase = "No time remains for a testing phase"

// PhaseSplit is the division of the timeline into learning and testing weeks.
type PhaseSplit struct {
	TotalWeeks    int
	LearningWeeks int
	TestingWeeks  int
	Alerts        []string
}

// AllocatePhases splits the effective duration into learning and testing
// week counts. The split ratio is rounded half-up; the learning phase always
// gets at least one week, and the testing phase gets at least one week
// whenever two or more total weeks exist. Task granularity does not change
// week counts, only due-date placement.
func AllocatePhases(durationDays int, cfg Config) PhaseSplit {
	totalWeeks := int(math.Ceil(float64(durationDays) / 7))
	if totalWeeks < 1 {
		totalWeeks = 1
	}

	if totalWeeks == 1 {
		return PhaseSplit{
			TotalWeeks:    1,
			LearningWeeks: 1,
			TestingWeeks:  0,
			Alerts:        []string{AlertNoTestingPhase},
		}
	}

	learning := int(math.Floor(float64(totalWeeks)*cfg.LearningPhaseRatio + 0.5))
	if learning < 1 {
		learning = 1
	}
	if learning > totalWeeks-1 {
		learning = totalWeeks - 1
	}

	return PhaseSplit{
		TotalWeeks:    totalWeeks,
		LearningWeeks: learning,
		TestingWeeks:  totalWeeks - learning,
	}
}

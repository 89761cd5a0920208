package scheduler

import (
	"fmt"
	"sort"

	"github.com/aheedhul/StudyPath/internal/domain"
)

// Schedule is the fully assembled study plan: phase week counts, ordered
// feasibility alerts, and the ordered task list.
type Schedule struct {
	LearningWeeks int
	TestingWeeks  int
	TotalWeeks    int
	Alerts        []string
	Tasks         []domain.ScheduleTask
}

// BuildSchedule runs the full pipeline: timeline and catalog validation,
// feasibility analysis, phase allocation, task generation and assembly.
// It is a pure function of its inputs; identical inputs produce identical
// schedules.
func BuildSchedule(chapters []domain.ChapterChunk, timeline domain.Timeline, tier domain.KnowledgeTier, cfg Config) (*Schedule, error) {
	if err := timeline.Validate(cfg.MinDurationDays); err != nil {
		return nil, err
	}
	for _, c := range chapters {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}

	days := timeline.EffectiveDurationDays()

	alerts := AnalyzeFeasibility(chapters, days, tier, cfg)
	split := AllocatePhases(days, cfg)
	alerts = append(alerts, split.Alerts...)

	tasks := GenerateTasks(chapters, timeline, split, tier, cfg)
	if len(tasks) == 0 {
		return nil, fmt.Errorf("%w: no tasks generated for %d-week plan", domain.ErrEmptySchedule, split.TotalWeeks)
	}

	// Generation emits learning then testing; a stable sort on week keeps
	// Learning before Testing within a week.
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Week < tasks[j].Week })

	return &Schedule{
		LearningWeeks: split.LearningWeeks,
		TestingWeeks:  split.TestingWeeks,
		TotalWeeks:    split.TotalWeeks,
		Alerts:        alerts,
		Tasks:         tasks,
	}, nil
}

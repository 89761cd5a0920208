package scheduler

import "github.com/aheedhul/StudyPath/internal/domain"

// TierPace holds per-tier pacing parameters. The multiplier scales required
// study effort; MinutesPerPage is used by ingestion to estimate chapters the
// extractor did not annotate.
type TierPace struct {
	Multiplier     float64
	PagesPerDay    int
	MinutesPerPage int
}

// Config holds all tunable constants of the scheduling engine. It is passed
// explicitly into every stage so tests can vary values without cross-test
// interference.
type Config struct {
	// DailyStudyBudgetMin is the assumed study capacity per calendar day.
	DailyStudyBudgetMin int

	// BeginnerThreshold and AdvancedThreshold split the assessment score
	// ratio into tiers: ratio < beginner => Beginner,
	// ratio < advanced => Intermediate, otherwise Advanced.
	BeginnerThreshold float64
	AdvancedThreshold float64

	Pace map[domain.KnowledgeTier]TierPace

	// LearningPhaseRatio is the share of total weeks given to the learning
	// phase; the remainder becomes the testing phase.
	LearningPhaseRatio float64

	// MinDurationDays is the minimum accepted effective timeline duration.
	MinDurationDays int

	// TightDeadlineDays is the duration below which a tight-deadline alert
	// is raised even when the plan is otherwise feasible.
	TightDeadlineDays int

	// QuizQuestionCount and QuizChapterWindow bound baseline quiz
	// generation: up to QuizQuestionCount questions drawn from the first
	// QuizChapterWindow chapters.
	QuizQuestionCount int
	QuizChapterWindow int

	// FallbackSectionPages is the chunk size used when an outline has no
	// readable table of contents and chapters must be synthesized.
	FallbackSectionPages int
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		DailyStudyBudgetMin: 60,
		BeginnerThreshold:   0.40,
		AdvancedThreshold:   0.75,
		Pace: map[domain.KnowledgeTier]TierPace{
			domain.TierBeginner:     {Multiplier: 1.25, PagesPerDay: 12, MinutesPerPage: 6},
			domain.TierIntermediate: {Multiplier: 1.0, PagesPerDay: 20, MinutesPerPage: 5},
			domain.TierAdvanced:     {Multiplier: 0.8, PagesPerDay: 28, MinutesPerPage: 4},
		},
		LearningPhaseRatio:   0.70,
		MinDurationDays:      14,
		TightDeadlineDays:    21,
		QuizQuestionCount:    6,
		QuizChapterWindow:    3,
		FallbackSectionPages: 15,
	}
}

// PaceFor returns the pace parameters for a tier, falling back to the
// Intermediate pace for unknown tiers.
func (c Config) PaceFor(tier domain.KnowledgeTier) TierPace {
	if p, ok := c.Pace[tier]; ok {
		return p
	}
	return c.Pace[domain.TierIntermediate]
}

package scheduler

import (
	"fmt"
	"math"

	"github.com/aheedhul/StudyPath/internal/domain"
)

// AnalyzeFeasibility compares required study effort against available
// calendar time and returns ordered, human-readable alerts. Alerts are
// advisories, never errors: an infeasible plan is still generated.
//
// The rules run in a fixed order and are evaluated independently, so a single
// input can produce several alerts.
func AnalyzeFeasibility(chapters []domain.ChapterChunk, durationDays int, tier domain.KnowledgeTier, cfg Config) []string {
	var alerts []string

	required := float64(domain.TotalEstimatedMin(chapters)) * cfg.PaceFor(tier).Multiplier
	available := durationDays * cfg.DailyStudyBudgetMin

	if required > float64(available) {
		alerts = append(alerts, fmt.Sprintf(
			"Insufficient time: plan requires ~%d minutes but only %d minutes are available before the deadline",
			int(math.Round(required)), available))
	}

	if durationDays < cfg.TightDeadlineDays {
		alerts = append(alerts, "Deadline is very tight; consider extending it for a dedicated testing phase.")
	}

	if len(chapters) == 0 {
		alerts = append(alerts, "No chapters detected; upload a document with a readable table of contents.")
	}

	return alerts
}

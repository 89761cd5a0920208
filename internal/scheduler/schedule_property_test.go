package scheduler

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/aheedhul/StudyPath/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildSchedule_Invariants property-tests the structural guarantees of
// the pipeline across random catalogs, durations and tiers: phase week counts
// add up, every chapter lands in exactly one learning task in catalog order,
// and testing coverage grows to the full catalog.
func TestBuildSchedule_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	tiers := []domain.KnowledgeTier{domain.TierBeginner, domain.TierIntermediate, domain.TierAdvanced}
	granularities := []domain.TaskGranularity{domain.GranularityDaily, domain.GranularityWeekly, domain.GranularityMonthly}

	for trial := 0; trial < 300; trial++ {
		days := rng.Intn(160) + 14 // 14–173 days
		numChapters := rng.Intn(20) + 1
		tier := tiers[rng.Intn(len(tiers))]

		chapters := make([]domain.ChapterChunk, numChapters)
		page := 1
		for i := range chapters {
			pages := rng.Intn(30) + 1
			chapters[i] = domain.ChapterChunk{
				Title:        fmt.Sprintf("Chapter %02d", i+1),
				Level:        rng.Intn(3) + 1,
				PageStart:    page,
				PageEnd:      page + pages - 1,
				EstimatedMin: rng.Intn(300) + 1,
			}
			page += pages
		}

		tl := domain.Timeline{
			StartDate:    start,
			DeadlineDate: start.AddDate(0, 0, days-1),
			Granularity:  granularities[rng.Intn(len(granularities))],
		}

		s, err := BuildSchedule(chapters, tl, tier, DefaultConfig())
		require.NoError(t, err, "trial %d", trial)

		// Phase counts add up.
		assert.Equal(t, s.TotalWeeks, s.LearningWeeks+s.TestingWeeks, "trial %d", trial)

		var flattened []string
		lastWeek := 0
		var lastTesting []string
		for _, task := range s.Tasks {
			assert.GreaterOrEqual(t, task.Week, lastWeek, "trial %d: weeks ascending", trial)
			lastWeek = task.Week
			assert.Equal(t, domain.TaskStatusPending, task.Status, "trial %d", trial)
			assert.False(t, task.DueDate.After(tl.DeadlineDate), "trial %d: due date past deadline", trial)

			switch task.Type {
			case domain.TaskLearning:
				assert.NotEmpty(t, task.AssignedChapters, "trial %d: learning week %d empty", trial, task.Week)
				for _, title := range task.AssignedChapters {
					if !strings.HasPrefix(title, ReviewPrefix) {
						flattened = append(flattened, title)
					}
				}
			case domain.TaskTesting:
				assert.GreaterOrEqual(t, len(task.AssignedChapters), len(lastTesting),
					"trial %d: testing coverage shrank", trial)
				lastTesting = task.AssignedChapters
			}
		}

		// Exactly-once coverage in catalog order.
		want := make([]string, len(chapters))
		for i, c := range chapters {
			want[i] = c.Title
		}
		assert.Equal(t, want, flattened, "trial %d: learning assignments must reproduce the catalog", trial)

		// Final testing week covers the whole catalog.
		if s.TestingWeeks > 0 {
			assert.Len(t, lastTesting, len(chapters), "trial %d", trial)
		}
	}
}

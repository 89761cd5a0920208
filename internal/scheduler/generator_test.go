package scheduler

import (
	"strings"
	"testing"
	"time"

	"github.com/aheedhul/StudyPath/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weeklyTimeline(start time.Time, days int) domain.Timeline {
	return domain.Timeline{
		StartDate:    start,
		DeadlineDate: start.AddDate(0, 0, days-1),
		Granularity:  domain.GranularityWeekly,
	}
}

func learningTasks(tasks []domain.ScheduleTask) []domain.ScheduleTask {
	var out []domain.ScheduleTask
	for _, task := range tasks {
		if task.Type == domain.TaskLearning {
			out = append(out, task)
		}
	}
	return out
}

func testingTasks(tasks []domain.ScheduleTask) []domain.ScheduleTask {
	var out []domain.ScheduleTask
	for _, task := range tasks {
		if task.Type == domain.TaskTesting {
			out = append(out, task)
		}
	}
	return out
}

func TestGenerateTasks_BalancedPartitionPreservesOrder(t *testing.T) {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	chapters := chaptersWithMinutes(120, 180, 90)
	tl := weeklyTimeline(start, 28)
	split := AllocatePhases(28, DefaultConfig())

	tasks := GenerateTasks(chapters, tl, split, domain.TierIntermediate, DefaultConfig())

	learning := learningTasks(tasks)
	require.Len(t, learning, 3)
	assert.Equal(t, []string{"Chapter A"}, learning[0].AssignedChapters)
	assert.Equal(t, []string{"Chapter B"}, learning[1].AssignedChapters)
	assert.Equal(t, []string{"Chapter C"}, learning[2].AssignedChapters)

	testing := testingTasks(tasks)
	require.Len(t, testing, 1)
	assert.Equal(t, 4, testing[0].Week)
	assert.Equal(t, []string{"Chapter A", "Chapter B", "Chapter C"}, testing[0].AssignedChapters)
}

func TestGenerateTasks_EveryChapterExactlyOnceInCatalogOrder(t *testing.T) {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	chapters := chaptersWithMinutes(45, 200, 30, 75, 160, 25, 90, 110)
	tl := weeklyTimeline(start, 42)
	split := AllocatePhases(42, DefaultConfig())

	tasks := GenerateTasks(chapters, tl, split, domain.TierBeginner, DefaultConfig())

	var flattened []string
	for _, task := range learningTasks(tasks) {
		require.NotEmpty(t, task.AssignedChapters, "learning week %d must have chapters", task.Week)
		for _, title := range task.AssignedChapters {
			if !strings.HasPrefix(title, ReviewPrefix) {
				flattened = append(flattened, title)
			}
		}
	}

	want := make([]string, len(chapters))
	for i, c := range chapters {
		want[i] = c.Title
	}
	assert.Equal(t, want, flattened, "concatenated learning assignments must reproduce catalog order")
}

func TestGenerateTasks_FewerChaptersThanWeeksAddsReviewFiller(t *testing.T) {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	chapters := chaptersWithMinutes(60, 90)
	tl := weeklyTimeline(start, 42) // 6 weeks -> 4 learning
	split := AllocatePhases(42, DefaultConfig())
	require.Equal(t, 4, split.LearningWeeks)

	tasks := GenerateTasks(chapters, tl, split, domain.TierIntermediate, DefaultConfig())

	learning := learningTasks(tasks)
	require.Len(t, learning, 4, "all learning weeks populated")
	assert.Equal(t, []string{"Chapter A"}, learning[0].AssignedChapters)
	assert.Equal(t, []string{"Chapter B"}, learning[1].AssignedChapters)
	assert.Equal(t, []string{ReviewPrefix + "Chapter B"}, learning[2].AssignedChapters)
	assert.Equal(t, []string{ReviewPrefix + "Chapter B"}, learning[3].AssignedChapters)
}

func TestGenerateTasks_TestingCoverageNonDecreasingAndFullAtEnd(t *testing.T) {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	chapters := chaptersWithMinutes(60, 60, 60, 60, 60, 60, 60)
	tl := weeklyTimeline(start, 90) // 13 weeks -> 9 learning, 4 testing
	split := AllocatePhases(90, DefaultConfig())

	tasks := testingTasks(GenerateTasks(chapters, tl, split, domain.TierIntermediate, DefaultConfig()))
	require.Len(t, tasks, split.TestingWeeks)

	prev := 0
	for _, task := range tasks {
		assert.GreaterOrEqual(t, len(task.AssignedChapters), prev, "coverage must not shrink")
		prev = len(task.AssignedChapters)
	}
	assert.Len(t, tasks[len(tasks)-1].AssignedChapters, len(chapters), "final testing week covers everything")
}

func TestGenerateTasks_EmptyCatalog(t *testing.T) {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	tl := weeklyTimeline(start, 30)
	split := AllocatePhases(30, DefaultConfig())

	tasks := GenerateTasks(nil, tl, split, domain.TierIntermediate, DefaultConfig())

	assert.Empty(t, learningTasks(tasks), "no chapters means no learning tasks")
	testing := testingTasks(tasks)
	require.Len(t, testing, split.TestingWeeks)
	for _, task := range testing {
		assert.Empty(t, task.AssignedChapters)
	}
}

func TestGenerateTasks_AllTasksStartPending(t *testing.T) {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	chapters := chaptersWithMinutes(60, 90, 120)
	tl := weeklyTimeline(start, 28)
	split := AllocatePhases(28, DefaultConfig())

	for _, task := range GenerateTasks(chapters, tl, split, domain.TierAdvanced, DefaultConfig()) {
		assert.Equal(t, domain.TaskStatusPending, task.Status)
	}
}

func TestDueDate_WeeklyAnchor(t *testing.T) {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	tl := domain.Timeline{
		StartDate:    start,
		DeadlineDate: start.AddDate(0, 0, 60),
		Granularity:  domain.GranularityWeekly,
	}

	assert.Equal(t, start.AddDate(0, 0, 7), dueDate(1, tl))
	assert.Equal(t, start.AddDate(0, 0, 21), dueDate(3, tl))
}

func TestDueDate_ClampedToDeadline(t *testing.T) {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	deadline := start.AddDate(0, 0, 16)
	tl := domain.Timeline{StartDate: start, DeadlineDate: deadline, Granularity: domain.GranularityWeekly}

	assert.Equal(t, deadline, dueDate(3, tl), "anchor past the deadline clamps")
}

func TestDueDate_DailySpacesWeekdays(t *testing.T) {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	tl := domain.Timeline{
		StartDate:    start,
		DeadlineDate: start.AddDate(0, 0, 90),
		Granularity:  domain.GranularityDaily,
	}

	prev := start
	weekdays := make(map[time.Weekday]bool)
	for week := 1; week <= 8; week++ {
		due := dueDate(week, tl)
		assert.True(t, due.After(prev), "daily due dates stay monotonic")

		windowStart := start.AddDate(0, 0, (week-1)*7)
		windowEnd := start.AddDate(0, 0, week*7-1)
		assert.False(t, due.Before(windowStart), "week %d due date before its window", week)
		assert.False(t, due.After(windowEnd), "week %d due date after its window", week)

		weekdays[due.Weekday()] = true
		prev = due
	}
	assert.Greater(t, len(weekdays), 1, "due dates spread across weekdays")
}

func TestDueDate_MonthlyCoalescesToMonthEnd(t *testing.T) {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	tl := domain.Timeline{
		StartDate:    start,
		DeadlineDate: start.AddDate(0, 0, 120),
		Granularity:  domain.GranularityMonthly,
	}

	// Week 1 anchor is Sep 8 -> Sep 30. Week 4 anchor is Sep 29 -> Sep 30.
	assert.Equal(t, time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC), dueDate(1, tl))
	assert.Equal(t, time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC), dueDate(4, tl))
	// Week 5 anchor is Oct 6 -> Oct 31.
	assert.Equal(t, time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC), dueDate(5, tl))
}

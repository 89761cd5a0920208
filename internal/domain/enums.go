package domain

type KnowledgeTier string

const (
	TierBeginner     KnowledgeTier = "Beginner"
	TierIntermediate KnowledgeTier = "Intermediate"
	TierAdvanced     KnowledgeTier = "Advanced"
)

// Rank orders tiers from Beginner (0) to Advanced (2). Classification from
// assessment scores must be monotonic under this ordering.
func (t KnowledgeTier) Rank() int {
	switch t {
	case TierBeginner:
		return 0
	case TierIntermediate:
		return 1
	case TierAdvanced:
		return 2
	default:
		return -1
	}
}

func (t KnowledgeTier) Valid() bool {
	return t.Rank() >= 0
}

type TaskType string

const (
	TaskLearning TaskType = "Learning"
	TaskTesting  TaskType = "Testing"
)

type TaskGranularity string

const (
	GranularityDaily   TaskGranularity = "daily"
	GranularityWeekly  TaskGranularity = "weekly"
	GranularityMonthly TaskGranularity = "monthly"
)

func (g TaskGranularity) Valid() bool {
	switch g {
	case GranularityDaily, GranularityWeekly, GranularityMonthly:
		return true
	}
	return false
}

type ProjectStatus string

const (
	ProjectNotStarted ProjectStatus = "NotStarted"
	ProjectInProgress ProjectStatus = "InProgress"
	ProjectCompleted  ProjectStatus = "Completed"
	ProjectOnHold     ProjectStatus = "OnHold"
)

type QuestionKind string

const (
	QuestionMultipleChoice QuestionKind = "multiple_choice"
	QuestionFreeText       QuestionKind = "free_text"
)

// TaskStatusPending is the initial status of every generated schedule task.
const TaskStatusPending = "Pending"

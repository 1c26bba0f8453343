package course

import "time"

// Difficulty of a module or question
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// difficultyRank orders difficulties: beginner < intermediate < advanced
var difficultyRank = map[Difficulty]int{
	DifficultyBeginner:     0,
	DifficultyIntermediate: 1,
	DifficultyAdvanced:     2,
}

// Valid reports whether d is a known difficulty level
func (d Difficulty) Valid() bool {
	_, ok := difficultyRank[d]
	return ok
}

// Less reports whether d orders before other
func (d Difficulty) Less(other Difficulty) bool {
	return difficultyRank[d] < difficultyRank[other]
}

// QuestionType of a quiz question
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionTrueFalse      QuestionType = "true_false"
	QuestionScenario       QuestionType = "scenario"
)

// Answer is one option of a quiz question
type Answer struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	IsCorrect   bool   `json:"is_correct"`
	Explanation string `json:"explanation"`
}

// QuizQuestion belongs to one module. Immutable after catalog load; exactly
// one answer carries the correct flag, enforced by Catalog validation.
type QuizQuestion struct {
	ID          string       `json:"id"`
	ModuleID    string       `json:"module_id"`
	Type        QuestionType `json:"question_type"`
	Text        string       `json:"question_text"`
	Topic       string       `json:"cybersecurity_topic"`
	Difficulty  Difficulty   `json:"difficulty"`
	Points      int          `json:"points"`
	Explanation string       `json:"explanation"`
	Answers     []Answer     `json:"answers"`
}

// CorrectAnswer returns the single correct answer of the question.
// Catalog validation guarantees it exists.
func (q *QuizQuestion) CorrectAnswer() *Answer {
	for i := range q.Answers {
		if q.Answers[i].IsCorrect {
			return &q.Answers[i]
		}
	}
	return nil
}

// AnswerByID resolves an answer id within the question, nil when absent
func (q *QuizQuestion) AnswerByID(id string) *Answer {
	for i := range q.Answers {
		if q.Answers[i].ID == id {
			return &q.Answers[i]
		}
	}
	return nil
}

// CourseModule is one unit of course content plus its quiz. Immutable after
// catalog load.
type CourseModule struct {
	ID                 string         `json:"id"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	Difficulty         Difficulty     `json:"difficulty"`
	EstimatedMinutes   int            `json:"estimated_duration"`
	Content            []string       `json:"content"`
	LearningObjectives []string       `json:"learning_objectives"`
	Topics             []string       `json:"cybersecurity_topics"`
	Prerequisites      []string       `json:"prerequisites,omitempty"`
	QuizQuestions      []QuizQuestion `json:"quiz_questions"`
}

// QuestionByID resolves a question id within the module, nil when absent
func (m *CourseModule) QuestionByID(id string) *QuizQuestion {
	for i := range m.QuizQuestions {
		if m.QuizQuestions[i].ID == id {
			return &m.QuizQuestions[i]
		}
	}
	return nil
}

// QuizAttempt records one submitted answer. Append-only.
type QuizAttempt struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	ModuleID         string    `json:"module_id"`
	QuestionID       string    `json:"question_id"`
	SelectedAnswerID string    `json:"selected_answer_id"`
	IsCorrect        bool      `json:"is_correct"`
	Timestamp        time.Time `json:"timestamp"`
	TimeSpentSeconds int       `json:"time_spent_seconds"`
}

// ModuleProgress tracks one user's state in one module
type ModuleProgress struct {
	UserID             string              `json:"user_id"`
	ModuleID           string              `json:"module_id"`
	IsCompleted        bool                `json:"is_completed"`
	ContentViewed      bool                `json:"content_viewed"`
	QuizScore          float64             `json:"quiz_score"` // fraction in [0,1]
	TimeSpentMinutes   int                 `json:"time_spent_minutes"`
	StartedAt          time.Time           `json:"started_at"`
	CompletedAt        *time.Time          `json:"completed_at,omitempty"`
	LastAccessed       *time.Time          `json:"last_accessed,omitempty"`
	QuizAttempts       []QuizAttempt       `json:"quiz_attempts"`
	IncorrectQuestions map[string]struct{} `json:"-"`

	// IncorrectQuestionIDs is filled on snapshots only; the live set is
	// the IncorrectQuestions map.
	IncorrectQuestionIDs []string `json:"incorrect_question_ids"`
}

// incorrectIDs returns the incorrect set as a slice in catalog question order
func (mp *ModuleProgress) incorrectIDs(module *CourseModule) []string {
	ids := make([]string, 0, len(mp.IncorrectQuestions))
	for _, q := range module.QuizQuestions {
		if _, ok := mp.IncorrectQuestions[q.ID]; ok {
			ids = append(ids, q.ID)
		}
	}
	return ids
}

// UserProgress aggregates a user's progress across all modules
type UserProgress struct {
	UserID                string                     `json:"user_id"`
	TotalModules          int                        `json:"total_modules"`
	CompletedModules      int                        `json:"completed_modules"`
	OverallScore          float64                    `json:"overall_score"`
	TotalTimeSpentMinutes int                        `json:"total_time_spent_minutes"`
	ModuleProgress        map[string]*ModuleProgress `json:"module_progress"`
}

// SubmitResult is the outcome of one answer submission. CorrectAnswer is
// filled only for wrong submissions: a correct answer's identity is never
// revealed otherwise.
type SubmitResult struct {
	IsCorrect           bool    `json:"is_correct"`
	Explanation         string  `json:"explanation"`
	QuestionExplanation string  `json:"question_explanation"`
	CorrectAnswer       string  `json:"correct_answer,omitempty"`
	QuizScore           float64 `json:"quiz_score"`
	ModuleCompleted     bool    `json:"module_completed"`
}

// Statistics is the per-user course statistics view
type Statistics struct {
	CompletionPercentage int                `json:"completion_percentage"`
	CompletedModules     int                `json:"completed_modules"`
	TotalModules         int                `json:"total_modules"`
	AverageScore         int                `json:"average_score"`
	TotalTimeSpent       int                `json:"total_time_spent"`
	TotalAttempts        int                `json:"total_attempts"`
	StrongestTopic       string             `json:"strongest_topic"`
	WeakestTopic         string             `json:"weakest_topic"`
	ModuleScores         map[string]float64 `json:"module_scores"`
}

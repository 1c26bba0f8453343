package course

import (
	"errors"
	"math"
	"testing"
	"time"
)

// scenarioCatalog mirrors the three-question module used throughout the
// tests: correct answers are q1:a1, q2:a3, q3:a2, one point each.
func scenarioCatalog(t *testing.T) *Catalog {
	t.Helper()

	threeAnswers := func(correct string) []Answer {
		answers := []Answer{
			{ID: "a1", Text: "antwoord 1", Explanation: "uitleg 1"},
			{ID: "a2", Text: "antwoord 2", Explanation: "uitleg 2"},
			{ID: "a3", Text: "antwoord 3", Explanation: "uitleg 3"},
		}
		for i := range answers {
			if answers[i].ID == correct {
				answers[i].IsCorrect = true
			}
		}
		return answers
	}

	m1 := &CourseModule{
		ID:               "m1",
		Title:            "Module Een",
		Difficulty:       DifficultyBeginner,
		EstimatedMinutes: 10,
		Content:          []string{"sectie"},
		QuizQuestions: []QuizQuestion{
			{ID: "q1", ModuleID: "m1", Type: QuestionMultipleChoice, Text: "vraag 1", Points: 1, Answers: threeAnswers("a1")},
			{ID: "q2", ModuleID: "m1", Type: QuestionMultipleChoice, Text: "vraag 2", Points: 1, Answers: threeAnswers("a3")},
			{ID: "q3", ModuleID: "m1", Type: QuestionMultipleChoice, Text: "vraag 3", Points: 1, Answers: threeAnswers("a2")},
		},
	}
	m2 := &CourseModule{
		ID:               "m2",
		Title:            "Module Twee",
		Difficulty:       DifficultyBeginner,
		EstimatedMinutes: 5,
		Content:          []string{"sectie"},
		QuizQuestions: []QuizQuestion{
			{ID: "q4", ModuleID: "m2", Type: QuestionTrueFalse, Text: "vraag 4", Points: 1, Answers: threeAnswers("a1")[:2]},
		},
	}
	empty := &CourseModule{
		ID:               "empty",
		Title:            "Lege Module",
		Difficulty:       DifficultyBeginner,
		EstimatedMinutes: 5,
		Content:          []string{"sectie"},
	}

	c, err := NewCatalog([]*CourseModule{m1, m2, empty})
	if err != nil {
		t.Fatalf("fixture catalog invalid: %v", err)
	}
	return c
}

func mustStart(t *testing.T, tr *Tracker, user, module string) {
	t.Helper()
	if err := tr.StartModule(user, module); err != nil {
		t.Fatalf("StartModule(%s, %s): %v", user, module, err)
	}
}

func mustSubmit(t *testing.T, tr *Tracker, user, module, question, answer string) *SubmitResult {
	t.Helper()
	res, err := tr.SubmitAnswer(user, module, question, answer, 10)
	if err != nil {
		t.Fatalf("SubmitAnswer(%s, %s, %s): %v", module, question, answer, err)
	}
	return res
}

func TestStartModuleUnknown(t *testing.T) {
	tr := NewTrackerSeeded(scenarioCatalog(t), 1)
	err := tr.StartModule("u1", "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMarkContentViewedStateAndNotFound(t *testing.T) {
	tr := NewTrackerSeeded(scenarioCatalog(t), 1)

	if err := tr.MarkContentViewed("u1", "nope", 5); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown module: expected ErrNotFound, got %v", err)
	}
	if err := tr.MarkContentViewed("u1", "m1", 5); !errors.Is(err, ErrInvalidState) {
		t.Errorf("not started: expected ErrInvalidState, got %v", err)
	}

	mustStart(t, tr, "u1", "m1")
	if err := tr.MarkContentViewed("u1", "m1", 5); err != nil {
		t.Fatalf("MarkContentViewed: %v", err)
	}
	if err := tr.MarkContentViewed("u1", "m1", 3); err != nil {
		t.Fatalf("MarkContentViewed: %v", err)
	}

	up, err := tr.Progress("u1")
	if err != nil {
		t.Fatal(err)
	}
	if up.TotalTimeSpentMinutes != 8 {
		t.Errorf("user total minutes = %d, want 8", up.TotalTimeSpentMinutes)
	}
	mp := up.ModuleProgress["m1"]
	if mp.TimeSpentMinutes != 8 {
		t.Errorf("module minutes = %d, want 8", mp.TimeSpentMinutes)
	}
	if !mp.ContentViewed {
		t.Error("content should be marked viewed")
	}
	if mp.QuizScore != 0 {
		t.Error("viewing content must not affect the quiz score")
	}
}

func TestSubmitAnswerRequiresStart(t *testing.T) {
	tr := NewTrackerSeeded(scenarioCatalog(t), 1)
	_, err := tr.SubmitAnswer("u1", "m1", "q1", "a1", 5)
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}
}

func TestSubmitAnswerUnknownIDs(t *testing.T) {
	tr := NewTrackerSeeded(scenarioCatalog(t), 1)
	mustStart(t, tr, "u1", "m1")

	if _, err := tr.SubmitAnswer("u1", "nope", "q1", "a1", 5); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown module: expected ErrNotFound, got %v", err)
	}
	if _, err := tr.SubmitAnswer("u1", "m1", "q9", "a1", 5); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown question: expected ErrNotFound, got %v", err)
	}
	if _, err := tr.SubmitAnswer("u1", "m1", "q1", "a9", 5); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown answer: expected ErrNotFound, got %v", err)
	}
	// q4 belongs to m2, not m1
	if _, err := tr.SubmitAnswer("u1", "m1", "q4", "a1", 5); !errors.Is(err, ErrNotFound) {
		t.Errorf("question from other module: expected ErrNotFound, got %v", err)
	}
}

// The exact scenario from the design: q1 and q2 right, q3 wrong gives 2/3
// and no completion; re-answering q3 correctly completes the module.
func TestScenarioTwoThirdsThenComplete(t *testing.T) {
	tr := NewTrackerSeeded(scenarioCatalog(t), 1)
	mustStart(t, tr, "u1", "m1")
	if err := tr.MarkContentViewed("u1", "m1", 5); err != nil {
		t.Fatal(err)
	}

	if res := mustSubmit(t, tr, "u1", "m1", "q1", "a1"); !res.IsCorrect {
		t.Error("q1=a1 should be correct")
	} else if res.CorrectAnswer != "" {
		t.Error("correct submissions must not reveal the correct answer")
	}
	mustSubmit(t, tr, "u1", "m1", "q2", "a3")

	res := mustSubmit(t, tr, "u1", "m1", "q3", "a1")
	if res.IsCorrect {
		t.Fatal("q3=a1 should be wrong")
	}
	if res.CorrectAnswer != "antwoord 2" {
		t.Errorf("wrong submission should reveal correct answer text, got %q", res.CorrectAnswer)
	}

	up, _ := tr.Progress("u1")
	mp := up.ModuleProgress["m1"]
	if math.Abs(mp.QuizScore-2.0/3.0) > 1e-9 {
		t.Errorf("score = %v, want 2/3", mp.QuizScore)
	}
	if mp.IsCompleted {
		t.Error("2/3 is below the 0.80 threshold, module must not complete")
	}
	if up.CompletedModules != 0 {
		t.Errorf("completed modules = %d, want 0", up.CompletedModules)
	}

	wrong, err := tr.IncorrectQuestions("u1", "m1")
	if err != nil {
		t.Fatal(err)
	}
	if len(wrong) != 1 || wrong[0].ID != "q3" {
		t.Errorf("incorrect set = %v, want exactly q3", questionIDs(wrong))
	}

	// Re-answer q3 correctly: latest-wins clears it and completes the module
	res = mustSubmit(t, tr, "u1", "m1", "q3", "a2")
	if !res.IsCorrect || !res.ModuleCompleted {
		t.Errorf("expected correct + completed, got %+v", res)
	}

	up, _ = tr.Progress("u1")
	mp = up.ModuleProgress["m1"]
	if mp.QuizScore != 1.0 {
		t.Errorf("score = %v, want 1.0", mp.QuizScore)
	}
	if !mp.IsCompleted || mp.CompletedAt == nil {
		t.Error("module should be completed with CompletedAt set")
	}
	if up.CompletedModules != 1 {
		t.Errorf("completed modules = %d, want 1", up.CompletedModules)
	}

	// All latest attempts are correct now, so an exclusion listing is empty
	questions, err := tr.QuizQuestions("u1", "m1", true)
	if err != nil {
		t.Fatal(err)
	}
	if len(questions) != 0 {
		t.Errorf("exclude-correct listing should be empty, got %v", questionIDs(questions))
	}
}

func TestLatestWinsCorrectThenWrong(t *testing.T) {
	tr := NewTrackerSeeded(scenarioCatalog(t), 1)
	mustStart(t, tr, "u1", "m1")

	mustSubmit(t, tr, "u1", "m1", "q1", "a1") // correct
	mustSubmit(t, tr, "u1", "m1", "q1", "a2") // wrong again

	wrong, err := tr.IncorrectQuestions("u1", "m1")
	if err != nil {
		t.Fatal(err)
	}
	if len(wrong) != 1 || wrong[0].ID != "q1" {
		t.Errorf("q1's latest attempt is wrong, incorrect set = %v", questionIDs(wrong))
	}

	up, _ := tr.Progress("u1")
	if up.ModuleProgress["m1"].QuizScore != 0 {
		t.Errorf("latest-wins score = %v, want 0", up.ModuleProgress["m1"].QuizScore)
	}

	// An exclusion listing must still offer q1
	questions, _ := tr.QuizQuestions("u1", "m1", true)
	found := false
	for _, q := range questions {
		if q.ID == "q1" {
			found = true
		}
	}
	if !found {
		t.Error("q1 must stay in the quiz listing while its latest attempt is wrong")
	}
}

func TestCompletionIsMonotonic(t *testing.T) {
	tr := NewTrackerSeeded(scenarioCatalog(t), 1)
	mustStart(t, tr, "u1", "m1")
	if err := tr.MarkContentViewed("u1", "m1", 5); err != nil {
		t.Fatal(err)
	}
	mustSubmit(t, tr, "u1", "m1", "q1", "a1")
	mustSubmit(t, tr, "u1", "m1", "q2", "a3")
	mustSubmit(t, tr, "u1", "m1", "q3", "a2")

	up, _ := tr.Progress("u1")
	if !up.ModuleProgress["m1"].IsCompleted || up.CompletedModules != 1 {
		t.Fatal("module should be completed")
	}

	// A later wrong answer drops the score but never revokes completion
	mustSubmit(t, tr, "u1", "m1", "q1", "a2")

	up, _ = tr.Progress("u1")
	mp := up.ModuleProgress["m1"]
	if math.Abs(mp.QuizScore-2.0/3.0) > 1e-9 {
		t.Errorf("score = %v, want 2/3 after the wrong answer", mp.QuizScore)
	}
	if !mp.IsCompleted {
		t.Error("completion must be monotonic")
	}
	if up.CompletedModules != 1 {
		t.Errorf("completed modules = %d, want 1 (never decreases)", up.CompletedModules)
	}
}

func TestStartModuleResets(t *testing.T) {
	tr := NewTrackerSeeded(scenarioCatalog(t), 1)
	tr.now = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }

	mustStart(t, tr, "u1", "m1")
	if err := tr.MarkContentViewed("u1", "m1", 5); err != nil {
		t.Fatal(err)
	}
	mustSubmit(t, tr, "u1", "m1", "q1", "a1")

	tr.now = func() time.Time { return time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC) }
	mustStart(t, tr, "u1", "m1") // destructive reset

	up, _ := tr.Progress("u1")
	mp := up.ModuleProgress["m1"]
	if mp.QuizScore != 0 {
		t.Errorf("score after reset = %v, want 0", mp.QuizScore)
	}
	if mp.ContentViewed {
		t.Error("content viewed flag should be cleared")
	}
	if len(mp.QuizAttempts) != 0 {
		t.Errorf("attempts after reset = %d, want 0", len(mp.QuizAttempts))
	}
	if !mp.StartedAt.Equal(time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("StartedAt should be refreshed, got %v", mp.StartedAt)
	}
}

func TestIncorrectQuestionsIdempotent(t *testing.T) {
	tr := NewTrackerSeeded(scenarioCatalog(t), 1)
	mustStart(t, tr, "u1", "m1")
	mustSubmit(t, tr, "u1", "m1", "q1", "a3")
	mustSubmit(t, tr, "u1", "m1", "q3", "a1")

	first, err := tr.IncorrectQuestions("u1", "m1")
	if err != nil {
		t.Fatal(err)
	}
	second, err := tr.IncorrectQuestions("u1", "m1")
	if err != nil {
		t.Fatal(err)
	}

	a, b := questionIDs(first), questionIDs(second)
	if len(a) != len(b) {
		t.Fatalf("sizes differ: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("call results differ: %v vs %v", a, b)
		}
	}
}

func TestIncorrectQuestionsNotFound(t *testing.T) {
	tr := NewTrackerSeeded(scenarioCatalog(t), 1)

	if _, err := tr.IncorrectQuestions("u1", "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown module: expected ErrNotFound, got %v", err)
	}
	if _, err := tr.IncorrectQuestions("ghost", "m1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown user: expected ErrNotFound, got %v", err)
	}
}

func TestQuizQuestionsSeededShuffle(t *testing.T) {
	catalog := scenarioCatalog(t)

	trA := NewTrackerSeeded(catalog, 42)
	trB := NewTrackerSeeded(catalog, 42)

	qa, err := trA.QuizQuestions("u1", "m1", false)
	if err != nil {
		t.Fatal(err)
	}
	qb, err := trB.QuizQuestions("u1", "m1", false)
	if err != nil {
		t.Fatal(err)
	}

	if len(qa) != 3 || len(qb) != 3 {
		t.Fatalf("expected all 3 questions, got %d and %d", len(qa), len(qb))
	}
	for i := range qa {
		if qa[i].ID != qb[i].ID {
			t.Errorf("same seed should shuffle identically: %v vs %v", questionIDs(qa), questionIDs(qb))
		}
	}

	// The catalog itself keeps its stable order regardless of shuffling
	m, _ := catalog.Module("m1")
	for i, want := range []string{"q1", "q2", "q3"} {
		if m.QuizQuestions[i].ID != want {
			t.Errorf("catalog order changed at %d: got %s", i, m.QuizQuestions[i].ID)
		}
	}
}

func TestZeroQuestionModuleCannotComplete(t *testing.T) {
	tr := NewTrackerSeeded(scenarioCatalog(t), 1)
	mustStart(t, tr, "u1", "empty")
	if err := tr.MarkContentViewed("u1", "empty", 5); err != nil {
		t.Fatal(err)
	}

	up, _ := tr.Progress("u1")
	mp := up.ModuleProgress["empty"]
	if mp.QuizScore != 0 {
		t.Errorf("zero-question module score = %v, want 0", mp.QuizScore)
	}
	if mp.IsCompleted {
		t.Error("a module without questions can never complete")
	}

	questions, err := tr.QuizQuestions("u1", "empty", false)
	if err != nil {
		t.Fatal(err)
	}
	if len(questions) != 0 {
		t.Errorf("expected no questions, got %d", len(questions))
	}
}

func TestOverallScoreIsMeanOfModuleScores(t *testing.T) {
	tr := NewTrackerSeeded(scenarioCatalog(t), 1)

	mustStart(t, tr, "u1", "m1")
	if err := tr.MarkContentViewed("u1", "m1", 5); err != nil {
		t.Fatal(err)
	}
	mustStart(t, tr, "u1", "m2")
	if err := tr.MarkContentViewed("u1", "m2", 2); err != nil {
		t.Fatal(err)
	}

	// m2 completes at score 1.0 while m1 sits at 1/3
	mustSubmit(t, tr, "u1", "m1", "q1", "a1")
	mustSubmit(t, tr, "u1", "m2", "q4", "a1")

	up, _ := tr.Progress("u1")
	if up.CompletedModules != 1 {
		t.Fatalf("completed modules = %d, want 1", up.CompletedModules)
	}
	want := (1.0/3.0 + 1.0) / 2.0
	if math.Abs(up.OverallScore-want) > 1e-9 {
		t.Errorf("overall score = %v, want %v", up.OverallScore, want)
	}
}

func TestProgressUnknownUser(t *testing.T) {
	tr := NewTrackerSeeded(scenarioCatalog(t), 1)
	if _, err := tr.Progress("ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStatistics(t *testing.T) {
	tr := NewTrackerSeeded(scenarioCatalog(t), 1)
	mustStart(t, tr, "u1", "m1")
	if err := tr.MarkContentViewed("u1", "m1", 7); err != nil {
		t.Fatal(err)
	}
	mustSubmit(t, tr, "u1", "m1", "q1", "a1")
	mustSubmit(t, tr, "u1", "m1", "q2", "a1")

	mustStart(t, tr, "u1", "m2")
	mustSubmit(t, tr, "u1", "m2", "q4", "a1")

	stats, err := tr.Statistics("u1")
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalAttempts != 3 {
		t.Errorf("total attempts = %d, want 3", stats.TotalAttempts)
	}
	if stats.TotalTimeSpent != 7 {
		t.Errorf("time spent = %d, want 7", stats.TotalTimeSpent)
	}
	if stats.StrongestTopic != "Module Twee" {
		t.Errorf("strongest topic = %q, want Module Twee", stats.StrongestTopic)
	}
	if stats.WeakestTopic != "Module Een" {
		t.Errorf("weakest topic = %q, want Module Een", stats.WeakestTopic)
	}
}

func TestProgressSnapshotListsIncorrectIDs(t *testing.T) {
	tr := NewTrackerSeeded(scenarioCatalog(t), 1)
	mustStart(t, tr, "u1", "m1")

	mustSubmit(t, tr, "u1", "m1", "q3", "a1") // wrong
	mustSubmit(t, tr, "u1", "m1", "q1", "a2") // wrong
	mustSubmit(t, tr, "u1", "m1", "q2", "a3") // correct

	up, err := tr.Progress("u1")
	if err != nil {
		t.Fatal(err)
	}
	ids := up.ModuleProgress["m1"].IncorrectQuestionIDs
	if len(ids) != 2 || ids[0] != "q1" || ids[1] != "q3" {
		t.Errorf("incorrect ids = %v, want [q1 q3] in catalog order", ids)
	}

	// Clearing q1 via a correct latest attempt shrinks the snapshot set
	mustSubmit(t, tr, "u1", "m1", "q1", "a1")
	up, _ = tr.Progress("u1")
	ids = up.ModuleProgress["m1"].IncorrectQuestionIDs
	if len(ids) != 1 || ids[0] != "q3" {
		t.Errorf("incorrect ids = %v, want [q3]", ids)
	}
}

func questionIDs(questions []QuizQuestion) []string {
	ids := make([]string, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}

package course

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// CompletionThreshold is the quiz score fraction required, together with
// viewed content, to complete a module.
const CompletionThreshold = 0.8

// Tracker maintains per-user, per-module progress over an immutable catalog.
// All state is in-memory and process-lifetime. A single coarse lock guards
// the progress map; every operation is a fast in-memory computation, so
// finer locking buys nothing here.
//
// Tracker is an explicit dependency handed to the HTTP layer, not a package
// singleton, so tests get isolated instances.
type Tracker struct {
	mu      sync.Mutex
	catalog *Catalog
	users   map[string]*UserProgress
	rng     *rand.Rand
	now     func() time.Time
}

// NewTracker creates a tracker over the given catalog
func NewTracker(catalog *Catalog) *Tracker {
	return NewTrackerSeeded(catalog, time.Now().UnixNano())
}

// NewTrackerSeeded creates a tracker with a deterministic shuffle seed.
// Question shuffling happens only at the presentation boundary; the catalog
// order itself stays stable.
func NewTrackerSeeded(catalog *Catalog, seed int64) *Tracker {
	return &Tracker{
		catalog: catalog,
		users:   make(map[string]*UserProgress),
		rng:     rand.New(rand.NewSource(seed)),
		now:     time.Now,
	}
}

// ensureUser returns the user's progress record, creating it lazily.
// Caller must hold t.mu.
func (t *Tracker) ensureUser(userID string) *UserProgress {
	up, ok := t.users[userID]
	if !ok {
		up = &UserProgress{
			UserID:         userID,
			TotalModules:   t.catalog.Len(),
			ModuleProgress: make(map[string]*ModuleProgress),
		}
		t.users[userID] = up
	}
	return up
}

// StartModule begins (or restarts) a module for a user. Restarting an
// already started module is a destructive reset: viewed flag, score,
// attempts and the incorrect set are all cleared and StartedAt refreshed.
func (t *Tracker) StartModule(userID, moduleID string) error {
	if _, ok := t.catalog.Module(moduleID); !ok {
		return fmt.Errorf("%w: module %q", ErrNotFound, moduleID)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	up := t.ensureUser(userID)
	up.ModuleProgress[moduleID] = &ModuleProgress{
		UserID:             userID,
		ModuleID:           moduleID,
		StartedAt:          t.now(),
		QuizAttempts:       []QuizAttempt{},
		IncorrectQuestions: make(map[string]struct{}),
	}
	return nil
}

// MarkContentViewed flags the module content as viewed and accumulates the
// minutes spent into both module and user totals. It never affects the quiz
// score by itself, but viewed content is half of the completion condition.
func (t *Tracker) MarkContentViewed(userID, moduleID string, minutes int) error {
	if _, ok := t.catalog.Module(moduleID); !ok {
		return fmt.Errorf("%w: module %q", ErrNotFound, moduleID)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	mp, err := t.moduleProgress(userID, moduleID)
	if err != nil {
		return err
	}

	now := t.now()
	mp.ContentViewed = true
	mp.TimeSpentMinutes += minutes
	mp.LastAccessed = &now
	t.users[userID].TotalTimeSpentMinutes += minutes
	return nil
}

// moduleProgress resolves started module progress. Caller must hold t.mu.
func (t *Tracker) moduleProgress(userID, moduleID string) (*ModuleProgress, error) {
	up, ok := t.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: module %q not started by user %q", ErrInvalidState, moduleID, userID)
	}
	mp, ok := up.ModuleProgress[moduleID]
	if !ok {
		return nil, fmt.Errorf("%w: module %q not started by user %q", ErrInvalidState, moduleID, userID)
	}
	return mp, nil
}

// SubmitAnswer records one answer, maintains the incorrect set under
// latest-wins semantics and recomputes the module score from the full
// attempt history. The correct answer's text is returned only when the
// submission was wrong.
func (t *Tracker) SubmitAnswer(userID, moduleID, questionID, answerID string, timeSpentSeconds int) (*SubmitResult, error) {
	module, ok := t.catalog.Module(moduleID)
	if !ok {
		return nil, fmt.Errorf("%w: module %q", ErrNotFound, moduleID)
	}
	question := module.QuestionByID(questionID)
	if question == nil {
		return nil, fmt.Errorf("%w: question %q in module %q", ErrNotFound, questionID, moduleID)
	}
	selected := question.AnswerByID(answerID)
	if selected == nil {
		return nil, fmt.Errorf("%w: answer %q for question %q", ErrNotFound, answerID, questionID)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	mp, err := t.moduleProgress(userID, moduleID)
	if err != nil {
		return nil, err
	}

	attempt := QuizAttempt{
		ID:               uuid.NewString(),
		UserID:           userID,
		ModuleID:         moduleID,
		QuestionID:       questionID,
		SelectedAnswerID: answerID,
		IsCorrect:        selected.IsCorrect,
		Timestamp:        t.now(),
		TimeSpentSeconds: timeSpentSeconds,
	}
	mp.QuizAttempts = append(mp.QuizAttempts, attempt)

	if selected.IsCorrect {
		delete(mp.IncorrectQuestions, questionID)
	} else {
		mp.IncorrectQuestions[questionID] = struct{}{}
	}

	t.recomputeScore(t.users[userID], mp, module)

	result := &SubmitResult{
		IsCorrect:           selected.IsCorrect,
		Explanation:         selected.Explanation,
		QuestionExplanation: question.Explanation,
		QuizScore:           mp.QuizScore,
		ModuleCompleted:     mp.IsCompleted,
	}
	if !selected.IsCorrect {
		result.CorrectAnswer = question.CorrectAnswer().Text
	}
	return result, nil
}

// recomputeScore rebuilds the module score from the attempt log (latest
// attempt per question wins) instead of accumulating incrementally, so the
// score can never drift from the history. Caller must hold t.mu.
func (t *Tracker) recomputeScore(up *UserProgress, mp *ModuleProgress, module *CourseModule) {
	total := len(module.QuizQuestions)
	if total == 0 {
		// A module without questions scores zero and cannot complete
		mp.QuizScore = 0
		return
	}

	latest := make(map[string]*QuizAttempt, total)
	for i := range mp.QuizAttempts {
		a := &mp.QuizAttempts[i]
		prev, ok := latest[a.QuestionID]
		if !ok || !a.Timestamp.Before(prev.Timestamp) {
			latest[a.QuestionID] = a
		}
	}

	correct := 0
	for _, a := range latest {
		if a.IsCorrect {
			correct++
		}
	}
	mp.QuizScore = float64(correct) / float64(total)

	// Completion is monotonic: once a module completes it stays completed,
	// even if a later wrong answer drops the score under the threshold.
	if !mp.IsCompleted && mp.ContentViewed && mp.QuizScore >= CompletionThreshold {
		now := t.now()
		mp.IsCompleted = true
		mp.CompletedAt = &now
		up.CompletedModules++
		t.recomputeOverallScore(up)
	}
}

// recomputeOverallScore sets the user's overall score to the mean of all
// per-module scores recorded so far. Caller must hold t.mu.
func (t *Tracker) recomputeOverallScore(up *UserProgress) {
	if len(up.ModuleProgress) == 0 {
		return
	}
	var total float64
	for _, mp := range up.ModuleProgress {
		total += mp.QuizScore
	}
	up.OverallScore = total / float64(len(up.ModuleProgress))
}

// QuizQuestions returns the module's questions for quiz taking. With
// excludeCorrect set, questions whose latest attempt is correct are left
// out, except those currently in the incorrect set. The result is shuffled
// on every call so callers cannot memorize answer positions.
func (t *Tracker) QuizQuestions(userID, moduleID string, excludeCorrect bool) ([]QuizQuestion, error) {
	module, ok := t.catalog.Module(moduleID)
	if !ok {
		return nil, fmt.Errorf("%w: module %q", ErrNotFound, moduleID)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	questions := make([]QuizQuestion, len(module.QuizQuestions))
	copy(questions, module.QuizQuestions)

	if excludeCorrect {
		if up, ok := t.users[userID]; ok {
			if mp, ok := up.ModuleProgress[moduleID]; ok {
				questions = filterAnsweredCorrectly(questions, mp)
			}
		}
	}

	t.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	return questions, nil
}

// filterAnsweredCorrectly drops questions whose latest attempt is correct.
// Membership in the incorrect set always keeps a question in, which is the
// same latest-wins rule the score uses.
func filterAnsweredCorrectly(questions []QuizQuestion, mp *ModuleProgress) []QuizQuestion {
	latestCorrect := make(map[string]bool)
	latestAt := make(map[string]time.Time)
	for _, a := range mp.QuizAttempts {
		if at, ok := latestAt[a.QuestionID]; !ok || !a.Timestamp.Before(at) {
			latestAt[a.QuestionID] = a.Timestamp
			latestCorrect[a.QuestionID] = a.IsCorrect
		}
	}

	kept := questions[:0]
	for _, q := range questions {
		_, incorrect := mp.IncorrectQuestions[q.ID]
		if incorrect || !latestCorrect[q.ID] {
			kept = append(kept, q)
		}
	}
	return kept
}

// IncorrectQuestions returns exactly the current incorrect set in stable
// catalog order, with full answer detail. This is the remediation surface:
// unlike QuizQuestions it may reveal correctness flags and explanations.
func (t *Tracker) IncorrectQuestions(userID, moduleID string) ([]QuizQuestion, error) {
	module, ok := t.catalog.Module(moduleID)
	if !ok {
		return nil, fmt.Errorf("%w: module %q", ErrNotFound, moduleID)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	up, ok := t.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: no progress for user %q", ErrNotFound, userID)
	}
	mp, ok := up.ModuleProgress[moduleID]
	if !ok {
		return nil, fmt.Errorf("%w: no progress for user %q in module %q", ErrNotFound, userID, moduleID)
	}

	out := make([]QuizQuestion, 0, len(mp.IncorrectQuestions))
	for _, q := range module.QuizQuestions {
		if _, bad := mp.IncorrectQuestions[q.ID]; bad {
			out = append(out, q)
		}
	}
	return out, nil
}

// Progress returns a snapshot of the user's aggregate and per-module
// progress. The snapshot is a deep copy; callers can hold it without
// racing the tracker.
func (t *Tracker) Progress(userID string) (*UserProgress, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	up, ok := t.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: no progress for user %q", ErrNotFound, userID)
	}
	return t.snapshotUser(up), nil
}

func (t *Tracker) snapshotUser(up *UserProgress) *UserProgress {
	out := &UserProgress{
		UserID:                up.UserID,
		TotalModules:          up.TotalModules,
		CompletedModules:      up.CompletedModules,
		OverallScore:          up.OverallScore,
		TotalTimeSpentMinutes: up.TotalTimeSpentMinutes,
		ModuleProgress:        make(map[string]*ModuleProgress, len(up.ModuleProgress)),
	}
	for id, mp := range up.ModuleProgress {
		cp := *mp
		cp.QuizAttempts = append([]QuizAttempt(nil), mp.QuizAttempts...)
		cp.IncorrectQuestions = make(map[string]struct{}, len(mp.IncorrectQuestions))
		for q := range mp.IncorrectQuestions {
			cp.IncorrectQuestions[q] = struct{}{}
		}
		if module, ok := t.catalog.Module(id); ok {
			cp.IncorrectQuestionIDs = mp.incorrectIDs(module)
		}
		out.ModuleProgress[id] = &cp
	}
	return out
}

// Statistics computes the per-user course statistics view
func (t *Tracker) Statistics(userID string) (*Statistics, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	up, ok := t.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: no progress for user %q", ErrNotFound, userID)
	}

	stats := &Statistics{
		CompletedModules: up.CompletedModules,
		TotalModules:     up.TotalModules,
		TotalTimeSpent:   up.TotalTimeSpentMinutes,
		ModuleScores:     make(map[string]float64),
	}
	if up.TotalModules > 0 {
		stats.CompletionPercentage = up.CompletedModules * 100 / up.TotalModules
	}

	var scoreSum float64
	scored := 0
	bestScore, worstScore := -1.0, 2.0
	for moduleID, mp := range up.ModuleProgress {
		stats.TotalAttempts += len(mp.QuizAttempts)
		module, ok := t.catalog.Module(moduleID)
		if !ok {
			continue
		}
		stats.ModuleScores[module.Title] = mp.QuizScore
		scoreSum += mp.QuizScore
		scored++
		if mp.QuizScore > bestScore {
			bestScore = mp.QuizScore
			stats.StrongestTopic = module.Title
		}
		if mp.QuizScore < worstScore {
			worstScore = mp.QuizScore
			stats.WeakestTopic = module.Title
		}
	}
	if scored > 0 {
		stats.AverageScore = int(scoreSum / float64(scored) * 100)
	} else {
		stats.StrongestTopic = "Geen data"
		stats.WeakestTopic = "Geen data"
	}
	return stats, nil
}

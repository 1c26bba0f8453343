package courseController

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"euramax/course"
	"euramax/database"
	"euramax/middleware"
	"euramax/models"
	"euramax/utils"
)

// Controller serves the course and quiz endpoints. The tracker is passed in
// explicitly so tests can run against their own instance.
type Controller struct {
	catalog *course.Catalog
	tracker *course.Tracker
}

func New(catalog *course.Catalog, tracker *course.Tracker) *Controller {
	return &Controller{catalog: catalog, tracker: tracker}
}

// moduleSummary is the listing view: no content, no questions
type moduleSummary struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	Difficulty       course.Difficulty `json:"difficulty"`
	EstimatedMinutes int               `json:"estimated_duration"`
	Topics           []string          `json:"cybersecurity_topics"`
	Prerequisites    []string          `json:"prerequisites,omitempty"`
	QuestionCount    int               `json:"question_count"`
}

// sanitizedAnswer never exposes correctness or explanations
type sanitizedAnswer struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type sanitizedQuestion struct {
	ID         string              `json:"id"`
	Type       course.QuestionType `json:"question_type"`
	Text       string              `json:"question_text"`
	Topic      string              `json:"cybersecurity_topic"`
	Difficulty course.Difficulty   `json:"difficulty"`
	Points     int                 `json:"points"`
	Answers    []sanitizedAnswer   `json:"answers"`
}

func sanitizeQuestion(q course.QuizQuestion) sanitizedQuestion {
	answers := make([]sanitizedAnswer, 0, len(q.Answers))
	for _, a := range q.Answers {
		answers = append(answers, sanitizedAnswer{ID: a.ID, Text: a.Text})
	}
	return sanitizedQuestion{
		ID:         q.ID,
		Type:       q.Type,
		Text:       q.Text,
		Topic:      q.Topic,
		Difficulty: q.Difficulty,
		Points:     q.Points,
		Answers:    answers,
	}
}

// trackerError maps the course error taxonomy onto HTTP
func trackerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, course.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	case errors.Is(err, course.ErrInvalidState):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	default:
		log.Printf("[COURSE] Unexpected error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}
}

// ListModules returns module summaries in catalog order
func (ctl *Controller) ListModules(c *fiber.Ctx) error {
	modules := ctl.catalog.AllModules()
	summaries := make([]moduleSummary, 0, len(modules))
	for _, m := range modules {
		summaries = append(summaries, moduleSummary{
			ID:               m.ID,
			Title:            m.Title,
			Description:      m.Description,
			Difficulty:       m.Difficulty,
			EstimatedMinutes: m.EstimatedMinutes,
			Topics:           m.Topics,
			Prerequisites:    m.Prerequisites,
			QuestionCount:    len(m.QuizQuestions),
		})
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully.", summaries)
}

// GetModule returns full module detail with sanitized questions
func (ctl *Controller) GetModule(c *fiber.Ctx) error {
	m, ok := ctl.catalog.Module(c.Params("moduleId"))
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	questions := make([]sanitizedQuestion, 0, len(m.QuizQuestions))
	for _, q := range m.QuizQuestions {
		questions = append(questions, sanitizeQuestion(q))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module fetched successfully.", fiber.Map{
		"id":                   m.ID,
		"title":                m.Title,
		"description":          m.Description,
		"difficulty":           m.Difficulty,
		"estimated_duration":   m.EstimatedMinutes,
		"content":              m.Content,
		"learning_objectives":  m.LearningObjectives,
		"cybersecurity_topics": m.Topics,
		"prerequisites":        m.Prerequisites,
		"quiz_questions":       questions,
	})
}

// StartModule resets and begins a module for the user
func (ctl *Controller) StartModule(c *fiber.Ctx) error {
	userID := c.Params("userId")
	moduleID := c.Params("moduleId")

	if err := ctl.tracker.StartModule(userID, moduleID); err != nil {
		return trackerError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module gestart.", fiber.Map{
		"user_id":   userID,
		"module_id": moduleID,
	})
}

// CompleteContent marks the module content as viewed
func (ctl *Controller) CompleteContent(c *fiber.Ctx) error {
	userID := c.Params("userId")
	moduleID := c.Params("moduleId")

	minutes := 0
	if req, ok := c.Locals("validatedContentViewed").(*struct {
		TimeSpentMinutes *int `json:"time_spent_minutes"`
	}); ok && req.TimeSpentMinutes != nil {
		minutes = *req.TimeSpentMinutes
	}

	if err := ctl.tracker.MarkContentViewed(userID, moduleID, minutes); err != nil {
		return trackerError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content als bekeken gemarkeerd.", nil)
}

// Quiz returns the (possibly filtered) shuffled quiz questions
func (ctl *Controller) Quiz(c *fiber.Ctx) error {
	userID := c.Params("userId")
	moduleID := c.Params("moduleId")
	excludeCorrect, _ := strconv.ParseBool(c.Query("exclude_correct", "false"))

	questions, err := ctl.tracker.QuizQuestions(userID, moduleID, excludeCorrect)
	if err != nil {
		return trackerError(c, err)
	}

	sanitized := make([]sanitizedQuestion, 0, len(questions))
	for _, q := range questions {
		sanitized = append(sanitized, sanitizeQuestion(q))
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully.", fiber.Map{
		"module_id": moduleID,
		"questions": sanitized,
	})
}

// SubmitAnswer records one quiz answer and returns the graded result
func (ctl *Controller) SubmitAnswer(c *fiber.Ctx) error {
	userID := c.Params("userId")
	moduleID := c.Params("moduleId")

	req, ok := c.Locals("validatedAnswer").(*struct {
		QuestionID string `json:"question_id"`
		AnswerID   string `json:"answer_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	result, err := ctl.tracker.SubmitAnswer(userID, moduleID, req.QuestionID, req.AnswerID, 0)
	if err != nil {
		return trackerError(c, err)
	}

	if result.ModuleCompleted {
		if m, ok := ctl.catalog.Module(moduleID); ok {
			go notifyCompletion(userID, m.Title, result.QuizScore)
		}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Antwoord verwerkt.", result)
}

// notifyCompletion emails the user when a module transitions to completed
func notifyCompletion(userID, moduleTitle string, score float64) {
	var pref models.NotificationPreference
	err := database.Database.Db.Where("user_id = ?", userID).First(&pref).Error
	if err != nil || pref.Email == "" || !pref.EmailEnabled {
		return
	}
	utils.SendModuleCompletedEmail(pref.Email, userID, moduleTitle, score)
}

// Review returns the incorrect set with full answer detail
func (ctl *Controller) Review(c *fiber.Ctx) error {
	userID := c.Params("userId")
	moduleID := c.Params("moduleId")

	questions, err := ctl.tracker.IncorrectQuestions(userID, moduleID)
	if err != nil {
		return trackerError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review fetched successfully.", fiber.Map{
		"module_id": moduleID,
		"questions": questions,
	})
}

// Progress returns the aggregate and per-module progress snapshot
func (ctl *Controller) Progress(c *fiber.Ctx) error {
	progress, err := ctl.tracker.Progress(c.Params("userId"))
	if err != nil {
		return trackerError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully.", progress)
}

// Statistics returns the per-user course statistics view
func (ctl *Controller) Statistics(c *fiber.Ctx) error {
	stats, err := ctl.tracker.Statistics(c.Params("userId"))
	if err != nil {
		return trackerError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Statistics fetched successfully.", stats)
}

package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"euramax/middleware"
)

// ModuleParam checks the :moduleId path parameter
func ModuleParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.TrimSpace(c.Params("moduleId")) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"moduleId": "Module id is required!",
			})
		}
		return c.Next()
	}
}

// SubmitAnswer validator middleware
func SubmitAnswer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			QuestionID string `json:"question_id"`
			AnswerID   string `json:"answer_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.QuestionID) == "" {
			errors["question_id"] = "Question id is required!"
		}

		if strings.TrimSpace(reqData.AnswerID) == "" {
			errors["answer_id"] = "Answer id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAnswer", reqData)
		return c.Next()
	}
}

// ContentViewed validator middleware
func ContentViewed() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TimeSpentMinutes *int `json:"time_spent_minutes"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.TimeSpentMinutes != nil && *reqData.TimeSpentMinutes < 0 {
			errors["time_spent_minutes"] = "Time spent cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContentViewed", reqData)
		return c.Next()
	}
}

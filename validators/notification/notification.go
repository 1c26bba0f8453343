package notificationValidator

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"euramax/middleware"
)

var validate = validator.New()

// PreferencesRequest is the body for updating channel opt-ins
type PreferencesRequest struct {
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" validate:"omitempty,e164"`
	PushToken      string `json:"push_token"`
	PushEnabled    *bool  `json:"push_enabled"`
	EmailEnabled   *bool  `json:"email_enabled"`
	SmsEnabled     *bool  `json:"sms_enabled"`
	DesktopEnabled *bool  `json:"desktop_enabled"`
}

// UpdatePreferences validator middleware
func UpdatePreferences() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PreferencesRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			if verrs, ok := err.(validator.ValidationErrors); ok {
				for _, ve := range verrs {
					errors[ve.Field()] = "Failed on '" + ve.Tag() + "' validation!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedPreferences", reqData)
		return c.Next()
	}
}

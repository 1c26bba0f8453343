package securityValidator

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"euramax/middleware"
)

var validate = validator.New()

// AnalyzeEmailRequest is the body for the email analysis endpoint
type AnalyzeEmailRequest struct {
	Content string `json:"email_content" validate:"required,min=1"`
	Sender  string `json:"sender" validate:"required,email"`
	Subject string `json:"subject"`
}

// AnalyzeNetworkRequest is the body for the network analysis endpoint
type AnalyzeNetworkRequest struct {
	SourceIP      string `json:"source_ip" validate:"required,ip"`
	DestinationIP string `json:"destination_ip" validate:"required,ip"`
	Protocol      string `json:"protocol"`
	Payload       string `json:"payload_sample"`
}

func validationErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, ve := range verrs {
			errors[ve.Field()] = "Failed on '" + ve.Tag() + "' validation!"
		}
	} else {
		errors["body"] = "Invalid request body!"
	}
	return errors
}

// AnalyzeEmail validator middleware
func AnalyzeEmail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AnalyzeEmailRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}
		c.Locals("validatedEmail", reqData)
		return c.Next()
	}
}

// AnalyzeNetwork validator middleware
func AnalyzeNetwork() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AnalyzeNetworkRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}
		c.Locals("validatedNetwork", reqData)
		return c.Next()
	}
}

// AnalyzeFile checks the multipart upload without consuming it
func AnalyzeFile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("file")
		if err != nil || file == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"file": "A file upload is required!",
			})
		}
		if file.Size > 10*1024*1024 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"file": "File may not exceed 10MB!",
			})
		}
		return c.Next()
	}
}

package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authControllers "euramax/controllers/auth"
	authValidators "euramax/validators/auth"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
}

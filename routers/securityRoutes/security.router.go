package securityRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "euramax/controllers/security"
	validators "euramax/validators/security"
)

func SetupSecurityRoutes(app *fiber.App, ctl *controllers.Controller) {
	securityGroup := app.Group("/security")

	securityGroup.Post("/analyze/email", validators.AnalyzeEmail(), ctl.AnalyzeEmail)
	securityGroup.Post("/analyze/file", validators.AnalyzeFile(), ctl.AnalyzeFile)
	securityGroup.Post("/analyze/network", validators.AnalyzeNetwork(), ctl.AnalyzeNetwork)
	securityGroup.Get("/statistics", ctl.Statistics)
}

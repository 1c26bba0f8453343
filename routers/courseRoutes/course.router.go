package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "euramax/controllers/course"
	validators "euramax/validators/course"
)

func SetupCourseRoutes(app *fiber.App, ctl *controllers.Controller) {
	courseGroup := app.Group("/course")

	courseGroup.Get("/modules", ctl.ListModules)
	courseGroup.Get("/modules/:moduleId", validators.ModuleParam(), ctl.GetModule)

	userGroup := courseGroup.Group("/users/:userId")
	userGroup.Post("/modules/:moduleId/start", validators.ModuleParam(), ctl.StartModule)
	userGroup.Post("/modules/:moduleId/complete-content", validators.ModuleParam(), validators.ContentViewed(), ctl.CompleteContent)
	userGroup.Get("/modules/:moduleId/quiz", validators.ModuleParam(), ctl.Quiz)
	userGroup.Post("/modules/:moduleId/quiz/submit", validators.ModuleParam(), validators.SubmitAnswer(), ctl.SubmitAnswer)
	userGroup.Get("/modules/:moduleId/review", validators.ModuleParam(), ctl.Review)
	userGroup.Get("/progress", ctl.Progress)

	courseGroup.Get("/statistics/:userId", ctl.Statistics)
}

package notificationRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "euramax/controllers/notification"
	"euramax/middleware"
	validators "euramax/validators/notification"
)

func SetupNotificationRoutes(app *fiber.App, ctl *controllers.Controller) {
	notificationGroup := app.Group("/notifications")

	notificationGroup.Get("/history", middleware.JWTMiddleware, ctl.History)
	notificationGroup.Get("/users/:userId/preferences", middleware.JWTMiddleware, ctl.GetPreferences)
	notificationGroup.Put("/users/:userId/preferences", middleware.JWTMiddleware, validators.UpdatePreferences(), ctl.UpdatePreferences)
	notificationGroup.Get("/channels/status", middleware.JWTMiddleware, ctl.ChannelStatus)
	notificationGroup.Get("/templates", middleware.JWTMiddleware, ctl.Templates)
	notificationGroup.Post("/test", middleware.JWTMiddleware, middleware.RequireRole("SECURITY"), ctl.SendTest)
}

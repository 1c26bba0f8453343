package dashboardRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "euramax/controllers/dashboard"
	"euramax/middleware"
)

func SetupDashboardRoutes(app *fiber.App, ctl *controllers.Controller) {
	dashboardGroup := app.Group("/dashboard", middleware.JWTMiddleware)

	dashboardGroup.Get("/overview", ctl.Overview)
	dashboardGroup.Get("/threats/real-time", ctl.RealTimeThreats)
	dashboardGroup.Get("/system/performance", ctl.SystemPerformance)
	dashboardGroup.Get("/alerts/active", ctl.ActiveAlerts)
	dashboardGroup.Get("/reports/daily", middleware.RequireRole("SECURITY"), ctl.DailyReport)
}

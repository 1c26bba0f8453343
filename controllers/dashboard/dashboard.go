package dashboardController

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"

	"euramax/database"
	"euramax/detector"
	"euramax/middleware"
	"euramax/models"
	"euramax/notifications"
)

// Controller serves the Dutch monitoring dashboard endpoints
type Controller struct {
	engine   *detector.Engine
	notifier *notifications.Service
	started  time.Time
}

func New(engine *detector.Engine, notifier *notifications.Service) *Controller {
	return &Controller{engine: engine, notifier: notifier, started: time.Now()}
}

type severityCount struct {
	Severity string `json:"severity"`
	Count    int64  `json:"count"`
}

type typeCount struct {
	ThreatType string `json:"threat_type"`
	Count      int64  `json:"count"`
}

// Overview returns the high-level security dashboard
func (ctl *Controller) Overview(c *fiber.Ctx) error {
	stats := ctl.engine.Statistics()
	db := database.Database.Db

	detectionRate := 0.0
	if stats.TotalScans > 0 {
		detectionRate = float64(stats.ThreatsDetected) / float64(stats.TotalScans) * 100
	}

	var events24h int64
	db.Model(&models.ThreatEvent{}).
		Where("detected_at > ?", time.Now().Add(-24*time.Hour)).
		Count(&events24h)

	recent, err := ctl.notifier.History(5)
	if err != nil {
		log.Printf("[DASHBOARD] Error fetching notification history: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Overview fetched successfully.", fiber.Map{
		"systeem_status": fiber.Map{
			"algehele_status":  "operationeel",
			"laatste_update":   time.Now(),
			"uptime":           time.Since(ctl.started).Round(time.Second).String(),
			"actieve_services": []string{"AI Bedreigingsdetectie", "Push Notificaties", "Real-time Monitoring"},
		},
		"bedreiging_statistieken": fiber.Map{
			"totaal_scans":               stats.TotalScans,
			"gedetecteerde_bedreigingen": stats.ThreatsDetected,
			"detectie_percentage":        fmt.Sprintf("%.1f%%", detectionRate),
			"events_24u":                 events24h,
			"laatste_scan":               stats.LastScan,
		},
		"recente_activiteit": fiber.Map{
			"laatste_notificaties": recent,
		},
	})
}

// RealTimeThreats returns recent threat events grouped per type and severity
func (ctl *Controller) RealTimeThreats(c *fiber.Ctx) error {
	hours, _ := strconv.Atoi(c.Query("hours", "24"))
	if hours <= 0 || hours > 24*7 {
		hours = 24
	}
	cutoff := time.Now().Add(-time.Duration(hours) * time.Hour)
	db := database.Database.Db

	var events []models.ThreatEvent
	if err := db.Where("detected_at > ?", cutoff).
		Order("detected_at DESC").
		Limit(200).
		Find(&events).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch threat data!", nil)
	}

	var byType []typeCount
	db.Model(&models.ThreatEvent{}).
		Select("threat_type, count(*) as count").
		Where("detected_at > ?", cutoff).
		Group("threat_type").
		Scan(&byType)

	var bySeverity []severityCount
	db.Model(&models.ThreatEvent{}).
		Select("severity, count(*) as count").
		Where("detected_at > ?", cutoff).
		Group("severity").
		Scan(&bySeverity)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Real-time threats fetched successfully.", fiber.Map{
		"tijdsperiode":          fmt.Sprintf("Laatste %d uur", hours),
		"totaal_bedreigingen":   len(events),
		"bedreigingen_per_type": byType,
		"ernst_verdeling":       bySeverity,
		"recente_events":        events,
		"laatste_update":        time.Now(),
	})
}

// SystemPerformance reports component health and uptime
func (ctl *Controller) SystemPerformance(c *fiber.Ctx) error {
	stats := ctl.engine.Statistics()

	dbStatus := "operationeel"
	sqlDB, err := database.Database.Db.DB()
	if err != nil || sqlDB.Ping() != nil {
		dbStatus = "niet_beschikbaar"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Performance fetched successfully.", fiber.Map{
		"gezondheids_controles": fiber.Map{
			"bedreigingsdetectie": "operationeel",
			"notificatie_service": ctl.notifier.HealthCheck(),
			"database":            dbStatus,
		},
		"uptime_statistieken": fiber.Map{
			"systeem_uptime": time.Since(ctl.started).Round(time.Second).String(),
			"gestart_op":     ctl.started,
		},
		"detectie_prestaties": fiber.Map{
			"totaal_analyses":       stats.TotalScans,
			"succesvolle_detecties": stats.ThreatsDetected,
			"laatste_scan":          stats.LastScan,
		},
		"laatste_update": time.Now(),
	})
}

// ActiveAlerts returns unresolved high/critical events from the last 6 hours
func (ctl *Controller) ActiveAlerts(c *fiber.Ctx) error {
	cutoff := time.Now().Add(-6 * time.Hour)
	db := database.Database.Db

	var alerts []models.ThreatEvent
	if err := db.Where("detected_at > ? AND resolved = false AND severity IN ?",
		cutoff, []string{"critical", "high"}).
		Order("detected_at DESC").
		Find(&alerts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch alerts!", nil)
	}

	critical, high := 0, 0
	for _, a := range alerts {
		if a.Severity == "critical" {
			critical++
		} else {
			high++
		}
	}

	recommendations := []string{"Geen actieve alerts - systeem operationeel"}
	if len(alerts) > 0 {
		recommendations = []string{
			"Monitor kritieke alerts voor escalatie",
			"Controleer netwerkbeveiliging configuratie",
			"Update beveiligingsbeleid indien nodig",
			"Informeer relevante teams over actieve bedreigingen",
		}
	}

	limit := len(alerts)
	if limit > 10 {
		limit = 10
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Active alerts fetched successfully.", fiber.Map{
		"actieve_alerts": fiber.Map{
			"totaal":  len(alerts),
			"kritiek": critical,
			"hoog":    high,
		},
		"recente_alerts":    alerts[:limit],
		"aanbevolen_acties": recommendations,
		"laatste_update":    time.Now(),
	})
}

// DailyReport summarizes today's security activity
func (ctl *Controller) DailyReport(c *fiber.Ctx) error {
	dayStart := now.BeginningOfDay()
	dayEnd := now.EndOfDay()
	db := database.Database.Db

	var todayEvents int64
	db.Model(&models.ThreatEvent{}).
		Where("detected_at BETWEEN ? AND ?", dayStart, dayEnd).
		Count(&todayEvents)

	var byType []typeCount
	db.Model(&models.ThreatEvent{}).
		Select("threat_type, count(*) as count").
		Where("detected_at BETWEEN ? AND ?", dayStart, dayEnd).
		Group("threat_type").
		Scan(&byType)

	var bySeverity []severityCount
	db.Model(&models.ThreatEvent{}).
		Select("severity, count(*) as count").
		Where("detected_at BETWEEN ? AND ?", dayStart, dayEnd).
		Group("severity").
		Scan(&bySeverity)

	stats := ctl.engine.Statistics()

	recommendations := []string{
		"Systeem prestaties zijn optimaal",
		"Bedreigingsdetectie werkt correct",
		"Notificaties worden succesvol verzonden",
		"Geen kritieke acties vereist",
	}
	if todayEvents >= 10 {
		recommendations = []string{
			"Verhoogde bedreigingsactiviteit gedetecteerd",
			"Overweeg extra beveiligingsmaatregelen",
			"Monitor systeem extra zorgvuldig",
			"Informeer beveiligingsteam over trends",
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Daily report fetched successfully.", fiber.Map{
		"rapport_datum": dayStart.Format("2006-01-02"),
		"samenvatting": fiber.Map{
			"totaal_analyses":            stats.TotalScans,
			"gedetecteerde_bedreigingen": todayEvents,
		},
		"bedreigingen_breakdown": byType,
		"ernst_verdeling":        bySeverity,
		"aanbevelingen":          recommendations,
		"volgende_rapport":       dayStart.AddDate(0, 0, 1).Format("2006-01-02"),
		"gegenereerd_op":         time.Now(),
	})
}

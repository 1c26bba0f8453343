package utils

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"euramax/detector"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[SCAN-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartScanScheduler runs the periodic sample feed scan. Every detection is
// handed to onDetect, which persists it and triggers notifications.
func StartScanScheduler(spec string, engine *detector.Engine, onDetect func(*detector.Result)) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		detected := engine.ScanSampleFeed()
		logScheduler("Feed scan voltooid")
		for _, result := range detected {
			logScheduler("Bedreiging in feed: " + string(result.ThreatType) + " (" + string(result.Severity) + ")")
			onDetect(result)
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	logScheduler("Scheduler gestart met spec " + spec)
	return c, nil
}

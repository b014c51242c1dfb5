package services

import (
	"database/sql"
	"log"
	"time"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Refresh the monthly summary cache at 9:10 PM (21:10)
			if now.Hour() == 21 && now.Minute() == 10 {
				log.Println("Triggering scheduled tasks [21:10]...")

				if err := RefreshMonthlySummaries(db, now.Format("2006-01")); err != nil {
					log.Printf("Error refreshing monthly summaries: %v", err)
				}
			}
		}
	}()
}

package services

import (
	"database/sql"
	"log"

	"factory-kpi/app/database"
	"factory-kpi/app/models"
	"factory-kpi/app/scoring"
)

// RefreshMonthlySummaries re-derives every worker's monthly total from
// approved entries and upserts the monthly_summaries cache. Aggregation is
// the same pure function the reporting endpoint uses, so cache and live
// report can never disagree.
func RefreshMonthlySummaries(db *sql.DB, month string) error {
	log.Printf("Refreshing monthly summaries for %s...", month)

	workers, err := database.GetWorkersWithEntriesInMonth(db, month)
	if err != nil {
		return err
	}

	count := 0
	for _, w := range workers {
		entries, err := database.GetApprovedEntriesForMonth(db, month, w.ID)
		if err != nil {
			log.Printf("Failed to load entries for %s %s: %v", w.FirstName, w.LastName, err)
			continue
		}

		total := scoring.AggregateMonth(entries)
		summary := &models.MonthlySummary{
			WorkerID:       w.ID,
			Month:          month,
			TotalScore:     total.Total,
			PenalizedScore: total.Penalized,
			Violations:     total.Violations,
			EntryCount:     total.EntryCount,
		}
		if err := database.UpsertMonthlySummary(db, summary); err != nil {
			log.Printf("Failed to upsert summary for %s %s: %v", w.FirstName, w.LastName, err)
			continue
		}
		count++
	}

	log.Printf("Monthly summary refresh completed. Updated %d workers.", count)
	return nil
}

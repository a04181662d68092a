package interfaces

import (
	"time"

	"production_scheduler/internal/domain/entities"
)

// IReportRenderer turns already-masked calendar events into downloadable
// artifacts. It never receives order rows.
type IReportRenderer interface {
	Spreadsheet(events []entities.CalendarEvent, generatedAt time.Time) ([]byte, error)
	PrintHTML(events []entities.CalendarEvent, year int, month time.Month, customers []string, generatedAt time.Time) ([]byte, error)
}

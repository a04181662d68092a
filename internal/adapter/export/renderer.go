package export

import (
	"time"

	"production_scheduler/internal/domain/entities"
	"production_scheduler/internal/usecase/interfaces"
)

// Renderer binds the spreadsheet and print renderers to IReportRenderer.
type Renderer struct{}

var _ interfaces.IReportRenderer = Renderer{}

func (Renderer) Spreadsheet(events []entities.CalendarEvent, generatedAt time.Time) ([]byte, error) {
	return RenderSpreadsheet(events, generatedAt)
}

func (Renderer) PrintHTML(events []entities.CalendarEvent, year int, month time.Month, customers []string, generatedAt time.Time) ([]byte, error) {
	return RenderPrintHTML(events, year, month, customers, generatedAt)
}

package response

import (
	"production_scheduler/internal/domain/entities"
	"production_scheduler/internal/domain/status"
	"production_scheduler/internal/domain/visibility"
	"production_scheduler/internal/usecase"
)

// CalendarEventResponse is shaped for month-grid calendar widgets. Owned is
// absent on SOLD events.
type CalendarEventResponse struct {
	ID              string              `json:"id"`
	Start           string              `json:"start"`
	AllDay          bool                `json:"allDay"`
	Title           string              `json:"title"`
	BackgroundColor string              `json:"backgroundColor"`
	BorderColor     string              `json:"borderColor"`
	TextColor       string              `json:"textColor"`
	DetailLevel     string              `json:"detail_level"`
	Owned           *OwnedOrderResponse `json:"owned,omitempty"`
}

// OwnedOrderResponse is one row of the customer table view.
type OwnedOrderResponse struct {
	ScheduledDate    string `json:"scheduled_date"`
	WorkOrderID      string `json:"wo"`
	Quote            string `json:"quote"`
	PONumber         string `json:"po_number"`
	CustomerName     string `json:"customer_name"`
	ModelDescription string `json:"model_description"`
	Price            string `json:"price"`
	PriceDisplay     string `json:"price_display"`
	Status           string `json:"status"`
	StatusKey        string `json:"status_key"`
	StatusLabel      string `json:"status_label"`
}

func FromCalendarEvents(events []entities.CalendarEvent) []CalendarEventResponse {
	out := make([]CalendarEventResponse, len(events))
	for i, ev := range events {
		out[i] = CalendarEventResponse{
			ID:              ev.ID,
			Start:           ev.Date.Format(entities.DateLayout),
			AllDay:          true,
			Title:           ev.Title,
			BackgroundColor: ev.Color.Background,
			BorderColor:     ev.Color.Border,
			TextColor:       ev.Color.Text,
			DetailLevel:     string(ev.DetailLevel),
		}
		if ev.DetailLevel == entities.DetailOwned && ev.Owned != nil {
			row := fromOwned(ev)
			out[i].Owned = &row
		}
	}
	return out
}

// FromOwnedEvents drops SOLD events and flattens the owned ones into table rows.
func FromOwnedEvents(events []entities.CalendarEvent) []OwnedOrderResponse {
	out := make([]OwnedOrderResponse, 0, len(events))
	for _, ev := range events {
		if ev.DetailLevel != entities.DetailOwned || ev.Owned == nil {
			continue
		}
		out = append(out, fromOwned(ev))
	}
	return out
}

func fromOwned(ev entities.CalendarEvent) OwnedOrderResponse {
	d := ev.Owned
	return OwnedOrderResponse{
		ScheduledDate:    ev.Date.Format(entities.DateLayout),
		WorkOrderID:      d.WorkOrderID,
		Quote:            d.Quote,
		PONumber:         d.PONumber,
		CustomerName:     d.CustomerName,
		ModelDescription: d.ModelDescription,
		Price:            d.Price,
		PriceDisplay:     visibility.FormatPrice(d.Price),
		Status:           d.Status,
		StatusKey:        string(d.StatusKey),
		StatusLabel:      status.Label(d.StatusKey),
	}
}

type SummaryResponse struct {
	Customers    []string `json:"customers"`
	OrderCount   int      `json:"order_count"`
	TotalValue   string   `json:"total_value"`
	TotalDisplay string   `json:"total_display"`
	Unpriced     int      `json:"unpriced"`
}

func FromSummary(s usecase.PortalSummary) SummaryResponse {
	return SummaryResponse{
		Customers:    s.Customers,
		OrderCount:   s.OrderCount,
		TotalValue:   s.TotalValue.StringFixed(2),
		TotalDisplay: visibility.FormatMoney(s.TotalValue),
		Unpriced:     s.Unpriced,
	}
}

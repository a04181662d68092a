package entities

import "time"

// DetailLevel tells a consumer how much of the underlying order an event exposes.
type DetailLevel string

const (
	DetailOwned DetailLevel = "owned"
	DetailSold  DetailLevel = "sold"
)

// SoldTitle is the only text a SOLD event ever carries.
const SoldTitle = "SOLD"

// CalendarEvent is derived on every read and never persisted.
//
// Owned is nil for SOLD events. No field of this type may hold an Order.
type CalendarEvent struct {
	ID          string       `json:"id"`
	Date        time.Time    `json:"date"`
	Title       string       `json:"title"`
	Color       Palette      `json:"color"`
	DetailLevel DetailLevel  `json:"detail_level"`
	Owned       *OwnedDetail `json:"owned,omitempty"`
}

// OwnedDetail is the full view of an order that belongs to the requester.
type OwnedDetail struct {
	WorkOrderID      string    `json:"work_order_id"`
	Quote            string    `json:"quote"`
	PONumber         string    `json:"po_number"`
	CustomerName     string    `json:"customer_name"`
	ModelDescription string    `json:"model_description"`
	Price            string    `json:"price"`
	Status           string    `json:"status"`
	StatusKey        StatusKey `json:"status_key"`
}

// AdminRow is the unmasked admin representation of a dated order.
type AdminRow struct {
	Order     Order     `json:"order"`
	Date      time.Time `json:"date"`
	StatusKey StatusKey `json:"status_key"`
	Color     Palette   `json:"color"`
	Title     string    `json:"title"`
}

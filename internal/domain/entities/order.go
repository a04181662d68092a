package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrMalformedDate        = errors.New("malformed scheduled_date")
	ErrMissingWorkOrderID   = errors.New("missing work_order_id")
	ErrMissingCustomerName  = errors.New("missing customer_name")
	ErrMissingScheduledDate = errors.New("missing scheduled_date")
)

// DateLayout is the canonical calendar-date format used on the wire and in exports.
const DateLayout = "2006-01-02"

// Order is one scheduled production job in the order book.
//
// Storage model (DynamoDB):
//   - PK: id (row identity, generated when the upload pipeline does not provide one)
//
// Status and ScheduledDate are kept exactly as uploaded. Both are interpreted on read:
// Status through the status normalizer, ScheduledDate through ParseScheduledDate.
type Order struct {
	ID               string `json:"id"`
	WorkOrderID      string `json:"work_order_id"`
	Quote            string `json:"quote"`
	PONumber         string `json:"po_number"`
	Status           string `json:"status"`
	CustomerName     string `json:"customer_name"`
	ModelDescription string `json:"model_description"`
	Price            string `json:"price"`
	ScheduledDate    string `json:"scheduled_date"`
	UploadedName     string `json:"uploaded_name"`
}

// accepted in order; the first layout that parses wins.
var scheduledDateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// ParseScheduledDate returns the calendar date of the order at UTC midnight.
func (o Order) ParseScheduledDate() (time.Time, error) {
	return ParseDate(o.ScheduledDate)
}

// ParseDate parses a calendar date, dropping any time-of-day component.
func ParseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	switch strings.ToLower(s) {
	case "", "none", "nat", "null":
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, raw)
	}
	for _, layout := range scheduledDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, raw)
}

// ValidateOrder checks what the admin write path requires before persisting a row.
func ValidateOrder(o Order) error {
	if strings.TrimSpace(o.WorkOrderID) == "" {
		return ErrMissingWorkOrderID
	}
	if strings.TrimSpace(o.CustomerName) == "" {
		return ErrMissingCustomerName
	}
	if strings.TrimSpace(o.ScheduledDate) == "" {
		return ErrMissingScheduledDate
	}
	if _, err := o.ParseScheduledDate(); err != nil {
		return err
	}
	return nil
}

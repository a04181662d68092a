package request

import (
	"errors"
	"strings"
	"time"

	"production_scheduler/internal/domain/entities"
	"production_scheduler/internal/domain/visibility"
)

var (
	ErrInvalidMatchMode = errors.New("match mode must be contains or exact")
	ErrInvalidMonth     = errors.New("month must be formatted as YYYY-MM")
)

// OrderFilterQuery is the query string of GET /portal/orders.
type OrderFilterQuery struct {
	Quote      string `form:"quote"`
	QuoteMode  string `form:"quote_mode"`
	PONumber   string `form:"po"`
	POMode     string `form:"po_mode"`
	Status     string `form:"status"`
	StatusMode string `form:"status_mode"`
	Model      string `form:"model"`
	ModelMode  string `form:"model_mode"`
	Customer   string `form:"customer"`
	Date       string `form:"date"`
	Month      string `form:"month"`
}

func (q OrderFilterQuery) ToFilter() (visibility.OrderFilter, error) {
	var f visibility.OrderFilter
	var err error

	if f.Quote, err = textFilter(q.Quote, q.QuoteMode); err != nil {
		return f, err
	}
	if f.PONumber, err = textFilter(q.PONumber, q.POMode); err != nil {
		return f, err
	}
	if f.Status, err = textFilter(q.Status, q.StatusMode); err != nil {
		return f, err
	}
	if f.Model, err = textFilter(q.Model, q.ModelMode); err != nil {
		return f, err
	}
	f.Customer = strings.TrimSpace(q.Customer)

	if d := strings.TrimSpace(q.Date); d != "" {
		if f.Date, err = entities.ParseDate(d); err != nil {
			return f, err
		}
	}
	if m := strings.TrimSpace(q.Month); m != "" {
		t, err := time.Parse("2006-01", m)
		if err != nil {
			return f, ErrInvalidMonth
		}
		f.Year, f.Month = t.Year(), t.Month()
	}
	return f, nil
}

func textFilter(value, mode string) (visibility.TextFilter, error) {
	tf := visibility.TextFilter{Value: strings.TrimSpace(value), Mode: visibility.MatchContains}
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", string(visibility.MatchContains):
	case string(visibility.MatchExact):
		tf.Mode = visibility.MatchExact
	default:
		return tf, ErrInvalidMatchMode
	}
	return tf, nil
}

// PrintQuery selects the month of the printable calendar.
type PrintQuery struct {
	Year  int `form:"year" binding:"required,min=1,max=9999"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

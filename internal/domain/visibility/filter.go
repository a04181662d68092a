package visibility

import (
	"strings"
	"time"

	"production_scheduler/internal/domain/entities"
)

// MatchMode selects how a text filter compares.
type MatchMode string

const (
	MatchContains MatchMode = "contains"
	MatchExact    MatchMode = "exact"
)

// TextFilter is an optional text criterion; an empty Value matches everything.
type TextFilter struct {
	Value string
	Mode  MatchMode
}

// OrderFilter mirrors the customer table view. Date wins over Year/Month when both are set.
type OrderFilter struct {
	Quote    TextFilter
	PONumber TextFilter
	Status   TextFilter
	Model    TextFilter
	Customer string
	Date     time.Time
	Year     int
	Month    time.Month
}

// FilterOwned keeps the owned events matching f. SOLD events never pass.
func FilterOwned(events []entities.CalendarEvent, f OrderFilter) []entities.CalendarEvent {
	out := make([]entities.CalendarEvent, 0, len(events))
	for _, ev := range events {
		if ev.DetailLevel != entities.DetailOwned || ev.Owned == nil {
			continue
		}
		if f.matches(ev) {
			out = append(out, ev)
		}
	}
	return out
}

func (f OrderFilter) matches(ev entities.CalendarEvent) bool {
	d := ev.Owned
	if !f.Quote.match(d.Quote) || !f.PONumber.match(d.PONumber) || !f.Model.match(d.ModelDescription) {
		return false
	}
	if !f.Status.matchStatus(d.Status) {
		return false
	}
	if c := strings.TrimSpace(f.Customer); c != "" && c != d.CustomerName {
		return false
	}
	switch {
	case !f.Date.IsZero():
		y, m, dd := f.Date.Date()
		ey, em, ed := ev.Date.Date()
		return y == ey && m == em && dd == ed
	case f.Year != 0 && f.Month != 0:
		return ev.Date.Year() == f.Year && ev.Date.Month() == f.Month
	}
	return true
}

func (t TextFilter) match(v string) bool {
	if t.Value == "" {
		return true
	}
	if t.Mode == MatchExact {
		return strings.TrimSpace(v) == strings.TrimSpace(t.Value)
	}
	return strings.Contains(strings.ToLower(v), strings.ToLower(t.Value))
}

// status exact matching ignores case.
func (t TextFilter) matchStatus(v string) bool {
	if t.Value == "" {
		return true
	}
	if t.Mode == MatchExact {
		return strings.EqualFold(strings.TrimSpace(v), strings.TrimSpace(t.Value))
	}
	return t.match(v)
}

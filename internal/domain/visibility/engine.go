// Package visibility derives the customer and admin views of the order book.
//
// DeriveEvents is the isolation boundary of the portals: rows owned by the requester
// become full-detail events and every other row becomes an anonymous SOLD marker.
// DeriveAdminView is a separate path with its own output type and no masking.
package visibility

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"production_scheduler/internal/domain/entities"
	"production_scheduler/internal/domain/status"

	"github.com/shopspring/decimal"
)

// PermittedCustomers is the flat allowlist derived from an authenticated identity.
type PermittedCustomers map[string]struct{}

// NewPermittedCustomers trims surrounding whitespace and drops empty names.
// Membership is otherwise exact and case-sensitive.
func NewPermittedCustomers(names ...string) PermittedCustomers {
	p := make(PermittedCustomers, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			p[n] = struct{}{}
		}
	}
	return p
}

// Contains reports exact, case-sensitive membership after trimming customer.
func (p PermittedCustomers) Contains(customer string) bool {
	_, ok := p[strings.TrimSpace(customer)]
	return ok
}

// Names returns the allowlist sorted, for display.
func (p PermittedCustomers) Names() []string {
	out := make([]string, 0, len(p))
	for n := range p {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

type datedOrder struct {
	order entities.Order
	date  time.Time
}

// dated drops rows without a parseable scheduled date and orders the rest by
// (date, work_order_id). Ties keep their input order.
func dated(orders []entities.Order) []datedOrder {
	out := make([]datedOrder, 0, len(orders))
	for _, o := range orders {
		d, err := o.ParseScheduledDate()
		if err != nil {
			continue
		}
		out = append(out, datedOrder{order: o, date: d})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].date.Equal(out[j].date) {
			return out[i].date.Before(out[j].date)
		}
		return out[i].order.WorkOrderID < out[j].order.WorkOrderID
	})
	return out
}

// DeriveEvents builds the customer calendar feed using the default status normalizer.
func DeriveEvents(orders []entities.Order, permitted PermittedCustomers) []entities.CalendarEvent {
	return DeriveEventsWith(status.Default(), orders, permitted)
}

// DeriveEventsWith is DeriveEvents with an explicit normalizer.
func DeriveEventsWith(n *status.Normalizer, orders []entities.Order, permitted PermittedCustomers) []entities.CalendarEvent {
	rows := dated(orders)
	events := make([]entities.CalendarEvent, 0, len(rows))
	for i, r := range rows {
		if permitted.Contains(r.order.CustomerName) {
			events = append(events, ownedEvent(n, r, i))
			continue
		}
		events = append(events, soldEvent(r.date, i))
	}
	return events
}

// ownedEvent keys the event by work order and output position, so rows sharing
// a work order (or lacking one) still get distinct ids.
func ownedEvent(n *status.Normalizer, r datedOrder, position int) entities.CalendarEvent {
	canon := n.Normalize(r.order.Status)
	detail := &entities.OwnedDetail{
		WorkOrderID:      strings.TrimSpace(r.order.WorkOrderID),
		Quote:            strings.TrimSpace(r.order.Quote),
		PONumber:         strings.TrimSpace(r.order.PONumber),
		CustomerName:     strings.TrimSpace(r.order.CustomerName),
		ModelDescription: strings.TrimSpace(r.order.ModelDescription),
		Price:            strings.TrimSpace(r.order.Price),
		Status:           strings.TrimSpace(r.order.Status),
		StatusKey:        canon.Key,
	}
	return entities.CalendarEvent{
		ID:          ownedEventID(detail.WorkOrderID, position),
		Date:        r.date,
		Title:       OwnedTitle(detail),
		Color:       canon.Color,
		DetailLevel: entities.DetailOwned,
		Owned:       detail,
	}
}

func ownedEventID(wo string, position int) string {
	if wo == "" {
		return fmt.Sprintf("order-%d", position)
	}
	return fmt.Sprintf("%s-%d", wo, position)
}

// soldEvent takes only the date and the output position; nothing else of the row
// may reach a SOLD event.
func soldEvent(date time.Time, position int) entities.CalendarEvent {
	return entities.CalendarEvent{
		ID:          fmt.Sprintf("sold-%s-%d", date.Format(entities.DateLayout), position),
		Date:        date,
		Title:       entities.SoldTitle,
		Color:       status.SoldPalette,
		DetailLevel: entities.DetailSold,
	}
}

// OwnedTitle renders "WO | Customer - Model | PO n | Quote n | $price | Status".
func OwnedTitle(d *entities.OwnedDetail) string {
	head := joinNonEmpty(" | ", d.WorkOrderID, d.CustomerName)
	if d.ModelDescription != "" {
		head += " - " + d.ModelDescription
	}
	parts := []string{head}
	if d.PONumber != "" {
		parts = append(parts, "PO "+d.PONumber)
	}
	if d.Quote != "" {
		parts = append(parts, "Quote "+d.Quote)
	}
	if d.Price != "" {
		parts = append(parts, FormatPrice(d.Price))
	}
	parts = append(parts, status.Label(d.StatusKey))
	return joinNonEmpty(" | ", parts...)
}

// FormatPrice renders numeric prices as "$1,234.50" and returns anything else unchanged.
func FormatPrice(raw string) string {
	v, ok := ParsePrice(raw)
	if !ok {
		return raw
	}
	return FormatMoney(v)
}

// ParsePrice accepts plain numbers with optional "$" and thousands separators.
func ParsePrice(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}

// FormatMoney renders v with two decimals and thousands separators.
func FormatMoney(v decimal.Decimal) string {
	sign := ""
	if v.IsNegative() {
		sign = "-"
		v = v.Neg()
	}
	fixed := v.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return sign + "$" + b.String() + "." + frac
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

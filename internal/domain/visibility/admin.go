package visibility

import (
	"strings"

	"production_scheduler/internal/domain/entities"
	"production_scheduler/internal/domain/status"
)

// DeriveAdminView returns every dated row with full detail, ordered like DeriveEvents.
// It takes no allowlist and never produces SOLD markers.
func DeriveAdminView(orders []entities.Order) []entities.AdminRow {
	return DeriveAdminViewWith(status.Default(), orders)
}

// DeriveAdminViewWith is DeriveAdminView with an explicit normalizer.
func DeriveAdminViewWith(n *status.Normalizer, orders []entities.Order) []entities.AdminRow {
	rows := dated(orders)
	out := make([]entities.AdminRow, 0, len(rows))
	for _, r := range rows {
		canon := n.Normalize(r.order.Status)
		out = append(out, entities.AdminRow{
			Order:     r.order,
			Date:      r.date,
			StatusKey: canon.Key,
			Color:     canon.Color,
			Title:     adminTitle(r.order, canon.Key),
		})
	}
	return out
}

func adminTitle(o entities.Order, k entities.StatusKey) string {
	title := joinNonEmpty(" | ", strings.TrimSpace(o.WorkOrderID), strings.TrimSpace(o.CustomerName))
	if m := strings.TrimSpace(o.ModelDescription); m != "" {
		title += " - " + m
	}
	return title + " | " + status.Label(k)
}

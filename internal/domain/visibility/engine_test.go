package visibility

import (
	"strings"
	"testing"
	"time"

	"production_scheduler/internal/domain/entities"
	"production_scheduler/internal/domain/status"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func scenarioOrders() []entities.Order {
	return []entities.Order{
		{ID: "r1", WorkOrderID: "W1", CustomerName: "Acme", ScheduledDate: "2024-03-05", Status: "in progress", ModelDescription: "Trailer 53ft", PONumber: "PO-77", Quote: "Q-12", Price: "1250.5"},
		{ID: "r2", WorkOrderID: "W2", CustomerName: "Other", ScheduledDate: "2024-03-06", Status: "DONE", ModelDescription: "Flatbed", PONumber: "PO-99", Quote: "Q-13", Price: "980", UploadedName: "march.xlsx"},
	}
}

func TestDeriveEvents_Scenario(t *testing.T) {
	events := DeriveEvents(scenarioOrders(), NewPermittedCustomers("Acme"))
	require.Len(t, events, 2)

	owned := events[0]
	assert.Equal(t, day(2024, time.March, 5), owned.Date)
	assert.Equal(t, entities.DetailOwned, owned.DetailLevel)
	require.NotNil(t, owned.Owned)
	assert.Equal(t, entities.StatusInProgress, owned.Owned.StatusKey)
	assert.Equal(t, status.DefaultTable.Colors[entities.StatusInProgress], owned.Color)
	assert.Equal(t, "W1-0", owned.ID)
	for _, want := range []string{"W1", "Acme", "Trailer 53ft", "PO-77", "Q-12", "$1,250.50", "In Progress"} {
		assert.Contains(t, owned.Title, want)
	}

	sold := events[1]
	assert.Equal(t, day(2024, time.March, 6), sold.Date)
	assert.Equal(t, entities.DetailSold, sold.DetailLevel)
	assert.Equal(t, "SOLD", sold.Title)
	assert.Equal(t, status.SoldPalette, sold.Color)
	assert.Nil(t, sold.Owned)
}

func TestDeriveEvents_Isolation(t *testing.T) {
	foreign := entities.Order{
		ID:               "row-secret",
		WorkOrderID:      "WO-SECRET-1",
		Quote:            "QUOTE-SECRET",
		PONumber:         "PO-SECRET",
		Status:           "Shipped early",
		CustomerName:     "Competitor Inc",
		ModelDescription: "Prototype X",
		Price:            "777777",
		ScheduledDate:    "2024-04-01",
		UploadedName:     "confidential.csv",
	}
	events := DeriveEvents([]entities.Order{foreign}, NewPermittedCustomers("Acme"))
	require.Len(t, events, 1)
	ev := events[0]

	assert.Nil(t, ev.Owned)
	assert.Equal(t, entities.SoldTitle, ev.Title)
	fields := []string{foreign.ID, foreign.WorkOrderID, foreign.Quote, foreign.PONumber, foreign.Status, foreign.CustomerName, foreign.ModelDescription, foreign.Price, foreign.UploadedName}
	for _, f := range fields {
		assert.NotContains(t, ev.ID, f)
		assert.NotContains(t, ev.Title, f)
		assert.NotContains(t, ev.Color.Background+ev.Color.Border+ev.Color.Text, f)
	}
}

func TestDeriveEvents_CaseSensitiveOwnership(t *testing.T) {
	orders := []entities.Order{
		{WorkOrderID: "W1", CustomerName: "acme", ScheduledDate: "2024-03-05"},
		{WorkOrderID: "W2", CustomerName: " Acme ", ScheduledDate: "2024-03-05"},
	}
	events := DeriveEvents(orders, NewPermittedCustomers("Acme"))
	require.Len(t, events, 2)
	assert.Equal(t, entities.DetailSold, events[0].DetailLevel)
	assert.Equal(t, entities.DetailOwned, events[1].DetailLevel)
	assert.Equal(t, "Acme", events[1].Owned.CustomerName)
}

func TestDeriveEvents_MalformedDateExcluded(t *testing.T) {
	orders := append(scenarioOrders(), entities.Order{WorkOrderID: "W3", CustomerName: "Acme", ScheduledDate: "not-a-date"})
	events := DeriveEvents(orders, NewPermittedCustomers("Acme"))
	require.Len(t, events, 2)
	for _, ev := range events {
		if ev.Owned != nil {
			assert.NotEqual(t, "W3", ev.Owned.WorkOrderID)
		}
	}
}

func TestDeriveEvents_OrderingAndDeterminism(t *testing.T) {
	orders := []entities.Order{
		{WorkOrderID: "W9", CustomerName: "Acme", ScheduledDate: "2024-03-07"},
		{WorkOrderID: "W2", CustomerName: "Other", ScheduledDate: "2024-03-05"},
		{WorkOrderID: "W1", CustomerName: "Acme", ScheduledDate: "2024-03-05"},
		{WorkOrderID: "W1", CustomerName: "Acme", ScheduledDate: "03/05/2024", Quote: "dup"},
		{WorkOrderID: "W3", CustomerName: "Other", ScheduledDate: "2024-03-01"},
	}
	permitted := NewPermittedCustomers("Acme")

	first := DeriveEvents(orders, permitted)
	second := DeriveEvents(orders, permitted)
	assert.Equal(t, first, second)
	require.Len(t, first, 5)

	for i := 1; i < len(first); i++ {
		assert.False(t, first[i].Date.Before(first[i-1].Date), "events must be non-decreasing by date")
	}
	assert.Equal(t, day(2024, time.March, 1), first[0].Date)
	assert.Equal(t, "W1", first[1].Owned.WorkOrderID)
	assert.Equal(t, "", first[1].Owned.Quote)
	assert.Equal(t, "dup", first[2].Owned.Quote, "rows with the same (date, wo) are not merged")
	assert.Equal(t, entities.DetailSold, first[3].DetailLevel)
	assert.Equal(t, "W9", first[4].Owned.WorkOrderID)

	ids := map[string]bool{}
	for _, ev := range first {
		if ev.DetailLevel == entities.DetailSold {
			assert.True(t, strings.HasPrefix(ev.ID, "sold-"))
		}
		assert.NotEmpty(t, ev.ID)
		assert.False(t, ids[ev.ID], "event id %q is repeated", ev.ID)
		ids[ev.ID] = true
	}
	assert.NotEqual(t, first[1].ID, first[2].ID, "rows sharing a work order keep distinct ids")
}

func TestDeriveEvents_OwnedIDsUniquePerRow(t *testing.T) {
	orders := []entities.Order{
		{ID: "a", WorkOrderID: "W1", CustomerName: "Acme", ScheduledDate: "2024-03-05"},
		{ID: "b", WorkOrderID: "W1", CustomerName: "Acme", ScheduledDate: "2024-03-09"},
		{ID: "c", WorkOrderID: "", CustomerName: "Acme", ScheduledDate: "2024-03-10"},
		{ID: "d", WorkOrderID: "  ", CustomerName: "Acme", ScheduledDate: "2024-03-11"},
	}
	events := DeriveEvents(orders, NewPermittedCustomers("Acme"))
	require.Len(t, events, 4)

	assert.Equal(t, "W1-0", events[0].ID)
	assert.Equal(t, "W1-1", events[1].ID)
	assert.Equal(t, "order-2", events[2].ID)
	assert.Equal(t, "order-3", events[3].ID)

	ids := map[string]bool{}
	for _, ev := range events {
		require.Equal(t, entities.DetailOwned, ev.DetailLevel)
		assert.False(t, ids[ev.ID], "event id %q is repeated", ev.ID)
		ids[ev.ID] = true
	}
}

func TestDeriveEvents_EmptyPermittedSetMasksAll(t *testing.T) {
	events := DeriveEvents(scenarioOrders(), NewPermittedCustomers())
	for _, ev := range events {
		assert.Equal(t, entities.DetailSold, ev.DetailLevel)
	}
}

func TestDeriveAdminView(t *testing.T) {
	orders := append(scenarioOrders(), entities.Order{WorkOrderID: "W3", CustomerName: "Acme", ScheduledDate: "not-a-date"})
	rows := DeriveAdminView(orders)
	require.Len(t, rows, 2)

	assert.Equal(t, "W1", rows[0].Order.WorkOrderID)
	assert.Equal(t, entities.StatusInProgress, rows[0].StatusKey)
	assert.Equal(t, "W2", rows[1].Order.WorkOrderID)
	assert.Equal(t, "Other", rows[1].Order.CustomerName)
	assert.Equal(t, "march.xlsx", rows[1].Order.UploadedName)
	assert.Equal(t, entities.StatusCompleted, rows[1].StatusKey)
	assert.NotContains(t, rows[1].Title, entities.SoldTitle)
	assert.Contains(t, rows[1].Title, "Flatbed")
}

func TestPermittedCustomers(t *testing.T) {
	p := NewPermittedCustomers(" Beta ", "Acme", "", "Acme")
	assert.Equal(t, []string{"Acme", "Beta"}, p.Names())
	assert.True(t, p.Contains("Beta"))
	assert.False(t, p.Contains("beta"))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$1,234,567.50", FormatPrice("1234567.5"))
	assert.Equal(t, "$980.00", FormatPrice("$980"))
	assert.Equal(t, "$12,000.00", FormatPrice("12,000"))
	assert.Equal(t, "-$5.25", FormatPrice("-5.25"))
	assert.Equal(t, "call us", FormatPrice("call us"))
}

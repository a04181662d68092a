package response

import (
	"encoding/json"
	"testing"

	"production_scheduler/internal/domain/entities"
	"production_scheduler/internal/domain/visibility"
	"production_scheduler/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCalendarEvents_SoldCarriesNoDetail(t *testing.T) {
	events := visibility.DeriveEvents([]entities.Order{
		{WorkOrderID: "W1", CustomerName: "Acme", ScheduledDate: "2024-03-05", Status: "open", Price: "1500"},
		{WorkOrderID: "W2", CustomerName: "Other", ScheduledDate: "2024-03-06", PONumber: "PO-SECRET"},
	}, visibility.NewPermittedCustomers("Acme"))

	out := FromCalendarEvents(events)
	require.Len(t, out, 2)

	assert.Equal(t, "2024-03-05", out[0].Start)
	require.NotNil(t, out[0].Owned)
	assert.Equal(t, "$1,500.00", out[0].Owned.PriceDisplay)
	assert.Equal(t, "Open", out[0].Owned.StatusLabel)

	assert.Nil(t, out[1].Owned)
	raw, err := json.Marshal(out[1])
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "W2")
	assert.NotContains(t, string(raw), "Other")
	assert.NotContains(t, string(raw), "PO-SECRET")
	assert.NotContains(t, string(raw), `"owned"`)

	assert.Len(t, FromOwnedEvents(events), 1)
}

func TestFromSummary(t *testing.T) {
	out := FromSummary(usecase.PortalSummary{
		Customers:  []string{"Acme"},
		OrderCount: 2,
		TotalValue: decimal.RequireFromString("1234.5"),
	})
	assert.Equal(t, "1234.50", out.TotalValue)
	assert.Equal(t, "$1,234.50", out.TotalDisplay)
}

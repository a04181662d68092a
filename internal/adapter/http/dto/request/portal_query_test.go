package request

import (
	"testing"
	"time"

	"production_scheduler/internal/domain/entities"
	"production_scheduler/internal/domain/visibility"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderFilterQuery_ToFilter(t *testing.T) {
	t.Run("defaults to contains", func(t *testing.T) {
		f, err := OrderFilterQuery{Quote: " Q-1 ", Status: "open", StatusMode: "EXACT"}.ToFilter()
		require.NoError(t, err)
		assert.Equal(t, visibility.TextFilter{Value: "Q-1", Mode: visibility.MatchContains}, f.Quote)
		assert.Equal(t, visibility.MatchExact, f.Status.Mode)
		assert.Empty(t, f.PONumber.Value)
	})

	t.Run("date and month", func(t *testing.T) {
		f, err := OrderFilterQuery{Date: "2024-03-05", Month: "2024-04"}.ToFilter()
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), f.Date)
		assert.Equal(t, 2024, f.Year)
		assert.Equal(t, time.April, f.Month)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := OrderFilterQuery{QuoteMode: "fuzzy"}.ToFilter()
		assert.ErrorIs(t, err, ErrInvalidMatchMode)

		_, err = OrderFilterQuery{Date: "yesterday"}.ToFilter()
		assert.ErrorIs(t, err, entities.ErrMalformedDate)

		_, err = OrderFilterQuery{Month: "March"}.ToFilter()
		assert.ErrorIs(t, err, ErrInvalidMonth)
	})
}

func TestOrderBatchRequest_ToEntities(t *testing.T) {
	req := OrderBatchRequest{
		UploadedName: "march.xlsx",
		Orders: []OrderRequest{
			{WorkOrderID: "W1", CustomerName: "Acme", ScheduledDate: "2024-03-05"},
			{WorkOrderID: "W2", CustomerName: "Acme", ScheduledDate: "2024-03-06", UploadedName: "manual"},
		},
	}
	out := req.ToEntities()
	require.Len(t, out, 2)
	assert.Equal(t, "march.xlsx", out[0].UploadedName)
	assert.Equal(t, "manual", out[1].UploadedName)
	assert.Equal(t, "W2", out[1].WorkOrderID)
}

package status

import (
	"testing"

	"production_scheduler/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		raw  string
		want entities.StatusKey
	}{
		{"in progress", entities.StatusInProgress},
		{"DONE", entities.StatusCompleted},
		{"  Open ", entities.StatusOpen},
		{"In-Progress", entities.StatusInProgress},
		{"WIP - line 2", entities.StatusInProgress},
		{"Shipped to customer", entities.StatusCompleted},
		{"ON HOLD (parts)", entities.StatusOnHold},
		{"Canceled", entities.StatusCancelled},
		{"void", entities.StatusCancelled},
		{"pending approval", entities.StatusOpen},
		{"", entities.StatusUnknown},
		{"   ", entities.StatusUnknown},
		{"quarantined", entities.StatusUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got := Normalize(tc.raw)
			assert.Equal(t, tc.want, got.Key)
			assert.Equal(t, DefaultTable.Colors[tc.want], got.Color)
		})
	}
}

func TestNormalize_FirstRuleWins(t *testing.T) {
	// "pending" (open) is listed before "hold" (on_hold).
	assert.Equal(t, entities.StatusOpen, Normalize("pending hold").Key)
	// "new" (open) precedes "done" (completed).
	assert.Equal(t, entities.StatusOpen, Normalize("new - done soon").Key)
}

func TestNormalize_Idempotent(t *testing.T) {
	keys := append([]entities.StatusKey{entities.StatusUnknown}, DefaultTable.Keys...)
	for _, k := range keys {
		t.Run(string(k), func(t *testing.T) {
			first := Normalize(string(k))
			require.Equal(t, k, first.Key)

			byLabel := Normalize(Label(k))
			assert.Equal(t, k, byLabel.Key)
			assert.Equal(t, first.Color, byLabel.Color)

			again := Normalize(string(first.Key))
			assert.Equal(t, first, again)
		})
	}
}

func TestNormalize_Known(t *testing.T) {
	assert.True(t, Normalize("open").Known())
	assert.False(t, Normalize("mystery").Known())
}

func TestNewNormalizer_Validation(t *testing.T) {
	t.Run("default table", func(t *testing.T) {
		require.NoError(t, Validate())
	})

	t.Run("missing color for key", func(t *testing.T) {
		tbl := Table{
			Keys:     []entities.StatusKey{entities.StatusOpen},
			Colors:   map[entities.StatusKey]entities.Palette{entities.StatusUnknown: {}},
			Fallback: entities.StatusUnknown,
		}
		_, err := NewNormalizer(tbl)
		assert.Error(t, err)
	})

	t.Run("missing color for rule", func(t *testing.T) {
		tbl := Table{
			Rules:    []Rule{{Key: entities.StatusOnHold, Keywords: []string{"hold"}}},
			Colors:   map[entities.StatusKey]entities.Palette{entities.StatusUnknown: {}},
			Fallback: entities.StatusUnknown,
		}
		_, err := NewNormalizer(tbl)
		assert.Error(t, err)
	})

	t.Run("missing fallback", func(t *testing.T) {
		_, err := NewNormalizer(Table{})
		assert.Error(t, err)
	})

	t.Run("must panics", func(t *testing.T) {
		assert.Panics(t, func() { MustNewNormalizer(Table{}) })
	})
}

func TestLabelAndCSSClass(t *testing.T) {
	assert.Equal(t, "In Progress", Label(entities.StatusInProgress))
	assert.Equal(t, "On Hold", Label(entities.StatusOnHold))
	assert.Equal(t, "inprogress", CSSClass(entities.StatusInProgress))
	assert.Equal(t, "open", CSSClass(entities.StatusOpen))
}

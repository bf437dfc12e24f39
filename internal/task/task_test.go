package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsPriorityToNone(t *testing.T) {
	got := New("Buy milk", "", time.Time{}, 0)
	assert.Equal(t, PriorityNone, got.Priority)

	got = New("Buy milk", "", time.Time{}, 7)
	assert.Equal(t, PriorityNone, got.Priority)

	got = New("Buy milk", "", time.Time{}, PriorityHigh)
	assert.Equal(t, PriorityHigh, got.Priority)
}

func TestNewTrimsFields(t *testing.T) {
	got := New("  Buy milk  ", "  from the corner shop ", time.Time{}, PriorityLow)
	assert.Equal(t, "Buy milk", got.Title)
	assert.Equal(t, "from the corner shop", got.Description)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestValidateRejectsEmptyTitle(t *testing.T) {
	assert.ErrorIs(t, Task{Title: ""}.Validate(), ErrEmptyTitle)
	assert.ErrorIs(t, Task{Title: "   "}.Validate(), ErrEmptyTitle)
	assert.NoError(t, Task{Title: "Call mom"}.Validate())
}

func TestPriorityLabels(t *testing.T) {
	assert.Equal(t, "High", PriorityHigh.Label())
	assert.Equal(t, "Medium", PriorityMedium.Label())
	assert.Equal(t, "Low", PriorityLow.Label())
	assert.Equal(t, "None", PriorityNone.Label())
	assert.Equal(t, "None", Priority(0).Label())
}

func TestParseAndFormatDate(t *testing.T) {
	day, err := ParseDate("2025-07-20")
	require.NoError(t, err)
	assert.Equal(t, "2025-07-20", FormatDate(day))
	assert.Equal(t, "Sunday, 07/20/2025", DisplayDate(day))

	zero, err := ParseDate("  ")
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
	assert.Empty(t, FormatDate(zero))
	assert.Empty(t, DisplayDate(zero))

	_, err = ParseDate("07/20/2025")
	assert.Error(t, err)
}

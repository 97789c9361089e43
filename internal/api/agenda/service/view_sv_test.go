package agendaService

import (
	"testing"
	"time"

	"RotinaGolang/internal/entity"
	"RotinaGolang/pkg/nlp"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodWindow(t *testing.T) {
	today := nlp.LocalDate(time.Now(), nlp.DefaultTZOffsetMinutes)

	tests := []struct {
		period   string
		wantFrom time.Time
		wantTo   time.Time
	}{
		{"today", today, today},
		{"tomorrow", today.AddDate(0, 0, 1), today.AddDate(0, 0, 1)},
		{"week", today, today.AddDate(0, 0, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			from, to := periodWindow(tt.period, nlp.DefaultTZOffsetMinutes)
			assert.Equal(t, tt.wantFrom.Format("2006-01-02"), from.Format("2006-01-02"))
			assert.Equal(t, tt.wantTo.Format("2006-01-02"), to.Format("2006-01-02"))
		})
	}
}

func TestWindowWeekdays(t *testing.T) {
	// 2026-01-05 is a Monday.
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want []string
	}{
		{"single day", monday, monday, []string{"mon"}},
		{"three days", monday, monday.AddDate(0, 0, 2), []string{"mon", "tue", "wed"}},
		{"full week", monday, monday.AddDate(0, 0, 6), []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}},
		{"longer than a week stays at seven", monday, monday.AddDate(0, 0, 13), []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, windowWeekdays(tt.from, tt.to))
		})
	}
}

func TestExpandRoutine(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	sunday := monday.AddDate(0, 0, 6)

	item := entity.AgendaItem{
		ID:        "01JROUTINE",
		Title:     "Academia",
		Kind:      "routine",
		StartTime: "07:00",
		EndTime:   "08:00",
		Category:  "health",
		Recurring: true,
		Weekdays:  pq.StringArray{"mon", "wed"},
	}

	entries, err := expandRoutine(item, monday, sunday)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "2026-01-05", entries[0].Date)
	assert.Equal(t, "2026-01-07", entries[1].Date)

	for _, entry := range entries {
		assert.Equal(t, item.ID, entry.ItemID)
		assert.Equal(t, item.Title, entry.Title)
		assert.Equal(t, item.StartTime, entry.StartTime)
		assert.Equal(t, item.EndTime, entry.EndTime)
		assert.True(t, entry.Recurring)
	}
}

func TestExpandRoutine_SingleDayWindow(t *testing.T) {
	wednesday := time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)

	item := entity.AgendaItem{
		ID:        "01JROUTINE",
		Title:     "Inglês",
		StartTime: "19:00",
		EndTime:   "20:00",
		Recurring: true,
		Weekdays:  pq.StringArray{"wed"},
	}

	entries, err := expandRoutine(item, wednesday, wednesday)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2026-01-07", entries[0].Date)

	entries, err = expandRoutine(item, wednesday.AddDate(0, 0, 1), wednesday.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

package nlp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractDate(t *testing.T) {
	p := New()
	ref := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"hoje", "o pagamento é hoje", "2026-03-10", true},
		{"amanha", "consulta amanhã", "2026-03-11", true},
		{"depois de amanha", "viagem depois de amanhã", "2026-03-12", true},
		{"dia N ahead", "pagar dia 25", "2026-03-25", true},
		{"dia N equal to today", "pagar dia 10", "2026-03-10", true},
		{"dia N already passed rolls forward", "pagar dia 5", "2026-04-05", true},
		{"no date", "comprar pão", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.ExtractDate(tt.text, ref, DefaultTZOffsetMinutes)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractDate_MonthAndYearRollover(t *testing.T) {
	p := New()

	jan31 := time.Date(2026, time.January, 31, 12, 0, 0, 0, time.UTC)
	got, ok := p.ExtractDate("lembrete amanhã", jan31, DefaultTZOffsetMinutes)
	assert.True(t, ok)
	assert.Equal(t, "2026-02-01", got)

	dec31 := time.Date(2025, time.December, 31, 12, 0, 0, 0, time.UTC)
	got, ok = p.ExtractDate("lembrete amanhã", dec31, DefaultTZOffsetMinutes)
	assert.True(t, ok)
	assert.Equal(t, "2026-01-01", got)
}

func TestExtractDate_TimezoneOffsetShiftsToday(t *testing.T) {
	p := New()

	// 01:00 UTC is still the previous day in UTC-3.
	ref := time.Date(2026, time.March, 10, 1, 0, 0, 0, time.UTC)

	got, ok := p.ExtractDate("o que fazer hoje", ref, 180)
	assert.True(t, ok)
	assert.Equal(t, "2026-03-09", got)

	// The same instant with a zero offset stays on the UTC date.
	got, ok = p.ExtractDate("o que fazer hoje", ref, 0)
	assert.True(t, ok)
	assert.Equal(t, "2026-03-10", got)
}

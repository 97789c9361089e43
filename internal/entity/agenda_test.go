package entity

import (
	"testing"

	"RotinaGolang/internal/api/agenda"
	"RotinaGolang/pkg/nlp"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func validItem() AgendaItem {
	return AgendaItem{
		ID:        "01JTEST",
		UserID:    "user-1",
		Kind:      string(nlp.KindReminder),
		Title:     "Pagar a conta",
		Date:      "2026-01-05",
		StartTime: "14:00",
		EndTime:   "15:00",
		Origin:    string(nlp.OriginChat),
		Category:  string(nlp.CategoryPersonal),
	}
}

func TestAgendaItemValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AgendaItem)
		wantErr error
	}{
		{"valid one-off", func(a *AgendaItem) {}, nil},
		{"valid routine", func(a *AgendaItem) {
			a.Kind = string(nlp.KindRoutine)
			a.Recurring = true
			a.Date = ""
			a.Weekdays = pq.StringArray{"mon", "wed", "fri"}
		}, nil},
		{"empty title", func(a *AgendaItem) { a.Title = "" }, agenda.ErrInvalidTitle},
		{"unknown kind", func(a *AgendaItem) { a.Kind = "meeting" }, agenda.ErrInvalidKind},
		{"unknown origin", func(a *AgendaItem) { a.Origin = "sms" }, agenda.ErrInvalidOrigin},
		{"unknown category", func(a *AgendaItem) { a.Category = "leisure" }, agenda.ErrInvalidCategory},
		{"malformed start time", func(a *AgendaItem) { a.StartTime = "9:00" }, agenda.ErrInvalidTime},
		{"out of range hour", func(a *AgendaItem) { a.EndTime = "24:00" }, agenda.ErrInvalidTime},
		{"routine without weekdays", func(a *AgendaItem) {
			a.Recurring = true
			a.Weekdays = nil
		}, agenda.ErrInvalidWeekdays},
		{"routine with bad weekday token", func(a *AgendaItem) {
			a.Recurring = true
			a.Weekdays = pq.StringArray{"mon", "segunda"}
		}, agenda.ErrInvalidWeekdays},
		{"one-off without date", func(a *AgendaItem) { a.Date = "" }, agenda.ErrInvalidDate},
		{"one-off with malformed date", func(a *AgendaItem) { a.Date = "05/01/2026" }, agenda.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validItem()
			tt.mutate(&item)

			err := item.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAgendaItemValidate_RoutineSkipsDate(t *testing.T) {
	item := validItem()
	item.Kind = string(nlp.KindRoutine)
	item.Recurring = true
	item.Date = ""
	item.Weekdays = pq.StringArray{"tue"}

	assert.NoError(t, item.Validate())
}

func TestFromParsedEvent(t *testing.T) {
	event := &nlp.ParsedEvent{
		Kind:      nlp.KindRoutine,
		Title:     "Academia",
		StartTime: "07:00",
		EndTime:   "08:00",
		Recurring: true,
		Weekdays:  []nlp.Weekday{nlp.Monday, nlp.Wednesday},
		Origin:    nlp.OriginVoice,
		Category:  nlp.CategoryHealth,
	}

	item := FromParsedEvent(event, "user-7")

	assert.Equal(t, "user-7", item.UserID)
	assert.Equal(t, "routine", item.Kind)
	assert.Equal(t, "Academia", item.Title)
	assert.True(t, item.Recurring)
	assert.Equal(t, pq.StringArray{"mon", "wed"}, item.Weekdays)
	assert.Equal(t, "voice", item.Origin)
	assert.Equal(t, "health", item.Category)
	assert.Empty(t, item.ID)
}

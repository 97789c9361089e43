package nlp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Noon UTC keeps the local reference date stable for the default UTC-3 offset.
var reference = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func TestParseCommand_ReminderWithTimeAndDate(t *testing.T) {
	p := New()

	result := p.ParseCommand("lembra de pagar a conta às 14h amanhã", OriginChat, reference, DefaultTZOffsetMinutes)
	require.NotNil(t, result.Event)
	require.Nil(t, result.Query)

	event := result.Event
	assert.Equal(t, KindReminder, event.Kind)
	assert.Equal(t, "Pagar a conta", event.Title)
	assert.Equal(t, "14:00", event.StartTime)
	assert.Equal(t, "15:00", event.EndTime)
	assert.Equal(t, "2026-03-11", event.Date)
	assert.False(t, event.Recurring)
	assert.Equal(t, OriginChat, event.Origin)
}

func TestParseCommand_WeekdayRangeRoutine(t *testing.T) {
	p := New()

	result := p.ParseCommand("toda segunda a sexta reunião às 9h até as 10h", OriginChat, reference, DefaultTZOffsetMinutes)
	require.NotNil(t, result.Event)

	event := result.Event
	assert.Equal(t, KindRoutine, event.Kind)
	assert.Equal(t, "Reunião", event.Title)
	assert.Equal(t, "09:00", event.StartTime)
	assert.Equal(t, "10:00", event.EndTime)
	assert.True(t, event.Recurring)
	assert.Empty(t, event.Date)
	assert.Equal(t, []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}, event.Weekdays)
}

func TestParseCommand_MultipleWeekdaysImplyRecurrence(t *testing.T) {
	p := New()

	result := p.ParseCommand("academia segunda, quarta e sexta às 7 da manhã", OriginVoice, reference, DefaultTZOffsetMinutes)
	require.NotNil(t, result.Event)

	event := result.Event
	assert.Equal(t, CategoryHealth, event.Category)
	assert.True(t, event.Recurring)
	assert.Equal(t, "07:00", event.StartTime)
	assert.ElementsMatch(t, []Weekday{Monday, Wednesday, Friday}, event.Weekdays)
	assert.Equal(t, "Academia", event.Title)
	assert.Equal(t, OriginVoice, event.Origin)
}

func TestParseCommand_QueryShortCircuits(t *testing.T) {
	p := New()

	assert.True(t, p.IsQueryCommand("o que eu tenho hoje"))
	assert.False(t, p.IsCreationCommand("o que eu tenho hoje"))

	result := p.ParseCommand("o que eu tenho hoje", OriginChat, reference, DefaultTZOffsetMinutes)
	require.Nil(t, result.Event)
	require.NotNil(t, result.Query)
	assert.Equal(t, PeriodToday, result.Query.Period)
}

func TestParseCommand_QueryPeriods(t *testing.T) {
	p := New()

	tests := []struct {
		text   string
		period QueryPeriod
	}{
		{"minha agenda de amanhã", PeriodTomorrow},
		{"mostre minhas rotinas da semana", PeriodWeek},
		{"o que tenho hoje", PeriodToday},
	}

	for _, tt := range tests {
		result := p.ParseCommand(tt.text, OriginChat, reference, DefaultTZOffsetMinutes)
		require.NotNil(t, result.Query, tt.text)
		assert.Equal(t, tt.period, result.Query.Period, tt.text)
	}
}

func TestParseCommand_EmptyInputDefaults(t *testing.T) {
	p := New()

	for _, text := range []string{"", "   "} {
		result := p.ParseCommand(text, OriginManual, reference, DefaultTZOffsetMinutes)
		require.NotNil(t, result.Event)

		event := result.Event
		assert.Equal(t, "Lembrete", event.Title)
		assert.Equal(t, "09:00", event.StartTime)
		assert.Equal(t, "10:00", event.EndTime)
		assert.Equal(t, "2026-03-10", event.Date)
		assert.Equal(t, KindAgenda, event.Kind)
		assert.Equal(t, CategoryPersonal, event.Category)
	}
}

func TestParseCommand_DefaultTimesWhenNoneRecognized(t *testing.T) {
	p := New()

	result := p.ParseCommand("lembra de comprar pão", OriginChat, reference, DefaultTZOffsetMinutes)
	require.NotNil(t, result.Event)
	assert.Equal(t, "09:00", result.Event.StartTime)
	assert.Equal(t, "10:00", result.Event.EndTime)
	assert.Equal(t, "2026-03-10", result.Event.Date)
}

func TestParseCommand_RecurringWithoutWeekdaysDefaultsMonFri(t *testing.T) {
	p := New()

	result := p.ParseCommand("criar rotina de leitura às 21h", OriginChat, reference, DefaultTZOffsetMinutes)
	require.NotNil(t, result.Event)
	assert.True(t, result.Event.Recurring)
	assert.Equal(t, []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}, result.Event.Weekdays)
}

func TestParseCommand_EndTimeWrapsPastMidnight(t *testing.T) {
	p := New()

	result := p.ParseCommand("festa às 23h", OriginChat, reference, DefaultTZOffsetMinutes)
	require.NotNil(t, result.Event)
	assert.Equal(t, "23:00", result.Event.StartTime)
	assert.Equal(t, "00:00", result.Event.EndTime)
}

func TestIsCreationCommand(t *testing.T) {
	p := New()

	assert.True(t, p.IsCreationCommand("lembra de pagar a conta"))
	assert.True(t, p.IsCreationCommand("reunião amanhã às 10h"))
	assert.True(t, p.IsCreationCommand("academia segunda e quarta"))
	assert.False(t, p.IsCreationCommand("o que eu tenho hoje"))
	assert.False(t, p.IsCreationCommand(""))
	assert.False(t, p.IsCreationCommand("bom dia, tudo bem?"))
}

func TestFormatForDisplay(t *testing.T) {
	p := New()

	routine := &ParsedEvent{
		Kind:      KindRoutine,
		Title:     "Reunião",
		StartTime: "09:00",
		EndTime:   "10:00",
		Recurring: true,
		Weekdays:  []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday},
	}
	assert.Equal(t, "Rotina 'Reunião' criada para segunda a sexta, das 09:00 às 10:00", p.FormatForDisplay(routine))

	reminder := &ParsedEvent{
		Kind:      KindReminder,
		Title:     "Pagar a conta",
		Date:      "2026-03-11",
		StartTime: "14:00",
		EndTime:   "15:00",
	}
	assert.Equal(t, "Lembrete 'Pagar a conta' agendado para 11/03/2026, das 14:00 às 15:00", p.FormatForDisplay(reminder))

	assert.Equal(t, "", p.FormatForDisplay(nil))
}

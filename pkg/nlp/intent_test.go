package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	p := New()

	tests := []struct {
		name      string
		text      string
		kind      Kind
		recurring bool
	}{
		{"explicit rotina", "adiciona na rotina tomar água", KindRoutine, true},
		{"reminder verb", "lembra de pagar a conta", KindReminder, false},
		{"event keyword", "reunião com o cliente amanhã", KindEvent, false},
		{"recurrence beats event keyword", "toda segunda a sexta reunião às 9h", KindRoutine, true},
		{"toda weekday recurs", "toda segunda academia", KindRoutine, true},
		{"bare weekday does not recur", "academia segunda às 7h", KindAgenda, false},
		{"multiple weekdays recur", "academia segunda e quarta", KindRoutine, true},
		{"todo dia recurs", "todo dia alongamento", KindRoutine, true},
		{"default agenda", "dentista dia 15", KindAgenda, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, recurring := p.Classify(tt.text)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.recurring, recurring)
		})
	}
}

func TestIsQueryCommand(t *testing.T) {
	p := New()

	queries := []string{
		"o que tenho hoje",
		"o que eu tenho amanhã",
		"minha agenda de amanhã",
		"mostre minhas rotinas",
		"quais os compromissos da semana",
		"ver agenda",
	}
	for _, q := range queries {
		assert.True(t, p.IsQueryCommand(q), q)
	}

	notQueries := []string{
		"lembra de pagar a conta às 14h",
		"toda segunda a sexta reunião",
		"academia amanhã",
	}
	for _, q := range notQueries {
		assert.False(t, p.IsQueryCommand(q), q)
	}
}

package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractStartTime(t *testing.T) {
	p := New()

	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"explicit preposition with h", "pagar a conta às 14h", "14:00", true},
		{"explicit preposition with minutes", "reunião as 9:30", "09:30", true},
		{"hour with unit no preposition", "consulta 15 horas", "15:00", true},
		{"meio-dia literal", "almoço ao meio-dia", "12:00", true},
		{"meia-noite literal", "plantão meia-noite", "00:00", true},
		{"word number morning", "academia às sete da manhã", "07:00", true},
		{"word number evening gets +12", "jantar oito da noite", "20:00", true},
		{"half past word number", "acordar seis e meia", "06:30", true},
		{"half past with period", "cinema oito e meia da noite", "20:30", true},
		{"range start", "trabalho das 9 às 18h", "09:00", true},
		{"bare number fallback", "remédio 22", "22:00", true},
		{"bare number with h", "treino 7h", "07:00", true},
		{"day number is not a time", "pagar dia 15", "", false},
		{"until bound is not a start", "terminar até as 10h", "", false},
		{"hour out of range", "às 25h", "", false},
		{"no time at all", "comprar pão", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.ExtractStartTime(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractEndTime(t *testing.T) {
	p := New()

	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"range", "trabalho das 9 às 18h", "18:00", true},
		{"range with de", "plantão de 8 até 12", "12:00", true},
		{"until with as", "reunião às 9h até as 10h", "10:00", true},
		{"until bare", "estudar até 23", "23:00", true},
		{"no end bound", "reunião às 9h", "", false},
		{"no time at all", "comprar pão", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.ExtractEndTime(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddOneHour(t *testing.T) {
	assert.Equal(t, "10:00", addOneHour("09:00"))
	assert.Equal(t, "00:30", addOneHour("23:30"))
	assert.Equal(t, "13:45", addOneHour("12:45"))
}

package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractWeekdays(t *testing.T) {
	p := New()

	tests := []struct {
		name string
		text string
		want []Weekday
	}{
		{"mon to fri range", "segunda a sexta", []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}},
		{"every day", "todos os dias", weekdayOrder},
		{"single day", "reunião na quarta", []Weekday{Wednesday}},
		{"full form", "terça-feira", []Weekday{Tuesday}},
		{"accented and plain are equal", "sábado e domingo", []Weekday{Saturday, Sunday}},
		{"list with connectors", "segunda, quarta e sexta", []Weekday{Monday, Wednesday, Friday}},
		{"duplicates collapse", "segunda e segunda-feira", []Weekday{Monday}},
		{"none", "comprar pão", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ExtractWeekdays(tt.text))
		})
	}
}

func TestExtractWeekdays_OrderIndependent(t *testing.T) {
	p := New()

	a := p.ExtractWeekdays("sexta e segunda")
	b := p.ExtractWeekdays("segunda e sexta")
	assert.Equal(t, a, b)
	assert.ElementsMatch(t, []Weekday{Monday, Friday}, a)
}

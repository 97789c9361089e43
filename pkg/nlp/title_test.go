package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTitle(t *testing.T) {
	p := New()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"reminder verb stripped", "lembra de pagar a conta às 14h amanhã", "Pagar a conta"},
		{"me lembra variant", "me lembra de ligar para o dentista hoje", "Ligar para o dentista"},
		{"routine prefix stripped", "criar rotina diária de treino às 7h", "Treino"},
		{"weekday range stripped", "toda segunda a sexta reunião às 9h até as 10h", "Reunião"},
		{"accent kept in residue", "agendar reunião amanhã", "Reunião"},
		{"weekday list stripped", "academia segunda, quarta e sexta às 7 da manhã", "Academia"},
		{"day number stripped", "pagar o aluguel dia 5", "Pagar o aluguel"},
		{"midday stripped", "almoço com a equipe meio-dia", "Almoço com a equipe"},
		{"empty falls back", "", "Lembrete"},
		{"only fragments fall back", "amanhã às 14h", "Lembrete"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ExtractTitle(tt.text))
		})
	}
}

func TestInferCategory(t *testing.T) {
	p := New()

	tests := []struct {
		text string
		want Category
	}{
		{"reunião com o cliente", CategoryWork},
		{"aula de matemática", CategoryStudy},
		{"consulta no médico", CategoryHealth},
		{"academia às 7h", CategoryHealth},
		{"comprar pão", CategoryPersonal},
		{"", CategoryPersonal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, p.InferCategory(tt.text), tt.text)
	}
}

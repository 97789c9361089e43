package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	p := New()

	assert.Equal(t, "terca-feira as 14h", p.Normalize("Terça-feira às 14h"))
	assert.Equal(t, "reuniao amanha de manha", p.Normalize("Reunião AMANHÃ de manhã"))
	assert.Equal(t, "sabado 9:30", p.Normalize("  sábado   9:30  "))
	assert.Equal(t, "", p.Normalize("   "))
}

func TestNormalize_Idempotent(t *testing.T) {
	p := New()

	inputs := []string{
		"Terça às 14h",
		"toda segunda a sexta REUNIÃO",
		"meio-dia",
		"çãéíóú",
		"",
	}

	for _, in := range inputs {
		once := p.Normalize(in)
		assert.Equal(t, once, p.Normalize(once), in)
	}
}

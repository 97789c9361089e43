package assistantService

import (
	"testing"

	"RotinaGolang/internal/api/agenda"

	"github.com/stretchr/testify/assert"
)

func TestFormatViewReply(t *testing.T) {
	entries := []agenda.ViewEntry{
		{Date: "2026-01-05", StartTime: "09:00", EndTime: "10:00", Title: "Reunião"},
		{Date: "2026-01-07", StartTime: "19:00", EndTime: "20:00", Title: "Inglês"},
	}

	reply := formatViewReply("week", entries)

	assert.Contains(t, reply, "Você tem 2 compromissos para esta semana:")
	assert.Contains(t, reply, "- 05/01 das 09:00 às 10:00: Reunião")
	assert.Contains(t, reply, "- 07/01 das 19:00 às 20:00: Inglês")
}

func TestFormatViewReply_Singular(t *testing.T) {
	entries := []agenda.ViewEntry{
		{Date: "2026-01-06", StartTime: "14:00", EndTime: "15:00", Title: "Dentista"},
	}

	reply := formatViewReply("tomorrow", entries)

	assert.Contains(t, reply, "Você tem 1 compromisso para amanhã:")
	assert.Contains(t, reply, "- 06/01 das 14:00 às 15:00: Dentista")
}

func TestFormatViewReply_Empty(t *testing.T) {
	assert.Equal(t, "Você não tem nada agendado para hoje.", formatViewReply("today", nil))
}

func TestFormatViewReply_UnknownPeriodFallsThrough(t *testing.T) {
	reply := formatViewReply("month", nil)
	assert.Equal(t, "Você não tem nada agendado para month.", reply)
}

package nlp

import (
	"fmt"
	"strings"
	"time"
)

// ParseCommand is the single entry point of the pipeline. It never reads the
// system clock: reference and tzOffsetMinutes come from the caller so results
// stay deterministic (pass DefaultTZOffsetMinutes when the client sent none).
//
// Queries short-circuit into a QueryIntent; everything else assembles a
// ParsedEvent with the documented defaults. Absence of a recognizable
// fragment is never an error.
func (p *parser) ParseCommand(text string, origin Origin, reference time.Time, tzOffsetMinutes int) ParseResult {
	if p.IsQueryCommand(text) {
		return ParseResult{Query: &QueryIntent{Period: queryPeriod(p.Normalize(text))}}
	}

	kind, recurring := p.Classify(text)

	startTime, ok := p.ExtractStartTime(text)
	if !ok {
		startTime = defaultStartTime
	}
	endTime, ok := p.ExtractEndTime(text)
	if !ok {
		endTime = addOneHour(startTime)
	}

	event := &ParsedEvent{
		Kind:      kind,
		Title:     p.ExtractTitle(text),
		StartTime: startTime,
		EndTime:   endTime,
		Recurring: recurring,
		Origin:    origin,
		Category:  p.InferCategory(text),
	}

	if recurring {
		event.Weekdays = p.ExtractWeekdays(text)
		if len(event.Weekdays) == 0 {
			event.Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}
		}
	} else {
		date, ok := p.ExtractDate(text, reference, tzOffsetMinutes)
		if !ok {
			date = referenceDate(reference, tzOffsetMinutes).Format(dateLayout)
		}
		event.Date = date
	}

	return ParseResult{Event: event}
}

var kindDisplay = map[Kind]string{
	KindRoutine:  "Rotina",
	KindAgenda:   "Agenda",
	KindReminder: "Lembrete",
	KindEvent:    "Evento",
}

// FormatForDisplay builds the pt-BR confirmation sentence shown to the user
// (and sent over WhatsApp) after a command is accepted.
func (p *parser) FormatForDisplay(event *ParsedEvent) string {
	if event == nil {
		return ""
	}

	label := kindDisplay[event.Kind]
	if label == "" {
		label = kindDisplay[KindAgenda]
	}

	if event.Recurring {
		return fmt.Sprintf("%s '%s' criada para %s, das %s às %s",
			label, event.Title, displayWeekdays(event.Weekdays), event.StartTime, event.EndTime)
	}

	date := event.Date
	if d, err := time.Parse(dateLayout, event.Date); err == nil {
		date = d.Format("02/01/2006")
	}

	return fmt.Sprintf("%s '%s' agendado para %s, das %s às %s",
		label, event.Title, date, event.StartTime, event.EndTime)
}

func displayWeekdays(days []Weekday) string {
	if len(days) == 7 {
		return "todos os dias"
	}
	if len(days) == 5 && days[0] == Monday && days[4] == Friday {
		return "segunda a sexta"
	}

	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, weekdayDisplay[d])
	}

	if len(names) > 1 {
		return strings.Join(names[:len(names)-1], ", ") + " e " + names[len(names)-1]
	}
	return strings.Join(names, "")
}

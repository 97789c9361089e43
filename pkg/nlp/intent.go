package nlp

import (
	"regexp"
	"strings"
)

var (
	reReminderKeyword = regexp.MustCompile(`\blembr\w*\b`)
	reEventKeyword    = regexp.MustCompile(`\bevento\b|\breuniao\b|\bcompromisso\b|\bcall\b|\bmeeting\b`)
)

// Classify decides the kind of record the utterance creates and whether it
// recurs. The recurrence heuristic outranks the event keywords: "toda segunda
// a sexta reunião" is a routine, not an event.
func (p *parser) Classify(text string) (Kind, bool) {
	n := p.Normalize(text)
	recurring := p.isRecurring(n)

	var kind Kind
	switch {
	case strings.Contains(n, "rotina"):
		kind = KindRoutine
	case reReminderKeyword.MatchString(n):
		kind = KindReminder
	case recurring:
		kind = KindRoutine
	case reEventKeyword.MatchString(n):
		kind = KindEvent
	default:
		kind = KindAgenda
	}

	return kind, recurring
}

// isRecurring is intentionally conservative: "toda segunda" recurs, a bare
// "segunda" is the next occurrence. More than one weekday implies recurrence.
func (p *parser) isRecurring(normalized string) bool {
	if strings.Contains(normalized, "rotina") {
		return true
	}
	if reEveryDay.MatchString(normalized) {
		return true
	}
	if reMonToFri.MatchString(normalized) {
		return true
	}
	if reRecurringDay.MatchString(normalized) {
		return true
	}
	return len(p.ExtractWeekdays(normalized)) > 1
}

// IsQueryCommand reports whether the utterance asks to retrieve existing
// schedule data ("o que tenho hoje") rather than create something. Queries
// short-circuit the whole creation pipeline.
func (p *parser) IsQueryCommand(text string) bool {
	n := p.Normalize(text)
	for _, re := range queryPatterns {
		if re.MatchString(n) {
			return true
		}
	}
	return false
}

// IsCreationCommand is the pre-filter callers use before running a full parse.
func (p *parser) IsCreationCommand(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	if p.IsQueryCommand(text) {
		return false
	}

	n := p.Normalize(text)
	if reCreationKeyword.MatchString(n) {
		return true
	}
	if reDateWord.MatchString(n) {
		return true
	}
	if _, ok := p.ExtractStartTime(text); ok {
		return true
	}
	return len(p.ExtractWeekdays(text)) > 0
}

func queryPeriod(normalized string) QueryPeriod {
	switch {
	case strings.Contains(normalized, "amanha"):
		return PeriodTomorrow
	case strings.Contains(normalized, "semana"):
		return PeriodWeek
	default:
		return PeriodToday
	}
}

package nlp

import (
	"fmt"
	"regexp"
	"strconv"
)

// Every recognizer is an ordered (pattern, extractor) list evaluated
// first-match-wins, so new phrasings are added as table rows.
type timeRule struct {
	re      *regexp.Regexp
	extract func(m []string) (string, bool)
}

var (
	reMidday    = regexp.MustCompile(`\bmeio[- ]dia\b`)
	reMidnight  = regexp.MustCompile(`\bmeia[- ]noite\b`)
	reHalfPast  = regexp.MustCompile(`\b(` + wordNumberPattern + `) e meia(?: da (manha|tarde|noite))?\b`)
	reRangeFrom = regexp.MustCompile(`\bd(?:as|e) (\d{1,2})(?::(\d{2}))?\s*(?:horas|h)?\s+(?:as|ate)\b`)
	reAtHour    = regexp.MustCompile(`\bas (\d{1,2})(?::(\d{2}))?(?:\s*(?:horas|hora|h))?\b`)
	reHourUnit  = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*(?:horas|hora|h)\b`)
	reWordHour  = regexp.MustCompile(`\b(` + wordNumberPattern + `) da (manha|tarde|noite)\b`)
	reBareTime  = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?h?\b`)
	reRangeTo   = regexp.MustCompile(`\bd(?:as|e) \d{1,2}(?::\d{2})?\s*(?:horas|h)?\s+(?:as|ate) (?:as )?(\d{1,2})(?::(\d{2}))?\s*(?:horas|h)?\b`)
	reUntil     = regexp.MustCompile(`\bate (?:as )?(\d{1,2})(?::(\d{2}))?\s*(?:horas|h)?\b`)
	reDayNumber = regexp.MustCompile(`\bdia (\d{1,2})\b`)
)

var startTimeRules = []timeRule{
	{reMidday, func(_ []string) (string, bool) { return "12:00", true }},
	{reMidnight, func(_ []string) (string, bool) { return "00:00", true }},
	{reHalfPast, func(m []string) (string, bool) { return wordClock(m[1], m[2], 30) }},
	{reRangeFrom, func(m []string) (string, bool) { return clockFromDigits(m[1], m[2]) }},
	{reAtHour, func(m []string) (string, bool) { return clockFromDigits(m[1], m[2]) }},
	{reHourUnit, func(m []string) (string, bool) { return clockFromDigits(m[1], m[2]) }},
	{reWordHour, func(m []string) (string, bool) { return wordClock(m[1], m[2], 0) }},
}

var endTimeRules = []timeRule{
	{reRangeTo, func(m []string) (string, bool) { return clockFromDigits(m[1], m[2]) }},
	{reUntil, func(m []string) (string, bool) { return clockFromDigits(m[1], m[2]) }},
}

// ExtractStartTime finds the start of the time window, or reports false when
// the text carries no recognizable time. It never errors.
func (p *parser) ExtractStartTime(text string) (string, bool) {
	n := p.Normalize(text)

	// "até as 10h" is an upper bound, its digits must not be read as a start.
	scan := reUntil.ReplaceAllString(n, " ")

	for _, rule := range startTimeRules {
		if m := rule.re.FindStringSubmatch(scan); m != nil {
			if hm, ok := rule.extract(m); ok {
				return hm, true
			}
		}
	}

	// Last resort: a bare number, excluding digits that belong to a "dia N"
	// date expression.
	scan = reDayNumber.ReplaceAllString(scan, " ")
	if m := reBareTime.FindStringSubmatch(scan); m != nil {
		if hm, ok := clockFromDigits(m[1], m[2]); ok {
			return hm, true
		}
	}

	return "", false
}

// ExtractEndTime recognizes only explicit upper bounds: "das 9 às 10" ranges
// and "até [as] 10h". Everything else defaults downstream to start + 1h.
func (p *parser) ExtractEndTime(text string) (string, bool) {
	n := p.Normalize(text)

	for _, rule := range endTimeRules {
		if m := rule.re.FindStringSubmatch(n); m != nil {
			if hm, ok := rule.extract(m); ok {
				return hm, true
			}
		}
	}

	return "", false
}

func clockFromDigits(hourStr, minuteStr string) (string, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour > 23 {
		return "", false
	}

	minute := 0
	if minuteStr != "" {
		minute, err = strconv.Atoi(minuteStr)
		if err != nil || minute > 59 {
			return "", false
		}
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), true
}

func wordClock(word, period string, minute int) (string, bool) {
	hour, ok := wordNumbers[word]
	if !ok {
		return "", false
	}

	if (period == "tarde" || period == "noite") && hour < 12 {
		hour += 12
	}
	if hour > 23 {
		return "", false
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), true
}

func addOneHour(clock string) string {
	if len(clock) != 5 {
		return clock
	}
	hour, err := strconv.Atoi(clock[:2])
	if err != nil {
		return clock
	}
	return fmt.Sprintf("%02d:%s", (hour+1)%24, clock[3:])
}

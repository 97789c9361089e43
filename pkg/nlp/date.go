package nlp

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// referenceDate shifts the caller-supplied UTC instant by the caller's
// timezone offset and truncates to a calendar date. The server's own locale
// never participates, so "hoje" is the user's today even across day
// boundaries.
func referenceDate(reference time.Time, tzOffsetMinutes int) time.Time {
	local := reference.UTC().Add(-time.Duration(tzOffsetMinutes) * time.Minute)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// LocalDate exposes the same calendar-date shift to callers that need the
// user's current day (period views, reminder dispatch).
func LocalDate(reference time.Time, tzOffsetMinutes int) time.Time {
	return referenceDate(reference, tzOffsetMinutes)
}

// ExtractDate resolves relative date words to an absolute YYYY-MM-DD. Only
// "hoje", "amanhã", "depois de amanhã" and "dia N" are recognized; absolute
// formats like "15/03" are deliberately out of scope.
func (p *parser) ExtractDate(text string, reference time.Time, tzOffsetMinutes int) (string, bool) {
	n := p.Normalize(text)
	ref := referenceDate(reference, tzOffsetMinutes)

	switch {
	case strings.Contains(n, "hoje"):
		return ref.Format(dateLayout), true
	// "depois de amanha" contains "amanha", so it has to be tested first.
	case strings.Contains(n, "depois de amanha"):
		return ref.AddDate(0, 0, 2).Format(dateLayout), true
	case strings.Contains(n, "amanha"):
		return ref.AddDate(0, 0, 1).Format(dateLayout), true
	}

	if m := reDayNumber.FindStringSubmatch(n); m != nil {
		day := 0
		for _, r := range m[1] {
			day = day*10 + int(r-'0')
		}
		if day >= 1 && day <= 31 {
			month := ref.Month()
			year := ref.Year()
			if day < ref.Day() {
				// That day already passed this month, roll forward.
				month++
			}
			d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
			return d.Format(dateLayout), true
		}
	}

	return "", false
}

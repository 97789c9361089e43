package nlp

// ExtractWeekdays returns the weekday set mentioned in the text, de-duplicated
// and in canonical mon..sun order. Multi-day phrases are checked before the
// per-day scan.
func (p *parser) ExtractWeekdays(text string) []Weekday {
	n := p.Normalize(text)

	if reEveryDay.MatchString(n) {
		return append([]Weekday(nil), weekdayOrder...)
	}
	if reMonToFri.MatchString(n) {
		return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}
	}

	found := make(map[Weekday]bool)
	for _, wp := range weekdayPatterns {
		if wp.re.MatchString(n) {
			found[wp.day] = true
		}
	}

	var days []Weekday
	for _, d := range weekdayOrder {
		if found[d] {
			days = append(days, d)
		}
	}

	return days
}

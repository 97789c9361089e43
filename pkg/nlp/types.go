package nlp

import "time"

type Origin string

const (
	OriginChat   Origin = "chat"
	OriginVoice  Origin = "voice"
	OriginManual Origin = "manual"
)

type Kind string

const (
	KindRoutine  Kind = "routine"
	KindAgenda   Kind = "agenda"
	KindReminder Kind = "reminder"
	KindEvent    Kind = "event"
)

type Category string

const (
	CategoryWork     Category = "work"
	CategoryStudy    Category = "study"
	CategoryPersonal Category = "personal"
	CategoryHealth   Category = "health"
)

type Weekday string

const (
	Monday    Weekday = "mon"
	Tuesday   Weekday = "tue"
	Wednesday Weekday = "wed"
	Thursday  Weekday = "thu"
	Friday    Weekday = "fri"
	Saturday  Weekday = "sat"
	Sunday    Weekday = "sun"
)

type QueryPeriod string

const (
	PeriodToday    QueryPeriod = "today"
	PeriodTomorrow QueryPeriod = "tomorrow"
	PeriodWeek     QueryPeriod = "week"
)

// DefaultTZOffsetMinutes is applied when the caller does not send a timezone
// offset. 180 minutes is UTC-3 (Brasília). Sign convention follows JS
// Date.getTimezoneOffset: local time = UTC - offset.
const DefaultTZOffsetMinutes = 180

const (
	defaultTitle     = "Lembrete"
	defaultStartTime = "09:00"
)

// ParsedEvent is the structured record produced for a creation command.
type ParsedEvent struct {
	Kind      Kind      `json:"kind"`
	Title     string    `json:"title"`
	Date      string    `json:"date,omitempty"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Recurring bool      `json:"recurring"`
	Weekdays  []Weekday `json:"weekdays,omitempty"`
	Origin    Origin    `json:"origin"`
	Category  Category  `json:"category"`
}

// QueryIntent is produced instead of a ParsedEvent when the utterance asks to
// retrieve existing schedule data.
type QueryIntent struct {
	Period QueryPeriod `json:"period"`
}

// ParseResult carries exactly one of Event or Query.
type ParseResult struct {
	Event *ParsedEvent `json:"event,omitempty"`
	Query *QueryIntent `json:"query,omitempty"`
}

type IParser interface {
	ParseCommand(text string, origin Origin, reference time.Time, tzOffsetMinutes int) ParseResult
	IsCreationCommand(text string) bool
	IsQueryCommand(text string) bool
	FormatForDisplay(event *ParsedEvent) string

	Normalize(text string) string
	ExtractStartTime(text string) (string, bool)
	ExtractEndTime(text string) (string, bool)
	ExtractDate(text string, reference time.Time, tzOffsetMinutes int) (string, bool)
	ExtractWeekdays(text string) []Weekday
	ExtractTitle(text string) string
	Classify(text string) (Kind, bool)
	InferCategory(text string) Category
}

type parser struct{}

func New() IParser {
	return &parser{}
}

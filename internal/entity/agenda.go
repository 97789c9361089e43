package entity

import (
	"regexp"
	"time"

	"RotinaGolang/internal/api/agenda"
	"RotinaGolang/pkg/nlp"

	"github.com/lib/pq"
)

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func IsValidKind(kind string) bool {
	switch nlp.Kind(kind) {
	case nlp.KindRoutine, nlp.KindAgenda, nlp.KindReminder, nlp.KindEvent:
		return true
	default:
		return false
	}
}

func IsValidOrigin(origin string) bool {
	switch nlp.Origin(origin) {
	case nlp.OriginChat, nlp.OriginVoice, nlp.OriginManual:
		return true
	default:
		return false
	}
}

func IsValidCategory(category string) bool {
	switch nlp.Category(category) {
	case nlp.CategoryWork, nlp.CategoryStudy, nlp.CategoryPersonal, nlp.CategoryHealth:
		return true
	default:
		return false
	}
}

func IsValidWeekday(day string) bool {
	switch nlp.Weekday(day) {
	case nlp.Monday, nlp.Tuesday, nlp.Wednesday, nlp.Thursday, nlp.Friday, nlp.Saturday, nlp.Sunday:
		return true
	default:
		return false
	}
}

type AgendaItem struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Kind      string         `json:"kind"`
	Title     string         `json:"title"`
	Date      string         `json:"date,omitempty"`
	StartTime string         `json:"start_time"`
	EndTime   string         `json:"end_time"`
	Recurring bool           `json:"recurring"`
	Weekdays  pq.StringArray `json:"weekdays,omitempty"`
	Origin    string         `json:"origin"`
	Category  string         `json:"category"`
	AudioLink string         `json:"audio_link,omitempty"`
	Notified  bool           `json:"notified"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (a *AgendaItem) Validate() error {
	if a.Title == "" {
		return agenda.ErrInvalidTitle
	}
	if !IsValidKind(a.Kind) {
		return agenda.ErrInvalidKind
	}
	if !IsValidOrigin(a.Origin) {
		return agenda.ErrInvalidOrigin
	}
	if !IsValidCategory(a.Category) {
		return agenda.ErrInvalidCategory
	}
	if !clockPattern.MatchString(a.StartTime) || !clockPattern.MatchString(a.EndTime) {
		return agenda.ErrInvalidTime
	}

	if a.Recurring {
		if len(a.Weekdays) == 0 {
			return agenda.ErrInvalidWeekdays
		}
		for _, day := range a.Weekdays {
			if !IsValidWeekday(day) {
				return agenda.ErrInvalidWeekdays
			}
		}
		return nil
	}

	if _, err := time.Parse("2006-01-02", a.Date); err != nil {
		return agenda.ErrInvalidDate
	}

	return nil
}

// FromParsedEvent maps a parser result into a persistable item. The ID and
// timestamps are filled by the service.
func FromParsedEvent(event *nlp.ParsedEvent, userID string) AgendaItem {
	weekdays := make(pq.StringArray, 0, len(event.Weekdays))
	for _, d := range event.Weekdays {
		weekdays = append(weekdays, string(d))
	}

	return AgendaItem{
		UserID:    userID,
		Kind:      string(event.Kind),
		Title:     event.Title,
		Date:      event.Date,
		StartTime: event.StartTime,
		EndTime:   event.EndTime,
		Recurring: event.Recurring,
		Weekdays:  weekdays,
		Origin:    string(event.Origin),
		Category:  string(event.Category),
	}
}

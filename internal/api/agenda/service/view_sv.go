package agendaService

import (
	"sort"
	"time"

	"RotinaGolang/internal/api/agenda"
	"RotinaGolang/internal/entity"
	contextPkg "RotinaGolang/pkg/context"
	"RotinaGolang/pkg/nlp"
	redisPkg "RotinaGolang/pkg/redis"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/teambition/rrule-go"
	"golang.org/x/net/context"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var rruleWeekday = map[string]rrule.Weekday{
	"mon": rrule.MO,
	"tue": rrule.TU,
	"wed": rrule.WE,
	"thu": rrule.TH,
	"fri": rrule.FR,
	"sat": rrule.SA,
	"sun": rrule.SU,
}

var weekdayToken = map[time.Weekday]string{
	time.Monday:    "mon",
	time.Tuesday:   "tue",
	time.Wednesday: "wed",
	time.Thursday:  "thu",
	time.Friday:    "fri",
	time.Saturday:  "sat",
	time.Sunday:    "sun",
}

func (s *agendaService) GetView(ctx context.Context, userID string, period string, tzOffsetMinutes int) (agenda.ViewResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if period != "today" && period != "tomorrow" && period != "week" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"period":     period,
		}).Warn("Invalid view period")
		return agenda.ViewResponse{}, agenda.ErrInvalidPeriod
	}

	if cached, err := s.redis.GetView(ctx, userID, period); err == nil && cached != "" {
		var view agenda.ViewResponse
		if err := json.UnmarshalFromString(cached, &view); err == nil {
			return view, nil
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"period":     period,
		}).Warn("Corrupt cached view, rebuilding")
	}

	from, to := periodWindow(period, tzOffsetMinutes)

	repo, err := s.agendaRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return agenda.ViewResponse{}, err
	}

	oneOffs, err := repo.Agenda.GetItemsInRange(ctx, userID, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get items in range")
		return agenda.ViewResponse{}, err
	}

	routines, err := repo.Agenda.GetRoutinesByWeekdays(ctx, userID, windowWeekdays(from, to))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get routines")
		return agenda.ViewResponse{}, err
	}

	entries := make([]agenda.ViewEntry, 0, len(oneOffs)+len(routines))

	for _, item := range oneOffs {
		entries = append(entries, agenda.ViewEntry{
			ItemID:    item.ID,
			Date:      item.Date,
			StartTime: item.StartTime,
			EndTime:   item.EndTime,
			Title:     item.Title,
			Kind:      item.Kind,
			Category:  item.Category,
			Recurring: false,
		})
	}

	for _, item := range routines {
		occurrences, err := expandRoutine(item, from, to)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"item_id":    item.ID,
				"error":      err.Error(),
			}).Warn("Failed to expand routine, skipping")
			continue
		}
		entries = append(entries, occurrences...)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date < entries[j].Date
		}
		if entries[i].StartTime != entries[j].StartTime {
			return entries[i].StartTime < entries[j].StartTime
		}
		return entries[i].ItemID < entries[j].ItemID
	})

	view := agenda.ViewResponse{
		Period:  period,
		From:    from.Format("2006-01-02"),
		To:      to.Format("2006-01-02"),
		Entries: entries,
	}

	if payload, err := json.MarshalToString(view); err == nil {
		if err := s.redis.SetView(ctx, userID, period, payload, redisPkg.ViewCacheTTL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    userID,
				"period":     period,
			}).Warn("Failed to cache view")
		}
	}

	return view, nil
}

// periodWindow resolves a period token to an inclusive calendar date range in
// the user's timezone.
func periodWindow(period string, tzOffsetMinutes int) (time.Time, time.Time) {
	today := nlp.LocalDate(time.Now(), tzOffsetMinutes)

	switch period {
	case "tomorrow":
		d := today.AddDate(0, 0, 1)
		return d, d
	case "week":
		return today, today.AddDate(0, 0, 6)
	default:
		return today, today
	}
}

func windowWeekdays(from time.Time, to time.Time) []string {
	seen := make(map[string]bool, 7)
	days := make([]string, 0, 7)

	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		token := weekdayToken[d.Weekday()]
		if !seen[token] {
			seen[token] = true
			days = append(days, token)
		}
		if len(days) == 7 {
			break
		}
	}

	return days
}

// expandRoutine turns a recurring item into one view entry per day of the
// window matching its weekday set.
func expandRoutine(item entity.AgendaItem, from time.Time, to time.Time) ([]agenda.ViewEntry, error) {
	byweekday := make([]rrule.Weekday, 0, len(item.Weekdays))
	for _, day := range item.Weekdays {
		if wd, ok := rruleWeekday[day]; ok {
			byweekday = append(byweekday, wd)
		}
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: byweekday,
		Dtstart:   from,
	})
	if err != nil {
		return nil, err
	}

	occurrences := rule.Between(from, to, true)

	entries := make([]agenda.ViewEntry, 0, len(occurrences))
	for _, occurrence := range occurrences {
		entries = append(entries, agenda.ViewEntry{
			ItemID:    item.ID,
			Date:      occurrence.Format("2006-01-02"),
			StartTime: item.StartTime,
			EndTime:   item.EndTime,
			Title:     item.Title,
			Kind:      item.Kind,
			Category:  item.Category,
			Recurring: true,
		})
	}

	return entries, nil
}

package scheduler

import (
	"context"
	"fmt"
	"time"

	agendaRepository "RotinaGolang/internal/api/agenda/repository"
	"RotinaGolang/pkg/nlp"
	"RotinaGolang/pkg/whatsapp"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

var weekdayToken = map[time.Weekday]string{
	time.Monday:    "mon",
	time.Tuesday:   "tue",
	time.Wednesday: "wed",
	time.Thursday:  "thu",
	time.Friday:    "fri",
	time.Saturday:  "sat",
	time.Sunday:    "sun",
}

// Dispatcher wakes up every minute and pushes WhatsApp reminders for items
// whose start time just arrived. One-off items are marked notified so they
// fire once; routines fire on every matching weekday.
type Dispatcher struct {
	log              *logrus.Logger
	agendaRepository agendaRepository.Repository
	whatsapp         whatsapp.IWhatsappSender
	cron             *cron.Cron
}

func New(log *logrus.Logger, ar agendaRepository.Repository, whatsapp whatsapp.IWhatsappSender) *Dispatcher {
	return &Dispatcher{
		log:              log,
		agendaRepository: ar,
		whatsapp:         whatsapp,
		cron:             cron.New(),
	}
}

func (d *Dispatcher) Start() error {
	if _, err := d.cron.AddFunc("* * * * *", d.dispatchDueReminders); err != nil {
		return err
	}

	d.cron.Start()
	d.log.Info("Reminder dispatcher started")
	return nil
}

func (d *Dispatcher) Stop() {
	<-d.cron.Stop().Done()
	d.log.Info("Reminder dispatcher stopped")
}

func (d *Dispatcher) dispatchDueReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Second)
	defer cancel()

	// Stored dates and times are user-local; shift the wall clock the same
	// way the parser does before matching.
	local := time.Now().UTC().Add(-time.Duration(nlp.DefaultTZOffsetMinutes) * time.Minute)
	date := local.Format("2006-01-02")
	startTime := local.Format("15:04")
	weekday := weekdayToken[local.Weekday()]

	repo, err := d.agendaRepository.NewClient(false)
	if err != nil {
		d.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to create new client")
		return
	}

	oneOffs, err := repo.Agenda.GetDueOneOffs(ctx, date, startTime)
	if err != nil {
		d.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to fetch due one-off items")
		return
	}

	for _, due := range oneOffs {
		if !d.send(ctx, due) {
			continue
		}

		if err := repo.Agenda.MarkNotified(ctx, due.Item.ID); err != nil {
			d.log.WithFields(logrus.Fields{
				"item_id": due.Item.ID,
				"error":   err.Error(),
			}).Error("Failed to mark item notified")
		}
	}

	routines, err := repo.Agenda.GetDueRoutines(ctx, weekday, startTime)
	if err != nil {
		d.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to fetch due routines")
		return
	}

	for _, due := range routines {
		d.send(ctx, due)
	}
}

func (d *Dispatcher) send(ctx context.Context, due agendaRepository.DueReminder) bool {
	if due.PhoneNumber == "" {
		d.log.WithFields(logrus.Fields{
			"item_id": due.Item.ID,
			"user_id": due.Item.UserID,
		}).Warn("No phone number for reminder, skipping")
		return false
	}

	if d.whatsapp == nil || !d.whatsapp.IsConnected() {
		d.log.Warn("WhatsApp client not connected, skipping reminder")
		return false
	}

	message := fmt.Sprintf("Lembrete: '%s' das %s às %s.",
		due.Item.Title, due.Item.StartTime, due.Item.EndTime)

	if err := d.whatsapp.SendMessage(ctx, due.PhoneNumber, message); err != nil {
		d.log.WithFields(logrus.Fields{
			"item_id": due.Item.ID,
			"error":   err.Error(),
		}).Error("Failed to send reminder")
		return false
	}

	d.log.WithFields(logrus.Fields{
		"item_id": due.Item.ID,
		"user_id": due.Item.UserID,
	}).Info("Reminder sent")

	return true
}

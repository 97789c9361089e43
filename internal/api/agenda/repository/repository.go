package agendaRepository

import (
	"RotinaGolang/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Agenda:   &agendaRepository{q: sqlExecutor, log: r.log},
		Users:    &userRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

// DueReminder pairs an item with the phone number of its owner, for the
// notification dispatcher.
type DueReminder struct {
	Item        entity.AgendaItem
	PhoneNumber string
}

type Client struct {
	Agenda interface {
		CreateItem(c context.Context, item entity.AgendaItem) error
		GetItemByID(c context.Context, id string) (entity.AgendaItem, error)
		GetItemsByUserID(c context.Context, userID string) ([]entity.AgendaItem, error)
		GetItemsInRange(c context.Context, userID string, from string, to string) ([]entity.AgendaItem, error)
		GetRoutinesByWeekdays(c context.Context, userID string, weekdays []string) ([]entity.AgendaItem, error)
		GetDueOneOffs(c context.Context, date string, startTime string) ([]DueReminder, error)
		GetDueRoutines(c context.Context, weekday string, startTime string) ([]DueReminder, error)
		MarkNotified(c context.Context, id string) error
		DeleteItem(c context.Context, id string) error
	}

	Users interface {
		GetPhoneNumber(c context.Context, userID string) (string, error)
	}

	Commit   func() error
	Rollback func() error
}

type agendaRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type userRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

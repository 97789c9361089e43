package agendaRepository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"RotinaGolang/internal/api/agenda"
	"RotinaGolang/internal/entity"
	contextPkg "RotinaGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type AgendaItemDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	Kind      sql.NullString `db:"kind"`
	Title     sql.NullString `db:"title"`
	Date      sql.NullString `db:"date"`
	StartTime sql.NullString `db:"start_time"`
	EndTime   sql.NullString `db:"end_time"`
	Recurring sql.NullBool   `db:"recurring"`
	Weekdays  pq.StringArray `db:"weekdays"`
	Origin    sql.NullString `db:"origin"`
	Category  sql.NullString `db:"category"`
	AudioLink sql.NullString `db:"audio_link"`
	Notified  sql.NullBool   `db:"notified"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

type DueReminderDB struct {
	AgendaItemDB
	PhoneNumber sql.NullString `db:"phone_number"`
}

func (r *agendaRepository) CreateItem(c context.Context, item entity.AgendaItem) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         item.ID,
		"user_id":    item.UserID,
		"kind":       item.Kind,
		"title":      item.Title,
		"date":       item.Date,
		"start_time": item.StartTime,
		"end_time":   item.EndTime,
		"recurring":  item.Recurring,
		"weekdays":   item.Weekdays,
		"origin":     item.Origin,
		"category":   item.Category,
		"audio_link": item.AudioLink,
		"created_at": time.Now(),
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateItem, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateItem")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating agenda item")

		return err
	}

	return nil
}

func (r *agendaRepository) GetItemByID(c context.Context, id string) (entity.AgendaItem, error) {
	requestID := contextPkg.GetRequestID(c)
	var item AgendaItemDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetItemByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetItemByID named query preparation err")

		return entity.AgendaItem{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetItemByID no rows found")
			return entity.AgendaItem{}, agenda.ErrItemNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetItemByID execution err")
		return entity.AgendaItem{}, err
	}

	return r.makeAgendaItem(item), nil
}

func (r *agendaRepository) GetItemsByUserID(c context.Context, userID string) ([]entity.AgendaItem, error) {
	requestID := contextPkg.GetRequestID(c)
	var items []AgendaItemDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetItemsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetItemsByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &items, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetItemsByUserID execution err")
		return nil, err
	}

	result := make([]entity.AgendaItem, 0, len(items))
	for _, item := range items {
		result = append(result, r.makeAgendaItem(item))
	}

	return result, nil
}

func (r *agendaRepository) GetItemsInRange(c context.Context, userID string, from string, to string) ([]entity.AgendaItem, error) {
	requestID := contextPkg.GetRequestID(c)
	var items []AgendaItemDB

	argsKV := map[string]interface{}{
		"user_id": userID,
		"from":    from,
		"to":      to,
	}

	query, args, err := sqlx.Named(queryGetItemsInRange, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetItemsInRange named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &items, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetItemsInRange execution err")
		return nil, err
	}

	result := make([]entity.AgendaItem, 0, len(items))
	for _, item := range items {
		result = append(result, r.makeAgendaItem(item))
	}

	return result, nil
}

func (r *agendaRepository) GetRoutinesByWeekdays(c context.Context, userID string, weekdays []string) ([]entity.AgendaItem, error) {
	requestID := contextPkg.GetRequestID(c)
	var items []AgendaItemDB

	argsKV := map[string]interface{}{
		"user_id":  userID,
		"weekdays": strings.Join(weekdays, ","),
	}

	query, args, err := sqlx.Named(queryGetRoutinesByWeekdays, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRoutinesByWeekdays named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &items, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRoutinesByWeekdays execution err")
		return nil, err
	}

	result := make([]entity.AgendaItem, 0, len(items))
	for _, item := range items {
		result = append(result, r.makeAgendaItem(item))
	}

	return result, nil
}

func (r *agendaRepository) GetDueOneOffs(c context.Context, date string, startTime string) ([]DueReminder, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []DueReminderDB

	argsKV := map[string]interface{}{
		"date":       date,
		"start_time": startTime,
	}

	query, args, err := sqlx.Named(queryGetDueOneOffs, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetDueOneOffs named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetDueOneOffs execution err")
		return nil, err
	}

	result := make([]DueReminder, 0, len(rows))
	for _, row := range rows {
		result = append(result, DueReminder{
			Item:        r.makeAgendaItem(row.AgendaItemDB),
			PhoneNumber: row.PhoneNumber.String,
		})
	}

	return result, nil
}

func (r *agendaRepository) GetDueRoutines(c context.Context, weekday string, startTime string) ([]DueReminder, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []DueReminderDB

	argsKV := map[string]interface{}{
		"weekday":    weekday,
		"start_time": startTime,
	}

	query, args, err := sqlx.Named(queryGetDueRoutines, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetDueRoutines named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetDueRoutines execution err")
		return nil, err
	}

	result := make([]DueReminder, 0, len(rows))
	for _, row := range rows {
		result = append(result, DueReminder{
			Item:        r.makeAgendaItem(row.AgendaItemDB),
			PhoneNumber: row.PhoneNumber.String,
		})
	}

	return result, nil
}

func (r *agendaRepository) MarkNotified(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         id,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryMarkNotified, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkNotified named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkNotified execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkNotified rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("MarkNotified no rows affected")

		return agenda.ErrItemNotFound
	}

	return nil
}

func (r *agendaRepository) DeleteItem(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteItem, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteItem named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteItem execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteItem rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteItem no rows affected")

		return agenda.ErrItemNotFound
	}

	return nil
}

func (r *agendaRepository) makeAgendaItem(item AgendaItemDB) entity.AgendaItem {
	return entity.AgendaItem{
		ID:        item.ID.String,
		UserID:    item.UserID.String,
		Kind:      item.Kind.String,
		Title:     item.Title.String,
		Date:      item.Date.String,
		StartTime: item.StartTime.String,
		EndTime:   item.EndTime.String,
		Recurring: item.Recurring.Bool,
		Weekdays:  item.Weekdays,
		Origin:    item.Origin.String,
		Category:  item.Category.String,
		AudioLink: item.AudioLink.String,
		Notified:  item.Notified.Bool,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

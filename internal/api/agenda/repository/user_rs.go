package agendaRepository

import (
	"context"
	"database/sql"
	"errors"

	"RotinaGolang/internal/api/agenda"
	contextPkg "RotinaGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *userRepository) GetPhoneNumber(c context.Context, userID string) (string, error) {
	requestID := contextPkg.GetRequestID(c)
	var phoneNumber sql.NullString

	argsKV := map[string]interface{}{
		"id": userID,
	}

	query, args, err := sqlx.Named(queryGetUserPhoneNumber, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPhoneNumber named query preparation err")
		return "", err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).Scan(&phoneNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    userID,
			}).Warn("GetPhoneNumber no rows found")
			return "", agenda.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPhoneNumber execution err")
		return "", err
	}

	return phoneNumber.String, nil
}

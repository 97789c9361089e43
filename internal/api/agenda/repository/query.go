package agendaRepository

const (
	queryCreateItem = `
		INSERT INTO agenda_items (
			id,
			user_id,
			kind,
			title,
			date,
			start_time,
			end_time,
			recurring,
			weekdays,
			origin,
			category,
			audio_link,
			notified,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:kind,
			:title,
			:date,
			:start_time,
			:end_time,
			:recurring,
			:weekdays,
			:origin,
			:category,
			:audio_link,
			FALSE,
			:created_at,
			:updated_at
		)
	`

	queryGetItemByID = `
		SELECT
			id,
			user_id,
			kind,
			title,
			date,
			start_time,
			end_time,
			recurring,
			weekdays,
			origin,
			category,
			audio_link,
			notified,
			created_at,
			updated_at
		FROM agenda_items
		WHERE id = :id
	`

	queryGetItemsByUserID = `
		SELECT
			id,
			user_id,
			kind,
			title,
			date,
			start_time,
			end_time,
			recurring,
			weekdays,
			origin,
			category,
			audio_link,
			notified,
			created_at,
			updated_at
		FROM agenda_items
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryGetItemsInRange = `
		SELECT
			id,
			user_id,
			kind,
			title,
			date,
			start_time,
			end_time,
			recurring,
			weekdays,
			origin,
			category,
			audio_link,
			notified,
			created_at,
			updated_at
		FROM agenda_items
		WHERE
			user_id = :user_id
			AND recurring = FALSE
			AND date BETWEEN :from AND :to
		ORDER BY date ASC, start_time ASC
	`

	queryGetRoutinesByWeekdays = `
		SELECT
			id,
			user_id,
			kind,
			title,
			date,
			start_time,
			end_time,
			recurring,
			weekdays,
			origin,
			category,
			audio_link,
			notified,
			created_at,
			updated_at
		FROM agenda_items
		WHERE
			user_id = :user_id
			AND recurring = TRUE
			AND weekdays && string_to_array(:weekdays, ',')
		ORDER BY start_time ASC
	`

	queryGetDueOneOffs = `
		SELECT
			a.id,
			a.user_id,
			a.kind,
			a.title,
			a.date,
			a.start_time,
			a.end_time,
			a.recurring,
			a.weekdays,
			a.origin,
			a.category,
			a.audio_link,
			a.notified,
			a.created_at,
			a.updated_at,
			u.phone_number
		FROM agenda_items a
		JOIN users u ON u.id = a.user_id
		WHERE
			a.recurring = FALSE
			AND a.notified = FALSE
			AND a.date = :date
			AND a.start_time = :start_time
	`

	queryGetDueRoutines = `
		SELECT
			a.id,
			a.user_id,
			a.kind,
			a.title,
			a.date,
			a.start_time,
			a.end_time,
			a.recurring,
			a.weekdays,
			a.origin,
			a.category,
			a.audio_link,
			a.notified,
			a.created_at,
			a.updated_at,
			u.phone_number
		FROM agenda_items a
		JOIN users u ON u.id = a.user_id
		WHERE
			a.recurring = TRUE
			AND :weekday = ANY(a.weekdays)
			AND a.start_time = :start_time
	`

	queryMarkNotified = `
		UPDATE agenda_items
		SET
			notified = TRUE,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteItem = `
		DELETE FROM agenda_items
		WHERE id = :id
	`

	queryGetUserPhoneNumber = `
		SELECT phone_number
		FROM users
		WHERE id = :id
	`
)

package agenda

import "RotinaGolang/pkg/response"

var (
	ErrItemNotFound    = response.NewError(404, "agenda item not found")
	ErrItemNotOwned    = response.NewError(403, "agenda item does not belong to user")
	ErrUserNotFound    = response.NewError(404, "user not found")
	ErrEmptyCommand    = response.NewError(400, "command text is empty")
	ErrNotACommand     = response.NewError(422, "text is not an agenda command")
	ErrInvalidKind     = response.NewError(400, "invalid item kind")
	ErrInvalidOrigin   = response.NewError(400, "invalid item origin")
	ErrInvalidCategory = response.NewError(400, "invalid item category")
	ErrInvalidTitle    = response.NewError(400, "invalid item title")
	ErrInvalidTime     = response.NewError(400, "invalid start or end time")
	ErrInvalidDate     = response.NewError(400, "invalid item date")
	ErrInvalidWeekdays = response.NewError(400, "invalid weekdays for recurring item")
	ErrInvalidPeriod   = response.NewError(400, "invalid view period")
	ErrCreateItem      = response.NewError(500, "failed to create agenda item")
	ErrDeleteItem      = response.NewError(500, "failed to delete agenda item")
)

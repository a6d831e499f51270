package http

import (
	"errors"
	"net/http"

	"daycraft/internal/task"
	"daycraft/pkg/response"
)

var (
	errInvalidDate       = errors.New("invalid date: use RFC3339, YYYY-MM-DD, YYYY-MM-DDTHH:MM or a phrase like \"next friday\"")
	errInvalidFormat     = errors.New("invalid format: use json, markdown or yaml")
	errInvalidAttachment = errors.New("invalid attachment: use type,url[,title]")
)

// mapError translates domain errors into HTTP errors. Anything unknown is a
// 500 whose cause is logged by the caller but never sent to the client.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return response.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrEmptyInput),
		errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrInvalidID),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrInvalidFrequency),
		errors.Is(err, task.ErrInvalidWeekday),
		errors.Is(err, task.ErrInvalidAttachment),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidWindow):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrTaskNotOpen):
		return response.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return response.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

package http

import (
	"errors"
	"net/http"

	"canteen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps an application error onto the HTTP status taxonomy:
// validation failures are 400, missing objects 404, lost concurrent writes
// 409, and rejected business rules 422. Anything unclassified is a 500 with
// the detail kept out of the response body.
func respondError(ctx echo.Context, err error) error {
	status := classify(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}

func classify(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrIneligibleForCancellation),
		errors.Is(err, errs.ErrIneligibleForDispute),
		errors.Is(err, errs.ErrAlreadyDisputed),
		errors.Is(err, errs.ErrInvalidState):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

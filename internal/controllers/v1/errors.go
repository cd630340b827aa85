package v1

import (
	"errors"
	"net/http"

	"github.com/finassist/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errForecastWindowInvalid = errors.New("the to date must not be before the from date")
	errForecastWindowTooLong = errors.New("the forecast window must not be longer than the forecast horizon")
)

package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/flightbooking/internal/logger"
	"github.com/Domenick1991/flightbooking/internal/repository"
	"github.com/Domenick1991/flightbooking/internal/selection"
	"github.com/Domenick1991/flightbooking/internal/service/booking"
	"github.com/Domenick1991/flightbooking/internal/service/users"
	"github.com/gin-gonic/gin"
)

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrFlightNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrIncompleteSearch),
		errors.Is(err, booking.ErrUnknownSeat),
		errors.Is(err, booking.ErrSeatCountMismatch),
		errors.Is(err, users.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, users.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, selection.ErrSelectionLimitReached),
		errors.Is(err, booking.ErrSeatUnavailable),
		errors.Is(err, repository.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, booking.ErrSeatNotSelectable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Log.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

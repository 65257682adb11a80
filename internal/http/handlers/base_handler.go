// README: Base handler utilities (JSON envelopes, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"savaari/internal/modules/booking"
	"savaari/internal/modules/fare"
	"savaari/internal/modules/ledger"
)

// Every response carries status (mirroring the HTTP status) and message;
// error responses additionally carry error with the underlying cause.
type errorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, message string, cause error) {
	body := errorBody{Status: status, Message: message}
	if cause != nil {
		body.Error = cause.Error()
	}
	c.JSON(status, body)
}

func writeFareError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, fare.ErrPassengerCount):
		writeError(c, http.StatusBadRequest, "Passenger count must be a number between 1 and 5", err)
	case errors.Is(err, fare.ErrFareUnavailable):
		writeError(c, http.StatusNotFound, "Fare not available for that passenger count on this route", err)
	case errors.Is(err, fare.ErrBadFareData):
		writeError(c, http.StatusInternalServerError, "Route fare data is malformed", err)
	default:
		writeError(c, http.StatusInternalServerError, "An internal error occurred while processing your request", err)
	}
}

func writeBookingError(c *gin.Context, err error) {
	var mismatch *fare.MismatchError
	var dispatch *booking.DispatchError
	switch {
	case errors.As(err, &mismatch):
		// Mismatch responses carry both fares so the client can requote.
		writeJSON(c, http.StatusBadRequest, gin.H{
			"status":       http.StatusBadRequest,
			"message":      "Submitted fare does not match the computed fare",
			"error":        mismatch.Error(),
			"claimedFare":  mismatch.Claimed,
			"computedFare": mismatch.Computed,
		})
	case errors.As(err, &dispatch):
		writeError(c, http.StatusInternalServerError,
			"Booking was recorded but notification dispatch failed", dispatch)
	case errors.Is(err, booking.ErrMissingLocations):
		writeError(c, http.StatusBadRequest, "Both pickup and drop locations must be provided", err)
	case errors.Is(err, booking.ErrRouteNotFound):
		writeError(c, http.StatusNotFound, "Route not found between the given locations", err)
	case errors.Is(err, booking.ErrDriverNotFound):
		writeError(c, http.StatusNotFound, "Driver not found", err)
	default:
		writeFareError(c, err)
	}
}

func writeLedgerError(c *gin.Context, err error) {
	if errors.Is(err, ledger.ErrNoRides) {
		writeError(c, http.StatusNotFound, "No rides recorded for this driver", err)
		return
	}
	writeError(c, http.StatusInternalServerError, "An internal error occurred while retrieving rides", err)
}

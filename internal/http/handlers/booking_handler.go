// README: Booking confirmation handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"savaari/internal/modules/booking"
	"savaari/internal/types"
)

type BookingHandler struct {
	booking *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{booking: svc}
}

type bookingRequest struct {
	Pickup         string `json:"pickup"`
	Drop           string `json:"drop"`
	Passengers     int    `json:"passengers"`
	Time           string `json:"time"`
	Date           string `json:"date"`
	Night          bool   `json:"night"`
	Hostel         bool   `json:"hostel"`
	DriverID       string `json:"driverId"`
	FinalFare      int64  `json:"finalFare"`
	PassengerName  string `json:"passengerName"`
	PassengerPhone string `json:"passengerPhone"`
}

// Create confirms a booking: the submitted finalFare must equal the fare the
// server computes for the same trip, otherwise nothing is recorded.
func (h *BookingHandler) Create(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid booking payload", err)
		return
	}
	if req.DriverID == "" {
		writeError(c, http.StatusBadRequest, "driverId is required", nil)
		return
	}

	conf, err := h.booking.Book(c.Request.Context(), booking.BookCommand{
		Pickup:         req.Pickup,
		Drop:           req.Drop,
		Passengers:     req.Passengers,
		Time:           req.Time,
		Date:           req.Date,
		Night:          req.Night,
		Hostel:         req.Hostel,
		DriverID:       types.ID(req.DriverID),
		ClaimedFare:    req.FinalFare,
		PassengerName:  req.PassengerName,
		PassengerPhone: req.PassengerPhone,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, gin.H{
		"status":     http.StatusOK,
		"message":    "Booking confirmed",
		"bookingRef": conf.Ref,
		"driver": gin.H{
			"id":    conf.Driver.ID,
			"name":  conf.Driver.Name,
			"phone": conf.Driver.Phone,
		},
		"trip": conf.Ride,
	})
}

// README: Driver handlers for the directory listing and per-driver rides query.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"savaari/internal/modules/directory"
	"savaari/internal/modules/ledger"
	"savaari/internal/types"
)

type DriverHandler struct {
	directory *directory.Directory
	ledger    *ledger.Service
}

func NewDriverHandler(dir *directory.Directory, led *ledger.Service) *DriverHandler {
	return &DriverHandler{directory: dir, ledger: led}
}

// List returns the full driver reference list. Device tokens stay internal.
func (h *DriverHandler) List(c *gin.Context) {
	drivers := h.directory.All()
	if len(drivers) == 0 {
		writeError(c, http.StatusNotFound, "No drivers found", nil)
		return
	}
	out := make([]gin.H, len(drivers))
	for i, d := range drivers {
		out[i] = gin.H{"id": d.ID, "name": d.Name, "phone": d.Phone}
	}
	writeJSON(c, http.StatusOK, gin.H{
		"drivers": out,
		"status":  http.StatusOK,
		"message": "Drivers retrieved successfully",
	})
}

// Rides returns the driver's ride sequence and the derived aggregates.
func (h *DriverHandler) Rides(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing driver id", nil)
		return
	}
	summary, err := h.ledger.DriverSummary(c.Request.Context(), types.ID(id))
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"driverName":      summary.DriverName,
		"driverid":        summary.DriverID,
		"totalRides":      summary.TotalRides,
		"ridesPaid":       summary.RidesPaid,
		"balanceToBePaid": summary.BalanceDue,
		"rideDetails":     summary.Rides,
		"status":          http.StatusOK,
		"message":         "Rides retrieved successfully",
	})
}

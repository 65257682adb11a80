// README: Fare quote handler.
package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"savaari/internal/modules/catalog"
	"savaari/internal/modules/fare"
)

type FareHandler struct {
	catalog  *catalog.Catalog
	resolver *fare.Resolver
}

func NewFareHandler(cat *catalog.Catalog, resolver *fare.Resolver) *FareHandler {
	return &FareHandler{catalog: cat, resolver: resolver}
}

// Quote computes the fare for an unordered pickup/drop pair.
func (h *FareHandler) Quote(c *gin.Context) {
	pickup := c.Param("pickup")
	drop := c.Param("drop")
	if pickup == "" || drop == "" {
		writeError(c, http.StatusBadRequest, "Both pickup and drop locations must be provided", nil)
		return
	}

	passengers, err := strconv.Atoi(c.Param("passengers"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "Passenger count must be a number between 1 and 5", err)
		return
	}
	night := parseFlag(c.Param("night"))
	hostel := parseFlag(c.Param("hostel"))

	route, ok := h.catalog.FindRoute(pickup, drop)
	if !ok {
		writeError(c, http.StatusNotFound,
			fmt.Sprintf("Route not found between %s and %s", pickup, drop), nil)
		return
	}

	q, err := h.resolver.Resolve(route, passengers, night, hostel)
	if err != nil {
		writeFareError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, gin.H{
		"pickup":      q.Pickup,
		"drop":        q.Drop,
		"distance":    q.Distance,
		"passengers":  q.Passengers,
		"isNight":     q.Night,
		"isHostel":    q.Hostel,
		"fare":        q.Total,
		"farePerHead": q.PerPerson,
		"platformFee": q.PlatformFee,
		"status":      http.StatusOK,
		"message":     fmt.Sprintf("Booking fare for %d passengers calculated successfully", q.Passengers),
	})
}

// parseFlag reads the literal "true" (any casing) as true, everything else as
// false, the way the upstream data contract defines the flags.
func parseFlag(v string) bool {
	return strings.EqualFold(v, "true")
}

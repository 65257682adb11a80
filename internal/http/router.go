// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"savaari/internal/http/handlers"
	"savaari/internal/http/middleware"
	"savaari/internal/modules/booking"
	"savaari/internal/modules/catalog"
	"savaari/internal/modules/directory"
	"savaari/internal/modules/fare"
	"savaari/internal/modules/ledger"
)

type RouterDeps struct {
	Catalog   *catalog.Catalog
	Resolver  *fare.Resolver
	Directory *directory.Directory
	Ledger    *ledger.Service
	Booking   *booking.Service
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	fareHandler := handlers.NewFareHandler(deps.Catalog, deps.Resolver)
	r.GET("/v1/fare/:pickup/:drop/:passengers/:night/:hostel", fareHandler.Quote)

	bookingHandler := handlers.NewBookingHandler(deps.Booking)
	r.POST("/v1/bookings", bookingHandler.Create)

	driverHandler := handlers.NewDriverHandler(deps.Directory, deps.Ledger)
	r.GET("/v1/drivers-info", driverHandler.List)
	r.GET("/v1/drivers/:id/rides", driverHandler.Rides)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}

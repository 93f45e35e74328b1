package routes

import (
	"tablebook/handlers"
	"tablebook/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the reservation engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/reservations")
	{
		bookingGroup.Use(middleware.IdentityMiddleware())
		bookingGroup.POST("", hb.CreateReservationHandler)
		bookingGroup.GET("", hb.ListReservationsHandler)
		bookingGroup.PATCH("/:reservationID", hb.UpdateReservationHandler)
		bookingGroup.DELETE("/:reservationID", hb.CancelReservationHandler)
		bookingGroup.PUT("/:reservationID/table", middleware.RequireWaiter(), hb.ReassignTableHandler)
	}
}

// RegisterTableRoutes registers table availability endpoints. Availability is
// public: no identity headers required.
func RegisterTableRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	tableGroup := r.Group("/api/tables")
	{
		tableGroup.GET("/available", hb.TableAvailabilityHandler)
	}
}

// RegisterWaiterRoutes registers the waiter-facing reservation view.
func RegisterWaiterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	waiterGroup := r.Group("/api/waiters")
	{
		waiterGroup.Use(middleware.IdentityMiddleware(), middleware.RequireWaiter())
		waiterGroup.GET("/reservations", hb.WaiterReservationsHandler)
	}
}

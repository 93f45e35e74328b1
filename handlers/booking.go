package handlers

import (
	"errors"
	"net/http"

	"tablebook/middleware"
	"tablebook/models"
	"tablebook/services/booking"
	"tablebook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// HandlerBundle groups all endpoint handlers and their shared dependencies.
type HandlerBundle struct {
	Svc   booking.ReservationService
	Cache *redis.Client
}

func NewHandlerBundle(svc booking.ReservationService, cache *redis.Client) *HandlerBundle {
	return &HandlerBundle{Svc: svc, Cache: cache}
}

// CreateReservationHandler books a table for the authenticated requester.
func (hb *HandlerBundle) CreateReservationHandler(c *gin.Context) {
	var req models.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if req.ReservationID == "" {
		req.ReservationID = uuid.New().String()
	}

	res, err := hb.Svc.CreateReservation(c.Request.Context(), req, middleware.ActorFromContext(c))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// ListReservationsHandler returns the requester's reservations.
func (hb *HandlerBundle) ListReservationsHandler(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	out, err := hb.Svc.ListReservationsForRequester(c.Request.Context(), actor.Email)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": out})
}

// UpdateReservationHandler applies a sparse schedule or guest-count update.
func (hb *HandlerBundle) UpdateReservationHandler(c *gin.Context) {
	var upd models.ReservationUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	res, err := hb.Svc.UpdateReservationSchedule(c.Request.Context(), c.Param("reservationID"), upd, middleware.ActorFromContext(c))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CancelReservationHandler cancels a reservation. Guests are held to the
// cancellation window; waiters are not.
func (hb *HandlerBundle) CancelReservationHandler(c *gin.Context) {
	reservationID := c.Param("reservationID")
	if err := hb.Svc.CancelReservation(c.Request.Context(), reservationID, middleware.ActorFromContext(c)); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservationId": reservationID, "status": models.StatusCancelled})
}

// ReassignTableHandler moves a reservation to another table. Staff only.
func (hb *HandlerBundle) ReassignTableHandler(c *gin.Context) {
	var input struct {
		TableID    string `json:"tableId" binding:"required"`
		LocationID string `json:"locationId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	res, err := hb.Svc.ReassignTable(c.Request.Context(), c.Param("reservationID"), input.TableID, input.LocationID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// WaiterReservationsHandler lists the reservations assigned to the calling
// waiter for a date, optionally filtered by start time and table.
func (hb *HandlerBundle) WaiterReservationsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date query parameter is required")
		return
	}

	actor := middleware.ActorFromContext(c)
	out, err := hb.Svc.ListWaiterReservations(c.Request.Context(), actor.Email, date, c.Query("timeFrom"), c.Query("tableId"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": out})
}

// respondBookingError maps the engine's typed errors onto HTTP statuses.
func respondBookingError(c *gin.Context, err error) {
	var status int
	switch booking.KindOf(err) {
	case booking.KindValidation:
		status = http.StatusBadRequest
	case booking.KindNotFound:
		status = http.StatusNotFound
	case booking.KindConflict:
		status = http.StatusConflict
	case booking.KindUnauthorized:
		status = http.StatusForbidden
	default:
		status = http.StatusInternalServerError
	}

	var bErr *booking.Error
	if errors.As(err, &bErr) && status != http.StatusInternalServerError {
		utils.JSONError(c, status, bErr.Message, "")
		return
	}
	utils.JSONError(c, status, "internal server error", err.Error())
}

// File: services/booking/create.go
package booking

import (
	"context"
	"errors"

	locationRepo "tablebook/database/repository/location"
	reservationRepo "tablebook/database/repository/reservation"
	tableRepo "tablebook/database/repository/table"
	waiterRepo "tablebook/database/repository/waiter"
	"tablebook/models"
	"tablebook/utils"

	"go.uber.org/zap"
)

// CreateReservation books a table: validates business rules, assigns the
// least busy waiter, claims the slot on both ledgers and persists the record.
// Any failure after the first ledger write rolls back the writes that
// already happened before the error surfaces.
func (s *DefaultReservationService) CreateReservation(ctx context.Context, req models.ReservationRequest, actor Actor) (*models.Reservation, error) {
	if req.ReservationID == "" {
		return nil, Validationf("missing required fields: reservationId")
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	res := &models.Reservation{
		ID:         req.ReservationID,
		LocationID: req.LocationID,
		TableID:    req.TableID,
		Date:       req.Date,
		TimeFrom:   req.TimeFrom,
		TimeTo:     req.TimeTo,
		GuestCount: req.GuestCount,
		UserEmail:  actor.Email,
		ByStaff:    actor.Staff,
		Status:     models.StatusReserved,
		CreatedAt:  s.Now(),
	}

	if err := s.scheduleReservation(ctx, res); err != nil {
		return nil, err
	}

	if err := s.Reservations.Create(ctx, res); err != nil {
		s.releaseSlots(ctx, res)
		if errors.Is(err, reservationRepo.ErrDuplicateID) {
			return nil, Conflictf("reservation %s already exists", res.ID)
		}
		return nil, Internal("failed to persist reservation", err)
	}

	s.Events.ReservationCreated(res)
	return res, nil
}

// scheduleReservation is the shared assignment pipeline for create and
// schedule updates: it validates existence, capacity and slot availability,
// picks a waiter, then claims the slot on the waiter ledger and the table
// ledger, in that order. On success both ledgers hold the slot and
// res.WaiterID is set; on failure nothing is left claimed. The caller owns
// persisting the record and must releaseSlots if that final step fails.
func (s *DefaultReservationService) scheduleReservation(ctx context.Context, res *models.Reservation) error {
	loc, err := s.Locations.GetByID(ctx, res.LocationID)
	if err != nil {
		return mapLocationErr(err, res.LocationID)
	}
	if err := s.validateNotPast(loc, res.Date, res.TimeFrom); err != nil {
		return err
	}

	table, err := s.Tables.GetByID(ctx, res.TableID, res.LocationID)
	if err != nil {
		return mapTableErr(err, res.TableID)
	}
	if table.Capacity < res.GuestCount {
		return Validationf("table %s cannot accommodate %d guests, maximum capacity is %d",
			table.ID, res.GuestCount, table.Capacity)
	}
	if slotsOverlap(table.BookedSlots(res.Date), res.TimeFrom, res.TimeTo) {
		return Conflictf("table is already booked for this time slot")
	}

	waiterID, err := s.Selector.SelectWaiter(ctx, res.LocationID, res.Date, res.TimeFrom, res.TimeTo)
	if err != nil {
		return err
	}
	res.WaiterID = waiterID

	slot := res.Slot()
	if err := s.Waiters.AppendSlot(ctx, res.WaiterID, res.LocationID, res.Date, slot); err != nil {
		if errors.Is(err, waiterRepo.ErrSlotTaken) {
			// Lost the conditional write to a concurrent booking.
			return Conflictf("waiter schedule changed, please retry")
		}
		return Internal("failed to update waiter schedule", err)
	}

	if err := s.Tables.AppendSlot(ctx, res.TableID, res.LocationID, res.Date, slot); err != nil {
		s.removeWaiterSlot(ctx, res)
		if errors.Is(err, tableRepo.ErrSlotTaken) {
			return Conflictf("table is already booked for this time slot")
		}
		return Internal("failed to update table schedule", err)
	}

	return nil
}

// releaseSlots undoes the ledger claims of scheduleReservation in reverse
// order. Best-effort: failures are logged, never returned, so they cannot
// mask the error that triggered the rollback.
func (s *DefaultReservationService) releaseSlots(ctx context.Context, res *models.Reservation) {
	s.removeTableSlot(ctx, res)
	s.removeWaiterSlot(ctx, res)
}

func (s *DefaultReservationService) removeTableSlot(ctx context.Context, res *models.Reservation) {
	if err := s.Tables.RemoveSlot(ctx, res.TableID, res.LocationID, res.Date, res.Slot()); err != nil {
		utils.GetLogger().Error("failed to release table slot",
			zap.String("reservationId", res.ID), zap.String("tableId", res.TableID), zap.Error(err))
	}
}

func (s *DefaultReservationService) removeWaiterSlot(ctx context.Context, res *models.Reservation) {
	if err := s.Waiters.RemoveSlot(ctx, res.WaiterID, res.LocationID, res.Date, res.Slot()); err != nil {
		utils.GetLogger().Error("failed to release waiter slot",
			zap.String("reservationId", res.ID), zap.String("waiterId", res.WaiterID), zap.Error(err))
	}
}

func mapLocationErr(err error, id string) error {
	if errors.Is(err, locationRepo.ErrNotFound) {
		return NotFoundf("location not found: %s", id)
	}
	return Internal("failed to load location "+id, err)
}

func mapReservationErr(err error, id string) error {
	if errors.Is(err, reservationRepo.ErrNotFound) {
		return NotFoundf("reservation not found: %s", id)
	}
	return Internal("failed to load reservation "+id, err)
}

func mapTableErr(err error, id string) error {
	if errors.Is(err, tableRepo.ErrNotFound) {
		return NotFoundf("table not found: %s", id)
	}
	return Internal("failed to load table "+id, err)
}

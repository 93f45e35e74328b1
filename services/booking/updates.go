// File: services/booking/updates.go
package booking

import (
	"context"
	"errors"

	tableRepo "tablebook/database/repository/table"
	"tablebook/models"
	"tablebook/utils"

	"go.uber.org/zap"
)

// UpdateReservationSchedule applies a sparse date/time/guest-count update.
// A schedule change releases the old slot, re-runs the full assignment
// pipeline against the new window (which may pick a different waiter), and
// restores the old slot on both ledgers if anything fails: the reservation
// ends up fully migrated or fully unchanged, never in between.
func (s *DefaultReservationService) UpdateReservationSchedule(ctx context.Context, reservationID string, upd models.ReservationUpdate, actor Actor) (*models.Reservation, error) {
	if upd.Date == nil && upd.TimeFrom == nil && upd.TimeTo == nil && upd.GuestCount == nil {
		return nil, Validationf("no updatable fields provided")
	}
	if (upd.TimeFrom == nil) != (upd.TimeTo == nil) {
		return nil, Validationf("timeFrom and timeTo must be updated together")
	}

	existing, err := s.loadForActor(ctx, reservationID, actor)
	if err != nil {
		return nil, err
	}
	if existing.IsTerminal() {
		return nil, Validationf("reservation is already %s", existing.Status)
	}

	updated := *existing
	if upd.Date != nil {
		updated.Date = *upd.Date
	}
	if upd.TimeFrom != nil {
		updated.TimeFrom = *upd.TimeFrom
		updated.TimeTo = *upd.TimeTo
	}
	if upd.GuestCount != nil {
		updated.GuestCount = *upd.GuestCount
	}
	if err := validateRequest(requestFor(&updated)); err != nil {
		return nil, err
	}

	if !upd.HasSchedule() {
		return s.applyGuestCountChange(ctx, &updated)
	}

	// Free the old window first so the new one can reuse it (same-table
	// shifts of an existing booking must not conflict with themselves).
	s.removeTableSlot(ctx, existing)
	s.removeWaiterSlot(ctx, existing)

	updated.Status = models.StatusReserved
	if err := s.scheduleReservation(ctx, &updated); err != nil {
		s.restoreSlots(ctx, existing)
		return nil, err
	}

	if err := s.Reservations.Replace(ctx, &updated); err != nil {
		s.releaseSlots(ctx, &updated)
		s.restoreSlots(ctx, existing)
		return nil, Internal("failed to persist updated reservation", err)
	}

	s.Events.ReservationUpdated(&updated)
	return &updated, nil
}

// ReassignTable moves a reservation to another table (optionally at another
// location) keeping date, time and waiter. The new table must exist, seat
// the party and be free for the window.
func (s *DefaultReservationService) ReassignTable(ctx context.Context, reservationID, newTableID, newLocationID string) (*models.Reservation, error) {
	if newTableID == "" || newLocationID == "" {
		return nil, Validationf("missing required fields: tableId, locationId")
	}

	existing, err := s.Reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, mapReservationErr(err, reservationID)
	}
	if existing.IsTerminal() {
		return nil, Validationf("reservation is already %s", existing.Status)
	}

	table, err := s.Tables.GetByID(ctx, newTableID, newLocationID)
	if err != nil {
		return nil, mapTableErr(err, newTableID)
	}
	if table.Capacity < existing.GuestCount {
		return nil, Validationf("table %s cannot accommodate %d guests, maximum capacity is %d",
			table.ID, existing.GuestCount, table.Capacity)
	}
	if slotsOverlap(table.BookedSlots(existing.Date), existing.TimeFrom, existing.TimeTo) {
		return nil, Conflictf("table is already booked for this time slot")
	}

	slot := existing.Slot()
	s.removeTableSlot(ctx, existing)

	if err := s.Tables.AppendSlot(ctx, newTableID, newLocationID, existing.Date, slot); err != nil {
		s.restoreTableSlot(ctx, existing)
		if errors.Is(err, tableRepo.ErrSlotTaken) {
			return nil, Conflictf("table is already booked for this time slot")
		}
		return nil, Internal("failed to update table schedule", err)
	}

	updated := *existing
	updated.TableID = newTableID
	updated.LocationID = newLocationID
	if err := s.Reservations.Replace(ctx, &updated); err != nil {
		s.removeTableSlot(ctx, &updated)
		s.restoreTableSlot(ctx, existing)
		return nil, Internal("failed to persist updated reservation", err)
	}

	s.Events.ReservationUpdated(&updated)
	return &updated, nil
}

// applyGuestCountChange re-validates capacity against the unchanged table;
// no ledger mutation is needed.
func (s *DefaultReservationService) applyGuestCountChange(ctx context.Context, updated *models.Reservation) (*models.Reservation, error) {
	table, err := s.Tables.GetByID(ctx, updated.TableID, updated.LocationID)
	if err != nil {
		return nil, mapTableErr(err, updated.TableID)
	}
	if table.Capacity < updated.GuestCount {
		return nil, Validationf("table %s cannot accommodate %d guests, maximum capacity is %d",
			table.ID, updated.GuestCount, table.Capacity)
	}

	if err := s.Reservations.Replace(ctx, updated); err != nil {
		return nil, Internal("failed to persist updated reservation", err)
	}

	s.Events.ReservationUpdated(updated)
	return updated, nil
}

// restoreSlots re-adds the reservation's original slot to both ledgers after
// a failed migration. Best-effort, mirroring releaseSlots.
func (s *DefaultReservationService) restoreSlots(ctx context.Context, res *models.Reservation) {
	if err := s.Waiters.AppendSlot(ctx, res.WaiterID, res.LocationID, res.Date, res.Slot()); err != nil {
		utils.GetLogger().Error("failed to restore waiter slot",
			zap.String("reservationId", res.ID), zap.String("waiterId", res.WaiterID), zap.Error(err))
	}
	s.restoreTableSlot(ctx, res)
}

func (s *DefaultReservationService) restoreTableSlot(ctx context.Context, res *models.Reservation) {
	if err := s.Tables.AppendSlot(ctx, res.TableID, res.LocationID, res.Date, res.Slot()); err != nil {
		utils.GetLogger().Error("failed to restore table slot",
			zap.String("reservationId", res.ID), zap.String("tableId", res.TableID), zap.Error(err))
	}
}

// requestFor shapes a reservation back into the request form so updates can
// reuse the create-side validation.
func requestFor(res *models.Reservation) models.ReservationRequest {
	return models.ReservationRequest{
		ReservationID: res.ID,
		LocationID:    res.LocationID,
		TableID:       res.TableID,
		Date:          res.Date,
		TimeFrom:      res.TimeFrom,
		TimeTo:        res.TimeTo,
		GuestCount:    res.GuestCount,
	}
}

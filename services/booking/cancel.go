// File: services/booking/cancel.go
package booking

import (
	"context"
	"time"

	"tablebook/models"
)

// cancellationLeadTime is the minimum lead before the slot start at which a
// guest may still cancel. Staff cancellations bypass it.
const cancellationLeadTime = 30 * time.Minute

// CancelReservation marks a reservation CANCELLED and frees its slot on both
// ledgers. The record keeps its id (logical delete). Slot removal is
// best-effort: a slot already absent from a ledger is not an error.
func (s *DefaultReservationService) CancelReservation(ctx context.Context, reservationID string, actor Actor) error {
	res, err := s.loadForActor(ctx, reservationID, actor)
	if err != nil {
		return err
	}

	if res.Status == models.StatusCancelled {
		return Validationf("reservation is already cancelled")
	}

	if !actor.Staff {
		if err := s.checkCancellationWindow(ctx, res); err != nil {
			return err
		}
	}

	if err := s.Reservations.UpdateStatus(ctx, res.ID, models.StatusCancelled); err != nil {
		return Internal("failed to cancel reservation", err)
	}
	res.Status = models.StatusCancelled

	s.removeTableSlot(ctx, res)
	s.removeWaiterSlot(ctx, res)

	s.Events.ReservationCancelled(res)
	return nil
}

// checkCancellationWindow enforces the 30-minute lead rule in the
// reservation location's local time.
func (s *DefaultReservationService) checkCancellationWindow(ctx context.Context, res *models.Reservation) error {
	loc, _ := s.Locations.GetByID(ctx, res.LocationID)
	now := s.localNow(loc)

	start, err := time.ParseInLocation(dateLayout+" "+clockLayout, res.Date+" "+res.TimeFrom, now.Location())
	if err != nil {
		return Validationf("reservation has an invalid date/time: %v", err)
	}

	if start.Sub(now) <= cancellationLeadTime {
		return Validationf("reservations can only be cancelled up to 30 minutes before the reservation time")
	}
	return nil
}

// loadForActor fetches the reservation honoring ownership: staff see any
// reservation, guests only their own. A guest probing someone else's id gets
// Unauthorized when the id exists, NotFound otherwise.
func (s *DefaultReservationService) loadForActor(ctx context.Context, reservationID string, actor Actor) (*models.Reservation, error) {
	if actor.Staff {
		res, err := s.Reservations.GetByID(ctx, reservationID)
		if err != nil {
			return nil, mapReservationErr(err, reservationID)
		}
		return res, nil
	}

	res, err := s.Reservations.GetByIDAndEmail(ctx, reservationID, actor.Email)
	if err == nil {
		return res, nil
	}
	if _, lookupErr := s.Reservations.GetByID(ctx, reservationID); lookupErr == nil {
		return nil, Unauthorizedf("you can only manage your own reservations")
	}
	return nil, mapReservationErr(err, reservationID)
}

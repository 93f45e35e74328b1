// File: services/booking/queries.go
package booking

import (
	"context"
	"errors"

	waiterRepo "tablebook/database/repository/waiter"
	"tablebook/models"
)

// Fallback opening hours when a location defines none.
const (
	defaultOpenFrom = "10:00"
	defaultOpenTo   = "22:00"
)

// ListReservationsForRequester returns every reservation booked under the
// requester's email, terminal ones included.
func (s *DefaultReservationService) ListReservationsForRequester(ctx context.Context, email string) ([]models.Reservation, error) {
	if email == "" {
		return nil, Unauthorizedf("authentication required")
	}
	out, err := s.Reservations.ListByEmail(ctx, email)
	if err != nil {
		return nil, Internal("failed to list reservations", err)
	}
	return out, nil
}

// ListWaiterReservations returns the reservations assigned to the waiter
// identified by email for a date, optionally narrowed by start time and
// table.
func (s *DefaultReservationService) ListWaiterReservations(ctx context.Context, waiterEmail, date, timeFrom, tableID string) ([]models.Reservation, error) {
	waiter, err := s.Waiters.GetByEmail(ctx, waiterEmail)
	if err != nil {
		if errors.Is(err, waiterRepo.ErrNotFound) {
			return nil, NotFoundf("no waiter registered for %s", waiterEmail)
		}
		return nil, Internal("failed to look up waiter", err)
	}

	all, err := s.Reservations.ListByWaiterAndDate(ctx, waiter.ID, date)
	if err != nil {
		return nil, Internal("failed to list waiter reservations", err)
	}

	filtered := all[:0]
	for _, res := range all {
		if timeFrom != "" && res.TimeFrom != timeFrom {
			continue
		}
		if tableID != "" && res.TableID != tableID {
			continue
		}
		filtered = append(filtered, res)
	}
	return filtered, nil
}

// AvailableTables lists the tables at a location that can seat the party,
// together with their free windows on the date, computed from the booked
// ledger within the location's opening hours.
func (s *DefaultReservationService) AvailableTables(ctx context.Context, locationID, date string, guests int) ([]models.TableAvailability, error) {
	if locationID == "" || date == "" {
		return nil, Validationf("locationId and date are required")
	}

	loc, err := s.Locations.GetByID(ctx, locationID)
	if err != nil {
		return nil, mapLocationErr(err, locationID)
	}
	openFrom, openTo := loc.OpenFrom, loc.OpenTo
	if openFrom == "" || openTo == "" {
		openFrom, openTo = defaultOpenFrom, defaultOpenTo
	}

	tables, err := s.Tables.GetByLocation(ctx, locationID)
	if err != nil {
		return nil, Internal("failed to list tables", err)
	}

	var out []models.TableAvailability
	for _, table := range tables {
		if guests > 0 && table.Capacity < guests {
			continue
		}
		out = append(out, models.TableAvailability{
			TableID:      table.ID,
			LocationID:   table.LocationID,
			Capacity:     table.Capacity,
			Date:         date,
			FreeWindows:  freeWindows(table.BookedSlots(date), openFrom, openTo),
			LocationAddr: loc.Address,
		})
	}
	return out, nil
}

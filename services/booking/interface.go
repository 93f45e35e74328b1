// File: services/booking/interface.go
package booking

import (
	"context"
	"time"

	locationRepo "tablebook/database/repository/location"
	reservationRepo "tablebook/database/repository/reservation"
	tableRepo "tablebook/database/repository/table"
	waiterRepo "tablebook/database/repository/waiter"
	"tablebook/models"
	"tablebook/services/events"
)

// Actor is the already-authenticated requester. Identity extraction happens
// upstream; the engine only ever sees the (email, staff) pair.
type Actor struct {
	Email string
	Staff bool
}

// ReservationService is the scheduling engine consumed by the request layer.
type ReservationService interface {
	CreateReservation(ctx context.Context, req models.ReservationRequest, actor Actor) (*models.Reservation, error)
	CancelReservation(ctx context.Context, reservationID string, actor Actor) error
	UpdateReservationSchedule(ctx context.Context, reservationID string, upd models.ReservationUpdate, actor Actor) (*models.Reservation, error)
	ReassignTable(ctx context.Context, reservationID, newTableID, newLocationID string) (*models.Reservation, error)
	ListReservationsForRequester(ctx context.Context, email string) ([]models.Reservation, error)
	ListWaiterReservations(ctx context.Context, waiterEmail, date, timeFrom, tableID string) ([]models.Reservation, error)
	AvailableTables(ctx context.Context, locationID, date string, guests int) ([]models.TableAvailability, error)
	RunStatusReconciliation(ctx context.Context) error
}

// DefaultReservationService implements ReservationService over the Mongo
// repositories. Consistency across the reservation record and the two
// ledgers comes from conditional single-document writes plus compensating
// rollback, not cross-document transactions.
type DefaultReservationService struct {
	Reservations reservationRepo.ReservationRepository
	Tables       tableRepo.TableRepository
	Waiters      waiterRepo.WaiterRepository
	Locations    locationRepo.LocationRepository
	Selector     WaiterSelector
	Events       events.Publisher

	// Zone applies when a location carries no explicit time zone.
	Zone *time.Location
	// Now is swappable for tests of time-window rules.
	Now func() time.Time
}

// NewReservationService wires a DefaultReservationService with the real
// clock.
func NewReservationService(
	reservations reservationRepo.ReservationRepository,
	tables tableRepo.TableRepository,
	waiters waiterRepo.WaiterRepository,
	locations locationRepo.LocationRepository,
	selector WaiterSelector,
	publisher events.Publisher,
	zone *time.Location,
) *DefaultReservationService {
	if zone == nil {
		zone = time.UTC
	}
	return &DefaultReservationService{
		Reservations: reservations,
		Tables:       tables,
		Waiters:      waiters,
		Locations:    locations,
		Selector:     selector,
		Events:       publisher,
		Zone:         zone,
		Now:          time.Now,
	}
}

// localNow returns the current time in the location's zone, falling back to
// the configured default zone.
func (s *DefaultReservationService) localNow(loc *models.Location) time.Time {
	zone := s.Zone
	if loc != nil && loc.TimeZone != "" {
		if z, err := time.LoadLocation(loc.TimeZone); err == nil {
			zone = z
		}
	}
	return s.Now().In(zone)
}

// File: services/booking/validate.go
package booking

import (
	"strings"
	"time"

	"tablebook/models"
)

const (
	minGuests = 1
	maxGuests = 20
)

// validateRequest checks the request shape before any storage access: field
// presence, guest bounds, and date/time formats. Existence and availability
// checks come later so nothing is mutated before cheap validation passes.
func validateRequest(req models.ReservationRequest) error {
	var missing []string
	if req.LocationID == "" {
		missing = append(missing, "locationId")
	}
	if req.TableID == "" {
		missing = append(missing, "tableId")
	}
	if req.Date == "" {
		missing = append(missing, "date")
	}
	if req.TimeFrom == "" {
		missing = append(missing, "timeFrom")
	}
	if req.TimeTo == "" {
		missing = append(missing, "timeTo")
	}
	if len(missing) > 0 {
		return Validationf("missing required fields: %s", strings.Join(missing, ", "))
	}

	if req.GuestCount < minGuests || req.GuestCount > maxGuests {
		return Validationf("invalid party size (must be between %d and %d)", minGuests, maxGuests)
	}

	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return Validationf("invalid date format, use YYYY-MM-DD")
	}
	if err := parseClock(req.TimeFrom); err != nil {
		return Validationf("invalid timeFrom: %v", err)
	}
	if err := parseClock(req.TimeTo); err != nil {
		return Validationf("invalid timeTo: %v", err)
	}
	if req.TimeFrom >= req.TimeTo {
		return Validationf("end time must be after start time")
	}
	return nil
}

// validateNotPast rejects windows that start before the location-local
// current time.
func (s *DefaultReservationService) validateNotPast(loc *models.Location, date, timeFrom string) error {
	now := s.localNow(loc)
	start, err := time.ParseInLocation(dateLayout+" "+clockLayout, date+" "+timeFrom, now.Location())
	if err != nil {
		return Validationf("invalid date/time: %v", err)
	}
	if start.Before(now) {
		return Validationf("cannot book for past date/time")
	}
	return nil
}

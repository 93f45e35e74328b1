// File: services/booking/selector.go
package booking

import (
	"context"

	waiterRepo "tablebook/database/repository/waiter"
)

// WaiterSelector picks the waiter to serve a candidate slot.
type WaiterSelector interface {
	SelectWaiter(ctx context.Context, locationID, date, timeFrom, timeTo string) (string, error)
}

// DefaultWaiterSelector assigns the least clumsy eligible waiter: among
// active waiters whose shift contains the slot and whose schedule has no
// overlap, it minimizes the sum of the idle gaps around the candidate. Ties
// go to the lowest waiter id so repeated runs stay deterministic.
type DefaultWaiterSelector struct {
	Waiters waiterRepo.WaiterRepository
}

func (s *DefaultWaiterSelector) SelectWaiter(ctx context.Context, locationID, date, timeFrom, timeTo string) (string, error) {
	waiters, err := s.Waiters.GetActiveByLocation(ctx, locationID)
	if err != nil {
		return "", Internal("failed to load waiters for location "+locationID, err)
	}
	if len(waiters) == 0 {
		return "", Conflictf("no waiters available for the selected location")
	}

	bestID := ""
	bestScore := 0
	for _, w := range waiters {
		// Shift window must contain the whole slot.
		if timeFrom < w.ShiftStart || timeTo > w.ShiftEnd {
			continue
		}
		booked := w.BookedSlots(date)
		if slotsOverlap(booked, timeFrom, timeTo) {
			continue
		}

		score := clumsinessScore(booked, timeFrom, timeTo)
		if bestID == "" || score < bestScore || (score == bestScore && w.ID < bestID) {
			bestID = w.ID
			bestScore = score
		}
	}

	if bestID == "" {
		return "", Conflictf("no eligible waiter available for the selected time slot")
	}
	return bestID, nil
}

// File: services/booking/reconcile.go
package booking

import (
	"context"
	"time"

	"tablebook/models"
	"tablebook/utils"

	"go.uber.org/zap"
)

// RunStatusReconciliation walks every non-terminal reservation and derives
// its status from the current time: past the window end means FINISHED,
// inside the window means IN_PROGRESS. Transitions are monotonic, so running
// the job twice without time passing changes nothing. Records with malformed
// date/time fields are logged and skipped; they never fail the batch.
func (s *DefaultReservationService) RunStatusReconciliation(ctx context.Context) error {
	logger := utils.GetLogger()

	active, err := s.Reservations.ListActive(ctx)
	if err != nil {
		return Internal("failed to list active reservations", err)
	}

	now := s.Now().In(s.Zone)
	layout := dateLayout + " " + clockLayout

	for i := range active {
		res := &active[i]

		start, err := time.ParseInLocation(layout, res.Date+" "+res.TimeFrom, s.Zone)
		if err != nil {
			logger.Warn("skipping reservation with malformed start time",
				zap.String("reservationId", res.ID), zap.Error(err))
			continue
		}
		end, err := time.ParseInLocation(layout, res.Date+" "+res.TimeTo, s.Zone)
		if err != nil {
			logger.Warn("skipping reservation with malformed end time",
				zap.String("reservationId", res.ID), zap.Error(err))
			continue
		}

		var next string
		switch {
		case now.After(end):
			next = models.StatusFinished
		case !now.Before(start):
			next = models.StatusInProgress
		default:
			continue
		}

		if err := s.Reservations.UpdateStatus(ctx, res.ID, next); err != nil {
			logger.Error("failed to reconcile reservation status",
				zap.String("reservationId", res.ID), zap.String("status", next), zap.Error(err))
		}
	}

	return nil
}

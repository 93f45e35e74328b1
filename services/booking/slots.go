// File: services/booking/slots.go
package booking

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"

	// noNeighborGap stands in for "no adjacent booking" when scoring a
	// candidate slot. Large enough to dominate any same-day gap while
	// keeping scores comparable.
	noNeighborGap = 100000
)

// overlaps reports whether [from, to) conflicts with [bookedFrom, bookedTo).
// Zero-padded "HH:MM" strings order lexicographically, so plain string
// comparison is the interval check. Touching endpoints do not conflict.
func overlaps(bookedFrom, bookedTo, from, to string) bool {
	return from < bookedTo && to > bookedFrom
}

// slotsOverlap reports whether the candidate window conflicts with any slot
// in the booked list. Malformed entries in the list are skipped; stored slots
// are validated on the way in.
func slotsOverlap(booked []string, from, to string) bool {
	for _, slot := range booked {
		bookedFrom, bookedTo, ok := splitSlot(slot)
		if !ok {
			continue
		}
		if overlaps(bookedFrom, bookedTo, from, to) {
			return true
		}
	}
	return false
}

// clumsinessScore sums the idle gaps immediately before and after the
// candidate window against the waiter's existing bookings. A missing
// neighbor on either side contributes noNeighborGap. Lower scores pack the
// candidate tighter against existing commitments, leaving larger contiguous
// free blocks on other waiters.
func clumsinessScore(booked []string, from, to string) int {
	sorted := append([]string(nil), booked...)
	sort.Strings(sorted)

	gapBefore := noNeighborGap
	gapAfter := noNeighborGap

	for _, slot := range sorted {
		bookedFrom, bookedTo, ok := splitSlot(slot)
		if !ok {
			continue
		}
		if bookedTo <= from {
			gapBefore = clockMinutes(from) - clockMinutes(bookedTo)
		}
		if bookedFrom >= to && gapAfter == noNeighborGap {
			gapAfter = clockMinutes(bookedFrom) - clockMinutes(to)
		}
	}

	return gapBefore + gapAfter
}

// freeWindows returns the unoccupied intervals between openFrom and openTo
// given the booked slots of a date.
func freeWindows(booked []string, openFrom, openTo string) []string {
	sorted := append([]string(nil), booked...)
	sort.Strings(sorted)

	var windows []string
	cursor := openFrom
	for _, slot := range sorted {
		from, to, ok := splitSlot(slot)
		if !ok || to <= cursor || from >= openTo {
			continue
		}
		if from > cursor {
			windows = append(windows, formatSlot(cursor, from))
		}
		if to > cursor {
			cursor = to
		}
	}
	if cursor < openTo {
		windows = append(windows, formatSlot(cursor, openTo))
	}
	return windows
}

// splitSlot decomposes a "HH:MM-HH:MM" ledger entry.
func splitSlot(slot string) (from, to string, ok bool) {
	parts := strings.SplitN(slot, "-", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func formatSlot(from, to string) string {
	return from + "-" + to
}

// clockMinutes converts a validated "HH:MM" string to minutes from midnight.
func clockMinutes(clock string) int {
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

// parseClock validates a "HH:MM" time-of-day string.
func parseClock(clock string) error {
	if _, err := time.Parse(clockLayout, clock); err != nil {
		return fmt.Errorf("invalid time %q, expected HH:MM", clock)
	}
	return nil
}

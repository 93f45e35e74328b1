package booking

import (
	"context"
	"testing"

	"tablebook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeWaiter(id string, booked map[string][]string) *models.Waiter {
	return &models.Waiter{
		ID:         id,
		LocationID: "loc-1",
		Email:      id + "@example.com",
		ShiftStart: "09:00",
		ShiftEnd:   "22:00",
		Active:     true,
		Booked:     booked,
	}
}

func TestSelectWaiterPrefersTightPacking(t *testing.T) {
	// Waiter A already serves 09:00-10:00; a 10:00-11:00 candidate packs
	// flush against it, so A beats the completely free waiter B.
	busy := activeWaiter("waiter-a", map[string][]string{
		"2026-06-02": {"09:00-10:00"},
	})
	free := activeWaiter("waiter-b", nil)
	selector := &DefaultWaiterSelector{Waiters: newFakeWaiterRepo(busy, free)}

	id, err := selector.SelectWaiter(context.Background(), "loc-1", "2026-06-02", "10:00", "11:00")
	require.NoError(t, err)
	assert.Equal(t, "waiter-a", id)
}

func TestSelectWaiterSkipsOverlappingSchedules(t *testing.T) {
	busy := activeWaiter("waiter-a", map[string][]string{
		"2026-06-02": {"10:30-11:30"},
	})
	free := activeWaiter("waiter-b", nil)
	selector := &DefaultWaiterSelector{Waiters: newFakeWaiterRepo(busy, free)}

	id, err := selector.SelectWaiter(context.Background(), "loc-1", "2026-06-02", "10:00", "11:00")
	require.NoError(t, err)
	assert.Equal(t, "waiter-b", id)
}

func TestSelectWaiterTieBreaksOnLowestID(t *testing.T) {
	a := activeWaiter("waiter-a", nil)
	b := activeWaiter("waiter-b", nil)
	selector := &DefaultWaiterSelector{Waiters: newFakeWaiterRepo(b, a)}

	id, err := selector.SelectWaiter(context.Background(), "loc-1", "2026-06-02", "12:00", "13:00")
	require.NoError(t, err)
	assert.Equal(t, "waiter-a", id)
}

func TestSelectWaiterRespectsShiftBounds(t *testing.T) {
	early := activeWaiter("waiter-a", nil)
	early.ShiftStart = "08:00"
	early.ShiftEnd = "12:00"
	late := activeWaiter("waiter-b", nil)
	late.ShiftStart = "12:00"
	late.ShiftEnd = "23:00"
	selector := &DefaultWaiterSelector{Waiters: newFakeWaiterRepo(early, late)}

	// 11:30-12:30 straddles both shifts; neither waiter can take it.
	_, err := selector.SelectWaiter(context.Background(), "loc-1", "2026-06-02", "11:30", "12:30")
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))

	id, err := selector.SelectWaiter(context.Background(), "loc-1", "2026-06-02", "12:00", "13:00")
	require.NoError(t, err)
	assert.Equal(t, "waiter-b", id)
}

func TestSelectWaiterIgnoresInactiveWaiters(t *testing.T) {
	inactive := activeWaiter("waiter-a", nil)
	inactive.Active = false
	selector := &DefaultWaiterSelector{Waiters: newFakeWaiterRepo(inactive)}

	_, err := selector.SelectWaiter(context.Background(), "loc-1", "2026-06-02", "12:00", "13:00")
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestSelectWaiterNoWaitersAtLocation(t *testing.T) {
	selector := &DefaultWaiterSelector{Waiters: newFakeWaiterRepo()}

	_, err := selector.SelectWaiter(context.Background(), "loc-9", "2026-06-02", "12:00", "13:00")
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
}

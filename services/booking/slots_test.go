package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                 string
		bookedFrom, bookedTo string
		from, to             string
		want                 bool
	}{
		{"identical windows", "12:00", "13:00", "12:00", "13:00", true},
		{"candidate inside booked", "12:00", "14:00", "12:30", "13:00", true},
		{"booked inside candidate", "12:30", "13:00", "12:00", "14:00", true},
		{"partial overlap left", "12:00", "13:00", "12:30", "13:30", true},
		{"partial overlap right", "12:30", "13:30", "12:00", "13:00", true},
		{"touching end to start", "12:00", "13:00", "13:00", "14:00", false},
		{"touching start to end", "13:00", "14:00", "12:00", "13:00", false},
		{"disjoint before", "12:00", "13:00", "09:00", "10:00", false},
		{"disjoint after", "09:00", "10:00", "12:00", "13:00", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, overlaps(tc.bookedFrom, tc.bookedTo, tc.from, tc.to))
		})
	}
}

func TestSlotsOverlap(t *testing.T) {
	booked := []string{"09:00-10:00", "12:00-13:30"}

	assert.True(t, slotsOverlap(booked, "09:30", "10:30"))
	assert.True(t, slotsOverlap(booked, "13:00", "14:00"))
	assert.False(t, slotsOverlap(booked, "10:00", "12:00"))
	assert.False(t, slotsOverlap(booked, "14:00", "15:00"))
	assert.False(t, slotsOverlap(nil, "09:00", "10:00"))
}

func TestSlotsOverlapSkipsMalformedEntries(t *testing.T) {
	booked := []string{"garbage", "09:00-10:00"}

	assert.True(t, slotsOverlap(booked, "09:30", "10:30"))
	assert.False(t, slotsOverlap(booked, "10:00", "11:00"))
}

func TestClumsinessScore(t *testing.T) {
	t.Run("empty schedule scores two missing neighbors", func(t *testing.T) {
		assert.Equal(t, 2*noNeighborGap, clumsinessScore(nil, "12:00", "13:00"))
	})

	t.Run("adjacent booking before eliminates that gap", func(t *testing.T) {
		score := clumsinessScore([]string{"09:00-10:00"}, "10:00", "11:00")
		assert.Equal(t, 0+noNeighborGap, score)
	})

	t.Run("gap before counts in minutes", func(t *testing.T) {
		score := clumsinessScore([]string{"09:00-10:00"}, "10:30", "11:30")
		assert.Equal(t, 30+noNeighborGap, score)
	})

	t.Run("neighbors on both sides", func(t *testing.T) {
		score := clumsinessScore([]string{"09:00-10:00", "12:00-13:00"}, "10:30", "11:00")
		assert.Equal(t, 30+60, score)
	})

	t.Run("nearest neighbor wins on each side", func(t *testing.T) {
		booked := []string{"08:00-09:00", "09:30-10:00", "12:00-13:00", "14:00-15:00"}
		score := clumsinessScore(booked, "10:30", "11:00")
		assert.Equal(t, 30+60, score)
	})
}

func TestFreeWindows(t *testing.T) {
	t.Run("no bookings yields whole open window", func(t *testing.T) {
		assert.Equal(t, []string{"10:00-22:00"}, freeWindows(nil, "10:00", "22:00"))
	})

	t.Run("single booking splits the day", func(t *testing.T) {
		got := freeWindows([]string{"12:00-13:00"}, "10:00", "22:00")
		assert.Equal(t, []string{"10:00-12:00", "13:00-22:00"}, got)
	})

	t.Run("bookings sorted before merging", func(t *testing.T) {
		got := freeWindows([]string{"18:00-19:00", "12:00-13:00"}, "10:00", "22:00")
		assert.Equal(t, []string{"10:00-12:00", "13:00-18:00", "19:00-22:00"}, got)
	})

	t.Run("booking flush against opening hours", func(t *testing.T) {
		got := freeWindows([]string{"10:00-11:00", "21:00-22:00"}, "10:00", "22:00")
		assert.Equal(t, []string{"11:00-21:00"}, got)
	})

	t.Run("fully booked day has no windows", func(t *testing.T) {
		assert.Empty(t, freeWindows([]string{"10:00-22:00"}, "10:00", "22:00"))
	})

	t.Run("bookings outside opening hours ignored", func(t *testing.T) {
		got := freeWindows([]string{"07:00-08:00", "23:00-23:30"}, "10:00", "22:00")
		assert.Equal(t, []string{"10:00-22:00"}, got)
	})
}

func TestSplitSlot(t *testing.T) {
	from, to, ok := splitSlot("12:00-13:30")
	assert.True(t, ok)
	assert.Equal(t, "12:00", from)
	assert.Equal(t, "13:30", to)

	_, _, ok = splitSlot("12:00")
	assert.False(t, ok)
	_, _, ok = splitSlot("-13:00")
	assert.False(t, ok)
	_, _, ok = splitSlot("")
	assert.False(t, ok)
}

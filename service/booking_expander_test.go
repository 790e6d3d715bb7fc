package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rb-server/models"
	"rb-server/weekkey"
)

func expanderCodec() *weekkey.Codec {
	return weekkey.NewCodec(time.UTC)
}

func TestExpandBookings_ValidIntervalYieldsPickupAndReturn(t *testing.T) {
	codec := expanderCodec()
	record := models.RawStation{
		ID:   "1",
		Name: "Berlin",
		Bookings: []models.RawBooking{
			{
				ID:           "42",
				CustomerName: "Kera",
				StartDate:    "2025-02-03T09:30:00Z",
				EndDate:      "2025-02-05T16:45:00Z",
			},
		},
	}

	events := ExpandBookings(codec, record, map[string]string{"1": "Berlin"})
	require.Len(t, events, 2)

	pickup, ret := events[0], events[1]
	assert.True(t, pickup.IsPickup)
	assert.False(t, ret.IsPickup)

	assert.Equal(t, "42", pickup.ID)
	assert.Equal(t, "1", pickup.StationID)
	assert.Equal(t, "Berlin", pickup.StationName)
	assert.Equal(t, "Kera", pickup.CustomerName)

	assert.Equal(t, "2025-W06", pickup.WeekKey)
	assert.Equal(t, 1, pickup.DayNumber) // Feb 3 2025 is a Monday
	assert.Equal(t, "Mon", pickup.DayName)
	assert.Equal(t, "Feb, 3", pickup.DayDisplay)
	assert.Equal(t, "09:30", pickup.BookTime)

	assert.Equal(t, 3, ret.DayNumber) // Feb 5 2025 is a Wednesday
	assert.Equal(t, "16:45", ret.BookTime)

	// both events carry the full interval
	for _, ev := range events {
		require.NotNil(t, ev.PickupDate)
		require.NotNil(t, ev.ReturnDate)
		assert.Equal(t, pickup.BookDate, *ev.PickupDate)
		assert.Equal(t, ret.BookDate, *ev.ReturnDate)
	}
}

func TestExpandBookings_InvalidStartStillEmitsReturn(t *testing.T) {
	codec := expanderCodec()
	record := models.RawStation{
		ID:   "1",
		Name: "Berlin",
		Bookings: []models.RawBooking{
			{ID: "42", StartDate: "garbage", EndDate: "2025-02-05T16:45:00Z"},
		},
	}

	events := ExpandBookings(codec, record, map[string]string{"1": "Berlin"})
	require.Len(t, events, 1)
	assert.False(t, events[0].IsPickup)
	assert.Nil(t, events[0].PickupDate)
	require.NotNil(t, events[0].ReturnDate)
}

func TestExpandBookings_BothInvalidYieldsNothing(t *testing.T) {
	codec := expanderCodec()
	record := models.RawStation{
		ID:   "1",
		Name: "Berlin",
		Bookings: []models.RawBooking{
			{ID: "42", StartDate: "bad", EndDate: "worse"},
		},
	}

	events := ExpandBookings(codec, record, map[string]string{"1": "Berlin"})
	assert.Empty(t, events)
}

func TestExpandBookings_UnknownStationFallsBackToHashID(t *testing.T) {
	codec := expanderCodec()
	record := models.RawStation{
		ID:   "99",
		Name: "Dropped",
		Bookings: []models.RawBooking{
			{ID: "1", StartDate: "2025-02-03", EndDate: "2025-02-04"},
		},
	}

	events := ExpandBookings(codec, record, map[string]string{})
	require.Len(t, events, 2)
	assert.Equal(t, "#99", events[0].StationName)
}

func TestExpandBookings_WeekBoundarySplitsKeys(t *testing.T) {
	codec := expanderCodec()
	record := models.RawStation{
		ID:   "1",
		Name: "Berlin",
		Bookings: []models.RawBooking{
			// Sunday Feb 9 to Monday Feb 10: pickup in W06, return in W07
			{ID: "7", StartDate: "2025-02-09T12:00:00Z", EndDate: "2025-02-10T12:00:00Z"},
		},
	}

	events := ExpandBookings(codec, record, map[string]string{"1": "Berlin"})
	require.Len(t, events, 2)
	assert.Equal(t, "2025-W06", events[0].WeekKey)
	assert.Equal(t, "2025-W07", events[1].WeekKey)
}

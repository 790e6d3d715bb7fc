package service

import (
	"sort"

	"rb-server/models"
)

// GroupBookingsByWeek indexes events by their week key. Keys are created
// lazily on the first event seen for a week; within each group events are
// stable-sorted ascending by BookDate, so equal instants keep their
// insertion order.
func GroupBookingsByWeek(events []models.NormalizedBooking) models.BookingsByWeek {
	grouped := make(models.BookingsByWeek)
	for _, ev := range events {
		grouped[ev.WeekKey] = append(grouped[ev.WeekKey], ev)
	}

	for key := range grouped {
		group := grouped[key]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].BookDate.Before(group[j].BookDate)
		})
	}
	return grouped
}

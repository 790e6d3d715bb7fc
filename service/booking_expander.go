package service

import (
	"log"
	"time"

	"rb-server/models"
	"rb-server/weekkey"
)

// ExpandBookings turns one station record's bookings into directional
// events. Start and end dates are parsed independently: an unparsable side
// is logged and skipped while the other side still emits its event, so a
// booking with both sides valid produces exactly two events (pickup and
// return) and a booking with both sides invalid produces none.
func ExpandBookings(codec *weekkey.Codec, record models.RawStation, nameByID map[string]string) []models.NormalizedBooking {
	stationName := nameByID[record.ID]
	if stationName == "" {
		// normalization dropped this station; keep events attributable
		stationName = "#" + record.ID
	}

	var events []models.NormalizedBooking
	for _, b := range record.Bookings {
		start, startErr := codec.ParseDate(b.StartDate)
		end, endErr := codec.ParseDate(b.EndDate)

		var pickupDate, returnDate *time.Time
		if startErr == nil {
			pickupDate = &start
		}
		if endErr == nil {
			returnDate = &end
		}

		if startErr != nil {
			log.Printf("[BookingExpander] Invalid startDate for booking %s at station %s: %q", b.ID, record.Name, b.StartDate)
		} else {
			events = append(events, newEvent(codec, b, record.ID, stationName, start, true, pickupDate, returnDate))
		}

		if endErr != nil {
			log.Printf("[BookingExpander] Invalid endDate for booking %s at station %s: %q", b.ID, record.Name, b.EndDate)
		} else {
			events = append(events, newEvent(codec, b, record.ID, stationName, end, false, pickupDate, returnDate))
		}
	}
	return events
}

func newEvent(codec *weekkey.Codec, b models.RawBooking, stationID, stationName string, at time.Time, isPickup bool, pickupDate, returnDate *time.Time) models.NormalizedBooking {
	return models.NormalizedBooking{
		ID:           b.ID,
		StationID:    stationID,
		StationName:  stationName,
		CustomerName: b.CustomerName,

		BookDate: at,
		IsPickup: isPickup,

		WeekKey:    codec.FromTime(at),
		DayNumber:  weekkey.ISOWeekday(at),
		DayName:    at.Format("Mon"),
		DayDisplay: at.Format("Jan, 2"),
		BookTime:   at.Format("15:04"),

		PickupDate: pickupDate,
		ReturnDate: returnDate,
	}
}

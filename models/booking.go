package models

import "time"

// RawBooking matches one booking interval as delivered by the upstream API.
// Start and end dates arrive as strings and may be malformed; the pipeline
// validates each side individually.
type RawBooking struct {
	ID                    string `json:"id"`
	PickupReturnStationID string `json:"pickupReturnStationId"`
	CustomerName          string `json:"customerName"`
	StartDate             string `json:"startDate"`
	EndDate               string `json:"endDate"`
	PickupStation         string `json:"pickupStation,omitempty"`
	ReturnStation         string `json:"returnStation,omitempty"`
}

// RawStation matches one station record as delivered by the upstream API.
// IDs are numeric strings and are not guaranteed unique across records.
type RawStation struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Bookings []RawBooking `json:"bookings"`
}

// Station is a normalized station: unique id, unique display name.
type Station struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NormalizedBooking is one directional occurrence of a booking interval:
// either its pickup or its return endpoint.
type NormalizedBooking struct {
	ID           string `json:"id"`
	StationID    string `json:"station_id"`
	StationName  string `json:"station_name"`
	CustomerName string `json:"customer_name"`

	BookDate time.Time `json:"book_date"`
	IsPickup bool      `json:"is_pickup"`

	WeekKey    string `json:"week_key"`
	DayNumber  int    `json:"day_number"` // ISO weekday, Monday=1
	DayName    string `json:"day_name"`
	DayDisplay string `json:"day_display"`
	BookTime   string `json:"book_time"`

	PickupDate *time.Time `json:"pickup_date"`
	ReturnDate *time.Time `json:"return_date"`
}

// BookingsByWeek maps a week key to its events, sorted ascending by BookDate.
type BookingsByWeek map[string][]NormalizedBooking

package stations

import (
	"rb-server/models"
)

// StationsAPI defines the interface for fetching rental-station records
// from the upstream booking source.
type StationsAPI interface {
	FetchStations(startDate string) ([]models.RawStation, error)
}

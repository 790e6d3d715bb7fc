package stations

import (
	"fmt"

	"rb-server/config"
	"rb-server/models"
	"rb-server/util"
)

// StationsApiClientMock serves station records from a JSON fixture instead
// of the upstream API.
type StationsApiClientMock struct {
}

// NewStationsApiClientMock creates a new instance of StationsApiClientMock
func NewStationsApiClientMock() *StationsApiClientMock {
	return &StationsApiClientMock{}
}

// FetchStations reads the fixture payload; startDate is accepted but not
// applied, the fixture is returned as-is.
func (c *StationsApiClientMock) FetchStations(startDate string) ([]models.RawStation, error) {
	response, err := util.ReadRawStationsFromJSON(config.GetResourcePath(config.STATIONS_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read stations response from json")
		return nil, err
	}
	return response, nil
}

package stations

import (
	"net/url"

	"rb-server/api"
	"rb-server/models"
)

// StationsApiClient embeds the common HTTPClient
type StationsApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewStationsApiClient creates a new instance of StationsApiClient
func NewStationsApiClient(httpClient *api.HTTPClient) *StationsApiClient {
	return &StationsApiClient{
		HTTPClient: httpClient,
	}
}

// FetchStations retrieves the station records for the given start date. The
// startDate is sent as a query parameter so the upstream filter matches the
// cache key built from it.
func (c *StationsApiClient) FetchStations(startDate string) ([]models.RawStation, error) {
	query := url.Values{}
	if startDate != "" {
		query.Set("startDate", startDate)
	}

	var response []models.RawStation
	err := c.Request("GET", "", query, nil, &response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

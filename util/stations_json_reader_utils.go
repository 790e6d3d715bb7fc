package util

import (
	"encoding/json"
	"fmt"
	"os"

	"rb-server/models"
)

// ReadRawStationsFromJSON loads an upstream stations payload from JSON on disk.
func ReadRawStationsFromJSON(filePath string) ([]models.RawStation, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var stations []models.RawStation
	if err := json.Unmarshal(data, &stations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stations payload: %w", err)
	}
	return stations, nil
}

// PrintStationsPartially prints key fields of an upstream stations payload.
func PrintStationsPartially(stations []models.RawStation) {
	fmt.Printf("Stations: %d\n", len(stations))
	for _, s := range stations {
		fmt.Printf("Station %s (%s): %d bookings\n", s.Name, s.ID, len(s.Bookings))
	}
}

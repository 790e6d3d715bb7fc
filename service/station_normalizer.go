package service

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"rb-server/models"
)

// NormalizeStations deduplicates raw station records into a station list in
// first-seen order. Records with a non-positive or unparsable id, an empty
// trimmed name, or an already-seen id are skipped. A record whose name
// collides with an earlier station keeps its own id but gets the display
// name suffixed with the original raw id.
func NormalizeStations(records []models.RawStation) []models.Station {
	seenIDs := make(map[string]struct{})
	seenNames := make(map[string]struct{})
	var stations []models.Station

	for _, record := range records {
		id, err := strconv.Atoi(strings.TrimSpace(record.ID))
		if err != nil || id <= 0 {
			log.Printf("[StationNormalizer] Skipping station with invalid id %q", record.ID)
			continue
		}
		name := strings.TrimSpace(record.Name)
		if name == "" {
			log.Printf("[StationNormalizer] Skipping station %q with empty name", record.ID)
			continue
		}

		normID := strconv.Itoa(id)
		if _, dup := seenIDs[normID]; dup {
			log.Printf("[StationNormalizer] Skipping duplicate station id=%s", normID)
			continue
		}

		display := name
		if _, dup := seenNames[name]; dup {
			// disambiguate with the raw id; the id itself stays un-suffixed
			display = fmt.Sprintf("%s (#%s)", name, record.ID)
		}

		seenIDs[normID] = struct{}{}
		seenNames[name] = struct{}{}
		stations = append(stations, models.Station{ID: normID, Name: display})
	}

	return stations
}

// StationNameIndex maps normalized station ids to their display names for
// raw-id lookups during booking expansion.
func StationNameIndex(stations []models.Station) map[string]string {
	index := make(map[string]string, len(stations))
	for _, s := range stations {
		index[s.ID] = s.Name
	}
	return index
}

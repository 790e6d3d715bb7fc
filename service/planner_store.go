package service

import (
	"log"
	"sync"

	"rb-server/api/stations"
	"rb-server/dao/cache"
	"rb-server/models"
	"rb-server/weekkey"
)

// PlannerStore owns the published booking-planner state. A Load rebuilds
// stations and the week index wholesale; selection state is independent and
// survives reloads. All reads and actions are safe for concurrent use.
type PlannerStore struct {
	cache       *cache.FreshnessCache[[]models.RawStation]
	stationsAPI stations.StationsAPI
	codec       *weekkey.Codec

	mu              sync.RWMutex
	stations        []models.Station
	bookingsByWeek  models.BookingsByWeek
	loading         bool
	lastErr         string
	selectedWeek    string
	selectedStation string
	generation      uint64
}

// NewPlannerStore constructs an empty store over its collaborators.
func NewPlannerStore(
	freshness *cache.FreshnessCache[[]models.RawStation],
	stationsAPI stations.StationsAPI,
	codec *weekkey.Codec,
) *PlannerStore {
	return &PlannerStore{
		cache:          freshness,
		stationsAPI:    stationsAPI,
		codec:          codec,
		bookingsByWeek: make(models.BookingsByWeek),
	}
}

func cacheKey(startDate string) string {
	return "stations?startDate=" + startDate
}

// Load fetches the raw payload (through the freshness cache), runs the
// normalize → expand → index pipeline, and publishes stations and the week
// index together. A failed load records an error message and leaves the
// previously published state untouched. Overlapping loads are resolved by a
// generation counter: only the most recently started load may publish.
func (s *PlannerStore) Load(startDate string) error {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	data, err := s.cache.FetchWithCache(cacheKey(startDate), func() ([]models.RawStation, error) {
		log.Printf("[PlannerStore] Fetching stations from API for startDate=%s", startDate)
		return s.stationsAPI.FetchStations(startDate)
	})
	if err != nil {
		s.finishLoad(gen, nil, nil, err)
		return err
	}

	allStations := NormalizeStations(data)
	nameByID := StationNameIndex(allStations)

	var allBookings []models.NormalizedBooking
	for _, record := range data {
		allBookings = append(allBookings, ExpandBookings(s.codec, record, nameByID)...)
	}
	grouped := GroupBookingsByWeek(allBookings)

	s.finishLoad(gen, allStations, grouped, nil)
	return nil
}

func (s *PlannerStore) finishLoad(gen uint64, allStations []models.Station, grouped models.BookingsByWeek, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		// a newer load superseded this one; its result is discarded
		log.Printf("[PlannerStore] Discarding stale load result (generation %d < %d)", gen, s.generation)
		return
	}

	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		log.Printf("[PlannerStore] Data loading error: %v", err)
		return
	}

	s.stations = allStations
	s.bookingsByWeek = grouped

	// if no week is selected, set to earliest one
	if s.selectedWeek == "" && len(grouped) > 0 {
		s.selectedWeek = s.weekKeysAscLocked()[0]
	}

	log.Printf("[PlannerStore] Stations loaded: %d, week groups: %d", len(allStations), len(grouped))
}

// weekKeysAscLocked returns the index's keys in chronological order; the
// caller must hold at least a read lock.
func (s *PlannerStore) weekKeysAscLocked() []string {
	keys := make([]string, 0, len(s.bookingsByWeek))
	for k := range s.bookingsByWeek {
		keys = append(keys, k)
	}
	return s.codec.SortKeysAsc(keys)
}

// Stations returns the published station list.
func (s *PlannerStore) Stations() []models.Station {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Station, len(s.stations))
	copy(out, s.stations)
	return out
}

// BookingsByWeek returns the published week index.
func (s *PlannerStore) BookingsByWeek() models.BookingsByWeek {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(models.BookingsByWeek, len(s.bookingsByWeek))
	for k, v := range s.bookingsByWeek {
		group := make([]models.NormalizedBooking, len(v))
		copy(group, v)
		out[k] = group
	}
	return out
}

// Loading reports whether a load is in flight.
func (s *PlannerStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last load's error message, or "" when it succeeded.
func (s *PlannerStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// SelectedWeek returns the selected week key, or "" when none is selected.
func (s *PlannerStore) SelectedWeek() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedWeek
}

// SelectedStation returns the selected station id, or "".
func (s *PlannerStore) SelectedStation() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedStation
}

// AllBookings flattens the week index in ascending week order.
func (s *PlannerStore) AllBookings() []models.NormalizedBooking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.NormalizedBooking
	for _, key := range s.weekKeysAscLocked() {
		out = append(out, s.bookingsByWeek[key]...)
	}
	return out
}

// WeekKeysAsc returns the index's week keys in chronological order.
func (s *PlannerStore) WeekKeysAsc() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.weekKeysAscLocked()
}

// WeekDisplayMap maps each indexed week key to its Monday..Sunday display.
func (s *PlannerStore) WeekDisplayMap() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	display := make(map[string]string, len(s.bookingsByWeek))
	for k := range s.bookingsByWeek {
		text, err := s.codec.FormatWeekRange(k)
		if err != nil {
			log.Printf("[PlannerStore] Cannot format week key %q: %v", k, err)
			continue
		}
		display[k] = text
	}
	return display
}

// BookingsForSelectedWeek returns the selected week's events, empty when no
// week is selected.
func (s *PlannerStore) BookingsForSelectedWeek() []models.NormalizedBooking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selectedWeek == "" {
		return nil
	}
	group := s.bookingsByWeek[s.selectedWeek]
	out := make([]models.NormalizedBooking, len(group))
	copy(out, group)
	return out
}

// SelectedWeekIndex returns the position of the selected week in the
// ascending key order, or -1 when none is selected.
func (s *PlannerStore) SelectedWeekIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selectedWeek == "" {
		return -1
	}
	for i, k := range s.weekKeysAscLocked() {
		if k == s.selectedWeek {
			return i
		}
	}
	return -1
}

// SetSelectedStation selects a station for the presentation layer.
func (s *PlannerStore) SetSelectedStation(stationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedStation = stationID
}

// SetSelectedWeek selects a week; "" clears the selection.
func (s *PlannerStore) SetSelectedWeek(weekKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedWeek = weekKey
}

// SelectNextWeek moves the selection one week forward; no-op at the last
// week or when the index is empty.
func (s *PlannerStore) SelectNextWeek() {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := s.weekKeysAscLocked()
	if len(keys) == 0 {
		return
	}
	idx := indexOf(keys, s.selectedWeek)
	if idx < len(keys)-1 {
		s.selectedWeek = keys[idx+1]
	}
}

// SelectPrevWeek moves the selection one week back; no-op at the first week
// or when the index is empty.
func (s *PlannerStore) SelectPrevWeek() {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := s.weekKeysAscLocked()
	if len(keys) == 0 {
		return
	}
	idx := indexOf(keys, s.selectedWeek)
	if idx > 0 {
		s.selectedWeek = keys[idx-1]
	}
}

func indexOf(keys []string, key string) int {
	if key == "" {
		return -1
	}
	for i, k := range keys {
		if k == key {
			return i
		}
	}
	return -1
}

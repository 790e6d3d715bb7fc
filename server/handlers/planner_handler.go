package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"rb-server/models"
	"rb-server/service"
	"rb-server/weekkey"
)

const (
	WEEK_QUERY_ARG       = "week"
	START_DATE_QUERY_ARG = "startDate"
	STATION_QUERY_ARG    = "station"
	MOVE_QUERY_ARG       = "move"
)

// PlannerState is the full read surface published to the presentation layer.
type PlannerState struct {
	Stations          []models.Station  `json:"stations"`
	WeekKeysAsc       []string          `json:"week_keys_asc"`
	WeekDisplayMap    map[string]string `json:"week_display_map"`
	SelectedWeek      string            `json:"selected_week"`
	SelectedWeekIndex int               `json:"selected_week_index"`
	SelectedStation   string            `json:"selected_station"`
	Loading           bool              `json:"loading"`
	Error             string            `json:"error"`
}

// WeekEntry pairs a week key with its display range.
type WeekEntry struct {
	Key     string `json:"key"`
	Display string `json:"display"`
}

type PlannerHandler struct {
	store *service.PlannerStore
	codec *weekkey.Codec
}

func NewPlannerHandler(store *service.PlannerStore, codec *weekkey.Codec) *PlannerHandler {
	return &PlannerHandler{store: store, codec: codec}
}

// GetState handles GET /v1/planner/state
func (h *PlannerHandler) GetState(w http.ResponseWriter, r *http.Request) {
	state := PlannerState{
		Stations:          h.store.Stations(),
		WeekKeysAsc:       h.store.WeekKeysAsc(),
		WeekDisplayMap:    h.store.WeekDisplayMap(),
		SelectedWeek:      h.store.SelectedWeek(),
		SelectedWeekIndex: h.store.SelectedWeekIndex(),
		SelectedStation:   h.store.SelectedStation(),
		Loading:           h.store.Loading(),
		Error:             h.store.Err(),
	}
	writeJSON(w, state)
}

// GetAllBookings handles GET /v1/planner/bookings/all, the week index
// flattened in ascending week order.
func (h *PlannerHandler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	events := h.store.AllBookings()
	if events == nil {
		events = []models.NormalizedBooking{}
	}
	writeJSON(w, events)
}

// GetWeeks handles GET /v1/planner/weeks
func (h *PlannerHandler) GetWeeks(w http.ResponseWriter, r *http.Request) {
	display := h.store.WeekDisplayMap()
	keys := h.store.WeekKeysAsc()

	weeks := make([]WeekEntry, 0, len(keys))
	for _, key := range keys {
		weeks = append(weeks, WeekEntry{Key: key, Display: display[key]})
	}
	writeJSON(w, weeks)
}

// GetStations handles GET /v1/planner/stations
func (h *PlannerHandler) GetStations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.store.Stations())
}

// GetBookings handles GET /v1/planner/bookings. Without a week argument it
// serves the selected week; a malformed week key is a client error.
func (h *PlannerHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	week := r.URL.Query().Get(WEEK_QUERY_ARG)
	if week == "" {
		events := h.store.BookingsForSelectedWeek()
		if events == nil {
			events = []models.NormalizedBooking{}
		}
		writeJSON(w, events)
		return
	}

	if _, err := h.codec.MondayOf(week); err != nil {
		http.Error(w, "Invalid argument "+WEEK_QUERY_ARG, http.StatusBadRequest)
		return
	}

	events := h.store.BookingsByWeek()[week]
	if events == nil {
		events = []models.NormalizedBooking{}
	}
	writeJSON(w, events)
}

// Load handles POST /v1/planner/load
func (h *PlannerHandler) Load(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get(START_DATE_QUERY_ARG)
	if startDate == "" {
		http.Error(w, "Missing argument "+START_DATE_QUERY_ARG, http.StatusBadRequest)
		return
	}

	if err := h.store.Load(startDate); err != nil {
		log.Println("Error loading planner data:", err)
		http.Error(w, "Failed to load planner data", http.StatusBadGateway)
		return
	}
	h.GetState(w, r)
}

// SetSelection handles POST /v1/planner/selection. It accepts a station id,
// a week key, or a move=next|prev step, in any combination.
func (h *PlannerHandler) SetSelection(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()

	if vals.Has(STATION_QUERY_ARG) {
		h.store.SetSelectedStation(vals.Get(STATION_QUERY_ARG))
	}
	if vals.Has(WEEK_QUERY_ARG) {
		week := vals.Get(WEEK_QUERY_ARG)
		if week != "" {
			if _, err := h.codec.MondayOf(week); err != nil {
				http.Error(w, "Invalid argument "+WEEK_QUERY_ARG, http.StatusBadRequest)
				return
			}
		}
		h.store.SetSelectedWeek(week)
	}

	switch vals.Get(MOVE_QUERY_ARG) {
	case "":
	case "next":
		h.store.SelectNextWeek()
	case "prev":
		h.store.SelectPrevWeek()
	default:
		http.Error(w, "Invalid argument "+MOVE_QUERY_ARG, http.StatusBadRequest)
		return
	}

	h.GetState(w, r)
}

// Ping handles GET /ping
func (h *PlannerHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "pong"})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}

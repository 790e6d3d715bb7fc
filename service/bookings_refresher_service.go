package service

import (
	"log"
	"time"
)

// BookingsRefresherService periodically reloads the planner store so the
// published state tracks the upstream source without client interaction.
type BookingsRefresherService struct {
	store     *PlannerStore
	startDate string
}

// NewBookingsRefresherService constructs a refresher over the store. An
// empty startDate means "today" at each refresh.
func NewBookingsRefresherService(store *PlannerStore, startDate string) *BookingsRefresherService {
	return &BookingsRefresherService{
		store:     store,
		startDate: startDate,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (br *BookingsRefresherService) StartPeriodicJob(interval time.Duration) {
	go br.startPeriodicJob(interval)
}

func (br *BookingsRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[BookingsRefresherService] Running periodic bookings refresh job.")
		if err := br.RefreshBookingsData(); err != nil {
			log.Printf("[BookingsRefresherService] RefreshBookingsData returned error: %v", err)
		} else {
			log.Println("[BookingsRefresherService] RefreshBookingsData completed successfully.")
		}
	}
}

// RefreshBookingsData triggers one reload of the planner store.
func (br *BookingsRefresherService) RefreshBookingsData() error {
	startDate := br.startDate
	if startDate == "" {
		startDate = time.Now().Format("2006-01-02")
	}
	return br.store.Load(startDate)
}

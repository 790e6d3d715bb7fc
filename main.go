package main

import (
	"log"
	"time"

	"rb-server/config"
	"rb-server/di"
	"rb-server/util"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container := di.NewContainer(cfg)

	log.Println("[Main] Running initial load")
	if err := container.BookingsRefresher.RefreshBookingsData(); err != nil {
		// the store keeps its error state; the server still starts so the
		// presentation layer can show it and retry
		log.Printf("[Main] Initial load failed: %v", err)
	} else if cfg.WeekChartOutput != "" {
		if err := util.PlotWeekLoad(
			container.PlannerStore.BookingsByWeek(),
			container.PlannerStore.WeekKeysAsc(),
			container.PlannerStore.WeekDisplayMap(),
			cfg.WeekChartOutput,
		); err != nil {
			log.Printf("[Main] Week chart export failed: %v", err)
		}
	}

	if cfg.RefresherScheduleMin > 0 {
		log.Println("[Main] Starting periodic bookings refresh job")
		container.BookingsRefresher.StartPeriodicJob(time.Duration(cfg.RefresherScheduleMin) * time.Minute)
	}

	log.Println("[Main] Starting server")
	container.PlannerHttpServer.Start()
}

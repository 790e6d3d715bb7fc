package server

import (
	"rb-server/server/handlers"

	"github.com/gorilla/mux"
)

type Router struct {
	plannerHandler *handlers.PlannerHandler
	router         *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	plannerHandler *handlers.PlannerHandler,
	router *mux.Router) *Router {
	return &Router{
		plannerHandler: plannerHandler,
		router:         router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/planner/state", r.plannerHandler.GetState).Methods("GET")
	r.router.HandleFunc("/v1/planner/weeks", r.plannerHandler.GetWeeks).Methods("GET")
	r.router.HandleFunc("/v1/planner/stations", r.plannerHandler.GetStations).Methods("GET")
	// expects ?week={weekKey}; defaults to the selected week
	r.router.HandleFunc("/v1/planner/bookings", r.plannerHandler.GetBookings).Methods("GET")
	r.router.HandleFunc("/v1/planner/bookings/all", r.plannerHandler.GetAllBookings).Methods("GET")
	// expects ?startDate={YYYY-MM-DD}
	r.router.HandleFunc("/v1/planner/load", r.plannerHandler.Load).Methods("POST")
	// expects ?station={id}&week={weekKey}&move={next|prev}
	r.router.HandleFunc("/v1/planner/selection", r.plannerHandler.SetSelection).Methods("POST")

	r.router.HandleFunc("/ping", r.plannerHandler.Ping).Methods("GET")
}

package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

type PlannerHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
}

func NewPlannerHttpServer(router *Router, muxRouter *mux.Router, port int) *PlannerHttpServer {
	return &PlannerHttpServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      fmt.Sprintf(":%d", port),
	}
}

func (s *PlannerHttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.muxRouter,
	}

	// Channel to listen for interrupt or termination signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start the server in a goroutine so it doesn't block
	go func() {
		log.Printf("[PlannerHttpServer] Starting server on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for a signal to shut down
	<-stop
	log.Println("[PlannerHttpServer] Shutting down the server...")

	// Create a deadline for the shutdown (e.g., 5 seconds)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("[PlannerHttpServer] Server exiting")
}

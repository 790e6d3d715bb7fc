package di

import (
	"context"
	"fmt"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"rb-server/api"
	"rb-server/api/stations"
	"rb-server/config"
	"rb-server/dao/cache"
	"rb-server/db"
	"rb-server/models"
	"rb-server/server"
	"rb-server/server/handlers"
	"rb-server/service"
	"rb-server/weekkey"
)

// Container holds all application dependencies.
type Container struct {
	Config            *config.AppConfig
	KVStore           db.KVStore
	StationsCache     *cache.FreshnessCache[[]models.RawStation]
	StationsAPI       stations.StationsAPI
	Codec             *weekkey.Codec
	PlannerStore      *service.PlannerStore
	BookingsRefresher *service.BookingsRefresherService
	PlannerHandler    *handlers.PlannerHandler
	MuxRouter         *mux.Router
	Router            *server.Router
	PlannerHttpServer *server.PlannerHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.AppConfig) *Container {
	log.Printf("initializing container - env: %s", cfg.Env)
	ctx := context.Background()

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		panic(fmt.Sprintf("Invalid time zone %q: %v", cfg.TimeZone, err))
	}
	codec := weekkey.NewCodec(loc)

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Initialize the key-value store backing the freshness cache
	kvStore := db.NewRedisKVStore(ctx, redisInternalClient)
	if err := kvStore.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	stationsCache := cache.NewFreshnessCache[[]models.RawStation](
		kvStore,
		time.Duration(cfg.CacheTTLMS)*time.Millisecond,
		nil,
	)

	// Initialize the stations API - mock outside prod
	var stationsAPI stations.StationsAPI
	if cfg.Env != "prod" {
		stationsAPI = stations.NewStationsApiClientMock()
		log.Printf("Using mock stations api")
	} else {
		log.Printf("Using prod stations api")
		httpClient := api.NewHTTPClient(cfg.StationsAPIBaseURL)
		stationsAPI = stations.NewStationsApiClient(httpClient)
	}

	// Initialize the planner store over cache + api + codec
	plannerStore := service.NewPlannerStore(stationsCache, stationsAPI, codec)

	bookingsRefresher := service.NewBookingsRefresherService(plannerStore, cfg.RefresherStartDate)

	// Initialize planner handler
	plannerHandler := handlers.NewPlannerHandler(plannerStore, codec)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(plannerHandler, muxRouter)

	// initialize planner http server
	plannerHttpServer := server.NewPlannerHttpServer(router, muxRouter, cfg.HTTPPort)

	return &Container{
		Config:            cfg,
		KVStore:           kvStore,
		StationsCache:     stationsCache,
		StationsAPI:       stationsAPI,
		Codec:             codec,
		PlannerStore:      plannerStore,
		BookingsRefresher: bookingsRefresher,
		PlannerHandler:    plannerHandler,
		MuxRouter:         muxRouter,
		Router:            router,
		PlannerHttpServer: plannerHttpServer,
	}
}

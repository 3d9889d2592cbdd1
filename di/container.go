package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"roster-server/api"
	"roster-server/api/parser"
	"roster-server/config"
	"roster-server/dao/redis"
	"roster-server/db"
	"roster-server/server"
	"roster-server/server/handlers"
	services "roster-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient      db.RedisClient
	RecordStoreDao   *redis.RecordStoreDAO
	ScheduleService  *services.ScheduleService
	WeekViewService  *services.WeekViewService
	ParserAPI        parser.ParserAPI
	ScheduleHandler  *handlers.ScheduleHandler
	MuxRouter        *mux.Router
	Router           *server.Router
	RosterHttpServer *server.RosterHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.REDIS_DB_ADDRESS,
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	// Initialize Redis client
	redisClient := db.NewStoreRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	// Initialize the record store DAO
	recordStoreDao := redis.NewRecordStoreDAO(redisClient)

	// Initialize parser API - mock outside prod
	var parserApiClient parser.ParserAPI
	if env != "prod" {
		parserApiClient = parser.NewParserApiClientMock()
		log.Printf("Using mock parser api")
	} else {
		log.Printf("Using prod parser api")
		httpClient := api.NewHTTPClient(config.PARSER_ENDPOINT_BASE_V1)
		parserApiClient = parser.NewParserApiClient(httpClient)
	}

	// Initialize service layer with the store DAO dependency
	scheduleService := services.NewScheduleService(recordStoreDao)
	weekViewService := services.NewWeekViewService(recordStoreDao)

	// Initialize schedule handler
	scheduleHandler := handlers.NewScheduleHandler(scheduleService, weekViewService, parserApiClient)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(scheduleHandler, muxRouter)

	// Initialize roster server
	rosterHttpServer := server.NewRosterHttpServer(router, muxRouter)

	return &Container{
		RedisClient:      redisClient,
		RecordStoreDao:   recordStoreDao,
		ScheduleService:  scheduleService,
		WeekViewService:  weekViewService,
		ParserAPI:        parserApiClient,
		ScheduleHandler:  scheduleHandler,
		MuxRouter:        muxRouter,
		Router:           router,
		RosterHttpServer: rosterHttpServer,
	}
}
